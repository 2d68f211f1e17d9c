// Package slog decorates docsearch services with structured logging
// through the standard log/slog package.
package slog
