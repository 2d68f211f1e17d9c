// Package docsearch provides chat-style lookup commands over external
// documentation sources: the Stack Exchange network, the Python reference
// index, cppreference.com and the man.cx manual pages. Each lookup fetches
// a single page, extracts a bounded set of results and formats them as an
// Embed.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, http/, stackexchange/).
package docsearch
