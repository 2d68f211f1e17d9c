package docsearch

import (
	"errors"
	"fmt"
)

// Application error codes.
const (
	EINVALID     = "invalid"
	ENOTFOUND    = "not_found"
	EUNAVAILABLE = "unavailable"
	EINTERNAL    = "internal"
)

// Error represents an application-specific error. The message is meant to
// be shown to the user as-is.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docsearch error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// StatusError is returned when a remote source answers with a status code
// outside the 2xx range.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

// UnknownSiteError is returned when a site identifier is not part of the
// Stack Exchange network registry.
type UnknownSiteError struct {
	Site string
}

func (e *UnknownSiteError) Error() string {
	return fmt.Sprintf("unknown site %q", e.Site)
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EINTERNAL.
func ErrorCode(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var statusErr *StatusError
	var siteErr *UnknownSiteError
	switch {
	case errors.As(err, &e):
		return e.Code
	case errors.As(err, &statusErr):
		return EUNAVAILABLE
	case errors.As(err, &siteErr):
		return ENOTFOUND
	}
	return EINTERNAL
}

// ErrorMessage unwraps an application error and returns the message meant
// for the user. Non-application errors always return "Internal error.".
func ErrorMessage(err error) string {
	if err == nil {
		return ""
	}
	var e *Error
	var statusErr *StatusError
	var siteErr *UnknownSiteError
	switch {
	case errors.As(err, &e):
		return e.Message
	case errors.As(err, &statusErr):
		return fmt.Sprintf("An error occurred (status code: %d). Retry later.", statusErr.StatusCode)
	case errors.As(err, &siteErr):
		return fmt.Sprintf("%s does not appear to be in the StackExchange network. Check the case and the spelling.", siteErr.Site)
	}
	return "Internal error."
}

// ErrNoResults is returned by lookups when nothing matched the query.
var ErrNoResults = &Error{Code: ENOTFOUND, Message: "No results"}
