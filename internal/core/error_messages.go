// Package core provides the request-to-persistence pipeline for the book catalog.
//
// # Error Codes Reference
//
// This file defines user-friendly error messages with codes for support reference.
// Typed errors from this package are mapped first; anything else falls through
// to case-insensitive message patterns.
//
// # Request Errors (REQ001-REQ099)
//
//	REQ001 - Invalid form: The submitted form could not be read
//	         Action: Check that every field is filled in and pages is a whole number
//	         Type: *DecodeError
//
//	REQ002 - Request cancelled: The request was cancelled
//	         Action: Please try again
//	         Patterns: "context canceled"
//
//	REQ003 - Request timeout: The request timed out
//	         Action: Please try again in a few moments
//	         Patterns: "context deadline exceeded"
//
// # Validation Errors (VAL001-VAL099)
//
//	VAL001 - Field constraint: A field value is out of bounds
//	         Message: built from the failing field, e.g. "Name must be at least 3 characters"
//	         Type: *ValidationError
//
// # Lookup Errors (BOOK001, HTTP404)
//
//	BOOK001 - Book not found: No book exists with this id
//	          Action: It may have been deleted. Return to the book list
//	          Type: *NotFoundError
//
//	HTTP404 - Page not found: The requested page does not exist
//	          Action: Check the address or return to the home page
//	          Type: ErrRouteNotFound
//
// # Database Errors (DB001-DB099)
//
//	DB001 - Duplicate key: A book with this ID already exists
//	        Patterns: "duplicate key", "violates unique"
//
//	DB002 - Connection refused: Unable to connect to database
//	        Patterns: "connection refused", "failed to connect"
//
//	DB003 - Connection reset: Database connection was interrupted
//	        Patterns: "connection reset", "closed pool"
//
//	DB004 - Timeout: Database operation timed out
//	        Patterns: "timeout"
//
//	DB005 - Deadlock: Database was busy with conflicting operations
//	        Patterns: "deadlock"
//
//	DB099 - Store failure: Any other *PersistenceError
//
// # Rate Limiting (RATE001)
//
//	RATE001 - Rate limited: Too many requests
//	          Patterns: "rate limit"
//
// # Default Error (ERR000)
//
// Fallback when nothing matches. Check application logs for the technical
// error, correlated by request_id.
package core

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// UserMessage provides user-friendly error information with actionable guidance.
type UserMessage struct {
	Message string // What happened (user-friendly)
	Action  string // What to do about it
	Code    string // Error code for support reference
}

// errorPattern defines a pattern to match and its corresponding user message.
type errorPattern struct {
	pattern string
	msg     UserMessage
}

// errorPatterns are matched with strings.Contains on the lowercased error.
// The first match wins, so specific patterns come before general ones.
var errorPatterns = []errorPattern{
	{
		pattern: "duplicate key",
		msg: UserMessage{
			Message: "A book with this ID already exists",
			Action:  "Submit the form again to generate a new ID",
			Code:    "DB001",
		},
	},
	{
		pattern: "violates unique",
		msg: UserMessage{
			Message: "A book with this ID already exists",
			Action:  "Submit the form again to generate a new ID",
			Code:    "DB001",
		},
	},
	{
		pattern: "connection refused",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB002",
		},
	},
	{
		pattern: "failed to connect",
		msg: UserMessage{
			Message: "Unable to connect to database",
			Action:  "Please try again in a few moments",
			Code:    "DB002",
		},
	},
	{
		pattern: "connection reset",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB003",
		},
	},
	{
		pattern: "closed pool",
		msg: UserMessage{
			Message: "Database connection was interrupted",
			Action:  "Please try again",
			Code:    "DB003",
		},
	},
	{
		pattern: "context canceled",
		msg: UserMessage{
			Message: "Request was cancelled",
			Action:  "Please try again",
			Code:    "REQ002",
		},
	},
	{
		pattern: "context deadline exceeded",
		msg: UserMessage{
			Message: "Request timed out",
			Action:  "Please try again in a few moments",
			Code:    "REQ003",
		},
	},
	{
		pattern: "timeout",
		msg: UserMessage{
			Message: "Database operation timed out",
			Action:  "Please try again later",
			Code:    "DB004",
		},
	},
	{
		pattern: "deadlock",
		msg: UserMessage{
			Message: "Database was busy with conflicting operations",
			Action:  "Please try again",
			Code:    "DB005",
		},
	},
	{
		pattern: "rate limit",
		msg: UserMessage{
			Message: "Too many requests",
			Action:  "Please wait a moment before trying again",
			Code:    "RATE001",
		},
	},
}

var (
	decodeMessage = UserMessage{
		Message: "The submitted form could not be read",
		Action:  "Check that every field is filled in and pages is a whole number",
		Code:    "REQ001",
	}
	bookNotFoundMessage = UserMessage{
		Message: "Book not found",
		Action:  "It may have been deleted. Return to the book list",
		Code:    "BOOK001",
	}
	routeNotFoundMessage = UserMessage{
		Message: "Page not found",
		Action:  "Check the address or return to the home page",
		Code:    "HTTP404",
	}
	persistenceMessage = UserMessage{
		Message: "The book could not be saved or loaded",
		Action:  "Please try again or contact support",
		Code:    "DB099",
	}
)

// defaultMessage is returned when nothing matches (ERR000).
var defaultMessage = UserMessage{
	Message: "An unexpected error occurred",
	Action:  "Please try again or contact support",
	Code:    "ERR000",
}

// MapError converts a technical error to a user-friendly message.
// Typed errors are recognised first. Store failures are then refined by
// message pattern, so a refused connection reads differently from a
// duplicate key. Returns the zero UserMessage for a nil error.
//
// Example:
//
//	err := &NotFoundError{ID: "42"}
//	msg := MapError(err)
//	// msg.Code == "BOOK001"
func MapError(err error) UserMessage {
	if err == nil {
		return UserMessage{}
	}

	var (
		de *DecodeError
		ve *ValidationError
		pe *PersistenceError
	)
	switch {
	case errors.As(err, &ve):
		return UserMessage{
			Message: capitalize(ve.Error()),
			Action:  fmt.Sprintf("Correct the %s field and submit again", ve.Field),
			Code:    "VAL001",
		}
	case errors.As(err, &de):
		msg := decodeMessage
		if de.Field != "" {
			msg.Message = fmt.Sprintf("%s (%s %s)", decodeMessage.Message, de.Field, de.Reason)
		}
		return msg
	case errors.Is(err, ErrBookNotFound):
		return bookNotFoundMessage
	case errors.Is(err, ErrRouteNotFound):
		return routeNotFoundMessage
	}

	if msg, ok := matchPattern(err); ok {
		return msg
	}

	if errors.As(err, &pe) {
		return persistenceMessage
	}
	return defaultMessage
}

func matchPattern(err error) (UserMessage, bool) {
	errStr := strings.ToLower(err.Error())
	for _, ep := range errorPatterns {
		if strings.Contains(errStr, ep.pattern) {
			return ep.msg, true
		}
	}
	return UserMessage{}, false
}

// FormatUserError creates a formatted error string for display.
// The format is: "Message (Code: XXX). Action"
func FormatUserError(err error) string {
	msg := MapError(err)
	if msg.Message == "" {
		return ""
	}
	return fmt.Sprintf("%s (Code: %s). %s", msg.Message, msg.Code, msg.Action)
}

// IsUserFacing reports whether err maps to a specific message rather than
// the generic ERR000 fallback.
func IsUserFacing(err error) bool {
	if err == nil {
		return false
	}
	return MapError(err).Code != defaultMessage.Code
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
