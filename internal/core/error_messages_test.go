package core

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapError(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantCode    string
		wantMessage string
	}{
		{
			name: "nil error returns empty",
			err:  nil,
		},
		{
			name:        "validation error uses its own message",
			err:         &ValidationError{Field: "name", Reason: "must be at least 3 characters"},
			wantCode:    "VAL001",
			wantMessage: "Name must be at least 3 characters",
		},
		{
			name:        "decode error names the field",
			err:         &DecodeError{Field: "pages", Reason: "must be a whole number"},
			wantCode:    "REQ001",
			wantMessage: "The submitted form could not be read (pages must be a whole number)",
		},
		{
			name:        "decode error without field",
			err:         &DecodeError{Reason: "malformed body"},
			wantCode:    "REQ001",
			wantMessage: "The submitted form could not be read",
		},
		{
			name:        "missing book",
			err:         &NotFoundError{ID: "42"},
			wantCode:    "BOOK001",
			wantMessage: "Book not found",
		},
		{
			name:        "missing route",
			err:         ErrRouteNotFound,
			wantCode:    "HTTP404",
			wantMessage: "Page not found",
		},
		{
			name:        "duplicate key inside persistence error",
			err:         &PersistenceError{Op: "create", Err: errors.New("ERROR: duplicate key value violates unique constraint \"book_pkey\"")},
			wantCode:    "DB001",
			wantMessage: "A book with this ID already exists",
		},
		{
			name:        "connection refused",
			err:         &PersistenceError{Op: "find_all", Err: errors.New("dial tcp 127.0.0.1:5432: connect: connection refused")},
			wantCode:    "DB002",
			wantMessage: "Unable to connect to database",
		},
		{
			name:        "closed pool",
			err:         &PersistenceError{Op: "find_one", Err: errors.New("closed pool")},
			wantCode:    "DB003",
			wantMessage: "Database connection was interrupted",
		},
		{
			name:        "deadline exceeded",
			err:         &PersistenceError{Op: "update", Err: context.DeadlineExceeded},
			wantCode:    "REQ003",
			wantMessage: "Request timed out",
		},
		{
			name:        "generic timeout",
			err:         errors.New("i/o timeout"),
			wantCode:    "DB004",
			wantMessage: "Database operation timed out",
		},
		{
			name:        "other persistence failure",
			err:         &PersistenceError{Op: "delete", Err: errors.New("syntax error at or near")},
			wantCode:    "DB099",
			wantMessage: "The book could not be saved or loaded",
		},
		{
			name:        "rate limit",
			err:         errors.New("rate limit exceeded"),
			wantCode:    "RATE001",
			wantMessage: "Too many requests",
		},
		{
			name:        "unknown error returns default",
			err:         errors.New("some random internal error"),
			wantCode:    "ERR000",
			wantMessage: "An unexpected error occurred",
		},
		{
			name:        "case insensitive matching",
			err:         errors.New("DUPLICATE KEY value"),
			wantCode:    "DB001",
			wantMessage: "A book with this ID already exists",
		},
		{
			name:        "wrapped typed error",
			err:         fmt.Errorf("edit: %w", &NotFoundError{ID: "x"}),
			wantCode:    "BOOK001",
			wantMessage: "Book not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapError(tt.err)
			assert.Equal(t, tt.wantCode, got.Code)
			assert.Equal(t, tt.wantMessage, got.Message)
		})
	}
}

func TestFormatUserError(t *testing.T) {
	got := FormatUserError(&NotFoundError{ID: "42"})
	assert.Equal(t, "Book not found (Code: BOOK001). It may have been deleted. Return to the book list", got)
	assert.Empty(t, FormatUserError(nil))
}

func TestIsUserFacing(t *testing.T) {
	assert.False(t, IsUserFacing(nil))
	assert.False(t, IsUserFacing(errors.New("boom")))
	assert.True(t, IsUserFacing(&ValidationError{Field: "name", Reason: "must be at most 100 characters"}))
	assert.True(t, IsUserFacing(&PersistenceError{Op: "create", Err: errors.New("boom")}))
}
