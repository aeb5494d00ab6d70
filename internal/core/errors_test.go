package core

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundError_MatchesSentinel(t *testing.T) {
	err := fmt.Errorf("load: %w", &NotFoundError{ID: "42"})

	assert.True(t, errors.Is(err, ErrBookNotFound))
	assert.False(t, errors.Is(err, ErrRouteNotFound))
	assert.Equal(t, `load: book "42" not found`, err.Error())
}

func TestPersistenceError_Unwraps(t *testing.T) {
	cause := errors.New("connection refused")
	err := &PersistenceError{Op: "create", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "store create: connection refused", err.Error())
	assert.False(t, IsInputError(err))
}

func TestDecodeError_Message(t *testing.T) {
	assert.Equal(t, "invalid form submission: pages must be a whole number",
		(&DecodeError{Field: "pages", Reason: "must be a whole number"}).Error())
	assert.Equal(t, "invalid form submission: malformed body",
		(&DecodeError{Reason: "malformed body"}).Error())
	assert.True(t, IsInputError(&DecodeError{Reason: "x"}))
}

func TestFatalStartupError_Unwraps(t *testing.T) {
	cause := errors.New("dial tcp: connection refused")
	err := &FatalStartupError{Stage: "ping database", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ping database")
}
