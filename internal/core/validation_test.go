package core

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_NameLength(t *testing.T) {
	tests := []struct {
		name       string
		bookName   string
		wantErr    bool
		wantReason string
	}{
		{name: "empty", bookName: "", wantErr: true, wantReason: "must be at least 3 characters"},
		{name: "two characters", bookName: "ab", wantErr: true, wantReason: "must be at least 3 characters"},
		{name: "three characters", bookName: "abc"},
		{name: "one hundred characters", bookName: strings.Repeat("a", 100)},
		{name: "one hundred one characters", bookName: strings.Repeat("a", 101), wantErr: true, wantReason: "must be at most 100 characters"},
		{name: "multibyte counted as characters", bookName: "äöü"},
		{name: "hundred multibyte characters", bookName: strings.Repeat("ü", 100)},
		{name: "two multibyte characters", bookName: "ßü", wantErr: true, wantReason: "must be at least 3 characters"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(BookRequest{Name: tt.bookName, Author: "A", Language: "en", Pages: 1})
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}

			var ve *ValidationError
			require.True(t, errors.As(err, &ve), "want *ValidationError, got %T", err)
			assert.Equal(t, "name", ve.Field)
			assert.Equal(t, tt.bookName, ve.Value)
			assert.Equal(t, tt.wantReason, ve.Reason)
			assert.True(t, IsInputError(err))
		})
	}
}

func TestValidate_OtherFieldsUnconstrained(t *testing.T) {
	err := Validate(BookRequest{Name: "Dune", Author: "", Language: "", Pages: -5})
	assert.NoError(t, err)
}

func TestValidationError_Message(t *testing.T) {
	err := Validate(BookRequest{Name: "ab"})
	require.Error(t, err)
	assert.Equal(t, "name must be at least 3 characters", err.Error())
}
