package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_MapsCodeToStatus(t *testing.T) {
	cases := map[ErrorCode]int{
		ErrCodeNotFound:     http.StatusNotFound,
		ErrCodeUnauthorized: http.StatusUnauthorized,
		ErrCodeValidation:   http.StatusBadRequest,
		ErrCodeBadRequest:   http.StatusBadRequest,
		ErrCodeConflict:     http.StatusConflict,
		ErrCodeTooLarge:     http.StatusRequestEntityTooLarge,
		ErrCodeInternal:     http.StatusInternalServerError,
	}

	for code, status := range cases {
		assert.Equal(t, status, New(code, "x").HTTPStatus, string(code))
	}
}

func TestPredicates_SeeThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("category service: %w", Conflict("slug %q уже занят", "go"))

	assert.True(t, IsConflict(wrapped))
	assert.False(t, IsNotFound(wrapped))
	assert.True(t, IsNotFound(ErrSkillNotFound))
	assert.True(t, IsValidation(Validation("поле %s обязательно", "name")))
	assert.True(t, IsUnauthorized(ErrInvalidCredentials))
}

func TestInternal_KeepsCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Internal(cause)

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusInternalServerError, err.HTTPStatus)
	assert.Contains(t, err.Error(), "connection refused")
}
