package errors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStatusMapping(t *testing.T) {
	tests := []struct {
		status int
		code   ErrorCode
	}{
		{http.StatusUnauthorized, ErrCodeUnauthorized},
		{http.StatusForbidden, ErrCodeForbidden},
		{http.StatusNotFound, ErrCodeNotFound},
		{http.StatusConflict, ErrCodeConflict},
		{http.StatusBadRequest, ErrCodeValidation},
		{http.StatusUnprocessableEntity, ErrCodeValidation},
		{http.StatusInternalServerError, ErrCodeInternal},
		{http.StatusBadGateway, ErrCodeInternal},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("status %d", tt.status), func(t *testing.T) {
			err := FromStatus(tt.status, "")
			assert.Equal(t, tt.code, err.Code)
			assert.Equal(t, tt.status, err.Status)
			assert.Equal(t, http.StatusText(tt.status), err.Message)
		})
	}
}

func TestFromStatusKeepsServerMessage(t *testing.T) {
	err := FromStatus(http.StatusUnauthorized, "token expired")
	assert.Equal(t, "token expired", err.Message)
}

func TestAuthFailureHelpers(t *testing.T) {
	assert.True(t, IsUnauthorized(Unauthorized("no session")))
	assert.True(t, IsForbidden(Forbidden("admins only")))
	assert.True(t, IsAuthFailure(Unauthorized("x")))
	assert.True(t, IsAuthFailure(Forbidden("x")))
	assert.False(t, IsAuthFailure(NotFound("x")))
	assert.False(t, IsAuthFailure(Network("down", errors.New("dial tcp"))))
}

func TestUnwrapPreservesCause(t *testing.T) {
	cause := errors.New("connection refused")
	err := Network("backend unreachable", cause)
	require.ErrorIs(t, err, cause)
	assert.True(t, IsNetwork(err))

	wrapped := fmt.Errorf("fetch plans: %w", err)
	assert.True(t, IsNetwork(wrapped))
	assert.Equal(t, ErrCodeNetwork, CodeOf(wrapped))
}

func TestCodeOfPlainError(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, CodeOf(errors.New("boom")))
}
