package errors

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultHTTPCodes(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeNotFound, http.StatusNotFound},
		{ErrCodeValidation, http.StatusBadRequest},
		{ErrCodeMissingField, http.StatusBadRequest},
		{ErrCodeUnauthorized, http.StatusUnauthorized},
		{ErrCodeForbidden, http.StatusForbidden},
		{ErrCodeExternalService, http.StatusBadGateway},
		{ErrCodeDatabaseQuery, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, New(tt.code, "boom").GetHTTPCode())
		})
	}
}

func TestWrapPreservesCause(t *testing.T) {
	cause := fmt.Errorf("disk on fire")
	err := DatabaseError("insert", cause)

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "disk on fire")
	assert.Equal(t, ErrCodeDatabaseQuery, GetCode(err))
}

func TestIsUnwrapsNestedErrors(t *testing.T) {
	inner := NotFound("annotation", 42)
	wrapped := fmt.Errorf("removing annotation: %w", inner)

	assert.True(t, Is(wrapped, ErrCodeNotFound))
	assert.False(t, Is(wrapped, ErrCodeForbidden))
	assert.Equal(t, http.StatusNotFound, GetHTTPCode(wrapped))
}

func TestGetCodeFallsBackToInternal(t *testing.T) {
	assert.Equal(t, ErrCodeInternal, GetCode(fmt.Errorf("plain")))
	assert.Equal(t, http.StatusInternalServerError, GetHTTPCode(fmt.Errorf("plain")))
}

func TestForbiddenCarriesResourceDetail(t *testing.T) {
	err := Forbidden("annotation", "not the author")
	require.NotNil(t, err.Details)
	assert.Equal(t, "annotation", err.Details["resource"])
	assert.Equal(t, http.StatusForbidden, err.GetHTTPCode())
}
