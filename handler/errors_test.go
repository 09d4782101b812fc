package handler_test

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jse-go/restkit/handler"
)

func TestHTTPError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "not_found", handler.ErrNotFound.Error())

	cause := errors.New("no such item")
	err := handler.ErrNotFound.Wrap(cause)
	assert.Equal(t, "not_found: no such item", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, http.StatusNotFound, err.Code)
	assert.NoError(t, handler.ErrNotFound.Err, "Wrap must not modify the sentinel")
}

func TestServerError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		status int
		want   int
	}{
		{"kept", http.StatusServiceUnavailable, http.StatusServiceUnavailable},
		{"non standard 5xx", 598, 598},
		{"client status", http.StatusNotFound, http.StatusInternalServerError},
		{"out of range", 600, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, handler.NewServerError(tt.status, nil).Status)
		})
	}

	cause := errors.New("upstream timeout")
	err := handler.NewServerError(http.StatusGatewayTimeout, cause)
	assert.Equal(t, "Gateway Timeout: upstream timeout", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "status 598", handler.NewServerError(598, nil).Error())
}

func TestValidationError(t *testing.T) {
	t.Parallel()

	verr := handler.NewValidationError()
	assert.True(t, verr.IsEmpty())
	assert.Equal(t, "validation failed", verr.Error())

	verr.Add("name", "is required")
	verr.Add("code", "is too long")
	verr.Add("code", "has bad characters")

	assert.False(t, verr.IsEmpty())
	assert.True(t, verr.Has("code"))
	assert.False(t, verr.Has("email"))
	assert.Equal(t, "is too long", verr.Get("code"))
	assert.Equal(t, "validation failed: code: is too long, name: is required", verr.Error())
}
