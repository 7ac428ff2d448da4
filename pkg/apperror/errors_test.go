package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("PAY_004", "wallet not found", http.StatusNotFound)
	assert.Equal(t, "[PAY_004] wallet not found", e.Error())
}

func TestAppError_ErrorWithWrapped(t *testing.T) {
	inner := errors.New("connection refused")
	e := Wrap("GW_001", "backend failure", http.StatusBadGateway, inner)
	assert.Contains(t, e.Error(), "GW_001")
	assert.Contains(t, e.Error(), "connection refused")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("duplicate key value violates unique constraint")
	e := ErrDuplicateKey("transaction", inner)
	assert.True(t, errors.Is(e, inner))
}

func TestAppError_ErrorsAs(t *testing.T) {
	var appErr *AppError
	err := error(ErrGatewayUnavailable(errors.New("timeout")))
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadGateway, appErr.HTTPStatus)
}

func TestConstructors_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		code   string
		status int
	}{
		{"duplicate key", ErrDuplicateKey("wallet", nil), "PAY_001", http.StatusConflict},
		{"validation", Validation("bad input"), "PAY_002", http.StatusBadRequest},
		{"malformed expiry", ErrMalformedExpiry(nil), "PAY_003", http.StatusBadRequest},
		{"not found", ErrNotFound("wallet"), "PAY_004", http.StatusNotFound},
		{"invalid amount", ErrInvalidAmount(), "PAY_005", http.StatusBadRequest},
		{"gateway unavailable", ErrGatewayUnavailable(nil), "GW_001", http.StatusBadGateway},
		{"configuration", ErrConfiguration("bad mode"), "CFG_001", http.StatusInternalServerError},
		{"invalid credentials", ErrInvalidCredentials(), "AUTH_001", http.StatusUnauthorized},
		{"invalid token", ErrInvalidToken(), "AUTH_002", http.StatusUnauthorized},
		{"rate limit", ErrRateLimitExceeded(), "RATE_001", http.StatusTooManyRequests},
		{"internal", InternalError(errors.New("boom")), "SYS_001", http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}
