package http

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalAuthMiddleware_Success(t *testing.T) {
	identity := models.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}

	auth := &mockAuthService{
		validateCredentialsFn: func(_ context.Context, email, password string) (models.User, error) {
			assert.Equal(t, "alice@example.com", email)
			assert.Equal(t, "super-secret", password)
			return identity, nil
		},
	}

	h := newHandlerWithAuth(t, auth)

	var called bool
	var seen models.User
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
		seen, _ = utils.GetAuthUserFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	body := jsonBody(t, models.Credentials{Email: "alice@example.com", Password: "super-secret"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.localAuth(next).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, identity, seen)
}

func TestLocalAuthMiddleware_InvalidJSON(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var called bool
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		called = true
	})

	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader("{broken"))
	rec := httptest.NewRecorder()

	h.localAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.False(t, called)
}

// TestLocalAuthMiddleware_GenericRejection verifies that unknown email and
// wrong password produce byte-identical 401 responses.
func TestLocalAuthMiddleware_GenericRejection(t *testing.T) {
	auth := &mockAuthService{
		validateCredentialsFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, service.ErrInvalidCredentials
		},
	}

	h := newHandlerWithAuth(t, auth)

	bodies := []string{
		jsonBody(t, models.Credentials{Email: "nobody@example.com", Password: "whatever"}),
		jsonBody(t, models.Credentials{Email: "alice@example.com", Password: "wrong-password"}),
	}

	responses := make([]string, 0, 2)
	for _, body := range bodies {
		var called bool
		next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
			called = true
		})

		req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
		rec := httptest.NewRecorder()

		h.localAuth(next).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, responses[0], responses[1])
	assert.Contains(t, responses[0], service.ErrInvalidCredentials.Error())
}

func TestLocalAuthMiddleware_InternalError(t *testing.T) {
	auth := &mockAuthService{
		validateCredentialsFn: func(_ context.Context, _, _ string) (models.User, error) {
			return models.User{}, errors.New("db is down")
		},
	}

	h := newHandlerWithAuth(t, auth)

	var called bool
	next := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		called = true
	})

	body := jsonBody(t, models.Credentials{Email: "a@b.c", Password: "pass"})
	req := httptest.NewRequest(http.MethodPost, "/api/auth/signin", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.localAuth(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, called)
	assert.NotContains(t, rec.Body.String(), "db is down")
}
