package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/store"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authGuardNext returns a terminal handler that records whether it ran and
// the identity it saw in the request context.
func authGuardNext(called *bool, seen *models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if user, ok := utils.GetAuthUserFromContext(r.Context()); ok {
			*seen = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthMiddleware_Success(t *testing.T) {
	authUser := models.User{ID: "user-1", Email: "alice@example.com", Name: "Alice"}

	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			assert.Equal(t, "valid.jwt.token", tokenString)
			token := models.Token{SignedString: tokenString}
			token.Claims.Subject = authUser.ID
			return token, nil
		},
		validateByIDFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, authUser.ID, id)
			return authUser, nil
		},
	}

	h := newHandlerWithAuth(t, auth)

	var called bool
	var seen models.User

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer valid.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called, "next handler must run for a valid token")
	assert.Equal(t, authUser, seen)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	var called bool
	var seen models.User

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	rec := httptest.NewRecorder()

	h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called, "next handler must not run without a token")
}

func TestAuthMiddleware_MalformedHeader(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})

	tests := []struct {
		name   string
		header string
	}{
		{"scheme only", "Bearer"},
		{"empty token part", "Bearer "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var called bool
			var seen models.User

			req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
			req.Header.Set("Authorization", tt.header)
			rec := httptest.NewRecorder()

			h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}

	h := newHandlerWithAuth(t, auth)

	var called bool
	var seen models.User

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer tampered.jwt.token")
	rec := httptest.NewRecorder()

	h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

// TestAuthMiddleware_DeletedUser covers a token that still verifies
// cryptographically but whose subject no longer exists. The guard must answer
// 401, not 404.
func TestAuthMiddleware_DeletedUser(t *testing.T) {
	auth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			token := models.Token{SignedString: tokenString}
			token.Claims.Subject = "deleted-user"
			return token, nil
		},
		validateByIDFn: func(_ context.Context, id string) (models.User, error) {
			assert.Equal(t, "deleted-user", id)
			return models.User{}, store.ErrUserNotFound
		},
	}

	h := newHandlerWithAuth(t, auth)

	var called bool
	var seen models.User

	req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
	req.Header.Set("Authorization", "Bearer still.valid.token")
	rec := httptest.NewRecorder()

	h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.False(t, called)
}

// TestAuthMiddleware_UniformRejection verifies that all rejection reasons
// produce byte-identical 401 responses, so a caller cannot tell an expired
// token from a forged one or a deleted account.
func TestAuthMiddleware_UniformRejection(t *testing.T) {
	expiredAuth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpired
		},
	}
	forgedAuth := &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{}, service.ErrTokenIsExpiredOrInvalid
		},
	}
	deletedAuth := &mockAuthService{
		parseTokenFn: func(_ context.Context, tokenString string) (models.Token, error) {
			token := models.Token{SignedString: tokenString}
			token.Claims.Subject = "gone"
			return token, nil
		},
		validateByIDFn: func(_ context.Context, _ string) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}

	responses := make([]string, 0, 3)
	for _, auth := range []*mockAuthService{expiredAuth, forgedAuth, deletedAuth} {
		h := newHandlerWithAuth(t, auth)

		var called bool
		var seen models.User

		req := httptest.NewRequest(http.MethodGet, "/api/auth/profile", nil)
		req.Header.Set("Authorization", "Bearer some.token.value")
		rec := httptest.NewRecorder()

		h.auth(authGuardNext(&called, &seen)).ServeHTTP(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		responses = append(responses, rec.Body.String())
	}

	assert.Equal(t, responses[0], responses[1])
	assert.Equal(t, responses[1], responses[2])
}

func TestGetTokenFromAuthHeader(t *testing.T) {
	tests := []struct {
		name    string
		header  string
		want    string
		wantErr error
	}{
		{"valid bearer", "Bearer abc.def.ghi", "abc.def.ghi", nil},
		{"missing token", "Bearer", "", ErrInvalidAuthorizationHeader},
		{"empty token part", "Bearer ", "", ErrEmptyToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := getTokenFromAuthHeader(tt.header)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
