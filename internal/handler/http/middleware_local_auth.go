package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/service"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
)

// localAuth is the login-only guard variant. Instead of a bearer token it
// takes the raw email/password pair from the request body, validates it via
// [service.AuthService.ValidateCredentials], and attaches the resolved
// identity to the request context before the signin handler runs. This keeps
// credential checking decoupled from token issuance.
//
// Every negative outcome — unknown email, wrong password, empty fields —
// answers the same generic 401 so that accounts cannot be enumerated.
func (h *Handler) localAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		var credentials models.Credentials
		if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
			log.Err(err).Msg("Invalid JSON was passed")
			http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
			return
		}

		ctx := r.Context()
		identity, err := h.services.AuthService.ValidateCredentials(ctx, credentials.Email, credentials.Password)
		if err != nil {
			if errors.Is(err, service.ErrInvalidCredentials) {
				log.Debug().Msg("credential validation failed")
				http.Error(w, service.ErrInvalidCredentials.Error(), http.StatusUnauthorized)
				return
			}

			log.Err(err).Msg("unexpected error occurred during credential validation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}

		ctx = context.WithValue(ctx, utils.AuthUserCtxKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
