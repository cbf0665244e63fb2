package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/go-auth-service/internal/logger"
	"github.com/MKhiriev/go-auth-service/internal/utils"
	"github.com/MKhiriev/go-auth-service/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	createdUser, err := h.services.UserService.Create(ctx, req)
	if err != nil {
		h.writeServiceError(w, r, err, "error occurred during user creation")
		return
	}

	utils.WriteJSON(w, createdUser, http.StatusCreated)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.services.UserService.List(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err, "error occurred during user listing")
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	foundUser, err := h.services.UserService.Get(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err, "error occurred during user lookup")
		return
	}

	utils.WriteJSON(w, foundUser, http.StatusOK)
}

func (h *Handler) updateUser(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)
	id := chi.URLParam(r, "id")

	var update models.UserUpdate
	if err := json.NewDecoder(r.Body).Decode(&update); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	updatedUser, err := h.services.UserService.Update(ctx, id, update)
	if err != nil {
		h.writeServiceError(w, r, err, "error occurred during user update")
		return
	}

	utils.WriteJSON(w, updatedUser, http.StatusOK)
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.services.UserService.Delete(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err, "error occurred during user deletion")
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "user deleted successfully"}, http.StatusOK)
}
