package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/phrazzld/storefront-api/internal/api/shared"
	"github.com/phrazzld/storefront-api/internal/service"
	"github.com/phrazzld/storefront-api/internal/store"
)

// UserHandler handles user administration.
type UserHandler struct {
	users service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users service.UserService) *UserHandler {
	return &UserHandler{users: users}
}

// List handles GET /users.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	users, err := h.users.List(r.Context())
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}
	if len(users) == 0 {
		shared.RespondWithError(w, r, http.StatusNotFound, "No users found")
		return
	}
	shared.RespondWithSuccess(w, r, http.StatusOK, "", users)
}

// Update handles PUT /users/update/{id}. Only the username can change.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	var req UpdateUserRequest
	if err := shared.DecodeJSON(w, r, &req); err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.users.UpdateUsername(r.Context(), id, req.Username); err != nil {
		switch {
		case errors.Is(err, store.ErrUserNotFound):
			shared.RespondWithError(w, r, http.StatusNotFound, fmt.Sprintf("User with id %d not found", id))
		case errors.Is(err, store.ErrUserExists):
			shared.RespondWithError(w, r, http.StatusBadRequest, "Username already taken")
		default:
			HandleAPIError(w, r, err)
		}
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, fmt.Sprintf("User with id %d has been updated", id), nil)
}

// Delete handles DELETE /users/{id}.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err)
		return
	}

	if err := h.users.Delete(r.Context(), id); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			shared.RespondWithError(w, r, http.StatusNotFound, fmt.Sprintf("User with id %d not found", id))
			return
		}
		HandleAPIError(w, r, err)
		return
	}

	shared.RespondWithSuccess(w, r, http.StatusOK, fmt.Sprintf("User with id %d has been deleted.", id), nil)
}
