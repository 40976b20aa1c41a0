package handlers

import (
	"errors"
	"net/http"

	"blogdash/internal/models"
	"blogdash/internal/services"
	"blogdash/internal/utils"
)

type UserHandler struct {
	service services.UserService
}

func NewUserHandler(service services.UserService) *UserHandler {
	return &UserHandler{service: service}
}

func (h *UserHandler) GetUsers(w http.ResponseWriter, r *http.Request) {
	users, err := h.service.ListUsers(r.Context())
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, users)
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req models.CreateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}

	user, err := h.service.CreateUser(r.Context(), req)
	if err != nil {
		if errors.Is(err, services.ErrEmailTaken) {
			utils.SendJSONError(w, err.Error(), http.StatusConflict)
			return
		}
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserResponse{Message: "User is created", User: user})
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	var req models.UpdateUserRequest
	if !decodeBody(w, r, &req) {
		return
	}
	userID, ok := requireID(w, req.UserID, "user", http.StatusBadRequest)
	if !ok {
		return
	}

	user, err := h.service.UpdateUser(r.Context(), userID, req.NewUsername)
	if err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, models.UserResponse{Message: "User is updated", User: user})
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := queryID(w, r, "userId", "user", http.StatusBadRequest)
	if !ok {
		return
	}

	if err := h.service.DeleteUser(r.Context(), userID); err != nil {
		respondServiceError(w, r, err, http.StatusNotFound)
		return
	}

	utils.RespondWithJSON(w, http.StatusOK, utils.MessageResponse{Message: "User is deleted"})
}
