package handlers

import (
	"net/http"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type UserHandler struct {
	Service *services.UserService
	Logger  Logger
}

func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.CreateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "CreateUser", err)
		return
	}

	user, err := h.Service.CreateUser(r.Context(), actor, req)
	if err != nil {
		respondError(w, h.Logger, "CreateUser", err)
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

func (h *UserHandler) GetAllUsers(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	users, err := h.Service.GetAllUsers(r.Context(), actor)
	if err != nil {
		respondError(w, h.Logger, "GetAllUsers", err)
		return
	}
	writeJSON(w, http.StatusOK, users)
}

func (h *UserHandler) GetUserByID(w http.ResponseWriter, r *http.Request) {
	user, err := h.Service.GetUserByID(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetUserByID", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.UpdateUserRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "UpdateUser", err)
		return
	}

	user, err := h.Service.UpdateUser(r.Context(), actor, getParam(r, "id"), req)
	if err != nil {
		respondError(w, h.Logger, "UpdateUser", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteUser(r.Context(), actor, getParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeleteUser", err)
		return
	}
	writeMessage(w, "user deleted successfully")
}
