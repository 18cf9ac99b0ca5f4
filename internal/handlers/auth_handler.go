package handlers

import (
	"net/http"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type AuthHandler struct {
	Service *services.AuthService
	Logger  Logger
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "Login", err)
		return
	}

	tokens, err := h.Service.Login(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, "Login", err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	var req models.RefreshRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "Refresh", err)
		return
	}

	tokens, err := h.Service.Refresh(r.Context(), req)
	if err != nil {
		respondError(w, h.Logger, "Refresh", err)
		return
	}
	writeJSON(w, http.StatusOK, tokens)
}

// Logout accepts an optional refresh_token; without one every session of
// the caller is revoked.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.RefreshRequest
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &req); err != nil {
			respondError(w, h.Logger, "Logout", err)
			return
		}
	}
	req.Normalize()

	if err := h.Service.Logout(r.Context(), actor, req.RefreshToken); err != nil {
		respondError(w, h.Logger, "Logout", err)
		return
	}
	writeMessage(w, "logged out")
}

func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	user, err := h.Service.Me(r.Context(), actor)
	if err != nil {
		respondError(w, h.Logger, "Me", err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
