package handlers

import (
	"net/http"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type AmenityHandler struct {
	Service *services.AmenityService
	Logger  Logger
}

func (h *AmenityHandler) CreateAmenity(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.AmenityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "CreateAmenity", err)
		return
	}

	amenity, err := h.Service.CreateAmenity(r.Context(), actor, req)
	if err != nil {
		respondError(w, h.Logger, "CreateAmenity", err)
		return
	}
	writeJSON(w, http.StatusCreated, amenity)
}

func (h *AmenityHandler) GetAllAmenities(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.Service.GetAllAmenities(r.Context())
	if err != nil {
		respondError(w, h.Logger, "GetAllAmenities", err)
		return
	}
	writeJSON(w, http.StatusOK, amenities)
}

func (h *AmenityHandler) GetAmenityByID(w http.ResponseWriter, r *http.Request) {
	amenity, err := h.Service.GetAmenityByID(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetAmenityByID", err)
		return
	}
	writeJSON(w, http.StatusOK, amenity)
}

func (h *AmenityHandler) UpdateAmenity(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.AmenityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "UpdateAmenity", err)
		return
	}

	amenity, err := h.Service.UpdateAmenity(r.Context(), actor, getParam(r, "id"), req)
	if err != nil {
		respondError(w, h.Logger, "UpdateAmenity", err)
		return
	}
	writeJSON(w, http.StatusOK, amenity)
}

func (h *AmenityHandler) DeleteAmenity(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteAmenity(r.Context(), actor, getParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeleteAmenity", err)
		return
	}
	writeMessage(w, "amenity deleted successfully")
}
