package handlers

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type PlaceHandler struct {
	Service *services.PlaceService
	Logger  Logger
}

func (h *PlaceHandler) CreatePlace(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.CreatePlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "CreatePlace", err)
		return
	}

	place, err := h.Service.CreatePlace(r.Context(), actor, req)
	if err != nil {
		respondError(w, h.Logger, "CreatePlace", err)
		return
	}
	writeJSON(w, http.StatusCreated, place)
}

// GetAllPlaces lists places, optionally narrowed by min_price, max_price,
// lat, lon and radius_km query parameters.
func (h *PlaceHandler) GetAllPlaces(w http.ResponseWriter, r *http.Request) {
	filter, err := placeFilterFromQuery(r.URL.Query())
	if err != nil {
		respondError(w, h.Logger, "GetAllPlaces", err)
		return
	}
	places, err := h.Service.SearchPlaces(r.Context(), filter)
	if err != nil {
		respondError(w, h.Logger, "GetAllPlaces", err)
		return
	}
	writeJSON(w, http.StatusOK, places)
}

func (h *PlaceHandler) GetPlaceByID(w http.ResponseWriter, r *http.Request) {
	place, err := h.Service.GetPlaceByID(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetPlaceByID", err)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

func (h *PlaceHandler) GetPlacesByOwner(w http.ResponseWriter, r *http.Request) {
	places, err := h.Service.GetPlacesByOwner(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetPlacesByOwner", err)
		return
	}
	writeJSON(w, http.StatusOK, places)
}

func (h *PlaceHandler) UpdatePlace(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.UpdatePlaceRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "UpdatePlace", err)
		return
	}

	place, err := h.Service.UpdatePlace(r.Context(), actor, getParam(r, "id"), req)
	if err != nil {
		respondError(w, h.Logger, "UpdatePlace", err)
		return
	}
	writeJSON(w, http.StatusOK, place)
}

func (h *PlaceHandler) DeletePlace(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeletePlace(r.Context(), actor, getParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeletePlace", err)
		return
	}
	writeMessage(w, "place deleted successfully")
}

func placeFilterFromQuery(q url.Values) (models.PlaceFilter, error) {
	var filter models.PlaceFilter
	params := []struct {
		name string
		dst  **float64
	}{
		{"min_price", &filter.MinPrice},
		{"max_price", &filter.MaxPrice},
		{"lat", &filter.Latitude},
		{"lon", &filter.Longitude},
		{"radius_km", &filter.RadiusKm},
	}
	for _, p := range params {
		raw := strings.TrimSpace(q.Get(p.name))
		if raw == "" {
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return models.PlaceFilter{}, &models.ValidationError{Field: p.name, Message: "must be a number"}
		}
		*p.dst = &v
	}
	return filter, nil
}
