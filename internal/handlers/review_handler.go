package handlers

import (
	"net/http"
	"strings"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/services"
)

type ReviewHandler struct {
	Service *services.ReviewService
	Logger  Logger
}

func (h *ReviewHandler) CreateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.CreateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "CreateReview", err)
		return
	}

	review, err := h.Service.CreateReview(r.Context(), actor, req)
	if err != nil {
		respondError(w, h.Logger, "CreateReview", err)
		return
	}
	writeJSON(w, http.StatusCreated, review)
}

// GetReviews lists reviews, filtered by the place_id query parameter when set.
func (h *ReviewHandler) GetReviews(w http.ResponseWriter, r *http.Request) {
	placeID := strings.TrimSpace(r.URL.Query().Get("place_id"))
	reviews, err := h.Service.GetReviews(r.Context(), placeID)
	if err != nil {
		respondError(w, h.Logger, "GetReviews", err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) GetReviewByID(w http.ResponseWriter, r *http.Request) {
	review, err := h.Service.GetReviewByID(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetReviewByID", err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) GetReviewsByPlaceID(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.Service.GetReviewsByPlaceID(r.Context(), getParam(r, "id"))
	if err != nil {
		respondError(w, h.Logger, "GetReviewsByPlaceID", err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) UpdateReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	var req models.UpdateReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respondError(w, h.Logger, "UpdateReview", err)
		return
	}

	review, err := h.Service.UpdateReview(r.Context(), actor, getParam(r, "id"), req)
	if err != nil {
		respondError(w, h.Logger, "UpdateReview", err)
		return
	}
	writeJSON(w, http.StatusOK, review)
}

func (h *ReviewHandler) DeleteReview(w http.ResponseWriter, r *http.Request) {
	actor, ok := requireActor(w, r)
	if !ok {
		return
	}
	if err := h.Service.DeleteReview(r.Context(), actor, getParam(r, "id")); err != nil {
		respondError(w, h.Logger, "DeleteReview", err)
		return
	}
	writeMessage(w, "review deleted successfully")
}
