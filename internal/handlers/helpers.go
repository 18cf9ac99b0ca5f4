package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

const maxBodyBytes = 1 << 20

// Logger captures the logging contract required by the handlers.
type Logger interface {
	Infof(string, ...interface{})
	Errorf(string, ...interface{})
}

func writeError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": message})
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeMessage(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, map[string]string{"message": message})
}

// decodeJSON reads a single JSON object from the request body.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return &models.ValidationError{Message: "invalid JSON body"}
	}
	return nil
}

// errorStatus maps domain errors onto HTTP status codes.
func errorStatus(err error) int {
	var verr *models.ValidationError
	switch {
	case errors.As(err, &verr):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrDuplicateEmail),
		errors.Is(err, models.ErrDuplicateAmenity),
		errors.Is(err, models.ErrAlreadyReviewed),
		errors.Is(err, models.ErrOwnReview),
		errors.Is(err, models.ErrCredentialChange):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrInvalidCredentials),
		errors.Is(err, models.ErrInvalidToken),
		errors.Is(err, models.ErrSessionNotFound):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrForbidden),
		errors.Is(err, models.ErrAdminOnly):
		return http.StatusForbidden
	case errors.Is(err, models.ErrUserNotFound),
		errors.Is(err, models.ErrOwnerNotFound),
		errors.Is(err, models.ErrPlaceNotFound),
		errors.Is(err, models.ErrReviewNotFound),
		errors.Is(err, models.ErrAmenityNotFound):
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// respondError writes err with its mapped status. Internal errors are
// logged and replaced by a generic message.
func respondError(w http.ResponseWriter, logger Logger, op string, err error) {
	status := errorStatus(err)
	if status == http.StatusInternalServerError {
		if logger != nil {
			logger.Errorf("%s: %v", op, err)
		}
		writeError(w, status, "internal server error")
		return
	}
	writeError(w, status, err.Error())
}
