package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

type recordingLogger struct {
	errors []string
}

func (l *recordingLogger) Infof(string, ...interface{}) {}

func (l *recordingLogger) Errorf(format string, args ...interface{}) {
	l.errors = append(l.errors, fmt.Sprintf(format, args...))
}

func TestErrorStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{&models.ValidationError{Field: "rating", Message: "must be between 1 and 5"}, http.StatusBadRequest},
		{models.ErrDuplicateEmail, http.StatusBadRequest},
		{models.ErrAlreadyReviewed, http.StatusBadRequest},
		{models.ErrOwnReview, http.StatusBadRequest},
		{models.ErrCredentialChange, http.StatusBadRequest},
		{models.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: expired", models.ErrInvalidToken), http.StatusUnauthorized},
		{models.ErrForbidden, http.StatusForbidden},
		{models.ErrAdminOnly, http.StatusForbidden},
		{models.ErrPlaceNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: abc", models.ErrAmenityNotFound), http.StatusNotFound},
		{errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := errorStatus(tc.err); got != tc.want {
			t.Fatalf("errorStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestRespondErrorHidesInternalErrors(t *testing.T) {
	logger := &recordingLogger{}
	rec := httptest.NewRecorder()

	respondError(rec, logger, "op", errors.New("db exploded"))

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", rec.Code)
	}
	if strings.Contains(rec.Body.String(), "exploded") {
		t.Fatalf("internal error leaked: %s", rec.Body.String())
	}
	if len(logger.errors) != 1 {
		t.Fatalf("expected one logged error, got %v", logger.errors)
	}
}

func TestRespondErrorWritesMessage(t *testing.T) {
	rec := httptest.NewRecorder()
	respondError(rec, nil, "op", models.ErrAlreadyReviewed)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	want := `{"error":"you have already reviewed this place"}`
	if got := strings.TrimSpace(rec.Body.String()); got != want {
		t.Fatalf("body = %s, want %s", got, want)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("content type = %q", ct)
	}
}

func TestDecodeJSONRejectsGarbage(t *testing.T) {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader("{not json"))

	var dst models.LoginRequest
	err := decodeJSON(rec, req, &dst)
	var verr *models.ValidationError
	if !errors.As(err, &verr) {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGetParamPrefersRouteValue(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/places/abc?:id=route&id=query", nil)
	if got := getParam(req, "id"); got != "route" {
		t.Fatalf("getParam = %q", got)
	}
	req = httptest.NewRequest(http.MethodGet, "/places?id=query", nil)
	if got := getParam(req, "id"); got != "query" {
		t.Fatalf("getParam = %q", got)
	}
}

func TestActorContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := ActorFromContext(req.Context()); ok {
		t.Fatal("expected no actor")
	}
	ctx := WithActor(req.Context(), models.Actor{UserID: "u1", IsAdmin: true})
	actor, ok := ActorFromContext(ctx)
	if !ok || actor.UserID != "u1" || !actor.IsAdmin {
		t.Fatalf("unexpected actor %+v", actor)
	}
}
