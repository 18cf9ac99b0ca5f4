package models

import (
	"math"
	"strings"
	"time"
)

const (
	MinRating = 1
	MaxRating = 5
)

type Review struct {
	ID        string       `json:"id"`
	Text      string       `json:"text"`
	Rating    int          `json:"rating"`
	UserID    string       `json:"user_id"`
	PlaceID   string       `json:"place_id"`
	User      *UserSummary `json:"user,omitempty"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (r Review) EntityID() string { return r.ID }

// RatingSummary aggregates the reviews of one place.
type RatingSummary struct {
	Average float64 `json:"average"`
	Count   int     `json:"count"`
}

// Summarize averages ratings, rounded to two decimals.
func Summarize(ratings []int) RatingSummary {
	if len(ratings) == 0 {
		return RatingSummary{}
	}
	total := 0
	for _, r := range ratings {
		total += r
	}
	return NewRatingSummary(float64(total)/float64(len(ratings)), len(ratings))
}

func NewRatingSummary(average float64, count int) RatingSummary {
	if count == 0 {
		return RatingSummary{}
	}
	return RatingSummary{Average: math.Round(average*100) / 100, Count: count}
}

type CreateReviewRequest struct {
	Text    string `json:"text"`
	Rating  int    `json:"rating"`
	PlaceID string `json:"place_id"`
}

func (r *CreateReviewRequest) Normalize() {
	r.Text = strings.TrimSpace(r.Text)
	r.PlaceID = strings.TrimSpace(r.PlaceID)
}

func (r CreateReviewRequest) Validate() error {
	if r.PlaceID == "" {
		return invalid("place_id", "is required")
	}
	if err := validateReviewText(r.Text); err != nil {
		return err
	}
	return ValidateRating(r.Rating)
}

type UpdateReviewRequest struct {
	Text   *string `json:"text"`
	Rating *int    `json:"rating"`
}

func (r *UpdateReviewRequest) Normalize() {
	if r.Text != nil {
		v := strings.TrimSpace(*r.Text)
		r.Text = &v
	}
}

func (r UpdateReviewRequest) Validate() error {
	if r.Text != nil {
		if err := validateReviewText(*r.Text); err != nil {
			return err
		}
	}
	if r.Rating != nil {
		return ValidateRating(*r.Rating)
	}
	return nil
}

func ValidateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return invalid("rating", "must be between 1 and 5")
	}
	return nil
}

func validateReviewText(text string) error {
	if text == "" {
		return invalid("text", "is required")
	}
	if len(text) > 1000 {
		return invalid("text", "must be at most 1000 characters")
	}
	return nil
}
