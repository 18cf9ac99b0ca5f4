package repositories

import (
	"context"
	"database/sql"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

// GetPlaceRating averages the ratings of a place's reviews.
func (r *ReviewRepository) GetPlaceRating(ctx context.Context, placeID string) (models.RatingSummary, error) {
	query := `SELECT COALESCE(AVG(rating), 0), COUNT(*) FROM reviews WHERE place_id = ?`
	var (
		avg   sql.NullFloat64
		count int
	)
	if err := r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), placeID).Scan(&avg, &count); err != nil {
		return models.RatingSummary{}, err
	}
	return models.NewRatingSummary(avg.Float64, count), nil
}

func (r *MemoryReviewRepository) GetPlaceRating(ctx context.Context, placeID string) (models.RatingSummary, error) {
	var ratings []int
	for _, v := range r.store.Filter(func(v models.Review) bool { return v.PlaceID == placeID }) {
		ratings = append(ratings, v.Rating)
	}
	return models.Summarize(ratings), nil
}
