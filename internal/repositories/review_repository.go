package repositories

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

type ReviewRepository struct {
	DB      *sql.DB
	Dialect Dialect
}

const reviewColumns = `id, text, rating, user_id, place_id, created_at, updated_at`

func scanReview(row rowScanner) (models.Review, error) {
	var (
		rev                models.Review
		createdAt, updated int64
	)
	if err := row.Scan(&rev.ID, &rev.Text, &rev.Rating, &rev.UserID, &rev.PlaceID, &createdAt, &updated); err != nil {
		return models.Review{}, err
	}
	rev.CreatedAt = fromMillis(createdAt)
	rev.UpdatedAt = fromMillis(updated)
	return rev, nil
}

func (r *ReviewRepository) CreateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	var count int
	err := r.DB.QueryRowContext(ctx,
		r.Dialect.Rebind(`SELECT COUNT(*) FROM reviews WHERE user_id = ? AND place_id = ?`),
		rev.UserID, rev.PlaceID,
	).Scan(&count)
	if err != nil {
		return models.Review{}, err
	}
	if count > 0 {
		return models.Review{}, models.ErrAlreadyReviewed
	}

	stamp(&rev.ID, &rev.CreatedAt, &rev.UpdatedAt)
	rev.User = nil
	query := `
INSERT INTO reviews (` + reviewColumns + `)
VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err = r.DB.ExecContext(ctx, r.Dialect.Rebind(query),
		rev.ID, rev.Text, rev.Rating, rev.UserID, rev.PlaceID, toMillis(rev.CreatedAt), toMillis(rev.UpdatedAt),
	)
	switch {
	case err == nil:
		return rev, nil
	case isUniqueViolation(err):
		return models.Review{}, models.ErrAlreadyReviewed
	case isForeignKeyViolation(err):
		return models.Review{}, models.ErrPlaceNotFound
	}
	return models.Review{}, err
}

func (r *ReviewRepository) GetReviewByID(ctx context.Context, id string) (models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE id = ?`
	rev, err := scanReview(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, models.ErrReviewNotFound
	}
	return rev, err
}

func (r *ReviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews ORDER BY created_at, id`)
}

func (r *ReviewRepository) GetReviewsByPlaceID(ctx context.Context, placeID string) ([]models.Review, error) {
	return r.list(ctx, `SELECT `+reviewColumns+` FROM reviews WHERE place_id = ? ORDER BY created_at, id`, placeID)
}

func (r *ReviewRepository) GetReviewByUserAndPlace(ctx context.Context, userID, placeID string) (models.Review, error) {
	query := `SELECT ` + reviewColumns + ` FROM reviews WHERE user_id = ? AND place_id = ?`
	rev, err := scanReview(r.DB.QueryRowContext(ctx, r.Dialect.Rebind(query), userID, placeID))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Review{}, models.ErrReviewNotFound
	}
	return rev, err
}

func (r *ReviewRepository) list(ctx context.Context, query string, args ...any) ([]models.Review, error) {
	rows, err := r.DB.QueryContext(ctx, r.Dialect.Rebind(query), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		rev, err := scanReview(rows)
		if err != nil {
			return nil, err
		}
		reviews = append(reviews, rev)
	}
	return reviews, rows.Err()
}

func (r *ReviewRepository) UpdateReview(ctx context.Context, rev models.Review) (models.Review, error) {
	query := `
		UPDATE reviews
		SET rating = ?, text = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), rev.Rating, rev.Text, toMillis(now()), rev.ID)
	if err != nil {
		return models.Review{}, err
	}
	if n, err := result.RowsAffected(); err != nil {
		return models.Review{}, err
	} else if n == 0 {
		return models.Review{}, models.ErrReviewNotFound
	}
	return r.GetReviewByID(ctx, rev.ID)
}

func (r *ReviewRepository) DeleteReview(ctx context.Context, id string) error {
	result, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(`DELETE FROM reviews WHERE id = ?`), id)
	if err != nil {
		return err
	}
	if n, err := result.RowsAffected(); err != nil {
		return err
	} else if n == 0 {
		return models.ErrReviewNotFound
	}
	return nil
}

func (r *ReviewRepository) DeleteReviewsByPlaceID(ctx context.Context, placeID string) (int, error) {
	return r.deleteWhere(ctx, `DELETE FROM reviews WHERE place_id = ?`, placeID)
}

func (r *ReviewRepository) DeleteReviewsByUserID(ctx context.Context, userID string) (int, error) {
	return r.deleteWhere(ctx, `DELETE FROM reviews WHERE user_id = ?`, userID)
}

func (r *ReviewRepository) deleteWhere(ctx context.Context, query string, arg string) (int, error) {
	result, err := r.DB.ExecContext(ctx, r.Dialect.Rebind(query), arg)
	if err != nil {
		return 0, err
	}
	n, err := result.RowsAffected()
	return int(n), err
}
