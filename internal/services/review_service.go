package services

import (
	"context"
	"errors"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

type ReviewService struct {
	ReviewRepo repositories.ReviewStore
	PlaceRepo  repositories.PlaceStore
	UserRepo   repositories.UserStore
}

// CreateReview records the acting user's review of a place. A user reviews
// a place at most once and never their own place.
func (s *ReviewService) CreateReview(ctx context.Context, actor models.Actor, req models.CreateReviewRequest) (models.Review, error) {
	if actor.UserID == "" {
		return models.Review{}, models.ErrInvalidToken
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Review{}, err
	}

	place, err := s.PlaceRepo.GetPlaceByID(ctx, req.PlaceID)
	if err != nil {
		return models.Review{}, err
	}
	if place.OwnerID == actor.UserID {
		return models.Review{}, models.ErrOwnReview
	}
	if _, err := s.ReviewRepo.GetReviewByUserAndPlace(ctx, actor.UserID, place.ID); err == nil {
		return models.Review{}, models.ErrAlreadyReviewed
	} else if !errors.Is(err, models.ErrReviewNotFound) {
		return models.Review{}, err
	}
	author, err := s.UserRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return models.Review{}, err
	}

	review, err := s.ReviewRepo.CreateReview(ctx, models.Review{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  author.ID,
		PlaceID: place.ID,
	})
	if err != nil {
		return models.Review{}, err
	}
	review.User = author.Summary()
	return review, nil
}

func (s *ReviewService) GetReviewByID(ctx context.Context, id string) (models.Review, error) {
	review, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}
	reviews, err := s.withAuthors(ctx, []models.Review{review})
	if err != nil {
		return models.Review{}, err
	}
	return reviews[0], nil
}

// GetReviews lists every review, or only those of placeID when it is set.
func (s *ReviewService) GetReviews(ctx context.Context, placeID string) ([]models.Review, error) {
	if placeID != "" {
		return s.GetReviewsByPlaceID(ctx, placeID)
	}
	reviews, err := s.ReviewRepo.GetAllReviews(ctx)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, reviews)
}

func (s *ReviewService) GetReviewsByPlaceID(ctx context.Context, placeID string) ([]models.Review, error) {
	if _, err := s.PlaceRepo.GetPlaceByID(ctx, placeID); err != nil {
		return nil, err
	}
	reviews, err := s.ReviewRepo.GetReviewsByPlaceID(ctx, placeID)
	if err != nil {
		return nil, err
	}
	return s.withAuthors(ctx, reviews)
}

func (s *ReviewService) withAuthors(ctx context.Context, reviews []models.Review) ([]models.Review, error) {
	authors := make(map[string]*models.UserSummary)
	for i := range reviews {
		id := reviews[i].UserID
		author, seen := authors[id]
		if !seen {
			user, err := s.UserRepo.GetUserByID(ctx, id)
			switch {
			case err == nil:
				author = user.Summary()
			case !errors.Is(err, models.ErrUserNotFound):
				return nil, err
			}
			authors[id] = author
		}
		reviews[i].User = author
	}
	return reviews, nil
}

func (s *ReviewService) UpdateReview(ctx context.Context, actor models.Actor, id string, req models.UpdateReviewRequest) (models.Review, error) {
	review, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return models.Review{}, err
	}
	if !actor.CanModify(review.UserID) {
		return models.Review{}, models.ErrForbidden
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Review{}, err
	}
	if req.Text != nil {
		review.Text = *req.Text
	}
	if req.Rating != nil {
		review.Rating = *req.Rating
	}

	updated, err := s.ReviewRepo.UpdateReview(ctx, review)
	if err != nil {
		return models.Review{}, err
	}
	reviews, err := s.withAuthors(ctx, []models.Review{updated})
	if err != nil {
		return models.Review{}, err
	}
	return reviews[0], nil
}

func (s *ReviewService) DeleteReview(ctx context.Context, actor models.Actor, id string) error {
	review, err := s.ReviewRepo.GetReviewByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(review.UserID) {
		return models.ErrForbidden
	}
	return s.ReviewRepo.DeleteReview(ctx, id)
}
