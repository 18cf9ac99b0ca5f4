package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

func TestCreateReviewRules(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, aliceAct := f.user(t, "alice@example.com")
	bob, bobAct := f.user(t, "bob@example.com")
	place := f.place(t, aliceAct, "Loft")

	tests := []struct {
		name  string
		actor models.Actor
		req   models.CreateReviewRequest
		want  error
	}{
		{"unknown place", bobAct, models.CreateReviewRequest{Text: "hi", Rating: 4, PlaceID: "missing"}, models.ErrPlaceNotFound},
		{"own place", aliceAct, models.CreateReviewRequest{Text: "mine", Rating: 5, PlaceID: place.ID}, models.ErrOwnReview},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.facade.Reviews.CreateReview(ctx, tt.actor, tt.req)
			assert.ErrorIs(t, err, tt.want)
		})
	}

	for _, rating := range []int{0, 6, -1} {
		_, err := f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "x", Rating: rating, PlaceID: place.ID})
		var verr *models.ValidationError
		assert.ErrorAs(t, err, &verr, "rating %d", rating)
	}
	_, err := f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "  ", Rating: 3, PlaceID: place.ID})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	review, err := f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "Great", Rating: 5, PlaceID: place.ID})
	require.NoError(t, err)
	assert.Equal(t, bob.ID, review.UserID)
	require.NotNil(t, review.User)
	assert.Equal(t, bob.FirstName, review.User.FirstName)

	_, err = f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "Again", Rating: 1, PlaceID: place.ID})
	assert.ErrorIs(t, err, models.ErrAlreadyReviewed)
}

func TestReviewUpdateDeleteOwnership(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, aliceAct := f.user(t, "alice@example.com")
	_, bobAct := f.user(t, "bob@example.com")
	_, carolAct := f.user(t, "carol@example.com")
	place := f.place(t, aliceAct, "Loft")

	review, err := f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "Good", Rating: 4, PlaceID: place.ID})
	require.NoError(t, err)

	_, err = f.facade.Reviews.UpdateReview(ctx, carolAct, review.ID, models.UpdateReviewRequest{Rating: intPtr(1)})
	assert.ErrorIs(t, err, models.ErrForbidden)

	_, err = f.facade.Reviews.UpdateReview(ctx, bobAct, review.ID, models.UpdateReviewRequest{Rating: intPtr(9)})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)

	updated, err := f.facade.Reviews.UpdateReview(ctx, bobAct, review.ID, models.UpdateReviewRequest{Rating: intPtr(2)})
	require.NoError(t, err)
	assert.Equal(t, 2, updated.Rating)
	assert.Equal(t, "Good", updated.Text)

	updated, err = f.facade.Reviews.UpdateReview(ctx, f.adminAct, review.ID, models.UpdateReviewRequest{Text: strPtr("Moderated")})
	require.NoError(t, err)
	assert.Equal(t, "Moderated", updated.Text)

	assert.ErrorIs(t, f.facade.Reviews.DeleteReview(ctx, carolAct, review.ID), models.ErrForbidden)
	require.NoError(t, f.facade.Reviews.DeleteReview(ctx, bobAct, review.ID))
	assert.ErrorIs(t, f.facade.Reviews.DeleteReview(ctx, bobAct, review.ID), models.ErrReviewNotFound)
}

func TestGetReviewsByPlace(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, aliceAct := f.user(t, "alice@example.com")
	_, bobAct := f.user(t, "bob@example.com")
	_, carolAct := f.user(t, "carol@example.com")
	loft := f.place(t, aliceAct, "Loft")
	cabin := f.place(t, bobAct, "Cabin")

	_, err := f.facade.Reviews.CreateReview(ctx, bobAct, models.CreateReviewRequest{Text: "a", Rating: 4, PlaceID: loft.ID})
	require.NoError(t, err)
	_, err = f.facade.Reviews.CreateReview(ctx, carolAct, models.CreateReviewRequest{Text: "b", Rating: 3, PlaceID: loft.ID})
	require.NoError(t, err)
	_, err = f.facade.Reviews.CreateReview(ctx, carolAct, models.CreateReviewRequest{Text: "c", Rating: 5, PlaceID: cabin.ID})
	require.NoError(t, err)

	loftReviews, err := f.facade.Reviews.GetReviews(ctx, loft.ID)
	require.NoError(t, err)
	assert.Len(t, loftReviews, 2)
	for _, r := range loftReviews {
		assert.Equal(t, loft.ID, r.PlaceID)
		assert.NotNil(t, r.User)
	}

	all, err := f.facade.Reviews.GetReviews(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 3)

	_, err = f.facade.Reviews.GetReviewsByPlaceID(ctx, "missing")
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)
}
