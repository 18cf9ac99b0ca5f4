package repositories

import (
	"context"
	"database/sql"
	"path/filepath"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

func newSQLiteStore(t *testing.T) (Store, *sql.DB) {
	t.Helper()
	dsn := "file:" + filepath.Join(t.TempDir(), "hbnb.db")
	store, db, err := OpenStore(context.Background(), "sqlite", dsn, 0, true)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return store, db
}

func seedUser(t *testing.T, store Store, email string) models.User {
	t.Helper()
	user, err := store.Users.CreateUser(context.Background(), models.User{
		Email: email, Password: "hash", FirstName: "Test", LastName: "User",
	})
	require.NoError(t, err)
	return user
}

func seedAmenity(t *testing.T, store Store, name string) models.Amenity {
	t.Helper()
	amenity, err := store.Amenities.CreateAmenity(context.Background(), models.Amenity{Name: name})
	require.NoError(t, err)
	return amenity
}

func sortedIDs(ids ...string) []string {
	out := append([]string(nil), ids...)
	sort.Strings(out)
	return out
}

func TestSQLMigrateIsIdempotent(t *testing.T) {
	_, db := newSQLiteStore(t)

	applied, err := Migrate(context.Background(), db, DialectSQLite)
	require.NoError(t, err)
	assert.Empty(t, applied)

	var n int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations`).Scan(&n))
	assert.Equal(t, 1, n)
}

func TestSQLUserRepository(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteStore(t)

	alice := seedUser(t, store, "alice@example.com")
	bob := seedUser(t, store, "bob@example.com")

	_, err := store.Users.CreateUser(ctx, models.User{Email: "alice@example.com", Password: "x"})
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	got, err := store.Users.GetUserByID(ctx, alice.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(alice, got); diff != "" {
		t.Fatalf("user mismatch (-want +got):\n%s", diff)
	}
	byEmail, err := store.Users.GetUserByEmail(ctx, "bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, bob.ID, byEmail.ID)

	bob.Email = "alice@example.com"
	_, err = store.Users.UpdateUser(ctx, bob)
	assert.ErrorIs(t, err, models.ErrDuplicateEmail)

	bob.Email = "robert@example.com"
	bob.IsAdmin = true
	updated, err := store.Users.UpdateUser(ctx, bob)
	require.NoError(t, err)
	assert.Equal(t, "robert@example.com", updated.Email)
	assert.True(t, updated.IsAdmin)
	assert.True(t, updated.CreatedAt.Equal(bob.CreatedAt))

	all, err := store.Users.GetAllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	require.NoError(t, store.Users.DeleteUser(ctx, alice.ID))
	_, err = store.Users.GetUserByID(ctx, alice.ID)
	assert.ErrorIs(t, err, models.ErrUserNotFound)
	assert.ErrorIs(t, store.Users.DeleteUser(ctx, alice.ID), models.ErrUserNotFound)
}

func TestSQLPlaceRepositoryAmenityLinks(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteStore(t)
	owner := seedUser(t, store, "owner@example.com")
	wifi := seedAmenity(t, store, "Wi-Fi")
	pool := seedAmenity(t, store, "Pool")
	sauna := seedAmenity(t, store, "Sauna")

	lat, lon := 48.85, 2.35
	place, err := store.Places.CreatePlace(ctx, models.Place{
		Title: "Loft", Description: "Top floor", Price: 120, Latitude: &lat, Longitude: &lon,
		OwnerID: owner.ID, AmenityIDs: []string{wifi.ID, pool.ID, wifi.ID},
	})
	require.NoError(t, err)

	got, err := store.Places.GetPlaceByID(ctx, place.ID)
	require.NoError(t, err)
	want := place
	want.AmenityIDs = sortedIDs(wifi.ID, pool.ID)
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("place mismatch (-want +got):\n%s", diff)
	}

	_, err = store.Places.CreatePlace(ctx, models.Place{Title: "Orphan", OwnerID: "ghost"})
	assert.ErrorIs(t, err, models.ErrOwnerNotFound)
	_, err = store.Places.CreatePlace(ctx, models.Place{Title: "Bad", OwnerID: owner.ID, AmenityIDs: []string{"nope"}})
	assert.ErrorIs(t, err, models.ErrAmenityNotFound)

	// a failed create leaves nothing behind
	all, err := store.Places.GetAllPlaces(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	got.Title = "Penthouse"
	got.Latitude = nil
	got.AmenityIDs = []string{sauna.ID}
	updated, err := store.Places.UpdatePlace(ctx, got)
	require.NoError(t, err)
	assert.Equal(t, "Penthouse", updated.Title)
	assert.Nil(t, updated.Latitude)
	assert.Equal(t, []string{sauna.ID}, updated.AmenityIDs)

	_, err = store.Places.UpdatePlace(ctx, models.Place{ID: "missing", Title: "x"})
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)

	require.NoError(t, store.Places.RemoveAmenity(ctx, sauna.ID))
	byOwner, err := store.Places.GetPlacesByOwner(ctx, owner.ID)
	require.NoError(t, err)
	require.Len(t, byOwner, 1)
	assert.Empty(t, byOwner[0].AmenityIDs)
}

func TestSQLReviewRepositoryAndPlaceCascade(t *testing.T) {
	ctx := context.Background()
	store, _ := newSQLiteStore(t)
	owner := seedUser(t, store, "owner@example.com")
	guest := seedUser(t, store, "guest@example.com")
	place, err := store.Places.CreatePlace(ctx, models.Place{Title: "Loft", OwnerID: owner.ID})
	require.NoError(t, err)

	review, err := store.Reviews.CreateReview(ctx, models.Review{Text: "Great", Rating: 5, UserID: guest.ID, PlaceID: place.ID})
	require.NoError(t, err)

	_, err = store.Reviews.CreateReview(ctx, models.Review{Text: "Again", Rating: 4, UserID: guest.ID, PlaceID: place.ID})
	assert.ErrorIs(t, err, models.ErrAlreadyReviewed)
	_, err = store.Reviews.CreateReview(ctx, models.Review{Text: "Where", Rating: 4, UserID: guest.ID, PlaceID: "missing"})
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)

	found, err := store.Reviews.GetReviewByUserAndPlace(ctx, guest.ID, place.ID)
	require.NoError(t, err)
	if diff := cmp.Diff(review, found); diff != "" {
		t.Fatalf("review mismatch (-want +got):\n%s", diff)
	}

	review.Rating = 3
	review.Text = "Fine"
	updated, err := store.Reviews.UpdateReview(ctx, review)
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Rating)
	assert.Equal(t, "Fine", updated.Text)

	byPlace, err := store.Reviews.GetReviewsByPlaceID(ctx, place.ID)
	require.NoError(t, err)
	assert.Len(t, byPlace, 1)

	rating, err := store.Reviews.GetPlaceRating(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RatingSummary{Average: 3, Count: 1}, rating)

	require.NoError(t, store.Places.DeletePlace(ctx, place.ID))
	_, err = store.Reviews.GetReviewByID(ctx, review.ID)
	assert.ErrorIs(t, err, models.ErrReviewNotFound)
	assert.ErrorIs(t, store.Places.DeletePlace(ctx, place.ID), models.ErrPlaceNotFound)

	rating, err = store.Reviews.GetPlaceRating(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, models.RatingSummary{}, rating)
}

func TestSQLAmenityRepository(t *testing.T) {
	ctx := context.Background()
	store, db := newSQLiteStore(t)
	owner := seedUser(t, store, "owner@example.com")
	wifi := seedAmenity(t, store, "Wi-Fi")
	pool := seedAmenity(t, store, "Pool")

	_, err := store.Amenities.CreateAmenity(ctx, models.Amenity{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, models.ErrDuplicateAmenity)

	pool.Name = "Wi-Fi"
	_, err = store.Amenities.UpdateAmenity(ctx, pool)
	assert.ErrorIs(t, err, models.ErrDuplicateAmenity)
	pool.Name = "Heated pool"
	renamed, err := store.Amenities.UpdateAmenity(ctx, pool)
	require.NoError(t, err)
	assert.Equal(t, "Heated pool", renamed.Name)

	byName, err := store.Amenities.GetAmenityByName(ctx, "Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, wifi.ID, byName.ID)

	place, err := store.Places.CreatePlace(ctx, models.Place{Title: "Loft", OwnerID: owner.ID, AmenityIDs: []string{wifi.ID}})
	require.NoError(t, err)

	require.NoError(t, store.Amenities.DeleteAmenity(ctx, wifi.ID))
	assert.ErrorIs(t, store.Amenities.DeleteAmenity(ctx, wifi.ID), models.ErrAmenityNotFound)

	var links int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM place_amenity WHERE place_id = ?`, place.ID).Scan(&links))
	assert.Zero(t, links)

	all, err := store.Amenities.GetAllAmenities(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
