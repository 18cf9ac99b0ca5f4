package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

func TestAmenityWritesAreAdminOnly(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, alice := f.user(t, "alice@example.com")
	wifi := f.amenity(t, "Wi-Fi")

	_, err := f.facade.Amenities.CreateAmenity(ctx, alice, models.AmenityRequest{Name: "Pool"})
	assert.ErrorIs(t, err, models.ErrAdminOnly)
	_, err = f.facade.Amenities.UpdateAmenity(ctx, alice, wifi.ID, models.AmenityRequest{Name: "WiFi"})
	assert.ErrorIs(t, err, models.ErrAdminOnly)
	assert.ErrorIs(t, f.facade.Amenities.DeleteAmenity(ctx, alice, wifi.ID), models.ErrAdminOnly)

	got, err := f.facade.Amenities.GetAmenityByID(ctx, wifi.ID)
	require.NoError(t, err)
	assert.Equal(t, "Wi-Fi", got.Name)
}

func TestAmenityNameUnique(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	wifi := f.amenity(t, "Wi-Fi")
	pool := f.amenity(t, "Pool")

	_, err := f.facade.Amenities.CreateAmenity(ctx, f.adminAct, models.AmenityRequest{Name: " Wi-Fi "})
	assert.ErrorIs(t, err, models.ErrDuplicateAmenity)

	_, err = f.facade.Amenities.UpdateAmenity(ctx, f.adminAct, pool.ID, models.AmenityRequest{Name: "Wi-Fi"})
	assert.ErrorIs(t, err, models.ErrDuplicateAmenity)

	same, err := f.facade.Amenities.UpdateAmenity(ctx, f.adminAct, wifi.ID, models.AmenityRequest{Name: "Wi-Fi"})
	require.NoError(t, err)
	assert.Equal(t, wifi.ID, same.ID)

	_, err = f.facade.Amenities.CreateAmenity(ctx, f.adminAct, models.AmenityRequest{Name: ""})
	var verr *models.ValidationError
	assert.ErrorAs(t, err, &verr)
}

func TestDeleteAmenityUnlinksPlaces(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, alice := f.user(t, "alice@example.com")
	wifi := f.amenity(t, "Wi-Fi")
	pool := f.amenity(t, "Pool")
	place := f.place(t, alice, "Loft", wifi.ID, pool.ID)

	require.NoError(t, f.facade.Amenities.DeleteAmenity(ctx, f.adminAct, wifi.ID))

	got, err := f.facade.Places.GetPlaceByID(ctx, place.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.AmenitySummary{pool.Summary()}, got.Amenities)
	assert.Equal(t, []string{pool.ID}, got.AmenityIDs)

	_, err = f.facade.Amenities.GetAmenityByID(ctx, wifi.ID)
	assert.ErrorIs(t, err, models.ErrAmenityNotFound)
	assert.ErrorIs(t, f.facade.Amenities.DeleteAmenity(ctx, f.adminAct, wifi.ID), models.ErrAmenityNotFound)
}
