package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/utils"
)

type fixture struct {
	facade   *Facade
	sessions *repositories.MemorySessionRepository
	admin    models.User
	adminAct models.Actor
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	tokens, err := utils.NewManager("test-secret")
	require.NoError(t, err)

	sessions := repositories.NewMemorySessionRepository()
	facade := NewFacade(repositories.NewInMemoryStore(), sessions, tokens, Options{
		AccessTTL:    time.Minute,
		RefreshTTL:   time.Hour,
		PasswordCost: bcrypt.MinCost,
	})

	admin, created, err := facade.Users.EnsureAdmin(context.Background(), models.CreateUserRequest{
		Email:     "admin@hbnb.io",
		Password:  "admin1234",
		FirstName: "Admin",
		LastName:  "HBnB",
	})
	require.NoError(t, err)
	require.True(t, created)

	return &fixture{
		facade:   facade,
		sessions: sessions,
		admin:    admin,
		adminAct: models.Actor{UserID: admin.ID, IsAdmin: true},
	}
}

func (f *fixture) user(t *testing.T, email string) (models.User, models.Actor) {
	t.Helper()
	user, err := f.facade.Users.CreateUser(context.Background(), f.adminAct, models.CreateUserRequest{
		Email:     email,
		Password:  "password",
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return user, models.Actor{UserID: user.ID}
}

func (f *fixture) place(t *testing.T, owner models.Actor, title string, amenities ...string) models.PlaceDetails {
	t.Helper()
	place, err := f.facade.Places.CreatePlace(context.Background(), owner, models.CreatePlaceRequest{
		Title:     title,
		Price:     100,
		Amenities: amenities,
	})
	require.NoError(t, err)
	return place
}

func (f *fixture) amenity(t *testing.T, name string) models.Amenity {
	t.Helper()
	amenity, err := f.facade.Amenities.CreateAmenity(context.Background(), f.adminAct, models.AmenityRequest{Name: name})
	require.NoError(t, err)
	return amenity
}

func strPtr(s string) *string { return &s }

func intPtr(v int) *int { return &v }

func boolPtr(v bool) *bool { return &v }

var farFuture = time.Now().Add(365 * 24 * time.Hour)
