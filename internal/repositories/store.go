package repositories

import (
	"context"
	"database/sql"
	"time"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

type UserStore interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	GetUserByID(ctx context.Context, id string) (models.User, error)
	GetUserByEmail(ctx context.Context, email string) (models.User, error)
	GetAllUsers(ctx context.Context) ([]models.User, error)
	UpdateUser(ctx context.Context, user models.User) (models.User, error)
	DeleteUser(ctx context.Context, id string) error
}

type PlaceStore interface {
	CreatePlace(ctx context.Context, place models.Place) (models.Place, error)
	GetPlaceByID(ctx context.Context, id string) (models.Place, error)
	GetAllPlaces(ctx context.Context) ([]models.Place, error)
	GetPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error)
	UpdatePlace(ctx context.Context, place models.Place) (models.Place, error)
	DeletePlace(ctx context.Context, id string) error
	RemoveAmenity(ctx context.Context, amenityID string) error
}

type ReviewStore interface {
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
	GetReviewByID(ctx context.Context, id string) (models.Review, error)
	GetAllReviews(ctx context.Context) ([]models.Review, error)
	GetReviewsByPlaceID(ctx context.Context, placeID string) ([]models.Review, error)
	GetReviewByUserAndPlace(ctx context.Context, userID, placeID string) (models.Review, error)
	UpdateReview(ctx context.Context, review models.Review) (models.Review, error)
	DeleteReview(ctx context.Context, id string) error
	DeleteReviewsByPlaceID(ctx context.Context, placeID string) (int, error)
	DeleteReviewsByUserID(ctx context.Context, userID string) (int, error)
	GetPlaceRating(ctx context.Context, placeID string) (models.RatingSummary, error)
}

type AmenityStore interface {
	CreateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error)
	GetAmenityByID(ctx context.Context, id string) (models.Amenity, error)
	GetAmenityByName(ctx context.Context, name string) (models.Amenity, error)
	GetAllAmenities(ctx context.Context) ([]models.Amenity, error)
	UpdateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error)
	DeleteAmenity(ctx context.Context, id string) error
}

type SessionStore interface {
	SetSession(ctx context.Context, session models.Session) error
	GetSession(ctx context.Context, refreshToken string) (models.Session, error)
	DeleteSession(ctx context.Context, refreshToken string) error
	DeleteUserSessions(ctx context.Context, userID string) error
}

// SessionSweeper is implemented by session stores that do not expire
// entries on their own.
type SessionSweeper interface {
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int, error)
}

// Store bundles the entity repositories the facade works against.
type Store struct {
	Users     UserStore
	Places    PlaceStore
	Reviews   ReviewStore
	Amenities AmenityStore
}

func NewInMemoryStore() Store {
	return Store{
		Users:     NewMemoryUserRepository(),
		Places:    NewMemoryPlaceRepository(),
		Reviews:   NewMemoryReviewRepository(),
		Amenities: NewMemoryAmenityRepository(),
	}
}

func NewSQLStore(db *sql.DB, dialect Dialect) Store {
	return Store{
		Users:     &UserRepository{DB: db, Dialect: dialect},
		Places:    &PlaceRepository{DB: db, Dialect: dialect},
		Reviews:   &ReviewRepository{DB: db, Dialect: dialect},
		Amenities: &AmenityRepository{DB: db, Dialect: dialect},
	}
}

// OpenStore builds the Store for a configured driver. The memory driver
// returns a nil *sql.DB. SQL stores are migrated first when migrate is set.
func OpenStore(ctx context.Context, driver, dsn string, maxOpenConns int, migrate bool) (Store, *sql.DB, error) {
	if driver == "" || driver == "memory" {
		return NewInMemoryStore(), nil, nil
	}
	db, dialect, err := Open(ctx, driver, dsn)
	if err != nil {
		return Store{}, nil, err
	}
	if maxOpenConns > 0 {
		db.SetMaxOpenConns(maxOpenConns)
	}
	if dialect == DialectSQLite {
		// sqlite allows a single writer
		db.SetMaxOpenConns(1)
	}
	if migrate {
		if _, err := Migrate(ctx, db, dialect); err != nil {
			_ = db.Close()
			return Store{}, nil, err
		}
	}
	return NewSQLStore(db, dialect), db, nil
}
