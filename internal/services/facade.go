package services

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/utils"
)

type Options struct {
	AccessTTL  time.Duration
	RefreshTTL time.Duration
	// PasswordCost is the bcrypt cost; zero means bcrypt.DefaultCost.
	PasswordCost int
}

// Facade is the single entry point the HTTP layer talks to. Each service
// owns the rules for one entity and reaches into the other stores for the
// cross-entity checks.
type Facade struct {
	Users     *UserService
	Places    *PlaceService
	Reviews   *ReviewService
	Amenities *AmenityService
	Auth      *AuthService
}

func NewFacade(store repositories.Store, sessions repositories.SessionStore, tokens *utils.Manager, opts Options) *Facade {
	if opts.PasswordCost == 0 {
		opts.PasswordCost = bcrypt.DefaultCost
	}
	return &Facade{
		Users: &UserService{
			UserRepo:     store.Users,
			PlaceRepo:    store.Places,
			ReviewRepo:   store.Reviews,
			SessionRepo:  sessions,
			PasswordCost: opts.PasswordCost,
		},
		Places: &PlaceService{
			PlaceRepo:   store.Places,
			UserRepo:    store.Users,
			ReviewRepo:  store.Reviews,
			AmenityRepo: store.Amenities,
		},
		Reviews: &ReviewService{
			ReviewRepo: store.Reviews,
			PlaceRepo:  store.Places,
			UserRepo:   store.Users,
		},
		Amenities: &AmenityService{
			AmenityRepo: store.Amenities,
			PlaceRepo:   store.Places,
		},
		Auth: &AuthService{
			UserRepo:     store.Users,
			SessionRepo:  sessions,
			TokenManager: tokens,
			AccessTTL:    opts.AccessTTL,
			RefreshTTL:   opts.RefreshTTL,
		},
	}
}
