package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
)

// timestamps are kept at millisecond precision so the memory and SQL
// stores hand back identical values.
func now() time.Time {
	return time.Now().UTC().Truncate(time.Millisecond)
}

func stamp(id *string, createdAt, updatedAt *time.Time) {
	if *id == "" {
		*id = uuid.NewString()
	}
	t := now()
	if createdAt.IsZero() {
		*createdAt = t
	}
	*updatedAt = t
}

type MemoryUserRepository struct {
	store *MemoryStore[models.User]
}

func NewMemoryUserRepository() *MemoryUserRepository {
	return &MemoryUserRepository{store: NewMemoryStore[models.User]()}
}

func (r *MemoryUserRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	stamp(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	err := r.store.atomically(func() error {
		if _, taken := r.store.findLocked(func(u models.User) bool { return u.Email == user.Email }); taken {
			return models.ErrDuplicateEmail
		}
		if !r.store.addLocked(user) {
			return models.ErrDuplicateEmail
		}
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *MemoryUserRepository) GetUserByID(ctx context.Context, id string) (models.User, error) {
	user, ok := r.store.Get(id)
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) GetUserByEmail(ctx context.Context, email string) (models.User, error) {
	user, ok := r.store.Find(func(u models.User) bool { return u.Email == email })
	if !ok {
		return models.User{}, models.ErrUserNotFound
	}
	return user, nil
}

func (r *MemoryUserRepository) GetAllUsers(ctx context.Context) ([]models.User, error) {
	return r.store.GetAll(), nil
}

func (r *MemoryUserRepository) UpdateUser(ctx context.Context, user models.User) (models.User, error) {
	err := r.store.atomically(func() error {
		existing, ok := r.store.items[user.ID]
		if !ok {
			return models.ErrUserNotFound
		}
		if _, taken := r.store.findLocked(func(u models.User) bool { return u.Email == user.Email && u.ID != user.ID }); taken {
			return models.ErrDuplicateEmail
		}
		user.CreatedAt = existing.CreatedAt
		user.UpdatedAt = now()
		r.store.updateLocked(user)
		return nil
	})
	if err != nil {
		return models.User{}, err
	}
	return user, nil
}

func (r *MemoryUserRepository) DeleteUser(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrUserNotFound
	}
	return nil
}

type MemoryPlaceRepository struct {
	store *MemoryStore[models.Place]
}

func NewMemoryPlaceRepository() *MemoryPlaceRepository {
	return &MemoryPlaceRepository{store: NewMemoryStore[models.Place]()}
}

func clonePlace(p models.Place) models.Place {
	p.AmenityIDs = append([]string(nil), p.AmenityIDs...)
	if p.Latitude != nil {
		v := *p.Latitude
		p.Latitude = &v
	}
	if p.Longitude != nil {
		v := *p.Longitude
		p.Longitude = &v
	}
	return p
}

func clonePlaces(in []models.Place) []models.Place {
	out := make([]models.Place, len(in))
	for i, p := range in {
		out[i] = clonePlace(p)
	}
	return out
}

func (r *MemoryPlaceRepository) CreatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	stamp(&place.ID, &place.CreatedAt, &place.UpdatedAt)
	place = clonePlace(place)
	r.store.Add(place)
	return clonePlace(place), nil
}

func (r *MemoryPlaceRepository) GetPlaceByID(ctx context.Context, id string) (models.Place, error) {
	place, ok := r.store.Get(id)
	if !ok {
		return models.Place{}, models.ErrPlaceNotFound
	}
	return clonePlace(place), nil
}

func (r *MemoryPlaceRepository) GetAllPlaces(ctx context.Context) ([]models.Place, error) {
	return clonePlaces(r.store.GetAll()), nil
}

func (r *MemoryPlaceRepository) GetPlacesByOwner(ctx context.Context, ownerID string) ([]models.Place, error) {
	return clonePlaces(r.store.Filter(func(p models.Place) bool { return p.OwnerID == ownerID })), nil
}

func (r *MemoryPlaceRepository) UpdatePlace(ctx context.Context, place models.Place) (models.Place, error) {
	existing, ok := r.store.Get(place.ID)
	if !ok {
		return models.Place{}, models.ErrPlaceNotFound
	}
	place.OwnerID = existing.OwnerID
	place.CreatedAt = existing.CreatedAt
	place.UpdatedAt = now()
	place = clonePlace(place)
	if !r.store.Update(place) {
		return models.Place{}, models.ErrPlaceNotFound
	}
	return clonePlace(place), nil
}

func (r *MemoryPlaceRepository) DeletePlace(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrPlaceNotFound
	}
	return nil
}

func (r *MemoryPlaceRepository) RemoveAmenity(ctx context.Context, amenityID string) error {
	r.store.UpdateWhere(
		func(p models.Place) bool { return p.HasAmenity(amenityID) },
		func(p models.Place) models.Place {
			kept := make([]string, 0, len(p.AmenityIDs))
			for _, id := range p.AmenityIDs {
				if id != amenityID {
					kept = append(kept, id)
				}
			}
			p.AmenityIDs = kept
			return p
		},
	)
	return nil
}

type MemoryReviewRepository struct {
	store *MemoryStore[models.Review]
}

func NewMemoryReviewRepository() *MemoryReviewRepository {
	return &MemoryReviewRepository{store: NewMemoryStore[models.Review]()}
}

func (r *MemoryReviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	stamp(&review.ID, &review.CreatedAt, &review.UpdatedAt)
	review.User = nil
	err := r.store.atomically(func() error {
		dup := func(v models.Review) bool { return v.UserID == review.UserID && v.PlaceID == review.PlaceID }
		if _, taken := r.store.findLocked(dup); taken {
			return models.ErrAlreadyReviewed
		}
		r.store.addLocked(review)
		return nil
	})
	if err != nil {
		return models.Review{}, err
	}
	return review, nil
}

func (r *MemoryReviewRepository) GetReviewByID(ctx context.Context, id string) (models.Review, error) {
	review, ok := r.store.Get(id)
	if !ok {
		return models.Review{}, models.ErrReviewNotFound
	}
	return review, nil
}

func (r *MemoryReviewRepository) GetAllReviews(ctx context.Context) ([]models.Review, error) {
	return r.store.GetAll(), nil
}

func (r *MemoryReviewRepository) GetReviewsByPlaceID(ctx context.Context, placeID string) ([]models.Review, error) {
	return r.store.Filter(func(v models.Review) bool { return v.PlaceID == placeID }), nil
}

func (r *MemoryReviewRepository) GetReviewByUserAndPlace(ctx context.Context, userID, placeID string) (models.Review, error) {
	review, ok := r.store.Find(func(v models.Review) bool { return v.UserID == userID && v.PlaceID == placeID })
	if !ok {
		return models.Review{}, models.ErrReviewNotFound
	}
	return review, nil
}

func (r *MemoryReviewRepository) UpdateReview(ctx context.Context, review models.Review) (models.Review, error) {
	existing, ok := r.store.Get(review.ID)
	if !ok {
		return models.Review{}, models.ErrReviewNotFound
	}
	existing.Text = review.Text
	existing.Rating = review.Rating
	existing.UpdatedAt = now()
	if !r.store.Update(existing) {
		return models.Review{}, models.ErrReviewNotFound
	}
	return existing, nil
}

func (r *MemoryReviewRepository) DeleteReview(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrReviewNotFound
	}
	return nil
}

func (r *MemoryReviewRepository) DeleteReviewsByPlaceID(ctx context.Context, placeID string) (int, error) {
	return r.store.DeleteWhere(func(v models.Review) bool { return v.PlaceID == placeID }), nil
}

func (r *MemoryReviewRepository) DeleteReviewsByUserID(ctx context.Context, userID string) (int, error) {
	return r.store.DeleteWhere(func(v models.Review) bool { return v.UserID == userID }), nil
}

type MemoryAmenityRepository struct {
	store *MemoryStore[models.Amenity]
}

func NewMemoryAmenityRepository() *MemoryAmenityRepository {
	return &MemoryAmenityRepository{store: NewMemoryStore[models.Amenity]()}
}

func (r *MemoryAmenityRepository) CreateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error) {
	stamp(&amenity.ID, &amenity.CreatedAt, &amenity.UpdatedAt)
	err := r.store.atomically(func() error {
		if _, taken := r.store.findLocked(func(a models.Amenity) bool { return a.Name == amenity.Name }); taken {
			return models.ErrDuplicateAmenity
		}
		r.store.addLocked(amenity)
		return nil
	})
	if err != nil {
		return models.Amenity{}, err
	}
	return amenity, nil
}

func (r *MemoryAmenityRepository) GetAmenityByID(ctx context.Context, id string) (models.Amenity, error) {
	amenity, ok := r.store.Get(id)
	if !ok {
		return models.Amenity{}, models.ErrAmenityNotFound
	}
	return amenity, nil
}

func (r *MemoryAmenityRepository) GetAmenityByName(ctx context.Context, name string) (models.Amenity, error) {
	amenity, ok := r.store.Find(func(a models.Amenity) bool { return a.Name == name })
	if !ok {
		return models.Amenity{}, models.ErrAmenityNotFound
	}
	return amenity, nil
}

func (r *MemoryAmenityRepository) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	return r.store.GetAll(), nil
}

func (r *MemoryAmenityRepository) UpdateAmenity(ctx context.Context, amenity models.Amenity) (models.Amenity, error) {
	err := r.store.atomically(func() error {
		existing, ok := r.store.items[amenity.ID]
		if !ok {
			return models.ErrAmenityNotFound
		}
		if _, taken := r.store.findLocked(func(a models.Amenity) bool { return a.Name == amenity.Name && a.ID != amenity.ID }); taken {
			return models.ErrDuplicateAmenity
		}
		amenity.CreatedAt = existing.CreatedAt
		amenity.UpdatedAt = now()
		r.store.updateLocked(amenity)
		return nil
	})
	if err != nil {
		return models.Amenity{}, err
	}
	return amenity, nil
}

func (r *MemoryAmenityRepository) DeleteAmenity(ctx context.Context, id string) error {
	if !r.store.Delete(id) {
		return models.ErrAmenityNotFound
	}
	return nil
}
