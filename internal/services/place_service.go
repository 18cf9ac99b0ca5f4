package services

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

type PlaceService struct {
	PlaceRepo   repositories.PlaceStore
	UserRepo    repositories.UserStore
	ReviewRepo  repositories.ReviewStore
	AmenityRepo repositories.AmenityStore
}

// CreatePlace stores a place owned by the acting user.
func (s *PlaceService) CreatePlace(ctx context.Context, actor models.Actor, req models.CreatePlaceRequest) (models.PlaceDetails, error) {
	if actor.UserID == "" {
		return models.PlaceDetails{}, models.ErrInvalidToken
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.PlaceDetails{}, err
	}

	owner, err := s.UserRepo.GetUserByID(ctx, actor.UserID)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.PlaceDetails{}, models.ErrOwnerNotFound
	}
	if err != nil {
		return models.PlaceDetails{}, err
	}
	amenities, err := s.resolveAmenities(ctx, req.Amenities)
	if err != nil {
		return models.PlaceDetails{}, err
	}

	place, err := s.PlaceRepo.CreatePlace(ctx, models.Place{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     owner.ID,
		AmenityIDs:  req.Amenities,
	})
	if err != nil {
		return models.PlaceDetails{}, err
	}
	return models.PlaceDetails{Place: place, Owner: owner.Summary(), Amenities: amenities}, nil
}

func (s *PlaceService) resolveAmenities(ctx context.Context, ids []string) ([]models.AmenitySummary, error) {
	out := make([]models.AmenitySummary, 0, len(ids))
	for _, id := range ids {
		amenity, err := s.AmenityRepo.GetAmenityByID(ctx, id)
		if errors.Is(err, models.ErrAmenityNotFound) {
			return nil, fmt.Errorf("%w: %s", models.ErrAmenityNotFound, id)
		}
		if err != nil {
			return nil, err
		}
		out = append(out, amenity.Summary())
	}
	return out, nil
}

func (s *PlaceService) GetPlaceByID(ctx context.Context, id string) (models.PlaceDetails, error) {
	place, err := s.PlaceRepo.GetPlaceByID(ctx, id)
	if err != nil {
		return models.PlaceDetails{}, err
	}
	details, err := s.expand(ctx, []models.Place{place})
	if err != nil {
		return models.PlaceDetails{}, err
	}
	return details[0], nil
}

func (s *PlaceService) GetAllPlaces(ctx context.Context) ([]models.PlaceDetails, error) {
	places, err := s.PlaceRepo.GetAllPlaces(ctx)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, places)
}

// SearchPlaces lists places matching filter. With an origin each result
// carries its distance and the list is ordered nearest first; places
// without coordinates then sort last and never match a radius.
func (s *PlaceService) SearchPlaces(ctx context.Context, filter models.PlaceFilter) ([]models.PlaceDetails, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	places, err := s.PlaceRepo.GetAllPlaces(ctx)
	if err != nil {
		return nil, err
	}

	kept := places[:0]
	for _, p := range places {
		if filter.MinPrice != nil && p.Price < *filter.MinPrice {
			continue
		}
		if filter.MaxPrice != nil && p.Price > *filter.MaxPrice {
			continue
		}
		if filter.RadiusKm != nil {
			d := distanceKm(filter.Latitude, filter.Longitude, p.Latitude, p.Longitude)
			if d == nil || *d > *filter.RadiusKm {
				continue
			}
		}
		kept = append(kept, p)
	}

	details, err := s.expand(ctx, kept)
	if err != nil || !filter.HasOrigin() {
		return details, err
	}
	for i := range details {
		details[i].DistanceKm = distanceKm(filter.Latitude, filter.Longitude, details[i].Latitude, details[i].Longitude)
	}
	sort.SliceStable(details, func(i, j int) bool {
		di, dj := details[i].DistanceKm, details[j].DistanceKm
		if di == nil || dj == nil {
			return di != nil && dj == nil
		}
		return *di < *dj
	})
	return details, nil
}

func (s *PlaceService) GetPlacesByOwner(ctx context.Context, ownerID string) ([]models.PlaceDetails, error) {
	if _, err := s.UserRepo.GetUserByID(ctx, ownerID); err != nil {
		return nil, err
	}
	places, err := s.PlaceRepo.GetPlacesByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return s.expand(ctx, places)
}

// expand attaches owner summaries, amenity names and ratings. Links to rows that
// vanished in the meantime are skipped.
func (s *PlaceService) expand(ctx context.Context, places []models.Place) ([]models.PlaceDetails, error) {
	all, err := s.AmenityRepo.GetAllAmenities(ctx)
	if err != nil {
		return nil, err
	}
	amenities := make(map[string]models.AmenitySummary, len(all))
	for _, a := range all {
		amenities[a.ID] = a.Summary()
	}
	owners := make(map[string]*models.UserSummary)

	out := make([]models.PlaceDetails, 0, len(places))
	for _, place := range places {
		owner, seen := owners[place.OwnerID]
		if !seen {
			user, err := s.UserRepo.GetUserByID(ctx, place.OwnerID)
			switch {
			case err == nil:
				owner = user.Summary()
			case !errors.Is(err, models.ErrUserNotFound):
				return nil, err
			}
			owners[place.OwnerID] = owner
		}

		rating, err := s.ReviewRepo.GetPlaceRating(ctx, place.ID)
		if err != nil {
			return nil, err
		}
		details := models.PlaceDetails{Place: place, Owner: owner, Amenities: []models.AmenitySummary{}, Rating: rating}
		for _, id := range place.AmenityIDs {
			if a, ok := amenities[id]; ok {
				details.Amenities = append(details.Amenities, a)
			}
		}
		out = append(out, details)
	}
	return out, nil
}

// UpdatePlace applies a partial update. Only the owner or an admin may
// change a place; the owner itself never changes.
func (s *PlaceService) UpdatePlace(ctx context.Context, actor models.Actor, id string, req models.UpdatePlaceRequest) (models.PlaceDetails, error) {
	place, err := s.PlaceRepo.GetPlaceByID(ctx, id)
	if err != nil {
		return models.PlaceDetails{}, err
	}
	if !actor.CanModify(place.OwnerID) {
		return models.PlaceDetails{}, models.ErrForbidden
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.PlaceDetails{}, err
	}
	if req.Amenities != nil {
		if _, err := s.resolveAmenities(ctx, *req.Amenities); err != nil {
			return models.PlaceDetails{}, err
		}
	}

	req.Apply(&place)
	updated, err := s.PlaceRepo.UpdatePlace(ctx, place)
	if err != nil {
		return models.PlaceDetails{}, err
	}
	details, err := s.expand(ctx, []models.Place{updated})
	if err != nil {
		return models.PlaceDetails{}, err
	}
	return details[0], nil
}

// DeletePlace removes the place and every review written for it.
func (s *PlaceService) DeletePlace(ctx context.Context, actor models.Actor, id string) error {
	place, err := s.PlaceRepo.GetPlaceByID(ctx, id)
	if err != nil {
		return err
	}
	if !actor.CanModify(place.OwnerID) {
		return models.ErrForbidden
	}
	if _, err := s.ReviewRepo.DeleteReviewsByPlaceID(ctx, id); err != nil {
		return err
	}
	return s.PlaceRepo.DeletePlace(ctx, id)
}
