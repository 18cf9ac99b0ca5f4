package services

import (
	"context"
	"errors"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

type AmenityService struct {
	AmenityRepo repositories.AmenityStore
	PlaceRepo   repositories.PlaceStore
}

func (s *AmenityService) CreateAmenity(ctx context.Context, actor models.Actor, req models.AmenityRequest) (models.Amenity, error) {
	if !actor.IsAdmin {
		return models.Amenity{}, models.ErrAdminOnly
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Amenity{}, err
	}
	if err := s.checkNameFree(ctx, req.Name, ""); err != nil {
		return models.Amenity{}, err
	}
	return s.AmenityRepo.CreateAmenity(ctx, models.Amenity{Name: req.Name})
}

func (s *AmenityService) checkNameFree(ctx context.Context, name, selfID string) error {
	existing, err := s.AmenityRepo.GetAmenityByName(ctx, name)
	if errors.Is(err, models.ErrAmenityNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if existing.ID != selfID {
		return models.ErrDuplicateAmenity
	}
	return nil
}

func (s *AmenityService) GetAmenityByID(ctx context.Context, id string) (models.Amenity, error) {
	return s.AmenityRepo.GetAmenityByID(ctx, id)
}

func (s *AmenityService) GetAllAmenities(ctx context.Context) ([]models.Amenity, error) {
	return s.AmenityRepo.GetAllAmenities(ctx)
}

func (s *AmenityService) UpdateAmenity(ctx context.Context, actor models.Actor, id string, req models.AmenityRequest) (models.Amenity, error) {
	if !actor.IsAdmin {
		return models.Amenity{}, models.ErrAdminOnly
	}
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Amenity{}, err
	}
	amenity, err := s.AmenityRepo.GetAmenityByID(ctx, id)
	if err != nil {
		return models.Amenity{}, err
	}
	if err := s.checkNameFree(ctx, req.Name, id); err != nil {
		return models.Amenity{}, err
	}
	amenity.Name = req.Name
	return s.AmenityRepo.UpdateAmenity(ctx, amenity)
}

// DeleteAmenity unlinks the amenity from every place before removing it.
func (s *AmenityService) DeleteAmenity(ctx context.Context, actor models.Actor, id string) error {
	if !actor.IsAdmin {
		return models.ErrAdminOnly
	}
	if _, err := s.AmenityRepo.GetAmenityByID(ctx, id); err != nil {
		return err
	}
	if err := s.PlaceRepo.RemoveAmenity(ctx, id); err != nil {
		return err
	}
	return s.AmenityRepo.DeleteAmenity(ctx, id)
}
