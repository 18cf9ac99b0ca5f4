package services

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
)

type UserService struct {
	UserRepo     repositories.UserStore
	PlaceRepo    repositories.PlaceStore
	ReviewRepo   repositories.ReviewStore
	SessionRepo  repositories.SessionStore
	PasswordCost int
}

func (s *UserService) hashPassword(password string) (string, error) {
	cost := s.PasswordCost
	if cost == 0 {
		cost = bcrypt.DefaultCost
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), cost)
	if err != nil {
		return "", fmt.Errorf("hash password: %w", err)
	}
	return string(hashed), nil
}

func (s *UserService) CreateUser(ctx context.Context, actor models.Actor, req models.CreateUserRequest) (models.User, error) {
	if !actor.IsAdmin {
		return models.User{}, models.ErrAdminOnly
	}
	return s.createUser(ctx, req)
}

func (s *UserService) createUser(ctx context.Context, req models.CreateUserRequest) (models.User, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}
	if _, err := s.UserRepo.GetUserByEmail(ctx, req.Email); err == nil {
		return models.User{}, models.ErrDuplicateEmail
	} else if !errors.Is(err, models.ErrUserNotFound) {
		return models.User{}, err
	}

	hashed, err := s.hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}
	return s.UserRepo.CreateUser(ctx, models.User{
		Email:     req.Email,
		Password:  hashed,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		IsAdmin:   req.IsAdmin,
	})
}

func (s *UserService) GetUserByID(ctx context.Context, id string) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, id)
}

func (s *UserService) GetAllUsers(ctx context.Context, actor models.Actor) ([]models.User, error) {
	if !actor.IsAdmin {
		return nil, models.ErrAdminOnly
	}
	return s.UserRepo.GetAllUsers(ctx)
}

// UpdateUser lets a user edit their own names. Email, password and the
// admin flag are reserved for admins.
func (s *UserService) UpdateUser(ctx context.Context, actor models.Actor, id string, req models.UpdateUserRequest) (models.User, error) {
	if !actor.IsAdmin && actor.UserID != id {
		return models.User{}, models.ErrForbidden
	}
	req.Normalize()
	if !actor.IsAdmin && req.TouchesCredentials() {
		return models.User{}, models.ErrCredentialChange
	}
	if err := req.Validate(); err != nil {
		return models.User{}, err
	}

	user, err := s.UserRepo.GetUserByID(ctx, id)
	if err != nil {
		return models.User{}, err
	}

	if req.Email != nil && *req.Email != user.Email {
		if other, err := s.UserRepo.GetUserByEmail(ctx, *req.Email); err == nil && other.ID != id {
			return models.User{}, models.ErrDuplicateEmail
		} else if err != nil && !errors.Is(err, models.ErrUserNotFound) {
			return models.User{}, err
		}
		user.Email = *req.Email
	}
	if req.FirstName != nil {
		user.FirstName = *req.FirstName
	}
	if req.LastName != nil {
		user.LastName = *req.LastName
	}
	revoke := false
	if req.Password != nil {
		hashed, err := s.hashPassword(*req.Password)
		if err != nil {
			return models.User{}, err
		}
		user.Password = hashed
		revoke = true
	}
	if req.IsAdmin != nil && *req.IsAdmin != user.IsAdmin {
		user.IsAdmin = *req.IsAdmin
		revoke = true
	}

	updated, err := s.UserRepo.UpdateUser(ctx, user)
	if err != nil {
		return models.User{}, err
	}
	if revoke && s.SessionRepo != nil {
		if err := s.SessionRepo.DeleteUserSessions(ctx, id); err != nil {
			return models.User{}, fmt.Errorf("revoke sessions: %w", err)
		}
	}
	return updated, nil
}

// DeleteUser removes the user together with their places, the reviews on
// those places, their own reviews and their sessions.
func (s *UserService) DeleteUser(ctx context.Context, actor models.Actor, id string) error {
	if !actor.IsAdmin {
		return models.ErrAdminOnly
	}
	if _, err := s.UserRepo.GetUserByID(ctx, id); err != nil {
		return err
	}

	places, err := s.PlaceRepo.GetPlacesByOwner(ctx, id)
	if err != nil {
		return err
	}
	for _, place := range places {
		if _, err := s.ReviewRepo.DeleteReviewsByPlaceID(ctx, place.ID); err != nil {
			return err
		}
		if err := s.PlaceRepo.DeletePlace(ctx, place.ID); err != nil && !errors.Is(err, models.ErrPlaceNotFound) {
			return err
		}
	}
	if _, err := s.ReviewRepo.DeleteReviewsByUserID(ctx, id); err != nil {
		return err
	}
	if s.SessionRepo != nil {
		if err := s.SessionRepo.DeleteUserSessions(ctx, id); err != nil {
			return err
		}
	}
	return s.UserRepo.DeleteUser(ctx, id)
}

// EnsureAdmin creates the bootstrap admin, or promotes the account when
// the email is already registered. It reports whether a user was created.
func (s *UserService) EnsureAdmin(ctx context.Context, req models.CreateUserRequest) (models.User, bool, error) {
	req.Normalize()
	req.IsAdmin = true
	if err := req.Validate(); err != nil {
		return models.User{}, false, err
	}

	existing, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	switch {
	case errors.Is(err, models.ErrUserNotFound):
		user, err := s.createUser(ctx, req)
		return user, err == nil, err
	case err != nil:
		return models.User{}, false, err
	}
	if existing.IsAdmin {
		return existing, false, nil
	}
	existing.IsAdmin = true
	updated, err := s.UserRepo.UpdateUser(ctx, existing)
	return updated, false, err
}
