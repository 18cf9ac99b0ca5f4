package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/Shadenm-404/holbertonschool-hbnb/internal/models"
	"github.com/Shadenm-404/holbertonschool-hbnb/internal/repositories"
	"github.com/Shadenm-404/holbertonschool-hbnb/utils"
)

const tokenType = "Bearer"

type AuthService struct {
	UserRepo     repositories.UserStore
	SessionRepo  repositories.SessionStore
	TokenManager *utils.Manager
	AccessTTL    time.Duration
	RefreshTTL   time.Duration
}

// Login checks the credentials and opens a refresh session. Unknown
// emails and wrong passwords are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, req models.LoginRequest) (models.Tokens, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.Tokens{}, err
	}

	user, err := s.UserRepo.GetUserByEmail(ctx, req.Email)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.Tokens{}, models.ErrInvalidCredentials
	}
	if err != nil {
		return models.Tokens{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return models.Tokens{}, models.ErrInvalidCredentials
	}

	tokens, err := s.accessToken(user)
	if err != nil {
		return models.Tokens{}, err
	}
	refresh, err := s.TokenManager.NewRefreshToken()
	if err != nil {
		return models.Tokens{}, err
	}
	err = s.SessionRepo.SetSession(ctx, models.Session{
		RefreshToken: refresh,
		UserID:       user.ID,
		ExpiresAt:    time.Now().Add(s.RefreshTTL),
	})
	if err != nil {
		return models.Tokens{}, err
	}
	tokens.RefreshToken = refresh
	return tokens, nil
}

func (s *AuthService) accessToken(user models.User) (models.Tokens, error) {
	access, err := s.TokenManager.NewJWT(user.ID, user.IsAdmin, s.AccessTTL)
	if err != nil {
		return models.Tokens{}, err
	}
	return models.Tokens{
		AccessToken: access,
		TokenType:   tokenType,
		ExpiresIn:   int64(s.AccessTTL / time.Second),
	}, nil
}

// Refresh issues a new access token for a live session. The admin claim
// is read from the user's current record.
func (s *AuthService) Refresh(ctx context.Context, req models.RefreshRequest) (models.Tokens, error) {
	req.Normalize()
	if req.RefreshToken == "" {
		return models.Tokens{}, &models.ValidationError{Field: "refresh_token", Message: "is required"}
	}

	session, err := s.SessionRepo.GetSession(ctx, req.RefreshToken)
	if errors.Is(err, models.ErrSessionNotFound) {
		return models.Tokens{}, models.ErrInvalidToken
	}
	if err != nil {
		return models.Tokens{}, err
	}
	if session.Expired(time.Now()) {
		if err := s.SessionRepo.DeleteSession(ctx, req.RefreshToken); err != nil {
			return models.Tokens{}, fmt.Errorf("delete expired session: %w", err)
		}
		return models.Tokens{}, models.ErrInvalidToken
	}

	user, err := s.UserRepo.GetUserByID(ctx, session.UserID)
	if errors.Is(err, models.ErrUserNotFound) {
		return models.Tokens{}, models.ErrInvalidToken
	}
	if err != nil {
		return models.Tokens{}, err
	}
	return s.accessToken(user)
}

// Logout revokes one refresh session, or all of the actor's sessions when
// refreshToken is empty.
func (s *AuthService) Logout(ctx context.Context, actor models.Actor, refreshToken string) error {
	if refreshToken == "" {
		return s.SessionRepo.DeleteUserSessions(ctx, actor.UserID)
	}
	session, err := s.SessionRepo.GetSession(ctx, refreshToken)
	if errors.Is(err, models.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}
	if session.UserID != actor.UserID && !actor.IsAdmin {
		return models.ErrForbidden
	}
	return s.SessionRepo.DeleteSession(ctx, refreshToken)
}

// Authenticate turns a bearer token into the acting identity.
func (s *AuthService) Authenticate(accessToken string) (models.Actor, error) {
	claims, err := s.TokenManager.Parse(accessToken)
	if err != nil {
		return models.Actor{}, err
	}
	return models.Actor{UserID: claims.UserID, IsAdmin: claims.IsAdmin}, nil
}

func (s *AuthService) Me(ctx context.Context, actor models.Actor) (models.User, error) {
	return s.UserRepo.GetUserByID(ctx, actor.UserID)
}
