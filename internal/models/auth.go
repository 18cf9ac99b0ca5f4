package models

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt"
)

type Claims struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
	jwt.StandardClaims
}

// Actor is the authenticated identity behind a request.
type Actor struct {
	UserID  string
	IsAdmin bool
}

// CanModify reports whether the actor owns the resource or is an admin.
func (a Actor) CanModify(ownerID string) bool {
	return a.IsAdmin || (a.UserID != "" && a.UserID == ownerID)
}

type Tokens struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token,omitempty"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
}

type Session struct {
	RefreshToken string    `json:"refresh_token"`
	UserID       string    `json:"user_id"`
	ExpiresAt    time.Time `json:"expires_at"`
}

func (s Session) EntityID() string { return s.RefreshToken }

func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.After(now)
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

func (r LoginRequest) Validate() error {
	if r.Email == "" || r.Password == "" {
		return &ValidationError{Message: "missing email or password"}
	}
	return nil
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token"`
}

func (r *RefreshRequest) Normalize() {
	r.RefreshToken = strings.TrimSpace(r.RefreshToken)
}
