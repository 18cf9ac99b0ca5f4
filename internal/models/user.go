package models

import (
	"net/mail"
	"strings"
	"time"
)

// Entity is anything the repositories can key by id.
type Entity interface {
	EntityID() string
}

type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"-"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (u User) EntityID() string { return u.ID }

// Summary is the public projection embedded in place and review responses.
func (u User) Summary() *UserSummary {
	return &UserSummary{ID: u.ID, FirstName: u.FirstName, LastName: u.LastName, Email: u.Email}
}

type UserSummary struct {
	ID        string `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
}

// MaxPasswordBytes is the longest password bcrypt accepts.
const MaxPasswordBytes = 72

func validatePasswordLength(password string) error {
	if len(password) > MaxPasswordBytes {
		return invalid("password", "must be at most 72 bytes")
	}
	return nil
}

type CreateUserRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	IsAdmin   bool   `json:"is_admin"`
}

func (r *CreateUserRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
	r.FirstName = strings.TrimSpace(r.FirstName)
	r.LastName = strings.TrimSpace(r.LastName)
}

func (r CreateUserRequest) Validate() error {
	if err := ValidateEmail(r.Email); err != nil {
		return err
	}
	if r.Password == "" {
		return invalid("password", "is required")
	}
	if err := validatePasswordLength(r.Password); err != nil {
		return err
	}
	return validateNames(r.FirstName, r.LastName)
}

type UpdateUserRequest struct {
	FirstName *string `json:"first_name"`
	LastName  *string `json:"last_name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	IsAdmin   *bool   `json:"is_admin"`
}

// TouchesCredentials reports whether the payload changes fields only an
// admin may change.
func (r UpdateUserRequest) TouchesCredentials() bool {
	return r.Email != nil || r.Password != nil || r.IsAdmin != nil
}

func (r *UpdateUserRequest) Normalize() {
	if r.FirstName != nil {
		v := strings.TrimSpace(*r.FirstName)
		r.FirstName = &v
	}
	if r.LastName != nil {
		v := strings.TrimSpace(*r.LastName)
		r.LastName = &v
	}
	if r.Email != nil {
		v := NormalizeEmail(*r.Email)
		r.Email = &v
	}
}

func (r UpdateUserRequest) Validate() error {
	if r.Email != nil {
		if err := ValidateEmail(*r.Email); err != nil {
			return err
		}
	}
	if r.Password != nil {
		if *r.Password == "" {
			return invalid("password", "must not be empty")
		}
		if err := validatePasswordLength(*r.Password); err != nil {
			return err
		}
	}
	first, last := "", ""
	if r.FirstName != nil {
		first = *r.FirstName
	}
	if r.LastName != nil {
		last = *r.LastName
	}
	return validateNames(first, last)
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func ValidateEmail(email string) error {
	if email == "" {
		return invalid("email", "is required")
	}
	if len(email) > 128 {
		return invalid("email", "must be at most 128 characters")
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return invalid("email", "is not a valid address")
	}
	return nil
}

func validateNames(first, last string) error {
	if len(first) > 128 {
		return invalid("first_name", "must be at most 128 characters")
	}
	if len(last) > 128 {
		return invalid("last_name", "must be at most 128 characters")
	}
	return nil
}
