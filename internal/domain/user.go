package domain

import (
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User.
var (
	ErrEmptyUserID         = errors.New("user ID cannot be empty")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrEmptyEmail          = errors.New("email cannot be empty")
	ErrPasswordTooShort    = errors.New("password must be at least 12 characters long")
	ErrPasswordTooLong     = errors.New("password must be at most 72 characters long")
	ErrEmptyPassword       = errors.New("password cannot be empty")
	ErrEmptyHashedPassword = errors.New("hashed password cannot be empty")
)

// Password length limits. The upper bound is bcrypt's practical input limit.
const (
	MinPasswordLength = 12
	MaxPasswordLength = 72
)

// User represents a registered learner.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	Password       string    `json:"-"` // Plaintext, held only between registration and hashing
	HashedPassword string    `json:"-"` // Never exposed in JSON
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// NewUser creates a new User with the given email and password.
// It generates a new UUID for the user ID and sets the creation/update
// timestamps. The caller is responsible for hashing the password before
// the user is stored.
func NewUser(email, password string) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:        uuid.New(),
		Email:     email,
		Password:  password,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if _, err := mail.ParseAddress(u.Email); err != nil {
		return ErrInvalidEmail
	}

	if u.Password != "" {
		if len(u.Password) < MinPasswordLength {
			return ErrPasswordTooShort
		}
		if len(u.Password) > MaxPasswordLength {
			return ErrPasswordTooLong
		}
		return nil
	}

	// Users loaded from storage carry only the hash.
	if u.HashedPassword == "" {
		return ErrEmptyPassword
	}

	return nil
}
