package repositories

import (
	"errors"

	"blogapi/app/models"
)

var (
	// ErrNotFound is returned when an id does not resolve to a record.
	ErrNotFound = errors.New("record not found")
	// ErrInvalidID is returned when an id is not a well-formed UUID.
	ErrInvalidID = errors.New("invalid record id")
	// ErrDuplicateEmail is returned when a user create or update would
	// reuse an email already held by another user.
	ErrDuplicateEmail = errors.New("email already registered")
)

// UserRepository defines the interface for user data access
type UserRepository interface {
	Create(user *models.User) error
	GetByID(id string) (*models.User, error)
	GetByEmail(email string) (*models.User, error)
	List() ([]*models.User, error)
	Update(user *models.User) error
	Delete(id string) error
}

// PostRepository defines the interface for post data access
type PostRepository interface {
	Create(post *models.Post) error
	GetByID(id string) (*models.Post, error)
	List() ([]*models.Post, error)
	Update(post *models.Post) error
	Delete(id string) error
}
