package services

import (
	"errors"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// UserService handles business logic for users
type UserService struct {
	userRepo repositories.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo repositories.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// CreateUser creates a new user. The duplicate-email pre-check is a
// separate read; the repository's unique index is the guard under races.
func (s *UserService) CreateUser(user *models.User) (*models.User, error) {
	user.Normalize()
	if err := requireUserFields(user, true); err != nil {
		return nil, err
	}

	_, err := s.userRepo.GetByEmail(user.Email)
	if err == nil {
		return nil, ErrUserExists
	}
	if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	if err := s.userRepo.Create(user); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return user.Redact(), nil
}

// GetUser retrieves a user by ID with the password stripped
func (s *UserService) GetUser(id string) (*models.User, error) {
	user, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return user.Redact(), nil
}

// ListUsers retrieves all users with passwords stripped
func (s *UserService) ListUsers() ([]*models.User, error) {
	users, err := s.userRepo.List()
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.Redact()
	}
	return users, nil
}

// UpdateUser overwrites exactly the editable fields (firstName, lastName,
// email); password, isActive and created_at are preserved from the stored
// record.
func (s *UserService) UpdateUser(id string, in *models.User) (*models.User, error) {
	in.Normalize()
	if err := requireUserFields(in, false); err != nil {
		return nil, err
	}

	existing, err := s.userRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.FirstName = in.FirstName
	existing.LastName = in.LastName
	existing.Email = in.Email

	if err := s.userRepo.Update(existing); err != nil {
		if errors.Is(err, repositories.ErrDuplicateEmail) {
			return nil, ErrUserExists
		}
		return nil, err
	}

	return existing.Redact(), nil
}

// DeleteUser removes a user by ID
func (s *UserService) DeleteUser(id string) error {
	return s.userRepo.Delete(id)
}

// requireUserFields checks presence of the request fields; format rules
// (email shape, password length) are left to the storage schema.
func requireUserFields(user *models.User, withPassword bool) error {
	if user.FirstName == "" {
		return &MissingFieldError{Field: "firstName"}
	}
	if user.LastName == "" {
		return &MissingFieldError{Field: "lastName"}
	}
	if user.Email == "" {
		return &MissingFieldError{Field: "email"}
	}
	if withPassword && user.Password == "" {
		return &MissingFieldError{Field: "password"}
	}
	return nil
}
