package models

import (
	"errors"
	"strings"
	"time"
)

// Validate checks if the user meets all validation requirements
func (u *User) Validate() error {
	if err := validate.Struct(u); err != nil {
		return err
	}

	if u.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// Normalize trims whitespace from the user's string fields
func (u *User) Normalize() {
	u.FirstName = strings.TrimSpace(u.FirstName)
	u.LastName = strings.TrimSpace(u.LastName)
	u.Email = strings.TrimSpace(u.Email)
}

// BeforeCreate sets up any necessary fields before creation
func (u *User) BeforeCreate() {
	u.Normalize()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = time.Now()
	}
	u.UpdatedAt = u.CreatedAt
}

// Redact clears the password so it never appears in a response body
func (u *User) Redact() *User {
	u.Password = ""
	return u
}

// AsAuthor returns the subset of fields exposed on populated posts
func (u *User) AsAuthor() *Author {
	return &Author{
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
	}
}
