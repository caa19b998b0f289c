package models

import (
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// User represents a registered blog author.
type User struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	FirstName string    `json:"firstName" validate:"required"`
	LastName  string    `json:"lastName" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Password  string    `json:"password,omitempty" validate:"required,min=6"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Post represents a blog post written by a user. UserID holds the author's
// id as stored; it is not checked against the users collection.
type Post struct {
	ID        string    `json:"id" validate:"required,uuid4"`
	Title     string    `json:"title" validate:"required"`
	Content   string    `json:"content" validate:"required"`
	UserID    string    `json:"userId" validate:"required"`
	CreatedAt time.Time `json:"createdAt" validate:"required"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// Author is the subset of user fields exposed when a post reference is
// populated.
type Author struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// PopulatedPost is the read-side view of a post: the raw userId is replaced
// by the referenced author's fields, or null when the reference does not
// resolve.
type PopulatedPost struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Author    *Author   `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
