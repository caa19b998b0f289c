package models

import (
	"errors"
	"strings"
	"time"
)

// Validate checks if the post meets all validation requirements
func (p *Post) Validate() error {
	if err := validate.Struct(p); err != nil {
		return err
	}

	if p.CreatedAt.IsZero() {
		return errors.New("created_at cannot be zero")
	}

	return nil
}

// Normalize trims whitespace from the post's string fields
func (p *Post) Normalize() {
	p.Title = strings.TrimSpace(p.Title)
	p.Content = strings.TrimSpace(p.Content)
	p.UserID = strings.TrimSpace(p.UserID)
}

// BeforeCreate sets up any necessary fields before creation
func (p *Post) BeforeCreate() {
	p.Normalize()
	if p.CreatedAt.IsZero() {
		p.CreatedAt = time.Now()
	}
	p.UpdatedAt = p.CreatedAt
}

// Populated returns the read-side view of the post with its author resolved.
// A nil author renders as JSON null in place of the userId.
func (p *Post) Populated(author *Author) *PopulatedPost {
	return &PopulatedPost{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		Author:    author,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}
