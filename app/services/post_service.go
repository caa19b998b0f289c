package services

import (
	"errors"
	"fmt"

	"blogapi/app/models"
	"blogapi/app/repositories"
)

// PostService handles business logic for blog posts
type PostService struct {
	postRepo repositories.PostRepository
	userRepo repositories.UserRepository
}

// NewPostService creates a new PostService
func NewPostService(postRepo repositories.PostRepository, userRepo repositories.UserRepository) *PostService {
	return &PostService{
		postRepo: postRepo,
		userRepo: userRepo,
	}
}

// CreatePost creates a new post and returns it with the author populated.
// The userId is not checked against the users collection.
func (s *PostService) CreatePost(post *models.Post) (*models.PopulatedPost, error) {
	post.Normalize()
	if err := requirePostFields(post); err != nil {
		return nil, err
	}

	if err := s.postRepo.Create(post); err != nil {
		return nil, err
	}

	return s.populate(post)
}

// GetPost retrieves a post by ID with its author populated
func (s *PostService) GetPost(id string) (*models.PopulatedPost, error) {
	post, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	return s.populate(post)
}

// ListPosts retrieves all posts with their authors populated
func (s *PostService) ListPosts() ([]*models.PopulatedPost, error) {
	posts, err := s.postRepo.List()
	if err != nil {
		return nil, err
	}

	populated := make([]*models.PopulatedPost, 0, len(posts))
	for _, post := range posts {
		view, err := s.populate(post)
		if err != nil {
			return nil, fmt.Errorf("failed to populate post %s: %v", post.ID, err)
		}
		populated = append(populated, view)
	}
	return populated, nil
}

// UpdatePost overwrites exactly the editable fields (title, content,
// userId) and returns the result populated.
func (s *PostService) UpdatePost(id string, in *models.Post) (*models.PopulatedPost, error) {
	in.Normalize()
	if err := requirePostFields(in); err != nil {
		return nil, err
	}

	existing, err := s.postRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	existing.Title = in.Title
	existing.Content = in.Content
	existing.UserID = in.UserID

	if err := s.postRepo.Update(existing); err != nil {
		return nil, err
	}

	return s.populate(existing)
}

// DeletePost removes a post by ID
func (s *PostService) DeletePost(id string) error {
	return s.postRepo.Delete(id)
}

// populate resolves the post's userId into the author's fields. A dangling
// or malformed reference resolves to nil rather than an error.
func (s *PostService) populate(post *models.Post) (*models.PopulatedPost, error) {
	author, err := s.userRepo.GetByID(post.UserID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) || errors.Is(err, repositories.ErrInvalidID) {
			return post.Populated(nil), nil
		}
		return nil, err
	}
	return post.Populated(author.AsAuthor()), nil
}

func requirePostFields(post *models.Post) error {
	if post.Title == "" {
		return &MissingFieldError{Field: "title"}
	}
	if post.Content == "" {
		return &MissingFieldError{Field: "content"}
	}
	if post.UserID == "" {
		return &MissingFieldError{Field: "userId"}
	}
	return nil
}
