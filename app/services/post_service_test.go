package services

import (
	"testing"

	"blogapi/app/models"
	"blogapi/app/repositories"
	"blogapi/app/repositories/mock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func setupPostService(t *testing.T) (*PostService, *UserService) {
	postRepo := mock.NewPostRepository()
	userRepo := mock.NewUserRepository()
	return NewPostService(postRepo, userRepo), NewUserService(userRepo)
}

func TestPostService(t *testing.T) {
	service, userService := setupPostService(t)

	author, err := userService.CreateUser(&models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "author@example.com",
		Password:  "secret123",
		IsActive:  true,
	})
	assert.NoError(t, err)

	t.Run("create post populates the author", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Hello",
			Content: "World",
			UserID:  author.ID,
		})
		assert.NoError(t, err)
		assert.NotEmpty(t, created.ID)
		assert.NotNil(t, created.Author)
		assert.Equal(t, "Jane", created.Author.FirstName)
		assert.Equal(t, "author@example.com", created.Author.Email)
	})

	t.Run("create with a dangling reference still succeeds", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Orphan",
			Content: "Nobody wrote this",
			UserID:  uuid.NewString(),
		})
		assert.NoError(t, err)
		assert.Nil(t, created.Author)
	})

	t.Run("missing fields", func(t *testing.T) {
		_, err := service.CreatePost(&models.Post{Content: "no title", UserID: author.ID})
		var missing *MissingFieldError
		assert.ErrorAs(t, err, &missing)
		assert.Equal(t, "title", missing.Field)

		_, err = service.CreatePost(&models.Post{Title: "no user"})
		assert.ErrorAs(t, err, &missing)
	})

	t.Run("get post", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Fetch me",
			Content: "Content",
			UserID:  author.ID,
		})
		assert.NoError(t, err)

		post, err := service.GetPost(created.ID)
		assert.NoError(t, err)
		assert.Equal(t, "Fetch me", post.Title)
		assert.NotNil(t, post.Author)
	})

	t.Run("get missing post", func(t *testing.T) {
		_, err := service.GetPost("no-such-id")
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("list posts populates every author", func(t *testing.T) {
		posts, err := service.ListPosts()
		assert.NoError(t, err)
		assert.NotEmpty(t, posts)

		for _, post := range posts {
			if post.Title == "Orphan" {
				assert.Nil(t, post.Author)
			} else {
				assert.NotNil(t, post.Author)
			}
		}
	})

	t.Run("update overwrites exactly the editable fields", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Before",
			Content: "Old content",
			UserID:  author.ID,
		})
		assert.NoError(t, err)

		updated, err := service.UpdatePost(created.ID, &models.Post{
			Title:   "After",
			Content: "New content",
			UserID:  author.ID,
		})
		assert.NoError(t, err)
		assert.Equal(t, "After", updated.Title)
		assert.Equal(t, "New content", updated.Content)
		assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	})

	t.Run("update can point a post at a missing user", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Repointed",
			Content: "Content",
			UserID:  author.ID,
		})
		assert.NoError(t, err)

		updated, err := service.UpdatePost(created.ID, &models.Post{
			Title:   "Repointed",
			Content: "Content",
			UserID:  uuid.NewString(),
		})
		assert.NoError(t, err)
		assert.Nil(t, updated.Author)
	})

	t.Run("update missing post", func(t *testing.T) {
		_, err := service.UpdatePost("no-such-id", &models.Post{
			Title:   "Ghost",
			Content: "Content",
			UserID:  author.ID,
		})
		assert.ErrorIs(t, err, repositories.ErrNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		created, err := service.CreatePost(&models.Post{
			Title:   "Doomed",
			Content: "Content",
			UserID:  author.ID,
		})
		assert.NoError(t, err)

		assert.NoError(t, service.DeletePost(created.ID))
		assert.ErrorIs(t, service.DeletePost(created.ID), repositories.ErrNotFound)
	})
}
