package repositories

import (
	"testing"

	"blogapi/app/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func newTestUser(email string) *models.User {
	return &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     email,
		Password:  "secret123",
		IsActive:  true,
	}
}

func TestUserRepository(t *testing.T) {
	db := openTestDB(t)
	repo := NewBadgerUserRepository(db)

	t.Run("create and get user", func(t *testing.T) {
		user := newTestUser("create@example.com")

		err := repo.Create(user)
		assert.NoError(t, err)
		assert.NotEmpty(t, user.ID)
		assert.False(t, user.CreatedAt.IsZero())

		retrieved, err := repo.GetByID(user.ID)
		assert.NoError(t, err)
		assert.Equal(t, user.Email, retrieved.Email)
		assert.Equal(t, user.Password, retrieved.Password)
		assert.True(t, retrieved.IsActive)
	})

	t.Run("create rejects schema violations", func(t *testing.T) {
		user := newTestUser("bad-password@example.com")
		user.Password = "abc"
		assert.Error(t, repo.Create(user))

		user = newTestUser("not-an-email")
		assert.Error(t, repo.Create(user))
	})

	t.Run("duplicate email fails on insert", func(t *testing.T) {
		first := newTestUser("dup@example.com")
		assert.NoError(t, repo.Create(first))

		second := newTestUser("dup@example.com")
		err := repo.Create(second)
		assert.ErrorIs(t, err, ErrDuplicateEmail)
	})

	t.Run("get by email", func(t *testing.T) {
		user := newTestUser("lookup@example.com")
		assert.NoError(t, repo.Create(user))

		retrieved, err := repo.GetByEmail("lookup@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)

		_, err = repo.GetByEmail("absent@example.com")
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := repo.GetByID("not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("missing id", func(t *testing.T) {
		_, err := repo.GetByID(uuid.NewString())
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("update moves the email index", func(t *testing.T) {
		user := newTestUser("before@example.com")
		assert.NoError(t, repo.Create(user))

		user.Email = "after@example.com"
		assert.NoError(t, repo.Update(user))

		_, err := repo.GetByEmail("before@example.com")
		assert.ErrorIs(t, err, ErrNotFound)

		retrieved, err := repo.GetByEmail("after@example.com")
		assert.NoError(t, err)
		assert.Equal(t, user.ID, retrieved.ID)
		assert.True(t, retrieved.UpdatedAt.After(retrieved.CreatedAt) || retrieved.UpdatedAt.Equal(retrieved.CreatedAt))
	})

	t.Run("update rejects an email held by another user", func(t *testing.T) {
		taken := newTestUser("taken@example.com")
		assert.NoError(t, repo.Create(taken))

		user := newTestUser("free@example.com")
		assert.NoError(t, repo.Create(user))

		user.Email = "taken@example.com"
		assert.ErrorIs(t, repo.Update(user), ErrDuplicateEmail)
	})

	t.Run("update missing user", func(t *testing.T) {
		user := newTestUser("ghost@example.com")
		user.ID = uuid.NewString()
		user.BeforeCreate()
		assert.ErrorIs(t, repo.Update(user), ErrNotFound)
	})

	t.Run("delete twice", func(t *testing.T) {
		user := newTestUser("delete@example.com")
		assert.NoError(t, repo.Create(user))

		assert.NoError(t, repo.Delete(user.ID))
		assert.ErrorIs(t, repo.Delete(user.ID), ErrNotFound)

		// Email is free again after delete
		again := newTestUser("delete@example.com")
		assert.NoError(t, repo.Create(again))
	})

	t.Run("list users", func(t *testing.T) {
		users, err := repo.List()
		assert.NoError(t, err)
		assert.NotEmpty(t, users)
	})
}
