package repositories

import (
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

// openTestDB opens a throwaway Badger instance for a test
func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLogger(nil))
	assert.NoError(t, err)
	t.Cleanup(func() {
		db.Close()
	})
	return db
}

func TestParseID(t *testing.T) {
	t.Run("well-formed id", func(t *testing.T) {
		assert.NoError(t, parseID(uuid.NewString()))
	})

	t.Run("malformed id", func(t *testing.T) {
		err := parseID("not-a-uuid")
		assert.ErrorIs(t, err, ErrInvalidID)
	})

	t.Run("malformed id is not a not-found", func(t *testing.T) {
		err := parseID("42")
		assert.NotErrorIs(t, err, ErrNotFound)
	})
}

func TestKeys(t *testing.T) {
	assert.Equal(t, []byte("user:abc"), userKey("abc"))
	assert.Equal(t, []byte("post:abc"), postKey("abc"))
	assert.Equal(t, []byte("user_email:a@b.co"), emailKey("a@b.co"))
}
