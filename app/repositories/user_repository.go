package repositories

import (
	"fmt"
	"time"

	"blogapi/app/models"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerUserRepository implements UserRepository using BadgerDB
type BadgerUserRepository struct {
	db *badger.DB
}

// NewBadgerUserRepository creates a new BadgerUserRepository
func NewBadgerUserRepository(db *badger.DB) *BadgerUserRepository {
	return &BadgerUserRepository{db: db}
}

// Create inserts a new user. The email index key is checked and written in
// the same transaction as the record, so two racing creates with the same
// email cannot both succeed.
func (r *BadgerUserRepository) Create(user *models.User) error {
	user.ID = uuid.NewString()
	user.BeforeCreate()

	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	data, err := marshalEntity(user)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		_, err := txn.Get(emailKey(user.Email))
		if err == nil {
			return ErrDuplicateEmail
		}
		if err != badger.ErrKeyNotFound {
			return err
		}

		if err := txn.Set(emailKey(user.Email), []byte(user.ID)); err != nil {
			return err
		}
		return txn.Set(userKey(user.ID), data)
	})
}

// GetByID retrieves a user by ID
func (r *BadgerUserRepository) GetByID(id string) (*models.User, error) {
	if err := parseID(id); err != nil {
		return nil, err
	}

	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetByEmail retrieves a user through the email index
func (r *BadgerUserRepository) GetByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(emailKey(email))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var id string
		if err := item.Value(func(val []byte) error {
			id = string(val)
			return nil
		}); err != nil {
			return err
		}

		item, err = txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		return item.Value(func(val []byte) error {
			return unmarshalEntity(val, &user)
		})
	})

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List retrieves all users
func (r *BadgerUserRepository) List() ([]*models.User, error) {
	var users []*models.User
	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		it := txn.NewIterator(opts)
		defer it.Close()

		prefix := []byte(UserKeyPrefix)
		for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
			item := it.Item()
			var user models.User
			err := item.Value(func(val []byte) error {
				return unmarshalEntity(val, &user)
			})
			if err != nil {
				return fmt.Errorf("failed to unmarshal user: %v", err)
			}
			users = append(users, &user)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return users, nil
}

// Update overwrites an existing user in place and refreshes updated_at.
// When the email changes, the index entry moves with it under the same
// uniqueness guard as Create.
func (r *BadgerUserRepository) Update(user *models.User) error {
	if err := parseID(user.ID); err != nil {
		return err
	}

	user.Normalize()
	user.UpdatedAt = time.Now()

	if err := user.Validate(); err != nil {
		return fmt.Errorf("invalid user: %w", err)
	}

	data, err := marshalEntity(user)
	if err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(user.ID))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var stored models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &stored)
		}); err != nil {
			return err
		}

		if stored.Email != user.Email {
			if _, err := txn.Get(emailKey(user.Email)); err == nil {
				return ErrDuplicateEmail
			} else if err != badger.ErrKeyNotFound {
				return err
			}
			if err := txn.Delete(emailKey(stored.Email)); err != nil {
				return err
			}
			if err := txn.Set(emailKey(user.Email), []byte(user.ID)); err != nil {
				return err
			}
		}

		return txn.Set(userKey(user.ID), data)
	})
}

// Delete removes a user and its email index entry in one transaction
func (r *BadgerUserRepository) Delete(id string) error {
	if err := parseID(id); err != nil {
		return err
	}

	return r.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(userKey(id))
		if err == badger.ErrKeyNotFound {
			return ErrNotFound
		}
		if err != nil {
			return err
		}

		var stored models.User
		if err := item.Value(func(val []byte) error {
			return unmarshalEntity(val, &stored)
		}); err != nil {
			return err
		}

		if err := txn.Delete(emailKey(stored.Email)); err != nil {
			return err
		}
		return txn.Delete(userKey(id))
	})
}
