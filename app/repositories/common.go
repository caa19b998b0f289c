package repositories

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
)

const (
	// Key prefixes for different entity types
	UserKeyPrefix = "user:"
	PostKeyPrefix = "post:"

	// Index prefix mapping an email to the owning user's id
	UserEmailIndexPrefix = "user_email:"
)

func userKey(id string) []byte {
	return []byte(UserKeyPrefix + id)
}

func postKey(id string) []byte {
	return []byte(PostKeyPrefix + id)
}

func emailKey(email string) []byte {
	return []byte(UserEmailIndexPrefix + email)
}

// parseID validates an id from the request path. A malformed id is a
// distinct failure from a missing record.
func parseID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidID, id)
	}
	return nil
}

// marshalEntity marshals an entity to JSON
func marshalEntity(entity interface{}) ([]byte, error) {
	data, err := json.Marshal(entity)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal entity: %v", err)
	}
	return data, nil
}

// unmarshalEntity unmarshals JSON data into an entity
func unmarshalEntity(data []byte, entity interface{}) error {
	if err := json.Unmarshal(data, entity); err != nil {
		return fmt.Errorf("failed to unmarshal entity: %v", err)
	}
	return nil
}
