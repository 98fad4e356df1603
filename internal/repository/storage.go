package repository

import (
	"context"
	"encoding/json"
)

// Storage is the flat key-to-JSON mapping behind the service. A whole
// value is replaced on every Set; last writer wins, no versioning.
type Storage interface {
	// Get returns the stored value and whether the key exists. A missing
	// key is not an error.
	Get(ctx context.Context, key string) (json.RawMessage, bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value json.RawMessage) error
	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, key string) error
	Close() error
}
