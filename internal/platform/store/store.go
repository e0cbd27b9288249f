// Package store persists the tracker's documents (profile, meal plan, food
// log, goals, water counter) under fixed keys. Values are JSON encoded so
// every backend stores the same bytes.
package store

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

var ErrNotFound = errors.New("key not found")

// Store is the key/value port used by the domain services.
type Store interface {
	// Load decodes the value stored under key into dst. It returns
	// ErrNotFound when the key has never been saved or was deleted.
	Load(ctx context.Context, key string, dst interface{}) error
	Save(ctx context.Context, key string, value interface{}) error
	// Delete is a no-op for missing keys.
	Delete(ctx context.Context, key string) error
}

var validKey = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_.-]{0,127}$`)

func checkKey(key string) error {
	if !validKey.MatchString(key) {
		return fmt.Errorf("invalid store key %q", key)
	}
	return nil
}
