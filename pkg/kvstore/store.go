// Package kvstore implements the planner's persistent key/value adapters.
//
// Every driver stores whole serialized snapshots under a small, fixed set of
// keys. There are no transactional guarantees across keys.
package kvstore

import (
	"context"
	"errors"
	"fmt"
	"regexp"
)

// Store is the load/save contract used by the state containers.
type Store interface {
	// Load returns the stored value and whether the key was present.
	Load(ctx context.Context, key string) (string, bool, error)
	// Save overwrites the value stored under key.
	Save(ctx context.Context, key, value string) error
}

// ErrInvalidKey is returned for keys that cannot be mapped onto the backend.
var ErrInvalidKey = errors.New("kvstore: invalid key")

var keyPattern = regexp.MustCompile(`^[A-Za-z0-9_.:-]{1,128}$`)

func validateKey(key string) error {
	if !keyPattern.MatchString(key) {
		return fmt.Errorf("%w: %q", ErrInvalidKey, key)
	}
	return nil
}
