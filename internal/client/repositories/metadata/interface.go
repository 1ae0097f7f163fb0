// Package metadata implements the key/value store that holds the user
// registry and the session snapshot. Values are opaque byte strings.
package metadata

import (
	"context"
)

// Repository is a string-keyed byte store. Get returns (nil, nil) when the
// key is absent, and Delete of an absent key succeeds.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
