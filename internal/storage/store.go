package storage

import (
	"context"
	"errors"
)

var ErrNotFound = errors.New("storage: not found")

// Store is the keyed-blob persistence contract. Absence of a key is
// reported as ErrNotFound and is equivalent to the entity's documented
// default value; callers never treat it as fatal.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}
