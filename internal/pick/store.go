package pick

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a pick id has no record.
var ErrNotFound = errors.New("pick not found")

// Store is the persistence port for picks. All returns picks ordered by
// creation time ascending. Put inserts or overwrites by id.
type Store interface {
	All(ctx context.Context) ([]Pick, error)
	Get(ctx context.Context, id string) (Pick, error)
	Put(ctx context.Context, p Pick) error
	Clear(ctx context.Context) error
}
