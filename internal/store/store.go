package store

import (
	"context"
	"errors"
)

var (
	// ErrSlotEmpty is returned by Load when nothing has been saved under the
	// key yet. It is the normal first-run condition, not a failure.
	ErrSlotEmpty = errors.New("slot is empty")
)

// Slot is a single named key-value slot in durable local storage. Save
// rewrites the whole value; there are no partial writes.
type Slot interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
	Clear(ctx context.Context, key string) error
	Close() error
}
