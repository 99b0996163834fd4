package store

import (
	"context"
	"errors"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
)

var (
	ErrNotFound = errors.New("store: not found")
)

// Store is the root data access interface. The only driver today keeps the
// channel map in memory and mirrors it to a JSON document, but services only
// see this interface.
type Store interface {
	Channels() Channels

	// Directory returns the application directory loaded at startup.
	Directory() domain.Directory

	// Close flushes the channel map one last time and releases the store.
	Close() error

	// Ping verifies the store can still reach its backing document.
	Ping(ctx context.Context) error
}

// UpdateFunc mutates a private copy of a record. Returning an error aborts
// the update and nothing is written.
type UpdateFunc func(rec *domain.Record) error

// CommitFunc observes a record right after its update was swapped in. It
// runs inside the update's critical section, so hooks see commits in order
// and must not block or call back into the store.
type CommitFunc func(rec domain.Record)

type Channels interface {
	// Get returns a copy of the record for id, or ErrNotFound.
	Get(ctx context.Context, id string) (domain.Record, error)

	// Exists reports whether id names a channel.
	Exists(ctx context.Context, id string) bool

	// Project returns the public view of id. Unknown ids yield the empty
	// projection rather than an error.
	Project(ctx context.Context, id string) domain.Projection

	// Update runs fn on a copy of the record for id and, if fn succeeds,
	// persists the whole map and swaps the copy in. The lookup, fn, the
	// write and the swap form one critical section across all channels.
	// Returns ErrNotFound for unknown ids without calling fn. The committed
	// hooks run after the swap, before the lock is released.
	Update(ctx context.Context, id string, fn UpdateFunc, committed ...CommitFunc) (domain.Record, error)

	// Count returns the number of channels.
	Count(ctx context.Context) int
}
