package jsonfile

import (
	"context"
	"errors"
	"maps"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
)

var errClosed = errors.New("jsonfile: store is closed")

type channelsRepo struct {
	s *Store
}

func (r channelsRepo) Get(_ context.Context, id string) (domain.Record, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.channels[id]
	if !ok {
		return domain.Record{}, store.ErrNotFound
	}
	return rec.Clone(), nil
}

func (r channelsRepo) Exists(_ context.Context, id string) bool {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	_, ok := r.s.channels[id]
	return ok
}

func (r channelsRepo) Project(_ context.Context, id string) domain.Projection {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	rec, ok := r.s.channels[id]
	if !ok {
		return domain.Projection{}
	}
	return rec.Project()
}

func (r channelsRepo) Count(_ context.Context) int {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	return len(r.s.channels)
}

func (r channelsRepo) Update(ctx context.Context, id string, fn store.UpdateFunc, committed ...store.CommitFunc) (domain.Record, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.s.closed {
		return domain.Record{}, errClosed
	}

	current, ok := r.s.channels[id]
	if !ok {
		return domain.Record{}, store.ErrNotFound
	}

	next := current.Clone()
	if err := fn(&next); err != nil {
		return domain.Record{}, err
	}

	if err := ctx.Err(); err != nil {
		return domain.Record{}, err
	}

	// Write the candidate map first; memory only changes once the
	// document on disk holds the new state.
	candidate := maps.Clone(r.s.channels)
	candidate[id] = next
	if err := r.s.persistLocked(candidate); err != nil {
		return domain.Record{}, err
	}

	r.s.channels = candidate
	for _, hook := range committed {
		hook(next.Clone())
	}
	return next.Clone(), nil
}
