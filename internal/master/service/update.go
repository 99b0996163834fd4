package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
	"github.com/cappelnord/codeklavier-ar-master/pkg/cryptox"
	"github.com/cappelnord/codeklavier-ar-master/pkg/slogx"
)

// Notifier is told about every channel whose state changed. Publish is
// called while the store's write lock is held and must not block.
type Notifier interface {
	Publish(id string, info domain.Projection)
}

type UpdateService struct {
	Store store.Store

	// Notifier is optional.
	Notifier Notifier
}

// Apply authenticates and merges an update for channel id.
//
// payload is the base64 encoding of a JSON object and hash is the lowercase
// hex HMAC-SHA256 of the decoded bytes, keyed with the channel secret. Only
// whitelisted keys of the object are merged; everything else on the record
// is kept. If the directory forces a websocket URL for id, that URL wins
// over whatever the payload carries.
//
// Errors are ErrNotFound, ErrAuthenticationFailed, ErrInvalidPayload, or a
// wrapped store error. Nothing changes unless Apply returns nil.
func (s *UpdateService) Apply(ctx context.Context, id, payload, hash string) error {
	log := slogx.FromContext(ctx).With(slog.String("channel", id))
	override, hasOverride := s.Store.Directory().WSOverride(id)

	// Publishing from the commit hook keeps feed order equal to commit
	// order when two sets race on one channel.
	var hooks []store.CommitFunc
	if s.Notifier != nil {
		hooks = append(hooks, func(rec domain.Record) {
			s.Notifier.Publish(id, rec.Project())
		})
	}

	_, err := s.Store.Channels().Update(ctx, id, func(rec *domain.Record) error {
		decoded, err := decodePayload(payload)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}

		if rec.Secret == "" {
			log.Warn("channel has no secret, rejecting update")
			return ErrAuthenticationFailed
		}
		if !cryptox.VerifyHex(rec.Secret, decoded, hash) {
			return ErrAuthenticationFailed
		}

		patch, err := domain.ParsePatch(decoded)
		if err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidPayload, err)
		}

		if hasOverride {
			patch.Force(domain.FieldWebsocketBaseURL, override)
		}

		written := rec.Merge(patch)
		log.Debug("merging channel update", slog.Int("fields", len(written)))
		return nil
	}, hooks...)

	switch {
	case err == nil:
	case errors.Is(err, store.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, ErrAuthenticationFailed):
		log.Warn("rejected channel update", slog.String("reason", "hash mismatch"))
		return err
	case errors.Is(err, ErrInvalidPayload):
		log.Warn("rejected channel update", slog.Any("error", err))
		return err
	default:
		log.Error("failed to update channel", slog.Any("error", err))
		return fmt.Errorf("update channel %q: %w", id, err)
	}

	log.Info("channel updated")
	return nil
}
