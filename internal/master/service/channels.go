package service

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/cappelnord/codeklavier-ar-master/internal/master/domain"
	"github.com/cappelnord/codeklavier-ar-master/internal/master/store"
)

var (
	ErrNotFound             = errors.New("channel not found")
	ErrAuthenticationFailed = errors.New("hash mismatch")
	ErrInvalidPayload       = errors.New("invalid payload")
)

// Listing is the aggregate view served to the master display app.
type Listing struct {
	Protocol    json.RawMessage `json:"protocol"`
	ChannelList []ListingEntry  `json:"channelList"`
}

type ListingEntry struct {
	ID   string            `json:"id"`
	Info domain.Projection `json:"info"`
}

type ChannelService struct {
	Store store.Store
}

// Get returns the full record for id, secret included.
func (s *ChannelService) Get(ctx context.Context, id string) (domain.Record, error) {
	rec, err := s.Store.Channels().Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return domain.Record{}, ErrNotFound
	}
	return rec, err
}

// Exists reports whether id names a known channel.
func (s *ChannelService) Exists(ctx context.Context, id string) bool {
	return s.Store.Channels().Exists(ctx, id)
}

// Project returns the public view of id. Unknown ids give the empty
// projection.
func (s *ChannelService) Project(ctx context.Context, id string) domain.Projection {
	return s.Store.Channels().Project(ctx, id)
}

// Listing builds the aggregate view in directory order. When additional
// names an existing channel it is appended once more at the end, even if it
// is already part of the directory list.
func (s *ChannelService) Listing(ctx context.Context, additional string) Listing {
	dir := s.Store.Directory()
	ids := dir.ListPrimary()

	if additional != "" && s.Store.Channels().Exists(ctx, additional) {
		ids = append(ids, additional)
	}

	protocol := dir.Protocol
	if len(protocol) == 0 {
		protocol = json.RawMessage("null")
	}

	out := Listing{
		Protocol:    protocol,
		ChannelList: make([]ListingEntry, 0, len(ids)),
	}
	for _, id := range ids {
		out.ChannelList = append(out.ChannelList, ListingEntry{
			ID:   id,
			Info: s.Store.Channels().Project(ctx, id),
		})
	}
	return out
}

// Count returns the number of configured channels.
func (s *ChannelService) Count(ctx context.Context) int {
	return s.Store.Channels().Count(ctx)
}
