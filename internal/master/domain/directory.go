package domain

import (
	"encoding/json"
	"slices"
)

// Directory is the fixed per-deployment configuration: which channels make
// up the aggregate listing and which websocket URLs the master enforces.
type Directory struct {
	// Protocol is opaque to the master and passed through to clients.
	Protocol    json.RawMessage   `json:"protocol"`
	ChannelList []string          `json:"channelList"`
	Overrides   map[string]string `json:"wsOverride"`
}

// ListPrimary returns the configured channel ids in order.
func (d Directory) ListPrimary() []string {
	return slices.Clone(d.ChannelList)
}

// WSOverride returns the forced websocket URL for id, if any.
func (d Directory) WSOverride(id string) (string, bool) {
	u, ok := d.Overrides[id]
	return u, ok
}
