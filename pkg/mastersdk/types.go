package mastersdk

import "encoding/json"

// ============================================================================
// Channel Types
// ============================================================================

// ChannelInfo is the public view of a channel. Every whitelisted key is
// present; unset values are nil. The view of an unknown channel inside a
// listing is empty.
type ChannelInfo map[string]any

// String returns the value of key when it is a string.
func (c ChannelInfo) String(key string) (string, bool) {
	s, ok := c[key].(string)
	return s, ok
}

// AppListing is the response of /master/app.
type AppListing struct {
	// Protocol is passed through from the server configuration untouched.
	Protocol json.RawMessage `json:"protocol"`

	// ChannelList holds the configured channels in order, optionally
	// followed by the requested additional channel.
	ChannelList []ChannelEntry `json:"channelList"`
}

type ChannelEntry struct {
	ID   string      `json:"id"`
	Info ChannelInfo `json:"info"`
}

// IDs returns the channel ids of the listing in order.
func (l AppListing) IDs() []string {
	ids := make([]string, 0, len(l.ChannelList))
	for _, e := range l.ChannelList {
		ids = append(ids, e.ID)
	}
	return ids
}

// ============================================================================
// Feed Types
// ============================================================================

// FeedMessage is one frame of the /master/ws live feed.
type FeedMessage struct {
	ID   string      `json:"id"`
	Info ChannelInfo `json:"info"`
}

// ============================================================================
// Health Types
// ============================================================================

// HealthResponse represents the response structure for health check endpoints.
// Used by both /livez and /readyz endpoints (readyz includes additional Checks field).
type HealthResponse struct {
	// Status indicates the overall health status (e.g., "ok")
	Status string `json:"status"`

	// Uptime is the service uptime duration as a string (e.g., "1h23m45s")
	Uptime string `json:"uptime,omitempty"`

	// Version is the service version string
	Version string `json:"version,omitempty"`

	// Channels is the number of channels loaded
	Channels int `json:"channels,omitempty"`

	// Served is the number of /master/ requests handled (only for /livez)
	Served uint64 `json:"served,omitempty"`

	// Checks contains readiness check results for critical dependencies (only for /readyz)
	Checks *HealthChecks `json:"checks,omitempty"`
}

// HealthChecks represents the status of critical service dependencies.
type HealthChecks struct {
	// Store indicates whether the channels document can still be written
	Store string `json:"store"`

	// Feed indicates whether the live update feed is running
	Feed string `json:"feed"`
}
