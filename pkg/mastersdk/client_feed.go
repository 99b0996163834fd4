package mastersdk

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/gorilla/websocket"
)

// FeedURL returns the websocket URL of the live feed.
func (c *Client) FeedURL() string {
	base := c.BaseURL
	switch {
	case strings.HasPrefix(base, "https://"):
		base = "wss://" + strings.TrimPrefix(base, "https://")
	case strings.HasPrefix(base, "http://"):
		base = "ws://" + strings.TrimPrefix(base, "http://")
	}
	return base + "/master/ws"
}

// Watch connects to the live feed and calls fn for every update until ctx
// is cancelled or the server closes the connection. A cancelled ctx
// returns nil.
func (c *Client) Watch(ctx context.Context, fn func(FeedMessage)) error {
	conn, resp, err := websocket.DefaultDialer.DialContext(ctx, c.FeedURL(), nil)
	if err != nil {
		if resp != nil && resp.StatusCode != http.StatusSwitchingProtocols {
			return &APIError{StatusCode: resp.StatusCode}
		}
		return fmt.Errorf("failed to connect to feed: %w", err)
	}
	defer conn.Close()

	stop := context.AfterFunc(ctx, func() {
		_ = conn.WriteMessage(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
		conn.Close()
	})
	defer stop()

	for {
		var msg FeedMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			var closeErr *websocket.CloseError
			if errors.As(err, &closeErr) {
				return nil
			}
			return fmt.Errorf("failed to read feed: %w", err)
		}
		fn(msg)
	}
}
