package mastersdk

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// GetApp returns the aggregate listing. A non-empty additional names one
// more channel to append to the listing.
func (c *Client) GetApp(ctx context.Context, additional string) (*AppListing, error) {
	var query url.Values
	if additional != "" {
		query = url.Values{"additionalChannel": {additional}}
	}

	var listing AppListing
	if err := c.getJSON(ctx, "/master/app", query, &listing); err != nil {
		return nil, err
	}
	return &listing, nil
}

// GetChannel returns the public view of channel id.
func (c *Client) GetChannel(ctx context.Context, id string) (ChannelInfo, error) {
	var info ChannelInfo
	if err := c.getJSON(ctx, "/master/channel", url.Values{"id": {id}}, &info); err != nil {
		return nil, err
	}
	return info, nil
}

// Set sends a signed update for channel id.
func (c *Client) Set(ctx context.Context, id string, signed SignedPayload) error {
	query := url.Values{
		"id":      {id},
		"payload": {signed.Payload},
		"hash":    {signed.Hash},
	}
	_, err := c.doRequest(ctx, "/master/set", query, http.StatusOK)
	return err
}

// SetFields signs fields with secret and sends them as an update for id.
func (c *Client) SetFields(ctx context.Context, id, secret string, fields map[string]any) error {
	signed, err := Sign(secret, fields)
	if err != nil {
		return err
	}
	return c.Set(ctx, id, signed)
}

// GetServed returns the number of requests the master has served, as
// reported by its status page.
func (c *Client) GetServed(ctx context.Context) (uint64, error) {
	body, err := c.doRequest(ctx, "/master/", nil, http.StatusOK)
	if err != nil {
		return 0, err
	}

	text := strings.TrimSpace(string(body))
	_, count, ok := strings.Cut(text, "Served: ")
	if !ok {
		return 0, fmt.Errorf("unexpected status response %q", text)
	}
	n, err := strconv.ParseUint(count, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("unexpected status response %q: %w", text, err)
	}
	return n, nil
}
