package mastersdk

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// maxBodySize caps how much of a response is read.
const maxBodySize = 1 << 20

// url builds a complete URL from the base URL, path and query.
func (c *Client) url(path string, query url.Values) string {
	u := c.BaseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// doRequest performs a GET request and returns the response body when the
// status matches expectedStatus.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, expectedStatus int) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url(path, query), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode != expectedStatus {
		return nil, newAPIError(resp.StatusCode, body)
	}
	return body, nil
}

// getJSON performs a GET request and decodes a JSON response into target.
func (c *Client) getJSON(ctx context.Context, path string, query url.Values, target any) error {
	body, err := c.doRequest(ctx, path, query, http.StatusOK)
	if err != nil {
		return err
	}

	if err := json.Unmarshal(body, target); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
