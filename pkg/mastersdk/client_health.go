package mastersdk

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// GetLiveness checks if the service is alive.
func (c *Client) GetLiveness(ctx context.Context) (*HealthResponse, error) {
	var health HealthResponse
	if err := c.getJSON(ctx, "/livez", nil, &health); err != nil {
		return nil, err
	}
	return &health, nil
}

// GetReadiness checks if the service is ready. A degraded service answers
// 503 with the same body; the decoded response is returned alongside the
// *APIError in that case.
func (c *Client) GetReadiness(ctx context.Context) (*HealthResponse, error) {
	body, err := c.doRequest(ctx, "/readyz", nil, http.StatusOK)

	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusServiceUnavailable {
		var health HealthResponse
		if json.Unmarshal([]byte(apiErr.Message), &health) == nil {
			return &health, err
		}
		return nil, err
	}
	if err != nil {
		return nil, err
	}

	var health HealthResponse
	if err := json.Unmarshal(body, &health); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &health, nil
}
