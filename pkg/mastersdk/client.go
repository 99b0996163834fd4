package mastersdk

import (
	"net/http"
	"strings"
	"time"
)

// Client talks to one master instance.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the master at baseURL.
func NewClient(baseURL string) *Client {
	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}
