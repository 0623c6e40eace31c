package utils

import (
	"time"

	"github.com/go-resty/resty/v2"
)

// defaultClientTimeout bounds every request made through HTTPClient.
const defaultClientTimeout = 10 * time.Second

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly,
// while allowing extension with additional application-specific behavior.
//
// Example usage:
//
//	client := utils.NewHTTPClient("http://localhost:3000")
//	resp, err := client.R().Get("/api/users")
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient creates a client that resolves relative request URLs against
// baseURL and sends and accepts JSON by default.
//
// Each call returns an independent client instance with its own
// configuration, connection pool, and state.
func NewHTTPClient(baseURL string) *HTTPClient {
	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(defaultClientTimeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &HTTPClient{Client: client}
}

// WithBearer returns a copy of the client that sends the given token in the
// Authorization header of every request.
func (c *HTTPClient) WithBearer(token string) *HTTPClient {
	return &HTTPClient{Client: c.Client.Clone().SetAuthToken(token)}
}
