package api

import (
	"github.com/Jaymi-01/framez/pkg/client"
	"github.com/go-resty/resty/v2"
)

// Client is a typed wrapper over the /api/v1 endpoints
type Client struct {
	http *resty.Client
}

// New wraps an existing resty client
func New(http *resty.Client) *Client {
	return &Client{http: http}
}

// Default wraps the shared client from pkg/client
func Default() *Client {
	return New(client.GetClient())
}

// SetToken sets the bearer token used for subsequent requests
func (c *Client) SetToken(token string) {
	c.http.SetAuthToken(token)
}
