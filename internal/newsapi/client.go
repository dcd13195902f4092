package newsapi

import (
	"errors"
	"net/http"
	"time"
)

const (
	DefaultTimeout   = 30 * time.Second
	DefaultUserAgent = "headlines"
)

type ClientOption func(*Client) error

// Client performs fetches against a NewsAPI compatible server.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

func NewClient(options ...ClientOption) (*Client, error) {
	c := &Client{
		baseURL:    DefaultBaseURL,
		userAgent:  DefaultUserAgent,
		httpClient: &http.Client{Timeout: DefaultTimeout},
	}
	for _, opt := range options {
		if err := opt(c); err != nil {
			return nil, err
		}
	}
	return c, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func WithBaseURL(base string) ClientOption {
	return func(c *Client) error {
		if base == "" {
			return errors.New("base URL cannot be empty")
		}
		c.baseURL = base
		return nil
	}
}

func WithHTTPClient(client *http.Client) ClientOption {
	return func(c *Client) error {
		if client == nil {
			return errors.New("http client cannot be nil")
		}
		c.httpClient = client
		return nil
	}
}

// WithTimeout sets the timeout on the client's http.Client. Zero means no
// timeout beyond the transport defaults.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) error {
		if timeout < 0 {
			return errors.New("timeout cannot be negative")
		}
		c.httpClient.Timeout = timeout
		return nil
	}
}

func WithUserAgent(ua string) ClientOption {
	return func(c *Client) error {
		c.userAgent = ua
		return nil
	}
}
