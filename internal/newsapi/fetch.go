package newsapi

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
)

// Mode selects how the API key travels with the request.
type Mode int

const (
	Blocking Mode = iota
	NonBlocking
)

func (m Mode) String() string {
	if m == NonBlocking {
		return "async"
	}
	return "blocking"
}

// Result is what FetchAsync delivers.
type Result struct {
	Response *Response
	Err      error
}

// Fetch performs the request and waits for it to complete. The returned
// response always has status "ok"; anything else comes back as an error.
func (c *Client) Fetch(ctx context.Context, req RequestConfig) (*Response, error) {
	return c.fetch(ctx, req, Blocking)
}

// FetchAsync starts the request on its own goroutine and returns a channel
// that yields exactly one Result and is then closed. The channel is buffered
// so the goroutine finishes even if nobody receives.
func (c *Client) FetchAsync(ctx context.Context, req RequestConfig) <-chan Result {
	ch := make(chan Result, 1)
	go func() {
		defer close(ch)
		resp, err := c.fetch(ctx, req, NonBlocking)
		ch <- Result{Response: resp, Err: err}
	}()
	return ch
}

func (c *Client) fetch(ctx context.Context, req RequestConfig, mode Mode) (*Response, error) {
	url, err := req.URL(c.baseURL)
	if err != nil {
		return nil, err
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	switch mode {
	case NonBlocking:
		httpReq.Header.Set("Authorization", req.APIKey)
	default:
		httpReq.Header.Set("X-Api-Key", req.APIKey)
	}
	if c.userAgent != "" {
		httpReq.Header.Set("User-Agent", c.userAgent)
	}

	slog.Debug("fetching", "url", url, "endpoint", req.Endpoint, "country", req.Country, "mode", mode)
	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{URL: url, Err: err}
	}
	return decodeResponse(resp.StatusCode, body)
}

// decodeResponse is the post-processing shared by both fetch modes. A body
// without a status, or an "ok" body without articles, is a parse error.
func decodeResponse(statusCode int, body []byte) (*Response, error) {
	var env envelope
	if err := json.Unmarshal(body, &env); err != nil {
		return nil, &ParseError{StatusCode: statusCode, Err: err}
	}
	if env.Status == nil {
		return nil, &ParseError{StatusCode: statusCode, Err: missingField("status")}
	}
	if *env.Status != StatusOK {
		slog.Debug("request rejected", "status", *env.Status, "httpStatus", statusCode, "message", env.Message)
		return nil, newAPIError(env.Code)
	}
	if env.Articles == nil {
		return nil, &ParseError{StatusCode: statusCode, Err: missingField("articles")}
	}

	r := &Response{
		Status:       *env.Status,
		TotalResults: env.TotalResults,
		Articles:     *env.Articles,
		Code:         env.Code,
		Message:      env.Message,
	}
	slog.Debug("fetched", "articles", len(r.Articles), "total", r.TotalResults)
	return r, nil
}
