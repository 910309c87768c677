package algod

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client is an HTTP client for the Algorand node (algod) REST API with
// retry on 429.
type Client struct {
	baseURL    string
	httpClient *http.Client
	maxRetries int
	baseDelay  time.Duration
}

// NewClient creates a new algod API client.
func NewClient(baseURL string, maxRetries int, baseDelay time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
	}
}

// do performs a request with retry on 429. The body, when non-nil, is
// re-readable because we hold the raw bytes.
func (c *Client) do(ctx context.Context, op, method, path, contentType string, payload []byte) ([]byte, error) {
	url := c.baseURL + path

	var lastErr error
	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		var reqBody io.Reader
		if payload != nil {
			reqBody = bytes.NewReader(payload)
		}
		req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
		if err != nil {
			return nil, &Error{Kind: KindUnavailable, Op: op, Message: err.Error(), Err: err}
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, transportError(op, err)
		}

		body, err := io.ReadAll(resp.Body)
		resp.Body.Close()
		if err != nil {
			return nil, transportError(op, err)
		}

		switch {
		case resp.StatusCode == http.StatusOK:
			return body, nil

		case resp.StatusCode == http.StatusTooManyRequests:
			lastErr = &Error{Kind: KindUnavailable, Op: op, StatusCode: resp.StatusCode,
				Message: "rate limited"}
			if attempt < c.maxRetries {
				delay := c.baseDelay * time.Duration(1<<uint(attempt))
				select {
				case <-ctx.Done():
					return nil, transportError(op, ctx.Err())
				case <-time.After(delay):
				}
				continue
			}
			return nil, lastErr

		case resp.StatusCode >= 500:
			return nil, &Error{Kind: KindUnavailable, Op: op, StatusCode: resp.StatusCode,
				Message: errorMessage(body)}

		default:
			return nil, &Error{Kind: KindRejected, Op: op, StatusCode: resp.StatusCode,
				Message: errorMessage(body)}
		}
	}

	return nil, lastErr
}

// getJSON performs a GET request and unmarshals the JSON response.
func (c *Client) getJSON(ctx context.Context, op, path string, dest any) error {
	body, err := c.do(ctx, op, http.MethodGet, path, "", nil)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, dest); err != nil {
		return &Error{Kind: KindMalformed, Op: op, Message: err.Error(), Err: err}
	}
	return nil
}

// errorMessage extracts the node's error message from a JSON error body,
// falling back to the raw body.
func errorMessage(body []byte) string {
	var e struct {
		Message string `json:"message"`
	}
	if err := json.Unmarshal(body, &e); err == nil && e.Message != "" {
		return e.Message
	}
	return string(body)
}
