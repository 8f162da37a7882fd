package http

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"math/rand/v2"
	"net/http"
	"time"
)

func defaultHTTPClient(timeout time.Duration) *http.Client {
	return &http.Client{Timeout: timeout}
}

// Get performs a GET request, retrying transport errors, 429 and 5xx responses.
func (c *clientImpl) Get(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, c.config.Retries, func() (*http.Request, error) {
		return newRequest(ctx, http.MethodGet, url, nil, headers)
	})
}

// Post performs a POST request with JSON body.
func (c *clientImpl) Post(ctx context.Context, url string, body interface{}, headers map[string]string) ([]byte, int, error) {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return nil, 0, fmt.Errorf("failed to marshal body: %w", err)
		}
	}
	return c.do(ctx, 0, func() (*http.Request, error) {
		req, err := newRequest(ctx, http.MethodPost, url, payload, headers)
		if err == nil && payload != nil {
			req.Header.Set("Content-Type", "application/json")
		}
		return req, err
	})
}

// Delete performs a DELETE request.
func (c *clientImpl) Delete(ctx context.Context, url string, headers map[string]string) ([]byte, int, error) {
	return c.do(ctx, 0, func() (*http.Request, error) {
		return newRequest(ctx, http.MethodDelete, url, nil, headers)
	})
}

func newRequest(ctx context.Context, method, url string, payload []byte, headers map[string]string) (*http.Request, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req, nil
}

func (c *clientImpl) do(ctx context.Context, retries int, newReq requestFactory) ([]byte, int, error) {
	var (
		body   []byte
		status int
		err    error
	)

	for attempt := 0; ; attempt++ {
		body, status, err = c.once(newReq)
		if !retryable(status, err) || attempt >= retries {
			break
		}

		select {
		case <-ctx.Done():
			return nil, 0, ctx.Err()
		case <-time.After(backoff(c.config.RetryWait, attempt+1)):
		}
	}

	if err != nil {
		return nil, 0, fmt.Errorf("request failed: %w", err)
	}
	return body, status, nil
}

func (c *clientImpl) once(newReq requestFactory) ([]byte, int, error) {
	req, err := newReq()
	if err != nil {
		return nil, 0, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, resp.StatusCode, fmt.Errorf("failed to read response body: %w", err)
	}
	return body, resp.StatusCode, nil
}

func retryable(status int, err error) bool {
	if err != nil {
		return true
	}
	return status == http.StatusTooManyRequests || status >= http.StatusInternalServerError
}

// backoff returns the wait before retry number attempt (1-based).
func backoff(base time.Duration, attempt int) time.Duration {
	if base <= 0 {
		return 0
	}
	delay := base << (attempt - 1)
	jitter := time.Duration(rand.Float64() * jitterRatio * float64(delay))
	return delay + jitter
}
