// Package assist talks to the assist service that stores experiments.
package assist

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/huangsam/scorecard/internal/contract"
	"github.com/huangsam/scorecard/schema"
)

// maxResponseBytes caps how much of a response body is read.
const maxResponseBytes = 64 << 20

// snippetBytes is how much of an error body is kept in a StatusError.
const snippetBytes = 512

// Action names understood by the assist service.
const (
	ActionGet    = "get"
	ActionDelete = "delete"
)

// StatusError reports a non-2xx response from the assist service.
type StatusError struct {
	Action     string
	StatusCode int
	Body       string // leading part of the response body
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("assist %s returned %d %s", e.Action, e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("assist %s returned %d %s: %s", e.Action, e.StatusCode, http.StatusText(e.StatusCode), e.Body)
}

// Client fetches and deletes experiments over HTTP.
type Client struct {
	endpoint string
	http     *http.Client
}

var _ contract.ExperimentSource = &Client{} // Compile-time check

// NewClient returns a client for the assist endpoint, e.g.
// http://localhost:8765/project/assist. A non-positive timeout disables the per-request limit.
func NewClient(endpoint string, timeout time.Duration) *Client {
	if timeout < 0 {
		timeout = 0
	}
	return &Client{endpoint: endpoint, http: &http.Client{Timeout: timeout}}
}

// Endpoint returns the configured service URL.
func (c *Client) Endpoint() string {
	return c.endpoint
}

// Fetch retrieves all experiments with action=get.
func (c *Client) Fetch(ctx context.Context) ([]schema.Experiment, error) {
	body, err := c.do(ctx, ActionGet, nil)
	if err != nil {
		return nil, err
	}
	exps, err := DecodeExperiments(body)
	if err != nil {
		return nil, fmt.Errorf("failed to decode assist response: %w", err)
	}
	contract.Logger().Debugw("fetched experiments", "count", len(exps), "bytes", len(body))
	return exps, nil
}

// Delete trashes one experiment with action=delete.
func (c *Client) Delete(ctx context.Context, id string) error {
	if id == "" {
		return errors.New("experiment id is required")
	}
	if _, err := c.do(ctx, ActionDelete, url.Values{"id": {id}}); err != nil {
		return err
	}
	contract.Logger().Infow("deleted experiment", "id", id)
	return nil
}

func (c *Client) do(ctx context.Context, action string, params url.Values) ([]byte, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %q: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("action", action)
	for k, vs := range params {
		for _, v := range vs {
			q.Add(k, v)
		}
	}
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("assist %s failed: %w", action, err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, fmt.Errorf("failed to read assist %s response: %w", action, err)
	}
	contract.Logger().Debugw("assist request", "action", action, "status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet := body
		if len(snippet) > snippetBytes {
			snippet = snippet[:snippetBytes]
		}
		return nil, &StatusError{Action: action, StatusCode: resp.StatusCode, Body: string(snippet)}
	}
	return body, nil
}
