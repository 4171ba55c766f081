// Package panel is an HTTP client for the panel application API
// (Pterodactyl-compatible). It implements domain.Panel.
package panel

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"lighthouseservers/ptprov/internal/config"
	"lighthouseservers/ptprov/internal/domain"

	"github.com/rs/zerolog"
)

const (
	apiPrefix      = "/api/application"
	defaultTimeout = 30 * time.Second
	listPageSize   = 100

	// maxErrorBody caps how much of a failed response is read for messages.
	maxErrorBody = 64 << 10
)

// Compile-time check that Client satisfies domain.Panel.
var _ domain.Panel = (*Client)(nil)

// Client talks to the panel application API with a static bearer token.
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
	log     zerolog.Logger
}

// New creates a Client for the panel at baseURL (without the /api suffix).
func New(baseURL, apiKey string, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		client:  &http.Client{Timeout: defaultTimeout},
		log:     log,
	}
}

// NewFromConfig creates a Client from resolved panel settings.
func NewFromConfig(p config.Panel, log zerolog.Logger) *Client {
	return New(p.BaseURL, p.APIKey, log)
}

// --- API request/response types ---

// resource is the envelope around a single API object.
type resource[T any] struct {
	Object     string `json:"object"`
	Attributes T      `json:"attributes"`
}

// pagination is the meta block of list responses.
type pagination struct {
	Total       int `json:"total"`
	Count       int `json:"count"`
	PerPage     int `json:"per_page"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
}

// list is the envelope around a page of API objects.
type list[T any] struct {
	Object string        `json:"object"`
	Data   []resource[T] `json:"data"`
	Meta   struct {
		Pagination pagination `json:"pagination"`
	} `json:"meta"`
}

// apiError is a single entry of the errors array returned on failure.
type apiError struct {
	Code   string `json:"code"`
	Status string `json:"status"`
	Detail string `json:"detail"`
}

type errorBody struct {
	Errors []apiError `json:"errors"`
}

// --- HTTP helpers ---

// do sends a request and decodes a 2xx JSON response into out (if non-nil).
// Non-2xx responses are converted to errors wrapping domain sentinels.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("panel: failed to encode request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+apiPrefix+path, bodyReader)
	if err != nil {
		return fmt.Errorf("panel: failed to build request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := c.client.Do(req)
	if err != nil {
		c.log.Debug().Err(err).Str("method", method).Str("path", path).Msg("panel request failed")
		return fmt.Errorf("panel: request failed: %w", err)
	}
	defer resp.Body.Close()

	c.log.Debug().
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("elapsed", time.Since(start)).
		Msg("panel request")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return statusError(resp.StatusCode, data)
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("panel: failed to decode response: %w", err)
	}
	return nil
}

// listAll fetches every page of a list endpoint and returns the attributes
// of all objects in the order the panel returned them. A response without
// pagination metadata is treated as the only page.
func listAll[T any](ctx context.Context, c *Client, path string) ([]T, error) {
	var all []T
	for page := 1; ; page++ {
		var out list[T]
		p := fmt.Sprintf("%s?page=%d&per_page=%d", path, page, listPageSize)
		if err := c.do(ctx, http.MethodGet, p, nil, &out); err != nil {
			return nil, err
		}

		for _, r := range out.Data {
			all = append(all, r.Attributes)
		}

		if len(out.Data) == 0 || page >= out.Meta.Pagination.TotalPages {
			break
		}
	}
	return all, nil
}

// statusError maps an HTTP failure to a domain sentinel where recognisable.
func statusError(status int, body []byte) error {
	msg := errorMessage(status, body)

	switch status {
	case http.StatusUnauthorized, http.StatusForbidden:
		return fmt.Errorf("%w: %s", domain.ErrUnauthorized, msg)
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", domain.ErrNotFound, msg)
	case http.StatusConflict:
		return fmt.Errorf("%w: %s", domain.ErrConflict, msg)
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		return fmt.Errorf("%w: %s", domain.ErrValidation, msg)
	case http.StatusTooManyRequests:
		return fmt.Errorf("%w: %s", domain.ErrRateLimited, msg)
	}

	return fmt.Errorf("panel: %s", msg)
}

// errorMessage joins the details of an error body, falling back to the
// HTTP status text when the body carries none.
func errorMessage(status int, body []byte) string {
	var parsed errorBody
	if err := json.Unmarshal(body, &parsed); err == nil && len(parsed.Errors) > 0 {
		msgs := make([]string, 0, len(parsed.Errors))
		for _, e := range parsed.Errors {
			switch {
			case e.Code != "" && e.Detail != "":
				msgs = append(msgs, e.Code+": "+e.Detail)
			case e.Detail != "":
				msgs = append(msgs, e.Detail)
			case e.Code != "":
				msgs = append(msgs, e.Code)
			}
		}
		if len(msgs) > 0 {
			return fmt.Sprintf("HTTP %d: %s", status, strings.Join(msgs, "; "))
		}
	}

	text := http.StatusText(status)
	if text == "" {
		text = "unexpected status"
	}
	return fmt.Sprintf("HTTP %d: %s", status, text)
}
