package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	userAgent     = "linkedinify/1.0"
	maxErrorBody  = 4 << 10
	maxConcurrent = 4
)

// Client talks to the LinkedInify backend.
type Client struct {
	http    *http.Client
	baseURL string
	log     *zap.SugaredLogger
}

// NewClient creates a client for the backend rooted at baseURL,
// e.g. "http://localhost:8080/api/v1".
func NewClient(baseURL string, timeout time.Duration, log *zap.SugaredLogger) *Client {
	return &Client{
		http: &http.Client{
			Timeout: timeout,
		},
		baseURL: strings.TrimRight(baseURL, "/"),
		log:     log,
	}
}

// request is one call to the backend. body is JSON-encoded when non-nil and
// the response is decoded into dst when non-nil.
type request struct {
	method string
	path   string
	token  string
	kind   Kind
	body   interface{}
	dst    interface{}
}

func (c *Client) do(ctx context.Context, r request) error {
	var body io.Reader
	if r.body != nil {
		buf, err := json.Marshal(r.body)
		if err != nil {
			return fmt.Errorf("encoding request: %w", err)
		}
		body = bytes.NewReader(buf)
	}

	url := c.baseURL + r.path
	req, err := http.NewRequestWithContext(ctx, r.method, url, body)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	reqID := uuid.NewString()
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if r.body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if r.token != "" {
		req.Header.Set("Authorization", "Bearer "+r.token)
	}

	start := time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		c.log.Warnw("request failed", "method", r.method, "path", r.path, "request_id", reqID, "error", err)
		return fmt.Errorf("%s %s: %w", r.method, r.path, err)
	}
	defer resp.Body.Close()

	c.log.Debugw("request done", "method", r.method, "path", r.path, "request_id", reqID,
		"status", resp.StatusCode, "elapsed", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &Error{Kind: r.kind, StatusCode: resp.StatusCode, Detail: errorDetail(raw)}
	}

	if r.dst == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(r.dst); err != nil {
		return fmt.Errorf("decoding response from %s: %w", r.path, err)
	}
	return nil
}

// errorDetail extracts the server's reason from an error body. The backend
// answers either {"error": "..."} or a plain-text line.
func errorDetail(raw []byte) string {
	var e errorResponse
	if json.Unmarshal(raw, &e) == nil && e.Error != "" {
		return e.Error
	}
	return strings.TrimSpace(string(raw))
}
