package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"golang.org/x/sync/errgroup"
)

// Transform sends text to the rewrite endpoint. An empty post in a successful
// response is returned as "" and left to the caller.
func (c *Client) Transform(ctx context.Context, token, text string) (string, error) {
	var out transformResponse
	err := c.do(ctx, request{
		method: http.MethodPost,
		path:   "/posts",
		token:  token,
		kind:   KindTransform,
		body:   transformRequest{Text: text},
		dst:    &out,
	})
	if err != nil {
		return "", err
	}
	return out.Post, nil
}

// History fetches one page of the user's previous rewrites, newest first.
func (c *Client) History(ctx context.Context, token string, page, pageSize int) ([]HistoryEntry, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("pageSize", strconv.Itoa(pageSize))

	var out []HistoryEntry
	err := c.do(ctx, request{
		method: http.MethodGet,
		path:   "/posts?" + q.Encode(),
		token:  token,
		kind:   KindHistory,
		dst:    &out,
	})
	if err != nil {
		return nil, fmt.Errorf("fetching history: %w", err)
	}
	return out, nil
}

// BatchTransform rewrites each text concurrently with at most limit requests
// in flight (maxConcurrent when limit <= 0). Results are in input order;
// individual failures are reported per result, not as the returned error.
func (c *Client) BatchTransform(ctx context.Context, token string, texts []string, limit int) ([]BatchResult, error) {
	if limit <= 0 {
		limit = maxConcurrent
	}
	results := make([]BatchResult, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	for i, text := range texts {
		i, text := i, text
		g.Go(func() error {
			post, err := c.Transform(gctx, token, text)
			// Each goroutine owns its slot.
			results[i] = BatchResult{Input: text, Post: post, Err: err}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, ctx.Err()
}
