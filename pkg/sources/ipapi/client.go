// SPDX-License-Identifier: MIT
// Copyright (c) 2025 Mark Feghali

package ipapi

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"github.com/go-logr/logr"
	"golang.org/x/time/rate"

	"github.com/wingedpig/getip/pkg/model"
	"github.com/wingedpig/getip/pkg/response"
)

// Client is an ip-api.com client
type Client struct {
	httpClient      *http.Client
	limiter         *rate.Limiter
	userAgent       string
	maxResponseSize int
	log             logr.Logger
}

// NewClient creates a new ip-api client.
// The HTTP client has no timeout and follows redirects the default way.
func NewClient(userAgent string, rateLimit float64, maxResponseSize int, log logr.Logger) *Client {
	var limiter *rate.Limiter
	if rateLimit > 0 {
		limiter = rate.NewLimiter(rate.Limit(rateLimit), int(rateLimit)+1)
	}

	return &Client{
		httpClient:      &http.Client{},
		limiter:         limiter,
		userAgent:       userAgent,
		maxResponseSize: maxResponseSize,
		log:             log.WithName("ipapi"),
	}
}

// NewClientFromConfig creates a client from a model.Config
func NewClientFromConfig(cfg model.Config, log logr.Logger) *Client {
	return NewClient(cfg.UserAgent, cfg.RateLimit, cfg.MaxResponseSize, log)
}

// Fetch performs a single GET and returns the whole body.
// The status code is not checked; whatever the server sent is returned.
func (c *Client) Fetch(ctx context.Context, url string) (*response.Buffer, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrClientInit, err)
	}
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, fmt.Errorf("%w: rate limit: %w", model.ErrTransfer, err)
		}
	}

	c.log.V(1).Info("Fetching", "url", url)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", model.ErrTransfer, err)
	}
	defer resp.Body.Close()

	buf := response.NewBuffer(c.maxResponseSize)
	n, err := io.Copy(buf, resp.Body)
	if err != nil {
		buf.Release()
		return nil, fmt.Errorf("%w: %w", model.ErrTransfer, err)
	}

	c.log.V(1).Info("Fetched", "url", url, "status", resp.StatusCode, "bytes", n)
	return buf, nil
}

// Lookup fetches url and extracts the geolocation fields
func (c *Client) Lookup(ctx context.Context, url string) (*model.LookupResult, error) {
	buf, err := c.Fetch(ctx, url)
	if err != nil {
		return nil, err
	}
	defer buf.Release()

	result := ParseResult(buf.String())
	if result.Failed() {
		c.log.Error(nil, "Service reported failure", "message", result.Message.String(), "query", result.IP.String())
	}
	return result, nil
}
