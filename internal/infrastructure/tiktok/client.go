package tiktok

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/pearmediallc/symphony-ai/domain"
)

// requestTimeout bounds every upstream call. Single attempt, no retry.
const requestTimeout = 30 * time.Second

// Client implements domain.UpstreamClient against the TikTok Business API.
// It holds no per-request state; the access token travels with each call.
type Client struct {
	baseURL string
	http    *http.Client
	logger  *zap.Logger
}

// NewClient creates an upstream client rooted at baseURL.
func NewClient(baseURL string, logger *zap.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: requestTimeout},
		logger:  logger,
	}
}

// Call implements domain.UpstreamClient. Transport failures and undecodable
// response bodies both surface as *domain.TransportError.
func (c *Client) Call(ctx context.Context, method, path, token string, query url.Values, body any) (*domain.UpstreamResult, error) {
	endpoint := c.baseURL + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, &domain.TransportError{Op: path, Err: fmt.Errorf("encode payload: %w", err)}
		}
		reader = bytes.NewReader(data)
		c.logger.Debug("upstream request",
			zap.String("method", method),
			zap.String("path", path),
			zap.ByteString("payload", data))
	} else {
		c.logger.Debug("upstream request",
			zap.String("method", method),
			zap.String("path", path),
			zap.String("query", query.Encode()))
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, &domain.TransportError{Op: path, Err: err}
	}
	req.Header.Set("Access-Token", token)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.TransportError{Op: path, Err: err}
	}
	defer resp.Body.Close()

	var parsed map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, &domain.TransportError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
	}

	c.logger.Debug("upstream response",
		zap.String("path", path),
		zap.Int("status", resp.StatusCode),
		zap.Any("body", parsed))

	return &domain.UpstreamResult{Status: resp.StatusCode, Body: parsed}, nil
}
