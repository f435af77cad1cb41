package aptos

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"
)

// ErrResourceNotFound is returned when the account does not hold the resource.
var ErrResourceNotFound = errors.New("resource not found")

// NodeURL is the public fullnode for a named network (devnet, testnet, mainnet).
func NodeURL(network string) string {
	return fmt.Sprintf("https://fullnode.%s.aptoslabs.com", network)
}

// Client reads account resources from an Aptos node over its REST API.
type Client struct {
	nodeURL    string
	httpClient *http.Client
	logger     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default http client (15s timeout).
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithLogger sets the logger used for request tracing.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// NewClient creates a node client; nodeURL may or may not end in /v1.
func NewClient(nodeURL string, opts ...Option) *Client {
	nodeURL = strings.TrimRight(nodeURL, "/")
	if !strings.HasSuffix(nodeURL, "/v1") {
		nodeURL += "/v1"
	}
	c := &Client{
		nodeURL:    nodeURL,
		httpClient: &http.Client{Timeout: 15 * time.Second},
		logger:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NodeURL returns the versioned REST endpoint the client talks to.
func (c *Client) NodeURL() string {
	return c.nodeURL
}

// GetAccountResource fetches one resource of address, e.g.
// GET /v1/accounts/0x1/resource/0x1::coin::CoinInfo<0x1::aptos_coin::AptosCoin>
// The returned result is the whole resource object ({"type": ..., "data": ...}).
func (c *Client) GetAccountResource(ctx context.Context, address, resourceType string) (gjson.Result, error) {
	endpoint := fmt.Sprintf("%s/accounts/%s/resource/%s", c.nodeURL, address, url.PathEscape(resourceType))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return gjson.Result{}, err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("get resource %s: %w", resourceType, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("read resource %s: %w", resourceType, err)
	}

	c.logger.Debug("account resource",
		zap.String("address", address),
		zap.String("type", resourceType),
		zap.Int("status", resp.StatusCode),
	)

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return gjson.Result{}, fmt.Errorf("%s at %s: %w", resourceType, address, ErrResourceNotFound)
	case resp.StatusCode != http.StatusOK:
		msg := gjson.GetBytes(body, "message").String()
		if msg == "" {
			msg = strings.TrimSpace(string(body))
		}
		return gjson.Result{}, fmt.Errorf("get resource %s: status %d: %s", resourceType, resp.StatusCode, msg)
	}

	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("get resource %s: invalid json", resourceType)
	}
	return gjson.ParseBytes(body), nil
}
