package news

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/jonesrussell/mcp-aws-news/internal/httpclient"
)

// DefaultCacheTTL is how long a fetched snapshot is served before the
// next read triggers a refresh.
const DefaultCacheTTL = 300 * time.Second

// Client fetches the article index from the upstream feed. It owns a
// single cache slot holding the most recent full snapshot and a shared
// HTTP client created lazily on first use.
//
// The mutex guards the cache slot and the HTTP client against data
// races only. Concurrent callers that both observe an expired snapshot
// will both fetch; the snapshot is idempotent upstream, so the
// redundant fetch is wasted work, not a correctness problem.
type Client struct {
	feedURL string
	timeout time.Duration

	mu         sync.Mutex
	httpClient *http.Client
	closed     bool

	cached    []Article
	fetchedAt time.Time
	ttl       time.Duration

	now func() time.Time
}

// Option configures a Client.
type Option func(*Client)

// WithHTTPClient sets the HTTP client instead of creating one lazily.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL overrides the snapshot time-to-live.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) { c.ttl = ttl }
}

// WithTimeout sets the timeout used when the HTTP client is created lazily.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) { c.timeout = timeout }
}

// NewClient creates a feed client for the given upstream URL.
func NewClient(feedURL string, opts ...Option) *Client {
	c := &Client{
		feedURL: feedURL,
		ttl:     DefaultCacheTTL,
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// client returns the shared HTTP client, creating it on first use and
// recreating it after Close.
func (c *Client) client() *http.Client {
	if c.httpClient == nil || c.closed {
		c.httpClient = httpclient.New(c.timeout)
		c.closed = false
	}
	return c.httpClient
}

// Close releases idle upstream connections. The client is usable again
// after Close; the next request creates a fresh connection pool.
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.httpClient != nil && !c.closed {
		c.httpClient.CloseIdleConnections()
		c.closed = true
	}
}

// HTTPClient returns the shared HTTP client so collaborators (content
// extraction) reuse the same connection pool.
func (c *Client) HTTPClient() *http.Client {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.client()
}

// FetchArticles returns the article index, serving the cached snapshot
// when it is younger than the TTL and fetching otherwise. A successful
// fetch replaces the snapshot unconditionally; a failed fetch leaves
// the cache untouched and propagates the error even when a stale
// snapshot exists (refresh-or-fail, never serve-stale-on-error).
//
// limit, when positive, truncates the returned list only. The cache
// always holds the full index.
func (c *Client) FetchArticles(ctx context.Context, limit int) ([]Article, error) {
	c.mu.Lock()
	cached := c.cached
	fresh := cached != nil && c.now().Sub(c.fetchedAt) < c.ttl
	hc := c.client()
	c.mu.Unlock()

	articles := cached
	if !fresh {
		fetched, err := c.fetchIndex(ctx, hc)
		if err != nil {
			return nil, err
		}

		c.mu.Lock()
		c.cached = fetched
		c.fetchedAt = c.now()
		c.mu.Unlock()

		articles = fetched
	}

	if limit > 0 && limit < len(articles) {
		articles = articles[:limit]
	}
	return articles, nil
}

func (c *Client) fetchIndex(ctx context.Context, hc *http.Client) ([]Article, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.feedURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create feed request: %w", err)
	}

	resp, err := hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch article feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("article feed returned status %d", resp.StatusCode)
	}

	var body struct {
		Articles []Article `json:"articles"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parse article feed: %w", err)
	}

	if body.Articles == nil {
		body.Articles = []Article{}
	}
	return body.Articles, nil
}
