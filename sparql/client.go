// Package sparql is a read-only client for remote SPARQL endpoints.
// Query results are cached per query text for the lifetime of the
// client, so repeated lookups during a linking run stay off the wire.
package sparql

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/c360studio/semstreams/pkg/cache"
	"github.com/c360studio/semstreams/pkg/retry"

	"github.com/dbpedia-vi/vikb/config"
)

// Binding is one result row: variable name to bound value.
type Binding map[string]string

// Client queries a SPARQL endpoint over HTTP. Safe for concurrent use;
// the result cache is shared across goroutines.
type Client struct {
	endpoint   string
	httpClient *http.Client
	retryCfg   retry.Config
	logger     *slog.Logger

	selectCache cache.Cache[[]Binding]
	askCache    cache.Cache[bool]

	mu    sync.Mutex
	stats Stats
}

// Stats counts client activity since construction.
type Stats struct {
	Queries   int `json:"queries"`
	CacheHits int `json:"cache_hits"`
	Failures  int `json:"failures"`
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) ClientOption {
	return func(c *Client) { c.logger = logger }
}

// WithHTTPClient replaces the underlying HTTP client, mainly for tests.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.httpClient = hc }
}

// WithRetryConfig overrides the backoff settings.
func WithRetryConfig(cfg retry.Config) ClientOption {
	return func(c *Client) { c.retryCfg = cfg }
}

// NewClient builds a client from configuration.
func NewClient(cfg config.SPARQLConfig, opts ...ClientOption) (*Client, error) {
	selectCache, err := cache.NewLRU[[]Binding](cfg.CacheSize)
	if err != nil {
		return nil, semerrors.WrapFatal(err, "sparql", "NewClient", "create select cache")
	}
	askCache, err := cache.NewLRU[bool](cfg.CacheSize)
	if err != nil {
		return nil, semerrors.WrapFatal(err, "sparql", "NewClient", "create ask cache")
	}

	c := &Client{
		endpoint:   cfg.Endpoint,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryCfg: retry.Config{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
			AddJitter:    true,
		},
		logger:      slog.Default(),
		selectCache: selectCache,
		askCache:    askCache,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// Select runs a SELECT query and returns its bindings.
func (c *Client) Select(ctx context.Context, query string) ([]Binding, error) {
	key := queryKey(query)
	if rows, ok := c.selectCache.Get(key); ok {
		c.count(func(s *Stats) { s.CacheHits++ })
		return rows, nil
	}

	body, err := c.execute(ctx, query)
	if err != nil {
		return nil, err
	}

	var parsed struct {
		Results struct {
			Bindings []map[string]struct {
				Value string `json:"value"`
			} `json:"bindings"`
		} `json:"results"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.count(func(s *Stats) { s.Failures++ })
		return nil, semerrors.WrapInvalid(err, "sparql", "Select", "decode result bindings")
	}

	rows := make([]Binding, 0, len(parsed.Results.Bindings))
	for _, raw := range parsed.Results.Bindings {
		row := make(Binding, len(raw))
		for name, cell := range raw {
			row[name] = cell.Value
		}
		rows = append(rows, row)
	}

	_, _ = c.selectCache.Set(key, rows)
	return rows, nil
}

// Ask runs an ASK query and returns the boolean verdict.
func (c *Client) Ask(ctx context.Context, query string) (bool, error) {
	key := queryKey(query)
	if verdict, ok := c.askCache.Get(key); ok {
		c.count(func(s *Stats) { s.CacheHits++ })
		return verdict, nil
	}

	body, err := c.execute(ctx, query)
	if err != nil {
		return false, err
	}

	var parsed struct {
		Boolean bool `json:"boolean"`
	}
	if err := json.Unmarshal(body, &parsed); err != nil {
		c.count(func(s *Stats) { s.Failures++ })
		return false, semerrors.WrapInvalid(err, "sparql", "Ask", "decode ask result")
	}

	_, _ = c.askCache.Set(key, parsed.Boolean)
	return parsed.Boolean, nil
}

// execute posts the query with retry on transport and 5xx failures.
func (c *Client) execute(ctx context.Context, query string) ([]byte, error) {
	c.count(func(s *Stats) { s.Queries++ })

	form := url.Values{}
	form.Set("query", query)
	form.Set("format", "json")

	var body []byte
	err := retry.Do(ctx, c.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, strings.NewReader(form.Encode()))
		if err != nil {
			return retry.NonRetryable(err)
		}
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "application/sparql-results+json")

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("endpoint returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return retry.NonRetryable(fmt.Errorf("endpoint returned status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(resp.Body)
		return err
	})
	if err != nil {
		c.count(func(s *Stats) { s.Failures++ })
		return nil, semerrors.WrapTransient(err, "sparql", "execute", "query endpoint")
	}
	return body, nil
}

// Stats returns a snapshot of the activity counters.
func (c *Client) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.stats
}

// CacheSize reports the number of cached query results.
func (c *Client) CacheSize() int {
	return c.selectCache.Size() + c.askCache.Size()
}

// ClearCache drops all cached results.
func (c *Client) ClearCache() {
	_ = c.selectCache.Clear()
	_ = c.askCache.Clear()
}

func (c *Client) count(update func(*Stats)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	update(&c.stats)
}

func queryKey(query string) string {
	sum := sha256.Sum256([]byte(query))
	return hex.EncodeToString(sum[:])
}
