// Package store is the gateway to a GraphDB-compatible triple store,
// covering repository lifecycle, statement loading and SPARQL
// execution over the REST API.
package store

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strconv"
	"strings"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/c360studio/semstreams/pkg/retry"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/rdf"
	"github.com/dbpedia-vi/vikb/sparql"
)

// QueryKind selects the SPARQL form sent to the store.
type QueryKind string

const (
	QuerySelect    QueryKind = "select"
	QueryConstruct QueryKind = "construct"
	QueryDescribe  QueryKind = "describe"
	QueryAsk       QueryKind = "ask"
	QueryUpdate    QueryKind = "update"
)

// QueryResult carries the outcome of one query. Bindings is set for
// SELECT, Boolean for ASK, RDF for CONSTRUCT and DESCRIBE.
type QueryResult struct {
	Bindings []sparql.Binding
	Boolean  bool
	RDF      string
}

// Client talks to one triple-store instance.
type Client struct {
	baseURL    string
	username   string
	password   string
	httpClient *http.Client
	retryCfg   retry.Config
	logger     *slog.Logger
}

// Option customizes a Client.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// WithRetryConfig overrides the backoff schedule for store calls.
func WithRetryConfig(cfg retry.Config) Option {
	return func(c *Client) { c.retryCfg = cfg }
}

// New builds a store client from configuration.
func New(cfg config.StoreConfig, opts ...Option) *Client {
	c := &Client{
		baseURL:    strings.TrimSuffix(cfg.BaseURL, "/"),
		username:   cfg.Username,
		password:   cfg.Password,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryCfg:   retry.DefaultConfig(),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Version reports the store's server version.
func (c *Client) Version(ctx context.Context) (string, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/rest/info/version", nil, "", "")
	if err != nil {
		return "", err
	}
	var payload struct {
		Productversion string `json:"productVersion"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		// Older servers answer with a bare version string.
		return strings.TrimSpace(string(body)), nil
	}
	return payload.Productversion, nil
}

// ListRepositories returns the ids of all repositories on the server.
func (c *Client) ListRepositories(ctx context.Context) ([]string, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/rest/repositories", nil, "", "application/json")
	if err != nil {
		return nil, err
	}
	var repos []struct {
		ID string `json:"id"`
	}
	if err := json.Unmarshal(body, &repos); err != nil {
		return nil, semerrors.WrapInvalid(err, "store", "ListRepositories", "check server response")
	}
	ids := make([]string, 0, len(repos))
	for _, r := range repos {
		ids = append(ids, r.ID)
	}
	return ids, nil
}

// RepositoryExists reports whether a repository id is present.
func (c *Client) RepositoryExists(ctx context.Context, id string) (bool, error) {
	ids, err := c.ListRepositories(ctx)
	if err != nil {
		return false, err
	}
	for _, existing := range ids {
		if existing == id {
			return true, nil
		}
	}
	return false, nil
}

// CreateRepository creates a repository if it does not already exist.
// Idempotent: returns true when the repository is present afterwards.
func (c *Client) CreateRepository(ctx context.Context, id string) (bool, error) {
	exists, err := c.RepositoryExists(ctx, id)
	if err != nil {
		return false, err
	}
	if exists {
		return true, nil
	}

	cfg := map[string]any{
		"id":    id,
		"title": "Vietnamese knowledge base",
		"type":  "free",
		"params": map[string]any{
			"ruleset": map[string]any{
				"label": "Ruleset",
				"name":  "ruleset",
				"value": "rdfsplus-optimized",
			},
		},
	}
	payload, err := json.Marshal(cfg)
	if err != nil {
		return false, semerrors.WrapInvalid(err, "store", "CreateRepository", "check repository config")
	}
	if _, err := c.do(ctx, http.MethodPost, c.baseURL+"/rest/repositories", bytes.NewReader(payload), "application/json", ""); err != nil {
		return false, err
	}
	c.logger.Info("repository created", "repository", id)
	return true, nil
}

// DeleteRepository removes a repository and all its data.
func (c *Client) DeleteRepository(ctx context.Context, id string) error {
	_, err := c.do(ctx, http.MethodDelete, c.baseURL+"/rest/repositories/"+url.PathEscape(id), nil, "", "")
	return err
}

// ClearRepository deletes statements, optionally only those in the
// given named graph context.
func (c *Client) ClearRepository(ctx context.Context, id, graphContext string) error {
	endpoint := c.statementsURL(id, graphContext)
	_, err := c.do(ctx, http.MethodDelete, endpoint, nil, "", "")
	if err == nil {
		c.logger.Info("repository cleared", "repository", id, "context", graphContext)
	}
	return err
}

// Size returns the number of statements in a repository.
func (c *Client) Size(ctx context.Context, id string) (int64, error) {
	body, err := c.do(ctx, http.MethodGet, c.baseURL+"/repositories/"+url.PathEscape(id)+"/size", nil, "", "")
	if err != nil {
		return 0, err
	}
	n, err := strconv.ParseInt(strings.TrimSpace(string(body)), 10, 64)
	if err != nil {
		return 0, semerrors.WrapInvalid(err, "store", "Size", "check server response")
	}
	return n, nil
}

// LoadBytes uploads serialized RDF into a repository.
func (c *Client) LoadBytes(ctx context.Context, id string, data []byte, format rdf.Format, graphContext string) error {
	endpoint := c.statementsURL(id, graphContext)
	if _, err := c.do(ctx, http.MethodPost, endpoint, bytes.NewReader(data), format.MIMEType(), ""); err != nil {
		return err
	}
	c.logger.Debug("statements loaded", "repository", id, "bytes", len(data))
	return nil
}

// LoadFile uploads one RDF file into a repository.
func (c *Client) LoadFile(ctx context.Context, id, path string, format rdf.Format, graphContext string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return semerrors.WrapInvalid(err, "store", "LoadFile", "check file path")
	}
	return c.LoadBytes(ctx, id, data, format, graphContext)
}

// Query executes a SPARQL query of the given kind against a
// repository.
func (c *Client) Query(ctx context.Context, id, query string, kind QueryKind) (*QueryResult, error) {
	endpoint := c.baseURL + "/repositories/" + url.PathEscape(id)
	form := url.Values{}
	accept := "application/sparql-results+json"

	switch kind {
	case QueryUpdate:
		endpoint += "/statements"
		form.Set("update", query)
		accept = ""
	case QueryConstruct, QueryDescribe:
		form.Set("query", query)
		accept = "application/rdf+xml"
	default:
		form.Set("query", query)
	}

	body, err := c.do(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()), "application/x-www-form-urlencoded", accept)
	if err != nil {
		return nil, err
	}

	switch kind {
	case QueryUpdate:
		return &QueryResult{}, nil
	case QueryConstruct, QueryDescribe:
		return &QueryResult{RDF: string(body)}, nil
	case QueryAsk:
		var payload struct {
			Boolean bool `json:"boolean"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, semerrors.WrapInvalid(err, "store", "Query", "check ask response")
		}
		return &QueryResult{Boolean: payload.Boolean}, nil
	default:
		var payload struct {
			Results struct {
				Bindings []map[string]struct {
					Value string `json:"value"`
				} `json:"bindings"`
			} `json:"results"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return nil, semerrors.WrapInvalid(err, "store", "Query", "check select response")
		}
		bindings := make([]sparql.Binding, 0, len(payload.Results.Bindings))
		for _, row := range payload.Results.Bindings {
			binding := make(sparql.Binding, len(row))
			for name, cell := range row {
				binding[name] = cell.Value
			}
			bindings = append(bindings, binding)
		}
		return &QueryResult{Bindings: bindings}, nil
	}
}

func (c *Client) statementsURL(id, graphContext string) string {
	endpoint := c.baseURL + "/repositories/" + url.PathEscape(id) + "/statements"
	if graphContext != "" {
		endpoint += "?context=" + url.QueryEscape("<"+graphContext+">")
	}
	return endpoint
}

// do issues one request with bounded retries. Server-side failures are
// retried, client-side failures are not.
func (c *Client) do(ctx context.Context, method, endpoint string, body io.Reader, contentType, accept string) ([]byte, error) {
	var payload []byte
	if body != nil {
		var err error
		payload, err = io.ReadAll(body)
		if err != nil {
			return nil, semerrors.WrapInvalid(err, "store", "do", "check request body")
		}
	}

	var out []byte
	err := retry.Do(ctx, c.retryCfg, func() error {
		req, err := http.NewRequestWithContext(ctx, method, endpoint, bytes.NewReader(payload))
		if err != nil {
			return retry.NonRetryable(semerrors.WrapInvalid(err, "store", "do", "check request parameters"))
		}
		if contentType != "" {
			req.Header.Set("Content-Type", contentType)
		}
		if accept != "" {
			req.Header.Set("Accept", accept)
		}
		if c.username != "" {
			req.SetBasicAuth(c.username, c.password)
		}

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return semerrors.WrapTransient(err, "store", "do", "check store connectivity")
		}
		defer resp.Body.Close()

		data, err := io.ReadAll(resp.Body)
		if err != nil {
			return semerrors.WrapTransient(err, "store", "do", "check store connectivity")
		}
		if resp.StatusCode >= 500 {
			return semerrors.WrapTransient(
				fmt.Errorf("store returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
				"store", "do", "check store health")
		}
		if resp.StatusCode >= 300 {
			return retry.NonRetryable(semerrors.WrapInvalid(
				fmt.Errorf("store returned HTTP %d: %s", resp.StatusCode, strings.TrimSpace(string(data))),
				"store", "do", "check request parameters"))
		}
		out = data
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
