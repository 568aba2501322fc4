package wikipedia

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	semerrors "github.com/c360studio/semstreams/pkg/errs"
	"github.com/c360studio/semstreams/pkg/retry"
	"golang.org/x/time/rate"

	"github.com/dbpedia-vi/vikb/config"
	"github.com/dbpedia-vi/vikb/wikitext"
)

// Client talks to a MediaWiki API. All requests pass through a shared
// token-bucket limiter; transient failures are retried with exponential
// backoff. Safe for concurrent use.
type Client struct {
	endpoint   string
	language   string
	userAgent  string
	httpClient *http.Client
	limiter    *rate.Limiter
	retryCfg   retry.Config
	logger     *slog.Logger
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

// NewClient builds a collector client from configuration.
func NewClient(cfg config.WikipediaConfig, opts ...ClientOption) *Client {
	c := &Client{
		endpoint:   cfg.APIEndpoint,
		language:   cfg.Language,
		userAgent:  cfg.UserAgent,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst),
		retryCfg: retry.Config{
			MaxAttempts:  cfg.MaxRetries,
			InitialDelay: 500 * time.Millisecond,
			MaxDelay:     10 * time.Second,
			Multiplier:   2.0,
			AddJitter:    true,
		},
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type apiResponse struct {
	Query *struct {
		Pages map[string]apiPage `json:"pages"`

		CategoryMembers []struct {
			Title string `json:"title"`
		} `json:"categorymembers"`
	} `json:"query"`
	Parse *struct {
		Wikitext struct {
			Content string `json:"*"`
		} `json:"wikitext"`
	} `json:"parse"`
}

type apiPage struct {
	PageID  int64     `json:"pageid"`
	Title   string    `json:"title"`
	Missing *struct{} `json:"missing,omitempty"`
	Extract string    `json:"extract"`

	Categories []struct {
		Title string `json:"title"`
	} `json:"categories"`
	Templates []struct {
		Title string `json:"title"`
	} `json:"templates"`
	Revisions []struct {
		RevID     int64  `json:"revid"`
		Timestamp string `json:"timestamp"`
	} `json:"revisions"`
	LangLinks []struct {
		Lang  string `json:"lang"`
		Title string `json:"*"`
	} `json:"langlinks"`
}

// request performs one rate-limited, retried API call.
func (c *Client) request(ctx context.Context, params url.Values) (*apiResponse, error) {
	params.Set("format", "json")

	var result *apiResponse
	err := retry.Do(ctx, c.retryCfg, func() error {
		if err := c.limiter.Wait(ctx); err != nil {
			return retry.NonRetryable(err)
		}

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"?"+params.Encode(), nil)
		if err != nil {
			return retry.NonRetryable(err)
		}
		req.Header.Set("User-Agent", c.userAgent)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return err
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("api returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return retry.NonRetryable(fmt.Errorf("api returned status %d", resp.StatusCode))
		}

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return err
		}
		var parsed apiResponse
		if err := json.Unmarshal(body, &parsed); err != nil {
			return retry.NonRetryable(fmt.Errorf("decode api response: %w", err))
		}
		result = &parsed
		return nil
	})
	if err != nil {
		return nil, semerrors.WrapTransient(err, "wikipedia", "request", "call mediawiki api")
	}
	return result, nil
}

// ArticleByTitle fetches one article with its metadata, abstract,
// categories, templates, and parsed infobox. A missing article returns
// (nil, nil): absence is data, not an error.
func (c *Client) ArticleByTitle(ctx context.Context, title string) (*Article, error) {
	c.logger.Info("fetching article", "title", title)

	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "info|extracts|categories|templates|revisions")
	params.Set("titles", title)
	params.Set("exintro", "1")
	params.Set("explaintext", "1")
	params.Set("exsectionformat", "plain")
	params.Set("cllimit", "500")
	params.Set("tllimit", "500")
	params.Set("rvprop", "timestamp|ids")
	params.Set("rvlimit", "1")

	resp, err := c.request(ctx, params)
	if err != nil {
		return nil, err
	}
	page, ok := firstPage(resp)
	if !ok || page.Missing != nil {
		c.logger.Warn("article not found", "title", title)
		return nil, nil
	}

	article := &Article{
		Title:    page.Title,
		PageID:   page.PageID,
		URL:      c.articleURL(page.Title),
		Abstract: page.Extract,
		Language: c.language,
	}
	for _, cat := range page.Categories {
		article.Categories = append(article.Categories, cat.Title)
	}
	for _, tpl := range page.Templates {
		article.Templates = append(article.Templates, tpl.Title)
	}
	if len(page.Revisions) > 0 {
		article.LastModified = page.Revisions[0].Timestamp
		article.RevisionID = page.Revisions[0].RevID
	}

	infobox, err := c.fetchInfobox(ctx, page.Title)
	if err != nil {
		// A failed infobox fetch degrades the article, not the run.
		c.logger.Warn("infobox fetch failed", "title", page.Title, "error", err)
		infobox = map[string]string{}
	}
	article.Infobox = infobox

	return article, nil
}

// ArticlesByCategory fetches up to limit main-namespace members of a
// category. Individual article failures are logged and skipped.
func (c *Client) ArticlesByCategory(ctx context.Context, category string, limit int) ([]*Article, error) {
	c.logger.Info("collecting category", "category", category, "limit", limit)

	params := url.Values{}
	params.Set("action", "query")
	params.Set("list", "categorymembers")
	params.Set("cmtitle", category)
	params.Set("cmlimit", fmt.Sprintf("%d", min(limit, 500)))
	params.Set("cmnamespace", "0")

	resp, err := c.request(ctx, params)
	if err != nil {
		return nil, err
	}
	if resp.Query == nil {
		return nil, nil
	}

	var articles []*Article
	for _, member := range resp.Query.CategoryMembers {
		if len(articles) >= limit {
			break
		}
		article, err := c.ArticleByTitle(ctx, member.Title)
		if err != nil {
			c.logger.Warn("article fetch failed", "title", member.Title, "error", err)
			continue
		}
		if article != nil {
			articles = append(articles, article)
		}
	}

	c.logger.Info("category collected", "category", category, "articles", len(articles))
	return articles, nil
}

// ArticleContent fetches the full plain-text extract of an article.
func (c *Client) ArticleContent(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "extracts")
	params.Set("titles", title)
	params.Set("explaintext", "1")

	resp, err := c.request(ctx, params)
	if err != nil {
		return "", err
	}
	page, ok := firstPage(resp)
	if !ok {
		return "", nil
	}
	return page.Extract, nil
}

// EnglishTitle resolves the English interwiki link of a Vietnamese
// article. Empty string with nil error means no link exists.
func (c *Client) EnglishTitle(ctx context.Context, title string) (string, error) {
	params := url.Values{}
	params.Set("action", "query")
	params.Set("prop", "langlinks")
	params.Set("titles", title)
	params.Set("lllang", "en")

	resp, err := c.request(ctx, params)
	if err != nil {
		return "", err
	}
	page, ok := firstPage(resp)
	if !ok {
		return "", nil
	}
	for _, link := range page.LangLinks {
		if link.Lang == "en" {
			return link.Title, nil
		}
	}
	return "", nil
}

// fetchInfobox pulls the raw wikitext and parses the first infobox.
func (c *Client) fetchInfobox(ctx context.Context, title string) (map[string]string, error) {
	params := url.Values{}
	params.Set("action", "parse")
	params.Set("page", title)
	params.Set("prop", "wikitext")

	resp, err := c.request(ctx, params)
	if err != nil {
		return nil, err
	}
	if resp.Parse == nil {
		return map[string]string{}, nil
	}
	return wikitext.ParseInfobox(resp.Parse.Wikitext.Content), nil
}

func (c *Client) articleURL(title string) string {
	host := strings.TrimSuffix(c.endpoint, "/w/api.php")
	return host + "/wiki/" + url.PathEscape(title)
}

func firstPage(resp *apiResponse) (apiPage, bool) {
	if resp.Query == nil || len(resp.Query.Pages) == 0 {
		return apiPage{}, false
	}
	for _, page := range resp.Query.Pages {
		return page, true
	}
	return apiPage{}, false
}
