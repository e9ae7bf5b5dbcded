package docsrs

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/custodia-labs/rustdoc-md/internal/core/domain"
	"github.com/custodia-labs/rustdoc-md/internal/core/ports/driven"
	"github.com/custodia-labs/rustdoc-md/internal/logger"
)

const (
	// DefaultBaseURL is the public docs.rs host.
	DefaultBaseURL = "https://docs.rs"

	// DefaultRate is the proactive throttle rate in requests per second.
	DefaultRate = 1.0

	// defaultTimeout bounds a single page fetch.
	defaultTimeout = 30 * time.Second

	// maxPageSize caps a fetched page at 10 MiB. Rustdoc pages for large
	// crates run to a few MiB; anything bigger is not a documentation page.
	maxPageSize = 10 << 20

	userAgent = "rustdoc-md (+https://github.com/custodia-labs/rustdoc-md)"
)

// Ensure Client implements the interface.
var _ driven.Fetcher = (*Client)(nil)

// Client fetches rustdoc HTML pages from docs.rs.
type Client struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the docs.rs host. Used in tests and for mirrors.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithRateLimit overrides the proactive throttle rate (requests/second).
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		if rps > 0 {
			c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
		}
	}
}

// NewClient creates a docs.rs client with proactive throttling.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		httpClient: &http.Client{Timeout: defaultTimeout},
		limiter:    rate.NewLimiter(rate.Limit(DefaultRate), 1),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Fetch retrieves the rustdoc HTML page for a crate item.
func (c *Client) Fetch(ctx context.Context, crate, version, itemPath string) (*domain.RawPage, error) {
	if crate == "" {
		return nil, fmt.Errorf("%w: crate name is required", domain.ErrInvalidInput)
	}
	if version == "" {
		version = domain.LatestVersion
	}

	pageURL := c.pageURL(crate, version, itemPath)

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	logger.Debug("fetching %s", pageURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, fmt.Errorf("%s@%s: %w", crate, version, domain.ErrCrateNotFound)
	case resp.StatusCode == http.StatusTooManyRequests:
		return nil, fmt.Errorf("fetching %s: %w", pageURL, domain.ErrRateLimited)
	case resp.StatusCode != http.StatusOK:
		return nil, fmt.Errorf("fetching %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	content, err := io.ReadAll(io.LimitReader(resp.Body, maxPageSize))
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", pageURL, err)
	}

	// docs.rs redirects /latest/ to the concrete version; keep the
	// resolved URL as the page's identity.
	finalURL := pageURL
	if resp.Request != nil && resp.Request.URL != nil {
		finalURL = resp.Request.URL.String()
	}

	return &domain.RawPage{
		URI:      finalURL,
		Crate:    crate,
		Version:  version,
		MIMEType: contentType(resp),
		Content:  content,
		Metadata: map[string]any{
			"item_path": itemPath,
		},
	}, nil
}

// pageURL builds the docs.rs URL for a crate item.
// Crate names use hyphens on crates.io but underscores in the rustdoc
// module path.
func (c *Client) pageURL(crate, version, itemPath string) string {
	module := strings.ReplaceAll(crate, "-", "_")

	url := c.baseURL + "/" + crate + "/" + version + "/" + module + "/"
	if itemPath != "" {
		url += strings.TrimPrefix(itemPath, "/")
	}
	return url
}

// contentType extracts the media type from the response, defaulting to
// text/html when absent or malformed.
func contentType(resp *http.Response) string {
	header := resp.Header.Get("Content-Type")
	if header == "" {
		return "text/html"
	}

	mediaType, _, err := mime.ParseMediaType(header)
	if err != nil {
		return "text/html"
	}
	return mediaType
}
