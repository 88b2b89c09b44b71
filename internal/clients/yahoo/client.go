// Package yahoo provides a client for the Yahoo Finance query API.
//
// One Client wraps one persistent HTTP session (cookie jar + crumb token)
// shared by every request. The query API requires a consent cookie and a
// matching crumb for most endpoints; the handshake is performed lazily on
// first use and tolerated on failure since several endpoints still answer
// without it.
package yahoo

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"yfengine/internal/common"
	"yfengine/internal/interfaces"
)

const (
	DefaultBaseURL   = "https://query1.finance.yahoo.com"
	DefaultHomeURL   = "https://finance.yahoo.com"
	DefaultTimeout   = 30 * time.Second
	DefaultRateLimit = 5 // requests per second

	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/124.0.0.0 Safari/537.36"
)

// Client implements the YahooClient interface.
type Client struct {
	baseURL    string
	homeURL    string
	httpClient *http.Client
	logger     *common.Logger
	limiter    *rate.Limiter

	mu    sync.Mutex
	crumb string
}

// ClientOption configures the client
type ClientOption func(*Client)

// WithBaseURL sets the query API base URL
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(baseURL, "/")
	}
}

// WithHomeURL sets the URL used to prime the session cookie
func WithHomeURL(homeURL string) ClientOption {
	return func(c *Client) {
		c.homeURL = strings.TrimRight(homeURL, "/")
	}
}

// WithLogger sets the logger
func WithLogger(logger *common.Logger) ClientOption {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithRateLimit sets the rate limit
func WithRateLimit(requestsPerSecond int) ClientOption {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(requestsPerSecond), requestsPerSecond)
	}
}

// WithTimeout sets the HTTP timeout
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new Yahoo Finance client with its own cookie jar.
func NewClient(opts ...ClientOption) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		homeURL: DefaultHomeURL,
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: DefaultTimeout,
		},
		limiter: rate.NewLimiter(rate.Limit(DefaultRateLimit), DefaultRateLimit),
		logger:  common.NewSilentLogger(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// APIError represents an upstream API error
type APIError struct {
	StatusCode int
	Message    string
	Endpoint   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("yahoo API error: %s (status: %d, endpoint: %s)", e.Message, e.StatusCode, e.Endpoint)
}

// ensureSession primes the session cookie and fetches the crumb token.
// Failures are logged and tolerated: requests proceed without a crumb.
func (c *Client) ensureSession(ctx context.Context) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.crumb != "" {
		return
	}

	prime, err := http.NewRequestWithContext(ctx, http.MethodGet, c.homeURL, nil)
	if err == nil {
		prime.Header.Set("User-Agent", userAgent)
		if resp, err := c.httpClient.Do(prime); err == nil {
			io.Copy(io.Discard, resp.Body)
			resp.Body.Close()
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/v1/test/getcrumb", nil)
	if err != nil {
		return
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn().Err(err).Msg("Failed to fetch Yahoo session crumb")
		return
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn().Int("status", resp.StatusCode).Msg("Failed to fetch Yahoo session crumb")
		return
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 256))
	if err != nil {
		return
	}

	crumb := strings.TrimSpace(string(body))
	// An HTML body means a consent interstitial, not a crumb.
	if crumb == "" || strings.Contains(crumb, "<") {
		c.logger.Warn().Msg("Yahoo session crumb unavailable")
		return
	}

	c.crumb = crumb
	c.logger.Debug().Msg("Yahoo session initialized")
}

// get performs a rate-limited GET request against the query API and
// decodes the JSON response into result.
func (c *Client) get(ctx context.Context, path string, params url.Values, result interface{}) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	c.ensureSession(ctx)

	if params == nil {
		params = url.Values{}
	}

	c.mu.Lock()
	if c.crumb != "" {
		params.Set("crumb", c.crumb)
	}
	c.mu.Unlock()

	reqURL := fmt.Sprintf("%s%s?%s", c.baseURL, path, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	c.logger.Debug().Str("path", path).Msg("Yahoo API request")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    strings.TrimSpace(string(body)),
			Endpoint:   path,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}

	return nil
}

// rawValue is Yahoo's {"raw": ..., "fmt": ...} number wrapper.
type rawValue struct {
	Raw *float64 `json:"raw"`
	Fmt string   `json:"fmt"`
}

func (v rawValue) time() time.Time {
	if v.Raw == nil {
		return time.Time{}
	}
	return time.Unix(int64(*v.Raw), 0).UTC()
}

// Ensure Client implements YahooClient
var _ interfaces.YahooClient = (*Client)(nil)
