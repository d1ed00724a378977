package esi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"github.com/google/uuid"
)

const (
	// DefaultBaseURL is the ESI API host.
	DefaultBaseURL = "https://esi.evetech.net"

	// DefaultDatasource selects the Tranquility cluster, the live game
	// environment.
	DefaultDatasource = "tranquility"

	// DefaultUserAgent identifies this library to ESI. CCP asks clients to
	// send something identifiable.
	DefaultUserAgent = "eveutil/1.0.0"

	// DefaultTimeout bounds a single HTTP attempt. Retries get a fresh
	// timeout budget each.
	DefaultTimeout = 30 * time.Second

	// DefaultMaxAttempts is the total number of attempts (initial + retries)
	// for transient failures.
	DefaultMaxAttempts = 3

	// DefaultVersion is the ESI route version segment.
	DefaultVersion = "latest"

	// statusErrorLimited is ESI's non-standard "error budget exhausted"
	// status. It maps to the same error kind as 429 but is never retried.
	statusErrorLimited = 420
)

// TokenProvider supplies valid bearer tokens for authenticated requests.
// *auth.Authenticator satisfies this interface.
type TokenProvider interface {
	AccessToken(ctx context.Context, characterID string) (string, error)
}

// Config configures a Client. The zero value is usable for anonymous calls
// against the live ESI host.
type Config struct {
	// BaseURL overrides the ESI host. Used in tests.
	BaseURL string

	// UserAgent overrides the User-Agent header.
	UserAgent string

	// Datasource overrides the default datasource query parameter.
	Datasource string

	// Tokens supplies bearer tokens for authenticated requests. Leave nil
	// for anonymous-only clients.
	Tokens TokenProvider

	// HTTPClient is an optional custom HTTP client.
	HTTPClient *http.Client

	// Timeout bounds each HTTP attempt.
	Timeout time.Duration

	// MaxAttempts is the total attempt ceiling for transient failures.
	MaxAttempts int

	// RetryInterval is the initial backoff interval between attempts.
	RetryInterval time.Duration

	// Logger receives request diagnostics. Defaults to slog.Default().
	Logger *slog.Logger
}

// Client performs HTTP calls against ESI with bearer-token injection,
// datasource defaults, bounded retry, and response classification. Resource
// groups hang off the client as fields.
type Client struct {
	baseURL       string
	userAgent     string
	datasource    string
	tokens        TokenProvider
	httpClient    *http.Client
	timeout       time.Duration
	maxAttempts   int
	retryInterval time.Duration
	logger        *slog.Logger

	Alliance    *AllianceGroup
	Character   *CharacterGroup
	Corporation *CorporationGroup
	Dogma       *DogmaGroup
	Fleet       *FleetGroup
	Incursions  *IncursionsGroup
	Insurance   *InsuranceGroup
	Killmails   *KillmailsGroup
	Market      *MarketGroup
	Skills      *SkillsGroup
	Sovereignty *SovereigntyGroup
	Universe    *UniverseGroup
	Wallet      *WalletGroup
	Wars        *WarsGroup
}

// NewClient creates an ESI client.
func NewClient(cfg Config) *Client {
	baseURL := strings.TrimSuffix(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	datasource := cfg.Datasource
	if datasource == "" {
		datasource = DefaultDatasource
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	maxAttempts := cfg.MaxAttempts
	if maxAttempts == 0 {
		maxAttempts = DefaultMaxAttempts
	}

	retryInterval := cfg.RetryInterval
	if retryInterval == 0 {
		retryInterval = 500 * time.Millisecond
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	c := &Client{
		baseURL:       baseURL,
		userAgent:     userAgent,
		datasource:    datasource,
		tokens:        cfg.Tokens,
		httpClient:    httpClient,
		timeout:       timeout,
		maxAttempts:   maxAttempts,
		retryInterval: retryInterval,
		logger:        logger,
	}

	c.Alliance = &AllianceGroup{client: c}
	c.Character = &CharacterGroup{client: c}
	c.Corporation = &CorporationGroup{client: c}
	c.Dogma = &DogmaGroup{client: c}
	c.Fleet = &FleetGroup{client: c}
	c.Incursions = &IncursionsGroup{client: c}
	c.Insurance = &InsuranceGroup{client: c}
	c.Killmails = &KillmailsGroup{client: c}
	c.Market = &MarketGroup{client: c}
	c.Skills = &SkillsGroup{client: c}
	c.Sovereignty = &SovereigntyGroup{client: c}
	c.Universe = &UniverseGroup{client: c}
	c.Wallet = &WalletGroup{client: c}
	c.Wars = &WarsGroup{client: c}

	return c
}

// RequestOptions carries the per-request parameters of a pipeline call.
type RequestOptions struct {
	// CharacterID selects the authenticated character. Empty means an
	// anonymous request.
	CharacterID string

	// Query holds query parameters. The datasource parameter is injected
	// unless already present.
	Query url.Values

	// Body is JSON-encoded into the request body when non-nil.
	Body any

	// Headers are merged in last; they win over the defaults on conflict.
	Headers http.Header

	// Version overrides the ESI route version segment ("latest" when empty).
	Version string
}

// Do performs one ESI call and returns the raw response body. A 204, 304, or
// empty 200 body yields nil. Transient failures (429 and 500/502/503/504) are
// retried with capped exponential backoff up to the configured attempt
// ceiling; everything else is classified immediately into the typed errors
// of this package.
func (c *Client) Do(ctx context.Context, method, path string, opts *RequestOptions) ([]byte, error) {
	if opts == nil {
		opts = &RequestOptions{}
	}

	requestURL, err := c.buildURL(path, opts)
	if err != nil {
		return nil, err
	}

	headers, err := c.buildHeaders(ctx, opts)
	if err != nil {
		return nil, err
	}

	var body []byte
	if opts.Body != nil {
		body, err = json.Marshal(opts.Body)
		if err != nil {
			return nil, &APIError{URL: requestURL, Message: fmt.Sprintf("failed to encode request body: %v", err), Err: err}
		}
	}

	expBackoff := backoff.NewExponentialBackOff()
	expBackoff.InitialInterval = c.retryInterval
	expBackoff.MaxInterval = 20 * c.retryInterval
	expBackoff.Reset()

	c.logger.Debug("dispatching request", "method", method, "url", requestURL)

	operation := func() ([]byte, error) {
		return c.attempt(ctx, method, requestURL, headers, body)
	}

	return backoff.Retry(ctx, operation,
		backoff.WithBackOff(expBackoff),
		backoff.WithMaxTries(uint(c.maxAttempts)),
		backoff.WithNotify(func(err error, wait time.Duration) {
			c.logger.Debug("retrying request",
				"method", method,
				"url", requestURL,
				"wait", wait.String(),
				"error", err.Error(),
			)
		}),
	)
}

// buildURL assembles the absolute request URL from the base host, the
// version segment, the path (normalizing a missing leading slash), and the
// query with the datasource default injected.
func (c *Client) buildURL(path string, opts *RequestOptions) (string, error) {
	version := opts.Version
	if version == "" {
		version = DefaultVersion
	}

	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	parsed, err := url.Parse(c.baseURL + "/" + version + path)
	if err != nil {
		return "", &APIError{Message: fmt.Sprintf("invalid request path %q: %v", path, err), Err: err}
	}

	query := url.Values{}
	for key, values := range opts.Query {
		query[key] = values
	}
	if query.Get("datasource") == "" {
		query.Set("datasource", c.datasource)
	}
	parsed.RawQuery = query.Encode()

	return parsed.String(), nil
}

// buildHeaders assembles the request headers. Bearer injection happens here,
// before any network I/O: when no valid token is obtainable the request fails
// with an AuthenticationError without touching the transport.
func (c *Client) buildHeaders(ctx context.Context, opts *RequestOptions) (http.Header, error) {
	headers := make(http.Header)
	headers.Set("Accept", "application/json")
	headers.Set("Content-Type", "application/json")
	headers.Set("User-Agent", c.userAgent)
	headers.Set("X-Request-Id", uuid.NewString())

	if opts.CharacterID != "" {
		if c.tokens == nil {
			return nil, &AuthenticationError{
				Message: fmt.Sprintf("no token provider configured for character %s", opts.CharacterID),
			}
		}

		token, err := c.tokens.AccessToken(ctx, opts.CharacterID)
		if err != nil {
			return nil, &AuthenticationError{
				Message: fmt.Sprintf("no valid token for character %s", opts.CharacterID),
				Err:     err,
			}
		}
		headers.Set("Authorization", "Bearer "+token)
	}

	// Caller headers win on conflict.
	for key, values := range opts.Headers {
		headers[http.CanonicalHeaderKey(key)] = values
	}

	return headers, nil
}

// attempt performs a single HTTP attempt. Retryable classifications are
// returned bare; terminal ones are wrapped in backoff.Permanent so the retry
// loop stops and surfaces them unchanged.
func (c *Client) attempt(ctx context.Context, method, requestURL string, headers http.Header, body []byte) ([]byte, error) {
	attemptCtx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(attemptCtx, method, requestURL, reader)
	if err != nil {
		return nil, backoff.Permanent(&APIError{
			URL:     requestURL,
			Message: fmt.Sprintf("failed to build request for %s: %v", requestURL, err),
			Err:     err,
		})
	}
	req.Header = headers.Clone()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Timeouts and connection failures are not retried; they surface
		// as the generic error kind with the transport error attached.
		return nil, backoff.Permanent(&APIError{
			URL:     requestURL,
			Message: fmt.Sprintf("request failed for %s: %v", requestURL, err),
			Err:     err,
		})
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, backoff.Permanent(&APIError{
			URL:     requestURL,
			Message: fmt.Sprintf("failed to read response from %s: %v", requestURL, err),
			Err:     err,
		})
	}

	if remain := resp.Header.Get("X-ESI-Error-Limit-Remain"); remain != "" {
		c.logger.Debug("error limit status",
			"remaining", remain,
			"reset", resp.Header.Get("X-ESI-Error-Limit-Reset"),
		)
	}

	return c.classify(resp.StatusCode, requestURL, respBody)
}

// classify maps a response to a body or a typed error, per status code.
func (c *Client) classify(status int, requestURL string, body []byte) ([]byte, error) {
	switch {
	case status == http.StatusOK:
		if len(body) == 0 {
			return nil, nil
		}
		return body, nil

	case status == http.StatusNoContent, status == http.StatusNotModified:
		return nil, nil

	case status == http.StatusBadRequest:
		return nil, backoff.Permanent(&APIError{
			StatusCode: status,
			URL:        requestURL,
			Body:       string(body),
			Message:    "bad request: " + string(body),
		})

	case status == http.StatusUnauthorized:
		return nil, backoff.Permanent(&AuthenticationError{Message: "authentication failed"})

	case status == http.StatusForbidden:
		return nil, backoff.Permanent(&APIError{
			StatusCode: status,
			URL:        requestURL,
			Body:       string(body),
			Message:    "forbidden: " + string(body),
		})

	case status == http.StatusNotFound:
		return nil, backoff.Permanent(&APIError{
			StatusCode: status,
			URL:        requestURL,
			Body:       string(body),
			Message:    "not found: " + requestURL,
		})

	case status == statusErrorLimited:
		return nil, backoff.Permanent(&RateLimitError{StatusCode: status, Body: string(body)})

	case status == http.StatusTooManyRequests:
		// Retryable.
		return nil, &RateLimitError{StatusCode: status, Body: string(body)}

	case status == http.StatusInternalServerError,
		status == http.StatusBadGateway,
		status == http.StatusServiceUnavailable,
		status == http.StatusGatewayTimeout:
		// Retryable.
		return nil, &ServerError{StatusCode: status, Body: string(body)}

	case status >= 500:
		return nil, backoff.Permanent(&ServerError{StatusCode: status, Body: string(body)})

	default:
		return nil, backoff.Permanent(&APIError{
			StatusCode: status,
			URL:        requestURL,
			Body:       string(body),
		})
	}
}

// Get performs a GET request.
func (c *Client) Get(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodGet, path, opts)
}

// Post performs a POST request.
func (c *Client) Post(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodPost, path, opts)
}

// Put performs a PUT request.
func (c *Client) Put(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodPut, path, opts)
}

// Delete performs a DELETE request.
func (c *Client) Delete(ctx context.Context, path string, opts *RequestOptions) ([]byte, error) {
	return c.Do(ctx, http.MethodDelete, path, opts)
}

// getJSON performs a GET and decodes the body into out. An absent body
// leaves out untouched.
func (c *Client) getJSON(ctx context.Context, path string, opts *RequestOptions, out any) error {
	body, err := c.Get(ctx, path, opts)
	if err != nil {
		return err
	}
	return decode(body, out)
}

// postJSON performs a POST and decodes the body into out when out is non-nil.
func (c *Client) postJSON(ctx context.Context, path string, opts *RequestOptions, out any) error {
	body, err := c.Post(ctx, path, opts)
	if err != nil {
		return err
	}
	if out == nil {
		return nil
	}
	return decode(body, out)
}

func decode(body []byte, out any) error {
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

// ServerStatus returns the EVE Online server status payload.
func (c *Client) ServerStatus(ctx context.Context) (json.RawMessage, error) {
	var status json.RawMessage
	if err := c.getJSON(ctx, "/status/", nil, &status); err != nil {
		return nil, err
	}
	return status, nil
}
