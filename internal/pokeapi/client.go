package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"
	"resty.dev/v3"
)

//go:generate mockgen -destination=mock/mock_fetcher.go -package=pokeapimock github.com/five82/pokeview/internal/pokeapi Fetcher

// Fetcher defines the two read operations the viewer performs against the
// catalog. It is implemented by *Client and can be substituted in tests.
type Fetcher interface {
	FetchPage(ctx context.Context, limit, offset int) (*PokemonList, error)
	FetchDetail(ctx context.Context, idOrName string) (*Pokemon, error)
}

// Ensure Client implements Fetcher at compile time.
var _ Fetcher = (*Client)(nil)

const (
	// DefaultBaseURL points at the public reference deployment.
	DefaultBaseURL   = "https://pokeapi.co/api/v2"
	DefaultPageLimit = 20
	defaultUserAgent = "pokeview/0.1"
)

// Options tune the HTTP client. The zero value is usable.
type Options struct {
	// Timeout bounds a single request. Zero means no timeout.
	Timeout   time.Duration
	UserAgent string
	Logger    *zap.Logger
}

// Client talks to the PokeAPI over HTTP. Each call performs exactly one
// request; nothing is cached or retried.
type Client struct {
	baseURL string
	http    *resty.Client
	logger  *zap.Logger
}

// NewClient builds a Client for baseURL. An empty baseURL uses DefaultBaseURL.
func NewClient(baseURL string, opts Options) (*Client, error) {
	base, err := parseBaseURL(baseURL)
	if err != nil {
		return nil, err
	}
	userAgent := opts.UserAgent
	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	httpClient := resty.New().
		SetRetryCount(0).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", userAgent)
	if opts.Timeout > 0 {
		httpClient.SetTimeout(opts.Timeout)
	}

	return &Client{
		baseURL: base,
		http:    httpClient,
		logger:  logger.Named("pokeapi"),
	}, nil
}

// BaseURL returns the normalized base URL requests are issued against.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Close releases idle connections held by the underlying HTTP client.
func (c *Client) Close() error {
	if c == nil || c.http == nil {
		return nil
	}
	return c.http.Close()
}

// FetchPage retrieves one page of the catalog index. Non-positive limits
// fall back to DefaultPageLimit and negative offsets to zero.
func (c *Client) FetchPage(ctx context.Context, limit, offset int) (*PokemonList, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	if limit <= 0 {
		limit = DefaultPageLimit
	}
	if offset < 0 {
		offset = 0
	}
	values := url.Values{}
	values.Set("limit", strconv.Itoa(limit))
	values.Set("offset", strconv.Itoa(offset))
	target := "pokemon list"
	var payload PokemonList
	if err := c.get(ctx, target, "/pokemon?"+values.Encode(), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchDetail retrieves a single pokemon by numeric id or lowercase name.
func (c *Client) FetchDetail(ctx context.Context, idOrName string) (*Pokemon, error) {
	if c == nil {
		return nil, fmt.Errorf("client is nil")
	}
	key := strings.TrimSpace(idOrName)
	if key == "" {
		return nil, fmt.Errorf("pokemon id or name required")
	}
	var payload Pokemon
	if err := c.get(ctx, key, "/pokemon/"+url.PathEscape(key), &payload); err != nil {
		return nil, err
	}
	return &payload, nil
}

// FetchDetailByID is FetchDetail for a numeric identifier.
func (c *Client) FetchDetailByID(ctx context.Context, id int) (*Pokemon, error) {
	if id <= 0 {
		return nil, fmt.Errorf("invalid pokemon id %d", id)
	}
	return c.FetchDetail(ctx, strconv.Itoa(id))
}

// get issues one GET and lets resty decode a 2xx body into dest. The
// response Content-Type is ignored; every catalog document is JSON.
func (c *Client) get(ctx context.Context, target, path string, dest any) error {
	reqURL := c.baseURL + path
	resp, err := c.http.R().
		SetContext(ctx).
		SetResult(dest).
		SetForceResponseContentType("application/json").
		Get(reqURL)
	if resp == nil || resp.RawResponse == nil {
		if err == nil {
			err = fmt.Errorf("no response")
		}
		c.logger.Debug("request failed", zap.String("url", reqURL), zap.Error(err))
		return &FetchError{Kind: KindTransport, Target: target, Err: err}
	}
	if !resp.IsSuccess() {
		c.logger.Debug("unexpected status", zap.String("url", reqURL), zap.Int("status", resp.StatusCode()))
		return &FetchError{Kind: KindHTTP, Target: target, Status: resp.StatusCode()}
	}
	if err != nil || resp.Result() == nil {
		if err == nil {
			err = fmt.Errorf("empty result")
		}
		return &FetchError{Kind: KindDecode, Target: target, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}

func parseBaseURL(raw string) (string, error) {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		trimmed = DefaultBaseURL
	}
	u, err := url.Parse(trimmed)
	if err != nil {
		return "", fmt.Errorf("parse base url %q: %w", raw, err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("parse base url %q: scheme and host required", raw)
	}
	u.RawQuery = ""
	u.Fragment = ""
	return strings.TrimRight(u.String(), "/"), nil
}
