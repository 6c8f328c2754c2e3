package footballapi

import (
	"context"
	"strings"
	"unicode/utf8"

	crerr "github.com/cockroachdb/errors"

	"github.com/samvad-hq/football-stats/pkg/httpclient"
)

const (
	DefaultBaseURL      = "https://api-football-v1.p.rapidapi.com/v3"
	DefaultAPIKeyHeader = "X-Api-Key"
	// PlaceholderAPIKey stands in for a missing key. Requests made with it are
	// sent as-is and will be rejected upstream.
	PlaceholderAPIKey = "default_value"

	hostHeader     = "X-RapidAPI-Host"
	maxBodySnippet = 512
)

// ClientConfig configures a Client. Only APIKey is expected to be set in practice.
type ClientConfig struct {
	HTTPClient   httpclient.Client
	BaseURL      string
	APIKey       string
	APIKeyHeader string
	// Host, when set, is sent as X-RapidAPI-Host.
	Host   string
	Logger Logger
}

// Client issues the fixed set of API operations. It holds no mutable state and
// is safe for concurrent use; concurrent calls are independent round-trips.
type Client struct {
	http      httpclient.Client
	baseURL   string
	apiKey    string
	keyHeader string
	host      string
	log       Logger
}

// NewClient builds a client. A missing key falls back to PlaceholderAPIKey.
func NewClient(cfg ClientConfig) *Client {
	log := ensureLogger(cfg.Logger)

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = httpclient.NewRestyClient(httpclient.Options{})
	}

	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	keyHeader := strings.TrimSpace(cfg.APIKeyHeader)
	if keyHeader == "" {
		keyHeader = DefaultAPIKeyHeader
	}

	apiKey := strings.TrimSpace(cfg.APIKey)
	if apiKey == "" {
		apiKey = PlaceholderAPIKey
	}
	if apiKey == PlaceholderAPIKey {
		log.WarnObj("football api key missing; using placeholder", "football_api", map[string]any{
			"base_url": baseURL,
		})
	}

	return &Client{
		http:      httpClient,
		baseURL:   baseURL,
		apiKey:    apiKey,
		keyHeader: keyHeader,
		host:      strings.TrimSpace(cfg.Host),
		log:       log,
	}
}

// CheckAPIKey reports ErrPlaceholderAPIKey when the client runs on the fallback key.
func (c *Client) CheckAPIKey() error {
	if c.apiKey == PlaceholderAPIKey {
		return ErrPlaceholderAPIKey
	}
	return nil
}

// Request builds the outbound request for op with the auth header attached.
func (c *Client) Request(op Operation, p Params) (Request, error) {
	ep, ok := op.Endpoint()
	if !ok {
		return Request{}, crerr.Wrapf(ErrInvalidRequest, "unknown operation %d", int(op))
	}
	query, err := ep.Query(p)
	if err != nil {
		return Request{}, err
	}
	return NewRequest(c.baseURL, ep.Path, c.headers(), query)
}

func (c *Client) headers() map[string]string {
	h := map[string]string{
		c.keyHeader: c.apiKey,
		"Accept":    "application/json",
	}
	if c.host != "" {
		h[hostHeader] = c.host
	}
	return h
}

// Do runs op and returns the decoded envelope as one of the Payload types.
func (c *Client) Do(ctx context.Context, op Operation, p Params) (any, error) {
	ep, ok := op.Endpoint()
	if !ok {
		return nil, crerr.Wrapf(ErrInvalidRequest, "unknown operation %d", int(op))
	}
	req, err := c.Request(op, p)
	if err != nil {
		return nil, err
	}
	raw, err := c.fetch(ctx, req)
	if err != nil {
		return nil, err
	}
	out, err := decodeKind(ep.kind, raw)
	if err != nil {
		c.logFailure(req, err)
		return nil, err
	}
	return out, nil
}

// Call runs op and decodes into T, which must be the payload op produces.
func Call[T Payload](ctx context.Context, c *Client, op Operation, p Params) (T, error) {
	var zero T
	ep, ok := op.Endpoint()
	if !ok {
		return zero, crerr.Wrapf(ErrInvalidRequest, "unknown operation %d", int(op))
	}
	if ep.kind != kindOf[T]() {
		return zero, crerr.Wrapf(ErrInvalidRequest, "operation %s does not produce %T", op, zero)
	}
	req, err := c.Request(op, p)
	if err != nil {
		return zero, err
	}
	return Fetch[T](ctx, c, req)
}

// Fetch is the generic request primitive: one GET for req, decoded into T.
func Fetch[T Payload](ctx context.Context, c *Client, req Request) (T, error) {
	raw, err := c.fetch(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	out, err := Decode[T](raw)
	if err != nil {
		c.logFailure(req, err)
	}
	return out, err
}

func (c *Client) fetch(ctx context.Context, req Request) ([]byte, error) {
	c.log.DebugObj("football api request", "football_request", map[string]any{
		"path":  req.Path(),
		"query": req.QueryString(),
	})

	resp, err := c.http.Get(ctx, req.Endpoint(), req.query, c.requestHeaders(req))
	if err != nil {
		terr := &TransportError{Endpoint: req.Path(), Err: crerr.WithStack(err)}
		c.logFailure(req, terr)
		return nil, terr
	}

	code := resp.StatusCode()
	if code < 200 || code > 299 {
		serr := &HTTPStatusError{Code: code, Endpoint: req.Path(), Body: bodySnippet(resp.Body())}
		c.logFailure(req, serr)
		return nil, serr
	}
	return resp.Body(), nil
}

// requestHeaders lays req's own headers over the client's, so requests built
// with NewRequest still carry the API key.
func (c *Client) requestHeaders(req Request) map[string]string {
	h := c.headers()
	for k, v := range req.headers {
		h[k] = v
	}
	return h
}

func (c *Client) logFailure(req Request, err error) {
	c.log.WarnObj("football api request failed", "football_error", map[string]any{
		"path":  req.Path(),
		"query": req.QueryString(),
		"error": err.Error(),
	})
}

func bodySnippet(body []byte) string {
	s := strings.TrimSpace(string(body))
	if len(s) <= maxBodySnippet {
		return s
	}
	cut := maxBodySnippet
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut] + "..."
}
