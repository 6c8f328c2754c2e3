package footballapi

import (
	"net/url"
	"strings"

	crerr "github.com/cockroachdb/errors"
)

// Request is one outbound GET. It is immutable once built: accessors hand out copies.
type Request struct {
	baseURL string
	path    string
	headers map[string]string
	query   map[string]string
}

// NewRequest validates baseURL and snapshots headers and query. Query entries with an
// empty value are dropped so optional parameters are omitted rather than sent blank.
func NewRequest(baseURL, path string, headers, query map[string]string) (Request, error) {
	base := strings.TrimSpace(baseURL)
	if base == "" {
		return Request{}, crerr.Wrap(ErrInvalidRequest, "base url is empty")
	}
	u, err := url.Parse(base)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return Request{}, crerr.Wrapf(ErrInvalidRequest, "base url %q is not absolute", base)
	}

	return Request{
		baseURL: base,
		path:    path,
		headers: copyNonEmpty(headers),
		query:   copyNonEmpty(query),
	}, nil
}

func (r Request) BaseURL() string { return r.baseURL }
func (r Request) Path() string    { return r.path }

// Endpoint is the base URL with the path appended verbatim.
func (r Request) Endpoint() string { return r.baseURL + r.path }

func (r Request) Headers() map[string]string { return copyNonEmpty(r.headers) }
func (r Request) Query() map[string]string   { return copyNonEmpty(r.query) }

// QueryString percent-encodes the query with keys in sorted order. Spaces
// become %20; a literal '+' is already escaped as %2B.
func (r Request) QueryString() string {
	values := make(url.Values, len(r.query))
	for k, v := range r.query {
		values.Set(k, v)
	}
	return strings.ReplaceAll(values.Encode(), "+", "%20")
}

// URL renders the full request URL. Headers are not part of it, so it is safe to log.
func (r Request) URL() string {
	if qs := r.QueryString(); qs != "" {
		return r.Endpoint() + "?" + qs
	}
	return r.Endpoint()
}

func copyNonEmpty(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		if k == "" || v == "" {
			continue
		}
		out[k] = v
	}
	return out
}
