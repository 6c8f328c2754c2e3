package httpclient

import "context"

// Response is a minimal HTTP response contract.
type Response interface {
	Body() []byte
	StatusCode() int
}

// Client abstracts HTTP GET calls so callers can inject stubs or different transports.
// query is encoded onto url; headers are merged into the outbound request.
type Client interface {
	Get(ctx context.Context, url string, query, headers map[string]string) (Response, error)
}
