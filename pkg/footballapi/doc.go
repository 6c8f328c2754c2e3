// Package footballapi is a read-only client for an API-Football shaped REST API.
//
// Every call is a single GET built from a base URL, an endpoint path, the API key
// header and a query map. Bodies are decoded strictly into one of the fixed
// response envelopes; a failed decode never yields a partially filled value.
// Calls are synchronous and context aware; Go, Future and Dispatch add a
// single-shot asynchronous completion on top.
package footballapi
