// Package request implements the single HTTP primitive every public
// operation is built on: URL normalization, query assembly, optional proxy
// wrapping, JSON encoding/decoding and uniform error translation.
package request

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// versionPrefix is the API version segment inserted into every path that
// does not already carry it.
const versionPrefix = "/api/v1"

// HTTPClient is the minimal surface needed from *http.Client, kept as an
// interface for test injection.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Target is the immutable connection snapshot a request is issued against.
// BaseURL is expected to be already normalized (no trailing slash).
type Target struct {
	BaseURL  string
	UseProxy bool
	ProxyURL string
}

// Param is one query parameter. Params are encoded in slice order; a key
// appears exactly once.
type Param struct {
	Key   string
	Value any
}

// Request describes one call against the remote API. Method defaults to GET,
// Params and Body may be left zero.
type Request struct {
	Path   string
	Method string
	Params []Param
	Body   any
}

// NormalizeBaseURL strips exactly one trailing slash, if present.
func NormalizeBaseURL(base string) string {
	return strings.TrimSuffix(base, "/")
}

// normalizePath ensures a leading slash and the version prefix. The prefix
// check is segment-aware so paths like /api/v10/x are not mistaken for
// already-versioned ones.
func normalizePath(p string) string {
	if !strings.HasPrefix(p, "/") {
		p = "/" + p
	}
	if p != versionPrefix && !strings.HasPrefix(p, versionPrefix+"/") {
		p = versionPrefix + p
	}
	return p
}

// stringify renders a parameter value the way the remote API expects a
// single-key value: strings pass through, string slices join on commas,
// anything else falls back to fmt.Sprint.
func stringify(v any) string {
	switch t := v.(type) {
	case string:
		return t
	case []string:
		return strings.Join(t, ",")
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(v)
	}
}

// encodeParams builds the query string in insertion order. url.Values.Encode
// sorts keys, so encoding is done by hand.
func encodeParams(params []Param) string {
	var b strings.Builder
	for i, p := range params {
		if i > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(p.Key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(stringify(p.Value)))
	}
	return b.String()
}

// BuildURL assembles the final request URL: base + normalized path + query,
// wrapped through the proxy endpoint when proxy mode is on.
func BuildURL(t Target, r Request) string {
	u := t.BaseURL + normalizePath(r.Path)
	if len(r.Params) > 0 {
		u += "?" + encodeParams(r.Params)
	}
	if t.UseProxy && t.ProxyURL != "" {
		// The full target URL rides as a path suffix on the proxy, so it
		// must be escaped as a single path segment.
		u = t.ProxyURL + url.PathEscape(u)
	}
	return u
}

// Do issues the request and returns the decoded JSON payload. Any status
// >= 400 is translated into a *StatusError wrapped with the operation name;
// transport failures propagate unmodified. op labels metrics and error
// messages, e.g. "get courses".
func Do(ctx context.Context, hc HTTPClient, t Target, op string, r Request) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	method := r.Method
	if method == "" {
		method = http.MethodGet
	}

	var body io.Reader
	if r.Body != nil {
		raw, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("%s: encode body: %w", op, err)
		}
		body = bytes.NewReader(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, BuildURL(t, r), body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	requestsTotal.WithLabelValues(op).Inc()
	resp, err := hc.Do(httpReq)
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		requestFailuresTotal.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("%s: read body: %w", op, err)
	}

	if resp.StatusCode >= http.StatusBadRequest {
		requestFailuresTotal.WithLabelValues(op).Inc()
		return nil, fmt.Errorf("%s: %w", op, &StatusError{StatusCode: resp.StatusCode, Body: string(raw)})
	}

	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, nil
	}
	var payload any
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%s: decode response: %w", op, err)
	}
	return payload, nil
}
