// Package client is a thin SDK for a Canvas-style learning-management REST
// API. A Client is an immutable snapshot of connection settings; construct a
// new one whenever settings change and swap the reference.
package client

import (
	"context"
	"net/http"
	"time"

	"github.com/lmstools/canvas-client/internal/api"
	"github.com/lmstools/canvas-client/internal/request"
)

type Client struct {
	target request.Target
	http   *http.Client
	token  string
}

// New constructs a Client from the given configuration. Exactly one trailing
// slash is stripped from the base URL. Additional knobs are supplied via
// functional options.
func New(cfg Config, opts ...Option) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	c := &Client{
		target: request.Target{
			BaseURL:  request.NormalizeBaseURL(cfg.BaseURL),
			UseProxy: cfg.UseProxy,
			ProxyURL: cfg.ProxyURL,
		},
		token: cfg.Token,
		http:  &http.Client{Timeout: 30 * time.Second},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, err
		}
	}

	// Wrap the transport so every request carries the bearer token.
	c.wrapTransportWithToken()

	return c, nil
}

// wrapTransportWithToken wraps the HTTP client's transport to add the
// Authorization header to all outbound requests.
func (c *Client) wrapTransportWithToken() {
	base := c.http.Transport
	if base == nil {
		base = http.DefaultTransport
	}
	c.http.Transport = &bearerTransport{base: base, token: c.token}
}

// bearerTransport wraps an http.RoundTripper to inject the static bearer
// token on every request.
type bearerTransport struct {
	base  http.RoundTripper
	token string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	// Clone so the caller's request is never mutated.
	cloned := req.Clone(req.Context())
	cloned.Header.Set("Authorization", "Bearer "+t.token)
	return t.base.RoundTrip(cloned)
}

// --------------------------------------------------------------------
// Fetch operations - delegated to internal/api
// --------------------------------------------------------------------

// GetUserProfile returns the authenticated user's profile object.
func (c *Client) GetUserProfile(ctx context.Context) (any, error) {
	return api.GetUserProfile(ctx, c.http, c.target)
}

// GetCourses lists the user's courses, first page of 50. Empty filter
// arguments are omitted from the query.
func (c *Client) GetCourses(ctx context.Context, enrollmentType, enrollmentState string) (any, error) {
	return api.GetCourses(ctx, c.http, c.target, enrollmentType, enrollmentState)
}

// GetCourseAssignments lists the assignments of a course, first page of 50.
func (c *Client) GetCourseAssignments(ctx context.Context, courseID string) (any, error) {
	return api.GetCourseAssignments(ctx, c.http, c.target, courseID)
}

// GetCourseModules lists the modules of a course, first page of 50.
func (c *Client) GetCourseModules(ctx context.Context, courseID string) (any, error) {
	return api.GetCourseModules(ctx, c.http, c.target, courseID)
}

// GetUpcomingEvents lists the user's upcoming calendar events.
func (c *Client) GetUpcomingEvents(ctx context.Context) (any, error) {
	return api.GetUpcomingEvents(ctx, c.http, c.target)
}

// GetTodoItems lists the user's todo items.
func (c *Client) GetTodoItems(ctx context.Context) (any, error) {
	return api.GetTodoItems(ctx, c.http, c.target)
}

// GetCourseGrades lists active student courses with embedded enrollment and
// grade data (total and current grading-period scores).
func (c *Client) GetCourseGrades(ctx context.Context) (any, error) {
	return api.GetCourseGrades(ctx, c.http, c.target)
}

// TestConnection probes connectivity by fetching the user profile. It
// reports false on any failure, transport-level or HTTP, and never returns
// an error itself.
func (c *Client) TestConnection(ctx context.Context) bool {
	_, err := c.GetUserProfile(ctx)
	return err == nil
}
