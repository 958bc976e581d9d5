// Package api holds the per-resource specializations of the request
// primitive. Every function issues exactly one HTTP call and hands back the
// decoded payload unchanged; response shapes are the caller's concern.
package api

import (
	"context"

	"github.com/lmstools/canvas-client/internal/request"
)

// GetUserProfile fetches the authenticated user's profile.
func GetUserProfile(ctx context.Context, hc request.HTTPClient, t request.Target) (any, error) {
	return request.Do(ctx, hc, t, "get user profile", request.Request{
		Path: "/users/self",
	})
}

// GetUpcomingEvents fetches the user's upcoming calendar events.
func GetUpcomingEvents(ctx context.Context, hc request.HTTPClient, t request.Target) (any, error) {
	return request.Do(ctx, hc, t, "get upcoming events", request.Request{
		Path: "/users/self/upcoming_events",
	})
}

// GetTodoItems fetches the user's todo list.
func GetTodoItems(ctx context.Context, hc request.HTTPClient, t request.Target) (any, error) {
	return request.Do(ctx, hc, t, "get todo items", request.Request{
		Path: "/users/self/todo",
	})
}
