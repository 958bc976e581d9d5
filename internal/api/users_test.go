package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmstools/canvas-client/internal/request"
)

func TestGetUserProfile(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/self" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 7, "name": "Ada Lovelace"})
	}))
	defer srv.Close()

	got, err := GetUserProfile(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("GetUserProfile error: %v", err)
	}
	m, ok := got.(map[string]any)
	if !ok || m["name"] != "Ada Lovelace" {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestGetUpcomingEvents(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/self/upcoming_events" {
			t.Errorf("path = %q", r.URL.Path)
		}
		if r.URL.RawQuery != "" {
			t.Errorf("unexpected query %q", r.URL.RawQuery)
		}
		_ = json.NewEncoder(w).Encode([]any{map[string]any{"title": "Midterm"}})
	}))
	defer srv.Close()

	got, err := GetUpcomingEvents(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL})
	if err != nil {
		t.Fatalf("GetUpcomingEvents error: %v", err)
	}
	if list, ok := got.([]any); !ok || len(list) != 1 {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestGetTodoItems(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/users/self/todo" {
			t.Errorf("path = %q", r.URL.Path)
		}
		_ = json.NewEncoder(w).Encode([]any{})
	}))
	defer srv.Close()

	if _, err := GetTodoItems(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}); err != nil {
		t.Fatalf("GetTodoItems error: %v", err)
	}
}
