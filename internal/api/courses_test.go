package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/lmstools/canvas-client/internal/request"
)

func courseServer(t *testing.T, wantPath, wantRawQuery string, payload any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != wantPath {
			t.Errorf("path = %q, want %q", r.URL.Path, wantPath)
		}
		if r.URL.RawQuery != wantRawQuery {
			t.Errorf("query = %q, want %q", r.URL.RawQuery, wantRawQuery)
		}
		_ = json.NewEncoder(w).Encode(payload)
	}))
}

func TestGetCourses_NoFilters(t *testing.T) {
	t.Parallel()
	srv := courseServer(t, "/api/v1/courses", "per_page=50", []any{map[string]any{"id": 1}})
	defer srv.Close()

	got, err := GetCourses(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "", "")
	if err != nil {
		t.Fatalf("GetCourses error: %v", err)
	}
	list, ok := got.([]any)
	if !ok || len(list) != 1 {
		t.Fatalf("unexpected payload: %#v", got)
	}
}

func TestGetCourses_WithFilters(t *testing.T) {
	t.Parallel()
	srv := courseServer(t, "/api/v1/courses",
		"per_page=50&enrollment_type=student&enrollment_state=active", []any{})
	defer srv.Close()

	if _, err := GetCourses(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "student", "active"); err != nil {
		t.Fatalf("GetCourses error: %v", err)
	}
}

func TestGetCourseAssignments(t *testing.T) {
	t.Parallel()
	srv := courseServer(t, "/api/v1/courses/42/assignments", "per_page=50", []any{})
	defer srv.Close()

	if _, err := GetCourseAssignments(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "42"); err != nil {
		t.Fatalf("GetCourseAssignments error: %v", err)
	}
	if _, err := GetCourseAssignments(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, ""); err == nil {
		t.Fatal("expected validation error for empty courseId")
	}
}

func TestGetCourseModules(t *testing.T) {
	t.Parallel()
	srv := courseServer(t, "/api/v1/courses/42/modules", "per_page=50", []any{})
	defer srv.Close()

	if _, err := GetCourseModules(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "42"); err != nil {
		t.Fatalf("GetCourseModules error: %v", err)
	}
	if _, err := GetCourseModules(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "  "); err == nil {
		t.Fatal("expected validation error for blank courseId")
	}
}

func TestGetCourseGrades(t *testing.T) {
	t.Parallel()
	srv := courseServer(t, "/api/v1/courses",
		"include=total_scores%2Ccurrent_grading_period_scores&enrollment_type=student&enrollment_state=active&per_page=50",
		[]any{map[string]any{"id": 1, "enrollments": []any{}}})
	defer srv.Close()

	if _, err := GetCourseGrades(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}); err != nil {
		t.Fatalf("GetCourseGrades error: %v", err)
	}
}

func TestCourses_StatusPropagates(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte("Invalid access token"))
	}))
	defer srv.Close()

	if _, err := GetCourses(context.Background(), srv.Client(), request.Target{BaseURL: srv.URL}, "", ""); err == nil {
		t.Fatal("expected error for 401")
	}
}
