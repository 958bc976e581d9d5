// Package render turns the schema-agnostic payloads returned by the client
// into human-readable markdown. Every function tolerates missing or
// unexpectedly-typed fields by skipping them; none of them panic on
// malformed input.
package render

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// asMap returns v as an object, or nil.
func asMap(v any) map[string]any {
	m, _ := v.(map[string]any)
	return m
}

// asList returns v as an array, or nil.
func asList(v any) []any {
	l, _ := v.([]any)
	return l
}

// str returns the first present string field among keys.
func str(m map[string]any, keys ...string) string {
	for _, k := range keys {
		if s, ok := m[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// num formats a numeric field, trimming a trailing ".0" from whole values.
func num(m map[string]any, key string) string {
	f, ok := m[key].(float64)
	if !ok {
		return ""
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// date reformats an RFC 3339 timestamp field as a short human date; the raw
// value is returned when it does not parse.
func date(m map[string]any, key string) string {
	s, ok := m[key].(string)
	if !ok || s == "" {
		return ""
	}
	ts, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return s
	}
	return ts.Format("Jan 2, 2006 15:04")
}

// Profile renders a user profile object.
func Profile(v any) string {
	m := asMap(v)
	if m == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString("## Profile\n\n")
	if name := str(m, "name", "short_name"); name != "" {
		fmt.Fprintf(&b, "- **Name**: %s\n", name)
	}
	if email := str(m, "primary_email", "login_id"); email != "" {
		fmt.Fprintf(&b, "- **Email**: %s\n", email)
	}
	if id := num(m, "id"); id != "" {
		fmt.Fprintf(&b, "- **ID**: %s\n", id)
	}
	if tz := str(m, "time_zone"); tz != "" {
		fmt.Fprintf(&b, "- **Time zone**: %s\n", tz)
	}
	return b.String()
}

// Courses renders a course listing.
func Courses(v any) string {
	var b strings.Builder
	b.WriteString("## Courses\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		name := str(m, "name", "course_code")
		if name == "" {
			continue
		}
		if code := str(m, "course_code"); code != "" && code != name {
			fmt.Fprintf(&b, "- **%s** (%s)\n", name, code)
		} else {
			fmt.Fprintf(&b, "- **%s**\n", name)
		}
	}
	return b.String()
}

// Assignments renders an assignment listing with due dates and points.
func Assignments(v any) string {
	var b strings.Builder
	b.WriteString("## Assignments\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		name := str(m, "name")
		if name == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s**", name)
		if due := date(m, "due_at"); due != "" {
			fmt.Fprintf(&b, " — due %s", due)
		}
		if pts := num(m, "points_possible"); pts != "" {
			fmt.Fprintf(&b, " (%s pts)", pts)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Modules renders a course module listing.
func Modules(v any) string {
	var b strings.Builder
	b.WriteString("## Modules\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		name := str(m, "name")
		if name == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s**", name)
		if n := num(m, "items_count"); n != "" {
			fmt.Fprintf(&b, " (%s items)", n)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Events renders an upcoming-events listing.
func Events(v any) string {
	var b strings.Builder
	b.WriteString("## Upcoming events\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		title := str(m, "title")
		if title == "" {
			continue
		}
		fmt.Fprintf(&b, "- **%s**", title)
		if start := date(m, "start_at"); start != "" {
			fmt.Fprintf(&b, " — %s", start)
		}
		if ctx := str(m, "context_name"); ctx != "" {
			fmt.Fprintf(&b, " [%s]", ctx)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Todos renders a todo listing. Todo items wrap an assignment object plus a
// context name.
func Todos(v any) string {
	var b strings.Builder
	b.WriteString("## Todo\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		assignment := asMap(m["assignment"])
		title := ""
		if assignment != nil {
			title = str(assignment, "name")
		}
		if title == "" {
			title = str(m, "context_name")
		}
		if title == "" {
			continue
		}
		fmt.Fprintf(&b, "- [ ] **%s**", title)
		if assignment != nil {
			if due := date(assignment, "due_at"); due != "" {
				fmt.Fprintf(&b, " — due %s", due)
			}
		}
		if ctx := str(m, "context_name"); ctx != "" && ctx != title {
			fmt.Fprintf(&b, " [%s]", ctx)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Grades renders the grade summary embedded in a course listing fetched with
// total and current grading-period scores included.
func Grades(v any) string {
	var b strings.Builder
	b.WriteString("## Grades\n\n")
	for _, item := range asList(v) {
		m := asMap(item)
		if m == nil {
			continue
		}
		name := str(m, "name", "course_code")
		if name == "" {
			continue
		}
		score, letter := courseScore(m)
		if score == "" && letter == "" {
			fmt.Fprintf(&b, "- **%s**: no grade\n", name)
			continue
		}
		fmt.Fprintf(&b, "- **%s**: %s", name, score)
		if letter != "" {
			fmt.Fprintf(&b, " (%s)", letter)
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// courseScore digs the current score and letter grade out of the first
// student enrollment on a course object.
func courseScore(course map[string]any) (score, letter string) {
	for _, e := range asList(course["enrollments"]) {
		enr := asMap(e)
		if enr == nil {
			continue
		}
		if s := num(enr, "computed_current_score"); s != "" {
			score = s
		} else if s := num(enr, "current_period_computed_current_score"); s != "" {
			score = s
		}
		letter = str(enr, "computed_current_grade", "current_period_computed_current_grade")
		if score != "" || letter != "" {
			return score, letter
		}
	}
	return "", ""
}
