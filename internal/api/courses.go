package api

import (
	"context"
	"fmt"

	"github.com/lmstools/canvas-client/internal/request"
	"github.com/lmstools/canvas-client/internal/types"
)

// perPage is the fixed page size for listing endpoints. Only the first page
// is ever fetched.
const perPage = 50

// GetCourses lists the user's courses. enrollmentType and enrollmentState
// filter the listing when non-empty and are omitted otherwise.
func GetCourses(ctx context.Context, hc request.HTTPClient, t request.Target, enrollmentType, enrollmentState string) (any, error) {
	params := []request.Param{{Key: "per_page", Value: perPage}}
	if enrollmentType != "" {
		params = append(params, request.Param{Key: "enrollment_type", Value: enrollmentType})
	}
	if enrollmentState != "" {
		params = append(params, request.Param{Key: "enrollment_state", Value: enrollmentState})
	}
	return request.Do(ctx, hc, t, "get courses", request.Request{
		Path:   "/courses",
		Params: params,
	})
}

// GetCourseAssignments lists the assignments of one course.
func GetCourseAssignments(ctx context.Context, hc request.HTTPClient, t request.Target, courseID string) (any, error) {
	if err := types.ValidateIDPresent(courseID, "courseId"); err != nil {
		return nil, err
	}
	return request.Do(ctx, hc, t, "get course assignments", request.Request{
		Path:   fmt.Sprintf("/courses/%s/assignments", courseID),
		Params: []request.Param{{Key: "per_page", Value: perPage}},
	})
}

// GetCourseModules lists the modules of one course.
func GetCourseModules(ctx context.Context, hc request.HTTPClient, t request.Target, courseID string) (any, error) {
	if err := types.ValidateIDPresent(courseID, "courseId"); err != nil {
		return nil, err
	}
	return request.Do(ctx, hc, t, "get course modules", request.Request{
		Path:   fmt.Sprintf("/courses/%s/modules", courseID),
		Params: []request.Param{{Key: "per_page", Value: perPage}},
	})
}

// GetCourseGrades lists active student courses with total and current
// grading-period scores embedded in the enrollment data.
func GetCourseGrades(ctx context.Context, hc request.HTTPClient, t request.Target) (any, error) {
	return request.Do(ctx, hc, t, "get course grades", request.Request{
		Path: "/courses",
		Params: []request.Param{
			{Key: "include", Value: []string{"total_scores", "current_grading_period_scores"}},
			{Key: "enrollment_type", Value: "student"},
			{Key: "enrollment_state", Value: "active"},
			{Key: "per_page", Value: perPage},
		},
	})
}
