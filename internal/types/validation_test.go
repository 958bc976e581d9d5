package types

import "testing"

func TestValidateIDPresent(t *testing.T) {
	t.Parallel()
	if err := ValidateIDPresent("42", "courseId"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := ValidateIDPresent("", "courseId"); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := ValidateIDPresent("   ", "courseId"); err == nil {
		t.Fatal("expected error for whitespace id")
	}
}
