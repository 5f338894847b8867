package services

import (
	"errors"
	"strings"
	"testing"

	types "github.com/acmecollege/registrar/internal/domain"
	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
)

func TestValidateEntityNamesColumns(t *testing.T) {
	reg := &types.CourseRegistration{LetterGrade: "A+", NumericGrade: 120}
	err := validateEntity("test", reg)
	if !errors.Is(err, apperr.ErrConstraintViolation) {
		t.Fatalf("want constraint violation, got %v", err)
	}
	msg := err.Error()
	for _, want := range []string{"student_id failed required", "course_id failed required", "numeric_grade failed lte=100"} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestValidateEntityAcceptsBoundRegistration(t *testing.T) {
	reg := &types.CourseRegistration{LetterGrade: "B", NumericGrade: 70}
	reg.StudentID, reg.CourseID = 1, 2
	if err := validateEntity("test", reg); err != nil {
		t.Fatalf("validateEntity: %v", err)
	}
}

func TestRequireKeyParts(t *testing.T) {
	cases := []struct {
		name    string
		reg     *types.CourseRegistration
		wantErr bool
	}{
		{"ids bound", &types.CourseRegistration{CourseRegistrationPK: types.NewCourseRegistrationPK(1, 2)}, false},
		{"new relations", (&types.CourseRegistration{}).SetStudent(&types.Student{}).SetCourse(&types.Course{}), false},
		{"no course", (&types.CourseRegistration{}).SetStudent(&types.Student{ID: 3}), true},
		{"nothing", &types.CourseRegistration{}, true},
	}
	for _, tc := range cases {
		err := requireKeyParts("test", tc.reg)
		if (err != nil) != tc.wantErr {
			t.Fatalf("%s: wantErr=%v got %v", tc.name, tc.wantErr, err)
		}
		if err != nil && !apperr.IsCode(err, apperr.CodeConstraintViolation) {
			t.Fatalf("%s: wrong code %s", tc.name, apperr.CodeOf(err))
		}
	}
}
