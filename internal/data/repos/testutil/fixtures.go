package testutil

import (
	"context"
	"testing"

	types "github.com/acmecollege/registrar/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

func SeedCourse(tb testing.TB, ctx context.Context, tx *gorm.DB, code string) *types.Course {
	tb.Helper()
	c := (&types.Course{}).SetCourse(code, "course "+code, 2022, types.TermAutumn, 3, 0)
	if err := tx.WithContext(ctx).Create(c).Error; err != nil {
		tb.Fatalf("seed course: %v", err)
	}
	return c
}

func SeedProfessor(tb testing.TB, ctx context.Context, tx *gorm.DB, first, last string) *types.Professor {
	tb.Helper()
	p := (&types.Professor{}).SetProfessor(first, last, "Information and Communications Technology")
	if err := tx.WithContext(ctx).Create(p).Error; err != nil {
		tb.Fatalf("seed professor: %v", err)
	}
	return p
}

func SeedStudent(tb testing.TB, ctx context.Context, tx *gorm.DB, first, last string) *types.Student {
	tb.Helper()
	s := (&types.Student{}).SetFullName(first, last)
	if err := tx.WithContext(ctx).Create(s).Error; err != nil {
		tb.Fatalf("seed student: %v", err)
	}
	return s
}

// SeedRegistration links student and course; professor may be nil.
func SeedRegistration(tb testing.TB, ctx context.Context, tx *gorm.DB, s *types.Student, c *types.Course, p *types.Professor) *types.CourseRegistration {
	tb.Helper()
	r := (&types.CourseRegistration{}).
		SetStudent(s).
		SetCourse(c).
		SetProfessor(p).
		SetLetterGrade("B").
		SetNumericGrade(75)
	if err := tx.WithContext(ctx).Omit(clause.Associations).Create(r).Error; err != nil {
		tb.Fatalf("seed course registration: %v", err)
	}
	return r
}

func CountRows(tb testing.TB, ctx context.Context, tx *gorm.DB, model interface{}) int64 {
	tb.Helper()
	var n int64
	if err := tx.WithContext(ctx).Model(model).Count(&n).Error; err != nil {
		tb.Fatalf("count rows: %v", err)
	}
	return n
}
