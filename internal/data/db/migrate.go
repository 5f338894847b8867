package db

import (
	"fmt"

	types "github.com/acmecollege/registrar/internal/domain"
	"gorm.io/gorm"
)

// AutoMigrateAll creates the college schema. Foreign keys come from the
// relation tags on CourseRegistration: RESTRICT for course and student,
// SET NULL for professor. Nothing cascades a delete out of a registration.
func AutoMigrateAll(db *gorm.DB) error {
	if err := db.AutoMigrate(
		&types.Course{},
		&types.Professor{},
		&types.Student{},
		&types.CourseRegistration{},
	); err != nil {
		return err
	}
	return EnsureRegistrationIndexes(db)
}

func EnsureRegistrationIndexes(db *gorm.DB) error {
	// sibling lookups by course; student_id is already the leading key column
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_course_registration_course_id ON course_registration(course_id);`).Error; err != nil {
		return fmt.Errorf("create idx_course_registration_course_id: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_professor_last_name ON professor(last_name);`).Error; err != nil {
		return fmt.Errorf("create idx_professor_last_name: %w", err)
	}
	if err := db.Exec(`CREATE INDEX IF NOT EXISTS idx_student_last_name ON student(last_name);`).Error; err != nil {
		return fmt.Errorf("create idx_student_last_name: %w", err)
	}
	return nil
}
