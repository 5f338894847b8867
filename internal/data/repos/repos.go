package repos

import (
	"github.com/acmecollege/registrar/internal/data/repos/college"
	"github.com/acmecollege/registrar/internal/pkg/logger"
	"gorm.io/gorm"
)

type CourseRepo = college.CourseRepo
type ProfessorRepo = college.ProfessorRepo
type StudentRepo = college.StudentRepo
type CourseRegistrationRepo = college.CourseRegistrationRepo

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return college.NewCourseRepo(db, baseLog)
}
func NewProfessorRepo(db *gorm.DB, baseLog *logger.Logger) ProfessorRepo {
	return college.NewProfessorRepo(db, baseLog)
}
func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return college.NewStudentRepo(db, baseLog)
}
func NewCourseRegistrationRepo(db *gorm.DB, baseLog *logger.Logger) CourseRegistrationRepo {
	return college.NewCourseRegistrationRepo(db, baseLog)
}
