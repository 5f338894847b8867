package app

import (
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/data/repos"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type Repos struct {
	Course             repos.CourseRepo
	Professor          repos.ProfessorRepo
	Student            repos.StudentRepo
	CourseRegistration repos.CourseRegistrationRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Course:             repos.NewCourseRepo(db, log),
		Professor:          repos.NewProfessorRepo(db, log),
		Student:            repos.NewStudentRepo(db, log),
		CourseRegistration: repos.NewCourseRegistrationRepo(db, log),
	}
}
