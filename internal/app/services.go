package app

import (
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/pkg/logger"
	"github.com/acmecollege/registrar/internal/services"
)

type Services struct {
	Registration services.RegistrationService
	College      services.CollegeService
}

func wireServices(db *gorm.DB, log *logger.Logger, r Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Registration: services.NewRegistrationService(db, log, r.CourseRegistration, r.Course, r.Professor, r.Student),
		College:      services.NewCollegeService(db, log, r.Course, r.Professor, r.Student, r.CourseRegistration),
	}
}
