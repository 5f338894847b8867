package services

import (
	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/data/dberr"
	"github.com/acmecollege/registrar/internal/data/repos"
	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

// CollegeService manages the course, professor and student rows that
// registrations point at.
type CollegeService interface {
	CreateCourse(dbc dbctx.Context, course *types.Course) error
	CreateProfessor(dbc dbctx.Context, professor *types.Professor) error
	CreateStudent(dbc dbctx.Context, student *types.Student) error
	UpdateCourse(dbc dbctx.Context, course *types.Course) error
	UpdateProfessor(dbc dbctx.Context, professor *types.Professor) error
	UpdateStudent(dbc dbctx.Context, student *types.Student) error
	GetCourseByCode(dbc dbctx.Context, code string) (*types.Course, error)
	CountCourses(dbc dbctx.Context, id int64) (int64, error)
	CountProfessors(dbc dbctx.Context, id int64) (int64, error)
	CountStudents(dbc dbctx.Context, id int64) (int64, error)
	RegistrationsForStudent(dbc dbctx.Context, studentID int64) ([]*types.CourseRegistration, error)
}

type collegeService struct {
	db         *gorm.DB
	log        *logger.Logger
	courses    repos.CourseRepo
	professors repos.ProfessorRepo
	students   repos.StudentRepo
	regs       repos.CourseRegistrationRepo
}

func NewCollegeService(
	db *gorm.DB,
	baseLog *logger.Logger,
	courses repos.CourseRepo,
	professors repos.ProfessorRepo,
	students repos.StudentRepo,
	regs repos.CourseRegistrationRepo,
) CollegeService {
	return &collegeService{
		db:         db,
		log:        baseLog.With("service", "CollegeService"),
		courses:    courses,
		professors: professors,
		students:   students,
		regs:       regs,
	}
}

func (s *collegeService) CreateCourse(dbc dbctx.Context, course *types.Course) (err error) {
	const op = "college.create_course"
	if course == nil {
		return apperr.InvalidArgument(op, "course is nil")
	}
	dbc, done := instrument(dbc, op, attribute.String("course.code", course.Code))
	defer func() { done(err) }()

	if err = validateEntity(op, course); err != nil {
		return err
	}
	if _, err = s.courses.Create(dbc, []*types.Course{course}); err != nil {
		s.log.Warn("Create course failed", "code", course.Code, "error", err)
		return dberr.MapError(op, err)
	}
	return nil
}

func (s *collegeService) CreateProfessor(dbc dbctx.Context, professor *types.Professor) (err error) {
	const op = "college.create_professor"
	if professor == nil {
		return apperr.InvalidArgument(op, "professor is nil")
	}
	dbc, done := instrument(dbc, op)
	defer func() { done(err) }()

	if err = validateEntity(op, professor); err != nil {
		return err
	}
	if _, err = s.professors.Create(dbc, []*types.Professor{professor}); err != nil {
		s.log.Warn("Create professor failed", "error", err)
		return dberr.MapError(op, err)
	}
	return nil
}

func (s *collegeService) CreateStudent(dbc dbctx.Context, student *types.Student) (err error) {
	const op = "college.create_student"
	if student == nil {
		return apperr.InvalidArgument(op, "student is nil")
	}
	dbc, done := instrument(dbc, op)
	defer func() { done(err) }()

	if err = validateEntity(op, student); err != nil {
		return err
	}
	if _, err = s.students.Create(dbc, []*types.Student{student}); err != nil {
		s.log.Warn("Create student failed", "error", err)
		return dberr.MapError(op, err)
	}
	return nil
}

func (s *collegeService) UpdateCourse(dbc dbctx.Context, course *types.Course) (err error) {
	const op = "college.update_course"
	if course == nil {
		return apperr.InvalidArgument(op, "course is nil")
	}
	dbc, done := instrument(dbc, op, attribute.Int64("course.id", course.ID))
	defer func() { done(err) }()

	if err = validateEntity(op, course); err != nil {
		return err
	}
	return dberr.MapError(op, s.courses.Update(dbc, course))
}

func (s *collegeService) UpdateProfessor(dbc dbctx.Context, professor *types.Professor) (err error) {
	const op = "college.update_professor"
	if professor == nil {
		return apperr.InvalidArgument(op, "professor is nil")
	}
	dbc, done := instrument(dbc, op, attribute.Int64("professor.id", professor.ID))
	defer func() { done(err) }()

	if err = validateEntity(op, professor); err != nil {
		return err
	}
	return dberr.MapError(op, s.professors.Update(dbc, professor))
}

func (s *collegeService) UpdateStudent(dbc dbctx.Context, student *types.Student) (err error) {
	const op = "college.update_student"
	if student == nil {
		return apperr.InvalidArgument(op, "student is nil")
	}
	dbc, done := instrument(dbc, op, attribute.Int64("student.id", student.ID))
	defer func() { done(err) }()

	if err = validateEntity(op, student); err != nil {
		return err
	}
	return dberr.MapError(op, s.students.Update(dbc, student))
}

func (s *collegeService) GetCourseByCode(dbc dbctx.Context, code string) (course *types.Course, err error) {
	const op = "college.get_course_by_code"
	dbc, done := instrument(dbc, op, attribute.String("course.code", code))
	defer func() { done(err) }()

	course, err = s.courses.GetByCode(dbc, code)
	if err != nil {
		return nil, dberr.MapError(op, err)
	}
	if course == nil {
		return nil, apperr.NotFound(op, "no course with code "+code)
	}
	return course, nil
}

func (s *collegeService) CountCourses(dbc dbctx.Context, id int64) (n int64, err error) {
	const op = "college.count_courses"
	dbc, done := instrument(dbc, op, attribute.Int64("course.id", id))
	defer func() { done(err) }()

	n, err = s.courses.CountByIDs(dbc, []int64{id})
	return n, dberr.MapError(op, err)
}

func (s *collegeService) CountProfessors(dbc dbctx.Context, id int64) (n int64, err error) {
	const op = "college.count_professors"
	dbc, done := instrument(dbc, op, attribute.Int64("professor.id", id))
	defer func() { done(err) }()

	n, err = s.professors.CountByIDs(dbc, []int64{id})
	return n, dberr.MapError(op, err)
}

func (s *collegeService) CountStudents(dbc dbctx.Context, id int64) (n int64, err error) {
	const op = "college.count_students"
	dbc, done := instrument(dbc, op, attribute.Int64("student.id", id))
	defer func() { done(err) }()

	n, err = s.students.CountByIDs(dbc, []int64{id})
	return n, dberr.MapError(op, err)
}

func (s *collegeService) RegistrationsForStudent(dbc dbctx.Context, studentID int64) (rows []*types.CourseRegistration, err error) {
	const op = "college.registrations_for_student"
	dbc, done := instrument(dbc, op, attribute.Int64("student.id", studentID))
	defer func() { done(err) }()

	rows, err = s.regs.GetByStudentIDs(dbc, []int64{studentID})
	if err != nil {
		return nil, dberr.MapError(op, err)
	}
	return rows, nil
}
