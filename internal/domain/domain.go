package domain

import "github.com/acmecollege/registrar/internal/domain/college"

type Term = college.Term

const (
	TermAutumn = college.TermAutumn
	TermWinter = college.TermWinter
	TermSpring = college.TermSpring
	TermSummer = college.TermSummer
)

type Course = college.Course
type Professor = college.Professor
type Student = college.Student
type CourseRegistration = college.CourseRegistration
type CourseRegistrationPK = college.CourseRegistrationPK

func NewCourseRegistrationPK(studentID, courseID int64) CourseRegistrationPK {
	return college.NewCourseRegistrationPK(studentID, courseID)
}

func ParseTerm(raw string) (Term, bool) { return college.ParseTerm(raw) }
