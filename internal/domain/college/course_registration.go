package college

import (
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/pkg/pointers"
)

// CourseRegistrationPK is the composite primary key of a registration. It is
// comparable, so it can be used directly as a map key.
type CourseRegistrationPK struct {
	StudentID int64 `gorm:"column:student_id;primaryKey;autoIncrement:false;not null" json:"student_id" validate:"required"`
	CourseID  int64 `gorm:"column:course_id;primaryKey;autoIncrement:false;not null" json:"course_id" validate:"required"`
}

func NewCourseRegistrationPK(studentID, courseID int64) CourseRegistrationPK {
	return CourseRegistrationPK{StudentID: studentID, CourseID: courseID}
}

func (pk CourseRegistrationPK) Equal(other CourseRegistrationPK) bool { return pk == other }

// IsComplete reports whether both key components are bound.
func (pk CourseRegistrationPK) IsComplete() bool { return pk.StudentID != 0 && pk.CourseID != 0 }

func (pk CourseRegistrationPK) String() string {
	return fmt.Sprintf("student=%d/course=%d", pk.StudentID, pk.CourseID)
}

// CourseRegistration links a student to a course, optionally through the
// professor who teaches it. Course and student form the key and are mandatory;
// the professor is a plain nullable reference.
type CourseRegistration struct {
	CourseRegistrationPK

	Student *Student `gorm:"foreignKey:StudentID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"student,omitempty" validate:"-"`
	Course  *Course  `gorm:"foreignKey:CourseID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"course,omitempty" validate:"-"`

	ProfessorID *int64     `gorm:"column:professor_id;index" json:"professor_id,omitempty"`
	Professor   *Professor `gorm:"foreignKey:ProfessorID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL" json:"professor,omitempty" validate:"-"`

	LetterGrade  string `gorm:"column:letter_grade;type:varchar(3)" json:"letter_grade" validate:"max=3"`
	NumericGrade int    `gorm:"column:numeric_grade;not null;default:0" json:"numeric_grade" validate:"gte=0,lte=100"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// key the row was last read or written under; zero until persisted
	persistedKey CourseRegistrationPK
}

func (CourseRegistration) TableName() string { return "course_registration" }

func (r *CourseRegistration) Key() CourseRegistrationPK { return r.CourseRegistrationPK }

// PersistedKey is the key the row currently has in the store. It differs from
// Key when a relation was swapped since the last read.
func (r *CourseRegistration) PersistedKey() CourseRegistrationPK { return r.persistedKey }

func (r *CourseRegistration) SetStudent(s *Student) *CourseRegistration {
	r.Student = s
	r.StudentID = 0
	if s != nil {
		r.StudentID = s.ID
	}
	return r
}

func (r *CourseRegistration) SetCourse(c *Course) *CourseRegistration {
	r.Course = c
	r.CourseID = 0
	if c != nil {
		r.CourseID = c.ID
	}
	return r
}

func (r *CourseRegistration) SetProfessor(p *Professor) *CourseRegistration {
	r.Professor = p
	r.ProfessorID = nil
	if p != nil && p.ID != 0 {
		r.ProfessorID = pointers.Int64(p.ID)
	}
	return r
}

func (r *CourseRegistration) SetLetterGrade(grade string) *CourseRegistration {
	r.LetterGrade = grade
	return r
}

func (r *CourseRegistration) SetNumericGrade(grade int) *CourseRegistration {
	r.NumericGrade = grade
	return r
}

// SyncRelationIDs copies ids from attached relations into the key and
// foreign-key columns. Relations that are not attached leave their column as is.
func (r *CourseRegistration) SyncRelationIDs() {
	if r.Student != nil {
		r.StudentID = r.Student.ID
	}
	if r.Course != nil {
		r.CourseID = r.Course.ID
	}
	if r.Professor != nil && r.Professor.ID != 0 {
		r.ProfessorID = pointers.Int64(r.Professor.ID)
	}
}

// Equal compares the key, the professor reference and the grades.
func (r *CourseRegistration) Equal(other *CourseRegistration) bool {
	if r == nil || other == nil {
		return r == other
	}
	if r.CourseRegistrationPK != other.CourseRegistrationPK {
		return false
	}
	if (r.ProfessorID == nil) != (other.ProfessorID == nil) {
		return false
	}
	if pointers.Int64Value(r.ProfessorID) != pointers.Int64Value(other.ProfessorID) {
		return false
	}
	return r.LetterGrade == other.LetterGrade && r.NumericGrade == other.NumericGrade
}

func (r *CourseRegistration) AfterFind(tx *gorm.DB) error {
	r.persistedKey = r.CourseRegistrationPK
	return nil
}

func (r *CourseRegistration) AfterCreate(tx *gorm.DB) error {
	r.persistedKey = r.CourseRegistrationPK
	return nil
}

// MarkPersisted records the current key as the stored one. Repositories call it
// after statements that bypass gorm's model hooks.
func (r *CourseRegistration) MarkPersisted() { r.persistedKey = r.CourseRegistrationPK }
