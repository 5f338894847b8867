package services

import (
	"time"

	"go.opentelemetry.io/otel/attribute"
	"gorm.io/gorm"

	"github.com/acmecollege/registrar/internal/data/dberr"
	"github.com/acmecollege/registrar/internal/data/repos"
	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	apperr "github.com/acmecollege/registrar/internal/pkg/errors"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

// RegistrationService is the unit-of-work boundary for course registrations.
// Every mutating call runs in its own transaction, or in a savepoint when the
// caller already holds one in dbc.Tx.
type RegistrationService interface {
	Count(dbc dbctx.Context) (int64, error)
	CountByKey(dbc dbctx.Context, key types.CourseRegistrationPK) (int64, error)
	Insert(dbc dbctx.Context, reg *types.CourseRegistration) error
	FindByKey(dbc dbctx.Context, key types.CourseRegistrationPK) (*types.CourseRegistration, error)
	FindAll(dbc dbctx.Context) ([]*types.CourseRegistration, error)
	Update(dbc dbctx.Context, reg *types.CourseRegistration) error
	ClearProfessor(dbc dbctx.Context, reg *types.CourseRegistration) error
	Delete(dbc dbctx.Context, reg *types.CourseRegistration) error
}

type registrationService struct {
	db         *gorm.DB
	log        *logger.Logger
	regs       repos.CourseRegistrationRepo
	courses    repos.CourseRepo
	professors repos.ProfessorRepo
	students   repos.StudentRepo
}

func NewRegistrationService(
	db *gorm.DB,
	baseLog *logger.Logger,
	regs repos.CourseRegistrationRepo,
	courses repos.CourseRepo,
	professors repos.ProfessorRepo,
	students repos.StudentRepo,
) RegistrationService {
	return &registrationService{
		db:         db,
		log:        baseLog.With("service", "RegistrationService"),
		regs:       regs,
		courses:    courses,
		professors: professors,
		students:   students,
	}
}

func keyAttrs(key types.CourseRegistrationPK) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int64("registration.student_id", key.StudentID),
		attribute.Int64("registration.course_id", key.CourseID),
	}
}

func (s *registrationService) Count(dbc dbctx.Context) (n int64, err error) {
	const op = "registration.count"
	dbc, done := instrument(dbc, op)
	defer func() { done(err) }()

	n, err = s.regs.Count(dbc)
	if err != nil {
		s.log.Warn("Count registrations failed", "error", err)
		return 0, dberr.MapError(op, err)
	}
	return n, nil
}

func (s *registrationService) CountByKey(dbc dbctx.Context, key types.CourseRegistrationPK) (n int64, err error) {
	const op = "registration.count_by_key"
	dbc, done := instrument(dbc, op, keyAttrs(key)...)
	defer func() { done(err) }()

	n, err = s.regs.CountByKeys(dbc, []types.CourseRegistrationPK{key})
	if err != nil {
		s.log.Warn("Count registrations by key failed", "key", key.String(), "error", err)
		return 0, dberr.MapError(op, err)
	}
	return n, nil
}

// Insert persists reg together with any attached course, professor or student
// that has not been saved yet. A missing student or course fails with a
// constraint violation before anything is written.
func (s *registrationService) Insert(dbc dbctx.Context, reg *types.CourseRegistration) (err error) {
	const op = "registration.insert"
	if reg == nil {
		return apperr.InvalidArgument(op, "registration is nil")
	}
	dbc, done := instrument(dbc, op, keyAttrs(reg.Key())...)
	defer func() { done(err) }()

	if err = requireKeyParts(op, reg); err != nil {
		s.log.Warn("Rejected registration", "key", reg.Key().String(), "error", err)
		return err
	}

	pending := snapshotRelations(reg)
	if err = validatePending(op, reg, pending); err != nil {
		s.log.Warn("Rejected registration", "key", reg.Key().String(), "error", err)
		return err
	}

	err = inTransaction(s.db, dbc, func(inner dbctx.Context) error {
		if err := s.createNewRelations(inner, reg, pending); err != nil {
			return err
		}
		_, err := s.regs.Create(inner, []*types.CourseRegistration{reg})
		return err
	})
	if err != nil {
		pending.restore(reg)
		s.log.Warn("Insert registration failed", "key", reg.Key().String(), "error", err)
		return dberr.MapError(op, err)
	}
	reg.MarkPersisted()
	return nil
}

func (s *registrationService) FindByKey(dbc dbctx.Context, key types.CourseRegistrationPK) (reg *types.CourseRegistration, err error) {
	const op = "registration.find_by_key"
	dbc, done := instrument(dbc, op, keyAttrs(key)...)
	defer func() { done(err) }()

	rows, err := s.regs.GetByKeys(dbc, []types.CourseRegistrationPK{key})
	if err != nil {
		s.log.Warn("Find registration failed", "key", key.String(), "error", err)
		return nil, dberr.MapError(op, err)
	}
	if len(rows) == 0 {
		return nil, apperr.NotFound(op, "no registration for "+key.String())
	}
	return rows[0], nil
}

func (s *registrationService) FindAll(dbc dbctx.Context) (rows []*types.CourseRegistration, err error) {
	const op = "registration.find_all"
	dbc, done := instrument(dbc, op)
	defer func() { done(err) }()

	rows, err = s.regs.GetAll(dbc)
	if err != nil {
		s.log.Warn("Find all registrations failed", "error", err)
		return nil, dberr.MapError(op, err)
	}
	return rows, nil
}

// Update writes the grades and professor reference of reg. If the student or
// course was swapped since reg was loaded, the row is moved to the new key.
// Attached relations without an id are created first.
func (s *registrationService) Update(dbc dbctx.Context, reg *types.CourseRegistration) (err error) {
	const op = "registration.update"
	if reg == nil {
		return apperr.InvalidArgument(op, "registration is nil")
	}
	dbc, done := instrument(dbc, op, keyAttrs(reg.Key())...)
	defer func() { done(err) }()

	if err = requireKeyParts(op, reg); err != nil {
		return err
	}
	from := reg.PersistedKey()
	if !from.IsComplete() {
		from = reg.Key()
	}

	pending := snapshotRelations(reg)
	if err = validatePending(op, reg, pending); err != nil {
		return err
	}

	err = inTransaction(s.db, dbc, func(inner dbctx.Context) error {
		if err := s.createNewRelations(inner, reg, pending); err != nil {
			return err
		}
		if err := s.regs.ReplaceKey(inner, from, reg.Key()); err != nil {
			return err
		}
		return s.regs.UpdateFields(inner, reg.Key(), map[string]interface{}{
			"letter_grade":  reg.LetterGrade,
			"numeric_grade": reg.NumericGrade,
			"professor_id":  reg.ProfessorID,
		})
	})
	if err != nil {
		pending.restore(reg)
		s.log.Warn("Update registration failed", "from", from.String(), "to", reg.Key().String(), "error", err)
		return dberr.MapError(op, err)
	}
	reg.MarkPersisted()
	return nil
}

// ClearProfessor unbinds the professor from reg. The professor row is kept.
func (s *registrationService) ClearProfessor(dbc dbctx.Context, reg *types.CourseRegistration) (err error) {
	const op = "registration.clear_professor"
	if reg == nil {
		return apperr.InvalidArgument(op, "registration is nil")
	}
	key := reg.PersistedKey()
	if !key.IsComplete() {
		key = reg.Key()
	}
	dbc, done := instrument(dbc, op, keyAttrs(key)...)
	defer func() { done(err) }()

	err = inTransaction(s.db, dbc, func(inner dbctx.Context) error {
		return s.regs.ClearProfessor(inner, key)
	})
	if err != nil {
		s.log.Warn("Clear professor failed", "key", key.String(), "error", err)
		return dberr.MapError(op, err)
	}
	reg.SetProfessor(nil)
	return nil
}

// Delete removes exactly the row stored under reg's key. Referenced rows and
// sibling registrations are left alone.
func (s *registrationService) Delete(dbc dbctx.Context, reg *types.CourseRegistration) (err error) {
	const op = "registration.delete"
	if reg == nil {
		return apperr.InvalidArgument(op, "registration is nil")
	}
	key := reg.PersistedKey()
	if !key.IsComplete() {
		key = reg.Key()
	}
	dbc, done := instrument(dbc, op, keyAttrs(key)...)
	defer func() { done(err) }()

	err = inTransaction(s.db, dbc, func(inner dbctx.Context) error {
		n, err := s.regs.CountByKeys(inner, []types.CourseRegistrationPK{key})
		if err != nil {
			return err
		}
		if n == 0 {
			return apperr.NotFound(op, "no registration for "+key.String())
		}
		return s.regs.DeleteByKeys(inner, []types.CourseRegistrationPK{key})
	})
	if err != nil {
		s.log.Warn("Delete registration failed", "key", key.String(), "error", err)
		return dberr.MapError(op, err)
	}
	return nil
}

// pendingRelations remembers which attached relations were unsaved and the
// key columns before a write, so a rolled-back write can undo the ids gorm
// assigned in memory.
type pendingRelations struct {
	course      bool
	professor   bool
	student     bool
	key         types.CourseRegistrationPK
	professorID *int64
}

func snapshotRelations(reg *types.CourseRegistration) pendingRelations {
	return pendingRelations{
		course:      reg.Course != nil && reg.Course.ID == 0,
		professor:   reg.Professor != nil && reg.Professor.ID == 0,
		student:     reg.Student != nil && reg.Student.ID == 0,
		key:         reg.Key(),
		professorID: reg.ProfessorID,
	}
}

func (p pendingRelations) restore(reg *types.CourseRegistration) {
	if p.course && reg.Course != nil {
		reg.Course.ID = 0
		reg.Course.CreatedAt, reg.Course.UpdatedAt = time.Time{}, time.Time{}
	}
	if p.professor && reg.Professor != nil {
		reg.Professor.ID = 0
		reg.Professor.CreatedAt, reg.Professor.UpdatedAt = time.Time{}, time.Time{}
	}
	if p.student && reg.Student != nil {
		reg.Student.ID = 0
		reg.Student.CreatedAt, reg.Student.UpdatedAt = time.Time{}, time.Time{}
	}
	reg.CourseRegistrationPK = p.key
	reg.ProfessorID = p.professorID
}

// validatePending checks reg and every unsaved relation before anything is
// written. Key parts backed by an unsaved relation count as bound.
func validatePending(op string, reg *types.CourseRegistration, p pendingRelations) error {
	if p.course {
		if err := validateEntity(op, reg.Course); err != nil {
			return err
		}
	}
	if p.professor {
		if err := validateEntity(op, reg.Professor); err != nil {
			return err
		}
	}
	if p.student {
		if err := validateEntity(op, reg.Student); err != nil {
			return err
		}
	}
	candidate := *reg
	candidate.SyncRelationIDs()
	if p.student {
		candidate.StudentID = unsavedID
	}
	if p.course {
		candidate.CourseID = unsavedID
	}
	return validateEntity(op, &candidate)
}

// unsavedID stands in for an id the store has not assigned yet.
const unsavedID int64 = -1

func (s *registrationService) createNewRelations(dbc dbctx.Context, reg *types.CourseRegistration, p pendingRelations) error {
	if p.course {
		if _, err := s.courses.Create(dbc, []*types.Course{reg.Course}); err != nil {
			return err
		}
	}
	if p.professor {
		if _, err := s.professors.Create(dbc, []*types.Professor{reg.Professor}); err != nil {
			return err
		}
	}
	if p.student {
		if _, err := s.students.Create(dbc, []*types.Student{reg.Student}); err != nil {
			return err
		}
	}
	reg.SyncRelationIDs()
	return nil
}
