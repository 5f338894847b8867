package college

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type CourseRegistrationRepo interface {
	Create(dbc dbctx.Context, regs []*types.CourseRegistration) ([]*types.CourseRegistration, error)
	Count(dbc dbctx.Context) (int64, error)
	CountByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) (int64, error)
	GetByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) ([]*types.CourseRegistration, error)
	GetAll(dbc dbctx.Context) ([]*types.CourseRegistration, error)
	GetByStudentIDs(dbc dbctx.Context, studentIDs []int64) ([]*types.CourseRegistration, error)
	UpdateFields(dbc dbctx.Context, key types.CourseRegistrationPK, updates map[string]interface{}) error
	ReplaceKey(dbc dbctx.Context, from, to types.CourseRegistrationPK) error
	ClearProfessor(dbc dbctx.Context, key types.CourseRegistrationPK) error
	DeleteByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) error
}

type courseRegistrationRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRegistrationRepo(db *gorm.DB, baseLog *logger.Logger) CourseRegistrationRepo {
	return &courseRegistrationRepo{db: db, log: baseLog.With("repo", "CourseRegistrationRepo")}
}

// Create inserts registration rows only. Referenced course, professor and
// student rows must already exist.
func (r *courseRegistrationRepo) Create(dbc dbctx.Context, regs []*types.CourseRegistration) ([]*types.CourseRegistration, error) {
	if len(regs) == 0 {
		return []*types.CourseRegistration{}, nil
	}
	if err := dbc.Conn(r.db).
		Omit(clause.Associations).
		Create(&regs).Error; err != nil {
		return nil, err
	}
	return regs, nil
}

func (r *courseRegistrationRepo) Count(dbc dbctx.Context) (int64, error) {
	var n int64
	if err := dbc.Conn(r.db).
		Model(&types.CourseRegistration{}).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *courseRegistrationRepo) CountByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) (int64, error) {
	var n int64
	if len(keys) == 0 {
		return 0, nil
	}
	if err := dbc.Conn(r.db).
		Model(&types.CourseRegistration{}).
		Where("(student_id, course_id) IN ?", keyTuples(keys)).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *courseRegistrationRepo) GetByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) ([]*types.CourseRegistration, error) {
	var results []*types.CourseRegistration
	if len(keys) == 0 {
		return results, nil
	}
	if err := withRelations(dbc.Conn(r.db)).
		Where("(student_id, course_id) IN ?", keyTuples(keys)).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRegistrationRepo) GetAll(dbc dbctx.Context) ([]*types.CourseRegistration, error) {
	var results []*types.CourseRegistration
	if err := withRelations(dbc.Conn(r.db)).
		Order("student_id, course_id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *courseRegistrationRepo) GetByStudentIDs(dbc dbctx.Context, studentIDs []int64) ([]*types.CourseRegistration, error) {
	var results []*types.CourseRegistration
	if len(studentIDs) == 0 {
		return results, nil
	}
	if err := withRelations(dbc.Conn(r.db)).
		Where("student_id IN ?", studentIDs).
		Order("student_id, course_id").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// UpdateFields applies column updates to one row. A missing row yields
// gorm.ErrRecordNotFound.
func (r *courseRegistrationRepo) UpdateFields(dbc dbctx.Context, key types.CourseRegistrationPK, updates map[string]interface{}) error {
	if !key.IsComplete() {
		return gorm.ErrPrimaryKeyRequired
	}
	if len(updates) == 0 {
		return nil
	}
	res := dbc.Conn(r.db).
		Model(&types.CourseRegistration{}).
		Where("student_id = ? AND course_id = ?", key.StudentID, key.CourseID).
		Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ReplaceKey moves a registration to a new composite key in place.
func (r *courseRegistrationRepo) ReplaceKey(dbc dbctx.Context, from, to types.CourseRegistrationPK) error {
	if from == to {
		return nil
	}
	if !to.IsComplete() {
		return gorm.ErrPrimaryKeyRequired
	}
	return r.UpdateFields(dbc, from, map[string]interface{}{
		"student_id": to.StudentID,
		"course_id":  to.CourseID,
	})
}

func (r *courseRegistrationRepo) ClearProfessor(dbc dbctx.Context, key types.CourseRegistrationPK) error {
	return r.UpdateFields(dbc, key, map[string]interface{}{"professor_id": nil})
}

// DeleteByKeys removes exactly the listed rows; referenced rows and siblings
// sharing a student or course are untouched.
func (r *courseRegistrationRepo) DeleteByKeys(dbc dbctx.Context, keys []types.CourseRegistrationPK) error {
	if len(keys) == 0 {
		return nil
	}
	return dbc.Conn(r.db).
		Where("(student_id, course_id) IN ?", keyTuples(keys)).
		Delete(&types.CourseRegistration{}).Error
}

func withRelations(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("Student").
		Preload("Course").
		Preload("Professor")
}

func keyTuples(keys []types.CourseRegistrationPK) [][]interface{} {
	out := make([][]interface{}, 0, len(keys))
	for _, k := range keys {
		out = append(out, []interface{}{k.StudentID, k.CourseID})
	}
	return out
}
