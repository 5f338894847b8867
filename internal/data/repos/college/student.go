package college

import (
	"gorm.io/gorm"

	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type StudentRepo interface {
	Create(dbc dbctx.Context, students []*types.Student) ([]*types.Student, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Student, error)
	Update(dbc dbctx.Context, student *types.Student) error
	CountByIDs(dbc dbctx.Context, ids []int64) (int64, error)
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type studentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewStudentRepo(db *gorm.DB, baseLog *logger.Logger) StudentRepo {
	return &studentRepo{db: db, log: baseLog.With("repo", "StudentRepo")}
}

func (r *studentRepo) Create(dbc dbctx.Context, students []*types.Student) ([]*types.Student, error) {
	if len(students) == 0 {
		return []*types.Student{}, nil
	}
	if err := dbc.Conn(r.db).Create(&students).Error; err != nil {
		return nil, err
	}
	return students, nil
}

func (r *studentRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Student, error) {
	var results []*types.Student
	if len(ids) == 0 {
		return results, nil
	}
	if err := dbc.Conn(r.db).
		Where("id IN ?", ids).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *studentRepo) Update(dbc dbctx.Context, student *types.Student) error {
	if student == nil || student.ID == 0 {
		return gorm.ErrPrimaryKeyRequired
	}
	res := dbc.Conn(r.db).
		Model(&types.Student{}).
		Where("id = ?", student.ID).
		Updates(map[string]interface{}{
			"first_name": student.FirstName,
			"last_name":  student.LastName,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *studentRepo) CountByIDs(dbc dbctx.Context, ids []int64) (int64, error) {
	var n int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := dbc.Conn(r.db).
		Model(&types.Student{}).
		Where("id IN ?", ids).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *studentRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).
		Where("id IN ?", ids).
		Delete(&types.Student{}).Error
}
