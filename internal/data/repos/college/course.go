package college

import (
	"gorm.io/gorm"

	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type CourseRepo interface {
	Create(dbc dbctx.Context, courses []*types.Course) ([]*types.Course, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Course, error)
	GetByCode(dbc dbctx.Context, code string) (*types.Course, error)
	Update(dbc dbctx.Context, course *types.Course) error
	CountByIDs(dbc dbctx.Context, ids []int64) (int64, error)
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type courseRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewCourseRepo(db *gorm.DB, baseLog *logger.Logger) CourseRepo {
	return &courseRepo{db: db, log: baseLog.With("repo", "CourseRepo")}
}

func (r *courseRepo) Create(dbc dbctx.Context, courses []*types.Course) ([]*types.Course, error) {
	if len(courses) == 0 {
		return []*types.Course{}, nil
	}
	if err := dbc.Conn(r.db).Create(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

func (r *courseRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Course, error) {
	var results []*types.Course
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

// GetByCode returns nil, nil when no course has the code.
func (r *courseRepo) GetByCode(dbc dbctx.Context, code string) (*types.Course, error) {
	var results []*types.Course
	if code == "" {
		return nil, nil
	}
	if err := dbc.Conn(r.db).
		Where("code = ?", code).
		Limit(1).
		Find(&results).Error; err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return nil, nil
	}
	return results[0], nil
}

// Update writes every descriptive column. A missing row yields
// gorm.ErrRecordNotFound.
func (r *courseRepo) Update(dbc dbctx.Context, course *types.Course) error {
	if course == nil || course.ID == 0 {
		return gorm.ErrPrimaryKeyRequired
	}
	res := dbc.Conn(r.db).
		Model(&types.Course{}).
		Where("id = ?", course.ID).
		Updates(map[string]interface{}{
			"code":         course.Code,
			"title":        course.Title,
			"year":         course.Year,
			"term":         course.Term,
			"credit_units": course.CreditUnits,
			"online":       course.Online,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *courseRepo) CountByIDs(dbc dbctx.Context, ids []int64) (int64, error) {
	var n int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := dbc.Conn(r.db).
		Model(&types.Course{}).
		Where("id IN ?", ids).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *courseRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).
		Where("id IN ?", ids).
		Delete(&types.Course{}).Error
}
