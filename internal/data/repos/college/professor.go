package college

import (
	"gorm.io/gorm"

	types "github.com/acmecollege/registrar/internal/domain"
	"github.com/acmecollege/registrar/internal/pkg/dbctx"
	"github.com/acmecollege/registrar/internal/pkg/logger"
)

type ProfessorRepo interface {
	Create(dbc dbctx.Context, professors []*types.Professor) ([]*types.Professor, error)
	GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Professor, error)
	Update(dbc dbctx.Context, professor *types.Professor) error
	CountByIDs(dbc dbctx.Context, ids []int64) (int64, error)
	DeleteByIDs(dbc dbctx.Context, ids []int64) error
}

type professorRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProfessorRepo(db *gorm.DB, baseLog *logger.Logger) ProfessorRepo {
	return &professorRepo{db: db, log: baseLog.With("repo", "ProfessorRepo")}
}

func (r *professorRepo) Create(dbc dbctx.Context, professors []*types.Professor) ([]*types.Professor, error) {
	if len(professors) == 0 {
		return []*types.Professor{}, nil
	}
	if err := dbc.Conn(r.db).Create(&professors).Error; err != nil {
		return nil, err
	}
	return professors, nil
}

func (r *professorRepo) GetByIDs(dbc dbctx.Context, ids []int64) ([]*types.Professor, error) {
	var results []*types.Professor
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

func (r *professorRepo) Update(dbc dbctx.Context, professor *types.Professor) error {
	if professor == nil || professor.ID == 0 {
		return gorm.ErrPrimaryKeyRequired
	}
	res := dbc.Conn(r.db).
		Model(&types.Professor{}).
		Where("id = ?", professor.ID).
		Updates(map[string]interface{}{
			"first_name": professor.FirstName,
			"last_name":  professor.LastName,
			"department": professor.Department,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *professorRepo) CountByIDs(dbc dbctx.Context, ids []int64) (int64, error) {
	var n int64
	if len(ids) == 0 {
		return 0, nil
	}
	if err := dbc.Conn(r.db).
		Model(&types.Professor{}).
		Where("id IN ?", ids).
		Count(&n).Error; err != nil {
		return 0, err
	}
	return n, nil
}

func (r *professorRepo) DeleteByIDs(dbc dbctx.Context, ids []int64) error {
	if len(ids) == 0 {
		return nil
	}
	return dbc.Conn(r.db).
		Where("id IN ?", ids).
		Delete(&types.Professor{}).Error
}
