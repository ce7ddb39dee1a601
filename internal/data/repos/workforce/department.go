package workforce

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type DepartmentRepo interface {
	Create(dbc dbctx.Context, departments []*types.Department) ([]*types.Department, error)
	GetByIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) ([]*types.Department, error)
	List(dbc dbctx.Context) ([]*types.Department, error)
	Search(dbc dbctx.Context, term string) ([]*types.Department, error)
	UpdateName(dbc dbctx.Context, departmentID uuid.UUID, name string) error
	DeleteByIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) (int64, error)
	Count(dbc dbctx.Context) (int64, error)
}

type departmentRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewDepartmentRepo(db *gorm.DB, baseLog *logger.Logger) DepartmentRepo {
	repoLog := baseLog.With("repo", "DepartmentRepo")
	return &departmentRepo{db: db, log: repoLog}
}

func (dr *departmentRepo) Create(dbc dbctx.Context, departments []*types.Department) ([]*types.Department, error) {
	if len(departments) == 0 {
		return []*types.Department{}, nil
	}
	if err := dbc.Handle(dr.db).Create(&departments).Error; err != nil {
		return nil, err
	}
	return departments, nil
}

func (dr *departmentRepo) GetByIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) ([]*types.Department, error) {
	var results []*types.Department
	if len(departmentIDs) == 0 {
		return results, nil
	}
	if err := dbc.Handle(dr.db).
		Where("id IN ?", departmentIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *departmentRepo) List(dbc dbctx.Context) ([]*types.Department, error) {
	var results []*types.Department
	if err := dbc.Handle(dr.db).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *departmentRepo) Search(dbc dbctx.Context, term string) ([]*types.Department, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return dr.List(dbc)
	}
	var results []*types.Department
	if err := dbc.Handle(dr.db).
		Where(`LOWER(name) LIKE ? ESCAPE '\'`, containsPattern(term)).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (dr *departmentRepo) UpdateName(dbc dbctx.Context, departmentID uuid.UUID, name string) error {
	res := dbc.Handle(dr.db).
		Model(&types.Department{}).
		Where("id = ?", departmentID).
		Update("name", name)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (dr *departmentRepo) DeleteByIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) (int64, error) {
	if len(departmentIDs) == 0 {
		return 0, nil
	}
	res := dbc.Handle(dr.db).
		Where("id IN ?", departmentIDs).
		Delete(&types.Department{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (dr *departmentRepo) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := dbc.Handle(dr.db).Model(&types.Department{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
