package workforce

import (
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type EmployeeRepo interface {
	Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error)
	GetByIDs(dbc dbctx.Context, employeeIDs []uuid.UUID) ([]*types.Employee, error)
	List(dbc dbctx.Context) ([]*types.Employee, error)
	Search(dbc dbctx.Context, term string) ([]*types.Employee, error)
	ListByDepartmentIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) ([]*types.Employee, error)
	Update(dbc dbctx.Context, employee *types.Employee) error
	DetachDepartment(dbc dbctx.Context, departmentID uuid.UUID) (int64, error)
	DeleteByIDs(dbc dbctx.Context, employeeIDs []uuid.UUID) (int64, error)
	Count(dbc dbctx.Context) (int64, error)
}

type employeeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewEmployeeRepo(db *gorm.DB, baseLog *logger.Logger) EmployeeRepo {
	repoLog := baseLog.With("repo", "EmployeeRepo")
	return &employeeRepo{db: db, log: repoLog}
}

func (er *employeeRepo) Create(dbc dbctx.Context, employees []*types.Employee) ([]*types.Employee, error) {
	if len(employees) == 0 {
		return []*types.Employee{}, nil
	}
	if err := dbc.Handle(er.db).Create(&employees).Error; err != nil {
		return nil, err
	}
	return employees, nil
}

func (er *employeeRepo) GetByIDs(dbc dbctx.Context, employeeIDs []uuid.UUID) ([]*types.Employee, error) {
	var results []*types.Employee
	if len(employeeIDs) == 0 {
		return results, nil
	}
	if err := dbc.Handle(er.db).
		Where("id IN ?", employeeIDs).
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *employeeRepo) List(dbc dbctx.Context) ([]*types.Employee, error) {
	var results []*types.Employee
	if err := dbc.Handle(er.db).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Search matches term as a case-insensitive substring of first name, last name or
// email. A blank term lists everything.
func (er *employeeRepo) Search(dbc dbctx.Context, term string) ([]*types.Employee, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return er.List(dbc)
	}
	pattern := containsPattern(term)
	var results []*types.Employee
	if err := dbc.Handle(er.db).
		Where(`LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\' OR LOWER(email) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (er *employeeRepo) ListByDepartmentIDs(dbc dbctx.Context, departmentIDs []uuid.UUID) ([]*types.Employee, error) {
	var results []*types.Employee
	if len(departmentIDs) == 0 {
		return results, nil
	}
	if err := dbc.Handle(er.db).
		Where("department_id IN ?", departmentIDs).
		Order("created_at ASC, id ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

// Update overwrites every editable column, including a nil department.
func (er *employeeRepo) Update(dbc dbctx.Context, employee *types.Employee) error {
	res := dbc.Handle(er.db).
		Model(&types.Employee{}).
		Where("id = ?", employee.ID).
		Updates(map[string]any{
			"first_name":    employee.FirstName,
			"last_name":     employee.LastName,
			"email":         employee.Email,
			"age":           employee.Age,
			"salary":        employee.Salary,
			"department_id": employee.DepartmentID,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (er *employeeRepo) DetachDepartment(dbc dbctx.Context, departmentID uuid.UUID) (int64, error) {
	res := dbc.Handle(er.db).
		Model(&types.Employee{}).
		Where("department_id = ?", departmentID).
		Update("department_id", nil)
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (er *employeeRepo) DeleteByIDs(dbc dbctx.Context, employeeIDs []uuid.UUID) (int64, error) {
	if len(employeeIDs) == 0 {
		return 0, nil
	}
	res := dbc.Handle(er.db).
		Where("id IN ?", employeeIDs).
		Delete(&types.Employee{})
	if res.Error != nil {
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

func (er *employeeRepo) Count(dbc dbctx.Context) (int64, error) {
	var count int64
	if err := dbc.Handle(er.db).Model(&types.Employee{}).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
