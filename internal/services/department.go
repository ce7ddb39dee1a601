package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

type DepartmentService interface {
	List(dbc dbctx.Context) ([]*types.Department, error)
	Get(dbc dbctx.Context, departmentID uuid.UUID) (*types.Department, error)
	Search(dbc dbctx.Context, term string) ([]*types.Department, error)
	Create(dbc dbctx.Context, name string) (*types.Department, error)
	Rename(dbc dbctx.Context, departmentID uuid.UUID, name string) (*types.Department, error)
	Delete(dbc dbctx.Context, departmentID uuid.UUID) error
	Employees(dbc dbctx.Context, departmentID uuid.UUID) ([]*types.Employee, error)
}

type departmentService struct {
	db             *gorm.DB
	log            *logger.Logger
	departmentRepo repos.DepartmentRepo
	employeeRepo   repos.EmployeeRepo
	notifier       DirectoryNotifier
}

func NewDepartmentService(
	db *gorm.DB,
	log *logger.Logger,
	departmentRepo repos.DepartmentRepo,
	employeeRepo repos.EmployeeRepo,
	notifier DirectoryNotifier,
) DepartmentService {
	return &departmentService{
		db:             db,
		log:            log.With("service", "DepartmentService"),
		departmentRepo: departmentRepo,
		employeeRepo:   employeeRepo,
		notifier:       notifier,
	}
}

func normalizeDepartmentName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len([]rune(name)) < types.MinDepartmentNameLen {
		return "", invalidArgument("invalid_name",
			fmt.Sprintf("department name must be at least %d characters", types.MinDepartmentNameLen))
	}
	return name, nil
}

func (s *departmentService) List(dbc dbctx.Context) ([]*types.Department, error) {
	rows, err := s.departmentRepo.List(dbc)
	if err != nil {
		return nil, internal("department_list_failed", err)
	}
	return rows, nil
}

func (s *departmentService) Get(dbc dbctx.Context, departmentID uuid.UUID) (*types.Department, error) {
	rows, err := s.departmentRepo.GetByIDs(dbc, []uuid.UUID{departmentID})
	if err != nil {
		return nil, internal("department_lookup_failed", err)
	}
	if len(rows) == 0 {
		return nil, notFound("department_not_found", "department "+departmentID.String())
	}
	return rows[0], nil
}

func (s *departmentService) Search(dbc dbctx.Context, term string) ([]*types.Department, error) {
	rows, err := s.departmentRepo.Search(dbc, term)
	if err != nil {
		return nil, internal("department_search_failed", err)
	}
	return rows, nil
}

func (s *departmentService) Create(dbc dbctx.Context, name string) (*types.Department, error) {
	name, err := normalizeDepartmentName(name)
	if err != nil {
		return nil, err
	}
	dept := &types.Department{Name: name}
	if _, err := s.departmentRepo.Create(dbc, []*types.Department{dept}); err != nil {
		return nil, internal("department_create_failed", err)
	}
	s.log.Info("Department created", "department_id", dept.ID.String())
	s.notifier.DepartmentChanged("created", dept.ID)
	return dept, nil
}

func (s *departmentService) Rename(dbc dbctx.Context, departmentID uuid.UUID, name string) (*types.Department, error) {
	name, err := normalizeDepartmentName(name)
	if err != nil {
		return nil, err
	}
	if err := s.departmentRepo.UpdateName(dbc, departmentID, name); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFound("department_not_found", "department "+departmentID.String())
		}
		return nil, internal("department_update_failed", err)
	}
	s.log.Info("Department renamed", "department_id", departmentID.String())
	s.notifier.DepartmentChanged("updated", departmentID)
	return s.Get(dbc, departmentID)
}

// Delete detaches the department's employees in the same transaction.
func (s *departmentService) Delete(dbc dbctx.Context, departmentID uuid.UUID) error {
	var detached int64
	err := s.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		n, err := s.employeeRepo.DetachDepartment(inner, departmentID)
		if err != nil {
			return internal("employee_detach_failed", err)
		}
		detached = n
		removed, err := s.departmentRepo.DeleteByIDs(inner, []uuid.UUID{departmentID})
		if err != nil {
			return internal("department_delete_failed", err)
		}
		if removed == 0 {
			return notFound("department_not_found", "department "+departmentID.String())
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.log.Info("Department deleted", "department_id", departmentID.String(), "detached", detached)
	s.notifier.DepartmentChanged("deleted", departmentID)
	return nil
}

func (s *departmentService) Employees(dbc dbctx.Context, departmentID uuid.UUID) ([]*types.Employee, error) {
	dept, err := s.Get(dbc, departmentID)
	if err != nil {
		return nil, err
	}
	rows, err := s.employeeRepo.ListByDepartmentIDs(dbc, []uuid.UUID{departmentID})
	if err != nil {
		return nil, internal("employee_list_failed", err)
	}
	for _, e := range rows {
		e.DepartmentName = dept.Name
	}
	return rows, nil
}
