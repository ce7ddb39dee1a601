package services

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

// fieldValidator applies the same rules gin binding uses, for callers that
// reach the service without going through a handler.
var fieldValidator = validator.New()

// EmployeeInput is the editable part of an employee record.
type EmployeeInput struct {
	FirstName    string     `json:"first_name" binding:"required"`
	LastName     string     `json:"last_name" binding:"required"`
	Email        string     `json:"email" binding:"required,email"`
	Age          int        `json:"age" binding:"required"`
	Salary       float64    `json:"salary" binding:"gte=0"`
	DepartmentID *uuid.UUID `json:"department_id"`
}

func (in *EmployeeInput) normalize() {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	if in.DepartmentID != nil && *in.DepartmentID == uuid.Nil {
		in.DepartmentID = nil
	}
}

func (in EmployeeInput) validate() error {
	if in.FirstName == "" || in.LastName == "" {
		return invalidArgument("invalid_name", "first and last name are required")
	}
	if err := fieldValidator.Var(in.Email, "required,email"); err != nil {
		return invalidArgument("invalid_email", fmt.Sprintf("invalid email %q", in.Email))
	}
	if in.Age < types.MinEmployeeAge || in.Age > types.MaxEmployeeAge {
		return invalidArgument("invalid_age",
			fmt.Sprintf("age must be between %d and %d", types.MinEmployeeAge, types.MaxEmployeeAge))
	}
	if in.Salary < 0 || math.IsNaN(in.Salary) || math.IsInf(in.Salary, 0) {
		return invalidArgument("invalid_salary", "salary must be a non-negative number")
	}
	return nil
}

type EmployeeService interface {
	List(dbc dbctx.Context) ([]*types.Employee, error)
	Get(dbc dbctx.Context, employeeID uuid.UUID) (*types.Employee, error)
	Search(dbc dbctx.Context, term string) ([]*types.Employee, error)
	Create(dbc dbctx.Context, in EmployeeInput) (*types.Employee, error)
	Update(dbc dbctx.Context, employeeID uuid.UUID, in EmployeeInput) (*types.Employee, error)
	Delete(dbc dbctx.Context, employeeID uuid.UUID) error
}

type employeeService struct {
	db             *gorm.DB
	log            *logger.Logger
	employeeRepo   repos.EmployeeRepo
	departmentRepo repos.DepartmentRepo
	notifier       DirectoryNotifier
}

func NewEmployeeService(
	db *gorm.DB,
	log *logger.Logger,
	employeeRepo repos.EmployeeRepo,
	departmentRepo repos.DepartmentRepo,
	notifier DirectoryNotifier,
) EmployeeService {
	return &employeeService{
		db:             db,
		log:            log.With("service", "EmployeeService"),
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
		notifier:       notifier,
	}
}

func (s *employeeService) List(dbc dbctx.Context) ([]*types.Employee, error) {
	rows, err := s.employeeRepo.List(dbc)
	if err != nil {
		return nil, internal("employee_list_failed", err)
	}
	return s.withDepartmentNames(dbc, rows)
}

func (s *employeeService) Get(dbc dbctx.Context, employeeID uuid.UUID) (*types.Employee, error) {
	rows, err := s.employeeRepo.GetByIDs(dbc, []uuid.UUID{employeeID})
	if err != nil {
		return nil, internal("employee_lookup_failed", err)
	}
	if len(rows) == 0 {
		return nil, notFound("employee_not_found", "employee "+employeeID.String())
	}
	rows, err = s.withDepartmentNames(dbc, rows)
	if err != nil {
		return nil, err
	}
	return rows[0], nil
}

func (s *employeeService) Search(dbc dbctx.Context, term string) ([]*types.Employee, error) {
	rows, err := s.employeeRepo.Search(dbc, term)
	if err != nil {
		return nil, internal("employee_search_failed", err)
	}
	return s.withDepartmentNames(dbc, rows)
}

func (s *employeeService) Create(dbc dbctx.Context, in EmployeeInput) (*types.Employee, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	emp := &types.Employee{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		Age:          in.Age,
		Salary:       in.Salary,
		DepartmentID: in.DepartmentID,
	}
	err := s.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		if err := s.requireDepartment(inner, in.DepartmentID); err != nil {
			return err
		}
		if _, err := s.employeeRepo.Create(inner, []*types.Employee{emp}); err != nil {
			return internal("employee_create_failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Employee created", "employee_id", emp.ID.String())
	s.notifier.EmployeeChanged("created", emp.ID)
	return s.Get(dbc, emp.ID)
}

func (s *employeeService) Update(dbc dbctx.Context, employeeID uuid.UUID, in EmployeeInput) (*types.Employee, error) {
	in.normalize()
	if err := in.validate(); err != nil {
		return nil, err
	}

	err := s.db.WithContext(ctxutil.Default(dbc.Ctx)).Transaction(func(tx *gorm.DB) error {
		inner := dbc.WithTx(tx)
		existing, err := s.employeeRepo.GetByIDs(inner, []uuid.UUID{employeeID})
		if err != nil {
			return internal("employee_lookup_failed", err)
		}
		if len(existing) == 0 {
			return notFound("employee_not_found", "employee "+employeeID.String())
		}
		if err := s.requireDepartment(inner, in.DepartmentID); err != nil {
			return err
		}
		emp := existing[0]
		emp.FirstName = in.FirstName
		emp.LastName = in.LastName
		emp.Email = in.Email
		emp.Age = in.Age
		emp.Salary = in.Salary
		emp.DepartmentID = in.DepartmentID
		if err := s.employeeRepo.Update(inner, emp); err != nil {
			return internal("employee_update_failed", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("Employee updated", "employee_id", employeeID.String())
	s.notifier.EmployeeChanged("updated", employeeID)
	return s.Get(dbc, employeeID)
}

func (s *employeeService) Delete(dbc dbctx.Context, employeeID uuid.UUID) error {
	n, err := s.employeeRepo.DeleteByIDs(dbc, []uuid.UUID{employeeID})
	if err != nil {
		return internal("employee_delete_failed", err)
	}
	if n == 0 {
		return notFound("employee_not_found", "employee "+employeeID.String())
	}
	s.log.Info("Employee deleted", "employee_id", employeeID.String())
	s.notifier.EmployeeChanged("deleted", employeeID)
	return nil
}

func (s *employeeService) requireDepartment(dbc dbctx.Context, departmentID *uuid.UUID) error {
	if departmentID == nil {
		return nil
	}
	found, err := s.departmentRepo.GetByIDs(dbc, []uuid.UUID{*departmentID})
	if err != nil {
		return internal("department_lookup_failed", err)
	}
	if len(found) == 0 {
		return invalidArgument("invalid_department", "department "+departmentID.String()+" does not exist")
	}
	return nil
}

func (s *employeeService) withDepartmentNames(dbc dbctx.Context, rows []*types.Employee) ([]*types.Employee, error) {
	ids := make([]uuid.UUID, 0, len(rows))
	seen := make(map[uuid.UUID]bool)
	for _, e := range rows {
		if e.DepartmentID != nil && !seen[*e.DepartmentID] {
			seen[*e.DepartmentID] = true
			ids = append(ids, *e.DepartmentID)
		}
	}
	if len(ids) == 0 {
		return rows, nil
	}
	depts, err := s.departmentRepo.GetByIDs(dbc, ids)
	if err != nil {
		return nil, internal("department_lookup_failed", err)
	}
	names := make(map[uuid.UUID]string, len(depts))
	for _, d := range depts {
		names[d.ID] = d.Name
	}
	for _, e := range rows {
		if e.DepartmentID != nil {
			e.DepartmentName = names[*e.DepartmentID]
		}
	}
	return rows, nil
}
