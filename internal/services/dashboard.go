package services

import (
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/analytics"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/data/repos"
	types "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/domain"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/ctxutil"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/dbctx"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

// Profile is the signed-in account with headline directory counts.
type Profile struct {
	User            *types.User `json:"user"`
	EmployeeCount   int64       `json:"employee_count"`
	DepartmentCount int64       `json:"department_count"`
}

type DashboardService interface {
	Summary(dbc dbctx.Context) (analytics.Summary, error)
	Profile(dbc dbctx.Context) (*Profile, error)
	Placeholders() analytics.PlaceholderStats
}

type dashboardService struct {
	log            *logger.Logger
	userRepo       repos.UserRepo
	employeeRepo   repos.EmployeeRepo
	departmentRepo repos.DepartmentRepo
}

func NewDashboardService(
	log *logger.Logger,
	userRepo repos.UserRepo,
	employeeRepo repos.EmployeeRepo,
	departmentRepo repos.DepartmentRepo,
) DashboardService {
	return &dashboardService{
		log:            log.With("service", "DashboardService"),
		userRepo:       userRepo,
		employeeRepo:   employeeRepo,
		departmentRepo: departmentRepo,
	}
}

// Summary loads both collections concurrently. If either load fails nothing is
// aggregated and the caller gets ErrNoDataAvailable.
func (s *dashboardService) Summary(dbc dbctx.Context) (analytics.Summary, error) {
	var (
		employees   []*types.Employee
		departments []*types.Department
	)
	g, gctx := errgroup.WithContext(ctxutil.Default(dbc.Ctx))
	inner := dbctx.From(gctx)
	g.Go(func() error {
		rows, err := s.employeeRepo.List(inner)
		if err != nil {
			return noDataAvailable("employees", err)
		}
		employees = rows
		return nil
	})
	g.Go(func() error {
		rows, err := s.departmentRepo.List(inner)
		if err != nil {
			return noDataAvailable("departments", err)
		}
		departments = rows
		return nil
	})
	if err := g.Wait(); err != nil {
		s.log.Warn("Dashboard data source failed", "error", err)
		return analytics.Summary{}, err
	}

	summary, err := analytics.ComputeSummary(employees, departments)
	if err != nil {
		return analytics.Summary{}, internal("summary_failed", err)
	}
	return summary, nil
}

func (s *dashboardService) Profile(dbc dbctx.Context) (*Profile, error) {
	rd := ctxutil.GetRequestData(dbc.Ctx)
	if rd == nil || rd.UserID == uuid.Nil {
		return nil, unauthorized()
	}
	users, err := s.userRepo.GetByIDs(dbc, []uuid.UUID{rd.UserID})
	if err != nil {
		return nil, internal("user_lookup_failed", err)
	}
	if len(users) == 0 {
		return nil, notFound("user_not_found", "user "+rd.UserID.String())
	}
	employees, err := s.employeeRepo.Count(dbc)
	if err != nil {
		return nil, noDataAvailable("employees", err)
	}
	departments, err := s.departmentRepo.Count(dbc)
	if err != nil {
		return nil, noDataAvailable("departments", err)
	}
	return &Profile{User: users[0], EmployeeCount: employees, DepartmentCount: departments}, nil
}

func (s *dashboardService) Placeholders() analytics.PlaceholderStats {
	return analytics.Placeholders()
}
