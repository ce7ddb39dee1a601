package app

import (
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/services"
)

type Services struct {
	Auth       services.AuthService
	Employee   services.EmployeeService
	Department services.DepartmentService
	Dashboard  services.DashboardService
}

// wireServices publishes every event through the bus; the forwarder started in
// App.Start feeds the local hub, so a single instance and a fleet behave alike.
func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, repos Repos, clients Clients) Services {
	log.Info("Wiring services...")

	emitter := &services.BusEmitter{Bus: clients.SSEBus, Log: log}
	sessionNotifier := services.NewSessionNotifier(emitter)
	directoryNotifier := services.NewDirectoryNotifier(emitter)

	return Services{
		Auth: services.NewAuthService(db, log, repos.User, repos.UserToken, sessionNotifier, services.AuthConfig{
			JWTSecretKey:       cfg.JWTSecretKey,
			AccessTTL:          cfg.AccessTokenTTL,
			AllowPasswordReset: cfg.AllowPasswordReset,
		}),
		Employee:   services.NewEmployeeService(db, log, repos.Employee, repos.Department, directoryNotifier),
		Department: services.NewDepartmentService(db, log, repos.Department, repos.Employee, directoryNotifier),
		Dashboard:  services.NewDashboardService(log, repos.User, repos.Employee, repos.Department),
	}
}
