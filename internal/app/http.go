package app

import (
	"context"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http"
	httpH "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/handlers"
	httpMW "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/middleware"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/realtime"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health     *httpH.HealthHandler
	Auth       *httpH.AuthHandler
	Session    *httpH.SessionHandler
	Employee   *httpH.EmployeeHandler
	Department *httpH.DepartmentHandler
	Dashboard  *httpH.DashboardHandler
}

func wireHandlers(log *logger.Logger, db *gorm.DB, clients Clients, services Services, sseHub *realtime.SSEHub, metrics *observability.Metrics) Handlers {
	log.Info("Wiring handlers...")
	checks := map[string]httpH.Pinger{
		"database": func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	}
	if clients.SSEBus != nil {
		checks["bus"] = clients.SSEBus.Ping
	}
	return Handlers{
		Health:     httpH.NewHealthHandler(checks),
		Auth:       httpH.NewAuthHandler(services.Auth),
		Session:    httpH.NewSessionHandler(log, sseHub, metrics),
		Employee:   httpH.NewEmployeeHandler(services.Employee),
		Department: httpH.NewDepartmentHandler(services.Department),
		Dashboard:  httpH.NewDashboardHandler(services.Dashboard, metrics),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, cfg Config, handlers Handlers, middleware Middleware, metrics *observability.Metrics) *gin.Engine {
	serviceName := ""
	if cfg.Otel.Enabled {
		serviceName = cfg.Otel.ServiceName
	}
	return http.NewRouter(http.RouterConfig{
		Log:               log,
		ServiceName:       serviceName,
		CORSOrigins:       cfg.CORSOrigins,
		Metrics:           metrics,
		HealthHandler:     handlers.Health,
		AuthHandler:       handlers.Auth,
		AuthMiddleware:    middleware.Auth,
		SessionHandler:    handlers.Session,
		EmployeeHandler:   handlers.Employee,
		DepartmentHandler: handlers.Department,
		DashboardHandler:  handlers.Dashboard,
	})
}
