package http

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"

	httpH "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/handlers"
	httpMW "github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/http/middleware"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/observability"
	"github.com/TEJA6777/WorkHub-Modern-Employee-Management-Platform/internal/pkg/logger"
)

// SessionStreamRoute is the SSE endpoint; its requests last a whole session.
const SessionStreamRoute = "/api/session/stream"

type RouterConfig struct {
	Log         *logger.Logger
	ServiceName string
	CORSOrigins []string
	// Metrics is nil when metrics are disabled; /metrics is then not mounted.
	Metrics *observability.Metrics

	AuthHandler       *httpH.AuthHandler
	AuthMiddleware    *httpMW.AuthMiddleware
	SessionHandler    *httpH.SessionHandler
	EmployeeHandler   *httpH.EmployeeHandler
	DepartmentHandler *httpH.DepartmentHandler
	DashboardHandler  *httpH.DashboardHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	if cfg.ServiceName != "" {
		r.Use(otelgin.Middleware(cfg.ServiceName))
	}
	r.Use(httpMW.AttachTraceContext())
	if cfg.Log != nil {
		r.Use(httpMW.RequestLogger(cfg.Log))
	}
	if cfg.Metrics != nil {
		r.Use(httpMW.Metrics(cfg.Metrics, SessionStreamRoute))
	}
	r.Use(httpMW.CORS(cfg.CORSOrigins))

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}
	if cfg.Metrics != nil {
		r.GET("/metrics", gin.WrapH(cfg.Metrics.Handler()))
	}

	api := r.Group("/api")
	{
		// Auth (public)
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/authenticate", cfg.AuthHandler.Authenticate)
			api.GET("/verify-username/:username", cfg.AuthHandler.VerifyUsername)
			api.POST("/reset-password", cfg.AuthHandler.ResetPassword)
		}
	}

	protected := api.Group("/")
	{
		// Middleware
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		} else {
			protected.Use(func(c *gin.Context) {
				c.AbortWithStatus(http.StatusUnauthorized)
			})
		}

		// Auth (protected)
		if cfg.AuthHandler != nil {
			protected.GET("/auth/me", cfg.AuthHandler.Me)
			protected.POST("/auth/logout", cfg.AuthHandler.Logout)
		}

		// Session events (SSE)
		if cfg.SessionHandler != nil {
			protected.GET(strings.TrimPrefix(SessionStreamRoute, "/api"), cfg.SessionHandler.Stream)
		}

		// Employees
		if cfg.EmployeeHandler != nil {
			protected.GET("/employees", cfg.EmployeeHandler.List)
			protected.POST("/employees", cfg.EmployeeHandler.Create)
			protected.GET("/employees/search", cfg.EmployeeHandler.Search)
			protected.GET("/employees/:id", cfg.EmployeeHandler.Get)
			protected.PUT("/employees/:id", cfg.EmployeeHandler.Update)
			protected.DELETE("/employees/:id", cfg.EmployeeHandler.Delete)
		}

		// Departments
		if cfg.DepartmentHandler != nil {
			protected.GET("/departments", cfg.DepartmentHandler.List)
			protected.POST("/departments", cfg.DepartmentHandler.Create)
			protected.GET("/departments/search", cfg.DepartmentHandler.Search)
			protected.GET("/departments/:id", cfg.DepartmentHandler.Get)
			protected.PUT("/departments/:id", cfg.DepartmentHandler.Update)
			protected.DELETE("/departments/:id", cfg.DepartmentHandler.Delete)
			protected.GET("/departments/:id/employees", cfg.DepartmentHandler.Employees)
		}

		// Dashboard
		if cfg.DashboardHandler != nil {
			protected.GET("/dashboard/summary", cfg.DashboardHandler.Summary)
			protected.GET("/dashboard/placeholders", cfg.DashboardHandler.Placeholders)
			protected.GET("/profile", cfg.DashboardHandler.Profile)
		}
	}

	return r
}
