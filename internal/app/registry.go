package app

import (
	"database/sql"
	"time"

	"hr-portal/internal/attendance"
	"hr-portal/internal/auth"
	"hr-portal/internal/employee"
	"hr-portal/internal/hr"
	"hr-portal/internal/leave"
	"hr-portal/internal/messaging/kafka"
	"hr-portal/internal/middleware"
	"hr-portal/internal/notification"
	"hr-portal/internal/rbac"
	"hr-portal/internal/report"
	"hr-portal/internal/shared/clock"
	"hr-portal/internal/shared/token"
	"hr-portal/internal/task"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type modules struct {
	db         *sql.DB
	gormDB     *gorm.DB
	rdb        *redis.Client
	clock      clock.Clock
	tokens     *token.Manager
	hasher     auth.PasswordHasher
	dispatcher *notification.Dispatcher
	location   *time.Location
	secure     bool
	logger     *zap.Logger
}

func registerModules(router *gin.Engine, m modules) (hr.Service, error) {
	// --- Repositories ---
	attendanceRepo := attendance.NewRepository(m.gormDB)
	authRepo := auth.NewRepository(m.gormDB)
	employeeRepo := employee.NewRepository(m.gormDB)
	hrRepo := hr.NewRepository(m.gormDB)
	leaveRepo := leave.NewRepository(m.gormDB)
	outboxRepo := kafka.NewOutboxRepository(m.db)
	reportRepo := report.NewRepository(m.gormDB)
	taskRepo := task.NewRepository(m.gormDB)

	// --- RBAC Core ---
	rbacService, err := rbac.NewDefaultService(m.logger)
	if err != nil {
		return nil, err
	}

	// --- Services ---
	authService := auth.NewService(authRepo, m.hasher, m.tokens, m.logger)
	attendanceService := attendance.NewService(m.db, attendanceRepo, m.clock, m.logger)
	employeeService := employee.NewService(m.db, employeeRepo, m.hasher, m.dispatcher, m.logger)
	hrService := hr.NewService(m.db, hrRepo, employeeRepo, m.hasher, m.logger)
	leaveService := leave.NewService(m.db, leaveRepo, attendanceRepo, outboxRepo, m.clock, m.logger)
	reportService := report.NewService(reportRepo, m.rdb, m.location, m.logger)
	taskService := task.NewService(m.db, taskRepo, m.logger)

	// --- Handlers ---
	authHandler := auth.NewHandler(authService, m.secure)
	attendanceHandler := attendance.NewHandler(attendanceService)
	employeeHandler := employee.NewHandler(employeeService, m.logger)
	hrHandler := hr.NewHandler(hrService, m.logger)
	leaveHandler := leave.NewHandler(leaveService, m.rdb, m.logger)
	rbacHandler := rbac.NewHandler(rbacService)
	reportHandler := report.NewHandler(reportService)
	taskHandler := task.NewHandler(taskService, m.logger)

	authMW := middleware.AuthMiddleware(m.tokens)

	// --- Routes Registration ---
	api := router.Group("/api/v1")
	api.Use(middleware.RequestID())
	{
		auth.RegisterRoutes(api, authHandler, authMW)
		attendance.RegisterRoutes(api, attendanceHandler, authMW, rbacService)
		employee.RegisterRoutes(api, employeeHandler, authMW, rbacService, m.logger)
		hr.RegisterRoutes(api, hrHandler, authMW, rbacService, m.logger)
		leave.RegisterRoutes(api, leaveHandler, authMW, rbacService, m.rdb, m.logger)
		report.RegisterRoutes(api, reportHandler, authMW, rbacService)
		task.RegisterRoutes(api, taskHandler, authMW, rbacService)
	}

	rbac.RegisterRoutes(api.Group("", authMW), rbacHandler)

	return hrService, nil
}
