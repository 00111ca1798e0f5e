package app

import (
	"database/sql"
	"os"

	"go-workforce/internal/approval"
	"go-workforce/internal/auth"
	"go-workforce/internal/employee"
	"go-workforce/internal/event"
	"go-workforce/internal/expense"
	"go-workforce/internal/messaging/kafka"
	"go-workforce/internal/notification"
	"go-workforce/internal/project"
	"go-workforce/internal/rbac"
	"go-workforce/internal/reference"
	"go-workforce/internal/report"
	"go-workforce/internal/timesheet"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	db *sql.DB,
	gormDB *gorm.DB,
	rdb *redis.Client,
) error {
	// --- Repositories ---
	approvalRepo := approval.NewRepository(gormDB)
	authRepo := auth.NewRepository(gormDB)
	employeeRepo := employee.NewRepository(gormDB)
	eventRepo := event.NewRepository(gormDB)
	expenseRepo := expense.NewRepository(gormDB)
	notificationRepo := notification.NewRepository(gormDB)
	outboxRepo := kafka.NewOutboxRepository(db)
	projectRepo := project.NewRepository(gormDB)
	referenceRepo := reference.NewRepository(gormDB)
	reportRepo := report.NewRepository(gormDB)
	timesheetRepo := timesheet.NewRepository(gormDB)

	// --- RBAC Core ---
	enforcer, err := rbac.NewEnforcer()
	if err != nil {
		return err
	}

	// --- File storage ---
	uploadDir := os.Getenv("UPLOAD_DIR")
	if uploadDir == "" {
		uploadDir = "uploads"
	}
	fileStore, err := expense.NewDiskFileStore(uploadDir)
	if err != nil {
		return err
	}

	// --- Services ---
	approvalService := approval.NewService(db, approvalRepo, outboxRepo)
	authService := auth.NewService(db, authRepo, employeeRepo, outboxRepo)
	employeeService := employee.NewService(employeeRepo, rdb)
	eventService := event.NewService(eventRepo)
	expenseService := expense.NewService(db, expenseRepo, fileStore, outboxRepo)
	notificationService := notification.NewService(notificationRepo)
	projectService := project.NewService(db, projectRepo)
	referenceService := reference.NewService(referenceRepo, rdb)
	reportService := report.NewService(reportRepo)
	timesheetService := timesheet.NewService(db, timesheetRepo, outboxRepo)

	// --- Handlers ---
	approvalHandler := approval.NewHandler(approvalService, rdb)
	authHandler := auth.NewHandler(authService)
	employeeHandler := employee.NewHandler(employeeService)
	eventHandler := event.NewHandler(eventService)
	expenseHandler := expense.NewHandler(expenseService, fileStore, rdb)
	notificationHandler := notification.NewHandler(notificationService)
	projectHandler := project.NewHandler(projectService)
	referenceHandler := reference.NewHandler(referenceService)
	reportHandler := report.NewHandler(reportService)
	timesheetHandler := timesheet.NewHandler(timesheetService, rdb)

	// --- Routes Registration ---
	api := router.Group("")
	{
		approval.RegisterRoutes(api, approvalHandler, enforcer, rdb)
		auth.RegisterRoutes(api, authHandler)
		employee.RegisterRoutes(api, employeeHandler)
		event.RegisterRoutes(api, eventHandler, enforcer)
		expense.RegisterRoutes(api, expenseHandler, enforcer, rdb)
		notification.RegisterRoutes(api, notificationHandler)
		project.RegisterRoutes(api, projectHandler, enforcer)
		reference.RegisterRoutes(api, referenceHandler, enforcer)
		report.RegisterRoutes(api, reportHandler, enforcer)
		timesheet.RegisterRoutes(api, timesheetHandler, enforcer, rdb)
	}

	return nil
}
