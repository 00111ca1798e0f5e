package report

import (
	"go-workforce/internal/middleware"
	"go-workforce/internal/rbac"

	"github.com/casbin/casbin/v2"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the reporting surface twice. Managers see the team
// reports; admins additionally get sheet detail lookups and the open
// timesheet queue.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler, enforcer *casbin.Enforcer) {
	manager := r.Group("/manager")
	manager.Use(middleware.AuthMiddleware())
	manager.Use(rbac.Authorize(enforcer, "reports", "read"))
	{
		manager.GET("/timesheets/:weekEnding", handler.GetTimesheetsByWeek)
		manager.GET("/timesheets/overtime-report/:date", handler.GetOvertimeReport)
		manager.GET("/timesheets/labor-report/:date", handler.GetLaborReport)
		manager.GET("/timesheets/expense-report/:date", handler.GetExpenseReport)
		manager.GET("/expenses/:dateStart", handler.GetExpensesByMonthStart)
		manager.GET("/open-expenses", handler.GetOpenExpenses)
		manager.GET("/employees/get-all", handler.GetAllEmployees)
	}

	admin := r.Group("/admin")
	admin.Use(middleware.AuthMiddleware())
	admin.Use(rbac.Authorize(enforcer, "admin-reports", "read"))
	{
		admin.GET("/timesheets/:weekEnding", handler.GetTimesheetsByWeek)
		admin.GET("/timesheets/overtime-report/:date", handler.GetOvertimeReport)
		admin.GET("/timesheets/labor-report/:date", handler.GetLaborReport)
		admin.GET("/timesheets/expense-report/:date", handler.GetExpenseReport)
		admin.GET("/expenses/:dateStart", handler.GetExpensesByMonthStart)
		admin.GET("/expense/:id", handler.GetExpenseByID)
		admin.GET("/timesheet/:id", handler.GetTimesheetByID)
		admin.GET("/open-timesheets", handler.GetOpenTimesheets)
		admin.GET("/open-expenses", handler.GetOpenExpenses)
		admin.GET("/employees/get-all", handler.GetAllEmployees)
	}
}
