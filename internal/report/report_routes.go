package report

import (
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService) {
	reports := r.Group("/reports")
	reports.Use(authMW, middleware.RBACAuthorize(rbacService, "report", "read"))
	{
		reports.GET("/counts", h.Counts)
		reports.GET("/leave-status", h.LeaveStatus)
		reports.GET("/departments", h.Departments)
		reports.GET("/attendance", h.AttendanceStats)
		reports.GET("/attendance/:employee_id", h.EmployeeAttendance)
	}
}
