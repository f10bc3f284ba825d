package attendance

import (
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService) {
	attendances := r.Group("/attendances")
	attendances.Use(authMW)
	{
		attendances.GET("", middleware.RBACAuthorize(rbacService, "attendance", "read"), h.GetAll)
		attendances.PUT("/:id", middleware.RBACAuthorize(rbacService, "attendance", "correct"), h.Correct)
		attendances.POST("/check-in",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			h.CheckIn,
		)
		attendances.POST("/check-out",
			middleware.RateLimitByUser(1, 3),
			middleware.RBACAuthorize(rbacService, "attendance", "mark"),
			h.CheckOut,
		)
		attendances.GET("/stats/me", middleware.RBACAuthorize(rbacService, "attendance", "read_own"), h.MyStats)
	}
}
