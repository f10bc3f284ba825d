package task

import (
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.RouterGroup, h *Handler, authMW gin.HandlerFunc, rbacService middleware.RBACService) {
	tasks := r.Group("/tasks")
	tasks.Use(authMW)
	{
		tasks.GET("", middleware.RBACAuthorize(rbacService, "task", "read"), h.GetAll)
		tasks.POST("",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "task", "create"),
			h.Create,
		)
		tasks.GET("/mine", middleware.RBACAuthorize(rbacService, "task", "read_own"), h.ListMine)
		tasks.PATCH("/:id", middleware.RBACAuthorize(rbacService, "task", "update_status"), h.UpdateStatus)
	}
}
