package hr

import (
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rbacService middleware.RBACService,
	logger *zap.Logger,
) {
	hrs := r.Group("/hrs")
	hrs.Use(authMW)
	hrs.Use(middleware.ContextLogger(logger))
	{
		hrs.GET("/me",
			middleware.RBACAuthorize(rbacService, "hr", "read"),
			handler.GetMe,
		)
		hrs.DELETE("/me",
			middleware.RateLimitByUser(0.05, 1),
			middleware.RBACAuthorize(rbacService, "hr", "delete"),
			handler.DeleteMe,
		)
	}
}
