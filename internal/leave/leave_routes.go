package leave

import (
	"hr-portal/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	authMW gin.HandlerFunc,
	rbacService middleware.RBACService,
	rdb *redis.Client,
	logger *zap.Logger,
) {
	leaves := r.Group("/leaves")
	leaves.Use(authMW, middleware.ContextLogger(logger))
	{
		leaves.POST("",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, "leave", "create"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb, logger),
			handler.Submit,
		)
		leaves.GET("/mine", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.ListMine)
		leaves.GET("/summary", middleware.RBACAuthorize(rbacService, "leave", "read_own"), handler.Summary)
		leaves.GET("/pending", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.ListPending)
		leaves.GET("/:id", middleware.RBACAuthorize(rbacService, "leave", "read"), handler.GetById)
		leaves.POST("/:id/action",
			middleware.RateLimitByUser(2, 10),
			middleware.RBACAuthorize(rbacService, "leave", "decide"),
			middleware.ExtractUserID(),
			middleware.Idempotency(rdb, logger),
			handler.Decide,
		)
	}
}
