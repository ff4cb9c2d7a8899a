package minimumwage

import (
	"go-hris-compliance/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes expects r to be already authenticated.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
	rdb *redis.Client,
) {
	wages := r.Group("/minimum-wages")

	create := []gin.HandlerFunc{middleware.RBACAuthorize(rbacService, "minimum_wage", "create")}
	if rdb != nil {
		create = append(create, middleware.Idempotency(rdb))
	}
	create = append(create, h.Create)

	{
		wages.GET("", middleware.RBACAuthorize(rbacService, "minimum_wage", "read"), h.GetAll)
		wages.POST("", create...)
		wages.GET("/:id", middleware.RBACAuthorize(rbacService, "minimum_wage", "read"), h.GetById)
		wages.PUT("/:id", middleware.RBACAuthorize(rbacService, "minimum_wage", "update"), h.Update)
		wages.DELETE("/:id", middleware.RBACAuthorize(rbacService, "minimum_wage", "delete"), h.Delete)
	}
}
