package compliance

import (
	"go-hris-compliance/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects r to be already authenticated.
func RegisterRoutes(
	r *gin.RouterGroup,
	h *Handler,
	rbacService middleware.RBACService,
) {
	reports := r.Group("/compliance")

	{
		reports.GET("/minimum-wage", middleware.RBACAuthorize(rbacService, "compliance", "read"), h.GetMinimumWageReport)
	}
}
