package bankprofile

import (
	"school-payroll/internal/middleware"
	"school-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
) {
	profiles := r.Group("/bank-profiles")
	profiles.Use(auth)
	{
		profiles.GET("/me",
			middleware.RBACAuthorize(rbacService, rbac.ResourceOwnBankProfile, rbac.ActionRead),
			handler.GetOwn,
		)
		profiles.PUT("/me",
			middleware.RateLimitByUser(0.2, 2),
			middleware.RBACAuthorize(rbacService, rbac.ResourceOwnBankProfile, rbac.ActionUpdate),
			handler.UpsertOwn,
		)
		profiles.GET("/:staff_id",
			middleware.RBACAuthorize(rbacService, rbac.ResourceBankProfile, rbac.ActionRead),
			handler.GetByStaffID,
		)
	}
}
