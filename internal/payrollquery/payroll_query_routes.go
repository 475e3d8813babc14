package payrollquery

import (
	"school-payroll/internal/middleware"
	"school-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the read side: the admin views under /salary-periods
// and self-service under /me/salary-periods.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
) {
	periods := r.Group("/salary-periods")
	periods.Use(auth)
	{
		periods.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPeriod, rbac.ActionRead),
			handler.ListForAdmin,
		)
		periods.GET("/:staff_id/:year/:month",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPeriod, rbac.ActionRead),
			handler.GetPeriod,
		)
	}

	mine := r.Group("/me/salary-periods")
	mine.Use(auth)
	{
		mine.GET("",
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollSelf, rbac.ActionRead),
			handler.ListMine,
		)
		mine.GET("/:year/:month/payslip",
			middleware.RateLimitByUser(1, 5),
			middleware.RBACAuthorize(rbacService, rbac.ResourcePayrollSelf, rbac.ActionRead),
			handler.MyPayslip,
		)
	}
}
