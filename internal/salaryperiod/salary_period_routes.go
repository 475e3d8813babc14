package salaryperiod

import (
	"school-payroll/internal/middleware"
	"school-payroll/internal/rbac"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

// RegisterRoutes mounts the write side of /salary-periods. When rdb is nil
// the POST routes run without Idempotency-Key support.
func RegisterRoutes(
	r *gin.RouterGroup,
	handler *Handler,
	rbacService rbac.Service,
	auth gin.HandlerFunc,
	rdb *redis.Client,
) {
	var idempotent gin.HandlerFunc = func(c *gin.Context) { c.Next() }
	if rdb != nil {
		idempotent = middleware.Idempotency(rdb)
	}

	periods := r.Group("/salary-periods")
	periods.Use(auth, middleware.RateLimitByUser(5, 10))
	{
		periods.POST("",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPeriod, rbac.ActionCreate),
			idempotent,
			handler.Assign,
		)
		periods.PUT("/:staff_id/:year/:month/adjustment",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPeriod, rbac.ActionUpdate),
			handler.Adjust,
		)
		periods.POST("/:staff_id/:year/:month/mark-paid",
			middleware.RBACAuthorize(rbacService, rbac.ResourceSalaryPeriod, rbac.ActionPay),
			idempotent,
			handler.MarkPaid,
		)
	}
}
