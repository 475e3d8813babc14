package middleware

import "github.com/gin-gonic/gin"

// UserID, StaffID and Role read the claims stored by AuthMiddleware.
// They return "" on routes that are not authenticated.

func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

func StaffID(c *gin.Context) string {
	return c.GetString(ctxStaffID)
}

func Role(c *gin.Context) string {
	return c.GetString(ctxRole)
}
