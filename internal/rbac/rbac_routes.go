package rbac

import "github.com/gin-gonic/gin"

func RegisterRoutes(r *gin.RouterGroup, handler *Handler, auth gin.HandlerFunc) {
	group := r.Group("/me")
	group.Use(auth)
	{
		group.GET("/permissions", handler.MyPermissions)
	}
}
