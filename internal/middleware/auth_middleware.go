package middleware

import (
	"errors"
	"fmt"
	"strings"

	"school-payroll/internal/shared/contextutil"
	"school-payroll/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

const (
	ctxUserID  = "user_id"
	ctxStaffID = "staff_id"
	ctxRole    = "role"
)

// AuthMiddleware verifies an HMAC-signed bearer token (or access_token cookie)
// and copies user_id, staff_id and role claims into the gin context.
func AuthMiddleware(secret string) gin.HandlerFunc {
	key := []byte(secret)

	return func(c *gin.Context) {
		tokenString, found := strings.CutPrefix(c.GetHeader("Authorization"), "Bearer ")
		if !found {
			tokenString = ""
		}
		if tokenString == "" {
			if cookie, err := c.Cookie("access_token"); err == nil {
				tokenString = cookie
			}
		}
		if tokenString == "" {
			response.AbortWithError(c, ErrTokenMissing)
			return
		}

		token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
			}
			return key, nil
		})
		if err != nil || !token.Valid {
			if errors.Is(err, jwt.ErrTokenExpired) {
				response.AbortWithError(c, ErrTokenExpired)
				return
			}
			response.AbortWithError(c, ErrInvalidToken)
			return
		}

		claims, ok := token.Claims.(jwt.MapClaims)
		if !ok {
			response.AbortWithError(c, ErrInvalidToken)
			return
		}

		userID, _ := claims["user_id"].(string)
		staffID, _ := claims["staff_id"].(string)
		role, _ := claims["role"].(string)
		if userID == "" || staffID == "" || role == "" {
			response.AbortWithError(c, ErrInvalidToken.WithDetails("missing user_id, staff_id or role claim"))
			return
		}

		c.Set(ctxUserID, userID)
		c.Set(ctxStaffID, staffID)
		c.Set(ctxRole, role)

		ctx := contextutil.WithActor(c.Request.Context(), contextutil.Actor{
			UserID:  userID,
			StaffID: staffID,
			Role:    role,
		})
		logger := contextutil.GetLogger(ctx, zap.L()).With(
			zap.String("user_id", userID),
			zap.String("role", role),
		)
		c.Request = c.Request.WithContext(contextutil.WithLogger(ctx, logger))

		c.Next()
	}
}
