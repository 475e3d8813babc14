package rbac

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubService struct {
	perms []Permission
	err   error
}

func (s *stubService) Enforce(role, resource, action string) (bool, error) {
	return false, nil
}

func (s *stubService) Permissions(role string) ([]Permission, error) {
	return s.perms, s.err
}

func newPermissionsRouter(svc Service, role string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	auth := func(c *gin.Context) {
		c.Set("role", role)
		c.Next()
	}
	RegisterRoutes(router.Group("/api/v1"), NewHandler(svc), auth)
	return router
}

func TestHandler_MyPermissions(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		svc := &stubService{perms: []Permission{{Resource: ResourcePayrollSelf, Action: ActionRead}}}
		router := newPermissionsRouter(svc, RoleStaff)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me/permissions", nil))

		assert.Equal(t, http.StatusOK, w.Code)

		var body struct {
			Ok   bool                `json:"ok"`
			Data PermissionsResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.True(t, body.Ok)
		assert.Equal(t, RoleStaff, body.Data.Role)
		assert.Len(t, body.Data.Permissions, 1)
	})

	t.Run("enforcer error", func(t *testing.T) {
		router := newPermissionsRouter(&stubService{err: errors.New("boom")}, RoleStaff)

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/v1/me/permissions", nil))

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.NotContains(t, w.Body.String(), "boom")
	})
}
