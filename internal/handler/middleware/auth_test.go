//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/auth"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/handler/middleware"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/pkg/jwt"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/tests/common/httptest"
	usecasemock "github.com/mgthompo1/pulse-ticket-launch-sub008/tests/mock/usecase"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newAuthRouter(t *testing.T, minRole auth.Role) (*gin.Engine, *usecasemock.MockTokenValidator) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	validator := usecasemock.NewMockTokenValidator(ctrl)
	m := middleware.NewAuthMiddleware(validator)

	router := gin.New()
	router.GET("/protected", m.RequireAuth(), m.RequireRoleAtLeast(minRole), func(c *gin.Context) {
		subject, _ := middleware.GetSubject(c)
		role, _ := middleware.GetRole(c)
		c.JSON(http.StatusOK, gin.H{"subject": subject, "role": role.String()})
	})
	return router, validator
}

func TestRequireAuth(t *testing.T) {
	t.Run("missing token", func(t *testing.T) {
		router, _ := newAuthRouter(t, auth.RoleViewer)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Access token required")
	})

	t.Run("invalid token", func(t *testing.T) {
		router, validator := newAuthRouter(t, auth.RoleViewer)
		validator.EXPECT().ValidateToken("bad").Return(auth.Principal{}, jwt.ErrInvalidToken)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "bad")

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.Contains(t, rec.Body.String(), "Invalid or expired token")
	})

	t.Run("valid token exposes the principal", func(t *testing.T) {
		router, validator := newAuthRouter(t, auth.RoleViewer)
		validator.EXPECT().ValidateToken("good").
			Return(auth.Principal{Subject: "scheduler", Role: auth.RoleOperator}, nil)

		rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "good")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"subject":"scheduler","role":"operator"}`, rec.Body.String())
	})
}

func TestRequireRoleAtLeast(t *testing.T) {
	tests := []struct {
		name     string
		role     auth.Role
		minRole  auth.Role
		wantCode int
	}{
		{name: "viewer on viewer route", role: auth.RoleViewer, minRole: auth.RoleViewer, wantCode: http.StatusOK},
		{name: "viewer on operator route", role: auth.RoleViewer, minRole: auth.RoleOperator, wantCode: http.StatusForbidden},
		{name: "operator on operator route", role: auth.RoleOperator, minRole: auth.RoleOperator, wantCode: http.StatusOK},
		{name: "admin on operator route", role: auth.RoleAdmin, minRole: auth.RoleOperator, wantCode: http.StatusOK},
		{name: "unknown role", role: auth.Role("guest"), minRole: auth.RoleViewer, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			router, validator := newAuthRouter(t, tt.minRole)
			validator.EXPECT().ValidateToken("token").
				Return(auth.Principal{Subject: "svc", Role: tt.role}, nil)

			rec := httptest.PerformRequest(t, router, http.MethodGet, "/protected", nil, "token")

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}
