package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/domain/auth"
	"github.com/mgthompo1/pulse-ticket-launch-sub008/internal/usecase"

	"github.com/gin-gonic/gin"
)

type AuthMiddleware struct {
	tokenValidator usecase.TokenValidator
}

const (
	ctxSubjectKey = "auth_subject"
	ctxRoleKey    = "auth_role"
)

var roleHierarchy = map[auth.Role]int{
	auth.RoleViewer:   1,
	auth.RoleOperator: 2,
	auth.RoleAdmin:    3,
}

func NewAuthMiddleware(tokenValidator usecase.TokenValidator) *AuthMiddleware {
	return &AuthMiddleware{
		tokenValidator: tokenValidator,
	}
}

func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Access token required",
			})
			c.Abort()
			return
		}

		principal, err := m.tokenValidator.ValidateToken(token)
		if err != nil {
			slog.Warn("Token validation failed in auth middleware", "error", err.Error())
			c.JSON(http.StatusUnauthorized, gin.H{
				"error": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set(ctxSubjectKey, principal.Subject)
		c.Set(ctxRoleKey, principal.Role)
		c.Set("jwt_claims", map[string]any{
			"sub":  principal.Subject,
			"role": principal.Role.String(),
		})
		c.Next()
	}
}

func bearerToken(c *gin.Context) string {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
		return ""
	}
	return strings.TrimSpace(authHeader[len("Bearer "):])
}

func hasMinimumRole(role, minRole auth.Role) bool {
	level, exists := roleHierarchy[role]
	minLevel, minExists := roleHierarchy[minRole]
	return exists && minExists && level >= minLevel
}

// RequireRoleAtLeast must run after RequireAuth.
func (m *AuthMiddleware) RequireRoleAtLeast(minRole auth.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := GetRole(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{
				"error": "Internal server error",
			})
			c.Abort()
			return
		}

		if !hasMinimumRole(role, minRole) {
			slog.Warn("Insufficient role", "role", role.String(), "required", minRole.String(), "path", c.Request.URL.Path)
			c.JSON(http.StatusForbidden, gin.H{
				"error": "Insufficient permissions",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}

func GetSubject(c *gin.Context) (string, bool) {
	subject, exists := c.Get(ctxSubjectKey)
	if !exists {
		return "", false
	}

	s, ok := subject.(string)
	return s, ok
}

func GetRole(c *gin.Context) (auth.Role, bool) {
	value, exists := c.Get(ctxRoleKey)
	if !exists {
		return "", false
	}

	role, ok := value.(auth.Role)
	return role, ok
}
