package middleware

import (
	"net/http"
	"strings"

	"go-event-planner/internal/cache"
	"go-event-planner/internal/model"

	"github.com/gin-gonic/gin"
)

const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextToken  = "sessionToken"
)

// Auth 驗證 Authorization: Bearer <token>，從 Redis 取回 session，
// 並把 userID 與 role 放進 gin context 供 handler 使用。
func Auth(sessions cache.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header required"})
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "authorization header format must be Bearer {token}"})
			c.Abort()
			return
		}

		session, err := sessions.Get(c.Request.Context(), parts[1])
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid or expired session"})
			c.Abort()
			return
		}

		c.Set(ContextUserID, session.UserID)
		c.Set(ContextRole, session.Role)
		c.Set(ContextToken, session.Token)

		c.Next()
	}
}

// RequireRole 確保已登入的使用者持有指定角色。
// 例：router.POST(..., middleware.Auth(sessions), middleware.RequireRole(model.RoleAdmin), handler)
func RequireRole(required model.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		v, exists := c.Get(ContextRole)
		if !exists {
			c.JSON(http.StatusForbidden, gin.H{"error": "role not present"})
			c.Abort()
			return
		}
		role, ok := v.(model.Role)
		if !ok || role != required {
			c.JSON(http.StatusForbidden, gin.H{"error": "insufficient permissions"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUserID 從 context 取出登入者 id，Auth 尚未執行時回傳 false
func CurrentUserID(c *gin.Context) (int, bool) {
	v, exists := c.Get(ContextUserID)
	if !exists {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}
