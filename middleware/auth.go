package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/studieren/compliments/models"
)

// UserIDKey gin context 中保存当前用户 ID 的键
const UserIDKey = "user_id"

var unauthorizedBody = gin.H{"error": "Unauthorized"}

type TokenParser interface {
	Parse(token string) (string, error)
}

type UserFinder interface {
	FindByID(ctx context.Context, id string) (*models.User, error)
}

// EnsureAuthenticated 要求 "Authorization: Bearer <token>"，把令牌的 subject 存入 UserIDKey
func EnsureAuthenticated(tokens TokenParser) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		userID, err := tokens.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}

		c.Set(UserIDKey, userID)
		c.Next()
	}
}

// EnsureAdmin 仅当当前用户存在且 admin 为 true 时放行
func EnsureAdmin(users UserFinder) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, err := users.FindByID(c.Request.Context(), UserID(c))
		if err != nil || user == nil || !user.Admin {
			c.AbortWithStatusJSON(http.StatusUnauthorized, unauthorizedBody)
			return
		}
		c.Next()
	}
}

func UserID(c *gin.Context) string {
	return c.GetString(UserIDKey)
}
