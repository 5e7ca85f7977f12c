package middleware

import (
	"Mizan/internal/pkg/consts"
	"Mizan/internal/pkg/redis"
	"Mizan/internal/pkg/response"
	"Mizan/internal/pkg/security"
	"Mizan/internal/service"
	"context"
	"strings"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware 负责验证 JWT 并将用户身份信息注入 Context。
// 已注销的 Token 通过 Redis 黑名单拦截。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		signature, err := security.ExtractSignature(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		denied, err := redis.GetValue(c.Request.Context(), consts.TokenDenyKey+signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, service.UnExpectedError.Error())
			c.Abort()
			return
		}
		if denied != "" {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		claims, err := security.ValidateToken(tokenString)
		if err != nil {
			response.Fail(c, response.Unauthorized, service.UnauthorizedError.Error())
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		newCtx := context.WithValue(c.Request.Context(), "user_id", claims.UserID)
		c.Request = c.Request.WithContext(newCtx)

		c.Next()
	}
}
