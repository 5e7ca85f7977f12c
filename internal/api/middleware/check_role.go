package middleware

import (
	"Mizan/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// CheckRoles 检查当前用户是否拥有指定角色之一
func CheckRoles(requiredRoles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := c.GetString("role")

		for _, required := range requiredRoles {
			if role == required {
				c.Next()
				return
			}
		}

		response.Fail(c, response.Forbidden, "ليس لديك صلاحية للوصول إلى هذا المورد")
		c.Abort()
	}
}
