package ratelimit

import (
	"strings"

	"github.com/gin-gonic/gin"
)

// IdentityFromRequest 推导请求方身份串：优先框架解析出的 ClientIP，
// 其次 X-Forwarded-For 首段，都拿不到时退化为 "unknown"
//（所有未知来源共享一个桶，属于可接受的降级）。
func IdentityFromRequest(c *gin.Context) string {
	if ip := c.ClientIP(); ip != "" {
		return ip
	}
	if fwd := c.GetHeader("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if first = strings.TrimSpace(first); first != "" {
			return first
		}
	}
	return "unknown"
}

// IdentityWithAgent 身份串附加 User-Agent，截断保持键长可控
func IdentityWithAgent(c *gin.Context, maxLen int) string {
	identity := IdentityFromRequest(c) + "-" + c.GetHeader("User-Agent")
	if len(identity) > maxLen {
		identity = identity[:maxLen]
	}
	return identity
}
