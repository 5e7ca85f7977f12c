package ratelimit

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func newRequestContext(t *testing.T, remoteAddr string, headers map[string]string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	c.Request = req
	return c
}

func TestIdentityFromRequest(t *testing.T) {
	c := newRequestContext(t, "10.1.2.3:5555", nil)
	require.Equal(t, "10.1.2.3", IdentityFromRequest(c))
}

func TestIdentityFromRequest_Unknown(t *testing.T) {
	c := newRequestContext(t, "", nil)
	require.Equal(t, "unknown", IdentityFromRequest(c))
}

func TestIdentityFromRequest_ForwardedForFirstSegment(t *testing.T) {
	// 多跳代理的 X-Forwarded-For 只取首段作为桶键
	c := newRequestContext(t, "", map[string]string{
		"X-Forwarded-For": "203.0.113.9, 70.41.3.18, 150.172.238.178",
	})
	require.Equal(t, "203.0.113.9", IdentityFromRequest(c))
}

func TestIdentityWithAgent(t *testing.T) {
	c := newRequestContext(t, "10.1.2.3:5555", map[string]string{
		"User-Agent": "Mozilla/5.0",
	})
	require.Equal(t, "10.1.2.3-Mozilla/5.0", IdentityWithAgent(c, 100))
}

func TestIdentityWithAgent_Truncated(t *testing.T) {
	c := newRequestContext(t, "10.1.2.3:5555", map[string]string{
		"User-Agent": strings.Repeat("x", 300),
	})
	identity := IdentityWithAgent(c, 100)
	require.Len(t, identity, 100)
	require.True(t, strings.HasPrefix(identity, "10.1.2.3-"))
}
