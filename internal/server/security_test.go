package server

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestRateLimiter_Allow(t *testing.T) {
	t.Parallel()

	rl := NewRateLimiter(3, 100, time.Minute)

	ip := "192.168.1.1"
	assert.True(t, rl.Allow(ip))
	assert.True(t, rl.Allow(ip))
	assert.True(t, rl.Allow(ip))

	// 第 4 次超过每秒限制，触发封禁
	assert.False(t, rl.Allow(ip))
	assert.True(t, rl.IsBanned(ip))

	// 其他 IP 不受影响
	assert.True(t, rl.Allow("192.168.1.2"))
}

func TestOriginChecker(t *testing.T) {
	t.Parallel()

	oc := NewOriginChecker([]string{"https://example.com"})

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.Header.Set("Origin", "https://example.com")
	assert.True(t, oc.Check(req))

	req.Header.Set("Origin", "https://evil.com")
	assert.False(t, oc.Check(req))

	// 无 Origin 头视为本地客户端
	req.Header.Del("Origin")
	assert.True(t, oc.Check(req))

	// 通配符允许所有来源
	all := NewOriginChecker([]string{"*"})
	req.Header.Set("Origin", "https://anywhere.dev")
	assert.True(t, all.Check(req))
}

func TestMessageRateLimiter(t *testing.T) {
	t.Parallel()

	ml := NewMessageRateLimiter(4)

	for i := range 4 {
		allowed, _ := ml.AllowMessage("c1")
		assert.True(t, allowed, "message %d should be allowed", i)
	}

	allowed, warning := ml.AllowMessage("c1")
	assert.False(t, allowed)
	assert.True(t, warning)
	assert.Equal(t, 1, ml.GetWarningCount("c1"))

	ml.RemoveClient("c1")
	assert.Equal(t, 0, ml.GetWarningCount("c1"))
}

func TestGetClientIP(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/ws", nil)
	req.RemoteAddr = "10.0.0.1:12345"
	assert.Equal(t, "10.0.0.1", GetClientIP(req))

	req.Header.Set("X-Real-IP", "2.2.2.2")
	assert.Equal(t, "2.2.2.2", GetClientIP(req))

	req.Header.Set("X-Forwarded-For", "1.1.1.1, 9.9.9.9")
	assert.Equal(t, "1.1.1.1", GetClientIP(req))
}
