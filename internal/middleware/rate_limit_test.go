// internal/middleware/rate_limit_test.go
package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/artmint/artmint-backend/internal/config"
)

func limitedEngine(limit gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(limit)
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusOK) })
	return r
}

func ping(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	req.RemoteAddr = remoteAddr
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestAuthRateLimitEnforcesQuota(t *testing.T) {
	r := limitedEngine(AuthRateLimit(config.RateLimitConfig{AuthPerMinute: 2}))

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:1234"))
}

func TestRateLimitIsPerClient(t *testing.T) {
	r := limitedEngine(AuthRateLimit(config.RateLimitConfig{AuthPerMinute: 1}))

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:1234"))

	// A different client has its own bucket.
	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.2:1234"))
}

func TestRateLimitZeroQuotaDisables(t *testing.T) {
	r := limitedEngine(GeneralRateLimit(config.RateLimitConfig{}))

	for i := 0; i < 25; i++ {
		assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	}
}

func TestUploadRateLimitEnforcesQuota(t *testing.T) {
	r := limitedEngine(UploadRateLimit(config.RateLimitConfig{UploadPerMinute: 1}))

	assert.Equal(t, http.StatusOK, ping(r, "10.0.0.1:1234"))
	assert.Equal(t, http.StatusTooManyRequests, ping(r, "10.0.0.1:1234"))
}
