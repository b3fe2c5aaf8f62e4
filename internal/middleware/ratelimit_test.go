package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func rateLimitedRouter(limit rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)

	r := gin.New()
	r.Use(RateLimitMiddleware(limit, burst))
	r.POST("/login", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r
}

func hit(r *gin.Engine, remoteAddr string) int {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = remoteAddr

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitMiddleware_RejectsBurstBeyondLimit(t *testing.T) {
	r := rateLimitedRouter(rate.Every(time.Minute), 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1:5000"))
	}

	// rajada esgotada, próxima requisição cai no limite
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1:5000"))
}

func TestRateLimitMiddleware_LimitsPerIP(t *testing.T) {
	r := rateLimitedRouter(rate.Every(time.Minute), 1)

	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.1:5000"))
	assert.Equal(t, http.StatusTooManyRequests, hit(r, "10.0.0.1:5000"))

	// outro IP tem o próprio balde
	assert.Equal(t, http.StatusOK, hit(r, "10.0.0.2:5000"))
}
