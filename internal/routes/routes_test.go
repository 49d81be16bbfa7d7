package routes

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"

	"github.com/BruksfildServices01/barber-dashboard/internal/metrics"
	"github.com/BruksfildServices01/barber-dashboard/internal/middleware"
	"github.com/BruksfildServices01/barber-dashboard/internal/session"
)

func newRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)

	reg := prometheus.NewRegistry()
	r := gin.New()
	RegisterRoutes(r, Deps{
		Sessions:     session.NewManager("secret", time.Hour, session.NewMemoryStore()),
		Metrics:      metrics.New("barber_dashboard", reg),
		Gatherer:     reg,
		MetricsPath:  "/metrics",
		LoginLimiter: middleware.NewRateLimiter(0.001, 1),
	})
	return r
}

func serve(r http.Handler, method, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader("{}"))
	req.Header.Set("Content-Type", "application/json")
	req.RemoteAddr = "192.0.2.1:5000"
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestOperationalRoutes(t *testing.T) {
	r := newRouter()

	assert.Equal(t, http.StatusOK, serve(r, http.MethodGet, "/health").Code)

	w := serve(r, http.MethodGet, "/metrics")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "barber_dashboard_http_requests_total")
}

func TestPrivateRoutesRequireSession(t *testing.T) {
	r := newRouter()

	for _, path := range []string{"/api/me", "/api/me/bookings", "/api/me/bookings/today", "/api/me/booking-intent"} {
		assert.Equal(t, http.StatusUnauthorized, serve(r, http.MethodGet, path).Code, path)
	}
}

func TestLoginIsRateLimited(t *testing.T) {
	r := newRouter()

	// the first attempt reaches the handler and fails validation
	assert.Equal(t, http.StatusBadRequest, serve(r, http.MethodPost, "/api/auth/login").Code)
	assert.Equal(t, http.StatusTooManyRequests, serve(r, http.MethodPost, "/api/auth/login").Code)
}
