//go:build unit

package middleware_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"racing-ticket-desk/internal/handler/httperr"
	"racing-ticket-desk/internal/handler/middleware"
	"racing-ticket-desk/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCORS_AllowsOperatorHeader(t *testing.T) {
	gin.SetMode(gin.TestMode)
	cfg := config.NewTestConfig().CORS
	cfg.AllowHeaders = []string{"Content-Type"}

	router := gin.New()
	router.Use(middleware.NewCORSMiddleware(cfg))
	router.GET("/api/dashboard", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboard", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	req.Header.Set("Access-Control-Request-Headers", "X-Desk-Operator")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Less(t, rec.Code, 300)
	allowed := strings.ToLower(rec.Header().Get("Access-Control-Allow-Headers"))
	assert.Contains(t, allowed, "x-desk-operator")
}

func TestLoggingMiddleware_RecordsOperatorAndRoute(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	var requestID string
	router := gin.New()
	router.Use(middleware.LoggingMiddleware(logger, config.NewTestConfig().Log))
	router.GET("/api/customers/:id", func(c *gin.Context) {
		requestID = middleware.GetRequestID(c)
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/customers/5", nil)
	req.Header.Set(middleware.OperatorHeader, "counter-2")
	router.ServeHTTP(httptest.NewRecorder(), req)

	require.NotEmpty(t, requestID)
	out := buf.String()
	assert.Contains(t, out, "request_id="+requestID)
	assert.Contains(t, out, "operator=counter-2")
	assert.Contains(t, out, "route=/api/customers/:id")
	assert.Contains(t, out, "status_code=200")
}

func TestErrorHandler_ReplaysPublicError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ErrorHandler())
	router.GET("/api/bookings", func(c *gin.Context) {
		_ = c.Error(gin.Error{
			Err:  errors.New("unknown customer"),
			Type: gin.ErrorTypePublic,
			Meta: httperr.NewResponse(c, http.StatusNotFound, "Customer not found", nil),
		})
	})

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/bookings", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), `"code":"NOT_FOUND"`)
	assert.Contains(t, rec.Body.String(), "Customer not found")
}
