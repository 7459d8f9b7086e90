package health

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/emeka-osuagwu/user-post-ui/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthUnavailable(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(pingFunc(func(context.Context) error {
		return errors.New("database is closed")
	}), middleware.NewErrorMonitor())

	router := gin.New()
	router.GET("/health", handler.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), "database is closed")
}

func TestHealthOK(t *testing.T) {
	gin.SetMode(gin.TestMode)
	handler := NewHealthHandler(pingFunc(func(context.Context) error { return nil }), nil)

	router := gin.New()
	router.GET("/health", handler.Health)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"status":"ok","errors":{}}`, w.Body.String())
}
