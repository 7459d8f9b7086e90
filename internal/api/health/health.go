package health

import (
	"context"
	"net/http"
	"strconv"

	"github.com/emeka-osuagwu/user-post-ui/internal/errors"
	"github.com/emeka-osuagwu/user-post-ui/internal/middleware"

	"github.com/gin-gonic/gin"
)

// Pinger 检查存储是否可用
type Pinger interface {
	Ping(ctx context.Context) error
}

type HealthHandler struct {
	pinger  Pinger
	monitor *middleware.ErrorMonitor
}

func NewHealthHandler(pinger Pinger, monitor *middleware.ErrorMonitor) *HealthHandler {
	return &HealthHandler{pinger: pinger, monitor: monitor}
}

// Health GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pinger.Ping(c.Request.Context()); err != nil {
		errors.HandleError(c, errors.Wrap(errors.ErrUnavailable, "数据库不可用", err))
		return
	}

	counts := make(map[string]int)
	if h.monitor != nil {
		for code, n := range h.monitor.GetErrorCounts() {
			counts[strconv.Itoa(int(code))] = n
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"errors": counts,
	})
}
