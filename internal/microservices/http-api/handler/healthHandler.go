package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"moviehub/internal/logging"
)

// Check pings one dependency.
type Check func(ctx context.Context) error

type HealthHandler struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewHealthHandler takes named dependency checks, e.g. "database" and "redis".
// A nil check is skipped and reported as "disabled".
func NewHealthHandler(checks map[string]Check) *HealthHandler {
	return &HealthHandler{checks: checks, timeout: 2 * time.Second}
}

// Check handles GET /check-conn
func (h *HealthHandler) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), h.timeout)
	defer cancel()

	status := http.StatusOK
	deps := make(map[string]string, len(h.checks))
	for name, check := range h.checks {
		if check == nil {
			deps[name] = "disabled"
			continue
		}
		if err := check(ctx); err != nil {
			logging.FromContext(ctx).Warn("dependency check failed", "dependency", name, "error", err)
			deps[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		deps[name] = "up"
	}

	msg := "API is alive"
	if status != http.StatusOK {
		msg = "API is degraded"
	}
	c.JSON(status, gin.H{
		"message":      msg,
		"dependencies": deps,
	})
}
