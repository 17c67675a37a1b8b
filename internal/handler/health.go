package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/domain"
)

// HealthHandler answers the orchestrator's liveness probe.
type HealthHandler struct {
	version string
	now     func() time.Time
}

// NewHealthHandler creates a HealthHandler that reports the given version.
func NewHealthHandler(version string) *HealthHandler {
	return &HealthHandler{version: version, now: time.Now}
}

// HealthCheck returns service health status.
func (h *HealthHandler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, domain.NewHealthStatus(h.version, h.now()))
}
