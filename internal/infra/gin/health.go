package gin

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/infra/monitoring"
)

// Health route paths.
const (
	HealthPath       = "/health"
	MemoryHealthPath = "/health/memory"
)

// RegisterHealthRoutes installs the health endpoints:
//   - GET /health answered by health
//   - HEAD /health, an empty 200 for load balancers
//   - GET /health/memory with runtime memory statistics
func RegisterHealthRoutes(router gin.IRoutes, health gin.HandlerFunc) {
	router.GET(HealthPath, health)
	router.HEAD(HealthPath, headHealthHandler)
	router.GET(MemoryHealthPath, memoryHealthHandler)
}

func headHealthHandler(c *gin.Context) {
	c.Status(http.StatusOK)
}

func memoryHealthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, monitoring.ReadMemoryHealth())
}
