// Package handler contains the HTTP handlers for the service routes.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/domain"
)

// AppHandler serves the welcome and info documents. Everything it returns is
// fixed at construction.
type AppHandler struct {
	welcome domain.WelcomeMessage
}

// NewAppHandler creates an AppHandler for an instance running on hostname.
func NewAppHandler(version, environment, hostname string) *AppHandler {
	return &AppHandler{
		welcome: domain.NewWelcomeMessage(version, environment, hostname),
	}
}

// Welcome handles GET /.
func (h *AppHandler) Welcome(c *gin.Context) {
	c.JSON(http.StatusOK, h.welcome)
}

// Info handles GET /api/info.
func (h *AppHandler) Info(c *gin.Context) {
	c.JSON(http.StatusOK, domain.NewAppInfo())
}

// NotFound answers requests that match no route.
func NotFound(c *gin.Context) {
	c.JSON(http.StatusNotFound, gin.H{
		"error": "not found",
		"code":  "NOT_FOUND",
		"path":  c.Request.URL.Path,
	})
}
