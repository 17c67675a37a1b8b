package api

import (
	"github.com/gin-gonic/gin"

	"github.com/Kartheepan1991/eks-setup-terraform/internal/handler"
)

// SetupRoutes configures the application routes.
// Health and metrics routes are registered by the server builder.
func SetupRoutes(router *gin.Engine, appHandler *handler.AppHandler) {
	router.GET("/", appHandler.Welcome)
	router.HEAD("/", appHandler.Welcome)

	api := router.Group("/api")
	api.GET("/info", appHandler.Info)
	api.HEAD("/info", appHandler.Info)
}
