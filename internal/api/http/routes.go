package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers all intake classification routes
func RegisterRoutes(router *gin.Engine, handlers *Handlers) {
	classificationAPI := router.Group("/api/v1/classifications")
	{
		classificationAPI.POST("", handlers.ClassifyPackage())
	}
}
