package health

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes registers health check routes
func RegisterRoutes(engine *gin.Engine) {
	engine.GET("/health", Get())
}
