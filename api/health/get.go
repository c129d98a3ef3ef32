package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Get handles health check requests
func Get() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "ok",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	}
}
