package identify

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/songid/api/types"
)

// RegisterRoutes registers identification routes
func RegisterRoutes(group *gin.RouterGroup, deps *types.Dependencies) {
	group.POST("/identify", Post(deps))
}
