package api

import (
	"github.com/gin-gonic/gin"

	"github.com/killallgit/songid/api/health"
	identifyapi "github.com/killallgit/songid/api/identify"
	"github.com/killallgit/songid/api/types"
	"github.com/killallgit/songid/api/version"
)

// RegisterRoutes registers all API routes
func RegisterRoutes(engine *gin.Engine, deps *types.Dependencies) {
	// Public routes
	health.RegisterRoutes(engine)
	version.RegisterRoutes(engine)

	engine.NoRoute(NotFoundHandler())

	// API v1 routes
	v1 := engine.Group("/api/v1")
	identifyapi.RegisterRoutes(v1, deps)
}
