package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/killallgit/songid/api/types"
)

// Server represents the HTTP server
type Server struct {
	engine     *gin.Engine
	httpServer *http.Server

	// Dependencies for handlers
	dependencies *types.Dependencies
}

// NewServer creates a new HTTP server
func NewServer(address string, deps *types.Dependencies) *Server {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(CORS())

	if deps != nil && deps.MaxUploadSize > 0 {
		engine.Use(RequestSizeLimit(deps.MaxUploadSize))
	}

	RegisterRoutes(engine, deps)

	return &Server{
		engine:       engine,
		dependencies: deps,
		httpServer: &http.Server{
			Addr:           address,
			Handler:        engine,
			ReadTimeout:    30 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    30 * time.Second,
			MaxHeaderBytes: 1 << 20, // 1 MB
		},
	}
}

// Engine returns the underlying gin engine (for testing)
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

// Start begins listening for requests. It blocks until the server stops.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
