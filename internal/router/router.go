package router

import (
	"github.com/gin-gonic/gin"

	"invoscan/internal/handler"
	"invoscan/internal/middleware"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	allowedOrigins []string,
	extractH *handler.ExtractHandler,
	profileH *handler.ProfileHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health check
	r.GET("/healthz", healthH.Liveness)

	v1 := r.Group("/api/v1")

	v1.POST("/extract", extractH.Extract)
	v1.POST("/extract/export", extractH.Export)
	v1.GET("/profiles", profileH.List)

	return r
}
