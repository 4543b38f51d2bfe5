package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Aanjaneya24/me-api-playground/pkg/logger"
)

// NewRouter mounts the API surface. All data routes live under /api, mirroring
// the shape the browser client expects.
func NewRouter(profileHandler *ProfileHandler, searchHandler *SearchHandler, log logger.Logger, allowOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(RequestLogger(log))
	router.Use(ErrorHandler(log))

	corsConfig := cors.DefaultConfig()
	if len(allowOrigins) == 1 && allowOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowOrigins
	}
	router.Use(cors.New(corsConfig))

	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "Welcome to Me-API Playground",
			"version": "1.0.0",
			"endpoints": gin.H{
				"profile": gin.H{
					"GET /api/profile":  "Get complete profile",
					"POST /api/profile": "Create new profile",
					"PUT /api/profile":  "Update profile",
				},
				"queries": gin.H{
					"GET /api/skills":            "Get all skills",
					"GET /api/projects?q=search": "Search projects",
					"GET /api/search?q=search":   "Global search",
				},
				"health": gin.H{
					"GET /api/health": "Health check",
				},
			},
		})
	})

	api := router.Group("/api")
	{
		api.GET("/profile", profileHandler.GetProfile)
		api.POST("/profile", profileHandler.CreateProfile)
		api.PUT("/profile", profileHandler.UpdateProfile)

		api.GET("/skills", searchHandler.ListSkills)
		api.GET("/projects", searchHandler.ListProjects)
		api.GET("/search", searchHandler.GlobalSearch)

		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "OK", "message": "API is healthy"})
		})
	}

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Endpoint not found"})
	})

	return router
}
