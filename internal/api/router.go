package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/omerga/whereabouts-backend-go/internal/config"
	"github.com/omerga/whereabouts-backend-go/internal/handler"
	"github.com/omerga/whereabouts-backend-go/internal/middleware"
)

// Handlers collects the handlers the router wires up.
type Handlers struct {
	Query  *handler.QueryHandler
	Person *handler.PersonHandler
	Sample *handler.SampleHandler
	Auth   *handler.AuthHandler
}

// SetupRouter builds the gin engine with middleware and routes
func SetupRouter(cfg *config.Config, h Handlers) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.Logger())

	// CORS for the map frontend
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	r.GET("/", h.Person.Info)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Whereabouts Backend API is running",
		})
	})

	api := r.Group("/api/v1")
	{
		// The query endpoint fans out to the AI service; keep it rate limited
		api.POST("/query", middleware.RateLimit(10, time.Minute), h.Query.Query)

		api.GET("/persons", h.Person.GetPersons)

		scene := api.Group("/scene")
		{
			scene.GET("", h.Query.GetScene)
			scene.POST("/visibility", h.Query.ToggleVisibility)
			scene.POST("/mode", h.Query.SetMode)
		}

		api.POST("/auth/login", h.Auth.Login)

		samples := api.Group("/samples")
		{
			samples.GET("", h.Sample.GetSamples)
			samples.POST("", middleware.Auth(cfg.JWTSecret), h.Sample.IngestSamples)
		}
	}

	return r
}
