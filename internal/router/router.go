package router

import (
	"time"

	"github.com/causeconnect-dev/causeconnect/internal/graph"
	"github.com/causeconnect-dev/causeconnect/internal/handlers"
	"github.com/causeconnect-dev/causeconnect/internal/middleware"
	"github.com/causeconnect-dev/causeconnect/internal/types"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(schema *graph.Schema) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestLogger())
	r.Use(gin.Recovery())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Identity is attached when a valid bearer token is present; resolvers
	// enforce authentication themselves so signup and login stay public.
	r.Use(middleware.AuthMiddleware())

	r.POST("/graphql", handlers.GraphQL(schema))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)
	}

	return r
}
