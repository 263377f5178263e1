package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/palette-dev/palette-picker/internal/handlers"
	"github.com/palette-dev/palette-picker/internal/metrics"
	"github.com/palette-dev/palette-picker/internal/middleware"
	"github.com/palette-dev/palette-picker/internal/types"
)

func NewRouter(database *gorm.DB) *gin.Engine {
	r := gin.New()

	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.RequestLogger())
	r.Use(metrics.Handler())
	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Accept", "X-Requested-With", "X-Request-Id"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	auth := handlers.NewAuthHandler(database)
	projects := handlers.NewProjectHandler(database)
	palettes := handlers.NewPaletteHandler(database)

	r.GET("/", handlers.Root)
	r.GET("/metrics", metrics.Exposer())

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		v1 := api.Group("/v1")
		{
			v1.POST("/users", auth.Login)
			v1.POST("/users/new", auth.Register)

			v1.GET("/users/:user_id/projects", projects.List)
			v1.GET("/users/:user_id/projects/:project_id", projects.Detail)
			v1.POST("/users/projects/new", projects.Create)
			v1.PATCH("/users/projects/:id/edit", projects.Update)
			v1.DELETE("/users/:user_id/projects/:id", projects.Delete)

			v1.GET("/users/:user_id/palettes", palettes.List)
			v1.POST("/users/projects/:project_id/palettes", palettes.Create)
			v1.DELETE("/projects/:project_id/palettes/:palette_id", palettes.Delete)
		}
	}

	return r
}
