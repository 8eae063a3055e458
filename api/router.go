package api

import (
	"github.com/gin-gonic/gin"

	"github.com/hagio-gakuto/user-directory/api/health"
	"github.com/hagio-gakuto/user-directory/api/me"
	"github.com/hagio-gakuto/user-directory/api/middleware"
	"github.com/hagio-gakuto/user-directory/api/searchcondition"
	"github.com/hagio-gakuto/user-directory/api/user"
	"github.com/hagio-gakuto/user-directory/config"
)

// Router Route configuration
type Router struct {
	engine              *gin.Engine
	config              *config.Config
	healthController    *health.Controller
	userController      *user.Controller
	conditionController *searchcondition.Controller
	meController        *me.Controller
}

// NewRouter Create route configuration
func NewRouter(
	cfg *config.Config,
	healthController *health.Controller,
	userController *user.Controller,
	conditionController *searchcondition.Controller,
	meController *me.Controller,
) *Router {
	if cfg.IsDevelopment() {
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()

	// Middleware order matters: the request id must exist before
	// anything logs, and the actor is resolved before any handler runs.
	engine.Use(middleware.RequestIDMiddleware())
	engine.Use(middleware.RecoveryMiddleware())
	engine.Use(middleware.LoggingMiddleware())
	engine.Use(middleware.CORSMiddleware(&cfg.CORS))
	engine.Use(middleware.RateLimitMiddleware(&cfg.Server.RateLimit))
	engine.Use(middleware.ActorMiddleware())

	return &Router{
		engine:              engine,
		config:              cfg,
		healthController:    healthController,
		userController:      userController,
		conditionController: conditionController,
		meController:        meController,
	}
}

// SetupRoutes Set up all routes
func (r *Router) SetupRoutes() {
	apiGroup := r.engine.Group("/api/v1")
	{
		r.healthController.RegisterRoutes(apiGroup)
		r.userController.RegisterRoutes(apiGroup)
		r.conditionController.RegisterRoutes(apiGroup)
		r.meController.RegisterRoutes(apiGroup)
	}

	r.engine.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"name":    r.config.App.Name,
			"version": r.config.App.Version,
			"env":     r.config.App.Env,
			"health":  "/api/v1/health",
		})
	})
}

// GetEngine Get Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
