package me

import (
	"github.com/gin-gonic/gin"

	"github.com/hagio-gakuto/user-directory/api/middleware"
	"github.com/hagio-gakuto/user-directory/api/response"
	meapp "github.com/hagio-gakuto/user-directory/application/me"
)

// Controller My-page controller
type Controller struct {
	meService *meapp.ApplicationService
}

// NewController Create my-page controller
func NewController(meService *meapp.ApplicationService) *Controller {
	return &Controller{
		meService: meService,
	}
}

// RegisterRoutes Register my-page routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	router.GET("/me", c.GetMe)
}

// GetMe Resolve the acting identity to its own profile
func (c *Controller) GetMe(ctx *gin.Context) {
	profile, err := c.meService.GetProfile(ctx.Request.Context(), middleware.ActorID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, profile, "Profile retrieved successfully")
}
