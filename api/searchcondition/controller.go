package searchcondition

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hagio-gakuto/user-directory/api/middleware"
	"github.com/hagio-gakuto/user-directory/api/response"
	conditionapp "github.com/hagio-gakuto/user-directory/application/searchcondition"
)

// Controller Search condition controller
type Controller struct {
	conditionService *conditionapp.ApplicationService
}

// NewController Create search condition controller
func NewController(conditionService *conditionapp.ApplicationService) *Controller {
	return &Controller{
		conditionService: conditionService,
	}
}

// RegisterRoutes Register search condition routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	conditionGroup := router.Group("/search-conditions")
	{
		conditionGroup.GET("", c.ListSearchConditions)
		conditionGroup.POST("", c.CreateSearchCondition)
		conditionGroup.PUT("/:id", c.RenameSearchCondition)
		conditionGroup.DELETE("/:id", c.DeleteSearchCondition)
	}
}

// ListSearchConditions List active conditions, optionally by form
func (c *Controller) ListSearchConditions(ctx *gin.Context) {
	conditions, err := c.conditionService.ListSearchConditions(ctx.Request.Context(), ctx.Query("formType"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, conditions, "Search conditions retrieved successfully")
}

// CreateSearchCondition Save a new condition
func (c *Controller) CreateSearchCondition(ctx *gin.Context) {
	var req conditionapp.CreateSearchConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	condition, err := c.conditionService.CreateSearchCondition(ctx.Request.Context(), req, middleware.ActorID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, condition, "Search condition created successfully")
}

// RenameSearchCondition Rename an existing condition
func (c *Controller) RenameSearchCondition(ctx *gin.Context) {
	var req conditionapp.RenameSearchConditionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	condition, err := c.conditionService.RenameSearchCondition(ctx.Request.Context(), ctx.Param("id"), req, middleware.ActorID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, condition, "Search condition updated successfully")
}

// DeleteSearchCondition Soft delete
func (c *Controller) DeleteSearchCondition(ctx *gin.Context) {
	if err := c.conditionService.DeleteSearchCondition(ctx.Request.Context(), ctx.Param("id"), middleware.ActorID(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
