package user

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hagio-gakuto/user-directory/api/middleware"
	"github.com/hagio-gakuto/user-directory/api/response"
	userapp "github.com/hagio-gakuto/user-directory/application/user"
)

// Controller User controller
type Controller struct {
	userService *userapp.ApplicationService
}

// NewController Create user controller
func NewController(userService *userapp.ApplicationService) *Controller {
	return &Controller{
		userService: userService,
	}
}

// RegisterRoutes Register user routes
func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	userGroup := router.Group("/users")
	{
		userGroup.GET("", c.ListUsers)
		userGroup.GET("/search/detail", c.SearchUsers)
		userGroup.GET("/export", c.ExportUsers)
		userGroup.GET("/:id", c.GetUser)
		userGroup.POST("", c.CreateUser)
		userGroup.PUT("/:id", c.UpdateUser)
		userGroup.DELETE("/:id", c.DeleteUser)
	}
}

func intQuery(ctx *gin.Context, key string) (*int, bool) {
	raw := ctx.Query(key)
	if raw == "" {
		return nil, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return nil, false
	}
	return &n, true
}

// ListUsers Paginated default listing
func (c *Controller) ListUsers(ctx *gin.Context) {
	page, ok := intQuery(ctx, "page")
	if !ok {
		response.HandleError(ctx, nil, "page must be a positive integer", http.StatusBadRequest)
		return
	}
	pageSize, ok := intQuery(ctx, "pageSize")
	if !ok {
		response.HandleError(ctx, nil, "pageSize must be a positive integer", http.StatusBadRequest)
		return
	}

	listing, err := c.userService.ListUsers(ctx.Request.Context(), page, pageSize)
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandlePaginated(ctx, listing.Users,
		response.NewPagination(listing.Page, listing.PageSize, listing.Total),
		"Users retrieved successfully")
}

// searchQuery decodes the shared filter parameters. The gender key
// present with an empty value is an explicit-null filter ("only users
// without a gender"); an absent key leaves gender unconstrained.
func searchQuery(ctx *gin.Context) (id, search, role string, gender *string, genderSet bool) {
	id = ctx.Query("id")
	search = ctx.Query("search")
	role = ctx.Query("role")

	if ctx.Request.URL.Query().Has("gender") {
		genderSet = true
		if raw := ctx.Query("gender"); raw != "" {
			gender = &raw
		}
	}
	return id, search, role, gender, genderSet
}

// SearchUsers Filtered paginated listing
func (c *Controller) SearchUsers(ctx *gin.Context) {
	page, ok := intQuery(ctx, "page")
	if !ok {
		response.HandleError(ctx, nil, "page must be a positive integer", http.StatusBadRequest)
		return
	}
	pageSize, ok := intQuery(ctx, "pageSize")
	if !ok {
		response.HandleError(ctx, nil, "pageSize must be a positive integer", http.StatusBadRequest)
		return
	}

	id, search, role, gender, genderSet := searchQuery(ctx)
	listing, err := c.userService.SearchUsers(ctx.Request.Context(), userapp.SearchUsersRequest{
		ID:        id,
		Search:    search,
		Role:      role,
		Gender:    gender,
		GenderSet: genderSet,
		Page:      page,
		PageSize:  pageSize,
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandlePaginated(ctx, listing.Users,
		response.NewPagination(listing.Page, listing.PageSize, listing.Total),
		"Users retrieved successfully")
}

// ExportUsers Full listing without pagination, for file generation
func (c *Controller) ExportUsers(ctx *gin.Context) {
	id, search, role, gender, genderSet := searchQuery(ctx)
	users, err := c.userService.ExportUsers(ctx.Request.Context(), userapp.ExportUsersRequest{
		ID:        id,
		Search:    search,
		Role:      role,
		Gender:    gender,
		GenderSet: genderSet,
	})
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, users, "Users exported successfully")
}

// GetUser Get user information
func (c *Controller) GetUser(ctx *gin.Context) {
	user, err := c.userService.GetUser(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "User retrieved successfully")
}

// CreateUser Create user
func (c *Controller) CreateUser(ctx *gin.Context) {
	var req userapp.CreateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	user, err := c.userService.CreateUser(ctx.Request.Context(), req, middleware.ActorID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleCreated(ctx, user, "User created successfully")
}

// UpdateUser Full-replace update
func (c *Controller) UpdateUser(ctx *gin.Context) {
	var req userapp.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		response.HandleError(ctx, err, "Invalid request parameters", http.StatusBadRequest)
		return
	}

	user, err := c.userService.UpdateUser(ctx.Request.Context(), ctx.Param("id"), req, middleware.ActorID(ctx))
	if err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleSuccess(ctx, user, "User updated successfully")
}

// DeleteUser Soft delete
func (c *Controller) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx.Request.Context(), ctx.Param("id"), middleware.ActorID(ctx)); err != nil {
		response.HandleAppError(ctx, err)
		return
	}

	response.HandleNoContent(ctx)
}
