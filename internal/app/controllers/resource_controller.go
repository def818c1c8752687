package controllers

import (
	"net/http"

	"github.com/akhilduddi/college-complaints-management-system/internal/app/models/dto"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/repositories"
	"github.com/akhilduddi/college-complaints-management-system/internal/app/services"
	"github.com/akhilduddi/college-complaints-management-system/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ResourceController handles inventory resource endpoints
type ResourceController struct {
	resourceService services.ResourceService
}

// NewResourceController creates a new ResourceController
func NewResourceController(resourceService services.ResourceService) *ResourceController {
	return &ResourceController{
		resourceService: resourceService,
	}
}

// ListResources lists inventory resources
// @Summary List resources
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param name query string false "Case-insensitive name search"
// @Param item_id query string false "Exact item id"
// @Success 200 {object} dto.APIResponse{data=[]dto.ResourceResponse} "Resources, newest first"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [get]
func (c *ResourceController) ListResources(ctx *gin.Context) {
	var q dto.ResourceListQuery
	if !middleware.BindQuery(ctx, &q) {
		return
	}

	list, err := c.resourceService.ListResources(ctx.Request.Context(), repositories.ResourceFilter{Name: q.Name, ItemID: q.ItemID})
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewResourceResponses(list)))
}

// CreateResource adds an inventory resource
// @Summary Create a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.ResourceRequest true "Resource data"
// @Success 201 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource created successfully"
// @Failure 400 {object} dto.ErrorResponse "Name and item_id are required fields"
// @Failure 401 {object} dto.ErrorResponse "No token provided"
// @Failure 403 {object} dto.ErrorResponse "Invalid token"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /resources [post]
func (c *ResourceController) CreateResource(ctx *gin.Context) {
	var req dto.ResourceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resource, err := c.resourceService.CreateResource(ctx.Request.Context(), &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.NewMessageResponse("Resource created successfully", dto.NewResourceResponse(resource)))
}

// GetResource returns one inventory resource
// @Summary Get a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource"
// @Failure 400 {object} dto.ErrorResponse "Invalid resource ID"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [get]
func (c *ResourceController) GetResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "resource")
	if !ok {
		return
	}

	resource, err := c.resourceService.GetResourceByID(ctx.Request.Context(), id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewAPIResponse(dto.NewResourceResponse(resource)))
}

// UpdateResource replaces an inventory resource
// @Summary Update a resource
// @Tags resources
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Param request body dto.ResourceRequest true "Resource data"
// @Success 200 {object} dto.APIResponse{data=dto.ResourceResponse} "Resource updated successfully"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [put]
func (c *ResourceController) UpdateResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "resource")
	if !ok {
		return
	}
	var req dto.ResourceRequest
	if !middleware.BindJSON(ctx, &req) {
		return
	}

	resource, err := c.resourceService.UpdateResource(ctx.Request.Context(), id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resource updated successfully", dto.NewResourceResponse(resource)))
}

// DeleteResource removes an inventory resource
// @Summary Delete a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path int true "Resource ID" Format(int64) minimum(1)
// @Success 200 {object} dto.APIResponse "Resource deleted successfully"
// @Failure 403 {object} dto.ErrorResponse "Not an admin"
// @Failure 404 {object} dto.ErrorResponse "Resource not found"
// @Router /resources/{id} [delete]
func (c *ResourceController) DeleteResource(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id", "resource")
	if !ok {
		return
	}

	if err := c.resourceService.DeleteResource(ctx.Request.Context(), id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.NewMessageResponse("Resource deleted successfully", nil))
}
