package controllers

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/pratapadwait/pratapliving/constants"
	"github.com/pratapadwait/pratapliving/dto"
	apperrors "github.com/pratapadwait/pratapliving/errors"
	"github.com/pratapadwait/pratapliving/response"
	"github.com/pratapadwait/pratapliving/services"
	"github.com/pratapadwait/pratapliving/services/logger"
)

type PropertyController struct {
	service *services.PropertyService
	logger  logger.Logger
}

func NewPropertyController(service *services.PropertyService, l logger.Logger) *PropertyController {
	if l == nil {
		l = logger.NewDefaultLogger(logger.InfoLevel)
	}
	return &PropertyController{service: service, logger: l}
}

// GetProperties handles GET /api/properties. Optional query params:
// query (substring on name/location), type (category tag or "all"),
// price (budget/mid/luxury/all) and search (fuzzy ranking).
func (ctl *PropertyController) GetProperties(c *gin.Context) {
	properties, err := ctl.service.List(c.Request.Context())
	if err != nil {
		ctl.logger.Error("fetching properties: %v", err)
		response.ServerError(c, "Failed to fetch properties")
		return
	}

	query := c.Query("query")
	category := c.DefaultQuery("type", constants.CategoryAll)
	bracket := c.DefaultQuery("price", constants.PriceBracketAll)
	filtered := services.FilterProperties(properties, query, category, bracket)

	if search := c.Query("search"); search != "" {
		cm := services.NewLocationMatcher(properties)
		filtered = services.SearchProperties(search, filtered, cm)
	}

	response.OK(c, filtered)
}

// GetFeaturedProperties handles GET /api/properties/featured.
func (ctl *PropertyController) GetFeaturedProperties(c *gin.Context) {
	properties, err := ctl.service.GetFeatured(c.Request.Context())
	if err != nil {
		ctl.logger.Error("fetching featured properties: %v", err)
		response.ServerError(c, "Failed to fetch properties")
		return
	}
	response.OK(c, properties)
}

// GetProperty handles GET /api/properties/:id. The key is tried as an
// id first and as a slug second, so ids always win.
func (ctl *PropertyController) GetProperty(c *gin.Context) {
	property, err := ctl.service.Resolve(c.Request.Context(), c.Param("id"))
	if errors.Is(err, apperrors.ErrNotFound) {
		response.NotFound(c, "Property not found")
		return
	}
	if err != nil {
		ctl.logger.Error("fetching property %s: %v", c.Param("id"), err)
		response.ServerError(c, "Failed to fetch property")
		return
	}
	response.OK(c, property)
}

// CreateProperty handles POST /api/properties.
func (ctl *PropertyController) CreateProperty(c *gin.Context) {
	var req dto.PropertyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	property, err := ctl.service.Create(c.Request.Context(), &req)
	if err != nil {
		ctl.logger.Error("creating property: %v", err)
		respondError(c, err, "Property not found", "Failed to create property")
		return
	}
	response.Created(c, property)
}

// UpdateProperty handles PUT /api/properties/:id. Partial: omitted
// fields keep their stored values.
func (ctl *PropertyController) UpdateProperty(c *gin.Context) {
	var patch dto.PropertyUpdateRequest
	if err := c.ShouldBindJSON(&patch); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	property, err := ctl.service.Update(c.Request.Context(), c.Param("id"), &patch)
	if err != nil {
		ctl.logger.Error("updating property %s: %v", c.Param("id"), err)
		respondError(c, err, "Property not found", "Failed to update property")
		return
	}
	response.OK(c, property)
}

// DeleteProperty handles DELETE /api/properties/:id. Deleting an absent
// id answers 404, not an error; deleting twice gives 200 then 404.
func (ctl *PropertyController) DeleteProperty(c *gin.Context) {
	deleted, err := ctl.service.Delete(c.Request.Context(), c.Param("id"))
	if err != nil {
		ctl.logger.Error("deleting property %s: %v", c.Param("id"), err)
		response.ServerError(c, "Failed to delete property")
		return
	}
	if !deleted {
		response.NotFound(c, "Property not found")
		return
	}
	response.OK(c, gin.H{"message": "Property deleted"})
}
