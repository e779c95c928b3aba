package handlers

import (
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/internal/common/middleware"
	"github.com/architect/lostfound/internal/items/models"
	"github.com/architect/lostfound/internal/items/policy"
	"github.com/architect/lostfound/internal/items/query"
	"github.com/architect/lostfound/internal/items/repository"
	"github.com/gin-gonic/gin"
)

// ListItems returns items matching the optional query-parameter filters.
// Unrecognized query parameters are ignored.
func ListItems(c *gin.Context) {
	filters := query.Filters{
		Status:   c.Query("status"),
		Category: c.Query("category"),
		Location: c.Query("location"),
		Date:     c.Query("date"),
	}

	items, err := repository.List(filters)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, items)
}

// GetItem returns a single item by identifier.
func GetItem(c *gin.Context) {
	item, err := repository.GetByID(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, item)
}

// CreateItem creates a new item. Creation is open to anonymous callers;
// when a verified identity is present its email is recorded as the owner.
func CreateItem(c *gin.Context) {
	var req models.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body"))
		return
	}

	if err := policy.ValidateCreate(req); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	item := &models.Item{
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Category:    req.Category,
		Location:    req.Location,
		Date:        req.Date,
		ContactInfo: req.ContactInfo,
		ImageURL:    req.ImageURL,
	}

	if identity, ok := middleware.IdentityFromContext(c); ok {
		item.CreatedBy = identity.Email
	}

	if err := repository.Create(item); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(201, item)
}

// UpdateItem applies a field-wise update subject to the ownership policy.
// All authorization and validation happens before any write is issued.
func UpdateItem(c *gin.Context) {
	identity, ok := middleware.IdentityFromContext(c)
	if !ok {
		middleware.JSONErrorResponse(c, errors.Unauthorized("authorization token missing"))
		return
	}

	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		middleware.JSONErrorResponse(c, errors.BadRequest("invalid request body"))
		return
	}
	if len(updates) == 0 {
		middleware.JSONErrorResponse(c, errors.BadRequest("no fields provided for update"))
		return
	}

	existing, err := repository.GetByID(c.Param("id"))
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if err := policy.CanMutate(identity, existing.CreatedBy); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	if err := policy.ValidateUpdate(updates); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	updated, err := repository.Update(existing.ID, updates)
	if err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, updated)
}

// DeleteItem removes an item. The admin-only gate has already run;
// no ownership check applies to deletion.
func DeleteItem(c *gin.Context) {
	if err := repository.Delete(c.Param("id")); err != nil {
		middleware.JSONErrorResponse(c, err)
		return
	}

	c.JSON(200, gin.H{"message": "item deleted successfully"})
}
