package repository

import (
	"github.com/architect/lostfound/internal/common/database"
	"github.com/architect/lostfound/internal/common/errors"
	"github.com/architect/lostfound/internal/items/models"
	"github.com/architect/lostfound/internal/items/query"
	"gorm.io/gorm"
)

// List retrieves items matching the filter set, newest first.
func List(f query.Filters) ([]*models.Item, error) {
	q, args := query.ListQuery(f)

	var items []*models.Item
	result := database.DB.Raw(q, args...).Scan(&items)
	if result.Error != nil {
		return nil, errors.Internal("failed to fetch items", result.Error.Error())
	}
	if items == nil {
		items = []*models.Item{}
	}
	return items, nil
}

// GetByID retrieves a single item.
func GetByID(id string) (*models.Item, error) {
	var item models.Item
	result := database.DB.Where("id = ?", id).First(&item)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return nil, errors.NotFound("item")
		}
		return nil, errors.Internal("failed to fetch item", result.Error.Error())
	}
	return &item, nil
}

// Create persists a new item. The ID and creation timestamp are assigned
// by the storage layer.
func Create(item *models.Item) error {
	result := database.DB.Create(item)
	if result.Error != nil {
		return errors.Internal("failed to add item", result.Error.Error())
	}
	return nil
}

// Update applies an already-validated update set to one item and returns
// the updated record. The caller must have reduced the set to the
// mutable-field whitelist; unknown keys never reach SQL regardless.
func Update(id string, updates map[string]interface{}) (*models.Item, error) {
	q, args, err := query.UpdateQuery(id, updates)
	if err != nil {
		return nil, errors.BadRequest("no fields provided for update")
	}

	var item models.Item
	result := database.DB.Raw(q, args...).Scan(&item)
	if result.Error != nil {
		return nil, errors.Internal("failed to update item", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return nil, errors.NotFound("item")
	}
	return &item, nil
}

// Delete removes an item.
func Delete(id string) error {
	result := database.DB.Delete(&models.Item{}, "id = ?", id)
	if result.Error != nil {
		return errors.Internal("failed to delete item", result.Error.Error())
	}
	if result.RowsAffected == 0 {
		return errors.NotFound("item")
	}
	return nil
}
