package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Status is the closed set of item states.
type Status string

const (
	StatusLost  Status = "Lost"
	StatusFound Status = "Found"
)

// Valid reports whether the status is Lost or Found.
func (s Status) Valid() bool {
	return s == StatusLost || s == StatusFound
}

// Item is a lost-and-found record.
type Item struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description"`
	Status      Status    `json:"status" gorm:"type:varchar(16);not null"`
	Category    string    `json:"category"`
	Location    string    `json:"location"`
	Date        string    `json:"date"`
	ContactInfo string    `json:"contact_info"`
	ImageURL    string    `json:"image_url"`
	CreatedBy   string    `json:"created_by"`
	CreatedAt   time.Time `json:"created_at" gorm:"autoCreateTime"`
}

// TableName keeps the historical table name.
func (Item) TableName() string {
	return "lost_and_found"
}

// BeforeCreate assigns the identifier; callers never choose IDs.
func (i *Item) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.NewString()
	}
	return nil
}

// MutableFields lists the columns an update may target, in the order
// placeholders are generated. id, created_by and created_at are immutable.
var MutableFields = []string{
	"title",
	"description",
	"status",
	"category",
	"location",
	"date",
	"contact_info",
	"image_url",
}

// IsMutable reports whether a column may be targeted by an update.
func IsMutable(field string) bool {
	for _, f := range MutableFields {
		if f == field {
			return true
		}
	}
	return false
}

// CreateItemRequest is the payload for item creation.
type CreateItemRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	Status      Status `json:"status" validate:"required"`
	Category    string `json:"category"`
	Location    string `json:"location"`
	Date        string `json:"date"`
	ContactInfo string `json:"contact_info"`
	ImageURL    string `json:"image_url"`
}
