package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Photo is a gallery record. The image itself lives in object storage
// under ObjectKey; a photo may be linked to a registry component.
type Photo struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	UserID      string `json:"user_id" gorm:"not null;index"`
	ComponentID *uint  `json:"component_id,omitempty" gorm:"index"`
	Caption     string `json:"caption"`
	ObjectKey   string `json:"object_key" gorm:"not null"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes" gorm:"default:0"`
}

// BeforeCreate generates a UUID before creating a new photo
func (p *Photo) BeforeCreate(tx *gorm.DB) error {
	if p.UUID == "" {
		p.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Photo model
func (Photo) TableName() string {
	return "photos"
}
