package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Document represents an uploaded reserve-study document. The binary
// content lives in object storage under FileKey; this row carries only
// metadata and ownership.
type Document struct {
	gorm.Model
	UUID        string `json:"uuid" gorm:"uniqueIndex"`
	UserID      string `json:"user_id" gorm:"not null;index"`
	Title       string `json:"title" gorm:"not null"`
	FileKey     string `json:"file_key" gorm:"not null"`
	ContentType string `json:"content_type"`
	SizeBytes   int64  `json:"size_bytes" gorm:"default:0"`

	Annotations []Annotation `json:"annotations,omitempty" gorm:"foreignKey:DocumentID"`
}

// BeforeCreate generates a UUID before creating a new document
func (d *Document) BeforeCreate(tx *gorm.DB) error {
	if d.UUID == "" {
		d.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Document model
func (Document) TableName() string {
	return "documents"
}
