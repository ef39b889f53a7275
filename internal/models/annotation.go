package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AnnotationType is the closed set of annotation kinds
type AnnotationType string

const (
	AnnotationTypeHighlight AnnotationType = "highlight"
	AnnotationTypeComment   AnnotationType = "comment"
	AnnotationTypeDrawing   AnnotationType = "drawing"
)

// Valid reports whether t is a member of the closed type set
func (t AnnotationType) Valid() bool {
	switch t {
	case AnnotationTypeHighlight, AnnotationTypeComment, AnnotationTypeDrawing:
		return true
	}
	return false
}

// Position anchors an annotation to a rendered document. X and Y are
// percentages of the bounding box in [0,100], so anchors survive any
// render resolution. Width and height are optional region extents.
type Position struct {
	X      float64  `json:"x" gorm:"column:pos_x;not null"`
	Y      float64  `json:"y" gorm:"column:pos_y;not null"`
	Width  *float64 `json:"width,omitempty" gorm:"column:pos_width"`
	Height *float64 `json:"height,omitempty" gorm:"column:pos_height"`
}

// InBounds reports whether the anchor point lies inside the bounding box
func (p Position) InBounds() bool {
	return p.X >= 0 && p.X <= 100 && p.Y >= 0 && p.Y <= 100
}

// Annotation is a user-authored comment anchored to a position on a
// document. Replies are a separate entity; threads are flat.
type Annotation struct {
	gorm.Model
	UUID       string         `json:"uuid" gorm:"uniqueIndex"`
	DocumentID uint           `json:"document_id" gorm:"not null;index"`
	UserID     string         `json:"user_id" gorm:"not null;index"`
	Content    string         `json:"content" gorm:"type:text;not null"`
	Position   Position       `json:"position" gorm:"embedded"`
	Type       AnnotationType `json:"type" gorm:"not null;default:comment"`
	Metadata   JSONMap        `json:"metadata,omitempty" gorm:"type:json"`

	// Populated on read, oldest first
	Replies []AnnotationReply `json:"replies" gorm:"foreignKey:AnnotationID"`

	// Denormalized author view
	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:AuthID"`
}

// BeforeCreate generates a UUID before creating a new annotation
func (a *Annotation) BeforeCreate(tx *gorm.DB) error {
	if a.UUID == "" {
		a.UUID = uuid.New().String()
	}
	return nil
}

// TableName returns the table name for the Annotation model
func (Annotation) TableName() string {
	return "annotations"
}

// AnnotationReply is a flat reply under an annotation. Replies are never
// edited or deleted on their own; they go away with their annotation.
type AnnotationReply struct {
	gorm.Model
	AnnotationID uint   `json:"annotation_id" gorm:"not null;index"`
	UserID       string `json:"user_id" gorm:"not null;index"`
	Content      string `json:"content" gorm:"type:text;not null"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID;references:AuthID"`
}

// TableName returns the table name for the AnnotationReply model
func (AnnotationReply) TableName() string {
	return "annotation_replies"
}
