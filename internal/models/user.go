package models

import (
	"gorm.io/gorm"
)

// User is a local profile row for an externally-authenticated identity.
// AuthID is the subject claim of the JWT; display fields are denormalized
// into annotation and reply responses.
type User struct {
	gorm.Model `json:"-"`
	AuthID     string `json:"-" gorm:"uniqueIndex;not null"`
	Username   string `json:"username" gorm:"not null"`
	FullName   string `json:"full_name,omitempty"`
	Email      string `json:"-"`
}

// TableName returns the table name for the User model
func (User) TableName() string {
	return "users"
}
