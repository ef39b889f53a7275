package models

import (
	"gorm.io/gorm"
)

// Scenario is a named funding scenario. Parameters is an opaque bag the
// client round-trips (interest rate, inflation, horizon, per-year plan);
// the server never interprets it.
type Scenario struct {
	gorm.Model
	UserID      string  `json:"user_id" gorm:"not null;index"`
	Name        string  `json:"name" gorm:"not null"`
	Description string  `json:"description" gorm:"type:text"`
	Parameters  JSONMap `json:"parameters" gorm:"type:json"`
}

// TableName returns the table name for the Scenario model
func (Scenario) TableName() string {
	return "scenarios"
}
