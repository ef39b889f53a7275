package models

import (
	"gorm.io/gorm"
)

// ComponentCondition grades the observed state of an asset
type ComponentCondition string

const (
	ConditionExcellent ComponentCondition = "excellent"
	ConditionGood      ComponentCondition = "good"
	ConditionFair      ComponentCondition = "fair"
	ConditionPoor      ComponentCondition = "poor"
	ConditionCritical  ComponentCondition = "critical"
)

// Valid reports whether c is a known condition grade
func (c ComponentCondition) Valid() bool {
	switch c {
	case ConditionExcellent, ConditionGood, ConditionFair, ConditionPoor, ConditionCritical:
		return true
	}
	return false
}

// Component is an entry in the association's asset registry: a physical
// element (roof, gutters, pool pump) tracked for reserve funding.
type Component struct {
	gorm.Model
	Name                 string             `json:"name" gorm:"not null"`
	Category             string             `json:"category" gorm:"index"`
	PlacedInService      int                `json:"placed_in_service"` // Year
	UsefulLifeYears      int                `json:"useful_life_years" gorm:"not null"`
	RemainingLifeYears   int                `json:"remaining_life_years"`
	ReplacementCostCents int64              `json:"replacement_cost_cents" gorm:"default:0"`
	Quantity             int                `json:"quantity" gorm:"default:1"`
	Condition            ComponentCondition `json:"condition" gorm:"default:good"`
	Notes                string             `json:"notes" gorm:"type:text"`
}

// TableName returns the table name for the Component model
func (Component) TableName() string {
	return "components"
}
