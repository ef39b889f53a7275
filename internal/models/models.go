package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// JSONMap is an open-ended attribute bag stored as a JSON column.
// Used for annotation metadata and scenario parameters.
type JSONMap map[string]interface{}

// Value implements driver.Valuer interface for JSONMap
func (m JSONMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for JSONMap
func (m *JSONMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}

	return json.Unmarshal(bytes, m)
}

// AllModels returns every model registered for auto migration
func AllModels() []any {
	return []any{
		&User{},
		&Document{},
		&Annotation{},
		&AnnotationReply{},
		&Photo{},
		&Component{},
		&Scenario{},
		&Report{},
		&Job{},
	}
}
