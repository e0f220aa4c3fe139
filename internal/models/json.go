package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Landmarks is an ordered sequence of [x, y] coordinate pairs describing
// tracked hand points, stored as a JSON column.
type Landmarks [][]float64

// Value implements driver.Valuer interface for Landmarks
func (l Landmarks) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner interface for Landmarks
func (l *Landmarks) Scan(value interface{}) error {
	return scanJSON(value, l)
}

// Shape is an ordered sequence of tensor dimensions, stored as a JSON column.
type Shape []int

// Value implements driver.Valuer interface for Shape
func (s Shape) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

// Scan implements sql.Scanner interface for Shape
func (s *Shape) Scan(value interface{}) error {
	return scanJSON(value, s)
}

// Probs maps a predicted label to its probability, stored as a JSON column.
type Probs map[string]float64

// Value implements driver.Valuer interface for Probs
func (p Probs) Value() (driver.Value, error) {
	if p == nil {
		return nil, nil
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for Probs
func (p *Probs) Scan(value interface{}) error {
	if value == nil {
		*p = nil
		return nil
	}
	return scanJSON(value, p)
}

// Metrics holds opaque evaluation metrics for a registered model.
type Metrics map[string]interface{}

// Value implements driver.Valuer interface for Metrics
func (m Metrics) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(m)
}

// Scan implements sql.Scanner interface for Metrics
func (m *Metrics) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	return scanJSON(value, m)
}

// Params holds opaque parameters for a batch prediction request.
type Params map[string]interface{}

// Value implements driver.Valuer interface for Params
func (p Params) Value() (driver.Value, error) {
	if p == nil {
		return json.Marshal(Params{})
	}
	return json.Marshal(p)
}

// Scan implements sql.Scanner interface for Params
func (p *Params) Scan(value interface{}) error {
	if value == nil {
		*p = make(Params)
		return nil
	}
	return scanJSON(value, p)
}

// scanJSON unmarshals a database value into target.
// MySQL returns JSON columns as []byte, SQLite may return string.
func scanJSON(value interface{}, target interface{}) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, target)
	case string:
		return json.Unmarshal([]byte(v), target)
	default:
		return errors.New("unsupported type for JSON column")
	}
}
