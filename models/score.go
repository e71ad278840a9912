package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Score is the opaque wire representation of a match score: a free-form
// mapping whose admissible shape depends on the sport slug. The store and the
// transport never impose a schema on it; interpretation happens in the scores
// package. Stored as JSONB.
type Score map[string]interface{}

func (s Score) Value() (driver.Value, error) {
	if s == nil {
		return nil, nil
	}
	return json.Marshal(s)
}

func (s *Score) Scan(src interface{}) error {
	if src == nil {
		*s = nil
		return nil
	}

	var data []byte
	switch v := src.(type) {
	case []byte:
		data = v
	case string:
		data = []byte(v)
	default:
		return fmt.Errorf("unsupported score column type %T", src)
	}

	if len(data) == 0 {
		*s = nil
		return nil
	}
	return json.Unmarshal(data, s)
}
