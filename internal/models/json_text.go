package models

import (
	"database/sql/driver"
	"fmt"
)

// JSONText stores an opaque JSON document in a jsonb column while serving it
// to API clients un-escaped, whether the row was written with an object or a
// plain string payload.
type JSONText []byte

func (j JSONText) Value() (driver.Value, error) {
	if len(j) == 0 {
		return nil, nil
	}
	return string(j), nil
}

func (j *JSONText) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*j = nil
		return nil
	case []byte:
		*j = append((*j)[0:0], v...)
		return nil
	case string:
		*j = JSONText(v)
		return nil
	default:
		return fmt.Errorf("cannot scan %T into JSONText", value)
	}
}

func (j JSONText) MarshalJSON() ([]byte, error) {
	if len(j) == 0 {
		return []byte("null"), nil
	}
	return j, nil
}

func (j *JSONText) UnmarshalJSON(data []byte) error {
	*j = append((*j)[0:0], data...)
	return nil
}

// GormDataType keeps gorm from treating the byte slice as bytea.
func (JSONText) GormDataType() string {
	return "jsonb"
}
