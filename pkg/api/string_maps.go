package api

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringMap is a map[string]string persisted as jsonb
type StringMap map[string]string

func (m *StringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	result := map[string]string{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*m = result
	return nil
}

func (m StringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]string(m))
}

// NullableStringMap is a map whose values may be null, persisted as jsonb.
// Connect configurations use it since a key may be present with a null value.
type NullableStringMap map[string]*string

func (m *NullableStringMap) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}
	bytes, err := scanBytes(value)
	if err != nil {
		return err
	}
	result := map[string]*string{}
	if err := json.Unmarshal(bytes, &result); err != nil {
		return err
	}
	*m = result
	return nil
}

func (m NullableStringMap) Value() (driver.Value, error) {
	if m == nil {
		return nil, nil
	}
	return json.Marshal(map[string]*string(m))
}

// Equal reports whether both maps hold the same keys, each with either two null values or two equal values.
func (m NullableStringMap) Equal(other NullableStringMap) bool {
	if len(m) != len(other) {
		return false
	}
	for k, v := range m {
		o, ok := other[k]
		if !ok {
			return false
		}
		if v == nil || o == nil {
			if v != o {
				return false
			}
			continue
		}
		if *v != *o {
			return false
		}
	}
	return true
}

func scanBytes(value interface{}) ([]byte, error) {
	switch v := value.(type) {
	case []byte:
		return v, nil
	case string:
		return []byte(v), nil
	default:
		return nil, fmt.Errorf("failed to unmarshal json value: %v", value)
	}
}
