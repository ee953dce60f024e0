/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import (
	"encoding/json"
	"fmt"
)

// MapObject is a JSON object decoded by JSONUnmarshal. Numeric values
// are kept as json.Number.
type MapObject map[string]interface{}

func (m MapObject) AsString(name string) (val string, ok bool, err error) {
	if intf, ok := m[name]; ok {
		val, ok := intf.(string)
		if !ok {
			return "", true, fmt.Errorf("field '%s' must be a string: %w", name, ErrFieldTypeMismatch)
		}
		return val, true, nil
	}
	return "", false, nil
}

func (m MapObject) AsStringRequired(name string) (val string, err error) {
	val, _, err = m.AsString(name)
	if err != nil {
		return "", err
	}
	if len(val) == 0 {
		return "", fmt.Errorf("field '%s' missing: %w", name, ErrFieldsMissed)
	}
	return val, nil
}

func (m MapObject) AsObject(name string) (val MapObject, ok bool, err error) {
	if intf, ok := m[name]; ok {
		val, ok := intf.(map[string]interface{})
		if !ok {
			return nil, true, fmt.Errorf("field '%s' must be an object: %w", name, ErrFieldTypeMismatch)
		}
		return MapObject(val), true, nil
	}
	return nil, false, nil
}

func (m MapObject) AsObjects(name string) (val []interface{}, ok bool, err error) {
	if intf, ok := m[name]; ok {
		val, ok := intf.([]interface{})
		if !ok {
			return nil, true, fmt.Errorf("field '%s' must be an array of objects: %w", name, ErrFieldTypeMismatch)
		}
		return val, true, nil
	}
	return nil, false, nil
}

func (m MapObject) AsInt64(name string) (val int64, ok bool, err error) {
	if intf, ok := m[name]; ok {
		switch v := intf.(type) {
		case json.Number:
			val, err := v.Int64()
			if err != nil {
				return 0, true, fmt.Errorf("field '%s' must be an int64: %w", name, ErrFieldTypeMismatch)
			}
			return val, true, nil
		case float64:
			return int64(v), true, nil
		}
		return 0, true, fmt.Errorf("field '%s' must be an int64: %w", name, ErrFieldTypeMismatch)
	}
	return 0, false, nil
}

func (m MapObject) AsFloat64(name string) (val float64, ok bool, err error) {
	if intf, ok := m[name]; ok {
		switch v := intf.(type) {
		case json.Number:
			val, err := v.Float64()
			if err != nil {
				return 0, true, fmt.Errorf("field '%s' must be a float64: %w", name, ErrFieldTypeMismatch)
			}
			return val, true, nil
		case float64:
			return v, true, nil
		}
		return 0, true, fmt.Errorf("field '%s' must be a float64: %w", name, ErrFieldTypeMismatch)
	}
	return 0, false, nil
}

func (m MapObject) AsBoolean(name string) (val bool, ok bool, err error) {
	if intf, ok := m[name]; ok {
		val, ok := intf.(bool)
		if !ok {
			return false, true, fmt.Errorf("field '%s' must be a boolean: %w", name, ErrFieldTypeMismatch)
		}
		return val, true, nil
	}
	return false, false, nil
}
