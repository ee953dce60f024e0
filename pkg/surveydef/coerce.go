/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

const (
	int64TypeName   = "int64"
	float64TypeName = "float64"
)

// int64Value converts a raw answer value to int64.
//
// Native numeric values are trusted: float values are truncated toward zero.
// String values are strict tokens: the trimmed text must parse as a whole
// number, fractional text (e.g. «15.5») is rejected.
//
// Returns ok == false with nil error if the value is absent
func int64Value(f IField, value any) (res int64, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case int:
		return int64(v), true, nil
	case int8:
		return int64(v), true, nil
	case int16:
		return int64(v), true, nil
	case int32:
		return int64(v), true, nil
	case int64:
		return v, true, nil
	case uint:
		return uintToInt64(f, uint64(v))
	case uint8:
		return int64(v), true, nil
	case uint16:
		return int64(v), true, nil
	case uint32:
		return int64(v), true, nil
	case uint64:
		return uintToInt64(f, v)
	case float32:
		return floatToInt64(f, float64(v))
	case float64:
		return floatToInt64(f, v)
	case CategoryCode:
		return int64(v), true, nil
	case json.Number:
		return int64Token(f, string(v))
	case string:
		return int64Token(f, v)
	}
	if emptySlice(value) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf(errValueTypeMismatchWrap, f, value, ErrWrongFieldValue)
}

// float64Value converts a raw answer value to float64. Same value lattice as
// int64Value, string tokens parse with strconv.ParseFloat.
//
// Returns ok == false with nil error if the value is absent
func float64Value(f IField, value any) (res float64, ok bool, err error) {
	switch v := value.(type) {
	case nil:
		return 0, false, nil
	case int:
		return float64(v), true, nil
	case int8:
		return float64(v), true, nil
	case int16:
		return float64(v), true, nil
	case int32:
		return float64(v), true, nil
	case int64:
		return float64(v), true, nil
	case uint:
		return float64(v), true, nil
	case uint8:
		return float64(v), true, nil
	case uint16:
		return float64(v), true, nil
	case uint32:
		return float64(v), true, nil
	case uint64:
		return float64(v), true, nil
	case float32:
		return float64(v), true, nil
	case float64:
		return v, true, nil
	case CategoryCode:
		return float64(v), true, nil
	case json.Number:
		return float64Token(f, string(v))
	case string:
		return float64Token(f, v)
	}
	if emptySlice(value) {
		return 0, false, nil
	}
	return 0, false, fmt.Errorf(errValueTypeMismatchWrap, f, value, ErrWrongFieldValue)
}

// int64Token parses a textual answer into int64. Empty text is an absent
// answer, blank (spaces only) text is not
func int64Token(f IField, s string) (int64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	res, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf(errValueParseWrap, f, s, int64TypeName, ErrWrongFieldValue)
	}
	return res, true, nil
}

// float64Token parses a textual answer into float64. Empty text is an absent
// answer, blank (spaces only) text is not
func float64Token(f IField, s string) (float64, bool, error) {
	if s == "" {
		return 0, false, nil
	}
	res, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, false, fmt.Errorf(errValueParseWrap, f, s, float64TypeName, ErrWrongFieldValue)
	}
	return res, true, nil
}

func floatToInt64(f IField, v float64) (int64, bool, error) {
	if math.IsNaN(v) || math.IsInf(v, 0) || (v >= float64(math.MaxInt64)) || (v < float64(math.MinInt64)) {
		return 0, false, fmt.Errorf(errValueParseWrap, f, v, int64TypeName, ErrWrongFieldValue)
	}
	return int64(v), true, nil
}

func uintToInt64(f IField, v uint64) (int64, bool, error) {
	if v > math.MaxInt64 {
		return 0, false, fmt.Errorf(errValueParseWrap, f, v, int64TypeName, ErrWrongFieldValue)
	}
	return int64(v), true, nil
}
