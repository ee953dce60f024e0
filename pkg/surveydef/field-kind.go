/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"fmt"
	"strconv"
	"strings"
)

//go:generate stringer -type=FieldKind -output=field-kind_string.go

const (
	// null - no-value kind. Returned when the requested kind does not exist
	FieldKind_null FieldKind = iota

	// Whole numbers. Canonical type int64
	FieldKind_integer

	// Real numbers. Canonical type float64
	FieldKind_float

	// Free text. Canonical type string
	FieldKind_string

	// Single choice from a category set. Canonical type CategoryCode
	FieldKind_single

	// Multiple choice from a category set. Canonical type []CategoryCode
	FieldKind_multiple

	FieldKind_FakeLast
)

func (k FieldKind) MarshalText() ([]byte, error) {
	var s string
	if k < FieldKind_FakeLast {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a FieldKind in human-readable form, without "FieldKind_" prefix,
// suitable for debugging or error messages
func (k FieldKind) TrimString() string {
	const pref = "FieldKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Parses a field kind from its human-readable form, e.g. «integer» or
// «single». Parse is case insensitive and ignores surrounding spaces.
//
// Returns error wrapping ErrInvalidFieldKind if kind is unknown
func ParseFieldKind(val string) (FieldKind, error) {
	s := strings.ToLower(strings.TrimSpace(val))
	for k := FieldKind_null + 1; k < FieldKind_FakeLast; k++ {
		if k.TrimString() == s {
			return k, nil
		}
	}
	return FieldKind_null, fmt.Errorf("field kind «%s» is unknown: %w", val, ErrInvalidFieldKind)
}

// Parses a field kind from its human-readable form. Panics if error occurs
func MustParseFieldKind(val string) FieldKind {
	k, err := ParseFieldKind(val)
	if err != nil {
		panic(err)
	}
	return k
}
