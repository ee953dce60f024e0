/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 * @author: Maria Zotova
 */

package surveydef

import (
	"fmt"
	"math"
	"strings"
)

// # Implements:
//   - IField (partially)
type field struct {
	name  string
	title string
	kind  FieldKind
}

func makeField(name, title string, kind FieldKind) (field, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return field{}, fmt.Errorf("%s-field: empty field name: %w", kind.TrimString(), ErrNameMissed)
	}
	return field{name: n, title: strings.TrimSpace(title), kind: kind}, nil
}

func (f *field) Kind() FieldKind { return f.kind }

// Returns questionnaire caption, e.g. «q1. How old are you?»
func (f *field) Mark() string {
	return fmt.Sprintf("%s. %s", f.name, f.title)
}

func (f *field) Name() string { return f.name }

func (f *field) String() string {
	return fmt.Sprintf("%s-field «%s»", f.kind.TrimString(), f.name)
}

func (f *field) Title() string { return f.title }

// Free text survey field.
//
// # Implements:
//   - IField
type StringField struct {
	field
}

// NewString returns new free text field.
//
// Returns error wrapping ErrNameMissed if name is empty
func NewString(name, title string) (*StringField, error) {
	f, err := makeField(name, title, FieldKind_string)
	if err != nil {
		return nil, err
	}
	return &StringField{field: f}, nil
}

// NewString panic wrapper
func MustNewString(name, title string) *StringField {
	f, err := NewString(name, title)
	if err != nil {
		panic(err)
	}
	return f
}

// Converts a raw value to string. Never fails: nil and empty containers
// convert to empty string, other values render with fmt
func (f *StringField) CoerceValue(value any) (any, bool, error) {
	switch v := value.(type) {
	case nil:
		return "", true, nil
	case string:
		return v, true, nil
	}
	if emptySlice(value) {
		return "", true, nil
	}
	return fmt.Sprintf("%v", value), true, nil
}

// Returns value as is
func (f *StringField) PrintValue(value any) (any, error) { return value, nil }

// Whole number survey field with optional inclusive bounds.
//
// # Implements:
//   - IField
type IntegerField struct {
	field
	min *int64
	max *int64
}

// NewInteger returns new whole number field. Bounds, if any, are made with
// MinIncl() and MaxIncl() and are truncated to whole numbers.
//
// Returns error wrapping:
//   - ErrNameMissed if name is empty,
//   - ErrIncompatibleConstraints if minimum is greater than maximum or
//     some bound does not fit into int64
func NewInteger(name, title string, constraints ...Constraint) (*IntegerField, error) {
	f, err := makeField(name, title, FieldKind_integer)
	if err != nil {
		return nil, err
	}
	min, max, err := constraintBounds(constraints)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", &f, err)
	}
	fld := &IntegerField{field: f}
	if min != nil {
		v, err := boundToInt64(&f, *min)
		if err != nil {
			return nil, err
		}
		fld.min = &v
	}
	if max != nil {
		v, err := boundToInt64(&f, *max)
		if err != nil {
			return nil, err
		}
		fld.max = &v
	}
	return fld, nil
}

// NewInteger panic wrapper
func MustNewInteger(name, title string, constraints ...Constraint) *IntegerField {
	f, err := NewInteger(name, title, constraints...)
	if err != nil {
		panic(err)
	}
	return f
}

// Converts a raw value to int64 and checks it against field bounds.
// Ref. to int64Value for the conversion rules
func (f *IntegerField) CoerceValue(value any) (any, bool, error) {
	v, ok, err := int64Value(f, value)
	if err != nil || !ok {
		return nil, false, err
	}
	if (f.min != nil) && (v < *f.min) {
		return nil, false, fmt.Errorf(errValueBelowMinWrap, f, v, *f.min, ErrWrongFieldValue)
	}
	if (f.max != nil) && (v > *f.max) {
		return nil, false, fmt.Errorf(errValueAboveMaxWrap, f, v, *f.max, ErrWrongFieldValue)
	}
	return v, true, nil
}

// Returns maximum bound and whether it is set
func (f *IntegerField) Max() (int64, bool) {
	if f.max != nil {
		return *f.max, true
	}
	return 0, false
}

// Returns minimum bound and whether it is set
func (f *IntegerField) Min() (int64, bool) {
	if f.min != nil {
		return *f.min, true
	}
	return 0, false
}

// Returns value as is
func (f *IntegerField) PrintValue(value any) (any, error) { return value, nil }

// Real number survey field with optional inclusive bounds.
//
// # Implements:
//   - IField
type FloatField struct {
	field
	min *float64
	max *float64
}

// NewFloat returns new real number field. Bounds, if any, are made with
// MinIncl() and MaxIncl().
//
// Returns error wrapping:
//   - ErrNameMissed if name is empty,
//   - ErrIncompatibleConstraints if minimum is greater than maximum
func NewFloat(name, title string, constraints ...Constraint) (*FloatField, error) {
	f, err := makeField(name, title, FieldKind_float)
	if err != nil {
		return nil, err
	}
	min, max, err := constraintBounds(constraints)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", &f, err)
	}
	return &FloatField{field: f, min: min, max: max}, nil
}

// NewFloat panic wrapper
func MustNewFloat(name, title string, constraints ...Constraint) *FloatField {
	f, err := NewFloat(name, title, constraints...)
	if err != nil {
		panic(err)
	}
	return f
}

// Converts a raw value to float64 and checks it against field bounds.
// Ref. to float64Value for the conversion rules
func (f *FloatField) CoerceValue(value any) (any, bool, error) {
	v, ok, err := float64Value(f, value)
	if err != nil || !ok {
		return nil, false, err
	}
	if (f.min != nil) && (v < *f.min) {
		return nil, false, fmt.Errorf(errValueBelowMinWrap, f, v, *f.min, ErrWrongFieldValue)
	}
	if (f.max != nil) && (v > *f.max) {
		return nil, false, fmt.Errorf(errValueAboveMaxWrap, f, v, *f.max, ErrWrongFieldValue)
	}
	return v, true, nil
}

// Returns maximum bound and whether it is set
func (f *FloatField) Max() (float64, bool) {
	if f.max != nil {
		return *f.max, true
	}
	return 0, false
}

// Returns minimum bound and whether it is set
func (f *FloatField) Min() (float64, bool) {
	if f.min != nil {
		return *f.min, true
	}
	return 0, false
}

// Returns value as is
func (f *FloatField) PrintValue(value any) (any, error) { return value, nil }

// boundToInt64 truncates a numeric bound for a whole number field
func boundToInt64(f fmt.Stringer, v float64) (int64, error) {
	if (v >= float64(math.MaxInt64)) || (v < float64(math.MinInt64)) {
		return 0, fmt.Errorf("%v: bound «%v» does not fit into int64: %w", f, v, ErrIncompatibleConstraints)
	}
	return int64(v), nil
}
