/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"fmt"
)

// categorical is the category set part of choice fields
type categorical struct {
	cats *Categories
}

func (c *categorical) Categories() *Categories { return c.cats }

// Returns ascending category codes. Result is a fresh copy
func (c *categorical) Codes() []CategoryCode { return c.cats.Codes() }

// Returns categories in ascending code order, suitable for printing
func (c *categorical) PrintCategories() []Category { return c.cats.PrintCategories() }

// replace swaps the category set with a new one made from raw map. If the
// new set does not validate, the old one stays untouched
func (c *categorical) replace(f IField, raw map[string]string) error {
	cc, err := NewCategories(raw)
	if err != nil {
		return fmt.Errorf("%v: %w", f, err)
	}
	c.cats = cc
	return nil
}

// codeValue converts a raw answer value to a category code and checks the
// code belongs to field categories. Conversion rules as in int64Value
func codeValue(f IField, cats *Categories, value any) (CategoryCode, bool, error) {
	v, ok, err := int64Value(f, value)
	if err != nil || !ok {
		return 0, false, err
	}
	code := CategoryCode(v)
	if !cats.Contains(code) {
		return 0, false, fmt.Errorf(errCodeNotInCategoriesWrap, f, code, ErrWrongFieldValue)
	}
	return code, true, nil
}

// Single choice survey field.
//
// # Implements:
//   - IField
//   - ICategoricalField
type SingleField struct {
	field
	categorical
}

// NewSingle returns new single choice field with categories made from raw
// map: textual code → label.
//
// Returns error wrapping ErrNameMissed if name is empty. Category errors
// as in NewCategories
func NewSingle(name, title string, categories map[string]string) (*SingleField, error) {
	f, err := makeField(name, title, FieldKind_single)
	if err != nil {
		return nil, err
	}
	cc, err := NewCategories(categories)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", &f, err)
	}
	return &SingleField{field: f, categorical: categorical{cats: cc}}, nil
}

// NewSingle panic wrapper
func MustNewSingle(name, title string, categories map[string]string) *SingleField {
	f, err := NewSingle(name, title, categories)
	if err != nil {
		panic(err)
	}
	return f
}

// Converts a raw value to a category code of the field
func (f *SingleField) CoerceValue(value any) (any, bool, error) {
	code, ok, err := codeValue(f, f.cats, value)
	if err != nil || !ok {
		return nil, false, err
	}
	return code, true, nil
}

// Renders the category label of the coerced code. Absent renders as nil
func (f *SingleField) PrintValue(value any) (any, error) {
	code, ok, err := codeValue(f, f.cats, value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	label, _ := f.cats.Category(code)
	return label, nil
}

func (f *SingleField) ReplaceCategories(raw map[string]string) error {
	return f.replace(f, raw)
}

// Multiple choice survey field.
//
// # Implements:
//   - IField
//   - ICategoricalField
type MultipleField struct {
	field
	categorical
}

// NewMultiple returns new multiple choice field with categories made from
// raw map: textual code → label.
//
// Returns error wrapping ErrNameMissed if name is empty. Category errors
// as in NewCategories
func NewMultiple(name, title string, categories map[string]string) (*MultipleField, error) {
	f, err := makeField(name, title, FieldKind_multiple)
	if err != nil {
		return nil, err
	}
	cc, err := NewCategories(categories)
	if err != nil {
		return nil, fmt.Errorf("%v: %w", &f, err)
	}
	return &MultipleField{field: f, categorical: categorical{cats: cc}}, nil
}

// NewMultiple panic wrapper
func MustNewMultiple(name, title string, categories map[string]string) *MultipleField {
	f, err := NewMultiple(name, title, categories)
	if err != nil {
		panic(err)
	}
	return f
}

// Converts a raw value to category codes of the field.
//
// Accepted containers: []any, []string, []int, []int64, []float64 and
// []CategoryCode. A bare scalar counts as a one element container. Absent
// members are skipped, answer order and repeats are kept. The whole value
// is absent if no member is left
func (f *MultipleField) CoerceValue(value any) (any, bool, error) {
	cc, ok, err := f.coerceCodes(value)
	if err != nil || !ok {
		return nil, false, err
	}
	return cc, true, nil
}

// Renders category labels of the coerced codes in answer order. Absent
// renders as nil
func (f *MultipleField) PrintValue(value any) (any, error) {
	cc, ok, err := f.coerceCodes(value)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	labels := make([]string, len(cc))
	for i, code := range cc {
		labels[i], _ = f.cats.Category(code)
	}
	return labels, nil
}

func (f *MultipleField) ReplaceCategories(raw map[string]string) error {
	return f.replace(f, raw)
}

func (f *MultipleField) coerceCodes(value any) ([]CategoryCode, bool, error) {
	var raw []any
	switch v := value.(type) {
	case nil:
		return nil, false, nil
	case []any:
		raw = v
	case []string:
		raw = make([]any, len(v))
		for i, e := range v {
			raw[i] = e
		}
	case []int:
		raw = make([]any, len(v))
		for i, e := range v {
			raw[i] = e
		}
	case []int64:
		raw = make([]any, len(v))
		for i, e := range v {
			raw[i] = e
		}
	case []float64:
		raw = make([]any, len(v))
		for i, e := range v {
			raw[i] = e
		}
	case []CategoryCode:
		raw = make([]any, len(v))
		for i, e := range v {
			raw[i] = e
		}
	default:
		raw = []any{value} // bare scalar: single selection
	}

	res := make([]CategoryCode, 0, len(raw))
	for _, e := range raw {
		code, ok, err := codeValue(f, f.cats, e)
		if err != nil {
			return nil, false, err
		}
		if !ok {
			continue
		}
		res = append(res, code)
	}
	if len(res) == 0 {
		return nil, false, nil
	}
	return res, true, nil
}
