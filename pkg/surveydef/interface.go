/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

// Kind of survey field.
//
// Ref. to field-kind.go for constants and methods
type FieldKind uint8

// Kind of numeric field constraint.
//
// Ref. to constraint.go for constants and methods
type ConstraintKind uint8

// Category code. Numeric identity of a category inside one categorical field.
//
// Ref. to categories.go
type CategoryCode int64

// Survey field. Holds the descriptive attributes of a questionnaire variable
// and the value rules of its kind.
//
// Ref. to field.go and categorical.go for implementations
type IField interface {
	// Returns field name.
	//
	// Name is the variable identity. Lookup by name is case insensitive.
	Name() string

	// Returns field title
	Title() string

	// Returns field kind
	Kind() FieldKind

	// Converts a raw answer value to the canonical value of the field kind
	// and validates it against the field rules.
	//
	// Returns ok == false with nil error if the value is absent (skipped
	// answer). Returns error wrapping ErrWrongFieldValue if the value can
	// not be converted or does not validate.
	//
	// Canonical value types:
	//   - integer:  int64
	//   - float:    float64
	//   - string:   string
	//   - single:   CategoryCode
	//   - multiple: []CategoryCode
	CoerceValue(value any) (res any, ok bool, err error)

	// Renders a raw answer value in the form suitable for showing to user.
	//
	// Numeric and string kinds return the value as is, categorical kinds
	// return category labels. Absent values render as nil
	PrintValue(value any) (any, error)

	// Returns questionnaire caption, e.g. «q1. How old are you?»
	Mark() string
}

// Categorical survey field (single or multiple choice).
//
// Ref. to categorical.go for implementations
type ICategoricalField interface {
	IField

	// Returns field categories
	Categories() *Categories

	// Replaces field categories with new ones built from raw map.
	//
	// New categories are validated first. If validation fails, the old
	// categories stay untouched
	ReplaceCategories(raw map[string]string) error
}
