/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

//go:generate stringer -type=ConstraintKind -output=constraint-kind_string.go

const (
	// null - no-value kind. Returned when the requested kind does not exist
	ConstraintKind_null ConstraintKind = iota

	ConstraintKind_MinIncl
	ConstraintKind_MaxIncl

	ConstraintKind_Count
)

func (k ConstraintKind) MarshalText() ([]byte, error) {
	var s string
	if k < ConstraintKind_Count {
		s = k.String()
	} else {
		const base = 10
		s = strconv.FormatUint(uint64(k), base)
	}
	return []byte(s), nil
}

// Renders a ConstraintKind in human-readable form, without "ConstraintKind_"
// prefix, suitable for debugging or error messages
func (k ConstraintKind) TrimString() string {
	const pref = "ConstraintKind_"
	return strings.TrimPrefix(k.String(), pref)
}

// Numeric bound constraint for integer and float fields.
//
// Make with MinIncl() or MaxIncl()
type Constraint struct {
	kind  ConstraintKind
	value float64
}

// Returns constraint kind
func (c Constraint) Kind() ConstraintKind { return c.kind }

// Returns constraint value
func (c Constraint) Value() float64 { return c.value }

func (c Constraint) String() string {
	return fmt.Sprintf("%s: %v", c.kind.TrimString(), c.value)
}

// Returns new minimum inclusive constraint for numeric fields.
//
// # Panics:
//   - if value is NaN
//   - if value is +infinite
func MinIncl(v float64) Constraint {
	if math.IsNaN(v) {
		panic("minimum inclusive value is NaN")
	}
	if math.IsInf(v, 1) {
		panic("minimum inclusive value is positive infinity")
	}
	return Constraint{kind: ConstraintKind_MinIncl, value: v}
}

// Returns new maximum inclusive constraint for numeric fields.
//
// # Panics:
//   - if value is NaN
//   - if value is -infinite
func MaxIncl(v float64) Constraint {
	if math.IsNaN(v) {
		panic("maximum inclusive value is NaN")
	}
	if math.IsInf(v, -1) {
		panic("maximum inclusive value is negative infinity")
	}
	return Constraint{kind: ConstraintKind_MaxIncl, value: v}
}

// constraintBounds folds constraints into minimum and maximum bounds.
// If constraint of some kind repeats, then the last one wins.
//
// Returns error wrapping ErrIncompatibleConstraints if minimum is greater
// than maximum
func constraintBounds(cc []Constraint) (min, max *float64, err error) {
	for _, c := range cc {
		switch c.kind {
		case ConstraintKind_MinIncl:
			v := c.value
			min = &v
		case ConstraintKind_MaxIncl:
			v := c.value
			max = &v
		}
	}
	if (min != nil) && (max != nil) && (*min > *max) {
		return nil, nil, fmt.Errorf("minimum «%v» is greater than maximum «%v»: %w", *min, *max, ErrIncompatibleConstraints)
	}
	return min, max, nil
}
