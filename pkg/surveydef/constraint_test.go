/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMinMaxIncl(t *testing.T) {
	require := require.New(t)

	t.Run("MinIncl", func(t *testing.T) {
		c := MinIncl(-10)
		require.Equal(ConstraintKind_MinIncl, c.Kind())
		require.EqualValues(-10, c.Value())
		require.Equal("MinIncl: -10", c.String())
	})

	t.Run("MaxIncl", func(t *testing.T) {
		c := MaxIncl(100.5)
		require.Equal(ConstraintKind_MaxIncl, c.Kind())
		require.EqualValues(100.5, c.Value())
		require.Equal("MaxIncl: 100.5", c.String())
	})
}

func TestMinMaxInclPanics(t *testing.T) {
	tests := []struct {
		name string
		f    func()
	}{
		{"MinIncl(NaN)", func() { MinIncl(math.NaN()) }},
		{"MinIncl(+Inf)", func() { MinIncl(math.Inf(1)) }},
		{"MaxIncl(NaN)", func() { MaxIncl(math.NaN()) }},
		{"MaxIncl(-Inf)", func() { MaxIncl(math.Inf(-1)) }},
	}
	require := require.New(t)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Panics(tt.f)
		})
	}
}

func TestMinMaxInclUnbound(t *testing.T) {
	require := require.New(t)

	// open side infinities are allowed
	require.NotPanics(func() { MinIncl(math.Inf(-1)) })
	require.NotPanics(func() { MaxIncl(math.Inf(1)) })
}

func TestConstraintBounds(t *testing.T) {
	require := require.New(t)

	t.Run("must be nil bounds if no constraints", func(t *testing.T) {
		min, max, err := constraintBounds(nil)
		require.NoError(err)
		require.Nil(min)
		require.Nil(max)
	})

	t.Run("must be ok if minimum equals maximum", func(t *testing.T) {
		min, max, err := constraintBounds([]Constraint{MinIncl(5), MaxIncl(5)})
		require.NoError(err)
		require.EqualValues(5, *min)
		require.EqualValues(5, *max)
	})

	t.Run("must win the last repeated constraint", func(t *testing.T) {
		min, max, err := constraintBounds([]Constraint{MinIncl(1), MinIncl(2), MaxIncl(9)})
		require.NoError(err)
		require.EqualValues(2, *min)
		require.EqualValues(9, *max)
	})

	t.Run("must be error if minimum is greater than maximum", func(t *testing.T) {
		_, _, err := constraintBounds([]Constraint{MinIncl(10), MaxIncl(-10)})
		require.ErrorIs(err, ErrIncompatibleConstraints)
	})
}
