/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// testCategories returns raw categories {"1": "Category 1", … "10": "Category 10"}
func testCategories(count int) map[string]string {
	raw := make(map[string]string, count)
	for i := 1; i <= count; i++ {
		raw[fmt.Sprint(i)] = fmt.Sprintf("Category %d", i)
	}
	return raw
}

func TestNewCategories(t *testing.T) {
	require := require.New(t)

	t.Run("must be ok to make categories", func(t *testing.T) {
		c, err := NewCategories(testCategories(10))
		require.NoError(err)
		require.Equal(10, c.CategoryCount())

		codes := c.Codes()
		require.Len(codes, 10)
		for i, code := range codes {
			require.EqualValues(i+1, code)
		}

		label, ok := c.Category(4)
		require.True(ok)
		require.Equal("Category 4", label)

		require.True(c.Contains(1))
		require.False(c.Contains(11))

		_, ok = c.Category(11)
		require.False(ok)
	})

	t.Run("must trim labels and keep codes with spaces", func(t *testing.T) {
		c, err := NewCategories(map[string]string{" 1 ": " Yes ", "2": "No"})
		require.NoError(err)

		label, ok := c.Category(1)
		require.True(ok)
		require.Equal("Yes", label)
	})

	t.Run("must be ok with negative and zero codes", func(t *testing.T) {
		c, err := NewCategories(map[string]string{"-1": "Unknown", "0": "None", "1": "Yes"})
		require.NoError(err)
		require.Equal([]CategoryCode{-1, 0, 1}, c.Codes())
	})

	t.Run("must be error if code is not an integer", func(t *testing.T) {
		c, err := NewCategories(map[string]string{"a": "Yes"})
		require.ErrorIs(err, ErrInvalidCategoryCode)
		require.Nil(c)
	})

	t.Run("must be error if label is blank", func(t *testing.T) {
		c, err := NewCategories(map[string]string{"1": "  "})
		require.ErrorIs(err, ErrNameMissed)
		require.Nil(c)
	})

	t.Run("must be error if two keys resolve to the same code", func(t *testing.T) {
		c, err := NewCategories(map[string]string{"1": "Yes", "01": "Oui"})
		require.ErrorIs(err, ErrCategoryUniqueViolation)
		require.Nil(c)
	})

	t.Run("must be error if labels duplicate", func(t *testing.T) {
		tests := []struct {
			name string
			raw  map[string]string
		}{
			{"same case", map[string]string{"1": "Yes", "2": "Yes"}},
			{"other case", map[string]string{"1": "Yes", "2": "YES"}},
			{"spaces around", map[string]string{"1": "Yes", "2": " yes "}},
			{"not adjacent pair", map[string]string{"1": "A", "2": "B", "3": "a"}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				c, err := NewCategories(tt.raw)
				require.ErrorIs(err, ErrCategoryUniqueViolation)
				require.Nil(c)
			})
		}
	})

	t.Run("must panic MustNewCategories if error", func(t *testing.T) {
		require.Panics(func() { MustNewCategories(map[string]string{"a": "Yes"}) })
	})
}

func TestCategories_Enum(t *testing.T) {
	require := require.New(t)

	c := MustNewCategories(testCategories(3))

	t.Run("must enum in ascending code order", func(t *testing.T) {
		next := CategoryCode(1)
		c.Enum(func(code CategoryCode, label string) {
			require.Equal(next, code)
			require.Equal(fmt.Sprintf("Category %d", code), label)
			next++
		})
		require.EqualValues(4, next)
	})

	t.Run("must copy on Map and Codes", func(t *testing.T) {
		m := c.Map()
		m[100] = "intruder"
		require.False(c.Contains(100))

		cc := c.Codes()
		cc[0] = 100
		require.EqualValues(1, c.Codes()[0])
	})

	t.Run("must print ascending pairs", func(t *testing.T) {
		pp := c.PrintCategories()
		require.Equal([]Category{
			{Code: 1, Label: "Category 1"},
			{Code: 2, Label: "Category 2"},
			{Code: 3, Label: "Category 3"},
		}, pp)
	})

	t.Run("must render string form", func(t *testing.T) {
		require.Equal(`categories [1: «Category 1», 2: «Category 2», 3: «Category 3»]`, c.String())
	})
}

func TestCategories_Intersect(t *testing.T) {
	require := require.New(t)

	t.Run("must match reversed codes by labels", func(t *testing.T) {
		c := MustNewCategories(testCategories(10))

		// other set holds the same labels under reversed codes
		other := make(map[CategoryCode]string, 10)
		for i := 1; i <= 10; i++ {
			other[CategoryCode(11-i)] = fmt.Sprintf("Category %d", i)
		}

		res := c.Intersect(other)
		require.Len(res, 10)
		for i, m := range res {
			require.EqualValues(i+1, m.Code)
			require.EqualValues(10-i, m.OtherCode)
			require.Equal(fmt.Sprintf("Category %d", i+1), m.Label)
		}
	})

	t.Run("must compare labels case and spaces insensitive", func(t *testing.T) {
		c := MustNewCategories(map[string]string{"1": "Yes", "2": "No"})

		res := c.Intersect(map[CategoryCode]string{5: " YES", 7: "no "})
		require.Equal([]CategoryMatch{
			{Code: 1, OtherCode: 5, Label: "Yes"},
			{Code: 2, OtherCode: 7, Label: "No"},
		}, res)
	})

	t.Run("must keep zero other code", func(t *testing.T) {
		c := MustNewCategories(map[string]string{"0": "None", "1": "Yes"})

		res := c.Intersect(map[CategoryCode]string{0: "yes", 5: "none"})
		require.Equal([]CategoryMatch{
			{Code: 0, OtherCode: 5, Label: "None"},
			{Code: 1, OtherCode: 0, Label: "Yes"},
		}, res)
	})

	t.Run("must win the greatest other code on duplicate labels", func(t *testing.T) {
		c := MustNewCategories(map[string]string{"1": "Yes"})

		res := c.Intersect(map[CategoryCode]string{3: "yes", 9: "Yes "})
		require.Equal([]CategoryMatch{
			{Code: 1, OtherCode: 9, Label: "Yes"},
		}, res)
	})

	t.Run("must match itself completely", func(t *testing.T) {
		c := MustNewCategories(testCategories(5))

		res := c.Intersect(c.Map())
		require.Len(res, 5)
		for i, m := range res {
			require.EqualValues(i+1, m.Code)
			require.Equal(m.Code, m.OtherCode)
			label, _ := c.Category(m.Code)
			require.Equal(label, m.Label)
		}
	})

	t.Run("must be empty if no matches", func(t *testing.T) {
		c := MustNewCategories(map[string]string{"1": "Yes"})
		require.Empty(c.Intersect(map[CategoryCode]string{1: "Nope"}))
		require.Empty(c.Intersect(nil))
	})
}
