/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Category is a code with its label
type Category struct {
	Code  CategoryCode
	Label string
}

// CategoryMatch is an element of categories intersection.
//
// Ref. to Categories.Intersect
type CategoryMatch struct {
	Code      CategoryCode // code in own categories
	OtherCode CategoryCode // code of the same label in other categories
	Label     string       // own label
}

// Categories is a category set of a choice field: code → label with unique
// labels. Make with NewCategories.
//
// Category set is immutable. Choice fields swap the whole set on replace
type Categories struct {
	m     map[CategoryCode]string
	codes []CategoryCode // ascending
}

// NewCategories makes a category set from raw map: textual code → label.
// Raw keys are processed in sorted order.
//
// Returns error wrapping:
//   - ErrInvalidCategoryCode if some key is not an integer,
//   - ErrNameMissed if some label is blank,
//   - ErrCategoryUniqueViolation if two keys resolve to the same code or
//     two labels are the same. Labels are compared case and spaces
//     insensitive, every pair is checked
func NewCategories(raw map[string]string) (*Categories, error) {
	c := &Categories{
		m:     make(map[CategoryCode]string, len(raw)),
		codes: make([]CategoryCode, 0, len(raw)),
	}
	folded := make(map[string]CategoryCode, len(raw)) // folded label → code

	keys := maps.Keys(raw)
	slices.Sort(keys)
	for _, key := range keys {
		code, err := parseCategoryCode(key)
		if err != nil {
			return nil, err
		}
		label := strings.TrimSpace(raw[key])
		if label == "" {
			return nil, fmt.Errorf("category «%v»: empty label: %w", code, ErrNameMissed)
		}
		if _, ok := c.m[code]; ok {
			return nil, fmt.Errorf(errCategoryCodeDupWrap, key, code, ErrCategoryUniqueViolation)
		}
		fl := foldName(label)
		if dup, ok := folded[fl]; ok {
			return nil, fmt.Errorf(errCategoryLabelDupWrap, label, code, c.m[dup], dup, ErrCategoryUniqueViolation)
		}
		folded[fl] = code
		c.m[code] = label
		c.codes = append(c.codes, code)
	}
	slices.Sort(c.codes)
	return c, nil
}

// NewCategories panic wrapper
func MustNewCategories(raw map[string]string) *Categories {
	c, err := NewCategories(raw)
	if err != nil {
		panic(err)
	}
	return c
}

// Returns category label and whether category with specified code exists
func (c *Categories) Category(code CategoryCode) (label string, ok bool) {
	label, ok = c.m[code]
	return label, ok
}

func (c *Categories) CategoryCount() int { return len(c.codes) }

// Returns ascending category codes. Result is a fresh copy
func (c *Categories) Codes() []CategoryCode { return slices.Clone(c.codes) }

func (c *Categories) Contains(code CategoryCode) bool {
	_, ok := c.m[code]
	return ok
}

// Enumerates categories in ascending code order
func (c *Categories) Enum(cb func(code CategoryCode, label string)) {
	for _, code := range c.codes {
		cb(code, c.m[code])
	}
}

// Intersect returns categories with same labels in own and other categories.
// Labels are compared case and spaces insensitive. Result is ordered by own
// ascending code.
//
// If other categories hold the same label under several codes, then the
// greatest code wins
func (c *Categories) Intersect(other map[CategoryCode]string) []CategoryMatch {
	otherByLabel := make(map[string]CategoryCode, len(other))
	oo := maps.Keys(other)
	slices.Sort(oo)
	for _, code := range oo {
		otherByLabel[foldName(other[code])] = code
	}

	var res []CategoryMatch
	for _, code := range c.codes {
		label := c.m[code]
		if oc, ok := otherByLabel[foldName(label)]; ok {
			res = append(res, CategoryMatch{Code: code, OtherCode: oc, Label: label})
		}
	}
	return res
}

// Returns copy of categories map
func (c *Categories) Map() map[CategoryCode]string {
	return maps.Clone(c.m)
}

// Returns categories in ascending code order, suitable for printing
func (c *Categories) PrintCategories() []Category {
	res := make([]Category, len(c.codes))
	for i, code := range c.codes {
		res[i] = Category{Code: code, Label: c.m[code]}
	}
	return res
}

func (c *Categories) String() string {
	ss := make([]string, len(c.codes))
	for i, code := range c.codes {
		ss[i] = fmt.Sprintf("%v: «%s»", code, c.m[code])
	}
	return fmt.Sprintf("categories [%s]", strings.Join(ss, ", "))
}

// parseCategoryCode parses a textual category code.
//
// Returns error wrapping ErrInvalidCategoryCode if text is not an integer
func parseCategoryCode(s string) (CategoryCode, error) {
	v, err := strconv.ParseInt(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf(errCategoryCodeWrap, s, ErrInvalidCategoryCode)
	}
	return CategoryCode(v), nil
}
