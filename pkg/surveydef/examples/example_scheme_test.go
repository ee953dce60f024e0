/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef_test

import (
	"fmt"

	"github.com/surveta/surveta/pkg/surveydef"
)

func ExampleNewScheme() {
	age := surveydef.MustNewInteger("age", "Your age", surveydef.MinIncl(0), surveydef.MaxIncl(120))
	drink := surveydef.MustNewSingle("drink", "Favorite drink", map[string]string{"1": "Tea", "2": "Coffee"})

	s := surveydef.MustNewScheme("srv1", "Morning survey", age, drink)

	fmt.Println(s)
	s.Fields(func(f surveydef.IField) {
		fmt.Println("-", f)
	})

	v, ok, _ := s.Field("age").CoerceValue("42")
	fmt.Println(v, ok)

	label, _ := s.Field("drink").PrintValue(2)
	fmt.Println(label)

	// Output:
	// scheme «srv1» (2 fields)
	// - integer-field «age»
	// - single-field «drink»
	// 42 true
	// Coffee
}

func ExampleScheme_PrintFields() {
	s := surveydef.MustNewScheme("srv1", "Morning survey",
		surveydef.MustNewInteger("q1", "How old are you?"),
		surveydef.MustNewString("q2", "Where are you from?"),
	)

	fmt.Println(s.PrintFields())

	// Output:
	// q1. How old are you?
	// q2. Where are you from?
}

func ExampleCategories_Intersect() {
	c := surveydef.MustNewCategories(map[string]string{"1": "Yes", "2": "No"})

	matches := c.Intersect(map[surveydef.CategoryCode]string{7: "no", 9: "YES"})
	for _, m := range matches {
		fmt.Printf("%d ~ %d: %s\n", m.Code, m.OtherCode, m.Label)
	}

	// Output:
	// 1 ~ 9: Yes
	// 2 ~ 7: No
}
