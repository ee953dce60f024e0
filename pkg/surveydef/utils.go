/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package surveydef

import (
	"strings"

	"golang.org/x/text/cases"
)

// foldName returns name normalized for case insensitive indexing: surrounding
// spaces trimmed, characters case folded.
//
// cases.Caser is stateful, a new one is created per call
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}

// emptySlice reports whether value is an empty slice of some supported raw
// slice type. Empty containers are absent answers
func emptySlice(value any) bool {
	switch v := value.(type) {
	case []any:
		return len(v) == 0
	case []string:
		return len(v) == 0
	case []int:
		return len(v) == 0
	case []int64:
		return len(v) == 0
	case []float64:
		return len(v) == 0
	case []CategoryCode:
		return len(v) == 0
	}
	return false
}
