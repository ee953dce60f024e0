/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package answers

import (
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/surveta/surveta/pkg/surveydef"
)

// NewRecord returns a new empty record for the scheme.
func NewRecord(scheme *surveydef.Scheme) *Record {
	return newRecord(scheme)
}

// BuildRecord returns a record filled with data values. Values are put
// in field name order to keep error reporting deterministic.
func BuildRecord(scheme *surveydef.Scheme, data map[string]interface{}) (*Record, error) {
	rec := newRecord(scheme)
	names := maps.Keys(data)
	slices.Sort(names)
	for _, name := range names {
		rec.Put(name, data[name])
	}
	if err := rec.Build(); err != nil {
		return nil, err
	}
	return rec, nil
}
