/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package answers

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/surveta/surveta/pkg/surveydef"
)

// Record collects typed answer values for one survey scheme.
//
// Values are put with Put and checked against the scheme field by
// field. Put does not fail, it collects errors; Build returns their
// join. Readers return the zero value for fields without a value and
// panic on fields the scheme does not know.
type Record struct {
	scheme *surveydef.Scheme
	data   map[string]interface{}
	err    error
}

func newRecord(scheme *surveydef.Scheme) *Record {
	return &Record{
		scheme: scheme,
		data:   make(map[string]interface{}),
	}
}

// Build returns the join of errors collected by Put calls. The record
// is complete when Build returns nil.
func (r *Record) Build() error {
	return r.err
}

// Put coerces value with the named field and stores the result. When
// the field reports the value absent, the stored value is cleared.
// Lookup and coercion failures are collected, see Build.
func (r *Record) Put(name string, value interface{}) {
	fld, err := r.scheme.FieldByName(name)
	if err != nil {
		r.collectError(err)
		return
	}
	res, ok, err := fld.CoerceValue(value)
	if err != nil {
		r.collectError(err)
		return
	}
	if !ok {
		delete(r.data, fld.Name())
		return
	}
	r.data[fld.Name()] = res
}

func (r *Record) AsInt64(name string) int64 {
	if value := r.fieldValue(name, surveydef.FieldKind_integer); value != nil {
		return value.(int64)
	}
	return 0
}

func (r *Record) AsFloat64(name string) float64 {
	if value := r.fieldValue(name, surveydef.FieldKind_float); value != nil {
		return value.(float64)
	}
	return 0
}

func (r *Record) AsString(name string) string {
	if value := r.fieldValue(name, surveydef.FieldKind_string); value != nil {
		return value.(string)
	}
	return ""
}

func (r *Record) AsCode(name string) surveydef.CategoryCode {
	if value := r.fieldValue(name, surveydef.FieldKind_single); value != nil {
		return value.(surveydef.CategoryCode)
	}
	return 0
}

func (r *Record) AsCodes(name string) []surveydef.CategoryCode {
	if value := r.fieldValue(name, surveydef.FieldKind_multiple); value != nil {
		return slices.Clone(value.([]surveydef.CategoryCode))
	}
	return nil
}

// Value returns the stored canonical value of the named field. Unknown
// fields and fields without a value return (nil, false). The returned
// value must not be modified.
func (r *Record) Value(name string) (value interface{}, ok bool) {
	fld := r.scheme.Field(name)
	if fld == nil {
		return nil, false
	}
	value, ok = r.data[fld.Name()]
	return value, ok
}

func (r *Record) HasValue(name string) bool {
	_, ok := r.Value(name)
	return ok
}

// FieldNames enumerates fields with values in scheme order.
func (r *Record) FieldNames(cb func(fieldName string)) {
	r.scheme.Fields(func(fld surveydef.IField) {
		if _, ok := r.data[fld.Name()]; ok {
			cb(fld.Name())
		}
	})
}

// PrintValue returns the display form of the stored value of the named
// field, see surveydef.IField.PrintValue.
func (r *Record) PrintValue(name string) (interface{}, error) {
	fld, err := r.scheme.FieldByName(name)
	if err != nil {
		return nil, err
	}
	return fld.PrintValue(r.data[fld.Name()])
}

func (r *Record) Scheme() *surveydef.Scheme {
	return r.scheme
}

// collectError collects errors that occur when Put puts a value
func (r *Record) collectError(err error) {
	r.err = errors.Join(r.err, err)
}

func (r *Record) fieldValue(name string, kind surveydef.FieldKind) interface{} {
	fld := r.scheme.Field(name)
	if fld == nil {
		panic(fmt.Errorf(errFieldNotFoundWrap, kind.TrimString(), name, r.scheme.Name(), surveydef.ErrFieldNotFound))
	}
	if fld.Kind() != kind {
		panic(fmt.Errorf(errFieldKindMismatchWrap, kind.TrimString(), fld, surveydef.ErrWrongFieldValue))
	}
	return r.data[fld.Name()]
}
