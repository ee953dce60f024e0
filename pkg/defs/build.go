/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package defs

import (
	"encoding/json"
	"fmt"
	"math"

	"golang.org/x/text/language"

	"github.com/surveta/surveta/pkg/coreutils"
	"github.com/surveta/surveta/pkg/surveydef"
)

// Build constructs the scheme described by def.
//
// Field defs are checked against their kinds: bounds are allowed for
// integer and float fields only, categories are required for single
// and multiple fields and denied for others.
func (def *SchemeDef) Build() (*surveydef.Scheme, error) {
	fields := make([]surveydef.IField, 0, len(def.Fields))
	for i := range def.Fields {
		fld, err := def.Fields[i].build()
		if err != nil {
			return nil, err
		}
		fields = append(fields, fld)
	}
	return surveydef.NewScheme(def.Name, def.Title, fields...)
}

// BuildTranslations returns the translations block with parsed
// language tags. Returns nil if the block is empty.
func (def *SchemeDef) BuildTranslations() (coreutils.Translations, error) {
	if len(def.Translations) == 0 {
		return nil, nil
	}
	res := make(coreutils.Translations, len(def.Translations))
	for key, byLang := range def.Translations {
		m := make(map[language.Tag]string, len(byLang))
		for lng, value := range byLang {
			tag, err := language.Parse(lng)
			if err != nil {
				return nil, fmt.Errorf(errTranslationLangWrap, key, lng, err)
			}
			m[tag] = value
		}
		res[key] = m
	}
	return res, nil
}

// BuildLocalizer returns a localizer over the translations block. The
// localizer of a scheme without translations returns all keys as is.
func (def *SchemeDef) BuildLocalizer() (*coreutils.Localizer, error) {
	tt, err := def.BuildTranslations()
	if err != nil {
		return nil, err
	}
	return coreutils.NewLocalizer(tt), nil
}

func (fd *FieldDef) build() (surveydef.IField, error) {
	kind, err := surveydef.ParseFieldKind(fd.Kind)
	if err != nil {
		return nil, fmt.Errorf(errFieldDefWrap, fd.Name, err)
	}

	numeric := (kind == surveydef.FieldKind_integer) || (kind == surveydef.FieldKind_float)
	categorical := (kind == surveydef.FieldKind_single) || (kind == surveydef.FieldKind_multiple)

	if !numeric && ((fd.Min != nil) || (fd.Max != nil)) {
		return nil, fmt.Errorf(errFieldDefWrap, fd.Name, ErrWrongBoundUse)
	}
	if categorical && (len(fd.Categories) == 0) {
		return nil, fmt.Errorf(errFieldDefWrap, fd.Name, ErrCategoriesMissed)
	}
	if !categorical && (len(fd.Categories) > 0) {
		return nil, fmt.Errorf(errFieldDefWrap, fd.Name, ErrWrongCategoriesUse)
	}

	switch kind {
	case surveydef.FieldKind_integer, surveydef.FieldKind_float:
		cc, err := fd.constraints()
		if err != nil {
			return nil, err
		}
		if kind == surveydef.FieldKind_integer {
			return surveydef.NewInteger(fd.Name, fd.Title, cc...)
		}
		return surveydef.NewFloat(fd.Name, fd.Title, cc...)
	case surveydef.FieldKind_string:
		return surveydef.NewString(fd.Name, fd.Title)
	case surveydef.FieldKind_single:
		return surveydef.NewSingle(fd.Name, fd.Title, fd.Categories)
	default: // FieldKind_multiple, ParseFieldKind returns no other kinds
		return surveydef.NewMultiple(fd.Name, fd.Title, fd.Categories)
	}
}

func (fd *FieldDef) constraints() ([]surveydef.Constraint, error) {
	cc := make([]surveydef.Constraint, 0, 2)
	if fd.Min != nil {
		v, err := boundValue(fd.Min)
		if err != nil {
			return nil, fmt.Errorf(errFieldBoundWrap, fd.Name, "min", fd.Min, err)
		}
		cc = append(cc, surveydef.MinIncl(v))
	}
	if fd.Max != nil {
		v, err := boundValue(fd.Max)
		if err != nil {
			return nil, fmt.Errorf(errFieldBoundWrap, fd.Name, "max", fd.Max, err)
		}
		cc = append(cc, surveydef.MaxIncl(v))
	}
	return cc, nil
}

// boundValue converts a raw bound to float64. Only finite numeric
// values are accepted, strings and booleans are not bounds.
func boundValue(value interface{}) (float64, error) {
	f := float64(0)
	switch v := value.(type) {
	case int:
		f = float64(v)
	case int8:
		f = float64(v)
	case int16:
		f = float64(v)
	case int32:
		f = float64(v)
	case int64:
		f = float64(v)
	case uint:
		f = float64(v)
	case uint8:
		f = float64(v)
	case uint16:
		f = float64(v)
	case uint32:
		f = float64(v)
	case uint64:
		f = float64(v)
	case float32:
		f = float64(v)
	case float64:
		f = v
	case json.Number:
		parsed, err := v.Float64()
		if err != nil {
			return 0, ErrWrongBoundValue
		}
		f = parsed
	default:
		return 0, ErrWrongBoundValue
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, ErrWrongBoundValue
	}
	return f, nil
}
