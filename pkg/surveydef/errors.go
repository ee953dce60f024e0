/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveydef

import "errors"

var ErrNameMissed = errors.New("name is empty")

var ErrNameUniqueViolation = errors.New("duplicate name")

var ErrFieldNotFound = errors.New("field not found")

var ErrWrongFieldValue = errors.New("wrong field value")

var ErrInvalidCategoryCode = errors.New("invalid category code")

var ErrCategoryUniqueViolation = errors.New("duplicate category")

var ErrIncompatibleConstraints = errors.New("incompatible constraints")

var ErrInvalidFieldKind = errors.New("invalid field kind")

const errFieldNotFoundWrap = "field «%s» is not found in scheme «%s»: %w" // field «q1» is not found in scheme «srv1»: …

const errFieldAlreadyExistsWrap = "%v: field «%s» is already exists: %w"

const errValueTypeMismatchWrap = "%v: value type «%T» is not applicable: %w" // integer-field «q1»: value type «bool» is not applicable: …

const errValueParseWrap = "%v: can not convert value «%v» to %s: %w" // integer-field «q1»: can not convert value «ab» to int64: …

const errValueBelowMinWrap = "%v: value «%v» is less than minimum «%v»: %w"

const errValueAboveMaxWrap = "%v: value «%v» is greater than maximum «%v»: %w"

const errCodeNotInCategoriesWrap = "%v: code «%v» is not in categories: %w"

const errCategoryCodeWrap = "category code «%s» is not an integer: %w"

const errCategoryCodeDupWrap = "category code «%s» duplicates code «%v»: %w"

const errCategoryLabelDupWrap = "category label «%s» (code «%v») duplicates label «%s» (code «%v»): %w"
