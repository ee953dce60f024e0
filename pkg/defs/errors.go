/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package defs

import "errors"

var ErrWrongBoundValue = errors.New("wrong bound value")

var ErrWrongBoundUse = errors.New("min/max bounds are not applicable")

var ErrCategoriesMissed = errors.New("categories are missed")

var ErrWrongCategoriesUse = errors.New("categories are not applicable")

var ErrUnsupportedFormat = errors.New("unsupported scheme file format")

const errParseSchemeWrap = "can not parse scheme definition as %s: %w" // can not parse scheme definition as JSON: …

const errFieldDefWrap = "field «%s»: %w" // field «age»: …

const errFieldBoundWrap = "field «%s»: %s bound «%v»: %w" // field «age»: min bound «ten»: …

const errTranslationLangWrap = "translations for «%s»: language «%s»: %w" // translations for «Yes»: language «klingon»: …

const errUnsupportedExtWrap = "scheme file extension «%s»: %w" // scheme file extension «.toml»: …
