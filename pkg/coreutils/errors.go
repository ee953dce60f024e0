/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package coreutils

import "errors"

var ErrFieldsMissed = errors.New("fields are missed")

var ErrFieldTypeMismatch = errors.New("field type mismatch")
