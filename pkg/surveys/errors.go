/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveys

import "errors"

var ErrSurveyAlreadyExists = errors.New("survey already exists")

var ErrSurveyNotFound = errors.New("survey not found")

const errSurveyWrap = "survey «%s»: %w" // survey «srv1»: survey not found
