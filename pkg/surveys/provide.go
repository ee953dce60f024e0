/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveys

import (
	"fmt"

	"github.com/surveta/surveta/pkg/surveydef"
)

// New returns a new empty surveys registry.
func New() ISurveys {
	return newSurveys()
}

// NewCachingProvider returns a provider that resolves schemes through
// load and keeps up to size recently used schemes in memory. Load
// failures are not cached.
func NewCachingProvider(load LoadFunc, size int) ISurveysProvider {
	return newCachedProvider(load, size)
}

// RegistryLoader returns a LoadFunc that resolves schemes against the
// registry.
func RegistryLoader(registry ISurveys) LoadFunc {
	return func(name string) (*surveydef.Scheme, error) {
		if scheme := registry.Survey(name); scheme != nil {
			return scheme, nil
		}
		return nil, fmt.Errorf(errSurveyWrap, name, ErrSurveyNotFound)
	}
}
