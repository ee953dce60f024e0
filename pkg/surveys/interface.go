/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveys

import "github.com/surveta/surveta/pkg/surveydef"

// Survey schemes registry.
//
// Survey names are matched the scheme way: case-insensitively,
// ignoring leading and trailing blanks.
//
// @ConcurrentAccess
type ISurveys interface {
	// Adds scheme to the registry.
	//
	// Returns ErrSurveyAlreadyExists if a scheme with the same name
	// is already registered
	Add(scheme *surveydef.Scheme) error

	// Returns scheme by survey name, nil if not found
	Survey(name string) *surveydef.Scheme

	// Returns count of registered schemes
	SurveyCount() int

	// Enumerates all registered schemes in survey name order
	Surveys(cb func(*surveydef.Scheme))
}

// Resolves survey schemes by name.
//
// @ConcurrentAccess
type ISurveysProvider interface {
	// Returns scheme by survey name.
	//
	// Returns ErrSurveyNotFound if no scheme with such name is known
	Survey(name string) (*surveydef.Scheme, error)
}

// LoadFunc loads a scheme by survey name.
type LoadFunc func(name string) (*surveydef.Scheme, error)
