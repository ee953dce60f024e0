/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package surveys

import (
	"fmt"
	"strings"
	"sync"

	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"

	"github.com/surveta/surveta/pkg/surveydef"
)

// # Implements:
//   - ISurveys
type surveys struct {
	mx     sync.RWMutex
	byName map[string]*surveydef.Scheme
	names  []string // folded names, ascending
}

func newSurveys() *surveys {
	return &surveys{
		byName: make(map[string]*surveydef.Scheme),
	}
}

func (s *surveys) Add(scheme *surveydef.Scheme) error {
	k := foldName(scheme.Name())

	s.mx.Lock()
	defer s.mx.Unlock()

	if _, ok := s.byName[k]; ok {
		return fmt.Errorf(errSurveyWrap, scheme.Name(), ErrSurveyAlreadyExists)
	}
	s.byName[k] = scheme
	pos, _ := slices.BinarySearch(s.names, k)
	s.names = slices.Insert(s.names, pos, k)
	return nil
}

func (s *surveys) Survey(name string) *surveydef.Scheme {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return s.byName[foldName(name)]
}

func (s *surveys) SurveyCount() int {
	s.mx.RLock()
	defer s.mx.RUnlock()

	return len(s.names)
}

func (s *surveys) Surveys(cb func(*surveydef.Scheme)) {
	s.mx.RLock()
	schemes := make([]*surveydef.Scheme, len(s.names))
	for i, k := range s.names {
		schemes[i] = s.byName[k]
	}
	s.mx.RUnlock()

	// cb is called without the lock, it may use the registry
	for _, scheme := range schemes {
		cb(scheme)
	}
}

// cases.Caser is stateful, a new one is created per call
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
