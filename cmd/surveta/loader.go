/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/untillpro/goutils/logger"

	"github.com/surveta/surveta/pkg/defs"
	"github.com/surveta/surveta/pkg/surveydef"
	"github.com/surveta/surveta/pkg/surveys"
)

// recognized scheme file extensions, in probe order
var schemeExts = []string{".json", ".yaml", ".yml"}

// dirLoader returns a LoadFunc that reads scheme definition files from
// dir. A survey named «srv1» is searched as srv1.json, srv1.yaml or
// srv1.yml.
func dirLoader(dir string) surveys.LoadFunc {
	return func(name string) (*surveydef.Scheme, error) {
		n := strings.TrimSpace(name)
		for _, ext := range schemeExts {
			path := filepath.Join(dir, n+ext)
			if _, err := os.Stat(path); err != nil {
				continue
			}
			scheme, _, err := loadSchemeFile(path)
			if err != nil {
				return nil, err
			}
			if !strings.EqualFold(scheme.Name(), n) {
				return nil, fmt.Errorf("scheme file «%s» defines survey «%s», not «%s»: %w",
					path, scheme.Name(), name, surveys.ErrSurveyNotFound)
			}
			return scheme, nil
		}
		return nil, fmt.Errorf("no scheme file for survey «%s» in «%s»: %w", name, dir, surveys.ErrSurveyNotFound)
	}
}

func loadSchemeFile(path string) (*surveydef.Scheme, *defs.SchemeDef, error) {
	def, err := defs.ParseSchemeFile(path)
	if err != nil {
		return nil, nil, err
	}
	scheme, err := def.Build()
	if err != nil {
		return nil, nil, fmt.Errorf("scheme file «%s»: %w", path, err)
	}
	logger.Verbose(fmt.Sprintf("scheme «%s» loaded from «%s»", scheme.Name(), path))
	return scheme, def, nil
}
