/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package defs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/surveta/surveta/pkg/coreutils"
)

// ParseSchemeJSON parses a JSON scheme definition. Numeric bounds are
// kept as json.Number.
func ParseSchemeJSON(b []byte) (*SchemeDef, error) {
	def := &SchemeDef{}
	if err := coreutils.JSONUnmarshal(b, def); err != nil {
		return nil, fmt.Errorf(errParseSchemeWrap, "JSON", err)
	}
	return def, nil
}

// ParseSchemeYAML parses a YAML scheme definition. Category codes must
// be written as strings ("1": "Yes").
func ParseSchemeYAML(b []byte) (*SchemeDef, error) {
	def := &SchemeDef{}
	if err := yaml.Unmarshal(b, def); err != nil {
		return nil, fmt.Errorf(errParseSchemeWrap, "YAML", err)
	}
	return def, nil
}

// ParseSchemeFile parses a scheme definition file. The format is
// chosen by the file extension: «.json», «.yaml» or «.yml».
func ParseSchemeFile(path string) (*SchemeDef, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		return ParseSchemeJSON(b)
	case ".yaml", ".yml":
		return ParseSchemeYAML(b)
	default:
		return nil, fmt.Errorf(errUnsupportedExtWrap, ext, ErrUnsupportedFormat)
	}
}

// DecodeScheme decodes a generic value tree, for example a block of a
// larger configuration file, into a scheme definition.
func DecodeScheme(raw interface{}) (*SchemeDef, error) {
	def := &SchemeDef{}
	if err := mapstructure.Decode(raw, def); err != nil {
		return nil, fmt.Errorf(errParseSchemeWrap, "value tree", err)
	}
	return def, nil
}
