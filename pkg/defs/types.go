/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Maria Zotova
 */

package defs

// FieldDef describes one field of a scheme definition file.
//
// Min and Max are inclusive numeric bounds for integer and float
// kinds. Categories is the code to label block for single and
// multiple kinds, codes are written as strings to keep JSON and YAML
// forms identical.
type FieldDef struct {
	Name       string            `json:"name" yaml:"name" mapstructure:"name"`
	Title      string            `json:"title" yaml:"title" mapstructure:"title"`
	Kind       string            `json:"kind" yaml:"kind" mapstructure:"kind"`
	Min        interface{}       `json:"min,omitempty" yaml:"min,omitempty" mapstructure:"min"`
	Max        interface{}       `json:"max,omitempty" yaml:"max,omitempty" mapstructure:"max"`
	Categories map[string]string `json:"categories,omitempty" yaml:"categories,omitempty" mapstructure:"categories"`
}

// SchemeDef describes a scheme definition file.
//
// Translations is an optional block: message key (field title or
// category label) to language tag to translated value.
type SchemeDef struct {
	Name         string                       `json:"name" yaml:"name" mapstructure:"name"`
	Title        string                       `json:"title" yaml:"title" mapstructure:"title"`
	Fields       []FieldDef                   `json:"fields" yaml:"fields" mapstructure:"fields"`
	Translations map[string]map[string]string `json:"translations,omitempty" yaml:"translations,omitempty" mapstructure:"translations"`
}
