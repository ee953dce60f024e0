/*
 * Copyright (c) 2023-present Surveta, Ltd.
 * @author: Denis Gromov
 * @author: Maria Zotova
 */

package surveydef

import (
	"fmt"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"
)

// Scheme is an ordered, name indexed collection of survey fields.
//
// Fields are indexed by name, case and spaces insensitive. Enumeration keeps
// the questionnaire order
type Scheme struct {
	name          string
	title         string
	fields        map[string]IField
	fieldsOrdered []string // folded names in questionnaire order
}

// NewScheme returns new scheme with specified fields.
//
// Returns error wrapping:
//   - ErrNameMissed if scheme name or some field name is empty,
//   - ErrNameUniqueViolation if some field name repeats
func NewScheme(name, title string, fields ...IField) (*Scheme, error) {
	n := strings.TrimSpace(name)
	if n == "" {
		return nil, fmt.Errorf("empty scheme name: %w", ErrNameMissed)
	}
	s := &Scheme{
		name:          n,
		title:         strings.TrimSpace(title),
		fields:        make(map[string]IField),
		fieldsOrdered: make([]string, 0, len(fields)),
	}
	for _, f := range fields {
		if err := s.Append(f); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// NewScheme panic wrapper
func MustNewScheme(name, title string, fields ...IField) *Scheme {
	s, err := NewScheme(name, title, fields...)
	if err != nil {
		panic(err)
	}
	return s
}

// Appends specified field.
//
// Returns error wrapping:
//   - ErrNameMissed if field name is empty,
//   - ErrNameUniqueViolation if field with the same name already exists
func (s *Scheme) Append(f IField) error {
	n, err := s.keyOf(f)
	if err != nil {
		return err
	}
	s.fields[n] = f
	s.fieldsOrdered = append(s.fieldsOrdered, n)
	return nil
}

// Equal returns whether two schemes hold the same fields under the same
// names. Field order, scheme name and title do not matter
func (s *Scheme) Equal(other *Scheme) bool {
	if other == nil {
		return false
	}
	return maps.Equal(s.fields, other.fields)
}

// Returns field by name. Lookup is case and spaces insensitive.
//
// Returns nil if field is not found
func (s *Scheme) Field(name string) IField {
	if f, ok := s.fields[foldName(name)]; ok {
		return f
	}
	return nil
}

// Returns field at position in questionnaire order.
//
// # Panics:
//   - if position is out of range
func (s *Scheme) FieldAt(pos int) IField {
	return s.fields[s.fieldsOrdered[pos]]
}

// Returns field by name, as Field does, but with error.
//
// Returns error wrapping ErrFieldNotFound if field is not found
func (s *Scheme) FieldByName(name string) (IField, error) {
	if f := s.Field(name); f != nil {
		return f, nil
	}
	return nil, fmt.Errorf(errFieldNotFoundWrap, name, s.name, ErrFieldNotFound)
}

func (s *Scheme) FieldCount() int { return len(s.fieldsOrdered) }

// Enumerates fields in questionnaire order
func (s *Scheme) Fields(cb func(IField)) {
	for _, n := range s.fieldsOrdered {
		cb(s.fields[n])
	}
}

// Inserts specified field at position. Position is clamped into
// [0, FieldCount()].
//
// Error returns as in Append
func (s *Scheme) Insert(pos int, f IField) error {
	n, err := s.keyOf(f)
	if err != nil {
		return err
	}
	if pos < 0 {
		pos = 0
	}
	if pos > len(s.fieldsOrdered) {
		pos = len(s.fieldsOrdered)
	}
	s.fields[n] = f
	s.fieldsOrdered = slices.Insert(s.fieldsOrdered, pos, n)
	return nil
}

func (s *Scheme) Name() string { return s.name }

// Returns questionnaire captions of all fields, one per line
func (s *Scheme) PrintFields() string {
	mm := make([]string, 0, len(s.fieldsOrdered))
	s.Fields(func(f IField) { mm = append(mm, f.Mark()) })
	return strings.Join(mm, "\n")
}

// Removes field by name.
//
// Returns error wrapping ErrFieldNotFound if field with specified name does
// not exist
func (s *Scheme) Remove(name string) error {
	n := foldName(name)
	if _, ok := s.fields[n]; !ok {
		return fmt.Errorf(errFieldNotFoundWrap, name, s.name, ErrFieldNotFound)
	}
	delete(s.fields, n)
	if i := slices.Index(s.fieldsOrdered, n); i >= 0 {
		s.fieldsOrdered = slices.Delete(s.fieldsOrdered, i, i+1)
	}
	return nil
}

func (s *Scheme) String() string {
	return fmt.Sprintf("scheme «%s» (%d fields)", s.name, len(s.fieldsOrdered))
}

func (s *Scheme) Title() string { return s.title }

// keyOf validates field name and returns its index key
func (s *Scheme) keyOf(f IField) (string, error) {
	n := foldName(f.Name())
	if n == "" {
		return "", fmt.Errorf("%v: empty field name: %w", s, ErrNameMissed)
	}
	if _, ok := s.fields[n]; ok {
		return "", fmt.Errorf(errFieldAlreadyExistsWrap, s, f.Name(), ErrNameUniqueViolation)
	}
	return n, nil
}
