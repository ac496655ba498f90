// Package model defines the core domain models used throughout the application.
package model

import (
	"errors"
	"fmt"
	"strings"
)

// Section is one of the two independent transaction namespaces.
type Section string

// Section constants.
const (
	SectionIndividual Section = "individual"
	SectionVendor     Section = "vendor"
)

// DefaultSection is selected when nothing has been persisted yet.
const DefaultSection = SectionIndividual

// ErrUnknownSection is returned for any section name other than individual or vendor.
var ErrUnknownSection = errors.New("unknown section")

// Sections lists every section in display order.
func Sections() []Section {
	return []Section{SectionIndividual, SectionVendor}
}

// Valid reports whether s names a known section.
func (s Section) Valid() bool {
	return s == SectionIndividual || s == SectionVendor
}

func (s Section) String() string {
	return string(s)
}

// ParseSection converts user input into a Section.
func ParseSection(s string) (Section, error) {
	sec := Section(strings.ToLower(strings.TrimSpace(s)))
	if !sec.Valid() {
		return "", fmt.Errorf("%w: %q (expected individual or vendor)", ErrUnknownSection, s)
	}
	return sec, nil
}
