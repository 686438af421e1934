// Package lesson holds the demonstration sections printed by basicstour.
//
// Each Section is a short, self-contained walk through one language feature.
// Sections share nothing except the Tour they run against, so any subset can
// be run in any session.
package lesson

import (
	"context"
	"errors"
	"fmt"

	"dominicbreuker/basicstour/pkg/random"
)

// ErrUnknownSection is returned by Select for a name not in the catalog.
var ErrUnknownSection = errors.New("unknown section")

// Section is one named demonstration block.
type Section struct {
	Name  string
	Title string
	Show  func(t *Tour) error
}

// Tour is what a section runs against.
type Tour struct {
	Out    *Printer
	Random *random.Generator
	Bound  int
}

// Sections returns the catalog in presentation order.
func Sections() []Section {
	return []Section{
		{Name: "functions", Title: "Functions", Show: showFunctions},
		{Name: "random-numbers", Title: "Random numbers", Show: showRandom},
		{Name: "variables", Title: "Variables and constants", Show: showVariables},
		{Name: "strings", Title: "Strings", Show: showStrings},
		{Name: "arrays", Title: "Arrays", Show: showArrays},
		{Name: "slices", Title: "Slices", Show: showSlices},
		{Name: "tuples", Title: "Structs and multiple return values", Show: showTuples},
		{Name: "maps", Title: "Maps", Show: showMaps},
		{Name: "operators", Title: "Operators", Show: showOperators},
		{Name: "control-flow", Title: "If and else", Show: showControlFlow},
		{Name: "switch", Title: "Switch", Show: showSwitch},
		{Name: "loops", Title: "Loops", Show: showLoops},
		{Name: "ownership", Title: "Values and copies", Show: showOwnership},
		{Name: "borrowing", Title: "Pointers", Show: showBorrowing},
		{Name: "errors", Title: "Errors", Show: showErrors},
	}
}

// Select returns the named sections in catalog order, each at most once.
// No names selects the whole catalog.
func Select(names []string) ([]Section, error) {
	all := Sections()
	if len(names) == 0 {
		return all, nil
	}

	wanted := make(map[string]bool, len(names))
	for _, name := range names {
		wanted[name] = true
	}

	var out []Section
	for _, s := range all {
		if wanted[s.Name] {
			out = append(out, s)
			delete(wanted, s.Name)
		}
	}

	for _, name := range names {
		if wanted[name] {
			return nil, fmt.Errorf("%w: %q", ErrUnknownSection, name)
		}
	}

	return out, nil
}

// Run prints each section under its heading. It stops before the next
// section once ctx is done.
func (t *Tour) Run(ctx context.Context, sections []Section) error {
	for i, s := range sections {
		if err := ctx.Err(); err != nil {
			return err
		}

		if i > 0 {
			t.Out.Println()
		}
		t.Out.Heading(s.Title)

		if err := s.Show(t); err != nil {
			return fmt.Errorf("section %s: %w", s.Name, err)
		}
	}

	return nil
}
