// Package config holds the validated settings for each basicstour command.
package config

import "fmt"

// DefaultBound is the upper bound of the random section when none is given.
const DefaultBound = 100

// Tour configures the run command.
type Tour struct {
	Sections []string
	Seed     string
	Bound    int
	NoColor  bool
	Verbose  bool
}

func (c *Tour) Validate() []error {
	var errors []error

	if err := validateBound(c.Bound); err != nil {
		errors = append(errors, fmt.Errorf("'--bound' %s", err))
	}

	for _, name := range c.Sections {
		if name == "" {
			errors = append(errors, fmt.Errorf("'--section' must not be empty"))
			break
		}
	}

	return errors
}

// Random configures the random command.
type Random struct {
	Seed  string
	Bound int
	Count int
}

func (c *Random) Validate() []error {
	var errors []error

	if err := validateBound(c.Bound); err != nil {
		errors = append(errors, fmt.Errorf("'--bound' %s", err))
	}

	if c.Count < 1 {
		errors = append(errors, fmt.Errorf("'--count' must be at least 1"))
	}

	return errors
}

// Format selects how the section catalog is printed.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
)

// List configures the list command.
type List struct {
	Format Format
}

func (c *List) Validate() []error {
	switch c.Format {
	case FormatText, FormatYAML:
		return nil
	default:
		return []error{fmt.Errorf("'--format' must be one of %s|%s, got %q", FormatText, FormatYAML, c.Format)}
	}
}
