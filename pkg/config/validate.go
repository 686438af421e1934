package config

import "fmt"

// ValidatableConfig is implemented by every command configuration.
type ValidatableConfig interface {
	Validate() []error
}

// Validate collects the errors of all given configurations.
func Validate(cfgs ...ValidatableConfig) []error {
	var out []error

	for _, cfg := range cfgs {
		out = append(out, cfg.Validate()...)
	}

	return out
}

func validateBound(bound int) error {
	if bound < 1 {
		return fmt.Errorf("must be at least 1, got %d", bound)
	}

	return nil
}
