package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds defaults read from the environment. Command-line flags
// override them.
type Env struct {
	Seed  string `env:"BASICSTOUR_SEED"`
	Bound int    `env:"BASICSTOUR_BOUND" envDefault:"100"`
	// Any non-empty NO_COLOR value disables color.
	NoColor string `env:"NO_COLOR"`
}

// ColorDisabled reports whether NO_COLOR is set to a non-empty value.
func (e Env) ColorDisabled() bool {
	return e.NoColor != ""
}

// ParseEnv loads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

// LoadEnv returns Env for flag defaults shown in help, falling back to
// built-in defaults when a variable is malformed. Commands call ParseEnv
// when they run so the malformed variable is reported.
func LoadEnv() Env {
	e, err := ParseEnv()
	if err != nil {
		return Env{Bound: DefaultBound}
	}
	return e
}
