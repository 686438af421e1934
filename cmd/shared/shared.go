// Package shared provides common CLI flag definitions and utility functions
// used across basicstour's command-line interface.
package shared

import (
	"fmt"
	"io"
	"os"

	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/log"
	"dominicbreuker/basicstour/pkg/terminal"

	"github.com/urfave/cli/v3"
)

const categoryCommon = "common"

// VerboseFlag is the name of the flag to enable verbose logging.
const VerboseFlag = "verbose"

// NoColorFlag is the name of the flag to disable colored output.
const NoColorFlag = "no-color"

// GetCommonFlags returns the flags every command accepts.
func GetCommonFlags(env config.Env) []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:     VerboseFlag,
			Aliases:  []string{"v"},
			Usage:    "Verbose logging",
			Category: categoryCommon,
			Value:    false,
			Required: false,
		},
		&cli.BoolFlag{
			Name:     NoColorFlag,
			Usage:    "Disable colored output (also set by NO_COLOR)",
			Category: categoryCommon,
			Value:    env.ColorDisabled(),
			Required: false,
		},
	}
}

const categoryRandom = "random"

// SeedFlag is the name of the flag to seed the random generator.
const SeedFlag = "seed"

// BoundFlag is the name of the flag to set the random upper bound.
const BoundFlag = "bound"

// GetRandomFlags returns the flags controlling the random generator.
func GetRandomFlags(env config.Env) []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     SeedFlag,
			Usage:    "Seed for reproducible random numbers, leave empty for a fresh sequence (also set by BASICSTOUR_SEED)",
			Category: categoryRandom,
			Value:    env.Seed,
			Required: false,
		},
		&cli.IntFlag{
			Name:     BoundFlag,
			Aliases:  []string{"b"},
			Usage:    "Upper bound of random numbers, inclusive (also set by BASICSTOUR_BOUND)",
			Category: categoryRandom,
			Value:    config.DefaultBound,
			Required: false,
		},
	}
}

// GetBound returns the bound flag, falling back to the environment when
// the flag was not given. An explicit zero from the environment is kept so
// validation rejects it.
func GetBound(cmd *cli.Command, env config.Env) int {
	if !cmd.IsSet(BoundFlag) {
		return env.Bound
	}
	return int(cmd.Int(BoundFlag))
}

// GetSeed returns the seed flag, falling back to the environment when the
// flag was not given.
func GetSeed(cmd *cli.Command, env config.Env) string {
	if !cmd.IsSet(SeedFlag) {
		return env.Seed
	}
	return cmd.String(SeedFlag)
}

// ParseEnv reads the environment, reporting a malformed variable the way
// flag validation errors are reported.
func ParseEnv() (config.Env, error) {
	env, err := config.ParseEnv()
	if err != nil {
		return config.Env{}, ReportErrors([]error{err})
	}
	return env, nil
}

// Writer returns where command output goes: the root command's writer
// when one is set, stdout otherwise.
func Writer(cmd *cli.Command) io.Writer {
	if root := cmd.Root(); root != nil && root.Writer != nil {
		return root.Writer
	}
	return os.Stdout
}

// ColorEnabled reports whether output written to w should be colored.
func ColorEnabled(w io.Writer, noColor bool) bool {
	f, ok := w.(*os.File)
	return ok && terminal.ColorEnabled(f, noColor)
}

// SetupLogging applies the common flags to the logger.
func SetupLogging(verbose, noColor bool) {
	log.SetVerbose(verbose)
	log.SetColor(terminal.ColorEnabled(os.Stderr, noColor))
}

// ReportErrors logs validation errors one per line and returns the error
// the command should exit with. It returns nil when errs is empty.
func ReportErrors(errs []error) error {
	if len(errs) == 0 {
		return nil
	}

	log.ErrorMsg("Argument validation errors:\n")
	for _, err := range errs {
		log.ErrorMsg(" - %s\n", err)
	}
	return fmt.Errorf("exiting")
}
