// Package run provides the run command, which prints demonstration
// sections to stdout.
package run

import (
	"context"
	"errors"
	"fmt"
	"io"

	"dominicbreuker/basicstour/cmd/shared"
	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/lesson"
	"dominicbreuker/basicstour/pkg/log"
	"dominicbreuker/basicstour/pkg/random"

	"github.com/urfave/cli/v3"
)

const categoryRun = "run"

// SectionFlag is the name of the flag selecting sections to run.
const SectionFlag = "section"

// GetCommand returns the CLI command that runs the tour.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "run",
		Usage: "Print demonstration sections",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := shared.ParseEnv()
			if err != nil {
				return err
			}

			cfg := &config.Tour{
				Sections: cmd.StringSlice(SectionFlag),
				Seed:     shared.GetSeed(cmd, env),
				Bound:    shared.GetBound(cmd, env),
				NoColor:  cmd.Bool(shared.NoColorFlag) || env.ColorDisabled(),
				Verbose:  cmd.Bool(shared.VerboseFlag),
			}

			return Execute(ctx, shared.Writer(cmd), cfg)
		},
		Flags: getFlags(config.LoadEnv()),
	}
}

// Execute validates cfg and prints the selected sections to w.
func Execute(ctx context.Context, w io.Writer, cfg *config.Tour) error {
	if err := shared.ReportErrors(config.Validate(cfg)); err != nil {
		return err
	}

	shared.SetupLogging(cfg.Verbose, cfg.NoColor)

	sections, err := lesson.Select(cfg.Sections)
	if err != nil {
		return fmt.Errorf("selecting sections: %w", err)
	}
	log.VerboseMsg("Running %d section(s)\n", len(sections))

	tour := &lesson.Tour{
		Out:    lesson.NewPrinter(w, shared.ColorEnabled(w, cfg.NoColor)),
		Random: random.New(cfg.Seed),
		Bound:  cfg.Bound,
	}
	if cfg.Seed != "" {
		log.VerboseMsg("Using seeded random generator\n")
	}

	if err := tour.Run(ctx, sections); err != nil {
		if errors.Is(err, context.Canceled) {
			log.InfoMsg("Interrupted, stopping the tour\n")
		}
		return fmt.Errorf("running tour: %w", err)
	}

	return nil
}

func getFlags(env config.Env) []cli.Flag {
	flags := []cli.Flag{
		&cli.StringSliceFlag{
			Name:     SectionFlag,
			Aliases:  []string{"s"},
			Usage:    "Section to run, repeat for several (default: all sections, see 'list')",
			Category: categoryRun,
			Value:    []string{},
			Required: false,
		},
	}

	flags = append(flags, shared.GetRandomFlags(env)...)
	flags = append(flags, shared.GetCommonFlags(env)...)

	return flags
}
