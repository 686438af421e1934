// Package random provides the random command, which prints bounded random
// integers.
package random

import (
	"context"
	"fmt"
	"io"

	"dominicbreuker/basicstour/cmd/shared"
	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/log"
	"dominicbreuker/basicstour/pkg/random"

	"github.com/urfave/cli/v3"
)

const categoryOutput = "output"

// CountFlag is the name of the flag setting how many numbers to print.
const CountFlag = "count"

// GetCommand returns the CLI command that prints random integers.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "random",
		Usage: "Print random integers in [1, bound]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := shared.ParseEnv()
			if err != nil {
				return err
			}

			cfg := &config.Random{
				Seed:  shared.GetSeed(cmd, env),
				Bound: shared.GetBound(cmd, env),
				Count: int(cmd.Int(CountFlag)),
			}

			if err := shared.ReportErrors(config.Validate(cfg)); err != nil {
				return err
			}
			shared.SetupLogging(cmd.Bool(shared.VerboseFlag), cmd.Bool(shared.NoColorFlag) || env.ColorDisabled())

			return Print(ctx, shared.Writer(cmd), cfg)
		},
		Flags: getFlags(config.LoadEnv()),
	}
}

// Print writes cfg.Count integers to w, one per line.
func Print(ctx context.Context, w io.Writer, cfg *config.Random) error {
	gen := random.New(cfg.Seed)
	log.VerboseMsg("Drawing %d integer(s) in [1, %d]\n", cfg.Count, cfg.Bound)

	for i := 0; i < cfg.Count; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}

		n, err := gen.Integer(cfg.Bound)
		if err != nil {
			return fmt.Errorf("drawing integer: %w", err)
		}
		if _, err := fmt.Fprintln(w, n); err != nil {
			return err
		}
	}

	return nil
}

func getFlags(env config.Env) []cli.Flag {
	flags := []cli.Flag{
		&cli.IntFlag{
			Name:     CountFlag,
			Aliases:  []string{"n"},
			Usage:    "How many integers to print",
			Category: categoryOutput,
			Value:    1,
			Required: false,
		},
	}

	flags = append(flags, shared.GetRandomFlags(env)...)
	flags = append(flags, shared.GetCommonFlags(env)...)

	return flags
}
