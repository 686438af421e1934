package main

import (
	"context"
	"os"

	"dominicbreuker/basicstour/cmd/list"
	"dominicbreuker/basicstour/cmd/random"
	"dominicbreuker/basicstour/cmd/run"
	"dominicbreuker/basicstour/cmd/shared"
	"dominicbreuker/basicstour/cmd/version"
	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/log"

	"github.com/urfave/cli/v3"
)

func newApp() *cli.Command {
	return &cli.Command{
		Name:      "basicstour",
		Usage:     "annotated tour of basic language features",
		ArgsUsage: "[section...]",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			env, err := shared.ParseEnv()
			if err != nil {
				return err
			}

			cfg := &config.Tour{
				Sections: cmd.Args().Slice(),
				Seed:     env.Seed,
				Bound:    env.Bound,
				NoColor:  env.ColorDisabled(),
			}
			return run.Execute(ctx, shared.Writer(cmd), cfg)
		},
		Commands: []*cli.Command{
			run.GetCommand(),
			list.GetCommand(),
			random.GetCommand(),
			version.GetCommand(),
		},
	}
}

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	shared.SetupSignalHandling(cancel)

	if err := newApp().Run(ctx, os.Args); err != nil {
		log.ErrorMsg("%s\n", err)
		os.Exit(1)
	}
}
