// Package version provides the version command.
package version

import (
	"context"
	"fmt"

	"dominicbreuker/basicstour/cmd/shared"

	"github.com/urfave/cli/v3"
)

// Version is set at build time through -ldflags.
var Version = "unknown"

func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: "Program version",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			_, err := fmt.Fprintln(shared.Writer(cmd), Version)
			return err
		},
		Flags: []cli.Flag{},
	}
}
