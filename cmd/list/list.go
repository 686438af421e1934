// Package list provides the list command, which prints the section catalog.
package list

import (
	"context"
	"fmt"
	"io"

	"dominicbreuker/basicstour/cmd/shared"
	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/lesson"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

const categoryList = "list"

// FormatFlag is the name of the flag selecting the output format.
const FormatFlag = "format"

// Entry is one catalog line.
type Entry struct {
	Name  string `yaml:"name"`
	Title string `yaml:"title"`
}

// GetCommand returns the CLI command that lists sections.
func GetCommand() *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "List demonstration sections",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			cfg := &config.List{Format: config.Format(cmd.String(FormatFlag))}
			if err := shared.ReportErrors(config.Validate(cfg)); err != nil {
				return err
			}

			return Write(shared.Writer(cmd), cfg.Format)
		},
		Flags: getFlags(),
	}
}

// Write prints the catalog to w in the given format.
func Write(w io.Writer, format config.Format) error {
	entries := catalog()

	switch format {
	case config.FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(entries); err != nil {
			return fmt.Errorf("encoding yaml: %w", err)
		}
		return enc.Close()
	default:
		for _, e := range entries {
			if _, err := fmt.Fprintf(w, "%-14s %s\n", e.Name, e.Title); err != nil {
				return err
			}
		}
		return nil
	}
}

func catalog() []Entry {
	sections := lesson.Sections()
	entries := make([]Entry, 0, len(sections))
	for _, s := range sections {
		entries = append(entries, Entry{Name: s.Name, Title: s.Title})
	}
	return entries
}

func getFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     FormatFlag,
			Aliases:  []string{"f"},
			Usage:    "Output format: text|yaml",
			Category: categoryList,
			Value:    string(config.FormatText),
			Required: false,
		},
	}
}
