package random

import (
	"bytes"
	"context"
	"errors"
	"strconv"
	"strings"
	"testing"

	"dominicbreuker/basicstour/pkg/config"
	"dominicbreuker/basicstour/pkg/random"
)

func TestGetCommand(t *testing.T) {
	t.Parallel()

	cmd := GetCommand()

	if cmd == nil {
		t.Fatal("GetCommand() returned nil")
	}

	if cmd.Name != "random" {
		t.Errorf("command name = %q; want %q", cmd.Name, "random")
	}

	if cmd.Action == nil {
		t.Error("command action should not be nil")
	}

	flagNames := make(map[string]bool)
	for _, flag := range cmd.Flags {
		if names := flag.Names(); len(names) > 0 {
			flagNames[names[0]] = true
		}
	}
	for _, name := range []string{"count", "seed", "bound", "verbose", "no-color"} {
		if !flagNames[name] {
			t.Errorf("expected flag %q not found", name)
		}
	}
}

func TestPrint(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  config.Random
	}{
		{"single", config.Random{Bound: 100, Count: 1}},
		{"many", config.Random{Bound: 6, Count: 50}},
		{"bound one", config.Random{Bound: 1, Count: 5}},
		{"seeded", config.Random{Seed: "x", Bound: 10, Count: 10}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var buf bytes.Buffer
			if err := Print(context.Background(), &buf, &tc.cfg); err != nil {
				t.Fatalf("Print() error = %v", err)
			}

			lines := strings.Fields(buf.String())
			if len(lines) != tc.cfg.Count {
				t.Fatalf("Print() wrote %d values, want %d", len(lines), tc.cfg.Count)
			}
			for _, line := range lines {
				n, err := strconv.Atoi(line)
				if err != nil {
					t.Fatalf("value %q is not an integer", line)
				}
				if n < 1 || n > tc.cfg.Bound {
					t.Errorf("value %d not in [1, %d]", n, tc.cfg.Bound)
				}
			}
		})
	}
}

func TestPrint_InvalidBound(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	err := Print(context.Background(), &buf, &config.Random{Bound: 0, Count: 1})
	if !errors.Is(err, random.ErrInvalidRange) {
		t.Errorf("Print() error = %v, want ErrInvalidRange", err)
	}
}

func TestPrint_Cancelled(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := Print(ctx, &buf, &config.Random{Bound: 10, Count: 3}); !errors.Is(err, context.Canceled) {
		t.Errorf("Print() error = %v, want context.Canceled", err)
	}
}
