// Package random returns bounded random integers, either from the
// process-wide generator or from a generator derived from a seed string.
package random

import (
	"crypto/sha256"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
)

// ErrInvalidRange is returned when the upper bound is below 1.
var ErrInvalidRange = errors.New("invalid range")

// Generator draws integers in [1, bound]. The zero value and a nil
// *Generator both use the process-wide source.
type Generator struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// New returns a Generator. An empty seed uses the process-wide source;
// any other seed yields a reproducible sequence.
func New(seed string) *Generator {
	if seed == "" {
		return &Generator{}
	}
	return &Generator{rng: rand.New(rand.NewChaCha8(sha256.Sum256([]byte(seed))))}
}

// Integer returns a value drawn uniformly from [1, bound].
func (g *Generator) Integer(bound int) (int, error) {
	if bound < 1 {
		return 0, fmt.Errorf("%w: bound %d is below 1", ErrInvalidRange, bound)
	}

	if g == nil || g.rng == nil {
		return rand.IntN(bound) + 1, nil
	}

	g.mu.Lock()
	defer g.mu.Unlock()
	return g.rng.IntN(bound) + 1, nil
}

// Integer returns a value drawn uniformly from [1, bound] using the
// process-wide source.
func Integer(bound int) (int, error) {
	return (*Generator)(nil).Integer(bound)
}
