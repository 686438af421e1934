package random

import (
	"errors"
	"sync"
	"testing"
)

func TestInteger_InRange(t *testing.T) {
	t.Parallel()

	for _, bound := range []int{1, 2, 6, 100, 1 << 20} {
		for i := 0; i < 500; i++ {
			v, err := Integer(bound)
			if err != nil {
				t.Fatalf("Integer(%d) error = %v", bound, err)
			}
			if v < 1 || v > bound {
				t.Fatalf("Integer(%d) = %d; want value in [1, %d]", bound, v, bound)
			}
		}
	}
}

func TestInteger_BoundOne(t *testing.T) {
	t.Parallel()

	for i := 0; i < 50; i++ {
		if v, _ := Integer(1); v != 1 {
			t.Fatalf("Integer(1) = %d; want 1", v)
		}
	}
}

func TestInteger_InvalidRange(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		bound int
	}{
		{"zero", 0},
		{"negative", -1},
		{"very negative", -1000},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			if _, err := Integer(tc.bound); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("Integer(%d) error = %v; want ErrInvalidRange", tc.bound, err)
			}
			if _, err := New("seed").Integer(tc.bound); !errors.Is(err, ErrInvalidRange) {
				t.Errorf("seeded Integer(%d) error = %v; want ErrInvalidRange", tc.bound, err)
			}
		})
	}
}

func TestInteger_CoversRange(t *testing.T) {
	t.Parallel()

	g := New("coverage")
	seen := make(map[int]bool)
	for i := 0; i < 1000; i++ {
		v, err := g.Integer(6)
		if err != nil {
			t.Fatalf("Integer(6) error = %v", err)
		}
		seen[v] = true
	}

	for v := 1; v <= 6; v++ {
		if !seen[v] {
			t.Errorf("value %d never drawn in 1000 calls", v)
		}
	}
}

func TestNew_SameSeedSameSequence(t *testing.T) {
	t.Parallel()

	g1 := New("deterministic")
	g2 := New("deterministic")

	for i := 0; i < 20; i++ {
		v1, _ := g1.Integer(1000)
		v2, _ := g2.Integer(1000)
		if v1 != v2 {
			t.Fatalf("call %d: same seed produced %d and %d", i, v1, v2)
		}
	}
}

func TestNew_DifferentSeeds(t *testing.T) {
	t.Parallel()

	g1 := New("seed-a")
	g2 := New("seed-b")

	same := true
	for i := 0; i < 20; i++ {
		v1, _ := g1.Integer(1 << 30)
		v2, _ := g2.Integer(1 << 30)
		if v1 != v2 {
			same = false
		}
	}
	if same {
		t.Error("different seeds produced identical sequences")
	}
}

func TestNew_EmptySeedUsesProcessSource(t *testing.T) {
	t.Parallel()

	g := New("")
	if g.rng != nil {
		t.Error("New(\"\") should not create a private source")
	}
	if v, err := g.Integer(10); err != nil || v < 1 || v > 10 {
		t.Errorf("Integer(10) = %d, %v; want value in [1, 10]", v, err)
	}
}

func TestGenerator_NilReceiver(t *testing.T) {
	t.Parallel()

	var g *Generator
	v, err := g.Integer(3)
	if err != nil {
		t.Fatalf("nil Generator Integer(3) error = %v", err)
	}
	if v < 1 || v > 3 {
		t.Errorf("nil Generator Integer(3) = %d; want value in [1, 3]", v)
	}
}

func TestGenerator_ConcurrentUse(t *testing.T) {
	t.Parallel()

	g := New("concurrent")
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				if v, err := g.Integer(50); err != nil || v < 1 || v > 50 {
					t.Errorf("Integer(50) = %d, %v", v, err)
					return
				}
			}
		}()
	}
	wg.Wait()
}
