package lesson

import (
	"errors"
	"fmt"
)

// ErrDivideByZero is returned by Divide when the divisor is zero.
var ErrDivideByZero = errors.New("cannot divide by zero")

// Divide returns a / b.
func Divide(a, b float64) (float64, error) {
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

// NthElement returns s[n]. ok is false when n is out of range.
func NthElement(s []int, n int) (value int, ok bool) {
	if n < 0 || n >= len(s) {
		return 0, false
	}
	return s[n], true
}

// mustScore panics when name is missing.
func mustScore(scores map[string]int, name string) int {
	score, ok := scores[name]
	if !ok {
		panic(fmt.Sprintf("no score for %s", name))
	}
	return score
}

// recoverScore turns a mustScore panic back into an error.
func recoverScore(scores map[string]int, name string) (score int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("recovered: %v", r)
		}
	}()
	return mustScore(scores, name), nil
}

func showErrors(t *Tour) error {
	for _, divisor := range []float64{2, 0} {
		if result, err := Divide(10, divisor); err != nil {
			t.Out.Printf("Error: %v\n", err)
		} else {
			t.Out.Printf("Result: %v\n", result)
		}
	}

	numbers := []int{10, 20, 30}
	for _, n := range []int{1, 5} {
		if value, ok := NthElement(numbers, n); ok {
			t.Out.Printf("Value: %d\n", value)
		} else {
			t.Out.Println("No value found at that index")
		}
	}

	scores := map[string]int{"Alice": 100}
	if _, err := recoverScore(scores, "Bob"); err != nil {
		t.Out.Println(err)
	}
	return nil
}
