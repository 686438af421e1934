package lesson

import "slices"

func showOwnership(t *Tour) error {
	// Assignment copies the string header; both variables stay usable.
	a := "Hello"
	b := a
	t.Out.Println(b)

	x := 5
	y := x
	t.Out.Printf("x: %d, y: %d\n", x, y)
	x++
	t.Out.Printf("After changing x: x: %d, y: %d\n", x, y)

	// Slices share their backing array unless cloned.
	shared := []string{"Hello"}
	alias := shared
	clone := slices.Clone(shared)
	alias[0] = "Hi"
	t.Out.Printf("shared: %v, alias: %v, clone: %v\n", shared, alias, clone)
	return nil
}

func appendGreeting(s *string, suffix string) {
	*s += suffix
}

func showBorrowing(t *Tour) error {
	a := "Hello"
	b := &a
	t.Out.Printf("a: %s, b: %s\n", a, *b)

	appendGreeting(b, ", World!")
	t.Out.Printf("b points to a: %s\n", *b)

	{
		b := &a
		appendGreeting(b, " How are you?")
		t.Out.Printf("b inside scope: %s\n", *b)
	}
	t.Out.Printf("a: %s\n", a)
	return nil
}
