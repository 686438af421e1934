package lesson

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Add returns the sum of a and b.
func Add(a, b int) int {
	return a + b
}

// addNamed is Add written with a named result and a bare return.
func addNamed(a, b int) (sum int) {
	sum = a + b
	return
}

func showFunctions(t *Tour) error {
	sum := Add(5, 10)
	t.Out.Printf("The sum is: %d\n", sum)
	t.Out.Printf("The sum with a named result is: %d\n", addNamed(5, 10))
	return nil
}

func showRandom(t *Tour) error {
	n, err := t.Random.Integer(t.Bound)
	if err != nil {
		return err
	}
	// Itoa keeps large draws free of digit grouping.
	t.Out.Printf("The random number is: %s\n", strconv.Itoa(n))
	return nil
}

func showVariables(t *Tour) error {
	x := 5
	t.Out.Println("This is a static text.")
	t.Out.Printf("The value of x is: %d\n", x)
	t.Out.Println(x)

	name := "John"
	surname := "Doe"
	surname = "Smith"
	age := 30
	t.Out.Printf("%s %s is %d years old.\n", name, surname, age)

	// Inferred from the literal.
	myNum := 5
	myDouble := 5.99
	myLetter := 'D'
	myBool := true
	myText := "Hello"
	t.Out.Printf("Inferred: %T %T %T %T %T\n", myNum, myDouble, myLetter, myBool, myText)

	var explicitNum int32 = 5
	var explicitDouble float64 = 5.99
	var explicitLetter rune = 'D'
	var explicitBool bool = true
	var explicitText string = "Hello"
	t.Out.Printf("Explicit: %v %v %v %v %v\n", explicitNum, explicitDouble, string(explicitLetter), explicitBool, explicitText)

	const myConstant = 100
	t.Out.Printf("The constant is: %d\n", myConstant)
	return nil
}

func showStrings(t *Tour) error {
	greeting := "Hello, World!"
	t.Out.Println(greeting)

	var b strings.Builder
	b.WriteString("Hello")
	b.WriteString(", World!")
	b.WriteByte('!')

	anotherGreeting := "Hello"
	var emptyGreeting string

	combined := b.String() + " How are you?"
	name := "Alice"
	formatted := "Hello, " + name + "! Welcome to Go."
	t.Out.Println(combined)
	t.Out.Println(formatted)

	// Sprintf builds a new string and leaves its arguments untouched.
	anotherFormatted := fmt.Sprintf("Hello, %s! Welcome to Go.", name)
	t.Out.Println(anotherFormatted)

	x, y := 5, 10
	t.Out.Printf("The sum of %d and %d is %d.\n", x, y, x+y)

	t.Out.Printf("The length of the greeting is: %d\n", len(anotherGreeting))
	t.Out.Printf("Is the empty greeting empty? %t\n", emptyGreeting == "")

	// Indexing a string yields bytes; decode to get the first character.
	first, _ := utf8.DecodeRuneInString(anotherGreeting)
	t.Out.Printf("The first character is: %s\n", string(first))

	t.Out.Printf("New greeting: %s\n", strings.ReplaceAll(anotherGreeting, "World", "Gopher"))

	chars := []rune(anotherGreeting)
	chars[3] = 'R'
	t.Out.Printf("Modified greeting: %s\n", string(chars))
	return nil
}
