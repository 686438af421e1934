package lesson

import (
	"maps"
	"slices"
)

// Pop removes the last element of s. ok is false when s is empty.
func Pop[T any](s []T) (rest []T, last T, ok bool) {
	if len(s) == 0 {
		return s, last, false
	}
	return s[:len(s)-1], s[len(s)-1], true
}

// Resize returns s truncated or padded with fill to exactly n elements.
func Resize[T any](s []T, n int, fill T) []T {
	if n <= len(s) {
		return s[:n]
	}
	for len(s) < n {
		s = append(s, fill)
	}
	return s
}

// Person groups values of different types, the way a tuple would.
type Person struct {
	Name      string
	Age       int
	IsStudent bool
}

// GetPerson returns several values at once.
func GetPerson() (string, int, bool) {
	return "Charlie", 35, true
}

func showArrays(t *Tour) error {
	fruits := [3]string{"Apple", "Banana", "Cherry"}
	t.Out.Printf("The first fruit is: %s\n", fruits[0])
	fruits[1] = "Blueberry"
	t.Out.Printf("The second fruit is now: %s\n", fruits[1])
	t.Out.Printf("The fruits array is: %v\n", fruits)
	return nil
}

func showSlices(t *Tour) error {
	veggies := []string{"Carrot", "Potato", "Cucumber"}
	t.Out.Printf("The first vegetable is: %s\n", veggies[0])

	veggies = append(veggies, "Tomato")
	t.Out.Printf("The last vegetable is now: %s\n", veggies[len(veggies)-1])

	veggies, _, _ = Pop(veggies)
	t.Out.Printf("After popping, the last vegetable is: %s\n", veggies[len(veggies)-1])

	veggies = slices.Insert(veggies, 0, "Lettuce")
	t.Out.Printf("After inserting, the first vegetable is: %s\n", veggies[0])

	veggies = slices.Delete(veggies, 0, 1)
	t.Out.Printf("After removing the first vegetable, the new first vegetable is: %s\n", veggies[0])

	veggies = Resize(veggies, 5, "Lettuce")
	t.Out.Printf("After resizing, the slice has %d elements.\n", len(veggies))

	veggies[1] = "Spinach"
	t.Out.Printf("The second vegetable is now: %s\n", veggies[1])

	veggies = veggies[:0]
	t.Out.Printf("After clearing, the slice has %d elements.\n", len(veggies))

	// Both loops print nothing: the slice is empty.
	for _, veggie := range veggies {
		t.Out.Println(veggie)
	}
	for i := range veggies {
		t.Out.Printf("I like %s.\n", veggies[i])
	}

	numbers := []int{1, 2, 3, 4, 5}
	t.Out.Printf("The first number is: %d\n", numbers[0])
	numbers[2] = 10
	t.Out.Printf("The third number is now: %d\n", numbers[2])
	return nil
}

func showTuples(t *Tour) error {
	person := Person{Name: "Alice", Age: 30, IsStudent: true}
	t.Out.Printf("Name: %s\n", person.Name)
	t.Out.Printf("Age: %d\n", person.Age)
	t.Out.Printf("Is student: %t\n", person.IsStudent)

	name, age, isStudent := person.Name, person.Age, person.IsStudent
	t.Out.Printf("Destructured - Name: %s, Age: %d, Is student: %t\n", name, age, isStudent)

	other := Person{Name: "Bob", Age: 25, IsStudent: false}
	other.Age = 26
	t.Out.Printf("Updated age: %d\n", other.Age)

	name, age, isStudent = GetPerson()
	t.Out.Printf("Returned - Name: %s, Age: %d, Is student: %t\n", name, age, isStudent)
	return nil
}

func showMaps(t *Tour) error {
	scores := map[string]int{}
	scores["Alice"] = 90
	scores["Bob"] = 85
	t.Out.Printf("Alice's score: %d\n", mustScore(scores, "Alice"))

	score, ok := scores["Alice"]
	t.Out.Printf("Alice's score: %d (present: %t)\n", score, ok)

	scores["Alice"] = 95
	t.Out.Printf("Alice's updated score: %d\n", scores["Alice"])

	delete(scores, "Bob")
	if score, ok := scores["Bob"]; ok {
		t.Out.Printf("Bob's score: %d\n", score)
	} else {
		t.Out.Println("Bob's score not found.")
	}

	// Indexing a missing key yields the zero value instead of failing.
	t.Out.Printf("Alice's score (via indexing): %d\n", scores["Alice"])
	t.Out.Printf("Bob's score (via indexing): %d\n", scores["Bob"])

	scores["Alice"] = 100
	t.Out.Printf("Alice's score after reinserting: %d\n", scores["Alice"])
	t.Out.Printf("Scores map: %v\n", scores)

	capitalCities := map[string]string{
		"England": "London",
		"Germany": "Berlin",
		"Norway":  "Oslo",
	}

	// Map iteration order is random; sort the keys for stable output.
	for _, country := range slices.Sorted(maps.Keys(capitalCities)) {
		t.Out.Printf("The capital of %s is %s.\n", country, capitalCities[country])
	}
	return nil
}
