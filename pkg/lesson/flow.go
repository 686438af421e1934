package lesson

// Grade maps a score to a letter.
func Grade(score int) string {
	if score >= 90 {
		return "A"
	} else if score >= 80 {
		return "B"
	} else if score >= 70 {
		return "C"
	}
	return "F"
}

// Greeting picks a greeting for the hour of the day.
func Greeting(hour int) string {
	if hour < 18 {
		return "Good day."
	}
	return "Good evening."
}

// DayName returns the weekday for 1 (Monday) through 7 (Sunday).
func DayName(day int) string {
	switch day {
	case 1:
		return "Monday"
	case 2:
		return "Tuesday"
	case 3:
		return "Wednesday"
	case 4:
		return "Thursday"
	case 5:
		return "Friday"
	case 6:
		return "Saturday"
	case 7:
		return "Sunday"
	default:
		return "Invalid day."
	}
}

// DayKind reports whether day falls on a weekday or the weekend.
func DayKind(day int) string {
	switch day {
	case 1, 2, 3, 4, 5:
		return "Weekday"
	case 6, 7:
		return "Weekend"
	default:
		return "Invalid day"
	}
}

// Describe spells out the numbers one to four.
func Describe(n int) string {
	switch n {
	case 1:
		return "One"
	case 2:
		return "Two"
	case 3:
		return "Three"
	case 4:
		return "Four"
	default:
		return "Unknown"
	}
}

func showOperators(t *Tour) error {
	sum := 5 + 10
	difference := 95.5 - 4.3
	product := 4 * 30
	quotient := 56.7 / 32.2
	remainder := 43 % 5
	t.Out.Printf("Sum: %d, difference: %.1f, product: %d\n", sum, difference, product)
	t.Out.Printf("Quotient: %.4f, remainder: %d\n", quotient, remainder)

	counter := 10
	counter += 5
	counter -= 3
	counter *= 2
	counter /= 4
	counter %= 4
	t.Out.Printf("Counter after compound assignments: %d\n", counter)

	loggedIn := true
	isAdmin := false
	t.Out.Printf("Is regular user: %t\n", loggedIn && !isAdmin)
	t.Out.Printf("Has any access: %t\n", loggedIn || isAdmin)
	t.Out.Printf("Not logged in: %t\n", !loggedIn)
	return nil
}

func showControlFlow(t *Tour) error {
	score := 85
	t.Out.Printf("Grade: %s\n", Grade(score))

	time := 20
	var greeting string
	if time < 18 {
		greeting = "Good day."
	} else {
		greeting = "Good evening."
	}
	t.Out.Println(greeting)
	t.Out.Println(Greeting(time))
	return nil
}

func showSwitch(t *Tour) error {
	day := 4
	t.Out.Println(DayName(day))
	t.Out.Println(DayKind(day))

	number := 4
	t.Out.Printf("Description: %s\n", Describe(number))
	return nil
}

func showLoops(t *Tour) error {
	count := 0
	for {
		t.Out.Println("Hello World!")
		if count == 3 {
			break
		}
		count++
	}

	// A loop produces a value by assigning it before breaking.
	var result int
	for {
		count++
		if count == 5 {
			result = count * 2
			break
		}
	}
	t.Out.Printf("The loop result is: %d\n", result)

	number := 3
	for number != 0 {
		t.Out.Printf("%d!\n", number)
		number--
	}

	count = 0
	for count < 5 {
		count++
		if count == 3 {
			continue
		}
		if count == 4 {
			break
		}
		t.Out.Printf("Count: %d\n", count)
	}

	for i := 1; i < 6; i++ {
		t.Out.Println(i)
	}
	for i := range 5 {
		t.Out.Println(i + 1)
	}

	animals := [...]string{"Dog", "Cat", "Rabbit"}
	for _, animal := range animals {
		t.Out.Println(animal)
	}

	fruits := []string{"Apple", "Banana", "Cherry"}
	for index, fruit := range fruits {
		t.Out.Printf("%d: %s\n", index, fruit)
	}
	return nil
}
