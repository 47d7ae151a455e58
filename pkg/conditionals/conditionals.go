// Package conditionals prints the branching examples: if, if/else, else-if
// ladders, nested conditions, logical operators, conditional selection and
// switch.
package conditionals

import (
	"io"

	"github.com/saint0x/letsflow/pkg/demo"
	"github.com/saint0x/letsflow/pkg/log"
)

// New builds the if-statements program.
func New(logger *log.Logger) *demo.Program {
	number := 10
	age := 18
	score := 75
	hasLicense := true
	drivingAge := 16
	isWeekend, isHoliday := true, false
	x, y := 5, 10
	dayOfWeek := 3

	return &demo.Program{
		Name:   "IfStatements",
		Logger: logger,
		Examples: []demo.Example{
			{Title: "basic if", Run: func(w io.Writer) error {
				pw := demo.NewWriter(w)
				if IsPositive(number) {
					pw.Println("Number is positive")
				}
				return pw.Err()
			}},
			{Title: "if-else", Run: say(AgeGroup(age))},
			{Title: "else-if ladder", Run: say("Grade: " + Grade(score))},
			{Title: "nested if", Run: say(DrivingStatus(age, drivingAge, hasLicense))},
			{Title: "logical operators", Run: say(WorkStatus(isWeekend, isHoliday))},
			{Title: "conditional selection", Run: func(w io.Writer) error {
				pw := demo.NewWriter(w)
				pw.Println("The maximum value is:", Max(x, y))
				return pw.Err()
			}},
			{Title: "switch", Run: say(DayName(dayOfWeek))},
		},
	}
}

func say(line string) func(io.Writer) error {
	return func(w io.Writer) error {
		pw := demo.NewWriter(w)
		pw.Println(line)
		return pw.Err()
	}
}

// IsPositive reports whether n > 0.
func IsPositive(n int) bool {
	if n > 0 {
		return true
	}
	return false
}

// AgeGroup splits adults from minors at 18.
func AgeGroup(age int) string {
	if age >= 18 {
		return "You are an adult"
	} else {
		return "You are a minor"
	}
}

// Grade maps a score to a letter. There is no D.
func Grade(score int) string {
	if score >= 90 {
		return "A"
	} else if score >= 80 {
		return "B"
	} else if score >= 70 {
		return "C"
	} else {
		return "F"
	}
}

func DrivingStatus(age, drivingAge int, hasLicense bool) string {
	if age >= drivingAge {
		if hasLicense {
			return "You can drive"
		} else {
			return "You need a license to drive"
		}
	}
	return "You are too young to drive"
}

func WorkStatus(isWeekend, isHoliday bool) string {
	if isWeekend || isHoliday {
		return "No work today!"
	}
	return "It's a working day"
}

// Max returns the larger of x and y. Go has no ternary operator, so the
// choice is an if/else assignment.
func Max(x, y int) int {
	var m int
	if x > y {
		m = x
	} else {
		m = y
	}
	return m
}

// DayName names a 1-based weekday; anything outside 1..5 is the weekend.
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
	default:
		return "Weekend"
	}
}
