// Package weekday is the enums-and-switch lecture: a closed set of named
// constants and exhaustive switches over them.
package weekday

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownDay is returned by ParseDay for input that names no day.
var ErrUnknownDay = errors.New("unknown day")

type Day int

const (
	Sunday Day = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var names = [...]string{"SUNDAY", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY"}

// All returns the days in week order, starting on Sunday.
func All() []Day {
	days := make([]Day, len(names))
	for i := range names {
		days[i] = Day(i)
	}
	return days
}

func (d Day) Valid() bool { return d >= Sunday && d <= Saturday }

func (d Day) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Day(%d)", int(d))
	}
	return names[d]
}

// ParseDay matches a day name, ignoring case and surrounding whitespace.
func ParseDay(s string) (Day, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == want {
			return Day(i), nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDay, s)
}

// Verdict is the lecture's opinion of a day.
func Verdict(d Day) string {
	switch {
	case d.Weekend():
		return "Weekends are best."
	case d == Monday:
		return "Mondays are bad."
	case d == Friday:
		return "Fridays are better."
	default:
		return "Midweek days are so-so."
	}
}

func (d Day) Weekend() bool {
	return d == Saturday || d == Sunday
}
