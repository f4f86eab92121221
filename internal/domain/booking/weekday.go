package booking

import (
	"strings"
	"time"
)

// Weekday is the canonical day key stored on operating hours.
type Weekday string

const (
	Monday    Weekday = "Monday"
	Tuesday   Weekday = "Tuesday"
	Wednesday Weekday = "Wednesday"
	Thursday  Weekday = "Thursday"
	Friday    Weekday = "Friday"
	Saturday  Weekday = "Saturday"
	Sunday    Weekday = "Sunday"
)

var Weekdays = []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}

// indexed by time.Weekday
var byStdWeekday = [7]Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}

func WeekdayOf(t time.Time) Weekday {
	return byStdWeekday[t.Weekday()]
}

// ParseWeekday accepts any casing of a canonical day name and returns the
// canonical form.
func ParseWeekday(s string) (Weekday, error) {
	s = strings.TrimSpace(s)
	for _, d := range Weekdays {
		if strings.EqualFold(s, string(d)) {
			return d, nil
		}
	}
	return "", Invalid("day must be one of Monday..Sunday")
}
