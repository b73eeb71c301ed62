package workspace

import "time"

// DefaultTimezone is assumed when the client profile carries none.
const DefaultTimezone = "Europe/Copenhagen"

// GreetingSlot is the time-of-day bucket for the workspace greeting.
type GreetingSlot int

const (
	GreetingMorning GreetingSlot = iota
	GreetingAfternoon
	GreetingEvening
)

// LocalHour returns now's hour in the client's timezone. Unknown
// timezone names fall back to the default zone, and if that also
// fails, to noon.
func LocalHour(now time.Time, timezone string) int {
	if timezone == "" {
		timezone = DefaultTimezone
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc, err = time.LoadLocation(DefaultTimezone)
		if err != nil {
			return 12
		}
	}

	return now.In(loc).Hour()
}

// GreetingForHour buckets an hour into a greeting slot.
func GreetingForHour(hour int) GreetingSlot {
	switch {
	case hour < 12:
		return GreetingMorning
	case hour < 18:
		return GreetingAfternoon
	default:
		return GreetingEvening
	}
}
