package finbook

import (
	"encoding/json"
	"fmt"
	"time"
)

const readClockFormat = "15:4" // Permissive read time format (allows single-digit minutes).

// ClockFormat is the format used to represent times of day as strings.
const ClockFormat = "15:04"

// Clock represents a time of day with minute-level granularity.
type Clock struct {
	h int // hour, 0-23
	m int // minute, 0-59
}

// NewClock returns a normalized Clock for the given hour and minute.
func NewClock(hour, minute int) Clock {
	c := Clock{hour, minute}
	t := c.time()
	return Clock{t.Hour(), t.Minute()}
}

// Hour returns the hour of the clock.
func (c Clock) Hour() int { return c.h }

// Minute returns the minute of the clock.
func (c Clock) Minute() int { return c.m }

// String formats the clock as HH:MM.
func (c Clock) String() string { return c.time().Format(ClockFormat) }

// time returns a time.Time that is a canonical representation of that time of day.
func (c Clock) time() time.Time { return time.Date(0, 1, 1, c.h, c.m, 0, 0, time.UTC) }

// Before reports whether the time of day c is before x.
func (c Clock) Before(x Clock) bool { return c.time().Before(x.time()) }

// After reports whether the time of day c is after x.
func (c Clock) After(x Clock) bool { return c.time().After(x.time()) }

// ParseClock parses a Clock from a string. It is lenient and accepts
// single-digit minutes like "9:5".
func ParseClock(str string) (Clock, error) {
	on, err := time.Parse(readClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return Clock{on.Hour(), on.Minute()}, nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// UnmarshalJSON implements the json specific way to unmarshall a clock from a json string.
func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	on, err := time.Parse(readClockFormat, str)
	if err != nil {
		return fmt.Errorf("invalid time %q in data file, want format %q: %w", str, ClockFormat, err)
	}
	*c = Clock{on.Hour(), on.Minute()}
	return nil
}

func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

// check that a Clock pointer is a valid json marshall/unmarshaller type.
var _ json.Marshaler = (*Clock)(nil)
var _ json.Unmarshaler = (*Clock)(nil)
