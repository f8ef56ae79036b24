package eventmodels

import (
	"encoding/json"
	"fmt"
	"time"
)

const TimeOfDayLayout = "15:04:05.000"

// TimeOfDay is an intraday timestamp with millisecond resolution, stored as
// the offset from midnight so that it compares and hashes as a plain value.
type TimeOfDay time.Duration

func NewTimeOfDay(hour, min, sec, millis int) TimeOfDay {
	return TimeOfDay(time.Duration(hour)*time.Hour +
		time.Duration(min)*time.Minute +
		time.Duration(sec)*time.Second +
		time.Duration(millis)*time.Millisecond)
}

// ParseTimeOfDay accepts "15:04:05.000", "15:04:05" and RFC 3339 timestamps.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{TimeOfDayLayout, "15:04:05", time.RFC3339Nano, "2006-01-02T15:04:05.999999999"} {
		t, err := time.Parse(layout, s)
		if err == nil {
			return FromTime(t), nil
		}
	}

	return 0, fmt.Errorf("ParseTimeOfDay: invalid time of day: %s", s)
}

func FromTime(t time.Time) TimeOfDay {
	return NewTimeOfDay(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/int(time.Millisecond))
}

func (t TimeOfDay) String() string {
	return time.Time{}.Add(time.Duration(t)).Format(TimeOfDayLayout)
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *TimeOfDay) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("TimeOfDay: UnmarshalJSON: %w", err)
	}

	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}

func (t TimeOfDay) MarshalCSV() (string, error) {
	return t.String(), nil
}

func (t *TimeOfDay) UnmarshalCSV(s string) error {
	parsed, err := ParseTimeOfDay(s)
	if err != nil {
		return err
	}

	*t = parsed
	return nil
}
