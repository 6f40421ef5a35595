package clock

import "time"

// Clock supplies the reference instant used to decide which departures are
// still upcoming.
type Clock interface {
	Now() time.Time
}

// System reads the wall clock with whole-second resolution, matching the
// seconds-since-epoch clock a widget host exposes.
type System struct{}

func (System) Now() time.Time {
	return time.Unix(time.Now().Unix(), 0)
}

// Fixed always reports the same instant
type Fixed time.Time

func (f Fixed) Now() time.Time {
	return time.Time(f)
}
