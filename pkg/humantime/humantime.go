// Package humantime turns durations into coarse English phrases such as
// "in 5 minutes" or "in an hour".
package humantime

import (
	"math"
	"time"

	"github.com/dustin/go-humanize"
)

const (
	day   = 24 * time.Hour
	week  = 7 * day
	month = 30 * day
	year  = 365 * day
)

// roughMagnitudes lists the upper bounds (exclusive) of each phrase in
// ascending order. A unit switches over once the whole-second count is
// strictly greater than its threshold, hence the extra second on each bound.
// Counted units never go below two.
var roughMagnitudes = []humanize.RelTimeMagnitude{
	{D: 11 * time.Second, Format: "now", DivBy: time.Second},
	{D: 46 * time.Second, Format: "in seconds", DivBy: time.Second},
	{D: 91 * time.Second, Format: "in a minute", DivBy: time.Minute},
	{D: 2 * time.Minute, Format: "in 2 minutes", DivBy: time.Minute},
	{D: 45*time.Minute + time.Second, Format: "in %d minutes", DivBy: time.Minute},
	{D: 90*time.Minute + time.Second, Format: "in an hour", DivBy: time.Hour},
	{D: 2 * time.Hour, Format: "in 2 hours", DivBy: time.Hour},
	{D: 22*time.Hour + time.Second, Format: "in %d hours", DivBy: time.Hour},
	{D: 36*time.Hour + time.Second, Format: "in a day", DivBy: day},
	{D: 2 * day, Format: "in 2 days", DivBy: day},
	{D: 6*day + 12*time.Hour + time.Second, Format: "in %d days", DivBy: day},
	{D: 10*day + 12*time.Hour + time.Second, Format: "in a week", DivBy: week},
	{D: 2 * week, Format: "in 2 weeks", DivBy: week},
	{D: 29*day + time.Second, Format: "in %d weeks", DivBy: week},
	{D: 45*day + time.Second, Format: "in a month", DivBy: month},
	{D: 2 * month, Format: "in 2 months", DivBy: month},
	{D: 345*day + time.Second, Format: "in %d months", DivBy: month},
	{D: 547*day + time.Second, Format: "in a year", DivBy: year},
	{D: 2 * year, Format: "in 2 years", DivBy: year},
	{D: math.MaxInt64, Format: "in %d years", DivBy: year},
}

// Rough describes |d| in future tense, rounded down to its dominant unit.
// Anything up to ten seconds is "now".
func Rough(d time.Duration) string {
	ref := time.Unix(0, 0)
	return humanize.CustomRelTime(ref, ref.Add(d), "", "", roughMagnitudes)
}
