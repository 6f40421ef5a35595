package transit

import (
	"fmt"
	"strings"
	"time"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/humantime"
)

const (
	noDepartures       = "No departures"
	unformattableClock = "Could not format departure"
)

// UpcomingDepartures keeps the connections that leave strictly after now,
// in the order the API returned them, and stops after want entries.
func UpcomingDepartures(data *ConnectionsResponse, want int, now time.Time) []Connection {
	var upcoming []Connection
	for _, c := range data.Connections {
		if len(upcoming) >= want {
			break
		}
		if c.From.Departure.Sub(now) > 0 {
			upcoming = append(upcoming, c)
		}
	}
	return upcoming
}

// RenderDepartures formats the "{from} -> {to}" header followed by one line per
// upcoming departure. An empty connection list is reported explicitly; a list
// whose departures have all left yields the header alone.
func RenderDepartures(data *ConnectionsResponse, want int, now time.Time) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "%s -> %s", data.From.Name, data.To.Name)

	if len(data.Connections) == 0 {
		sb.WriteString("\n" + noDepartures)
		return sb.String()
	}

	for _, c := range UpcomingDepartures(data, want, now) {
		departure := c.From.Departure
		fmt.Fprintf(&sb, "\n%s (%s)", FormatDepartureOffset(departure.Time, now), FormatDepartureTime(departure))
	}
	return sb.String()
}

// FormatDepartureTime renders the wall clock time in the offset the API sent.
func FormatDepartureTime(departure Timestamp) string {
	if departure.IsZero() {
		return unformattableClock
	}
	return departure.Format("15:04")
}

// FormatDepartureOffset describes how far away the departure is, e.g. "in 5 minutes".
func FormatDepartureOffset(departure, now time.Time) string {
	return humantime.Rough(departure.Sub(now))
}
