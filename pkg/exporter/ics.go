package exporter

import (
	"fmt"
	"io"
	"time"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"

	ics "github.com/arran4/golang-ical"
)

// Section is one station pair's upcoming departures
type Section struct {
	From       string
	To         string
	Departures []transit.Connection
}

// eventLength is how long each departure blocks in a calendar
const eventLength = time.Minute

// GenerateICS writes one calendar event per departure to the provided writer
func GenerateICS(sections []Section, w io.Writer, now time.Time) error {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//wg-display//Public Transport//EN")

	for _, s := range sections {
		for i, c := range s.Departures {
			start := c.From.Departure.Time
			if start.IsZero() {
				continue
			}

			event := cal.AddEvent(fmt.Sprintf("%s-%s-%s-%d", start.UTC().Format("20060102T150405Z"), s.From, s.To, i))
			event.SetCreatedTime(now)
			event.SetDtStampTime(now)
			event.SetModifiedAt(now)
			event.SetStartAt(start)
			event.SetEndAt(start.Add(eventLength))
			event.SetSummary(fmt.Sprintf("%s -> %s", s.From, s.To))
			event.SetLocation(s.From)
			event.SetDescription(fmt.Sprintf("Departure at %s from %s", transit.FormatDepartureTime(c.From.Departure), s.From))
		}
	}

	return cal.SerializeTo(w)
}
