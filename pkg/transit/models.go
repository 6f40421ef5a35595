package transit

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// ConnectionsResponse represents the object returned by /connections
type ConnectionsResponse struct {
	From        Station      `json:"from"`
	To          Station      `json:"to"`
	Connections []Connection `json:"connections"`
}

// Station is the resolved origin or destination of a connection query
type Station struct {
	ID   string `json:"id,omitempty"`
	Name string `json:"name"`
}

// Connection is one scheduled journey between the two stations
type Connection struct {
	From Checkpoint `json:"from"`
}

// Checkpoint holds the departure at the journey's origin
type Checkpoint struct {
	Departure Timestamp `json:"departure"`
}

// LocationsResponse represents the object returned by /locations
type LocationsResponse struct {
	Stations []Location `json:"stations"`
}

// Location is a station candidate for a free-text query
type Location struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Score float64 `json:"score,omitempty"`
}

// timestampLayouts lists the ISO-8601 variants the API emits, most common first.
// transport.opendata.ch omits the colon in the zone offset.
var timestampLayouts = []string{
	"2006-01-02T15:04:05-0700",
	time.RFC3339,
	"2006-01-02T15:04-0700",
}

// Timestamp is a departure instant that keeps the zone offset it was encoded with
type Timestamp struct {
	time.Time
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}

	for _, layout := range timestampLayouts {
		parsed, err := time.Parse(layout, raw)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}

	return fmt.Errorf("invalid ISO-8601 timestamp %q", raw)
}

func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format(timestampLayouts[0]))
}
