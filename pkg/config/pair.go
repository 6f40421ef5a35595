package config

import (
	"fmt"
	"strconv"
	"strings"
)

// ParsePair reads the "From:To:N" shorthand used on the command line.
// N is optional and defaults to 3.
func ParsePair(s string) (StationPair, error) {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || len(parts) > 3 {
		return StationPair{}, fmt.Errorf("expected From:To[:N], got %q", s)
	}

	pair := StationPair{
		FromStation:    strings.TrimSpace(parts[0]),
		ToStation:      strings.TrimSpace(parts[1]),
		NumConnections: 3,
	}
	if pair.FromStation == "" || pair.ToStation == "" {
		return StationPair{}, fmt.Errorf("station names must not be empty in %q", s)
	}

	if len(parts) == 3 {
		n, err := strconv.ParseUint(strings.TrimSpace(parts[2]), 10, 8)
		if err != nil {
			return StationPair{}, fmt.Errorf("invalid number of connections in %q: %w", s, err)
		}
		pair.NumConnections = uint8(n)
	}
	return pair, nil
}

func (p StationPair) String() string {
	return fmt.Sprintf("%s -> %s (%d)", p.FromStation, p.ToStation, p.NumConnections)
}
