package config

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/invopop/jsonschema"
)

// StationPair names the origin and destination to show departures for
type StationPair struct {
	FromStation    string `json:"from_station"`
	ToStation      string `json:"to_station"`
	NumConnections uint8  `json:"num_connections"`
}

// WidgetConfig is the configuration document the host hands to the widget
type WidgetConfig struct {
	Connections []StationPair `json:"connections"`
}

// ParseError reports a configuration document that does not match WidgetConfig
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("failed to parse config: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// rawConfig mirrors WidgetConfig with pointer fields so absent keys can be
// told apart from zero values.
type rawConfig struct {
	Connections *[]rawPair `json:"connections"`
}

type rawPair struct {
	FromStation    *string `json:"from_station"`
	ToStation      *string `json:"to_station"`
	NumConnections *uint8  `json:"num_connections"`
}

// Parse decodes a widget configuration. Every field is required and unknown
// fields are rejected, so a single-pair document is not silently read as an
// empty list.
func Parse(raw string) (*WidgetConfig, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.DisallowUnknownFields()

	var rc rawConfig
	if err := dec.Decode(&rc); err != nil {
		return nil, &ParseError{Err: err}
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, &ParseError{Err: fmt.Errorf("unexpected data after config object")}
	}

	if rc.Connections == nil {
		return nil, &ParseError{Err: fmt.Errorf("missing field `connections`")}
	}

	cfg := &WidgetConfig{Connections: make([]StationPair, 0, len(*rc.Connections))}
	for i, p := range *rc.Connections {
		switch {
		case p.FromStation == nil:
			return nil, &ParseError{Err: fmt.Errorf("connections[%d]: missing field `from_station`", i)}
		case p.ToStation == nil:
			return nil, &ParseError{Err: fmt.Errorf("connections[%d]: missing field `to_station`", i)}
		case p.NumConnections == nil:
			return nil, &ParseError{Err: fmt.Errorf("connections[%d]: missing field `num_connections`", i)}
		}
		cfg.Connections = append(cfg.Connections, StationPair{
			FromStation:    *p.FromStation,
			ToStation:      *p.ToStation,
			NumConnections: *p.NumConnections,
		})
	}
	return cfg, nil
}

// Schema returns the JSON Schema of WidgetConfig with every subschema inlined,
// for hosts that generate their configuration forms from it.
func Schema() (string, error) {
	r := &jsonschema.Reflector{
		DoNotReference: true,
		ExpandedStruct: true,
	}
	schema := r.Reflect(&WidgetConfig{})
	schema.Title = "WidgetConfig"

	data, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize config schema: %w", err)
	}
	return string(data), nil
}
