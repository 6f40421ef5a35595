package config

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"
	"testing"
)

func TestParse(t *testing.T) {
	raw := `{"connections": [
		{"from_station": "Zürich HB", "to_station": "Bern", "num_connections": 3},
		{"from_station": "Basel SBB", "to_station": "Luzern", "num_connections": 0}
	]}`

	cfg, err := Parse(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := &WidgetConfig{Connections: []StationPair{
		{FromStation: "Zürich HB", ToStation: "Bern", NumConnections: 3},
		{FromStation: "Basel SBB", ToStation: "Luzern", NumConnections: 0},
	}}
	if !reflect.DeepEqual(cfg, want) {
		t.Errorf("parsed config mismatch.\nGot: %+v\nExpected: %+v", cfg, want)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"not json", "connections"},
		{"single pair shape", `{"from_station": "A", "to_station": "B", "num_connections": 1}`},
		{"count out of range", `{"connections": [{"from_station": "A", "to_station": "B", "num_connections": 300}]}`},
		{"negative count", `{"connections": [{"from_station": "A", "to_station": "B", "num_connections": -1}]}`},
		{"trailing data", `{"connections": []} {}`},
		{"trailing closing brace", `{"connections": []} }`},
		{"trailing closing bracket", `{"connections": []}]`},
		{"empty object with whitespace", `{ }`},
		{"null connections", `{"connections": null}`},
		{"missing from_station", `{"connections": [{"to_station": "B", "num_connections": 1}]}`},
		{"missing to_station", `{"connections": [{"from_station": "A", "num_connections": 1}]}`},
		{"missing num_connections", `{"connections": [{"from_station": "A", "to_station": "B"}]}`},
		{"null station", `{"connections": [{"from_station": null, "to_station": "B", "num_connections": 1}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.raw)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
		})
	}
}

func TestParse_EmptyList(t *testing.T) {
	cfg, err := Parse(`{"connections": []}`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cfg.Connections) != 0 {
		t.Errorf("expected no station pairs, got %+v", cfg.Connections)
	}
}

func TestParse_TrailingWhitespace(t *testing.T) {
	if _, err := Parse("{\"connections\": []}\n\t "); err != nil {
		t.Errorf("expected trailing whitespace to be accepted, got %v", err)
	}
}

func TestWidgetConfig_RoundTrip(t *testing.T) {
	original := WidgetConfig{Connections: []StationPair{
		{FromStation: "Genève", ToStation: "Lausanne", NumConnections: 255},
		{FromStation: "A", ToStation: "B", NumConnections: 1},
	}}

	data, err := json.Marshal(original)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	decoded, err := Parse(string(data))
	if err != nil {
		t.Fatalf("failed to parse own encoding: %v", err)
	}
	if !reflect.DeepEqual(*decoded, original) {
		t.Errorf("round trip mismatch.\nGot: %+v\nExpected: %+v", *decoded, original)
	}
}

func TestSchema(t *testing.T) {
	schema, err := Schema()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var doc map[string]any
	if err := json.Unmarshal([]byte(schema), &doc); err != nil {
		t.Fatalf("schema is not valid JSON: %v", err)
	}

	if doc["type"] != "object" {
		t.Errorf("expected top-level object schema, got %v", doc["type"])
	}
	for _, field := range []string{"connections", "from_station", "to_station", "num_connections"} {
		if !strings.Contains(schema, `"`+field+`"`) {
			t.Errorf("expected schema to describe %s", field)
		}
	}
	if strings.Contains(schema, "$ref") {
		t.Errorf("expected subschemas to be inlined, found $ref in:\n%s", schema)
	}
}

func TestParsePair(t *testing.T) {
	pair, err := ParsePair("Zürich HB:Bern:4")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair != (StationPair{FromStation: "Zürich HB", ToStation: "Bern", NumConnections: 4}) {
		t.Errorf("unexpected pair %+v", pair)
	}

	pair, err = ParsePair(" A : B ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair.NumConnections != 3 || pair.FromStation != "A" || pair.ToStation != "B" {
		t.Errorf("expected trimmed names and default count, got %+v", pair)
	}

	for _, bad := range []string{"A", "A:B:C:D", ":B", "A:B:x", "A:B:256"} {
		if _, err := ParsePair(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}
