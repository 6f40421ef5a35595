// Package widget implements the host-facing surface of the public transport
// display widget: metadata queries, the config schema and the render run.
package widget

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/clock"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/logging"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"
)

const (
	Name               = "Public Transport"
	Version            = "1.0.0"
	UpdateCycleSeconds = 90
)

// NoConfig is shown while the host still holds the empty configuration.
const NoConfig = "No config provided"

// Fetcher loads the connections between two stations
type Fetcher interface {
	FetchConnections(ctx context.Context, from, to string) (*transit.ConnectionsResponse, error)
}

// Widget renders departure summaries for the configured station pairs.
// It keeps no state between runs.
type Widget struct {
	fetcher Fetcher
	clock   clock.Clock
	logger  *slog.Logger
}

func New(fetcher Fetcher, c clock.Clock, logger *slog.Logger) *Widget {
	if c == nil {
		c = clock.System{}
	}
	if logger == nil {
		logger = logging.Discard()
	}
	return &Widget{fetcher: fetcher, clock: c, logger: logger}
}

func (w *Widget) Name() string { return Name }

func (w *Widget) Version() string { return Version }

func (w *Widget) RunUpdateCycleSeconds() uint32 { return UpdateCycleSeconds }

// configSchema is built once; WidgetConfig is a fixed struct of strings,
// slices and integers, so reflecting and serializing it cannot fail.
var configSchema = mustSchema()

func mustSchema() string {
	schema, err := config.Schema()
	if err != nil {
		panic(err)
	}
	return schema
}

// ConfigSchema describes the configuration document Run expects.
func (w *Widget) ConfigSchema() string {
	return configSchema
}

// Run renders every configured station pair, one block per pair joined by
// newlines. Per-pair fetch failures are rendered in place of the departures.
// An undecodable configuration aborts the run with a *config.ParseError.
func (w *Widget) Run(ctx context.Context, configJSON string) (string, error) {
	if configJSON == "{}" {
		return NoConfig, nil
	}

	cfg, err := config.Parse(configJSON)
	if err != nil {
		w.logger.Error("invalid widget config", "error", err)
		return "", err
	}

	blocks := make([]string, 0, len(cfg.Connections))
	for _, pair := range cfg.Connections {
		blocks = append(blocks, w.renderPair(ctx, pair))
	}
	return strings.Join(blocks, "\n"), nil
}

func (w *Widget) renderPair(ctx context.Context, pair config.StationPair) string {
	data, err := w.fetcher.FetchConnections(ctx, pair.FromStation, pair.ToStation)
	if err != nil {
		w.logger.Warn("fetching connections failed", "from", pair.FromStation, "to", pair.ToStation, "error", err)
		return DescribeFetchError(err)
	}

	w.logger.Debug("fetched connections", "from", data.From.Name, "to", data.To.Name, "count", len(data.Connections))
	return transit.RenderDepartures(data, int(pair.NumConnections), w.clock.Now())
}

// DescribeFetchError turns a fetch failure into the line shown on the display.
func DescribeFetchError(err error) string {
	var statusErr *transit.StatusError
	var decodeErr *transit.DecodeError

	switch {
	case errors.As(err, &statusErr):
		return fmt.Sprintf("Response status != 200: %d", statusErr.Code)
	case errors.As(err, &decodeErr):
		return fmt.Sprintf("Failed to parse response: %v", decodeErr.Err)
	default:
		return "Failed to make network request"
	}
}
