package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/clock"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/logging"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/widget"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var (
	logLevel  string
	logFormat string

	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "ptwidget",
	Short: "Public transport departures for your display",
	Long: `ptwidget shows the next departures between configured station pairs,
using the transport.opendata.ch timetable API.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A missing .env is fine, flags and the environment still apply
		_ = godotenv.Load()

		if !cmd.Flags().Changed("log-level") {
			if v := os.Getenv("PTWIDGET_LOG_LEVEL"); v != "" {
				logLevel = v
			}
		}
		if !cmd.Flags().Changed("log-format") {
			if v := os.Getenv("PTWIDGET_LOG_FORMAT"); v != "" {
				logFormat = v
			}
		}

		logger = logging.New(os.Stderr, logging.Config{Level: logLevel, Format: logFormat})
		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func newClient() *transit.Client {
	return transit.NewClient(transit.WithLogger(logger))
}

func newWidget(client *transit.Client) *widget.Widget {
	return widget.New(client, clock.System{}, logger)
}

// loadWidgetConfig picks the configuration document for a run: an inline
// --config value, a --config-file, or the saved configuration.
func loadWidgetConfig(cmd *cobra.Command) (string, error) {
	inline, _ := cmd.Flags().GetString("config")
	if inline != "" {
		return inline, nil
	}

	path, _ := cmd.Flags().GetString("config-file")
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("could not read config file: %w", err)
		}
		return string(data), nil
	}

	cfg, err := config.Load()
	if err != nil {
		return "", err
	}
	return cfg.WidgetJSON()
}

func addConfigFlags(cmd *cobra.Command) {
	cmd.Flags().String("config", "", `Widget config JSON, e.g. '{"connections":[{"from_station":"Bern","to_station":"Thun","num_connections":3}]}'`)
	cmd.Flags().String("config-file", "", "Path to a widget config JSON file")
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "text", "Log format (text, json)")
}
