package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/exporter"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export upcoming departures to an ICS file",
	Long:  `Writes the upcoming departures of every configured station pair as calendar events.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		output, _ := cmd.Flags().GetString("output")

		raw, err := loadWidgetConfig(cmd)
		if err != nil {
			return err
		}
		if raw == "{}" {
			return fmt.Errorf("no station pairs configured. Run 'ptwidget config --add \"From:To:N\"' first")
		}
		cfg, err := config.Parse(raw)
		if err != nil {
			return err
		}

		client := newClient()
		now := time.Now()
		var sections []exporter.Section

		_ = spinner.New().
			Title(fmt.Sprintf("Exporting departures to %s...", output)).
			Action(func() {
				for _, pair := range cfg.Connections {
					resp, fetchErr := client.FetchConnections(cmd.Context(), pair.FromStation, pair.ToStation)
					if fetchErr != nil {
						err = fmt.Errorf("failed to fetch %s: %w", pair, fetchErr)
						return
					}
					sections = append(sections, exporter.Section{
						From:       resp.From.Name,
						To:         resp.To.Name,
						Departures: transit.UpcomingDepartures(resp, int(pair.NumConnections), now),
					})
				}
			}).
			Run()

		if err != nil {
			return err
		}

		file, err := os.Create(output)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()

		err = exporter.GenerateICS(sections, file, now)
		if err != nil {
			return fmt.Errorf("failed to generate ICS: %w", err)
		}

		fmt.Printf("Successfully exported departures for %d station pairs to %s\n", len(sections), output)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	addConfigFlags(exportCmd)
	exportCmd.Flags().StringP("output", "o", "departures.ics", "Output file path")
}
