package cmd

import (
	"fmt"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/tui"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the saved widget configuration",
	Long:  "View or edit the station pairs stored in ~/.ptwidget.json (or $PTWIDGET_CONFIG).",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		clearPairs, _ := cmd.Flags().GetBool("clear")
		adds, _ := cmd.Flags().GetStringArray("add")
		show, _ := cmd.Flags().GetBool("show")

		if show {
			raw, err := cfg.WidgetJSON()
			if err != nil {
				return err
			}
			fmt.Println(raw)
			return nil
		}

		if !clearPairs && len(adds) == 0 {
			// If no flags are given, launch the interactive TUI flow
			return tui.RunConfigTUI(newClient())
		}

		if clearPairs {
			cfg.Widget.Connections = nil
		}

		for _, a := range adds {
			pair, err := config.ParsePair(a)
			if err != nil {
				return err
			}
			cfg.Widget.Connections = append(cfg.Widget.Connections, pair)
		}

		if err := config.Save(cfg); err != nil {
			return err
		}

		fmt.Printf("✅ Saved %d station pairs\n", len(cfg.Widget.Connections))
		for i, p := range cfg.Widget.Connections {
			fmt.Printf("%d. %s\n", i+1, p)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.Flags().StringArrayP("add", "a", nil, `Add a station pair as "From:To:N" (repeatable)`)
	configCmd.Flags().Bool("clear", false, "Remove all saved station pairs (applied before --add)")
	configCmd.Flags().Bool("show", false, "Print the widget config JSON the host would receive")
}
