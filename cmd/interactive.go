package cmd

import (
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/tui"

	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch the interactive TUI",
	Long:  `Launch the Text User Interface to manage station pairs and preview the widget.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		client := newClient()
		return tui.RunTUI(newWidget(client), client)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}
