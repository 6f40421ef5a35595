package cmd

import (
	"fmt"

	"github.com/charmbracelet/huh/spinner"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Render the widget once",
	Long:  "Fetches the next departures for every configured station pair and prints the widget text.",
	RunE: func(cmd *cobra.Command, args []string) error {
		raw, err := loadWidgetConfig(cmd)
		if err != nil {
			return err
		}

		w := newWidget(newClient())
		plain, _ := cmd.Flags().GetBool("plain")

		var text string
		action := func() {
			text, err = w.Run(cmd.Context(), raw)
		}

		if plain {
			action()
		} else {
			_ = spinner.New().
				Title("Fetching live departures...").
				Action(action).
				Run()
		}

		if err != nil {
			return err
		}

		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	addConfigFlags(runCmd)
	runCmd.Flags().BoolP("plain", "p", false, "Skip the spinner, for scripts and display hosts")
}
