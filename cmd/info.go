package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Show the widget's name, version and update cycle",
	Run: func(cmd *cobra.Command, args []string) {
		w := newWidget(newClient())
		fmt.Printf("%s %s\n", cases.Title(language.English).String(w.Name()), w.Version())
		fmt.Printf("Update cycle: %ds\n", w.RunUpdateCycleSeconds())
	},
}

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON Schema of the widget configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(newWidget(newClient()).ConfigSchema())
	},
}

func init() {
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(schemaCmd)
}
