package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/server"

	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the widget over HTTP",
	Long:  "Starts an HTTP server with the widget text on /, the config schema on /schema and widget metadata on /info.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		addr, _ := cmd.Flags().GetString("addr")

		// Re-read the config on every request so edits show up without a restart
		source := func() (string, error) {
			return loadWidgetConfig(cmd)
		}

		srv := server.New(newWidget(newClient()), source, logger, os.Stderr)
		return srv.Serve(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	addConfigFlags(serveCmd)
	serveCmd.Flags().String("addr", ":4934", "Address to listen on")
}
