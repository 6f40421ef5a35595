package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/tui"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Re-render the widget every update cycle",
	Long:  "Behaves like a display host: runs the widget, then runs it again after each update cycle until interrupted.",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		w := newWidget(newClient())

		interval, _ := cmd.Flags().GetDuration("interval")
		if interval <= 0 {
			interval = time.Duration(w.RunUpdateCycleSeconds()) * time.Second
		}

		cfg, err := config.Load()
		if err != nil {
			return err
		}
		header := tui.AccentStyle(cfg.AccentColor).Bold(true)
		title := cases.Title(language.English).String(w.Name())

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			raw, err := loadWidgetConfig(cmd)
			if err != nil {
				return err
			}

			text, err := w.Run(ctx, raw)
			if err != nil {
				return err
			}

			fmt.Print("\033[H\033[2J")
			fmt.Println(header.Render(fmt.Sprintf("%s · %s", title, time.Now().Format("15:04:05"))))
			fmt.Println(tui.StyleWidgetText(text, header))

			select {
			case <-ctx.Done():
				return nil
			case <-ticker.C:
			}
		}
	},
}

func init() {
	rootCmd.AddCommand(watchCmd)
	addConfigFlags(watchCmd)
	watchCmd.Flags().Duration("interval", 0, "Override the widget's update cycle (e.g. 30s)")
}
