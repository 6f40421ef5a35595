package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/widget"

	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunPreview renders the saved configuration once, the way the display would show it
func RunPreview(w *widget.Widget) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	raw, err := cfg.WidgetJSON()
	if err != nil {
		return err
	}

	var text string
	var runErr error

	_ = spinner.New().
		Title("Fetching live departures...").
		Action(func() {
			text, runErr = w.Run(context.Background(), raw)
		}).
		Run()

	if runErr != nil {
		return fmt.Errorf("could not render widget: %w", runErr)
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n--- 🚆 %s (%s) ---", w.Name(), time.Now().Format("15:04"))))
	fmt.Println(StyleWidgetText(text, accentStyle))
	fmt.Println()
	return nil
}

// StyleWidgetText highlights the "{from} -> {to}" headers of a widget run.
// Departure lines and error text are left as they are.
func StyleWidgetText(text string, header lipgloss.Style) string {
	lines := strings.Split(text, "\n")
	bold := header.Bold(true)
	for i, line := range lines {
		if strings.Contains(line, " -> ") {
			lines[i] = bold.Render(line)
		} else {
			lines[i] = "  " + line
		}
	}
	return strings.Join(lines, "\n")
}
