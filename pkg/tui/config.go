package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/eliabieri/wg-display-widget-public-transport/pkg/config"
	"github.com/eliabieri/wg-display-widget-public-transport/pkg/transit"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
)

// RunConfigTUI launches the interactive experience for managing station pairs
func RunConfigTUI(client *transit.Client) error {
	for {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		var action string

		initialForm := huh.NewForm(
			huh.NewGroup(
				huh.NewSelect[string]().
					Title("Station Pairs").
					Options(
						huh.NewOption("Add Station Pair", "add"),
						huh.NewOption("Remove Station Pairs", "remove"),
						huh.NewOption("View Current Config", "view"),
						huh.NewOption("Back to Main Menu", "back"),
					).
					Value(&action),
			),
		).WithTheme(GetTheme())

		if err := initialForm.Run(); err != nil {
			return err
		}

		switch action {
		case "back":
			return nil
		case "add":
			err = runAddPairTUI(cfg, client)
		case "remove":
			err = runRemovePairsTUI(cfg)
		case "view":
			printConfig(cfg)
		}

		if err != nil {
			return err
		}
	}
}

func printConfig(cfg *config.AppConfig) {
	fmt.Println(accentStyle.Render("\n--- Current Configuration ---"))
	if len(cfg.Widget.Connections) == 0 {
		fmt.Println("Station Pairs: Not set")
	}
	for i, p := range cfg.Widget.Connections {
		fmt.Printf("%d. %s\n", i+1, p)
	}
	fmt.Printf("Accent Color: %s\n", cfg.AccentColor)
	fmt.Println()
}

func runAddPairTUI(cfg *config.AppConfig, client *transit.Client) error {
	from, err := pickStation(client, "Where do you depart from?")
	if err != nil || from == "" {
		return err
	}
	to, err := pickStation(client, "Where are you going?")
	if err != nil || to == "" {
		return err
	}

	count := "3"
	countForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("How many departures should be shown?").
				Value(&count).
				Validate(validateCount),
		),
	).WithTheme(GetTheme())

	if err := countForm.Run(); err != nil {
		return err
	}

	n, _ := strconv.ParseUint(strings.TrimSpace(count), 10, 8)
	pair := config.StationPair{FromStation: from, ToStation: to, NumConnections: uint8(n)}
	cfg.Widget.Connections = append(cfg.Widget.Connections, pair)

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Added %s\n", pair)))
	return nil
}

func validateCount(s string) error {
	if _, err := strconv.ParseUint(strings.TrimSpace(s), 10, 8); err != nil {
		return fmt.Errorf("must be a number between 0 and 255")
	}
	return nil
}

// pickStation asks for a free-text station name and lets the user choose
// among the stations the API knows under that name.
func pickStation(client *transit.Client, title string) (string, error) {
	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title(title).
				Placeholder("e.g. Zürich HB").
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return "", err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		fmt.Println("Operation cancelled: No station provided.")
		return "", nil
	}

	var locations []transit.Location
	var fetchErr error

	_ = spinner.New().
		Title(fmt.Sprintf("Searching transit network for '%s'...", input)).
		Action(func() {
			locations, fetchErr = client.FetchLocations(context.Background(), input)
		}).
		Run()

	if fetchErr != nil {
		return "", fmt.Errorf("could not lookup station: %w", fetchErr)
	}

	if len(locations) == 0 {
		fmt.Println(errorStyle.Render(fmt.Sprintf("❌ No matching stations found for '%s'", input)))
		return "", nil
	}

	if len(locations) == 1 {
		return locations[0].Name, nil
	}

	var options []huh.Option[string]
	for _, l := range locations {
		options = append(options, huh.NewOption(l.Name, l.Name))
	}

	selected := locations[0].Name
	selectForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Which station did you mean?").
				Options(options...).
				Value(&selected),
		),
	).WithTheme(GetTheme())

	if err := selectForm.Run(); err != nil {
		return "", err
	}
	return selected, nil
}

func runRemovePairsTUI(cfg *config.AppConfig) error {
	if len(cfg.Widget.Connections) == 0 {
		fmt.Println(errorStyle.Render("There are no station pairs to remove."))
		return nil
	}

	var options []huh.Option[int]
	for i, p := range cfg.Widget.Connections {
		options = append(options, huh.NewOption(p.String(), i))
	}

	var remove []int

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewMultiSelect[int]().
				Title("Select the station pairs to remove").
				Description("Space = toggle, Enter = confirm.").
				Options(options...).
				Value(&remove),
		),
	).WithTheme(GetTheme())

	if err := form.Run(); err != nil {
		return err
	}

	cfg.Widget.Connections = RemovePairs(cfg.Widget.Connections, remove)
	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(accentStyle.Render(fmt.Sprintf("\n✅ Removed %d station pairs.\n", len(remove))))
	return nil
}

// RemovePairs drops the pairs at the given indices, keeping the order of the rest.
func RemovePairs(pairs []config.StationPair, indices []int) []config.StationPair {
	drop := make(map[int]bool, len(indices))
	for _, i := range indices {
		drop[i] = true
	}

	kept := make([]config.StationPair, 0, len(pairs))
	for i, p := range pairs {
		if !drop[i] {
			kept = append(kept, p)
		}
	}
	return kept
}

func colorBlock(color string) string {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color)).Render("██")
}

func runSetThemeTUI() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	var input string

	inputForm := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Choose an Accent Color").
				Description("Select a curated Charm style or choose Custom to enter your own Hex.").
				Options(
					huh.NewOption(fmt.Sprintf("%s Display Purple", colorBlock("99")), "99"),
					huh.NewOption(fmt.Sprintf("%s Sakura Pink", colorBlock("205")), "205"),
					huh.NewOption(fmt.Sprintf("%s Ocean Blue", colorBlock("86")), "86"),
					huh.NewOption(fmt.Sprintf("%s Matrix Green", colorBlock("42")), "42"),
					huh.NewOption("✨ Custom Hex Code", "custom"),
				).
				Value(&input),
		),
	).WithTheme(GetTheme())

	if err := inputForm.Run(); err != nil {
		return err
	}

	if input == "custom" {
		var hexInput string
		hexForm := huh.NewForm(
			huh.NewGroup(
				huh.NewInput().
					Title("Enter a Hex Color Code").
					Description("Include the `#` symbol. Example: #FF00FF").
					Placeholder("#").
					Value(&hexInput).
					Validate(ValidateHex),
			),
		).WithTheme(GetTheme())

		if err := hexForm.Run(); err != nil {
			return err
		}
		cfg.AccentColor = hexInput
	} else {
		cfg.AccentColor = input
	}

	if err := config.Save(cfg); err != nil {
		return err
	}

	fmt.Println(AccentStyle(cfg.AccentColor).Render("\n✅ The theme color is now saved.\n"))
	return nil
}

// ValidateHex accepts "#RRGGBB" color codes.
func ValidateHex(str string) error {
	if len(str) != 7 || !strings.HasPrefix(str, "#") {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	if _, err := strconv.ParseUint(str[1:], 16, 32); err != nil {
		return fmt.Errorf("must be a valid 6-character hex code starting with #")
	}
	return nil
}
