package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// EnvConfigPath overrides the default location of the saved configuration
const EnvConfigPath = "PTWIDGET_CONFIG"

// AppConfig holds all user-defined persistent settings
type AppConfig struct {
	Widget      WidgetConfig `json:"widget"`
	AccentColor string       `json:"accent_color,omitempty"`
}

// getConfigPath returns the absolute path to ~/.ptwidget.json
func getConfigPath() (string, error) {
	if path := os.Getenv(EnvConfigPath); path != "" {
		return path, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find user home directory: %w", err)
	}
	return filepath.Join(homeDir, ".ptwidget.json"), nil
}

// Load reads the application configuration from disk.
// Returns an empty struct if the file does not exist.
func Load() (*AppConfig, error) {
	path, err := getConfigPath()
	if err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		// If file doesn't exist, just return an empty default configuration
		if os.IsNotExist(err) {
			return &AppConfig{}, nil
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg AppConfig
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Save writes the application configuration back to disk.
func Save(cfg *AppConfig) error {
	path, err := getConfigPath()
	if err != nil {
		return err
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// WidgetJSON renders the saved widget section as the document the widget
// receives from its host. An unconfigured widget becomes "{}".
func (c *AppConfig) WidgetJSON() (string, error) {
	if len(c.Widget.Connections) == 0 {
		return "{}", nil
	}
	data, err := json.Marshal(c.Widget)
	if err != nil {
		return "", fmt.Errorf("failed to serialize widget config: %w", err)
	}
	return string(data), nil
}
