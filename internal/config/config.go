package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds the application configuration
type Config struct {
	APIBaseURL      string  `mapstructure:"api_base_url"`
	Token           string  `mapstructure:"token"`
	DefaultTemplate string  `mapstructure:"default_template"`
	ExportScale     float64 `mapstructure:"export_scale"`
	ChromePath      string  `mapstructure:"chrome_path"`
}

var AppConfig *Config

// Initialize loads or creates the configuration file
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	configDir := filepath.Join(homeDir, ".resumecraft")
	configFile := filepath.Join(configDir, "config.yaml")

	// Create config directory if it doesn't exist
	if err := os.MkdirAll(configDir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	// Create default config if it doesn't exist
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		if err := createDefaultConfig(configFile); err != nil {
			return err
		}
	}

	viper.SetConfigFile(configFile)
	viper.SetConfigType("yaml")

	// Set defaults
	viper.SetDefault("api_base_url", "http://localhost:5000/api")
	viper.SetDefault("token", "")
	viper.SetDefault("default_template", "classic")
	viper.SetDefault("export_scale", 2.0)
	viper.SetDefault("chrome_path", "")

	// Read config
	if err := viper.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config: %w", err)
	}

	// Unmarshal into struct
	AppConfig = &Config{}
	if err := viper.Unmarshal(AppConfig); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig(path string) error {
	defaultConfig := `# Resumecraft Configuration
# Base URL of the resume API server
api_base_url: http://localhost:5000/api

# Bearer token issued by 'resumecraft auth login' (keep this file secure!)
token: ""

# Template used for new documents
default_template: classic

# Rasterization scale for PDF export (2 = print quality)
export_scale: 2

# Optional explicit path to a Chrome/Chromium binary
chrome_path: ""
`
	return os.WriteFile(path, []byte(defaultConfig), 0600)
}

// Set updates a configuration value
func Set(key, value string) error {
	viper.Set(key, value)
	return viper.WriteConfig()
}

// Get retrieves a configuration value
func Get(key string) string {
	return viper.GetString(key)
}

// GetConfigPath returns the path to the config file
func GetConfigPath() string {
	homeDir, _ := os.UserHomeDir()
	return filepath.Join(homeDir, ".resumecraft", "config.yaml")
}
