package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  "View and update configuration settings",
}

var showConfigCmd = &cobra.Command{
	Use:   "show",
	Short: "Display current configuration",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(titleStyle.Render("Configuration"))
		fmt.Printf("%s %s\n", labelStyle.Render("Config File:"), config.GetConfigPath())
		fmt.Printf("%s %s\n", labelStyle.Render("API Base URL:"), config.AppConfig.APIBaseURL)
		fmt.Printf("%s %s\n", labelStyle.Render("Default Template:"), config.AppConfig.DefaultTemplate)
		fmt.Printf("%s %g\n", labelStyle.Render("Export Scale:"), config.AppConfig.ExportScale)

		if config.AppConfig.ChromePath != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Chrome Path:"), config.AppConfig.ChromePath)
		}

		// Show whether a session exists without printing the token
		if config.AppConfig.Token != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Session:"), "✓ Logged in")
		} else {
			fmt.Printf("%s %s\n", labelStyle.Render("Session:"), "✗ Not logged in")
		}
	},
}

var setConfigCmd = &cobra.Command{
	Use:   "set",
	Short: "Update a configuration value",
	Example: `  resumecraft config set --key api_base_url --value https://api.example.com/api
  resumecraft config set --key default_template --value modern
  resumecraft config set --key export_scale --value 3
  resumecraft config set --key chrome_path --value /usr/bin/chromium`,
	Run: func(cmd *cobra.Command, args []string) {
		key, _ := cmd.Flags().GetString("key")
		value, _ := cmd.Flags().GetString("value")

		if key == "" || value == "" {
			fmt.Println("Both --key and --value are required")
			return
		}

		// Validate key
		validKeys := []string{"api_base_url", "default_template", "export_scale", "chrome_path"}
		valid := false
		for _, k := range validKeys {
			if k == key {
				valid = true
				break
			}
		}
		if !valid {
			fmt.Printf("Invalid key. Must be one of: %v\n", validKeys)
			return
		}

		if err := config.Set(key, value); err != nil {
			fmt.Fprintf(os.Stderr, "Error updating config: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("✓ Configuration updated: %s\n", key)

		// Reload config
		if err := config.Initialize(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: Could not reload config: %v\n", err)
		}
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(showConfigCmd)
	configCmd.AddCommand(setConfigCmd)

	// Flags for set command
	setConfigCmd.Flags().String("key", "", "Configuration key")
	setConfigCmd.Flags().String("value", "", "Configuration value")
}
