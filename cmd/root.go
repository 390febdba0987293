package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
)

var application *app.App

var rootCmd = &cobra.Command{
	Use:   "resumecraft",
	Short: "Resume authoring and PDF export CLI",
	Long: `Resumecraft lets you build a resume section by section, style it with
templates, keep local drafts, sync with a resume server, import personal
details from an existing PDF or Word resume, and export a multi-page PDF.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Initialize app with all dependencies
		a, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}
		application = a

		// Store app in command context
		cmd.SetContext(app.SetAppInContext(cmd.Context(), a))
		return nil
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	err := rootCmd.Execute()

	// Persist the editing workspace and close resources
	if application != nil {
		if ferr := application.Flush(); ferr != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not persist workspace: %v\n", ferr)
		}
		application.Close()
	}

	if err != nil {
		os.Exit(1)
	}
}
