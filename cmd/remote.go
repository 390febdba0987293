package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
)

var pushCmd = &cobra.Command{
	Use:   "push",
	Short: "Save the current resume to the server",
	Long:  "Create the resume on the server, or update it when it already has a server identity. The server-assigned identity and timestamps are merged back into the local document.",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		requireLogin(application)

		saved, err := application.Remote.Save(cmd.Context())
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error saving to server: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Saved to server: %s (ID: %s)\n", saved.Title, saved.ID)
	},
}

var pullCmd = &cobra.Command{
	Use:   "pull",
	Short: "Fetch the resume collection from the server",
	Long:  "Re-fetch the remote collection and load the most recent resume as the current document.",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		requireLogin(application)

		application.Remote.ResetSession()
		application.Remote.FetchOnce(cmd.Context())

		summaries := application.Store.Summaries()
		if len(summaries) == 0 {
			fmt.Println("No resumes on the server yet. Push one with 'resumecraft push'")
			return
		}
		fmt.Printf("✓ Fetched %d resume(s); loaded %q\n", len(summaries), summaries[0].Title)
	},
}

var remoteCmd = &cobra.Command{
	Use:   "remote",
	Short: "Manage resumes stored on the server",
}

var listRemoteCmd = &cobra.Command{
	Use:   "list",
	Short: "List the server-side resume collection",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		requireLogin(application)

		summaries := application.Store.Summaries()
		if len(summaries) == 0 {
			fmt.Println("No resumes on the server. Push one with 'resumecraft push' or re-fetch with 'resumecraft pull'")
			return
		}

		fmt.Println(titleStyle.Render("Server Resumes"))
		for i, doc := range summaries {
			fmt.Printf("\n%d. %s\n", i+1, doc.Title)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), doc.ID)
			if doc.UpdatedAt != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Updated:"), doc.UpdatedAt)
			}
		}
	},
}

var deleteRemoteCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a resume from the server",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		requireLogin(application)

		if err := application.Remote.Delete(cmd.Context(), args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting from server: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Deleted from server")
	},
}

// requireLogin aborts commands that need an authenticated session.
func requireLogin(application *app.App) {
	if application.Config.Token == "" {
		fmt.Fprintf(os.Stderr, "Error: %v\n", app.ErrNotLoggedIn)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(pushCmd)
	rootCmd.AddCommand(pullCmd)
	rootCmd.AddCommand(remoteCmd)
	remoteCmd.AddCommand(listRemoteCmd)
	remoteCmd.AddCommand(deleteRemoteCmd)
}
