package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/database"
)

var draftCmd = &cobra.Command{
	Use:   "draft",
	Short: "Manage local drafts",
	Long:  "Save, list, load and delete local drafts. Drafts live on this machine and need no account or network access.",
}

var saveDraftCmd = &cobra.Command{
	Use:   "save",
	Short: "Save the current resume as a local draft",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()
		if doc == nil {
			fmt.Fprintln(os.Stderr, "No document to save. Run 'resumecraft new' to start one.")
			os.Exit(1)
		}

		saved := database.SaveDraft(doc)
		application.Store.SetDocument(saved)
		fmt.Printf("✓ Draft saved: %s (ID: %s)\n", saved.Title, saved.ID)
	},
}

var listDraftCmd = &cobra.Command{
	Use:   "list",
	Short: "List local drafts, most recently saved first",
	Run: func(cmd *cobra.Command, args []string) {
		drafts, err := database.ListDrafts()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error listing drafts: %v\n", err)
			os.Exit(1)
		}

		if len(drafts) == 0 {
			fmt.Println("No drafts found. Save one with 'resumecraft draft save'")
			return
		}

		fmt.Println(titleStyle.Render("Local Drafts"))
		for i, draft := range drafts {
			fmt.Printf("\n%d. %s\n", i+1, draft.Title)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), draft.ID)
			fmt.Printf("   %s %s\n", labelStyle.Render("Saved:"), draft.UpdatedAt)
		}
	},
}

var loadDraftCmd = &cobra.Command{
	Use:   "load <id>",
	Short: "Load a draft as the current resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		doc, err := database.GetDraft(args[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading draft: %v\n", err)
			os.Exit(1)
		}
		if doc == nil {
			fmt.Fprintf(os.Stderr, "No draft with ID %s\n", args[0])
			os.Exit(1)
		}

		application.Store.SetDocument(doc)
		fmt.Printf("✓ Loaded draft: %s\n", doc.Title)
	},
}

var deleteDraftCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Delete a local draft",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		if err := database.DeleteDraft(args[0]); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting draft: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✓ Draft deleted")
	},
}

func init() {
	rootCmd.AddCommand(draftCmd)
	draftCmd.AddCommand(saveDraftCmd)
	draftCmd.AddCommand(listDraftCmd)
	draftCmd.AddCommand(loadDraftCmd)
	draftCmd.AddCommand(deleteDraftCmd)
}
