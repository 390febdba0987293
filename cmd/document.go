package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
)

var newCmd = &cobra.Command{
	Use:   "new",
	Short: "Start a fresh resume",
	Long:  "Replace the current document with a fresh empty resume. The previous document is discarded unless saved as a draft or pushed to the server.",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		application.Store.ResetDocument()
		app.ApplyDefaultTemplate(application.Store, application.Config.DefaultTemplate)
		fmt.Println("✓ Started a fresh resume")
	},
}

var titleCmd = &cobra.Command{
	Use:   "title <title>",
	Short: "Set the resume title",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		application.Store.SetTitle(args[0])
		fmt.Printf("✓ Title set to %q\n", args[0])
	},
}

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the current resume",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()
		if doc == nil {
			fmt.Fprintln(os.Stderr, "No document loaded. Run 'resumecraft new' to start one.")
			os.Exit(1)
		}

		fmt.Println(titleStyle.Render(doc.Title))
		if doc.ID != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("ID:"), valueStyle.Render(doc.ID))
		}
		fmt.Printf("%s %s\n", labelStyle.Render("Template:"), valueStyle.Render(doc.SelectedTemplate))
		if doc.PersonalInfo.FullName != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(doc.PersonalInfo.FullName))
		}
		fmt.Printf("%s %d experience, %d education, %d skills\n",
			labelStyle.Render("Sections:"), len(doc.Experiences), len(doc.Education), len(doc.Skills))
		if doc.UpdatedAt != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Updated:"), valueStyle.Render(doc.UpdatedAt))
		}
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	rootCmd.AddCommand(titleCmd)
	rootCmd.AddCommand(showCmd)
}
