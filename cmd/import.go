package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/importer"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import personal details from an existing resume file",
	Long: `Extract text from a PDF or Word resume and overlay the recognizable
personal details (name, email, phone, professional summary) onto the
current document. Extraction is best-effort: fields with no match are
left as they are.`,
	Args: cobra.ExactArgs(1),
	Example: `  resumecraft import ~/Documents/old-resume.pdf
  resumecraft import ./resume.docx`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		filePath := args[0]

		data, err := os.ReadFile(filePath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading file: %v\n", err)
			os.Exit(1)
		}

		text, err := importer.ExtractText(filePath, data)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error extracting text: %v\n", err)
			os.Exit(1)
		}

		next := importer.Apply(application.Store.Current(), text)
		application.Store.SetDocument(next)

		info := next.PersonalInfo
		fmt.Println(titleStyle.Render("Imported"))
		if info.FullName != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(info.FullName))
		}
		if info.Email != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(info.Email))
		}
		if info.Phone != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Phone:"), valueStyle.Render(info.Phone))
		}
		if info.ProfessionalSummary != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Summary:"), valueStyle.Render(info.ProfessionalSummary))
		}
	},
}

func init() {
	rootCmd.AddCommand(importCmd)
}
