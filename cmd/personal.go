package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"resumecraft/internal/app"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12")).
			MarginTop(1).
			MarginBottom(1)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
)

var personalCmd = &cobra.Command{
	Use:   "personal",
	Short: "Manage the personal info section",
	Long:  "View and update the name, contact details and professional summary of the current resume",
}

var showPersonalCmd = &cobra.Command{
	Use:   "show",
	Short: "Display the personal info section",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()

		info := doc.PersonalInfo
		fmt.Println(titleStyle.Render("Personal Info"))
		fmt.Printf("%s %s\n", labelStyle.Render("Name:"), valueStyle.Render(info.FullName))
		fmt.Printf("%s %s\n", labelStyle.Render("Email:"), valueStyle.Render(info.Email))
		if info.Phone != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Phone:"), valueStyle.Render(info.Phone))
		}
		if info.Location != "" {
			fmt.Printf("%s %s\n", labelStyle.Render("Location:"), valueStyle.Render(info.Location))
		}
		if info.ProfessionalSummary != "" {
			fmt.Println(labelStyle.Render("\nProfessional Summary:"))
			fmt.Println(valueStyle.Render(info.ProfessionalSummary))
		}
	},
}

var setPersonalCmd = &cobra.Command{
	Use:   "set",
	Short: "Update personal info fields",
	Example: `  resumecraft personal set --name "Jane Smith"
  resumecraft personal set --email jane@example.com --phone "+1 415 555 0100"
  resumecraft personal set --summary "Builds distributed systems."`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()
		info := doc.PersonalInfo

		name, _ := cmd.Flags().GetString("name")
		email, _ := cmd.Flags().GetString("email")
		phone, _ := cmd.Flags().GetString("phone")
		location, _ := cmd.Flags().GetString("location")
		summary, _ := cmd.Flags().GetString("summary")

		updated := false

		if name != "" {
			info.FullName = name
			updated = true
		}
		if email != "" {
			info.Email = email
			updated = true
		}
		if phone != "" {
			info.Phone = phone
			updated = true
		}
		if location != "" {
			info.Location = location
			updated = true
		}
		if summary != "" {
			info.ProfessionalSummary = summary
			updated = true
		}

		if !updated {
			fmt.Println("No fields to update. Use flags like --name, --email, etc.")
			return
		}

		application.Store.UpdatePersonalInfo(info)
		fmt.Println("✓ Personal info updated")
	},
}

func init() {
	rootCmd.AddCommand(personalCmd)
	personalCmd.AddCommand(showPersonalCmd)
	personalCmd.AddCommand(setPersonalCmd)

	// Flags for set command
	setPersonalCmd.Flags().String("name", "", "Update full name")
	setPersonalCmd.Flags().String("email", "", "Update email")
	setPersonalCmd.Flags().String("phone", "", "Update phone")
	setPersonalCmd.Flags().String("location", "", "Update location")
	setPersonalCmd.Flags().String("summary", "", "Update professional summary")
}
