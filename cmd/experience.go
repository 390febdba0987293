package cmd

import (
	"fmt"
	"os"
	"strconv"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/pkg/models"
)

var experienceCmd = &cobra.Command{
	Use:   "experience",
	Short: "Manage the experience section",
	Long:  "Add, update, reorder and remove work experience entries on the current resume",
}

var addExperienceCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an experience entry",
	Example: `  resumecraft experience add --title "Engineer" --company Acme --start 2020-01 --end 2022-06
  resumecraft experience add --title "Lead" --company Initech --start 2022-07 --current`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		title, _ := cmd.Flags().GetString("title")
		company, _ := cmd.Flags().GetString("company")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		current, _ := cmd.Flags().GetBool("current")
		description, _ := cmd.Flags().GetString("description")

		exp := models.Experience{
			ID:               uuid.NewString(),
			JobTitle:         title,
			Company:          company,
			StartDate:        start,
			EndDate:          end,
			CurrentlyWorking: current,
			Description:      description,
		}
		application.Store.AddExperience(exp)
		fmt.Printf("✓ Experience added: %s at %s (ID: %s)\n", exp.JobTitle, exp.Company, exp.ID)
	},
}

var updateExperienceCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an experience entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		exp, ok := findExperience(application, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "No experience entry with ID %s\n", args[0])
			os.Exit(1)
		}

		if cmd.Flags().Changed("title") {
			exp.JobTitle, _ = cmd.Flags().GetString("title")
		}
		if cmd.Flags().Changed("company") {
			exp.Company, _ = cmd.Flags().GetString("company")
		}
		if cmd.Flags().Changed("start") {
			exp.StartDate, _ = cmd.Flags().GetString("start")
		}
		if cmd.Flags().Changed("end") {
			exp.EndDate, _ = cmd.Flags().GetString("end")
		}
		if cmd.Flags().Changed("current") {
			exp.CurrentlyWorking, _ = cmd.Flags().GetBool("current")
		}
		if cmd.Flags().Changed("description") {
			exp.Description, _ = cmd.Flags().GetString("description")
		}

		application.Store.UpdateExperience(args[0], exp)
		fmt.Println("✓ Experience updated")
	},
}

var deleteExperienceCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an experience entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		if _, ok := findExperience(application, args[0]); !ok {
			fmt.Fprintf(os.Stderr, "No experience entry with ID %s\n", args[0])
			os.Exit(1)
		}
		application.Store.DeleteExperience(args[0])
		fmt.Println("✓ Experience removed")
	},
}

var moveExperienceCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move an experience entry to a new position",
	Long:  "Positions are 1-based as shown by 'resumecraft experience list'",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		from, to := parsePositions(args[0], args[1])
		application.Store.ReorderExperience(from, to)
		fmt.Println("✓ Experience reordered")
	},
}

var listExperienceCmd = &cobra.Command{
	Use:   "list",
	Short: "List experience entries in stored order",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()

		if len(doc.Experiences) == 0 {
			fmt.Println("No experience entries. Add one with 'resumecraft experience add'")
			return
		}

		fmt.Println(titleStyle.Render("Experience"))
		for i, exp := range doc.Experiences {
			end := exp.EndDate
			if exp.CurrentlyWorking {
				end = "Present"
			}
			fmt.Printf("\n%d. %s at %s\n", i+1, exp.JobTitle, exp.Company)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), exp.ID)
			fmt.Printf("   %s %s - %s\n", labelStyle.Render("Dates:"), exp.StartDate, end)
			if exp.Description != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Description:"), exp.Description)
			}
		}
	},
}

// findExperience resolves an entry by identity on the current document.
func findExperience(application *app.App, id string) (models.Experience, bool) {
	doc := application.Store.Current()
	for _, exp := range doc.Experiences {
		if exp.ID == id {
			return exp, true
		}
	}
	return models.Experience{}, false
}

// parsePositions converts 1-based list positions to 0-based indices.
func parsePositions(fromArg, toArg string) (int, int) {
	from, err := strconv.Atoi(fromArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid position: %s\n", fromArg)
		os.Exit(1)
	}
	to, err := strconv.Atoi(toArg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Invalid position: %s\n", toArg)
		os.Exit(1)
	}
	return from - 1, to - 1
}

func init() {
	rootCmd.AddCommand(experienceCmd)
	experienceCmd.AddCommand(addExperienceCmd)
	experienceCmd.AddCommand(updateExperienceCmd)
	experienceCmd.AddCommand(deleteExperienceCmd)
	experienceCmd.AddCommand(moveExperienceCmd)
	experienceCmd.AddCommand(listExperienceCmd)

	for _, c := range []*cobra.Command{addExperienceCmd, updateExperienceCmd} {
		c.Flags().String("title", "", "Job title")
		c.Flags().String("company", "", "Company name")
		c.Flags().String("start", "", "Start date")
		c.Flags().String("end", "", "End date")
		c.Flags().Bool("current", false, "Currently working in this role")
		c.Flags().String("description", "", "Role description")
	}
	addExperienceCmd.MarkFlagRequired("title")
	addExperienceCmd.MarkFlagRequired("company")
}
