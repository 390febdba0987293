package cmd

import (
	"fmt"
	"os"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/pkg/models"
)

var educationCmd = &cobra.Command{
	Use:   "education",
	Short: "Manage the education section",
	Long:  "Add, update, reorder and remove education entries on the current resume",
}

var addEducationCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an education entry",
	Example: `  resumecraft education add --school MIT --degree BSc --field "Computer Science" --start 2014 --end 2018
  resumecraft education add --school "Online Academy" --degree Certificate --start 2019 --end 2019 --grade "95%"`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		school, _ := cmd.Flags().GetString("school")
		degree, _ := cmd.Flags().GetString("degree")
		field, _ := cmd.Flags().GetString("field")
		start, _ := cmd.Flags().GetString("start")
		end, _ := cmd.Flags().GetString("end")
		grade, _ := cmd.Flags().GetString("grade")

		edu := models.Education{
			ID:           uuid.NewString(),
			School:       school,
			Degree:       degree,
			FieldOfStudy: field,
			StartDate:    start,
			EndDate:      end,
			Grade:        grade,
		}
		application.Store.AddEducation(edu)
		fmt.Printf("✓ Education added: %s, %s (ID: %s)\n", edu.Degree, edu.School, edu.ID)
	},
}

var updateEducationCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update an education entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		edu, ok := findEducation(application, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "No education entry with ID %s\n", args[0])
			os.Exit(1)
		}

		if cmd.Flags().Changed("school") {
			edu.School, _ = cmd.Flags().GetString("school")
		}
		if cmd.Flags().Changed("degree") {
			edu.Degree, _ = cmd.Flags().GetString("degree")
		}
		if cmd.Flags().Changed("field") {
			edu.FieldOfStudy, _ = cmd.Flags().GetString("field")
		}
		if cmd.Flags().Changed("start") {
			edu.StartDate, _ = cmd.Flags().GetString("start")
		}
		if cmd.Flags().Changed("end") {
			edu.EndDate, _ = cmd.Flags().GetString("end")
		}
		if cmd.Flags().Changed("grade") {
			edu.Grade, _ = cmd.Flags().GetString("grade")
		}

		application.Store.UpdateEducation(args[0], edu)
		fmt.Println("✓ Education updated")
	},
}

var deleteEducationCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove an education entry",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		if _, ok := findEducation(application, args[0]); !ok {
			fmt.Fprintf(os.Stderr, "No education entry with ID %s\n", args[0])
			os.Exit(1)
		}
		application.Store.DeleteEducation(args[0])
		fmt.Println("✓ Education removed")
	},
}

var moveEducationCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move an education entry to a new position",
	Long:  "Positions are 1-based as shown by 'resumecraft education list'",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		from, to := parsePositions(args[0], args[1])
		application.Store.ReorderEducation(from, to)
		fmt.Println("✓ Education reordered")
	},
}

var listEducationCmd = &cobra.Command{
	Use:   "list",
	Short: "List education entries in stored order",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()

		if len(doc.Education) == 0 {
			fmt.Println("No education entries. Add one with 'resumecraft education add'")
			return
		}

		fmt.Println(titleStyle.Render("Education"))
		for i, edu := range doc.Education {
			degree := edu.Degree
			if edu.FieldOfStudy != "" {
				degree = fmt.Sprintf("%s in %s", edu.Degree, edu.FieldOfStudy)
			}
			fmt.Printf("\n%d. %s\n", i+1, edu.School)
			fmt.Printf("   %s %s\n", labelStyle.Render("ID:"), edu.ID)
			fmt.Printf("   %s %s\n", labelStyle.Render("Degree:"), degree)
			fmt.Printf("   %s %s - %s\n", labelStyle.Render("Dates:"), edu.StartDate, edu.EndDate)
			if edu.Grade != "" {
				fmt.Printf("   %s %s\n", labelStyle.Render("Grade:"), edu.Grade)
			}
		}
	},
}

func findEducation(application *app.App, id string) (models.Education, bool) {
	doc := application.Store.Current()
	for _, edu := range doc.Education {
		if edu.ID == id {
			return edu, true
		}
	}
	return models.Education{}, false
}

func init() {
	rootCmd.AddCommand(educationCmd)
	educationCmd.AddCommand(addEducationCmd)
	educationCmd.AddCommand(updateEducationCmd)
	educationCmd.AddCommand(deleteEducationCmd)
	educationCmd.AddCommand(moveEducationCmd)
	educationCmd.AddCommand(listEducationCmd)

	for _, c := range []*cobra.Command{addEducationCmd, updateEducationCmd} {
		c.Flags().String("school", "", "School or institution")
		c.Flags().String("degree", "", "Degree")
		c.Flags().String("field", "", "Field of study")
		c.Flags().String("start", "", "Start date")
		c.Flags().String("end", "", "End date")
		c.Flags().String("grade", "", "Grade or GPA")
	}
	addEducationCmd.MarkFlagRequired("school")
	addEducationCmd.MarkFlagRequired("degree")
}
