package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/pkg/models"
)

var skillCmd = &cobra.Command{
	Use:   "skill",
	Short: "Manage the skills section",
	Long:  "Add, update, reorder and remove skills on the current resume",
}

var addSkillCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Add a skill",
	Args:  cobra.ExactArgs(1),
	Example: `  resumecraft skill add Go --level Expert
  resumecraft skill add "Public Speaking"`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		level, _ := cmd.Flags().GetString("level")

		skill := models.Skill{
			ID:    uuid.NewString(),
			Name:  args[0],
			Level: parseLevel(level),
		}
		application.Store.AddSkill(skill)
		fmt.Printf("✓ Skill added: %s (%s) (ID: %s)\n", skill.Name, skill.Level, skill.ID)
	},
}

var updateSkillCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a skill",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		skill, ok := findSkill(application, args[0])
		if !ok {
			fmt.Fprintf(os.Stderr, "No skill with ID %s\n", args[0])
			os.Exit(1)
		}

		if cmd.Flags().Changed("name") {
			skill.Name, _ = cmd.Flags().GetString("name")
		}
		if cmd.Flags().Changed("level") {
			level, _ := cmd.Flags().GetString("level")
			skill.Level = parseLevel(level)
		}

		application.Store.UpdateSkill(args[0], skill)
		fmt.Println("✓ Skill updated")
	},
}

var deleteSkillCmd = &cobra.Command{
	Use:   "delete <id>",
	Short: "Remove a skill",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		if _, ok := findSkill(application, args[0]); !ok {
			fmt.Fprintf(os.Stderr, "No skill with ID %s\n", args[0])
			os.Exit(1)
		}
		application.Store.DeleteSkill(args[0])
		fmt.Println("✓ Skill removed")
	},
}

var moveSkillCmd = &cobra.Command{
	Use:   "move <from> <to>",
	Short: "Move a skill to a new position",
	Long:  "Positions are 1-based as shown by 'resumecraft skill list'",
	Args:  cobra.ExactArgs(2),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		from, to := parsePositions(args[0], args[1])
		application.Store.ReorderSkill(from, to)
		fmt.Println("✓ Skills reordered")
	},
}

var listSkillCmd = &cobra.Command{
	Use:   "list",
	Short: "List skills in stored order",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()

		if len(doc.Skills) == 0 {
			fmt.Println("No skills. Add one with 'resumecraft skill add <name>'")
			return
		}

		fmt.Println(titleStyle.Render("Skills"))
		for i, skill := range doc.Skills {
			fmt.Printf("%d. %s (%s)  %s\n", i+1, skill.Name, skill.Level, valueStyle.Render(skill.ID))
		}
	},
}

// parseLevel validates the proficiency level, exiting with the list of
// accepted values on bad input.
func parseLevel(raw string) models.SkillLevel {
	if raw == "" {
		return models.LevelIntermediate
	}
	level := models.SkillLevel(raw)
	if !level.Valid() {
		names := make([]string, 0, len(models.SkillLevels))
		for _, l := range models.SkillLevels {
			names = append(names, string(l))
		}
		fmt.Fprintf(os.Stderr, "Invalid level %q. Must be one of: %s\n", raw, strings.Join(names, ", "))
		os.Exit(1)
	}
	return level
}

func findSkill(application *app.App, id string) (models.Skill, bool) {
	doc := application.Store.Current()
	for _, skill := range doc.Skills {
		if skill.ID == id {
			return skill, true
		}
	}
	return models.Skill{}, false
}

func init() {
	rootCmd.AddCommand(skillCmd)
	skillCmd.AddCommand(addSkillCmd)
	skillCmd.AddCommand(updateSkillCmd)
	skillCmd.AddCommand(deleteSkillCmd)
	skillCmd.AddCommand(moveSkillCmd)
	skillCmd.AddCommand(listSkillCmd)

	addSkillCmd.Flags().String("level", "", "Proficiency level (Beginner, Intermediate, Advanced, Expert)")
	updateSkillCmd.Flags().String("name", "", "Skill name")
	updateSkillCmd.Flags().String("level", "", "Proficiency level (Beginner, Intermediate, Advanced, Expert)")
}
