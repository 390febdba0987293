package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/template"
)

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Manage the resume template and style",
	Long:  "Pick one of the built-in templates and fine-tune its colors per document",
}

var listTemplateCmd = &cobra.Command{
	Use:   "list",
	Short: "List available templates",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		selected := application.Store.Current().SelectedTemplate

		fmt.Println(titleStyle.Render("Templates"))
		for _, name := range template.Names() {
			marker := " "
			if name == selected {
				marker = "*"
			}
			style := template.Lookup(name)
			fmt.Printf("%s %-10s %s align, accent %s\n", marker, name, style.HeadingAlign, style.AccentColor)
		}
	},
}

var setTemplateCmd = &cobra.Command{
	Use:   "set <name>",
	Short: "Select a template for the current resume",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		name := args[0]
		if !template.Exists(name) {
			fmt.Fprintf(os.Stderr, "Unknown template %q. Must be one of: %s\n", name, strings.Join(template.Names(), ", "))
			os.Exit(1)
		}
		application.Store.SetSelectedTemplate(name)
		fmt.Printf("✓ Template set to %s\n", name)
	},
}

var styleTemplateCmd = &cobra.Command{
	Use:   "style",
	Short: "Override template colors for this resume",
	Example: `  resumecraft template style --accent "#ff0000"
  resumecraft template style --header-bg "#123456" --header-color white
  resumecraft template style --reset`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		if reset, _ := cmd.Flags().GetBool("reset"); reset {
			application.Store.ResetStyleOverrides()
			fmt.Println("✓ Style overrides cleared")
			return
		}

		overrides := map[string]string{}
		if v, _ := cmd.Flags().GetString("header-bg"); v != "" {
			overrides["headerBg"] = v
		}
		if v, _ := cmd.Flags().GetString("header-color"); v != "" {
			overrides["headerColor"] = v
		}
		if v, _ := cmd.Flags().GetString("accent"); v != "" {
			overrides["accentColor"] = v
		}
		if v, _ := cmd.Flags().GetString("section-title-color"); v != "" {
			overrides["sectionTitleColor"] = v
		}

		if len(overrides) == 0 {
			fmt.Println("No overrides given. Use flags like --accent, --header-bg, or --reset.")
			return
		}

		application.Store.SetStyleOverrides(overrides)
		fmt.Println("✓ Style overrides applied")
	},
}

func init() {
	rootCmd.AddCommand(templateCmd)
	templateCmd.AddCommand(listTemplateCmd)
	templateCmd.AddCommand(setTemplateCmd)
	templateCmd.AddCommand(styleTemplateCmd)

	styleTemplateCmd.Flags().String("header-bg", "", "Header background")
	styleTemplateCmd.Flags().String("header-color", "", "Header text color")
	styleTemplateCmd.Flags().String("accent", "", "Accent color")
	styleTemplateCmd.Flags().String("section-title-color", "", "Section title color")
	styleTemplateCmd.Flags().Bool("reset", false, "Clear all style overrides")
}
