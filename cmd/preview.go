package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/render"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Render the resume preview to an HTML page",
	Long:  "Write the styled preview of the current resume to the data directory so it can be opened in a browser.",
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		doc := application.Store.Current()

		path, err := render.WritePreview(doc)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error rendering preview: %v\n", err)
			os.Exit(1)
		}

		layout := render.BuildLayout(doc)
		fmt.Println(titleStyle.Render(doc.Title))
		fmt.Printf("%s %s (%s aligned)\n", labelStyle.Render("Template:"), doc.SelectedTemplate, layout.HeadingAlign)
		sections := 0
		for _, present := range []bool{layout.Summary != "", len(layout.Experiences) > 0, len(layout.Education) > 0, len(layout.Skills) > 0} {
			if present {
				sections++
			}
		}
		fmt.Printf("%s %d section(s)\n", labelStyle.Render("Rendered:"), sections)
		fmt.Printf("\n✓ Preview written to %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
