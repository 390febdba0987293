package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"resumecraft/internal/app"
	"resumecraft/internal/export"
)

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the resume as a PDF",
	Long: `Render the resume preview, rasterize it at print quality and write a
PDF, splitting content taller than one page across as many A4 pages as
it needs. The filename is derived from the resume title.`,
	Example: `  resumecraft export
  resumecraft export --output ~/Documents`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())
		outputDir, _ := cmd.Flags().GetString("output")

		path, err := export.Export(cmd.Context(), application.Store.Current(), export.Options{
			Scale:      application.Config.ExportScale,
			ChromePath: application.Config.ChromePath,
			OutputDir:  outputDir,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting PDF: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("✓ Exported %s\n", path)
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
	exportCmd.Flags().String("output", "", "Directory to write the PDF into (default: current directory)")
}
