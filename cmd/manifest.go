package cmd

import (
	"fmt"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var manifestCmd = &cobra.Command{
	Use:   "manifest <dir>",
	Short: "Summarize a previous run from its manifest",
	Long: `
Read manifest.yaml from an output directory and print the tables, files and
seed of the run that produced it.

Examples:
  mockdata manifest synthetic_data
  mockdata manifest output`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := export.ReadManifest(afero.NewOsFs(), args[0])
		if err != nil {
			return err
		}

		printSummary(m)
		fmt.Println()
		fmt.Printf("   domain: %s  range: %s .. %s  generated: %s\n",
			m.Domain, m.Start, m.End, m.GeneratedAt.Format("2006-01-02 15:04:05"))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(manifestCmd)
}
