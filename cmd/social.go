package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/Lumos-Labs-HQ/mockdata/internal/seeder"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const rowsPrompt = "Enter the number of rows to generate (max 5 million): "

var socialCmd = &cobra.Command{
	Use:   "social",
	Short: "Generate the social-media analytics dataset",
	Long: `
Generate engagement metrics, audience demographics, paid ad and campaign
metrics, post level data, followers and content details. Every table gets the
same number of rows, at most 5,000,000. Without --rows the count is read from
standard input.

Examples:
  mockdata social
  mockdata social --rows 250000 --out data/social
  echo 1000 | mockdata social --seed 7`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		rows := cfg.Social.Rows
		if !viper.IsSet("social.rows") {
			rows, err = readRowCount(cmd.InOrStdin(), cmd.OutOrStdout())
			if err != nil {
				return err
			}
		}

		start, end, err := cfg.Social.Range()
		if err != nil {
			return err
		}

		return runDomain(cmd, cfg, seeder.SocialDomain(rows), cfg.Social.OutputDir, start, end)
	},
}

// readRowCount prompts for and parses a single integer line.
func readRowCount(in io.Reader, out io.Writer) (int, error) {
	fmt.Fprint(out, rowsPrompt)

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, fmt.Errorf("failed to read row count: %w", err)
	}

	rows, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return 0, fmt.Errorf("invalid row count %q: %w", strings.TrimSpace(line), err)
	}
	if rows < 0 {
		return 0, fmt.Errorf("invalid row count %d: must not be negative", rows)
	}
	return rows, nil
}

func init() {
	rootCmd.AddCommand(socialCmd)

	socialCmd.Flags().Int("rows", 0, "rows per table (prompted when omitted)")
	socialCmd.Flags().String("out", "output", "output directory")
	socialCmd.Flags().String("start", "2020-01-01", "first date of generated dates (YYYY-MM-DD)")
	socialCmd.Flags().String("end", "2024-12-31", "last date of generated dates (YYYY-MM-DD)")

	viper.BindPFlag("social.rows", socialCmd.Flags().Lookup("rows"))
	viper.BindPFlag("social.output_dir", socialCmd.Flags().Lookup("out"))
	viper.BindPFlag("social.start", socialCmd.Flags().Lookup("start"))
	viper.BindPFlag("social.end", socialCmd.Flags().Lookup("end"))
}
