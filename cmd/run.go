package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/config"
	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/seeder"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// runDomain generates and writes one dataset. A row-limit violation is
// reported as a warning and is not an error.
func runDomain(cmd *cobra.Command, cfg *config.Config, domain *seeder.Domain, outputDir string, start, end time.Time) error {
	s := seeder.NewSeeder(seeder.SeedConfig{
		OutputDir:   outputDir,
		RowsPerFile: cfg.RowsPerFile,
		Seed:        cfg.Seed,
		Start:       start,
		End:         end,
		Progress:    progressWriter(cmd),
	})

	manifest, err := s.Seed(context.Background(), domain)
	if errors.Is(err, seeder.ErrRowLimitExceeded) {
		color.Yellow("⚠️  Please limit the number of rows to a maximum of %s.", humanize.Comma(int64(domain.MaxRows)))
		return nil
	}
	if err != nil {
		return err
	}

	printSummary(manifest)
	color.Green("\n✅ Synthetic data generation complete. Check the '%s' folder for CSV files.", outputDir)
	return nil
}

func printSummary(m *export.Manifest) {
	fmt.Println()
	color.Cyan("📦 Run %s (seed %d)", m.RunID, m.Seed)
	for _, t := range m.Tables {
		var size int64
		for _, f := range t.Files {
			size += f.Bytes
		}
		fmt.Printf("   %-30s %12s rows  %10s  %d file(s)\n",
			t.Name, humanize.Comma(int64(t.Rows)), humanize.Bytes(uint64(size)), len(t.Files))
	}
	fmt.Printf("   %-30s %12s rows  %10s\n", "total",
		humanize.Comma(int64(m.TotalRows())), humanize.Bytes(uint64(m.TotalBytes())))
}
