package seeder

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/afero"
)

// progressStep is how many rows are generated between progress bar updates.
const progressStep = 10_000

type Seeder struct {
	config    SeedConfig
	fs        afero.Fs
	generator *DataGenerator
	keys      *KeyRegistry
	writer    *export.Writer
}

func NewSeeder(cfg SeedConfig) *Seeder {
	if cfg.Fs == nil {
		cfg.Fs = afero.NewOsFs()
	}
	if cfg.RowsPerFile <= 0 {
		cfg.RowsPerFile = export.DefaultRowsPerFile
	}
	return &Seeder{
		config:    cfg,
		fs:        cfg.Fs,
		generator: NewDataGenerator(cfg.Seed, cfg.Start, cfg.End),
		keys:      NewKeyRegistry(),
		writer:    export.NewWriter(cfg.Fs, cfg.OutputDir, cfg.RowsPerFile),
	}
}

// Generator exposes the generation context, mainly so callers can report the seed.
func (s *Seeder) Generator() *DataGenerator {
	return s.generator
}

// Seed generates every table of the domain in dependency order and writes
// each one to chunked CSV files as soon as it is complete, followed by a run
// manifest. Nothing is generated or written when the domain's row limit is
// exceeded.
func (s *Seeder) Seed(ctx context.Context, domain *Domain) (*export.Manifest, error) {
	manifest := &export.Manifest{
		RunID:       uuid.NewString(),
		Domain:      domain.Name,
		Seed:        s.generator.Seed(),
		Start:       s.generator.Start().Format(time.DateOnly),
		End:         s.generator.End().Format(time.DateOnly),
		RowsPerFile: s.config.RowsPerFile,
		GeneratedAt: time.Now().UTC(),
	}

	err := s.run(ctx, domain, func(table *types.Table) error {
		files, err := s.writer.WriteTable(table)
		if err != nil {
			return fmt.Errorf("failed to write table %s: %w", table.Name, err)
		}
		manifest.Tables = append(manifest.Tables, export.TableManifest{
			Name:  table.Name,
			Rows:  table.Len(),
			Files: files,
		})
		color.Green("  ✅ %s: %d rows in %d file(s)", table.Name, table.Len(), len(files))
		return nil
	})
	if err != nil {
		return nil, err
	}

	if _, err := export.WriteManifest(s.fs, s.config.OutputDir, manifest); err != nil {
		return nil, err
	}
	return manifest, nil
}

// Generate builds every table of the domain in memory without writing
// anything, keyed by table name.
func (s *Seeder) Generate(ctx context.Context, domain *Domain) (map[string]*types.Table, error) {
	tables := make(map[string]*types.Table, len(domain.Tables))
	err := s.run(ctx, domain, func(table *types.Table) error {
		tables[table.Name] = table
		return nil
	})
	if err != nil {
		return nil, err
	}
	return tables, nil
}

// run generates the domain's tables in dependency order and hands each
// finished table to sink before starting the next one.
func (s *Seeder) run(ctx context.Context, domain *Domain, sink func(*types.Table) error) error {
	if err := domain.CheckLimits(); err != nil {
		return err
	}
	if s.generator.End().Before(s.generator.Start()) {
		return fmt.Errorf("invalid date range: end %s is before start %s",
			s.generator.End().Format(time.DateOnly), s.generator.Start().Format(time.DateOnly))
	}

	color.Cyan("🌱 Generating %s dataset...", domain.Name)

	graph := NewDependencyGraph()
	for _, table := range domain.Tables {
		graph.AddTable(table)
	}
	order, err := graph.BuildGenerationOrder()
	if err != nil {
		return fmt.Errorf("failed to build generation order: %w", err)
	}
	color.Cyan("📋 Generation order: %s", strings.Join(order, " → "))

	for name, d := range domain.Declared {
		s.keys.Register(name, d)
	}

	for _, name := range order {
		if err := ctx.Err(); err != nil {
			return err
		}

		table, err := s.GenerateTable(domain.Table(name))
		if err != nil {
			return fmt.Errorf("failed to generate table %s: %w", name, err)
		}
		s.keys.RegisterTable(table)

		if err := sink(table); err != nil {
			return err
		}
	}
	return nil
}

// GenerateTable builds exactly info.Count rows with keys 1..Count.
func (s *Seeder) GenerateTable(info *TableInfo) (*types.Table, error) {
	table := types.NewTable(info.Name, info.Key, info.Columns, info.Count)
	bar := s.newProgressBar(info)

	for id := 1; id <= info.Count; id++ {
		row, err := info.NewRow(s.generator, s.keys, id)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", id, err)
		}
		if len(row) != len(info.Columns) {
			return nil, fmt.Errorf("row %d has %d values for %d columns", id, len(row), len(info.Columns))
		}
		table.Rows = append(table.Rows, row)

		if bar != nil && id%progressStep == 0 {
			bar.Add(progressStep)
		}
	}

	if bar != nil {
		bar.Finish()
	}
	return table, nil
}

func (s *Seeder) newProgressBar(info *TableInfo) *progressbar.ProgressBar {
	if s.config.Progress == nil || info.Count == 0 {
		return nil
	}
	return progressbar.NewOptions(info.Count,
		progressbar.OptionSetWriter(s.config.Progress),
		progressbar.OptionSetDescription(fmt.Sprintf("  📝 %s", info.Name)),
		progressbar.OptionShowCount(),
		progressbar.OptionThrottle(100*time.Millisecond),
		progressbar.OptionClearOnFinish(),
	)
}
