package seeder

import (
	"context"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

var (
	testStart = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	testEnd   = time.Date(2024, 12, 31, 23, 59, 59, 0, time.UTC)
)

func newTestSeeder(t *testing.T, seed int64) (*Seeder, afero.Fs) {
	t.Helper()
	fs := afero.NewMemMapFs()
	return NewSeeder(SeedConfig{
		OutputDir: "out",
		Seed:      seed,
		Start:     testStart,
		End:       testEnd,
		Fs:        fs,
	}), fs
}

func generate(t *testing.T, seed int64, domain *Domain) map[string]*types.Table {
	t.Helper()
	s, _ := newTestSeeder(t, seed)
	tables, err := s.Generate(context.Background(), domain)
	require.NoError(t, err)
	return tables
}

func intValue(t *testing.T, table *types.Table, row int, col string) int {
	t.Helper()
	v, ok := table.Value(row, col).(int)
	require.True(t, ok, "%s.%s row %d is %T, want int", table.Name, col, row, table.Value(row, col))
	return v
}

func floatValue(t *testing.T, table *types.Table, row int, col string) float64 {
	t.Helper()
	v, ok := table.Value(row, col).(float64)
	require.True(t, ok, "%s.%s row %d is %T, want float64", table.Name, col, row, table.Value(row, col))
	return v
}
