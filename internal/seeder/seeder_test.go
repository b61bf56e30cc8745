package seeder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/export"
	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeed_WritesEveryTableAndManifest(t *testing.T) {
	s, fs := newTestSeeder(t, 21)
	manifest, err := s.Seed(context.Background(), SocialDomain(50))
	require.NoError(t, err)

	assert.Equal(t, "social", manifest.Domain)
	assert.Equal(t, int64(21), manifest.Seed)
	assert.Equal(t, "2020-01-01", manifest.Start)
	assert.Equal(t, "2024-12-31", manifest.End)
	assert.NotEmpty(t, manifest.RunID)
	require.Len(t, manifest.Tables, 7)

	for _, table := range manifest.Tables {
		assert.Equal(t, 50, table.Rows)
		require.Len(t, table.Files, 1)
		assert.Equal(t, filepath.Join("out", table.Name+".csv"), table.Files[0].Path)

		exists, err := afero.Exists(fs, table.Files[0].Path)
		require.NoError(t, err)
		assert.True(t, exists, table.Files[0].Path)
		assert.Positive(t, table.Files[0].Bytes)
	}

	stored, err := export.ReadManifest(fs, "out")
	require.NoError(t, err)
	assert.Equal(t, manifest.RunID, stored.RunID)
	assert.Equal(t, manifest.TotalRows(), stored.TotalRows())
}

func TestSeed_ManifestRecordsGenerationRange(t *testing.T) {
	s := NewSeeder(SeedConfig{
		OutputDir: "out",
		Seed:      23,
		Start:     time.Date(2022, 6, 1, 0, 0, 0, 0, time.UTC),
		End:       time.Date(2022, 6, 30, 23, 59, 59, 0, time.UTC),
		Fs:        afero.NewMemMapFs(),
	})

	manifest, err := s.Seed(context.Background(), SocialDomain(5))
	require.NoError(t, err)
	assert.Equal(t, "2022-06-01", manifest.Start)
	assert.Equal(t, "2022-06-30", manifest.End)
	assert.Equal(t, s.Generator().Start().Format(time.DateOnly), manifest.Start)
}

func TestSeed_RowLimitWritesNothing(t *testing.T) {
	s, fs := newTestSeeder(t, 22)
	manifest, err := s.Seed(context.Background(), SocialDomain(6_000_000))

	assert.ErrorIs(t, err, ErrRowLimitExceeded)
	assert.Nil(t, manifest)

	exists, err := afero.DirExists(fs, "out")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestSeed_ChunksLargeTables(t *testing.T) {
	fs := afero.NewMemMapFs()
	s := NewSeeder(SeedConfig{
		OutputDir:   "web",
		RowsPerFile: 100,
		Seed:        23,
		Start:       testStart,
		End:         testEnd,
		Fs:          fs,
	})

	manifest, err := s.Seed(context.Background(), WebDomain(WebParams{Users: 10, Sessions: 120, Conversions: 5, Transactions: 5}))
	require.NoError(t, err)

	files := make(map[string][]export.FileInfo)
	for _, table := range manifest.Tables {
		files[table.Name] = table.Files
	}

	require.Len(t, files[TablePages], 4)
	assert.Equal(t, filepath.Join("web", "Pages_part_4.csv"), files[TablePages][3].Path)
	assert.Equal(t, 60, files[TablePages][3].Rows)
	require.Len(t, files[TableSessions], 2)
	require.Len(t, files[TableUsers], 1)
	assert.Equal(t, filepath.Join("web", "Users.csv"), files[TableUsers][0].Path)
}

func TestGenerate_SameSeedSameData(t *testing.T) {
	first := generate(t, 99, WebDomain(smallWebParams()))
	second := generate(t, 99, WebDomain(smallWebParams()))

	for name, table := range first {
		assert.Equal(t, table.Rows, second[name].Rows, name)
	}
}

func TestGenerate_DifferentSeedsDiffer(t *testing.T) {
	first := generate(t, 1, SocialDomain(50))
	second := generate(t, 2, SocialDomain(50))

	assert.NotEqual(t, first[TableEngagementMetrics].Rows, second[TableEngagementMetrics].Rows)
}

func TestGenerate_ZeroSeedIsRecorded(t *testing.T) {
	s, _ := newTestSeeder(t, 0)
	assert.NotZero(t, s.Generator().Seed())
}

func TestGenerate_CanceledContext(t *testing.T) {
	s, _ := newTestSeeder(t, 24)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.Generate(ctx, SocialDomain(10))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestGenerate_InvalidDateRange(t *testing.T) {
	s := NewSeeder(SeedConfig{Start: testEnd, End: testStart, Fs: afero.NewMemMapFs()})
	_, err := s.Generate(context.Background(), SocialDomain(1))
	assert.Error(t, err)
}

func TestGenerateTable_RejectsShortRows(t *testing.T) {
	s, _ := newTestSeeder(t, 25)
	info := &TableInfo{
		Name:    "broken",
		Key:     "id",
		Columns: []string{"id", "value"},
		Count:   1,
		NewRow: func(_ *DataGenerator, _ *KeyRegistry, id int) (types.Row, error) {
			return types.Row{id}, nil
		},
	}

	_, err := s.GenerateTable(info)
	assert.Error(t, err)
}
