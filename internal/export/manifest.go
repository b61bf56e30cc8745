package export

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"
)

const ManifestFile = "manifest.yaml"

// Manifest records what a generation run produced and how to reproduce it.
type Manifest struct {
	RunID       string          `yaml:"run_id"`
	Domain      string          `yaml:"domain"`
	Seed        int64           `yaml:"seed"`
	Start       string          `yaml:"start"`
	End         string          `yaml:"end"`
	RowsPerFile int             `yaml:"rows_per_file"`
	GeneratedAt time.Time       `yaml:"generated_at"`
	Tables      []TableManifest `yaml:"tables"`
}

type TableManifest struct {
	Name  string     `yaml:"name"`
	Rows  int        `yaml:"rows"`
	Files []FileInfo `yaml:"files"`
}

func (m *Manifest) TotalRows() int {
	total := 0
	for _, t := range m.Tables {
		total += t.Rows
	}
	return total
}

func (m *Manifest) TotalBytes() int64 {
	var total int64
	for _, t := range m.Tables {
		for _, f := range t.Files {
			total += f.Bytes
		}
	}
	return total
}

func WriteManifest(fs afero.Fs, dir string, m *Manifest) (string, error) {
	if err := fs.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}

	data, err := yaml.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal manifest: %w", err)
	}

	path := filepath.Join(dir, ManifestFile)
	if err := afero.WriteFile(fs, path, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write manifest: %w", err)
	}
	return path, nil
}

func ReadManifest(fs afero.Fs, dir string) (*Manifest, error) {
	data, err := afero.ReadFile(fs, filepath.Join(dir, ManifestFile))
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}

	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	return &m, nil
}
