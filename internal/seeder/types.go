package seeder

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/afero"
)

var ErrRowLimitExceeded = errors.New("row count exceeds limit")

// RowFunc builds the row whose key is id. Fields are sampled in column order.
type RowFunc func(g *DataGenerator, keys *KeyRegistry, id int) (types.Row, error)

type TableInfo struct {
	Name         string
	Key          string
	Columns      []string
	Count        int
	Dependencies []string // tables whose keys this table references
	NewRow       RowFunc
}

// Domain is a set of related tables generated and written together.
type Domain struct {
	Name     string
	MaxRows  int // 0 means unlimited
	Tables   []*TableInfo
	Declared map[string]types.KeyDomain // key ranges known before generation
}

func (d *Domain) Table(name string) *TableInfo {
	for _, t := range d.Tables {
		if t.Name == name {
			return t
		}
	}
	return nil
}

// CheckLimits rejects the domain if any table asks for more rows than MaxRows
// or for a negative number of rows.
func (d *Domain) CheckLimits() error {
	for _, t := range d.Tables {
		if t.Count < 0 {
			return fmt.Errorf("table %s: negative row count %d", t.Name, t.Count)
		}
		if d.MaxRows > 0 && t.Count > d.MaxRows {
			return fmt.Errorf("%w: table %s requests %d rows, maximum is %d",
				ErrRowLimitExceeded, t.Name, t.Count, d.MaxRows)
		}
	}
	return nil
}

type SeedConfig struct {
	OutputDir   string
	RowsPerFile int
	Seed        int64     // 0 picks a random seed
	Start       time.Time // inclusive lower bound for generated dates
	End         time.Time // inclusive upper bound for generated dates
	Fs          afero.Fs  // defaults to the OS filesystem
	Progress    io.Writer // nil disables progress bars
}
