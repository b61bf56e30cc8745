package export

import (
	"encoding/csv"
	"fmt"
	"math"
	"path/filepath"
	"strconv"
	"time"

	"github.com/Lumos-Labs-HQ/mockdata/internal/types"
	"github.com/spf13/afero"
)

// DefaultRowsPerFile is the largest number of data rows written to one CSV file.
const DefaultRowsPerFile = 1_000_000

type FileInfo struct {
	Path  string `yaml:"path"`
	Rows  int    `yaml:"rows"`
	Bytes int64  `yaml:"bytes"`
}

// Writer persists tables as CSV files under a single directory, splitting
// tables larger than rowsPerFile into numbered parts.
type Writer struct {
	fs          afero.Fs
	dir         string
	rowsPerFile int
}

func NewWriter(fs afero.Fs, dir string, rowsPerFile int) *Writer {
	if rowsPerFile <= 0 {
		rowsPerFile = DefaultRowsPerFile
	}
	return &Writer{fs: fs, dir: dir, rowsPerFile: rowsPerFile}
}

// ChunkFileNames returns the file names a table of the given size is split into:
// "<table>.csv" when it fits in one file, otherwise "<table>_part_<k>.csv".
func ChunkFileNames(table string, rows, rowsPerFile int) []string {
	if rows <= rowsPerFile {
		return []string{fmt.Sprintf("%s.csv", table)}
	}
	parts := (rows + rowsPerFile - 1) / rowsPerFile
	names := make([]string, parts)
	for i := range names {
		names[i] = fmt.Sprintf("%s_part_%d.csv", table, i+1)
	}
	return names
}

// WriteTable writes every row of the table, in order, with a header row in
// each file. A failure part-way leaves whatever was already written.
func (w *Writer) WriteTable(table *types.Table) ([]FileInfo, error) {
	if err := w.fs.MkdirAll(w.dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	names := ChunkFileNames(table.Name, table.Len(), w.rowsPerFile)
	files := make([]FileInfo, 0, len(names))

	for i, name := range names {
		start := i * w.rowsPerFile
		end := start + w.rowsPerFile
		if end > table.Len() {
			end = table.Len()
		}

		path := filepath.Join(w.dir, name)
		if err := w.writeChunk(path, table.Columns, table.Rows[start:end]); err != nil {
			return files, fmt.Errorf("failed to write %s: %w", path, err)
		}

		info := FileInfo{Path: path, Rows: end - start}
		if stat, err := w.fs.Stat(path); err == nil {
			info.Bytes = stat.Size()
		}
		files = append(files, info)
	}

	return files, nil
}

func (w *Writer) writeChunk(path string, header []string, rows []types.Row) (err error) {
	file, err := w.fs.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := file.Close(); err == nil {
			err = cerr
		}
	}()

	writer := csv.NewWriter(file)
	if err := writer.Write(header); err != nil {
		return err
	}

	record := make([]string, len(header))
	for _, row := range rows {
		for i, val := range row {
			record[i] = FormatValue(val)
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

// FormatValue renders a scalar as a CSV field. Null becomes an empty field.
func FormatValue(val interface{}) string {
	switch v := val.(type) {
	case nil:
		return ""
	case string:
		return v
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		s := strconv.FormatFloat(v, 'f', -1, 64)
		// Whole floats keep a fractional part so float columns read as floats.
		if v == math.Trunc(v) && !math.IsInf(v, 0) {
			s += ".0"
		}
		return s
	case bool:
		if v {
			return "True"
		}
		return "False"
	case time.Time:
		return v.Format(time.DateTime)
	case types.Date:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
