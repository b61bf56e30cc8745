package types

import (
	"time"
)

// Date is a calendar date without a time-of-day component.
type Date struct {
	time.Time
}

func NewDate(t time.Time) Date {
	return Date{time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	return d.Format("2006-01-02")
}

// Row holds one record's values in the same order as Table.Columns.
// A nil entry is a null value.
type Row []interface{}

type Table struct {
	Name    string
	Key     string
	Columns []string
	Rows    []Row
}

func NewTable(name, key string, columns []string, capacity int) *Table {
	return &Table{
		Name:    name,
		Key:     key,
		Columns: columns,
		Rows:    make([]Row, 0, capacity),
	}
}

func (t *Table) Len() int {
	return len(t.Rows)
}

// ColumnIndex returns the position of col, or -1 if the table has no such column.
func (t *Table) ColumnIndex(col string) int {
	for i, c := range t.Columns {
		if c == col {
			return i
		}
	}
	return -1
}

// Value returns the value of col in the given row, or nil if the column is unknown.
func (t *Table) Value(row int, col string) interface{} {
	idx := t.ColumnIndex(col)
	if idx < 0 {
		return nil
	}
	return t.Rows[row][idx]
}

// KeyDomain is the inclusive id range [Min, Max] a foreign-key column samples from.
type KeyDomain struct {
	Min int
	Max int
}

func (d KeyDomain) Size() int {
	if d.Max < d.Min {
		return 0
	}
	return d.Max - d.Min + 1
}

func (d KeyDomain) Contains(id int) bool {
	return id >= d.Min && id <= d.Max
}
