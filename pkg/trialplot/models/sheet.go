package models

import (
	"fmt"
	"math"
)

// Column is a named sequence of cells.
type Column struct {
	// Name is the column header after normalization.
	Name string
	// Cells holds one value per row.
	Cells []Cell
}

// Numbers returns the column as float64 values with NaN for empty or text cells.
func (c Column) Numbers() []float64 {
	out := make([]float64, len(c.Cells))
	for i, cell := range c.Cells {
		out[i] = cell.Value()
	}
	return out
}

// Table represents one worksheet's worth of rows for a single frequency.
type Table struct {
	// Source is the workbook path the rows were read from.
	Source string
	// Frequency is the frequency label every row carries.
	Frequency string
	// Columns holds the columns in output order.
	Columns []Column
}

// NewTable builds a table from a header and row-major cells.
// Short rows are padded with empty cells.
func NewTable(source, frequency string, header []string, rows [][]Cell) *Table {
	t := &Table{Source: source, Frequency: frequency}
	t.Columns = make([]Column, len(header))
	for j, name := range header {
		cells := make([]Cell, len(rows))
		for i, row := range rows {
			if j < len(row) {
				cells[i] = row[j]
			}
		}
		t.Columns[j] = Column{Name: name, Cells: cells}
	}
	return t
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	if t == nil || len(t.Columns) == 0 {
		return 0
	}
	return len(t.Columns[0].Cells)
}

// Empty reports whether the table has no data rows.
func (t *Table) Empty() bool {
	return t.Rows() == 0
}

// Names returns the column names in order.
func (t *Table) Names() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Column returns the column holding field f.
func (t *Table) Column(f Field) (Column, bool) {
	for _, c := range t.Columns {
		if c.Name == string(f) {
			return c, true
		}
	}
	return Column{}, false
}

// Has reports whether every given field is present.
func (t *Table) Has(fields ...Field) bool {
	for _, f := range fields {
		if _, ok := t.Column(f); !ok {
			return false
		}
	}
	return true
}

// Series returns the numeric values of field f, if present.
func (t *Table) Series(f Field) ([]float64, bool) {
	c, ok := t.Column(f)
	if !ok {
		return nil, false
	}
	return c.Numbers(), true
}

// Extras returns the names of columns outside the known field set.
func (t *Table) Extras() []string {
	var out []string
	for _, c := range t.Columns {
		if !Field(c.Name).IsKnown() {
			out = append(out, c.Name)
		}
	}
	return out
}

// Rename changes the header of the column named from to to.
// It returns false when no such column exists.
func (t *Table) Rename(from string, to Field) bool {
	for i := range t.Columns {
		if t.Columns[i].Name == from {
			t.Columns[i].Name = string(to)
			return true
		}
	}
	return false
}

// SetConstant appends a column repeating v on every row.
func (t *Table) SetConstant(f Field, v Cell) {
	cells := make([]Cell, t.Rows())
	for i := range cells {
		cells[i] = v
	}
	t.set(Column{Name: string(f), Cells: cells})
}

// Derive appends column to computed row by row from column from.
// Non-numeric inputs yield empty outputs.
func (t *Table) Derive(to, from Field, fn func(float64) float64) error {
	src, ok := t.Column(from)
	if !ok {
		return fmt.Errorf("column %q not found", from)
	}
	cells := make([]Cell, len(src.Cells))
	for i, in := range src.Cells {
		if !in.IsNumeric() {
			continue
		}
		v := fn(in.Num)
		if math.IsNaN(v) {
			continue
		}
		cells[i] = Float(v)
	}
	t.set(Column{Name: string(to), Cells: cells})
	return nil
}

// set replaces a column of the same name or appends a new one.
func (t *Table) set(c Column) {
	for i := range t.Columns {
		if t.Columns[i].Name == c.Name {
			t.Columns[i] = c
			return
		}
	}
	t.Columns = append(t.Columns, c)
}
