package models

import (
	"math"
	"sort"
)

// Consolidated represents all frequency tables of one trial folder.
type Consolidated struct {
	// Folder is the trial folder name.
	Folder string
	// Tables holds the member tables in discovery order.
	Tables []*Table
}

// Append adds a non-empty table.
func (c *Consolidated) Append(t *Table) {
	if t.Empty() {
		return
	}
	c.Tables = append(c.Tables, t)
}

// Len returns the number of member tables.
func (c *Consolidated) Len() int { return len(c.Tables) }

// Rows returns the total row count across members.
func (c *Consolidated) Rows() int {
	n := 0
	for _, t := range c.Tables {
		n += t.Rows()
	}
	return n
}

// Names returns the union of member columns in order of first appearance.
func (c *Consolidated) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, t := range c.Tables {
		for _, col := range t.Columns {
			if !seen[col.Name] {
				seen[col.Name] = true
				names = append(names, col.Name)
			}
		}
	}
	return names
}

// Has reports whether every field appears in at least one member.
func (c *Consolidated) Has(fields ...Field) bool {
	for _, f := range fields {
		found := false
		for _, t := range c.Tables {
			if t.Has(f) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}

// Flatten returns the concatenated table. Columns missing from a member are
// filled with empty cells for that member's rows.
func (c *Consolidated) Flatten() *Table {
	names := c.Names()
	out := &Table{Columns: make([]Column, len(names))}
	for j, name := range names {
		cells := make([]Cell, 0, c.Rows())
		for _, t := range c.Tables {
			if col, ok := t.Column(Field(name)); ok {
				cells = append(cells, col.Cells...)
			} else {
				cells = append(cells, make([]Cell, t.Rows())...)
			}
		}
		out.Columns[j] = Column{Name: name, Cells: cells}
	}
	return out
}

// Group is the set of rows sharing one frequency label.
type Group struct {
	// Frequency is the shared label.
	Frequency string
	// Tables holds the members contributing rows to the group.
	Tables []*Table
}

// Has reports whether every member of the group carries all fields.
func (g Group) Has(fields ...Field) bool {
	if len(g.Tables) == 0 {
		return false
	}
	for _, t := range g.Tables {
		if !t.Has(fields...) {
			return false
		}
	}
	return true
}

// Series returns the values of f across the group, NaN where a member lacks it.
func (g Group) Series(f Field) []float64 {
	var out []float64
	for _, t := range g.Tables {
		if s, ok := t.Series(f); ok {
			out = append(out, s...)
			continue
		}
		for i := 0; i < t.Rows(); i++ {
			out = append(out, math.NaN())
		}
	}
	return out
}

// Groups returns the rows grouped by frequency label, sorted by label.
func (c *Consolidated) Groups() []Group {
	index := make(map[string]int)
	var groups []Group
	for _, t := range c.Tables {
		i, ok := index[t.Frequency]
		if !ok {
			i = len(groups)
			index[t.Frequency] = i
			groups = append(groups, Group{Frequency: t.Frequency})
		}
		groups[i].Tables = append(groups[i].Tables, t)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Frequency < groups[j].Frequency
	})
	return groups
}
