// Package models defines data structures for trial measurements.
package models

import (
	"math"
	"strconv"
)

// CellKind classifies a worksheet value.
type CellKind int

const (
	// KindEmpty marks a missing value.
	KindEmpty CellKind = iota
	// KindInt marks a whole number stored without a decimal part.
	KindInt
	// KindFloat marks a decimal number.
	KindFloat
	// KindText marks any non-numeric value.
	KindText
)

// Cell represents a single worksheet value.
type Cell struct {
	// Kind is the value classification.
	Kind CellKind
	// Num holds the numeric value for KindInt and KindFloat.
	Num float64
	// Text holds the original text for KindText.
	Text string
}

// Empty returns a missing cell.
func Empty() Cell { return Cell{} }

// Float returns a decimal cell.
func Float(v float64) Cell {
	if math.IsNaN(v) {
		return Cell{}
	}
	return Cell{Kind: KindFloat, Num: v}
}

// Int returns a whole number cell.
func Int(v int64) Cell { return Cell{Kind: KindInt, Num: float64(v)} }

// Text returns a text cell.
func Text(s string) Cell { return Cell{Kind: KindText, Text: s} }

// ParseCell classifies a raw worksheet string.
// Returns an int cell for integers, a float cell for finite decimals, an
// empty cell for "" and a text cell otherwise. Words such as "NaN" or "Inf"
// stay text.
func ParseCell(s string) Cell {
	if s == "" {
		return Empty()
	}
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Float(f)
	}
	return Text(s)
}

// IsNumeric reports whether the cell holds a number.
func (c Cell) IsNumeric() bool {
	return c.Kind == KindInt || c.Kind == KindFloat
}

// Value returns the numeric value, or NaN for empty and text cells.
func (c Cell) Value() float64 {
	if c.IsNumeric() {
		return c.Num
	}
	return math.NaN()
}

// String returns the cell as it appears in the worksheet.
func (c Cell) String() string {
	switch c.Kind {
	case KindInt:
		return strconv.FormatFloat(c.Num, 'f', -1, 64)
	case KindFloat:
		return strconv.FormatFloat(c.Num, 'g', -1, 64)
	case KindText:
		return c.Text
	}
	return ""
}
