// Package output writes trial tables as CSV files.
package output

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-gota/gota/dataframe"
	"github.com/go-gota/gota/series"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
)

// ConsolidatedFile is the file name of the per-folder concatenated export.
const ConsolidatedFile = "consolidado_total.csv"

// TableFileName returns the export file name for one frequency table.
func TableFileName(frequency string) string {
	return frequency + "_promedios.csv"
}

// ToDataFrame converts a table into a dataframe of formatted string series.
func ToDataFrame(t *models.Table) dataframe.DataFrame {
	cols := make([]series.Series, len(t.Columns))
	for i, c := range t.Columns {
		cols[i] = series.New(FormatColumn(c), series.String, c.Name)
	}
	return dataframe.New(cols...)
}

// WriteTable writes t as CSV to w, header first.
func WriteTable(w io.Writer, t *models.Table) error {
	df := ToDataFrame(t)
	if df.Err != nil {
		return fmt.Errorf("build dataframe: %w", df.Err)
	}
	return df.WriteCSV(w)
}

// WriteTableFile writes t to path, replacing any existing file.
func WriteTableFile(path string, t *models.Table) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteTable(f, t); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

// WriteConsolidatedFile writes the concatenation of all members of c to path.
func WriteConsolidatedFile(path string, c *models.Consolidated) error {
	return WriteTableFile(path, c.Flatten())
}

// FormatColumn renders every cell of a column.
//
// Columns holding only whole numbers print them as integers. Numeric columns
// with decimals or gaps print every number as a float ("3.0"). Columns mixing
// text and numbers print each cell as read.
func FormatColumn(c models.Column) []string {
	out := make([]string, len(c.Cells))
	switch columnKind(c) {
	case models.KindInt:
		for i, cell := range c.Cells {
			out[i] = strconv.FormatFloat(cell.Num, 'f', -1, 64)
		}
	case models.KindFloat:
		for i, cell := range c.Cells {
			if cell.IsNumeric() {
				out[i] = FormatFloat(cell.Num)
			}
		}
	default:
		for i, cell := range c.Cells {
			switch cell.Kind {
			case models.KindFloat:
				out[i] = FormatFloat(cell.Num)
			default:
				out[i] = cell.String()
			}
		}
	}
	return out
}

// columnKind returns KindInt, KindFloat or KindText for the whole column.
func columnKind(c models.Column) models.CellKind {
	kind := models.KindEmpty
	gaps := false
	for _, cell := range c.Cells {
		switch cell.Kind {
		case models.KindEmpty:
			gaps = true
		case models.KindText:
			return models.KindText
		case models.KindFloat:
			kind = models.KindFloat
		case models.KindInt:
			if kind == models.KindEmpty {
				kind = models.KindInt
			}
		}
	}
	if kind == models.KindInt && gaps {
		return models.KindFloat
	}
	if kind == models.KindEmpty {
		return models.KindText
	}
	return kind
}

// FormatFloat prints v the way Python's repr does: shortest round-trip
// digits, a trailing ".0" for whole values and exponent notation outside
// [1e-4, 1e16).
func FormatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return ""
	case math.IsInf(v, 1):
		return "inf"
	case math.IsInf(v, -1):
		return "-inf"
	}
	abs := math.Abs(v)
	if v != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if v == math.Trunc(v) {
		s += ".0"
	}
	return s
}
