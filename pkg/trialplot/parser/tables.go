package parser

import (
	"strconv"

	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
)

// UnnamedHeader replaces missing header cells.
const UnnamedHeader = "Unnamed"

// dropEmptyRows removes rows whose cells are all empty.
func dropEmptyRows(rows [][]string) [][]string {
	var out [][]string
	for _, row := range rows {
		if !isEmptyRow(row) {
			out = append(out, row)
		}
	}
	return out
}

func isEmptyRow(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}

// dataWidth returns the widest row length.
func dataWidth(rows [][]string) int {
	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}

// DedupHeaders builds unique column names from a header row.
//
// Missing names become "Unnamed". The first occurrence of a name is kept as
// is and each repeat gets a running suffix: ["a", "a", "a"] yields
// ["a", "a_1", "a_2"]. A suffixed name that is already taken is suffixed
// again, so ["a", "a", "a_1"] yields ["a", "a_1", "a_1_1"].
func DedupHeaders(header []string, width int) []string {
	if width < len(header) {
		width = len(header)
	}
	counts := make(map[string]int, width)
	names := make([]string, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = header[i]
		}
		if name == "" {
			name = UnnamedHeader
		}
		n := counts[name]
		for n > 0 {
			counts[name] = n + 1
			name = name + "_" + strconv.Itoa(n)
			n = counts[name]
		}
		names[i] = name
		counts[name] = n + 1
	}
	return names
}

// freeName returns the first of base_1, base_2, ... not used by a column of t.
func freeName(t *models.Table, base string) string {
	for n := 1; ; n++ {
		name := base + "_" + strconv.Itoa(n)
		if !t.Has(models.Field(name)) {
			return name
		}
	}
}
