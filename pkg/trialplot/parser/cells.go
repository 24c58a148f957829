package parser

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
	"github.com/xuri/excelize/v2"
)

// DefaultSheet is the worksheet holding averaged trial data.
const DefaultSheet = "Promedios"

// ErrUnreadable indicates a workbook that could not be opened or read.
var ErrUnreadable = errors.New("unreadable workbook")

// LoadSheet reads sheetName from the workbook at path and normalizes it.
//
// It returns nil without error when the worksheet is absent or holds no data
// row below the header. Open and read failures wrap ErrUnreadable.
func LoadSheet(path, sheetName, frequency string) (*models.Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	defer f.Close()

	if !slices.Contains(f.GetSheetList(), sheetName) {
		return nil, nil
	}

	rows, err := ExtractRows(f, sheetName)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnreadable, path, err)
	}
	t := BuildTable(path, frequency, rows)
	if t == nil {
		return nil, nil
	}
	Normalize(t)
	return t, nil
}

// ExtractRows returns the raw cell strings of a sheet with empty rows removed.
func ExtractRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return dropEmptyRows(rows), nil
}

// BuildTable turns non-empty rows into a table using the first row as header.
// It returns nil when fewer than two rows remain.
func BuildTable(source, frequency string, rows [][]string) *models.Table {
	if len(rows) < 2 {
		return nil
	}
	header := DedupHeaders(rows[0], dataWidth(rows))

	data := make([][]models.Cell, 0, len(rows)-1)
	for _, row := range rows[1:] {
		cells := make([]models.Cell, len(header))
		for colIdx, value := range row {
			cells[colIdx] = models.ParseCell(value)
		}
		data = append(data, cells)
	}
	return models.NewTable(source, frequency, header, data)
}

// Normalize applies the canonical column layout to a freshly read table:
// the frequency label column, the display names of known source columns and
// the force column derived from pressure.
func Normalize(t *models.Table) {
	t.SetConstant(models.FieldFrequency, models.Text(t.Frequency))

	for source, field := range models.SourceAliases {
		if !t.Has(models.Field(source)) {
			continue
		}
		// The aliased column wins; a pre-existing canonical column is kept
		// under the next free suffixed name.
		if t.Has(field) {
			t.Rename(string(field), models.Field(freeName(t, string(field))))
		}
		t.Rename(source, field)
	}

	if t.Has(models.FieldPressure) {
		// Derive only fails when the source column is missing.
		_ = t.Derive(models.FieldForce, models.FieldPressure, ForceFromPressure)
	}
}
