package parser

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/ukaji3/trialplot-go/pkg/trialplot/models"
	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves rows to sheet in a new workbook and returns its path.
// Nil values leave the cell unset.
func writeWorkbook(t *testing.T, name, sheet string, rows [][]interface{}) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if sheet != "Sheet1" {
		_, err := f.NewSheet(sheet)
		require.NoError(t, err)
	}
	for r, row := range rows {
		for c, v := range row {
			if v == nil {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue(sheet, cell, v))
		}
	}

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadSheet(t *testing.T) {
	path := writeWorkbook(t, "frequency_1.xlsm", DefaultSheet, [][]interface{}{
		{"time", "slide", "Experimental", "Pressure"},
		{0.0, 0.001, 0.0009, 10},
		{0.5, 0.002, 0.0021, 12.5},
		{1.0, 0.003, 0.0030, 15},
	})

	table, err := LoadSheet(path, DefaultSheet, "0.25Hz")
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, 3, table.Rows())
	assert.Equal(t, "0.25Hz", table.Frequency)
	assert.Equal(t, []string{
		"time", "Unity theoretical", "Laser experimental", "Pressure", "frecuencia", "Force",
	}, table.Names())
	assert.True(t, table.Has(models.FieldTheoretical, models.FieldMeasured, models.FieldForce))

	force, ok := table.Series(models.FieldForce)
	require.True(t, ok)
	area, conv := 0.00079173, 6894.76
	for i, psi := range []float64{10, 12.5, 15} {
		assert.Equal(t, area*conv*psi, force[i], "row %d", i)
	}

	freq, _ := table.Column(models.FieldFrequency)
	for _, c := range freq.Cells {
		assert.Equal(t, "0.25Hz", c.String())
	}
}

func TestLoadSheetMissingSheet(t *testing.T) {
	path := writeWorkbook(t, "frequency_1.xlsm", "Sheet1", [][]interface{}{
		{"time", "slide"},
		{0.0, 1.0},
	})

	table, err := LoadSheet(path, DefaultSheet, "0.25Hz")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestLoadSheetHeaderOnly(t *testing.T) {
	path := writeWorkbook(t, "frequency_2.xlsm", DefaultSheet, [][]interface{}{
		{"time", "slide"},
	})

	table, err := LoadSheet(path, DefaultSheet, "0.125Hz")
	require.NoError(t, err)
	assert.Nil(t, table)
}

func TestLoadSheetUnreadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frequency_1.xlsm")
	require.NoError(t, os.WriteFile(path, []byte("not a zip archive"), 0644))

	table, err := LoadSheet(path, DefaultSheet, "0.25Hz")
	assert.Nil(t, table)
	assert.ErrorIs(t, err, ErrUnreadable)
}

func TestLoadSheetDropsEmptyRows(t *testing.T) {
	path := writeWorkbook(t, "frequency_3.xlsm", DefaultSheet, [][]interface{}{
		{nil, nil},
		{"time", "value", "value"},
		{nil, nil, nil},
		{1, 2, 3},
		{nil, nil, nil},
		{4, 5, 6},
	})

	table, err := LoadSheet(path, DefaultSheet, "0.05Hz")
	require.NoError(t, err)
	require.NotNil(t, table)

	assert.Equal(t, 2, table.Rows())
	assert.Equal(t, []string{"time", "value", "value_1", "frecuencia"}, table.Names())

	col, ok := table.Column("value_1")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 6}, col.Numbers())
}

func TestBuildTableUnnamedHeaders(t *testing.T) {
	rows := [][]string{
		{"time", "", "Pressure", ""},
		{"1", "2", "3", "4", "5"},
	}

	table := BuildTable("x.xlsm", "0.25Hz", rows)
	require.NotNil(t, table)
	assert.Equal(t, []string{"time", "Unnamed", "Pressure", "Unnamed_1", "Unnamed_2"}, table.Names())
}

func TestNormalizeRenamesAndDerives(t *testing.T) {
	table := BuildTable("x.xlsm", "0.05Hz", [][]string{
		{"slide", "Experimental", "Pressure"},
		{"1", "2", "n/a"},
		{"1", "2", "4"},
	})
	require.NotNil(t, table)

	Normalize(table)

	names := table.Names()
	assert.NotContains(t, names, "slide")
	assert.NotContains(t, names, "Experimental")
	assert.Equal(t, []string{"Unity theoretical", "Laser experimental", "Pressure", "frecuencia", "Force"}, names)

	force, _ := table.Column(models.FieldForce)
	assert.Equal(t, models.KindEmpty, force.Cells[0].Kind)
	assert.Equal(t, ForceFromPressure(4), force.Cells[1].Num)
}

func TestNormalizeAliasCollision(t *testing.T) {
	table := BuildTable("x.xlsm", "0.25Hz", [][]string{
		{"slide", "Unity theoretical", "Experimental"},
		{"1", "2", "3"},
	})
	require.NotNil(t, table)

	Normalize(table)

	assert.Equal(t, []string{"Unity theoretical", "Unity theoretical_1", "Laser experimental", "frecuencia"}, table.Names())

	theo, ok := table.Series(models.FieldTheoretical)
	require.True(t, ok)
	assert.Equal(t, []float64{1}, theo)

	kept, ok := table.Series("Unity theoretical_1")
	require.True(t, ok)
	assert.Equal(t, []float64{2}, kept)
}

func TestNormalizeWithoutPressure(t *testing.T) {
	table := BuildTable("x.xlsm", "0.25Hz", [][]string{
		{"time", "slide"},
		{"0", "1"},
	})
	Normalize(table)

	assert.False(t, table.Has(models.FieldForce))
	assert.True(t, table.Has(models.FieldTheoretical))
}

func TestExtractRows(t *testing.T) {
	path := writeWorkbook(t, "test.xlsx", "Sheet1", [][]interface{}{
		{"Header1", "Header2"},
		{100, 200.5},
		{nil, nil},
		{"Text"},
	})

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f.Close()

	rows, err := ExtractRows(f, "Sheet1")
	if err != nil {
		t.Fatalf("ExtractRows failed: %v", err)
	}

	if len(rows) != 3 {
		t.Fatalf("Expected 3 rows, got %d", len(rows))
	}
	if rows[0][0] != "Header1" {
		t.Errorf("Expected 'Header1', got %v", rows[0][0])
	}
	if rows[1][0] != "100" || rows[1][1] != "200.5" {
		t.Errorf("Expected raw numbers, got %v", rows[1])
	}
	if rows[2][0] != "Text" {
		t.Errorf("Expected 'Text', got %v", rows[2][0])
	}
}
