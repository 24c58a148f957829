package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCell(t *testing.T) {
	tests := []struct {
		input string
		kind  CellKind
		num   float64
	}{
		{"123", KindInt, 123},
		{"123.45", KindFloat, 123.45},
		{"-100", KindInt, -100},
		{"1E-3", KindFloat, 0.001},
		{"hello", KindText, 0},
		{"", KindEmpty, 0},
		{"NaN", KindText, 0},
		{"inf", KindText, 0},
		{"-Infinity", KindText, 0},
		{"1e400", KindText, 0},
	}

	for _, tt := range tests {
		c := ParseCell(tt.input)
		if tt.kind == KindText {
			assert.Equal(t, tt.input, c.String(), "ParseCell(%q)", tt.input)
		}
		assert.Equal(t, tt.kind, c.Kind, "ParseCell(%q)", tt.input)
		if c.IsNumeric() {
			assert.Equal(t, tt.num, c.Value(), "ParseCell(%q)", tt.input)
		} else {
			assert.True(t, math.IsNaN(c.Value()), "ParseCell(%q)", tt.input)
		}
	}
}

func TestFieldLabel(t *testing.T) {
	assert.Equal(t, "time (s)", FieldTime.Label())
	assert.Equal(t, "Unity theoretical (m)", FieldTheoretical.Label())
	assert.Equal(t, "Laser experimental (m)", FieldMeasured.Label())
	assert.Equal(t, "Force (N)", FieldForce.Label())
	assert.Equal(t, "dac_bits", FieldDACBits.Label())
	assert.Equal(t, "Pressure", FieldPressure.Label())
	assert.Equal(t, "s", Field("TIME").Unit())
}

func sampleTable(freq string, rows int, names ...string) *Table {
	data := make([][]Cell, rows)
	for i := range data {
		data[i] = make([]Cell, len(names))
		for j := range names {
			data[i][j] = Int(int64(i*10 + j))
		}
	}
	t := NewTable(freq+".xlsm", freq, names, data)
	t.SetConstant(FieldFrequency, Text(freq))
	return t
}

func TestTableAccessors(t *testing.T) {
	table := sampleTable("0.25Hz", 3, "time", "Unity theoretical", "dac_bits")

	assert.Equal(t, 3, table.Rows())
	assert.True(t, table.Has(FieldTime, FieldTheoretical))
	assert.False(t, table.Has(FieldTime, FieldForce))
	assert.Equal(t, []string{"dac_bits"}, table.Extras())

	series, ok := table.Series(FieldTime)
	require.True(t, ok)
	assert.Equal(t, []float64{0, 10, 20}, series)

	_, ok = table.Series(FieldForce)
	assert.False(t, ok)

	assert.True(t, table.Rename("dac_bits", FieldDACBits))
	assert.False(t, table.Rename("missing", FieldForce))
}

func TestTableDerive(t *testing.T) {
	table := NewTable("x", "0.05Hz", []string{"Pressure"}, [][]Cell{
		{Int(2)}, {Text("bad")}, {Empty()}, {Float(0.5)},
	})

	require.NoError(t, table.Derive(FieldForce, FieldPressure, func(v float64) float64 { return v * 2 }))
	force, ok := table.Column(FieldForce)
	require.True(t, ok)
	assert.Equal(t, []CellKind{KindFloat, KindEmpty, KindEmpty, KindFloat}, []CellKind{
		force.Cells[0].Kind, force.Cells[1].Kind, force.Cells[2].Kind, force.Cells[3].Kind,
	})
	assert.Equal(t, 4.0, force.Cells[0].Num)
	assert.Equal(t, 1.0, force.Cells[3].Num)

	assert.Error(t, table.Derive(FieldForce, FieldTime, math.Abs))
}

func TestConsolidatedRowsAndUnion(t *testing.T) {
	c := &Consolidated{Folder: "trial"}
	c.Append(sampleTable("0.25Hz", 3, "time", "Unity theoretical"))
	c.Append(sampleTable("0.05Hz", 2, "time", "Laser experimental"))
	c.Append(NewTable("empty", "0.125Hz", []string{"time"}, nil))

	assert.Equal(t, 2, c.Len())
	assert.Equal(t, 5, c.Rows())
	assert.Equal(t, []string{"time", "Unity theoretical", "frecuencia", "Laser experimental"}, c.Names())
	assert.True(t, c.Has(FieldTheoretical, FieldMeasured))
	assert.False(t, c.Has(FieldForce))

	flat := c.Flatten()
	assert.Equal(t, c.Rows(), flat.Rows())

	theo, _ := flat.Column(FieldTheoretical)
	assert.Equal(t, KindInt, theo.Cells[2].Kind)
	assert.Equal(t, KindEmpty, theo.Cells[3].Kind)
	assert.Equal(t, KindEmpty, theo.Cells[4].Kind)

	freq, _ := flat.Column(FieldFrequency)
	assert.Equal(t, "0.25Hz", freq.Cells[0].String())
	assert.Equal(t, "0.05Hz", freq.Cells[4].String())
}

func TestConsolidatedGroups(t *testing.T) {
	c := &Consolidated{}
	c.Append(sampleTable("0.25Hz", 2, "time", "Force"))
	c.Append(sampleTable("0.05Hz", 1, "time"))
	c.Append(sampleTable("0.125Hz", 1, "time", "Force"))

	groups := c.Groups()
	require.Len(t, groups, 3)
	assert.Equal(t, "0.05Hz", groups[0].Frequency)
	assert.Equal(t, "0.125Hz", groups[1].Frequency)
	assert.Equal(t, "0.25Hz", groups[2].Frequency)

	assert.False(t, groups[0].Has(FieldForce))
	assert.True(t, groups[2].Has(FieldForce))

	force := groups[0].Series(FieldForce)
	require.Len(t, force, 1)
	assert.True(t, math.IsNaN(force[0]))
}
