package models

import "strings"

// Field is a semantic column of a trial table.
//
// The known fields below carry their canonical column names. Any other
// column (for example the raw "dac_bits" signal) is addressed as an extra
// field by its own name.
type Field string

const (
	// FieldTime is the sample time in seconds.
	FieldTime Field = "time"
	// FieldTheoretical is the commanded displacement.
	FieldTheoretical Field = "Unity theoretical"
	// FieldMeasured is the laser-measured displacement.
	FieldMeasured Field = "Laser experimental"
	// FieldPressure is the raw pressure reading in psi.
	FieldPressure Field = "Pressure"
	// FieldForce is derived from FieldPressure.
	FieldForce Field = "Force"
	// FieldFrequency holds the frequency label of every row.
	FieldFrequency Field = "frecuencia"
	// FieldDACBits is the raw actuator signal, when logged.
	FieldDACBits Field = "dac_bits"
)

// KnownFields lists the closed set of semantic fields.
var KnownFields = []Field{
	FieldTime,
	FieldTheoretical,
	FieldMeasured,
	FieldPressure,
	FieldForce,
	FieldFrequency,
}

// SourceAliases maps worksheet header names to the canonical field they feed.
var SourceAliases = map[string]Field{
	"slide":        FieldTheoretical,
	"Experimental": FieldMeasured,
}

// IsKnown reports whether f belongs to the closed set.
func (f Field) IsKnown() bool {
	for _, k := range KnownFields {
		if k == f {
			return true
		}
	}
	return false
}

// Unit returns the display unit of the field, or "" when it has none.
func (f Field) Unit() string {
	return Units[strings.ToLower(string(f))]
}

// Units maps lower-cased column names to their display unit.
var Units = map[string]string{
	"time":               "s",
	"laser experimental": "m",
	"unity theoretical":  "m",
	"force":              "N",
}

// Label returns the column name followed by its unit, e.g. "time (s)".
func (f Field) Label() string {
	if u := f.Unit(); u != "" {
		return string(f) + " (" + u + ")"
	}
	return string(f)
}
