// Package report renders check results. A result is a flat, ordered list of
// named scalar fields plus a verdict; renderers iterate the fields and never
// look at the concrete result type.
package report

import (
	"fmt"
	"math"
	"strconv"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// Units understood by Field.Display. Values are stored in engine units and
// scaled for display only.
const (
	UnitNewton = "N"
	UnitNmm    = "N-mm"
	UnitMM     = "mm"
	UnitMM2    = "mm²"
	UnitMM3    = "mm³"
	UnitMM4    = "mm⁴"
	UnitMM6    = "mm⁶"
	UnitMPa    = "MPa"
	UnitRatio  = ""
	UnitCount  = "pcs"
	UnitKgPerM = "kg/m"
	UnitFactor = "factor"
)

// Field is one named result value. Text is set for non-numeric values such
// as limit-state labels.
type Field struct {
	Key   string  `json:"key"`
	Label string  `json:"label"`
	Value float64 `json:"value"`
	Unit  string  `json:"unit,omitempty"`
	Text  string  `json:"text,omitempty"`
}

// Num builds a numeric field.
func Num(key, label string, value float64, unit string) Field {
	return Field{Key: key, Label: label, Value: value, Unit: unit}
}

// Text builds a text field.
func Text(key, label, text string) Field {
	return Field{Key: key, Label: label, Text: text}
}

// Display formats the value for a report: forces in kN, moments in kN-m,
// ratios with three decimals.
func (f Field) Display() string {
	if f.Text != "" {
		return f.Text
	}
	switch f.Unit {
	case UnitNewton:
		return fmt.Sprintf("%.2f kN", f.Value/1e3)
	case UnitNmm:
		return fmt.Sprintf("%.2f kN-m", f.Value/1e6)
	case UnitRatio:
		return fmt.Sprintf("%.3f", f.Value)
	case UnitFactor:
		return fmt.Sprintf("%.2f", f.Value)
	case UnitCount:
		return fmt.Sprintf("%.0f", f.Value)
	case UnitMM4, UnitMM6, UnitMM3:
		return fmt.Sprintf("%.4g %s", f.Value, f.Unit)
	default:
		return fmt.Sprintf("%.2f %s", f.Value, f.Unit)
	}
}

// Record is implemented by every check result.
type Record interface {
	Title() string
	Fields() []Field
	Verdict() sni.Status
}

// Input is one row of the input parameter table.
type Input struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// In formats an input row with a unit suffix.
func In(label string, value float64, unit string) Input {
	if unit == "" {
		return Input{Label: label, Value: fmt.Sprintf("%g", value)}
	}
	return Input{Label: label, Value: fmt.Sprintf("%g %s", value, unit)}
}

// Map flattens a record into key → value, the shape consumed by JSON clients
// that iterate field names. Non-finite numbers are rendered as strings
// ("+Inf") since JSON has no representation for them.
func Map(rec Record) map[string]any {
	out := make(map[string]any, len(rec.Fields())+1)
	for _, f := range rec.Fields() {
		switch {
		case f.Text != "":
			out[f.Key] = f.Text
		case math.IsInf(f.Value, 0) || math.IsNaN(f.Value):
			out[f.Key] = strconv.FormatFloat(f.Value, 'g', -1, 64)
		default:
			out[f.Key] = f.Value
		}
	}
	out["status"] = rec.Verdict().String()
	return out
}
