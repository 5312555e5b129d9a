// Package connection computes design strengths of welds, bolts, column base
// plates and flush moment end plates.
package connection

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// ErrUnknownWeldCategory is returned for a weld type other than fillet or groove.
var ErrUnknownWeldCategory = errors.New("unknown weld category")

// WeldCategory selects how the effective throat is obtained from the weld size.
type WeldCategory int

const (
	Fillet WeldCategory = iota + 1
	Groove
)

func (c WeldCategory) String() string {
	switch c {
	case Fillet:
		return "Fillet"
	case Groove:
		return "Groove"
	}
	return "unknown"
}

// ParseWeldCategory accepts "fillet" or "groove" in any case.
func ParseWeldCategory(s string) (WeldCategory, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fillet":
		return Fillet, nil
	case "groove":
		return Groove, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownWeldCategory, s)
}

// WeldInput describes a weld loaded in shear along its length.
type WeldInput struct {
	Category WeldCategory
	Fexx     float64 // electrode classification strength (MPa)
	Size     float64 // leg size for fillet, effective throat for groove (mm)
	Length   float64 // mm
}

// WeldResult holds the weld shear strength (Section J2.4).
type WeldResult struct {
	Category WeldCategory
	Te       float64 // effective throat (mm)
	Awe      float64 // effective area (mm²)
	Fnw      float64 // nominal stress (MPa)
	Rn       float64 // N
	Phi      float64
	PhiRn    float64 // N
}

// Weld computes the design shear strength of a weld. Groove welds are
// checked in shear too, with the same resistance factor.
func Weld(in WeldInput) (*WeldResult, error) {
	var te float64
	switch in.Category {
	case Fillet:
		te = sni.FilletThroatRatio * in.Size
	case Groove:
		te = in.Size
	default:
		return nil, fmt.Errorf("%w: %d", ErrUnknownWeldCategory, in.Category)
	}

	var v sni.Validator
	v.Positive("Fexx", in.Fexx)
	v.Positive("size", in.Size)
	v.Positive("length", in.Length)
	if err := v.Err(); err != nil {
		return nil, err
	}

	result := &WeldResult{
		Category: in.Category,
		Te:       te,
		Awe:      te * in.Length,
		Fnw:      sni.WeldShearFactor * in.Fexx,
		Phi:      sni.PhiWeld,
	}
	result.Rn = result.Fnw * result.Awe
	result.PhiRn = result.Phi * result.Rn

	return result, nil
}

func (r *WeldResult) Title() string { return r.Category.String() + " Weld" }

func (r *WeldResult) Fields() []report.Field {
	return []report.Field{
		report.Num("te", "Effective Throat (te)", r.Te, report.UnitMM),
		report.Num("Awe", "Effective Area (Awe)", r.Awe, report.UnitMM2),
		report.Num("Fnw", "Nominal Stress (Fnw)", r.Fnw, report.UnitMPa),
		report.Num("Rn", "Nominal Strength (Rn)", r.Rn, report.UnitNewton),
		report.Num("phi", "Resistance Factor (φ)", r.Phi, report.UnitFactor),
		report.Num("phi_Rn", "Design Strength (φRn)", r.PhiRn, report.UnitNewton),
	}
}

func (r *WeldResult) Verdict() sni.Status { return sni.StatusCalculated }
