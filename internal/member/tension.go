// Package member computes design strengths of steel members: tension,
// compression, flexure and combined axial force with bending.
//
// Every function is pure. Inputs are in N and mm, stresses in MPa.
package member

import (
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// TensionInput holds the properties of an axially loaded tension member.
// Ae is supplied by the caller; no shear lag reduction is applied here.
type TensionInput struct {
	Ag float64 // gross area (mm²)
	Ae float64 // effective net area (mm²)
	Fy float64 // yield strength (MPa)
	Fu float64 // ultimate strength (MPa)
}

// LimitStrength is the nominal and factored strength of one limit state.
type LimitStrength struct {
	Pn    float64 // N
	Phi   float64
	PhiPn float64 // N
}

// TensionResult holds both tension limit states and the governing strength.
type TensionResult struct {
	Yield     LimitStrength
	Rupture   LimitStrength
	PhiPn     float64 // design strength (N)
	Governing TensionLimit
}

// Tension computes the design tensile strength per Section D2.
func Tension(in TensionInput) (*TensionResult, error) {
	var v sni.Validator
	v.Positive("Ag", in.Ag)
	v.Positive("Ae", in.Ae)
	v.Positive("Fy", in.Fy)
	v.Positive("Fu", in.Fu)
	if err := v.Err(); err != nil {
		return nil, err
	}

	result := &TensionResult{}

	// D2(a) yielding in the gross section
	result.Yield.Pn = in.Fy * in.Ag
	result.Yield.Phi = sni.PhiTensionYield
	result.Yield.PhiPn = result.Yield.Phi * result.Yield.Pn

	// D2(b) rupture in the net section
	result.Rupture.Pn = in.Fu * in.Ae
	result.Rupture.Phi = sni.PhiTensionRupture
	result.Rupture.PhiPn = result.Rupture.Phi * result.Rupture.Pn

	result.PhiPn = result.Yield.PhiPn
	result.Governing = TensionYielding
	if result.Rupture.PhiPn < result.Yield.PhiPn {
		result.PhiPn = result.Rupture.PhiPn
		result.Governing = TensionRupture
	}

	return result, nil
}

func (r *TensionResult) Title() string { return "Tension Member" }

func (r *TensionResult) Fields() []report.Field {
	return []report.Field{
		report.Num("Pn_yield", "Yield Strength (Pn)", r.Yield.Pn, report.UnitNewton),
		report.Num("phi_Pn_yield", "Yield Capacity (φPn)", r.Yield.PhiPn, report.UnitNewton),
		report.Num("Pn_rupture", "Rupture Strength (Pn)", r.Rupture.Pn, report.UnitNewton),
		report.Num("phi_Pn_rupture", "Rupture Capacity (φPn)", r.Rupture.PhiPn, report.UnitNewton),
		report.Text("governing", "Governing Limit State", r.Governing.String()),
		report.Num("phi_Pn", "Design Strength (φPn)", r.PhiPn, report.UnitNewton),
	}
}

func (r *TensionResult) Verdict() sni.Status { return sni.StatusCalculated }
