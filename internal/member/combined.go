package member

import (
	"fmt"
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// CombinedInput describes a beam-column under axial compression and biaxial
// bending. K and L apply to both axes and L is also the unbraced length for
// lateral-torsional buckling. Moments may be of either sign; the interaction
// uses their magnitude.
type CombinedInput struct {
	Section profile.Section
	Pu      float64 // required axial strength (N)
	Mux     float64 // required strong-axis moment (N·mm)
	Muy     float64 // required weak-axis moment (N·mm)
	L       float64 // mm
	K       float64
	Cb      float64
	Fy      float64 // MPa
	E       float64 // MPa, zero selects sni.Es
}

// CombinedResult holds the Section H1.1 interaction check.
type CombinedResult struct {
	Compression *CompressionResult
	Flexure     *FlexureResult
	Mny         float64 // weak-axis plastic moment Fy·Zy (N·mm)
	PhiMny      float64 // N·mm
	MuxSense    sni.MomentSense
	MuySense    sni.MomentSense
	Pr          float64 // Pu/φPn
	Mrx         float64 // |Mux|/φMnx
	Mry         float64 // |Muy|/φMny
	Ratio       float64
	Equation    InteractionEquation
	Status      sni.Status
}

// Combined checks a doubly symmetric member for combined flexure and axial
// compression. Weak-axis bending is limited to yielding.
func Combined(in CombinedInput) (*CombinedResult, error) {
	var v sni.Validator
	v.NonNegative("Pu", in.Pu)
	v.Finite("Mux", in.Mux)
	v.Finite("Muy", in.Muy)
	if err := v.Err(); err != nil {
		return nil, err
	}

	s := in.Section
	comp, err := Compression(CompressionInput{
		Ag: s.Ag(), Rx: s.Rx(), Ry: s.Ry(),
		Kx: in.K, Lx: in.L,
		Ky: in.K, Ly: in.L,
		Fy: in.Fy, E: in.E,
	})
	if err != nil {
		return nil, fmt.Errorf("compression: %w", err)
	}

	flex, err := Flexure(FlexureInput{Section: s, Lb: in.L, Cb: in.Cb, Fy: in.Fy, E: in.E})
	if err != nil {
		return nil, fmt.Errorf("flexure: %w", err)
	}

	result := &CombinedResult{
		Compression: comp,
		Flexure:     flex,
		Mny:         in.Fy * s.Zy(),
		MuxSense:    sni.SenseOf(in.Mux),
		MuySense:    sni.SenseOf(in.Muy),
	}
	result.PhiMny = sni.PhiFlexure * result.Mny

	result.Pr = in.Pu / comp.PhiPn
	result.Mrx = math.Abs(in.Mux) / flex.PhiMn
	result.Mry = math.Abs(in.Muy) / result.PhiMny

	if result.Pr >= sni.AxialRatioLimit {
		result.Equation = EquationH1_1a
		result.Ratio = result.Pr + 8.0/9.0*(result.Mrx+result.Mry)
	} else {
		result.Equation = EquationH1_1b
		result.Ratio = result.Pr/2 + (result.Mrx + result.Mry)
	}
	result.Status = sni.StatusFor(result.Ratio, sni.StatusNotSafe)

	return result, nil
}

func (r *CombinedResult) Title() string { return "Beam-Column Interaction" }

func (r *CombinedResult) Fields() []report.Field {
	return []report.Field{
		report.Num("KL_r", "Governing Slenderness", r.Compression.KLr, report.UnitRatio),
		report.Num("phi_Pn", "Axial Capacity (φPn)", r.Compression.PhiPn, report.UnitNewton),
		report.Text("state", "Strong Axis Limit State", r.Flexure.State.String()),
		report.Num("phi_Mnx", "Strong Axis Capacity (φMnx)", r.Flexure.PhiMn, report.UnitNmm),
		report.Num("phi_Mny", "Weak Axis Capacity (φMny)", r.PhiMny, report.UnitNmm),
		report.Text("Mux_sense", "Strong Axis Moment Sense", r.MuxSense.String()),
		report.Text("Muy_sense", "Weak Axis Moment Sense", r.MuySense.String()),
		report.Num("Pr", "Axial Ratio (Pr)", r.Pr, report.UnitRatio),
		report.Num("Mrx", "Strong Axis Ratio (Mrx)", r.Mrx, report.UnitRatio),
		report.Num("Mry", "Weak Axis Ratio (Mry)", r.Mry, report.UnitRatio),
		report.Text("eq", "Equation", r.Equation.String()),
		report.Num("ratio", "Interaction Ratio", r.Ratio, report.UnitRatio),
	}
}

func (r *CombinedResult) Verdict() sni.Status { return r.Status }
