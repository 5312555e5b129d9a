package member

import (
	"fmt"
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// FlexureInput describes a doubly symmetric I-shape bent about its major axis.
type FlexureInput struct {
	Section profile.Section
	Lb      float64 // laterally unbraced length (mm)
	Cb      float64 // lateral-torsional buckling modification factor
	Fy      float64 // MPa
	E       float64 // MPa, zero selects sni.Es
}

// FlexureResult holds the major-axis flexural strength (Section F2).
type FlexureResult struct {
	State  FlexureState
	Lb     float64 // mm
	Cb     float64
	Lp     float64 // mm
	Lr     float64 // mm
	Mp     float64 // plastic moment Fy·Zx (N·mm)
	Fcr    float64 // elastic LTB stress (MPa), zero outside ElasticLTB
	Mn     float64 // N·mm, never above Mp
	Capped bool    // Mn was limited to Mp
	Phi    float64
	PhiMn  float64 // N·mm
}

// Flexure computes the design flexural strength of a compact I-shape for
// the limit states of yielding and lateral-torsional buckling.
func Flexure(in FlexureInput) (*FlexureResult, error) {
	if err := in.Section.Dimensions().Validate(); err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	var v sni.Validator
	v.NonNegative("Lb", in.Lb)
	v.Positive("Cb", in.Cb)
	v.Positive("Fy", in.Fy)
	v.NonNegative("E", in.E)
	if err := v.Err(); err != nil {
		return nil, err
	}

	s := in.Section
	e := sni.Modulus(in.E)

	result := &FlexureResult{
		Lb:  in.Lb,
		Cb:  in.Cb,
		Mp:  in.Fy * s.Zx(),
		Lp:  sni.LimitingLengthLp(s.Ry(), e, in.Fy),
		Lr:  sni.LimitingLengthLr(s.Rts(), s.J(), s.Sx(), s.H0(), e, in.Fy),
		Phi: sni.PhiFlexure,
	}

	switch {
	case in.Lb <= result.Lp:
		result.State = Yielding
		result.Mn = result.Mp

	case in.Lb <= result.Lr:
		// F2-2, linear between Mp at Lp and 0.7FySx at Lr
		result.State = InelasticLTB
		mr := 0.7 * in.Fy * s.Sx()
		result.Mn = in.Cb * (result.Mp - (result.Mp-mr)*(in.Lb-result.Lp)/(result.Lr-result.Lp))

	default:
		// F2-3, F2-4
		result.State = ElasticLTB
		lbRts := in.Lb / s.Rts()
		jc := s.J() / (s.Sx() * s.H0())
		result.Fcr = in.Cb * math.Pi * math.Pi * e / (lbRts * lbRts) * math.Sqrt(1+0.078*jc*lbRts*lbRts)
		result.Mn = result.Fcr * s.Sx()
	}

	if result.Mn > result.Mp {
		result.Mn = result.Mp
		result.Capped = true
	}
	result.PhiMn = result.Phi * result.Mn

	return result, nil
}

func (r *FlexureResult) Title() string { return "Flexural Member" }

func (r *FlexureResult) Fields() []report.Field {
	fields := []report.Field{
		report.Num("Lb", "Unbraced Length (Lb)", r.Lb, report.UnitMM),
		report.Num("Cb", "Modification Factor (Cb)", r.Cb, report.UnitFactor),
		report.Num("Lp", "Limiting Length (Lp)", r.Lp, report.UnitMM),
		report.Num("Lr", "Limiting Length (Lr)", r.Lr, report.UnitMM),
		report.Text("state", "Limit State", fmt.Sprintf("%s (%s)", r.State, r.State.Condition())),
		report.Num("Mp", "Plastic Moment (Mp)", r.Mp, report.UnitNmm),
	}
	if r.State == ElasticLTB {
		fields = append(fields, report.Num("Fcr", "Critical Stress (Fcr)", r.Fcr, report.UnitMPa))
	}
	fields = append(fields,
		report.Num("Mn", "Nominal Moment (Mn)", r.Mn, report.UnitNmm),
		report.Num("phi", "Resistance Factor (φ)", r.Phi, report.UnitFactor),
		report.Num("phi_Mn", "Design Moment (φMn)", r.PhiMn, report.UnitNmm),
	)
	return fields
}

func (r *FlexureResult) Verdict() sni.Status { return sni.StatusCalculated }

// CurvePoint is one sample of the design moment against unbraced length.
type CurvePoint struct {
	Lb    float64 // mm
	PhiMn float64 // N·mm
	State FlexureState
}

// CapacityCurve samples φMn at steps+1 evenly spaced unbraced lengths from
// zero to maxLb. in.Lb is ignored.
func CapacityCurve(in FlexureInput, maxLb float64, steps int) ([]CurvePoint, error) {
	var v sni.Validator
	v.Positive("max Lb", maxLb)
	v.Positive("steps", float64(steps))
	if err := v.Err(); err != nil {
		return nil, err
	}

	points := make([]CurvePoint, 0, steps+1)
	for i := 0; i <= steps; i++ {
		in.Lb = maxLb * float64(i) / float64(steps)
		r, err := Flexure(in)
		if err != nil {
			return nil, err
		}
		points = append(points, CurvePoint{Lb: in.Lb, PhiMn: r.PhiMn, State: r.State})
	}
	return points, nil
}
