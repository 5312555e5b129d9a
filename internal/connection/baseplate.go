package connection

import (
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// BasePlateInput describes a concentrically loaded column base plate bearing
// on concrete whose supporting area equals the plate area (A2 = A1).
type BasePlateInput struct {
	Pu      float64 // factored axial load, compression positive (N)
	Fc      float64 // concrete compressive strength f'c (MPa)
	B       float64 // plate width, along the flange (mm)
	N       float64 // plate length, along the depth (mm)
	D       float64 // column depth (mm)
	Bf      float64 // column flange width (mm)
	PlateFy float64 // MPa, zero selects sni.PlateFy
}

// BasePlateResult holds the bearing check and the required plate thickness.
type BasePlateResult struct {
	A1           float64 // plate area (mm²)
	PhiPp        float64 // design bearing strength (N)
	BearingRatio float64
	M            float64 // cantilever along N (mm)
	N            float64 // cantilever along B (mm)
	L            float64 // governing cantilever max(m, n) (mm)
	PlateFy      float64
	TReq         float64 // required thickness (mm)

	// ThicknessFallback is set when Pu is tension and TReq was reported as
	// zero instead of being computed.
	ThicknessFallback bool

	Status sni.Status
}

// BasePlate checks concrete bearing (Section J8) and sizes the plate for
// cantilever bending of the projecting plate.
func BasePlate(in BasePlateInput) (*BasePlateResult, error) {
	var v sni.Validator
	v.Finite("Pu", in.Pu)
	v.Positive("fc", in.Fc)
	v.Positive("B", in.B)
	v.Positive("N", in.N)
	v.Positive("d", in.D)
	v.Positive("bf", in.Bf)
	v.NonNegative("plate Fy", in.PlateFy)
	if err := v.Err(); err != nil {
		return nil, err
	}

	fy := in.PlateFy
	if fy == 0 {
		fy = sni.PlateFy
	}

	result := &BasePlateResult{
		A1:      in.B * in.N,
		M:       (in.N - 0.95*in.D) / 2,
		N:       (in.B - 0.8*in.Bf) / 2,
		PlateFy: fy,
	}
	result.PhiPp = sni.PhiBearing * 0.85 * in.Fc * result.A1
	result.BearingRatio = in.Pu / result.PhiPp
	result.L = math.Max(result.M, result.N)

	if in.Pu < 0 {
		result.ThicknessFallback = true
	} else {
		result.TReq = result.L * math.Sqrt(2*in.Pu/(sni.PhiPlateBending*fy*result.A1))
	}

	result.Status = sni.StatusFor(result.BearingRatio, sni.StatusPlateAreaTooSmall)
	return result, nil
}

func (r *BasePlateResult) Title() string { return "Column Base Plate" }

func (r *BasePlateResult) Fields() []report.Field {
	fields := []report.Field{
		report.Num("A1", "Plate Area (A1)", r.A1, report.UnitMM2),
		report.Num("phi_Pp", "Bearing Capacity (φPp)", r.PhiPp, report.UnitNewton),
		report.Num("bearing_ratio", "Bearing Ratio", r.BearingRatio, report.UnitRatio),
		report.Num("m", "Cantilever (m)", r.M, report.UnitMM),
		report.Num("n", "Cantilever (n)", r.N, report.UnitMM),
		report.Num("t_req", "Required Thickness", r.TReq, report.UnitMM),
	}
	if r.ThicknessFallback {
		fields = append(fields, report.Text("t_req_note", "Thickness Note", "net tension, not sized"))
	}
	return fields
}

func (r *BasePlateResult) Verdict() sni.Status { return r.Status }
