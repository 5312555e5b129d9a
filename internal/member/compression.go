package member

import (
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// CompressionInput describes a column buckling about either principal axis.
type CompressionInput struct {
	Ag float64 // gross area (mm²)
	Rx float64 // radius of gyration, strong axis (mm)
	Ry float64 // radius of gyration, weak axis (mm)
	Kx float64 // effective length factor, strong axis
	Lx float64 // unbraced length, strong axis (mm)
	Ky float64
	Ly float64
	Fy float64 // MPa
	E  float64 // MPa, zero selects sni.Es
}

// CompressionResult holds the flexural buckling strength.
type CompressionResult struct {
	KLrX   float64
	KLrY   float64
	KLr    float64 // governing slenderness
	Limit  float64 // 4.71√(E/Fy)
	Fe     float64 // elastic buckling stress (MPa), +Inf at zero length
	Fcr    float64 // critical stress (MPa)
	Regime BucklingRegime
	Pn     float64 // N
	Phi    float64
	PhiPn  float64 // N
}

// Compression computes the design compressive strength for flexural
// buckling per Section E3.
func Compression(in CompressionInput) (*CompressionResult, error) {
	var v sni.Validator
	v.Positive("Ag", in.Ag)
	v.Positive("rx", in.Rx)
	v.Positive("ry", in.Ry)
	v.NonNegative("Kx", in.Kx)
	v.NonNegative("Lx", in.Lx)
	v.NonNegative("Ky", in.Ky)
	v.NonNegative("Ly", in.Ly)
	v.Positive("Fy", in.Fy)
	v.NonNegative("E", in.E)
	if err := v.Err(); err != nil {
		return nil, err
	}

	e := sni.Modulus(in.E)
	result := &CompressionResult{}

	result.KLrX = in.Kx * in.Lx / in.Rx
	result.KLrY = in.Ky * in.Ly / in.Ry
	result.KLr = math.Max(result.KLrX, result.KLrY)

	result.Fe = sni.EulerStress(e, result.KLr)
	result.Limit = sni.SlendernessLimit(e, in.Fy)

	if result.KLr <= result.Limit {
		// E3-2: Fy/Fe -> 0 as KL/r -> 0, so Fcr -> Fy
		result.Regime = InelasticBuckling
		result.Fcr = math.Pow(0.658, in.Fy/result.Fe) * in.Fy
	} else {
		// E3-3
		result.Regime = ElasticBuckling
		result.Fcr = 0.877 * result.Fe
	}

	result.Pn = result.Fcr * in.Ag
	result.Phi = sni.PhiCompression
	result.PhiPn = result.Phi * result.Pn

	return result, nil
}

func (r *CompressionResult) Title() string { return "Compression Member" }

func (r *CompressionResult) Fields() []report.Field {
	return []report.Field{
		report.Num("KL_r_x", "Slenderness KL/r (x)", r.KLrX, report.UnitRatio),
		report.Num("KL_r_y", "Slenderness KL/r (y)", r.KLrY, report.UnitRatio),
		report.Num("KL_r", "Governing Slenderness", r.KLr, report.UnitRatio),
		report.Num("limit", "Limit 4.71√(E/Fy)", r.Limit, report.UnitRatio),
		report.Num("Fe", "Elastic Buckling Stress (Fe)", r.Fe, report.UnitMPa),
		report.Num("Fcr", "Critical Stress (Fcr)", r.Fcr, report.UnitMPa),
		report.Text("regime", "Buckling Regime", r.Regime.String()),
		report.Num("Pn", "Nominal Strength (Pn)", r.Pn, report.UnitNewton),
		report.Num("phi", "Resistance Factor (φ)", r.Phi, report.UnitFactor),
		report.Num("phi_Pn", "Design Strength (φPn)", r.PhiPn, report.UnitNewton),
	}
}

func (r *CompressionResult) Verdict() sni.Status { return sni.StatusCalculated }
