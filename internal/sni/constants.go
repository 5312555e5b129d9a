// Package sni holds the SNI 1729:2020 (AISC 360-16) constants and the small
// closed-form expressions shared by the member and connection checks.
package sni

import "math"

const (
	// Modulus of elasticity of structural steel (Section B3)
	Es = 200000.0 // MPa

	// Resistance factors, LRFD
	PhiTensionYield   = 0.90 // D2(a) yielding on gross section
	PhiTensionRupture = 0.75 // D2(b) rupture on net section
	PhiCompression    = 0.90 // E1
	PhiFlexure        = 0.90 // F1
	PhiWeld           = 0.75 // J2.4 shear on effective area
	PhiBolt           = 0.75 // J3.6 shear and tension
	PhiBearing        = 0.65 // J8 concrete bearing
	PhiPlateBending   = 0.90 // base plate yielding

	// Base plate steel, A36
	PlateFy = 250.0 // MPa

	// Weld and connection constants
	WeldShearFactor   = 0.60  // Fnw = 0.60 FEXX
	FilletThroatRatio = 0.707 // te = 0.707 a for equal-leg fillets
	BoltFntA325       = 620.0 // MPa, nominal tensile stress (Table J3.2)

	// Section H1.1 axial ratio separating Eq. H1-1a and H1-1b
	AxialRatioLimit = 0.2
)

// Modulus returns e when it is set, the code value otherwise.
func Modulus(e float64) float64 {
	if e > 0 {
		return e
	}
	return Es
}

// SlendernessLimit is the KL/r boundary between inelastic and elastic
// flexural buckling, 4.71√(E/Fy) (Section E3).
func SlendernessLimit(e, fy float64) float64 {
	return 4.71 * math.Sqrt(e/fy)
}

// EulerStress is the elastic buckling stress Fe = π²E/(KL/r)² (Eq. E3-4).
// A zero slenderness yields +Inf.
func EulerStress(e, slenderness float64) float64 {
	return math.Pi * math.Pi * e / (slenderness * slenderness)
}

// LimitingLengthLp is the limiting laterally unbraced length for the
// limit state of yielding, Lp = 1.76 ry √(E/Fy) (Eq. F2-5).
func LimitingLengthLp(ry, e, fy float64) float64 {
	return 1.76 * ry * math.Sqrt(e/fy)
}

// LimitingLengthLr is the limiting unbraced length for inelastic
// lateral-torsional buckling (Eq. F2-6) with c = 1 for doubly symmetric I-shapes.
func LimitingLengthLr(rts, j, sx, h0, e, fy float64) float64 {
	term1 := 1.95 * rts * e / (0.7 * fy)
	term2 := j / (sx * h0)
	term3 := 6.76 * math.Pow(0.7*fy/e, 2)
	return term1 * math.Sqrt(term2+math.Sqrt(term2*term2+term3))
}

// BoltArea is the nominal unthreaded body area of a bolt, πd²/4.
func BoltArea(db float64) float64 {
	return 0.25 * math.Pi * db * db
}
