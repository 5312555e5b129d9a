package connection

import (
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// BoltInput describes a group of identical bolts in single shear. Fnv is
// taken as given; the caller picks the value for the thread condition.
type BoltInput struct {
	Db  float64 // nominal diameter (mm)
	N   int     // number of bolts
	Fnv float64 // nominal shear stress (MPa)
}

// BoltResult holds the bolt group shear strength (Section J3.6).
type BoltResult struct {
	Ab    float64 // area of one bolt (mm²)
	Rn    float64 // N
	Phi   float64
	PhiRn float64 // N
}

// Bolt computes the design shear strength of a bolt group.
func Bolt(in BoltInput) (*BoltResult, error) {
	var v sni.Validator
	v.Positive("db", in.Db)
	v.Positive("n", float64(in.N))
	v.Positive("Fnv", in.Fnv)
	if err := v.Err(); err != nil {
		return nil, err
	}
	return boltStrength(in.Db, in.N, in.Fnv), nil
}

// boltStrength is shared by shear (Fnv) and tension (Fnt) checks.
func boltStrength(db float64, n int, stress float64) *BoltResult {
	ab := sni.BoltArea(db)
	rn := float64(n) * stress * ab
	return &BoltResult{
		Ab:    ab,
		Rn:    rn,
		Phi:   sni.PhiBolt,
		PhiRn: sni.PhiBolt * rn,
	}
}

func (r *BoltResult) Title() string { return "Bolt Shear" }

func (r *BoltResult) Fields() []report.Field {
	return []report.Field{
		report.Num("Ab", "Bolt Area (Ab)", r.Ab, report.UnitMM2),
		report.Num("Rn", "Nominal Strength (Rn)", r.Rn, report.UnitNewton),
		report.Num("phi", "Resistance Factor (φ)", r.Phi, report.UnitFactor),
		report.Num("phi_Rn", "Design Strength (φRn)", r.PhiRn, report.UnitNewton),
	}
}

func (r *BoltResult) Verdict() sni.Status { return sni.StatusCalculated }
