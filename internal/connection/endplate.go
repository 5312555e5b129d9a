package connection

import (
	"fmt"
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// Plate check outcomes of EndPlate.
const (
	PlateOK      = "OK"
	PlateTooThin = "Plate too thin (Ref < d_bolt)"
)

// EndPlateInput describes a flush end plate with one row group of tension bolts.
type EndPlateInput struct {
	Mu      float64 // factored moment (N·mm), either sign
	Db      float64 // bolt diameter (mm)
	Bolts   int     // number of tension bolts
	Tp      float64 // plate thickness (mm)
	Section profile.Section
	Fnt     float64 // bolt nominal tensile stress (MPa), zero selects A325
	PlateFy float64 // MPa, zero selects sni.PlateFy
}

// EndPlateResult holds the bolt tension check and the plate thickness rule.
type EndPlateResult struct {
	Sense     sni.MomentSense
	Arm       float64 // lever arm d - tf (mm)
	TuTotal   float64 // N
	TuBolt    float64 // N
	Fnt       float64
	PlateFy   float64
	PhiRnBolt float64 // N
	BoltRatio float64

	// PlateAdequate is the rule of thumb tp >= db; no yield-line analysis.
	PlateAdequate bool
	PlateCheck    string

	Status sni.Status
}

// EndPlate checks the tension bolts of a flush moment end plate, taking the
// flange force couple over the lever arm d - tf and sharing it equally.
func EndPlate(in EndPlateInput) (*EndPlateResult, error) {
	if err := in.Section.Dimensions().Validate(); err != nil {
		return nil, fmt.Errorf("section: %w", err)
	}
	var v sni.Validator
	v.Finite("Mu", in.Mu)
	v.Positive("db", in.Db)
	v.Positive("bolts", float64(in.Bolts))
	v.Positive("tp", in.Tp)
	v.NonNegative("Fnt", in.Fnt)
	v.NonNegative("plate Fy", in.PlateFy)
	if err := v.Err(); err != nil {
		return nil, err
	}

	result := &EndPlateResult{
		Sense:   sni.SenseOf(in.Mu),
		Arm:     in.Section.D() - in.Section.Tf(),
		Fnt:     in.Fnt,
		PlateFy: in.PlateFy,
	}
	if result.Fnt == 0 {
		result.Fnt = sni.BoltFntA325
	}
	if result.PlateFy == 0 {
		result.PlateFy = sni.PlateFy
	}

	// A negative moment puts the opposite flange in tension; the bolt
	// group is the same.
	result.TuTotal = math.Abs(in.Mu) / result.Arm
	result.TuBolt = result.TuTotal / float64(in.Bolts)
	result.PhiRnBolt = boltStrength(in.Db, 1, result.Fnt).PhiRn
	result.BoltRatio = result.TuBolt / result.PhiRnBolt

	result.PlateAdequate = in.Tp >= in.Db
	result.PlateCheck = PlateOK
	if !result.PlateAdequate {
		result.PlateCheck = PlateTooThin
	}

	result.Status = sni.StatusOK
	if result.BoltRatio > 1.0 || !result.PlateAdequate {
		result.Status = sni.StatusNotSafe
	}

	return result, nil
}

func (r *EndPlateResult) Title() string { return "Moment End Plate" }

func (r *EndPlateResult) Fields() []report.Field {
	return []report.Field{
		report.Text("Mu_sense", "Moment Sense", r.Sense.String()),
		report.Num("arm", "Lever Arm (d - tf)", r.Arm, report.UnitMM),
		report.Num("Tu_total", "Total Tension (Tu)", r.TuTotal, report.UnitNewton),
		report.Num("Tu_bolt", "Tension per Bolt", r.TuBolt, report.UnitNewton),
		report.Num("phi_Rn_bolt", "Bolt Capacity (φRn)", r.PhiRnBolt, report.UnitNewton),
		report.Num("bolt_ratio", "Bolt Ratio", r.BoltRatio, report.UnitRatio),
		report.Text("plate_check", "Plate Check", r.PlateCheck),
	}
}

func (r *EndPlateResult) Verdict() sni.Status { return r.Status }
