package check

import (
	"fmt"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/connection"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/member"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
)

// Evaluation is a computed record together with the inputs it used, after
// defaults were applied.
type Evaluation struct {
	Inputs []report.Input
	Record report.Record
}

// Evaluator resolves profiles and defaults for checks. It holds no mutable
// state and may be shared between goroutines.
type Evaluator struct {
	Catalog  *profile.Catalog
	Defaults Defaults
}

// NewEvaluator returns an Evaluator over cat.
func NewEvaluator(cat *profile.Catalog, d Defaults) *Evaluator {
	return &Evaluator{Catalog: cat, Defaults: d}
}

// Evaluate runs a single check.
func (e *Evaluator) Evaluate(c Check) (*Evaluation, error) {
	switch c.Kind {
	case KindTension:
		return e.tension(c)
	case KindCompression:
		return e.compression(c)
	case KindFlexure:
		return e.flexure(c)
	case KindCombined:
		return e.combined(c)
	case KindWeld:
		return e.weld(c)
	case KindBolt:
		return e.bolt(c)
	case KindBasePlate:
		return e.basePlate(c)
	case KindEndPlate:
		return e.endPlate(c)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
}

func (e *Evaluator) section(c Check) (profile.Section, error) {
	if c.Profile == "" {
		return profile.Section{}, fmt.Errorf("%s: %w", c.Kind, ErrProfileRequired)
	}
	return e.Catalog.Get(c.Profile)
}

func (e *Evaluator) tension(c Check) (*Evaluation, error) {
	ag := c.Ag
	var inputs []report.Input
	if c.Profile != "" {
		s, err := e.section(c)
		if err != nil {
			return nil, err
		}
		inputs = append(inputs, report.Input{Label: "Profile", Value: s.Name()})
		ag = or(ag, s.Ag())
	}

	in := member.TensionInput{
		Ag: ag,
		Ae: or(c.Ae, ag),
		Fy: or(c.Fy, e.Defaults.Fy),
		Fu: or(c.Fu, e.Defaults.Fu),
	}
	res, err := member.Tension(in)
	if err != nil {
		return nil, err
	}

	inputs = append(inputs,
		report.In("Gross Area (Ag)", in.Ag, report.UnitMM2),
		report.In("Net Area (Ae)", in.Ae, report.UnitMM2),
		report.In("Yield Strength (Fy)", in.Fy, report.UnitMPa),
		report.In("Ultimate Strength (Fu)", in.Fu, report.UnitMPa),
	)
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) compression(c Check) (*Evaluation, error) {
	s, err := e.section(c)
	if err != nil {
		return nil, err
	}

	k := or(c.K, 1)
	in := member.CompressionInput{
		Ag: s.Ag(), Rx: s.Rx(), Ry: s.Ry(),
		Kx: or(c.Kx, k), Lx: or(c.Lx, c.L),
		Ky: or(c.Ky, k), Ly: or(c.Ly, c.L),
		Fy: or(c.Fy, e.Defaults.Fy),
		E:  e.Defaults.Modulus,
	}
	res, err := member.Compression(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Profile", Value: s.Name()},
		report.In("Kx · Lx", in.Kx*in.Lx, report.UnitMM),
		report.In("Ky · Ly", in.Ky*in.Ly, report.UnitMM),
		report.In("Yield Strength (Fy)", in.Fy, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) flexure(c Check) (*Evaluation, error) {
	in, err := e.FlexureInput(c)
	if err != nil {
		return nil, err
	}
	res, err := member.Flexure(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Profile", Value: in.Section.Name()},
		report.In("Unbraced Length (Lb)", in.Lb, report.UnitMM),
		report.In("Cb", in.Cb, ""),
		report.In("Yield Strength (Fy)", in.Fy, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

// FlexureInput resolves the flexure engine input for c, so callers can
// sample the capacity curve of the same member.
func (e *Evaluator) FlexureInput(c Check) (member.FlexureInput, error) {
	s, err := e.section(c)
	if err != nil {
		return member.FlexureInput{}, err
	}
	return member.FlexureInput{
		Section: s,
		Lb:      or(c.Lb, c.L),
		Cb:      or(c.Cb, 1),
		Fy:      or(c.Fy, e.Defaults.Fy),
		E:       e.Defaults.Modulus,
	}, nil
}

func (e *Evaluator) combined(c Check) (*Evaluation, error) {
	s, err := e.section(c)
	if err != nil {
		return nil, err
	}

	in := member.CombinedInput{
		Section: s,
		Pu:      c.Pu * 1e3,
		Mux:     c.Mux * 1e6,
		Muy:     c.Muy * 1e6,
		L:       c.L,
		K:       or(c.K, 1),
		Cb:      or(c.Cb, 1),
		Fy:      or(c.Fy, e.Defaults.Fy),
		E:       e.Defaults.Modulus,
	}
	res, err := member.Combined(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Profile", Value: s.Name()},
		report.In("Axial Load (Pu)", c.Pu, "kN"),
		report.In("Moment X (Mux)", c.Mux, "kN-m"),
		report.In("Moment Y (Muy)", c.Muy, "kN-m"),
		report.In("Length (L)", in.L, report.UnitMM),
		report.In("K", in.K, ""),
		report.In("Cb", in.Cb, ""),
		report.In("Yield Strength (Fy)", in.Fy, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) weld(c Check) (*Evaluation, error) {
	cat, err := connection.ParseWeldCategory(c.WeldType)
	if err != nil {
		return nil, err
	}

	in := connection.WeldInput{
		Category: cat,
		Fexx:     or(c.Fexx, e.Defaults.Fexx),
		Size:     c.Size,
		Length:   c.Length,
	}
	res, err := connection.Weld(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Weld Type", Value: cat.String()},
		report.In("Electrode (Fexx)", in.Fexx, report.UnitMPa),
		report.In("Size", in.Size, report.UnitMM),
		report.In("Length", in.Length, report.UnitMM),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) bolt(c Check) (*Evaluation, error) {
	in := connection.BoltInput{
		Db:  c.Db,
		N:   c.N,
		Fnv: or(c.Fnv, e.Defaults.Fnv),
	}
	res, err := connection.Bolt(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		report.In("Bolt Diameter (db)", in.Db, report.UnitMM),
		report.In("Number of Bolts", float64(in.N), ""),
		report.In("Shear Stress (Fnv)", in.Fnv, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) basePlate(c Check) (*Evaluation, error) {
	s, err := e.section(c)
	if err != nil {
		return nil, err
	}

	in := connection.BasePlateInput{
		Pu:      c.Pu * 1e3,
		Fc:      c.Fc,
		B:       c.B,
		N:       c.NN,
		D:       s.D(),
		Bf:      s.Bf(),
		PlateFy: or(c.PlateFy, e.Defaults.PlateFy),
	}
	res, err := connection.BasePlate(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Column", Value: s.Name()},
		report.In("Axial Load (Pu)", c.Pu, "kN"),
		report.In("Concrete (f'c)", in.Fc, report.UnitMPa),
		report.In("Plate Width (B)", in.B, report.UnitMM),
		report.In("Plate Length (N)", in.N, report.UnitMM),
		report.In("Plate Fy", in.PlateFy, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}

func (e *Evaluator) endPlate(c Check) (*Evaluation, error) {
	s, err := e.section(c)
	if err != nil {
		return nil, err
	}

	in := connection.EndPlateInput{
		Mu:      c.Mu * 1e6,
		Db:      c.Db,
		Bolts:   c.N,
		Tp:      c.Tp,
		Section: s,
		Fnt:     or(c.Fnt, e.Defaults.Fnt),
		PlateFy: or(c.PlateFy, e.Defaults.PlateFy),
	}
	res, err := connection.EndPlate(in)
	if err != nil {
		return nil, err
	}

	inputs := []report.Input{
		{Label: "Beam", Value: s.Name()},
		report.In("Moment (Mu)", c.Mu, "kN-m"),
		report.In("Bolt Diameter (db)", in.Db, report.UnitMM),
		report.In("Tension Bolts", float64(in.Bolts), ""),
		report.In("Plate Thickness (tp)", in.Tp, report.UnitMM),
		report.In("Bolt Tension (Fnt)", in.Fnt, report.UnitMPa),
		report.In("Plate Fy", in.PlateFy, report.UnitMPa),
	}
	return &Evaluation{Inputs: inputs, Record: res}, nil
}
