package member

// TensionLimit identifies the governing tension limit state.
type TensionLimit int

const (
	TensionYielding TensionLimit = iota + 1
	TensionRupture
)

func (l TensionLimit) String() string {
	switch l {
	case TensionYielding:
		return "Yielding (gross section)"
	case TensionRupture:
		return "Rupture (net section)"
	}
	return "unknown"
}

// BucklingRegime is the flexural buckling branch selected by slenderness.
type BucklingRegime int

const (
	InelasticBuckling BucklingRegime = iota + 1
	ElasticBuckling
)

func (r BucklingRegime) String() string {
	switch r {
	case InelasticBuckling:
		return "Inelastic buckling (KL/r <= 4.71√(E/Fy))"
	case ElasticBuckling:
		return "Elastic buckling (KL/r > 4.71√(E/Fy))"
	}
	return "unknown"
}

// FlexureState is the lateral-torsional buckling zone selected by Lb.
type FlexureState int

const (
	Yielding FlexureState = iota + 1
	InelasticLTB
	ElasticLTB
)

func (s FlexureState) String() string {
	switch s {
	case Yielding:
		return "Yielding"
	case InelasticLTB:
		return "Inelastic LTB"
	case ElasticLTB:
		return "Elastic LTB"
	}
	return "unknown"
}

// Condition is the unbraced-length range that selects the state.
func (s FlexureState) Condition() string {
	switch s {
	case Yielding:
		return "Lb <= Lp"
	case InelasticLTB:
		return "Lp < Lb <= Lr"
	case ElasticLTB:
		return "Lb > Lr"
	}
	return ""
}

// InteractionEquation is the Section H1.1 equation used for a beam-column.
type InteractionEquation int

const (
	EquationH1_1a InteractionEquation = iota + 1
	EquationH1_1b
)

func (e InteractionEquation) String() string {
	switch e {
	case EquationH1_1a:
		return "H1-1a (Pr >= 0.2)"
	case EquationH1_1b:
		return "H1-1b (Pr < 0.2)"
	}
	return "unknown"
}
