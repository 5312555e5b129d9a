package sni

// MomentSense is the sign of a moment demand. Strength checks act on the
// magnitude and report the sense next to it.
type MomentSense int

const (
	PositiveMoment MomentSense = iota
	NegativeMoment
)

// SenseOf classifies m; zero counts as positive.
func SenseOf(m float64) MomentSense {
	if m < 0 {
		return NegativeMoment
	}
	return PositiveMoment
}

func (s MomentSense) String() string {
	if s == NegativeMoment {
		return "Negative (hogging)"
	}
	return "Positive (sagging)"
}
