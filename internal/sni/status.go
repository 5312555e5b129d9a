package sni

// Status is the verdict carried by every check that compares demand with
// capacity. Exceeding capacity is a valid outcome, not an error.
type Status string

const (
	StatusOK                Status = "OK"
	StatusNotSafe           Status = "NOT SAFE"
	StatusPlateAreaTooSmall Status = "Plate Area Too Small"

	// StatusCalculated marks pure capacity checks that have no demand to compare.
	StatusCalculated Status = "Calculated"
)

// StatusFor returns StatusOK when ratio ≤ 1.0 and fail otherwise.
func StatusFor(ratio float64, fail Status) Status {
	if ratio <= 1.0 {
		return StatusOK
	}
	return fail
}

// Passed reports whether the status represents an adequate design.
func (s Status) Passed() bool {
	return s == StatusOK || s == StatusCalculated
}

func (s Status) String() string {
	return string(s)
}
