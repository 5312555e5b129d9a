package member

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

func TestCombinedEquations(t *testing.T) {
	s := wf200(t)

	tests := []struct {
		name     string
		pu       float64
		mux      float64
		muy      float64
		equation InteractionEquation
		ratio    float64
		status   sni.Status
	}{
		{"light axial", 1e3, 10e6, 2e6, EquationH1_1b, 0.51013, sni.StatusOK},
		{"moderate axial", 100e3, 20e6, 3e6, EquationH1_1a, 1.24010, sni.StatusNotSafe},
		{"heavy axial", 400e3, 10e6, 2e6, EquationH1_1a, 2.17774, sni.StatusNotSafe},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := Combined(CombinedInput{Section: s, Pu: tt.pu, Mux: tt.mux, Muy: tt.muy, L: 3000, K: 1, Cb: 1, Fy: 250})
			require.NoError(t, err)

			assert.Equal(t, tt.equation, r.Equation)
			assert.InDelta(t, tt.ratio, r.Ratio, 1e-5)
			assert.Equal(t, tt.status, r.Status)
			assert.Equal(t, tt.status, r.Verdict())
		})
	}
}

func TestCombinedComponents(t *testing.T) {
	s := wf200(t)
	r, err := Combined(CombinedInput{Section: s, Pu: 1e3, Mux: 10e6, Muy: 2e6, L: 3000, K: 1, Cb: 1, Fy: 250})
	require.NoError(t, err)

	assert.InDelta(t, 231720.8, r.Compression.PhiPn, 0.1)
	assert.Equal(t, InelasticLTB, r.Flexure.State)
	assert.InDelta(t, 33861895.0, r.Flexure.PhiMn, 1)
	assert.Equal(t, 250*41.8e3, r.Mny)
	assert.Equal(t, 9405000.0, r.PhiMny)
	assert.InDelta(t, 1e3/r.Compression.PhiPn, r.Pr, 1e-12)
}

func TestCombinedLabelIsExclusive(t *testing.T) {
	s := wf200(t)
	for pu := 0.0; pu <= 100e3; pu += 2.5e3 {
		r, err := Combined(CombinedInput{Section: s, Pu: pu, Mux: 5e6, L: 2500, K: 1, Cb: 1, Fy: 250})
		require.NoError(t, err)

		label := report.Map(r)["eq"].(string)
		if r.Pr >= 0.2 {
			assert.Contains(t, label, "H1-1a")
			assert.NotContains(t, label, "H1-1b")
		} else {
			assert.Contains(t, label, "H1-1b")
			assert.NotContains(t, label, "H1-1a")
		}
	}
}

func TestCombinedThresholdIsInclusive(t *testing.T) {
	s := wf200(t)
	comp, err := Compression(CompressionInput{
		Ag: s.Ag(), Rx: s.Rx(), Ry: s.Ry(),
		Kx: 1, Lx: 3000, Ky: 1, Ly: 3000, Fy: 250,
	})
	require.NoError(t, err)

	// Smallest Pu whose ratio reaches 0.2, and the next value below it.
	at := 0.2 * comp.PhiPn
	for at/comp.PhiPn < 0.2 {
		at = math.Nextafter(at, math.Inf(1))
	}
	below := at
	for below/comp.PhiPn >= 0.2 {
		below = math.Nextafter(below, 0)
	}

	in := CombinedInput{Section: s, Pu: at, Mux: 10e6, Muy: 2e6, L: 3000, K: 1, Cb: 1, Fy: 250}
	r, err := Combined(in)
	require.NoError(t, err)
	assert.InDelta(t, 0.2, r.Pr, 1e-15)
	assert.Equal(t, EquationH1_1a, r.Equation)

	in.Pu = below
	r, err = Combined(in)
	require.NoError(t, err)
	assert.Less(t, r.Pr, 0.2)
	assert.Equal(t, EquationH1_1b, r.Equation)
}

func TestCombinedAcceptsNegativeMoments(t *testing.T) {
	s := wf200(t)
	in := CombinedInput{Section: s, Pu: 100e3, Mux: 20e6, Muy: 3e6, L: 3000, K: 1, Cb: 1, Fy: 250}

	sagging, err := Combined(in)
	require.NoError(t, err)

	in.Mux, in.Muy = -20e6, -3e6
	hogging, err := Combined(in)
	require.NoError(t, err)

	assert.InDelta(t, sagging.Ratio, hogging.Ratio, 1e-12)
	assert.InDelta(t, 1.24010, hogging.Ratio, 1e-4)
	assert.Equal(t, sni.NegativeMoment, hogging.MuxSense)
	assert.Equal(t, sni.NegativeMoment, hogging.MuySense)
	assert.Equal(t, sni.PositiveMoment, sagging.MuxSense)
	assert.Equal(t, "Negative (hogging)", report.Map(hogging)["Mux_sense"])
}

func TestCombinedRejectsInvalid(t *testing.T) {
	s := wf200(t)

	_, err := Combined(CombinedInput{Section: s, Pu: -1, L: 3000, K: 1, Cb: 1, Fy: 250})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)

	_, err = Combined(CombinedInput{Section: s, Pu: 1, Mux: math.NaN(), L: 3000, K: 1, Cb: 1, Fy: 250})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)

	_, err = Combined(CombinedInput{Section: s, Pu: 1, Muy: math.Inf(-1), L: 3000, K: 1, Cb: 1, Fy: 250})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)

	_, err = Combined(CombinedInput{Section: s, Pu: 1, L: 3000, K: 1, Cb: 0, Fy: 250})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)
	assert.Contains(t, err.Error(), "flexure")
}
