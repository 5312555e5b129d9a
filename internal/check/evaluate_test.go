package check

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/connection"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/member"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/profile"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

func evaluator(t *testing.T) *Evaluator {
	t.Helper()
	cat, err := profile.Default()
	require.NoError(t, err)
	return NewEvaluator(cat, DefaultSteel())
}

func TestEvaluateKinds(t *testing.T) {
	e := evaluator(t)

	tests := []struct {
		name   string
		check  Check
		key    string
		want   float64
		status sni.Status
	}{
		{
			name:   "tension from explicit areas",
			check:  Check{Kind: KindTension, Ag: 1000, Fy: 250, Fu: 400},
			key:    "phi_Pn",
			want:   225000,
			status: sni.StatusCalculated,
		},
		{
			name:   "compression",
			check:  Check{Kind: KindCompression, Profile: "WF 200x100", L: 3000, Fy: 250},
			key:    "phi_Pn",
			want:   231720.8,
			status: sni.StatusCalculated,
		},
		{
			name:   "flexure uses L when Lb is unset",
			check:  Check{Kind: KindFlexure, Profile: "WF 200x100", L: 2000, Fy: 250},
			key:    "phi_Mn",
			want:   0.9 * 45870600.5,
			status: sni.StatusCalculated,
		},
		{
			name:   "combined in kN",
			check:  Check{Kind: KindCombined, Profile: "WF 200x100", Pu: 1, Mux: 10, Muy: 2, L: 3000, Fy: 250},
			key:    "ratio",
			want:   0.51013,
			status: sni.StatusOK,
		},
		{
			name:   "weld",
			check:  Check{Kind: KindWeld, WeldType: "Fillet", Size: 6, Length: 100},
			key:    "phi_Rn",
			want:   0.75 * 124714.8,
			status: sni.StatusCalculated,
		},
		{
			name:   "bolt",
			check:  Check{Kind: KindBolt, Db: 16, N: 4},
			key:    "phi_Rn",
			want:   224385.11,
			status: sni.StatusCalculated,
		},
		{
			name:   "base plate",
			check:  Check{Kind: KindBasePlate, Profile: "WF 200x200", Pu: 500, Fc: 25, B: 400, NN: 400},
			key:    "phi_Pp",
			want:   2210000,
			status: sni.StatusOK,
		},
		{
			name:   "end plate",
			check:  Check{Kind: KindEndPlate, Profile: "WF 200x100", Mu: 40, Db: 16, N: 4, Tp: 20},
			key:    "bolt_ratio",
			want:   0.55708,
			status: sni.StatusOK,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ev, err := e.Evaluate(tt.check)
			require.NoError(t, err)
			require.NotEmpty(t, ev.Inputs)

			m := report.Map(ev.Record)
			require.Contains(t, m, tt.key)
			assert.InEpsilon(t, tt.want, m[tt.key], 1e-4)
			assert.Equal(t, tt.status, ev.Record.Verdict())
		})
	}
}

func TestEvaluateAppliesDefaults(t *testing.T) {
	e := evaluator(t)

	ev, err := e.Evaluate(Check{Kind: KindTension, Profile: "WF 200x100"})
	require.NoError(t, err)
	r := ev.Record.(*member.TensionResult)
	assert.InDelta(t, 0.9*240*2716, r.Yield.PhiPn, 1e-6)
	assert.InDelta(t, 0.75*370*2716, r.Rupture.PhiPn, 1e-6)

	ev, err = e.Evaluate(Check{Kind: KindFlexure, Profile: "WF 200x100", Lb: 0})
	require.NoError(t, err)
	f := ev.Record.(*member.FlexureResult)
	assert.Equal(t, 1.0, f.Cb)
	assert.Equal(t, member.Yielding, f.State)
}

func TestEvaluatePerAxisOverrides(t *testing.T) {
	e := evaluator(t)

	ev, err := e.Evaluate(Check{Kind: KindCompression, Profile: "WF 200x100", L: 6000, Ly: 1500, Fy: 250})
	require.NoError(t, err)
	r := ev.Record.(*member.CompressionResult)
	assert.InDelta(t, 6000/82.4, r.KLrX, 1e-9)
	assert.InDelta(t, 1500/22.2, r.KLrY, 1e-9)
}

func TestEvaluateModulusFromDefaults(t *testing.T) {
	cat, err := profile.Default()
	require.NoError(t, err)
	d := DefaultSteel()
	d.Modulus = 100000
	e := NewEvaluator(cat, d)

	soft, err := e.Evaluate(Check{Kind: KindCompression, Profile: "WF 200x100", L: 4000})
	require.NoError(t, err)
	stiff, err := evaluator(t).Evaluate(Check{Kind: KindCompression, Profile: "WF 200x100", L: 4000})
	require.NoError(t, err)

	assert.Less(t,
		soft.Record.(*member.CompressionResult).PhiPn,
		stiff.Record.(*member.CompressionResult).PhiPn)
}

func TestEvaluateSignedMoments(t *testing.T) {
	e := evaluator(t)

	pos, err := e.Evaluate(Check{Kind: KindCombined, Profile: "WF 200x100", Pu: 1, Mux: 10, Muy: 2, L: 3000, Fy: 250})
	require.NoError(t, err)
	neg, err := e.Evaluate(Check{Kind: KindCombined, Profile: "WF 200x100", Pu: 1, Mux: -10, Muy: 2, L: 3000, Fy: 250})
	require.NoError(t, err)

	assert.InDelta(t,
		pos.Record.(*member.CombinedResult).Ratio,
		neg.Record.(*member.CombinedResult).Ratio, 1e-12)
	assert.Equal(t, sni.NegativeMoment.String(), report.Map(neg.Record)["Mux_sense"])

	ep, err := e.Evaluate(Check{Kind: KindEndPlate, Profile: "WF 200x100", Mu: -40, Db: 16, N: 4, Tp: 20})
	require.NoError(t, err)
	assert.Equal(t, sni.StatusOK, ep.Record.Verdict())
}

func TestEvaluateErrors(t *testing.T) {
	e := evaluator(t)

	_, err := e.Evaluate(Check{Kind: "torsion"})
	assert.ErrorIs(t, err, ErrUnknownKind)

	_, err = e.Evaluate(Check{Kind: KindFlexure, L: 3000})
	assert.ErrorIs(t, err, ErrProfileRequired)

	_, err = e.Evaluate(Check{Kind: KindFlexure, Profile: "WF 999x999"})
	assert.ErrorIs(t, err, profile.ErrNotFound)

	_, err = e.Evaluate(Check{Kind: KindWeld, WeldType: "plug", Size: 6, Length: 100})
	assert.ErrorIs(t, err, connection.ErrUnknownWeldCategory)

	_, err = e.Evaluate(Check{Kind: KindBolt, Db: 16})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(" Flexure ")
	require.NoError(t, err)
	assert.Equal(t, KindFlexure, k)

	_, err = ParseKind("shear")
	assert.ErrorIs(t, err, ErrUnknownKind)
}

func TestCheckLabel(t *testing.T) {
	assert.Equal(t, "B1", Check{Name: "B1", Kind: KindFlexure}.Label())
	assert.Equal(t, "flexure WF 200x100", Check{Kind: KindFlexure, Profile: "WF 200x100"}.Label())
	assert.Equal(t, "weld", Check{Kind: KindWeld}.Label())
}
