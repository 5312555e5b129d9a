package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

func TestWeldFillet(t *testing.T) {
	r, err := Weld(WeldInput{Category: Fillet, Fexx: 490, Size: 6, Length: 100})
	require.NoError(t, err)

	assert.InDelta(t, 0.6*490*0.707*6*100, r.Rn, 1e-6)
	assert.InDelta(t, 124714.8, r.Rn, 0.01)
	assert.Equal(t, 0.75, r.Phi)
	assert.InDelta(t, 0.75*r.Rn, r.PhiRn, 1e-9)
	assert.InDelta(t, 4.242, r.Te, 1e-9)
	assert.Equal(t, "Fillet Weld", r.Title())
}

func TestWeldGroove(t *testing.T) {
	r, err := Weld(WeldInput{Category: Groove, Fexx: 490, Size: 10, Length: 100})
	require.NoError(t, err)

	assert.Equal(t, 10.0, r.Te)
	assert.InDelta(t, 294000.0, r.Rn, 1e-6)
	assert.Equal(t, 0.75, r.Phi)
}

func TestWeldUnknownCategory(t *testing.T) {
	_, err := Weld(WeldInput{Fexx: 490, Size: 6, Length: 100})
	assert.ErrorIs(t, err, ErrUnknownWeldCategory)

	_, err = Weld(WeldInput{Category: WeldCategory(7), Fexx: 490, Size: 6, Length: 100})
	assert.ErrorIs(t, err, ErrUnknownWeldCategory)
	assert.NotErrorIs(t, err, sni.ErrInvalidInput)
}

func TestParseWeldCategory(t *testing.T) {
	tests := []struct {
		in   string
		want WeldCategory
	}{
		{"Fillet", Fillet},
		{"fillet", Fillet},
		{" GROOVE ", Groove},
		{"Groove", Groove},
	}
	for _, tt := range tests {
		got, err := ParseWeldCategory(tt.in)
		require.NoError(t, err)
		assert.Equal(t, tt.want, got)
	}

	_, err := ParseWeldCategory("plug")
	assert.ErrorIs(t, err, ErrUnknownWeldCategory)
	assert.Contains(t, err.Error(), `"plug"`)
}

func TestWeldRejectsNonPositive(t *testing.T) {
	_, err := Weld(WeldInput{Category: Fillet, Fexx: 490, Size: 0, Length: 100})
	assert.ErrorIs(t, err, sni.ErrInvalidInput)
}

func TestWeldRecord(t *testing.T) {
	r, err := Weld(WeldInput{Category: Fillet, Fexx: 490, Size: 6, Length: 100})
	require.NoError(t, err)

	m := report.Map(r)
	assert.Equal(t, "Calculated", m["status"])
	assert.InDelta(t, r.PhiRn, m["phi_Rn"], 1e-9)
}
