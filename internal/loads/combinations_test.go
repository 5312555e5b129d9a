package loads

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFactorGravity(t *testing.T) {
	env, err := Factor(Effects{Dead: 50, Live: 30}, Basic)
	require.NoError(t, err)
	require.Len(t, env.Values, len(Basic))

	want := map[string]float64{
		"1": 70, "2a": 108, "2b": 108, "3a": 90, "3b": 60, "3c": 90,
		"3d": 60, "4a": 90, "4b": 90, "5": 90, "6": 45, "7": 45,
	}
	for _, f := range env.Values {
		assert.InDelta(t, want[f.Combination.ID], f.Value, 1e-9, f.Combination.Description)
	}

	assert.Equal(t, "2a", env.Max.Combination.ID)
	assert.InDelta(t, 108, env.Max.Value, 1e-9)
	assert.Equal(t, "6", env.Min.Combination.ID)
	assert.Equal(t, "2a", env.Governing().Combination.ID)
}

func TestFactorWindUplift(t *testing.T) {
	env, err := Factor(Effects{Dead: 10, Wind: -80}, Basic)
	require.NoError(t, err)

	assert.Equal(t, "1", env.Max.Combination.ID)
	assert.InDelta(t, 14, env.Max.Value, 1e-9)
	assert.Equal(t, "6", env.Min.Combination.ID)
	assert.InDelta(t, -71, env.Min.Value, 1e-9)

	g := env.Governing()
	assert.Equal(t, "0.9D + 1.0W", g.Combination.Description)
	assert.InDelta(t, -71, g.Value, 1e-9)
}

func TestFactorSimplified(t *testing.T) {
	env, err := Factor(Effects{Dead: 50, Live: 30}, Gravity)
	require.NoError(t, err)
	require.Len(t, env.Values, 2)
	assert.InDelta(t, 70, env.Values[0].Value, 1e-9)
	assert.InDelta(t, 108, env.Values[1].Value, 1e-9)
	assert.Equal(t, "2", env.Governing().Combination.ID)
}

func TestFactorErrors(t *testing.T) {
	_, err := Factor(Effects{}, Basic)
	assert.ErrorIs(t, err, ErrNoEffects)

	_, err = Factor(Effects{Dead: math.NaN()}, Basic)
	assert.Error(t, err)

	_, err = Factor(Effects{Dead: 1}, nil)
	assert.Error(t, err)
}

func TestApply(t *testing.T) {
	c := Combination{Factors: Effects{Dead: 1, Live: 2, Roof: 3, Rain: 4, Wind: 5, Earthquake: 6}}
	e := Effects{Dead: 1, Live: 1, Roof: 1, Rain: 1, Wind: 1, Earthquake: 1}
	assert.InDelta(t, 21, c.Apply(e), 1e-12)
	assert.True(t, Effects{}.IsZero())
	assert.False(t, e.IsZero())
}
