package sni

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestModulus(t *testing.T) {
	assert.Equal(t, Es, Modulus(0))
	assert.Equal(t, Es, Modulus(-1))
	assert.Equal(t, 70000.0, Modulus(70000))
}

func TestClosedForms(t *testing.T) {
	assert.InDelta(t, 133.219, SlendernessLimit(Es, 250), 1e-3)
	assert.True(t, math.IsInf(EulerStress(Es, 0), 1))
	assert.InDelta(t, math.Pi*math.Pi*Es/10000, EulerStress(Es, 100), 1e-9)
	assert.InDelta(t, 1105.12, LimitingLengthLp(22.2, Es, 250), 0.01)
	assert.InDelta(t, 201.06, BoltArea(16), 0.01)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, StatusOK, StatusFor(0, StatusNotSafe))
	assert.Equal(t, StatusOK, StatusFor(1.0, StatusNotSafe))
	assert.Equal(t, StatusNotSafe, StatusFor(1.0001, StatusNotSafe))
	assert.Equal(t, StatusPlateAreaTooSmall, StatusFor(2, StatusPlateAreaTooSmall))

	assert.True(t, StatusOK.Passed())
	assert.True(t, StatusCalculated.Passed())
	assert.False(t, StatusNotSafe.Passed())
	assert.False(t, StatusPlateAreaTooSmall.Passed())
}

func TestValidator(t *testing.T) {
	tests := []struct {
		name  string
		check func(v *Validator)
		field string
	}{
		{"positive zero", func(v *Validator) { v.Positive("a", 0) }, "a"},
		{"positive NaN", func(v *Validator) { v.Positive("b", math.NaN()) }, "b"},
		{"positive Inf", func(v *Validator) { v.Positive("c", math.Inf(1)) }, "c"},
		{"non-negative", func(v *Validator) { v.NonNegative("d", -0.1) }, "d"},
		{"finite", func(v *Validator) { v.Finite("e", math.Inf(-1)) }, "e"},
		{"first wins", func(v *Validator) { v.Positive("f", -1); v.Positive("g", -1) }, "f"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var v Validator
			tt.check(&v)

			err := v.Err()
			require.ErrorIs(t, err, ErrInvalidInput)
			var inputErr *InputError
			require.ErrorAs(t, err, &inputErr)
			assert.Equal(t, tt.field, inputErr.Field)
		})
	}

	var v Validator
	v.Positive("x", 1)
	v.NonNegative("y", 0)
	v.Finite("z", -5)
	assert.NoError(t, v.Err())
}

func TestSenseOf(t *testing.T) {
	assert.Equal(t, PositiveMoment, SenseOf(10))
	assert.Equal(t, PositiveMoment, SenseOf(0))
	assert.Equal(t, NegativeMoment, SenseOf(-1e-9))
	assert.Equal(t, "Positive (sagging)", PositiveMoment.String())
	assert.Equal(t, "Negative (hogging)", NegativeMoment.String())
}
