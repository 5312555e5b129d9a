package member

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

func TestCompressionElastic(t *testing.T) {
	s := wf200(t)
	r, err := Compression(CompressionInput{
		Ag: s.Ag(), Rx: s.Rx(), Ry: s.Ry(),
		Kx: 1, Lx: 3000, Ky: 1, Ly: 3000, Fy: 250,
	})
	require.NoError(t, err)

	assert.InDelta(t, 135.135, r.KLr, 1e-3)
	assert.Equal(t, r.KLrY, r.KLr)
	assert.InDelta(t, 133.219, r.Limit, 1e-3)
	assert.Equal(t, ElasticBuckling, r.Regime)
	assert.InDelta(t, 0.877*r.Fe, r.Fcr, 1e-9)
	assert.InDelta(t, 231720.8, r.PhiPn, 0.1)
	assert.Equal(t, sni.PhiCompression, r.Phi)
}

func TestCompressionInelastic(t *testing.T) {
	s := wf200(t)
	r, err := Compression(CompressionInput{
		Ag: s.Ag(), Rx: s.Rx(), Ry: s.Ry(),
		Kx: 1, Lx: 1000, Ky: 1, Ly: 1000, Fy: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, InelasticBuckling, r.Regime)
	assert.InDelta(t, 224.506, r.Fcr, 1e-3)
	assert.InDelta(t, 548781.5, r.PhiPn, 0.1)
}

func TestCompressionGoverningAxis(t *testing.T) {
	// strong axis governs when the weak axis is braced at mid-height
	r, err := Compression(CompressionInput{
		Ag: 2716, Rx: 82.4, Ry: 22.2,
		Kx: 1, Lx: 8000, Ky: 1, Ly: 1500, Fy: 250,
	})
	require.NoError(t, err)

	assert.Equal(t, r.KLrX, r.KLr)
	assert.Greater(t, r.KLrX, r.KLrY)
}

func TestCompressionZeroLengthApproachesYield(t *testing.T) {
	r, err := Compression(CompressionInput{Ag: 1000, Rx: 50, Ry: 20, Fy: 250})
	require.NoError(t, err)

	assert.True(t, math.IsInf(r.Fe, 1))
	assert.Equal(t, InelasticBuckling, r.Regime)
	assert.Equal(t, 250.0, r.Fcr)
	assert.Equal(t, 0.9*250*1000, r.PhiPn)
}

func TestCompressionThresholdIsInelastic(t *testing.T) {
	limit := sni.SlendernessLimit(sni.Es, 250)
	r, err := Compression(CompressionInput{Ag: 1000, Rx: 1, Ry: 1, Kx: 1, Lx: limit, Ky: 1, Ly: limit, Fy: 250})
	require.NoError(t, err)

	assert.Equal(t, InelasticBuckling, r.Regime)
}

func TestCompressionCustomModulus(t *testing.T) {
	in := CompressionInput{Ag: 1000, Rx: 20, Ry: 20, Kx: 1, Lx: 4000, Ky: 1, Ly: 4000, Fy: 250}
	def, err := Compression(in)
	require.NoError(t, err)

	in.E = 70000
	alu, err := Compression(in)
	require.NoError(t, err)

	assert.Less(t, alu.PhiPn, def.PhiPn)
	assert.InDelta(t, def.Fe*70000/sni.Es, alu.Fe, 1e-9)
}

func TestCompressionRejectsInvalid(t *testing.T) {
	tests := []struct {
		name string
		in   CompressionInput
	}{
		{"zero area", CompressionInput{Rx: 1, Ry: 1, Fy: 250}},
		{"zero ry", CompressionInput{Ag: 1, Rx: 1, Fy: 250}},
		{"negative length", CompressionInput{Ag: 1, Rx: 1, Ry: 1, Lx: -1, Fy: 250}},
		{"NaN K", CompressionInput{Ag: 1, Rx: 1, Ry: 1, Ky: math.NaN(), Fy: 250}},
		{"zero Fy", CompressionInput{Ag: 1, Rx: 1, Ry: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compression(tt.in)
			assert.ErrorIs(t, err, sni.ErrInvalidInput)
		})
	}
}
