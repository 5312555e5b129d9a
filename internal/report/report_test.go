package report

import (
	"bytes"
	"encoding/json"
	"math"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

type fakeRecord struct {
	status sni.Status
}

func (f fakeRecord) Title() string { return "Fake Check" }

func (f fakeRecord) Fields() []Field {
	return []Field{
		Num("phi_Pn", "Design Strength (φPn)", 225000, UnitNewton),
		Num("phi_Mn", "Design Moment (φMn)", 47.9e6, UnitNmm),
		Num("ratio", "Ratio", 0.51013, UnitRatio),
		Num("Fe", "Euler Stress", math.Inf(1), UnitMPa),
		Text("state", "Limit State", "Inelastic LTB (Lp < Lb <= Lr)"),
	}
}

func (f fakeRecord) Verdict() sni.Status { return f.status }

func TestFieldDisplay(t *testing.T) {
	tests := []struct {
		field Field
		want  string
	}{
		{Num("p", "", 225000, UnitNewton), "225.00 kN"},
		{Num("m", "", 47.9e6, UnitNmm), "47.90 kN-m"},
		{Num("r", "", 0.51013, UnitRatio), "0.510"},
		{Num("phi", "", 0.9, UnitFactor), "0.90"},
		{Num("n", "", 4, UnitCount), "4"},
		{Num("ix", "", 18.4e6, UnitMM4), "1.84e+07 mm⁴"},
		{Num("lb", "", 3000, UnitMM), "3000.00 mm"},
		{Text("s", "", "Yielding"), "Yielding"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.field.Display())
	}
}

func TestIn(t *testing.T) {
	assert.Equal(t, Input{Label: "Fy", Value: "250 MPa"}, In("Fy", 250, UnitMPa))
	assert.Equal(t, Input{Label: "Cb", Value: "1.14"}, In("Cb", 1.14, ""))
}

func TestMap(t *testing.T) {
	m := Map(fakeRecord{status: sni.StatusOK})

	assert.Equal(t, 225000.0, m["phi_Pn"])
	assert.Equal(t, "Inelastic LTB (Lp < Lb <= Lr)", m["state"])
	assert.Equal(t, "+Inf", m["Fe"])
	assert.Equal(t, "OK", m["status"])

	_, err := json.Marshal(m)
	assert.NoError(t, err)
}

func TestWriteText(t *testing.T) {
	var buf bytes.Buffer
	err := WriteText(&buf, []Input{{Label: "Profile", Value: "WF 200x100"}}, fakeRecord{status: sni.StatusNotSafe})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "FAKE CHECK - SNI 1729:2020")
	assert.Contains(t, out, "INPUT DATA:")
	assert.Contains(t, out, "WF 200x100")
	assert.Contains(t, out, "225.00 kN")
	assert.Contains(t, out, "STATUS: NOT SAFE ✗")
}

func TestWriteTextWithoutInputs(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteText(&buf, nil, fakeRecord{status: sni.StatusCalculated}))

	assert.NotContains(t, buf.String(), "INPUT DATA:")
	assert.Contains(t, buf.String(), "STATUS: Calculated ✓")
}

func TestWritePDF(t *testing.T) {
	doc := NewDocument("Gudang Baja", []Input{In("Fy", 250, UnitMPa)}, fakeRecord{status: sni.StatusOK})
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, "Fake Check", doc.Title)

	var buf bytes.Buffer
	require.NoError(t, doc.WritePDF(&buf))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))
}

func TestSavePDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "check.pdf")
	doc := NewDocument("", nil, fakeRecord{status: sni.StatusPlateAreaTooSmall})
	require.NoError(t, doc.SavePDF(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(data), "%PDF"))
}
