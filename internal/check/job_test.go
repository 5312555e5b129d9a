package check

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

const jobYAML = `
name: level 2
checks:
  - name: B1
    kind: flexure
    profile: WF 300x150
    lb: 3000
    cb: 1.14
  - name: C1
    kind: Compression
    profile: WF 200x200
    l: 3500
  - name: W1
    kind: weld
    weld_type: fillet
    size: 6
    length: 150
`

func TestLoadYAML(t *testing.T) {
	job, err := LoadYAML(strings.NewReader(jobYAML))
	require.NoError(t, err)

	assert.Equal(t, "level 2", job.Name)
	require.Len(t, job.Checks, 3)
	assert.Equal(t, KindFlexure, job.Checks[0].Kind)
	assert.Equal(t, 1.14, job.Checks[0].Cb)
	assert.Equal(t, KindCompression, job.Checks[1].Kind, "kind is normalised")
	assert.Equal(t, "fillet", job.Checks[2].WeldType)
}

func TestLoadYAMLErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want string
	}{
		{"unknown key", "checks:\n  - kind: bolt\n    diameter: 16\n", "diameter"},
		{"unknown kind", "checks:\n  - kind: torsion\n", "check 1"},
		{"no checks", "name: empty\n", ErrEmptyJob.Error()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := LoadYAML(strings.NewReader(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}

func TestLoadJobByExtension(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "job.yml")
	require.NoError(t, os.WriteFile(path, []byte(jobYAML), 0o644))

	job, err := LoadJob(path)
	require.NoError(t, err)
	assert.Len(t, job.Checks, 3)

	_, err = LoadJob(filepath.Join(dir, "job.toml"))
	assert.Error(t, err)
}

func writeSheet(t *testing.T, path string, rows [][]any) {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for r, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, r+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}
	require.NoError(t, f.SaveAs(path))
}

func TestLoadXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "job.xlsx")
	writeSheet(t, path, [][]any{
		{"name", "kind", "profile", "lb", "db", "n"},
		{"B1", "flexure", "WF 300x150", "3000", "", ""},
		{"", "", "", "", "", ""},
		{"K1", "bolt", "", "", "20", "6"},
	})

	job, err := LoadJob(path)
	require.NoError(t, err)
	require.Len(t, job.Checks, 2)

	assert.Equal(t, Check{Name: "B1", Kind: KindFlexure, Profile: "WF 300x150", Lb: 3000}, job.Checks[0])
	assert.Equal(t, Check{Name: "K1", Kind: KindBolt, Db: 20, N: 6}, job.Checks[1])
}

func TestLoadXLSXErrors(t *testing.T) {
	dir := t.TempDir()

	unknown := filepath.Join(dir, "unknown.xlsx")
	writeSheet(t, unknown, [][]any{{"kind", "span"}, {"flexure", "3000"}})
	_, err := LoadXLSX(unknown)
	assert.ErrorContains(t, err, `unknown column "span"`)

	bad := filepath.Join(dir, "bad.xlsx")
	writeSheet(t, bad, [][]any{{"kind", "lb"}, {"flexure", "three"}})
	_, err = LoadXLSX(bad)
	assert.ErrorContains(t, err, "row 2, column lb")

	empty := filepath.Join(dir, "empty.xlsx")
	writeSheet(t, empty, [][]any{{"kind"}})
	_, err = LoadXLSX(empty)
	assert.ErrorIs(t, err, ErrEmptyJob)
}

func TestWriteXLSX(t *testing.T) {
	e := evaluator(t)
	batch, err := e.Run(context.Background(), []Check{
		{Name: "C0", Kind: KindCompression, Profile: "WF 200x100"},
		{Name: "B1", Kind: KindFlexure, Profile: "WF 300x150", Lb: 3000},
		{Name: "X", Kind: KindFlexure, Profile: "nope"},
	}, 2, nil)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "results.xlsx")
	require.NoError(t, WriteXLSX(path, batch))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	summary, err := f.GetRows("Summary")
	require.NoError(t, err)
	require.Len(t, summary, 4)
	assert.Equal(t, []string{"#", "Check", "Kind", "Profile", "Status", "Error"}, summary[0])
	assert.Equal(t, "Calculated", summary[1][4])
	assert.Equal(t, "ERROR", summary[3][4])

	details, err := f.GetRows("Details")
	require.NoError(t, err)
	assert.Greater(t, len(details), 10)

	// zero-length column has Fe = +Inf
	var found bool
	for _, row := range details {
		if len(row) > 3 && row[1] == "C0" && strings.HasPrefix(row[2], "Elastic Buckling Stress") {
			assert.Equal(t, "+Inf", row[3])
			found = true
		}
	}
	assert.True(t, found)
}
