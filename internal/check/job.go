package check

import (
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/report"
)

// ErrEmptyJob is returned for a job file without checks.
var ErrEmptyJob = errors.New("job has no checks")

// Job is a named list of checks read from a job file.
//
//	name: level 2 frame
//	checks:
//	  - name: B1
//	    kind: flexure
//	    profile: WF 300x150
//	    lb: 3000
type Job struct {
	Name   string  `yaml:"name"`
	Checks []Check `yaml:"checks"`
}

// LoadJob reads a YAML (.yaml, .yml) or Excel (.xlsx) job file.
func LoadJob(path string) (*Job, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadYAML(f)
	case ".xlsx":
		return LoadXLSX(path)
	}
	return nil, fmt.Errorf("unsupported job file %q: want .yaml or .xlsx", path)
}

// LoadYAML decodes a job. Unknown keys are rejected so typos in field names
// do not silently fall back to defaults.
func LoadYAML(r io.Reader) (*Job, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var job Job
	if err := dec.Decode(&job); err != nil {
		return nil, fmt.Errorf("decode job: %w", err)
	}
	return &job, job.validate()
}

func (j *Job) validate() error {
	if len(j.Checks) == 0 {
		return ErrEmptyJob
	}
	for i := range j.Checks {
		kind, err := ParseKind(string(j.Checks[i].Kind))
		if err != nil {
			return fmt.Errorf("check %d: %w", i+1, err)
		}
		j.Checks[i].Kind = kind
	}
	return nil
}

// LoadXLSX reads checks from the first sheet. The first row holds column
// names matching the YAML keys; unknown columns are an error, blank cells
// are left at zero.
func LoadXLSX(path string) (*Job, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, err
	}
	if len(rows) < 2 {
		return nil, ErrEmptyJob
	}

	header := rows[0]
	for _, name := range header {
		if _, ok := columnSetters[strings.ToLower(strings.TrimSpace(name))]; !ok {
			return nil, fmt.Errorf("unknown column %q", name)
		}
	}

	job := &Job{Name: sheet}
	for r, row := range rows[1:] {
		if blank(row) {
			continue
		}
		var c Check
		for i, cell := range row {
			if i >= len(header) || strings.TrimSpace(cell) == "" {
				continue
			}
			key := strings.ToLower(strings.TrimSpace(header[i]))
			if err := columnSetters[key](&c, strings.TrimSpace(cell)); err != nil {
				return nil, fmt.Errorf("row %d, column %s: %w", r+2, key, err)
			}
		}
		job.Checks = append(job.Checks, c)
	}
	return job, job.validate()
}

func blank(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

type setter func(c *Check, v string) error

func text(field func(*Check) *string) setter {
	return func(c *Check, v string) error {
		*field(c) = v
		return nil
	}
}

func number(field func(*Check) *float64) setter {
	return func(c *Check, v string) error {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return err
		}
		*field(c) = f
		return nil
	}
}

var columnSetters = map[string]setter{
	"name":    text(func(c *Check) *string { return &c.Name }),
	"profile": text(func(c *Check) *string { return &c.Profile }),
	"kind": func(c *Check, v string) error {
		c.Kind = Kind(v)
		return nil
	},
	"weld_type": text(func(c *Check) *string { return &c.WeldType }),
	"n": func(c *Check, v string) error {
		n, err := strconv.Atoi(v)
		if err != nil {
			return err
		}
		c.N = n
		return nil
	},
	"fy":       number(func(c *Check) *float64 { return &c.Fy }),
	"fu":       number(func(c *Check) *float64 { return &c.Fu }),
	"ag":       number(func(c *Check) *float64 { return &c.Ag }),
	"ae":       number(func(c *Check) *float64 { return &c.Ae }),
	"k":        number(func(c *Check) *float64 { return &c.K }),
	"l":        number(func(c *Check) *float64 { return &c.L }),
	"kx":       number(func(c *Check) *float64 { return &c.Kx }),
	"lx":       number(func(c *Check) *float64 { return &c.Lx }),
	"ky":       number(func(c *Check) *float64 { return &c.Ky }),
	"ly":       number(func(c *Check) *float64 { return &c.Ly }),
	"lb":       number(func(c *Check) *float64 { return &c.Lb }),
	"cb":       number(func(c *Check) *float64 { return &c.Cb }),
	"pu":       number(func(c *Check) *float64 { return &c.Pu }),
	"mux":      number(func(c *Check) *float64 { return &c.Mux }),
	"muy":      number(func(c *Check) *float64 { return &c.Muy }),
	"mu":       number(func(c *Check) *float64 { return &c.Mu }),
	"fexx":     number(func(c *Check) *float64 { return &c.Fexx }),
	"size":     number(func(c *Check) *float64 { return &c.Size }),
	"length":   number(func(c *Check) *float64 { return &c.Length }),
	"db":       number(func(c *Check) *float64 { return &c.Db }),
	"fnv":      number(func(c *Check) *float64 { return &c.Fnv }),
	"fnt":      number(func(c *Check) *float64 { return &c.Fnt }),
	"fc":       number(func(c *Check) *float64 { return &c.Fc }),
	"b":        number(func(c *Check) *float64 { return &c.B }),
	"nn":       number(func(c *Check) *float64 { return &c.NN }),
	"tp":       number(func(c *Check) *float64 { return &c.Tp }),
	"plate_fy": number(func(c *Check) *float64 { return &c.PlateFy }),
}

const (
	summarySheet = "Summary"
	detailSheet  = "Details"
)

// WriteXLSX saves a batch as a workbook with one summary row per check and
// one detail row per result field.
func WriteXLSX(path string, b *Batch) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return err
	}
	if _, err := f.NewSheet(detailSheet); err != nil {
		return err
	}

	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	summary := [][]any{{"#", "Check", "Kind", "Profile", "Status", "Error"}}
	details := [][]any{{"#", "Check", "Field", "Value", "Unit"}}
	for i, o := range b.Outcomes {
		status, errText := "", ""
		switch {
		case o.Err != nil:
			status, errText = "ERROR", o.Err.Error()
		case o.Evaluation != nil:
			status = o.Evaluation.Record.Verdict().String()
			for _, fld := range o.Evaluation.Record.Fields() {
				details = append(details, detailRow(i+1, o.Check.Label(), fld))
			}
		}
		summary = append(summary, []any{i + 1, o.Check.Label(), string(o.Check.Kind), o.Check.Profile, status, errText})
	}

	for sheet, rows := range map[string][][]any{summarySheet: summary, detailSheet: details} {
		for r, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return err
			}
		}
		last, _ := excelize.CoordinatesToCellName(len(rows[0]), 1)
		if err := f.SetCellStyle(sheet, "A1", last, bold); err != nil {
			return err
		}
		if err := f.SetColWidth(sheet, "B", "C", 24); err != nil {
			return err
		}
	}

	return f.SaveAs(path)
}

// detailRow keeps engine units so the sheet can be post-processed; text
// fields go in the value column as is.
func detailRow(n int, check string, fld report.Field) []any {
	switch {
	case fld.Text != "":
		return []any{n, check, fld.Label, fld.Text, ""}
	case math.IsInf(fld.Value, 0) || math.IsNaN(fld.Value):
		return []any{n, check, fld.Label, strconv.FormatFloat(fld.Value, 'g', -1, 64), fld.Unit}
	}
	return []any{n, check, fld.Label, fld.Value, fld.Unit}
}
