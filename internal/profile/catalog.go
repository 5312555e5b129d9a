package profile

import (
	"bytes"
	_ "embed"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"go.uber.org/zap"
)

//go:embed data/profiles.csv
var defaultCSV []byte

var (
	ErrNotFound   = errors.New("profile not found")
	ErrNoSections = errors.New("catalog contains no sections")
)

// Columns of the tabular section format. Lengths are stored in mm, section
// constants in cm-based units and converted once on load.
var columns = []string{
	"name", "type", "weight_kg_m", "depth_mm", "width_mm", "web_thick_mm", "flange_thick_mm",
	"area_cm2", "ix_cm4", "iy_cm4", "rx_cm", "ry_cm", "zx_cm3", "zy_cm3",
}

// Only wide-flange rows are admitted; the torsion and warping properties are
// I-shape approximations.
const admittedType = "WF"

// Catalog is a read-only collection of sections keyed by name. It is never
// modified after loading and may be shared freely.
type Catalog struct {
	sections []Section
	byKey    map[string]int
}

type loadOptions struct {
	logger *zap.Logger
}

// LoadOption customizes catalog loading.
type LoadOption func(*loadOptions)

// WithLogger reports skipped rows to l.
func WithLogger(l *zap.Logger) LoadOption {
	return func(o *loadOptions) {
		if l != nil {
			o.logger = l
		}
	}
}

func newLoadOptions(opts []LoadOption) *loadOptions {
	o := &loadOptions{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Default returns the catalog embedded in the binary.
func Default(opts ...LoadOption) (*Catalog, error) {
	return LoadCSV(bytes.NewReader(defaultCSV), opts...)
}

// Open loads a catalog from path, choosing the reader by extension.
// An empty path returns the embedded catalog.
func Open(path string, opts ...LoadOption) (*Catalog, error) {
	if path == "" {
		return Default(opts...)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return LoadXLSX(path, opts...)
	case ".csv":
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return LoadCSV(f, opts...)
	default:
		return nil, fmt.Errorf("unsupported catalog format %q", filepath.Ext(path))
	}
}

// LoadCSV reads a catalog in the tabular section format.
func LoadCSV(r io.Reader, opts ...LoadOption) (*Catalog, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return build(rows, newLoadOptions(opts))
}

// LoadXLSX reads the first worksheet of a workbook in the tabular section format.
func LoadXLSX(path string, opts ...LoadOption) (*Catalog, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetName(0))
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog sheet: %w", err)
	}
	return build(rows, newLoadOptions(opts))
}

func build(rows [][]string, o *loadOptions) (*Catalog, error) {
	if len(rows) < 2 {
		return nil, ErrNoSections
	}

	index := make(map[string]int, len(rows[0]))
	for i, h := range rows[0] {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, col := range columns {
		if _, ok := index[col]; !ok {
			return nil, fmt.Errorf("catalog header is missing column %q", col)
		}
	}

	c := &Catalog{byKey: make(map[string]int)}
	for i, row := range rows[1:] {
		line := i + 2
		get := func(col string) string {
			if idx := index[col]; idx < len(row) {
				return strings.TrimSpace(row[idx])
			}
			return ""
		}
		if get("name") == "" {
			continue
		}
		if t := get("type"); t != admittedType {
			o.logger.Debug("skipping catalog row", zap.Int("row", line), zap.String("name", get("name")), zap.String("type", t))
			continue
		}

		dims, err := parseDimensions(get)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", line, err)
		}
		sec, err := NewSection(dims)
		if err != nil {
			return nil, fmt.Errorf("row %d (%s): %w", line, dims.Name, err)
		}

		key := normalize(dims.Name)
		if _, dup := c.byKey[key]; dup {
			return nil, fmt.Errorf("row %d: duplicate section %q", line, dims.Name)
		}
		c.byKey[key] = len(c.sections)
		c.sections = append(c.sections, sec)
	}

	if len(c.sections) == 0 {
		return nil, ErrNoSections
	}
	o.logger.Debug("catalog loaded", zap.Int("sections", len(c.sections)))
	return c, nil
}

func parseDimensions(get func(string) string) (Dimensions, error) {
	var firstErr error
	num := func(col string, scale float64) float64 {
		v, err := strconv.ParseFloat(get(col), 64)
		if err != nil && firstErr == nil {
			firstErr = fmt.Errorf("column %s: %w", col, err)
		}
		return v * scale
	}

	d := Dimensions{
		Name:   get("name"),
		Type:   get("type"),
		Weight: num("weight_kg_m", 1),
		D:      num("depth_mm", 1),
		Bf:     num("width_mm", 1),
		Tw:     num("web_thick_mm", 1),
		Tf:     num("flange_thick_mm", 1),
		Ag:     num("area_cm2", 1e2), // cm² -> mm²
		Ix:     num("ix_cm4", 1e4),   // cm⁴ -> mm⁴
		Iy:     num("iy_cm4", 1e4),
		Rx:     num("rx_cm", 10), // cm -> mm
		Ry:     num("ry_cm", 10),
		Zx:     num("zx_cm3", 1e3), // cm³ -> mm³
		Zy:     num("zy_cm3", 1e3),
	}
	return d, firstErr
}

func normalize(name string) string {
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.sections)
}

// Names returns section names in catalog order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.sections))
	for i, s := range c.sections {
		names[i] = s.Name()
	}
	return names
}

// Get looks a section up by name, ignoring case and repeated whitespace.
func (c *Catalog) Get(name string) (Section, error) {
	idx, ok := c.byKey[normalize(name)]
	if !ok {
		return Section{}, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	return c.sections[idx], nil
}

// All returns a copy of every section in catalog order.
func (c *Catalog) All() []Section {
	out := make([]Section, len(c.sections))
	copy(out, c.sections)
	return out
}

// Filter returns sections whose name starts with prefix, sorted by weight.
func (c *Catalog) Filter(prefix string) []Section {
	p := normalize(prefix)
	var out []Section
	for _, s := range c.sections {
		if strings.HasPrefix(normalize(s.Name()), p) {
			out = append(out, s)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Weight() < out[j].Weight()
	})
	return out
}
