// Package profile models hot-rolled steel sections and the read-only catalog
// they are looked up from.
package profile

import (
	"encoding/json"
	"math"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

// Dimensions are the primary, tabulated properties of a section in N-mm
// units (mm, mm², mm⁴, mm³).
type Dimensions struct {
	Name   string  `json:"name"`
	Type   string  `json:"type"`
	Weight float64 `json:"weight_kg_m"` // kg/m
	D      float64 `json:"d"`           // overall depth
	Bf     float64 `json:"bf"`          // flange width
	Tw     float64 `json:"tw"`          // web thickness
	Tf     float64 `json:"tf"`          // flange thickness
	Ag     float64 `json:"Ag"`          // gross area
	Ix     float64 `json:"Ix"`
	Iy     float64 `json:"Iy"`
	Rx     float64 `json:"rx"`
	Ry     float64 `json:"ry"`
	Zx     float64 `json:"Zx"` // plastic section modulus, strong axis
	Zy     float64 `json:"Zy"` // plastic section modulus, weak axis
}

// Validate checks that every geometric property is positive.
func (d Dimensions) Validate() error {
	var v sni.Validator
	v.Positive("d", d.D)
	v.Positive("bf", d.Bf)
	v.Positive("tw", d.Tw)
	v.Positive("tf", d.Tf)
	v.Positive("Ag", d.Ag)
	v.Positive("Ix", d.Ix)
	v.Positive("Iy", d.Iy)
	v.Positive("rx", d.Rx)
	v.Positive("ry", d.Ry)
	v.Positive("Zx", d.Zx)
	v.Positive("Zy", d.Zy)
	return v.Err()
}

// Section is an immutable steel section. All derived properties are computed
// once by NewSection and cannot change afterwards; a Section is safe to share
// between goroutines.
type Section struct {
	dims Dimensions

	sx, sy float64
	h0     float64
	j      float64
	cw     float64
	rts    float64

	rtsFallback bool
}

// NewSection validates the primary dimensions and derives the secondary
// properties used by the flexural and torsional checks.
func NewSection(d Dimensions) (Section, error) {
	if err := d.Validate(); err != nil {
		return Section{}, err
	}
	return derive(d), nil
}

func derive(d Dimensions) Section {
	s := Section{dims: d}

	s.sx = d.Ix / (d.D / 2)
	s.sy = d.Iy / (d.Bf / 2)

	// Distance between flange centroids
	s.h0 = d.D - d.Tf

	// Open thin-walled section: Σ b·t³/3 over two flanges and the web
	s.j = (2*d.Bf*math.Pow(d.Tf, 3) + (d.D-2*d.Tf)*math.Pow(d.Tw, 3)) / 3

	// Doubly symmetric I-shape
	s.cw = d.Iy * s.h0 * s.h0 / 4

	// rts² = √(Iy·Cw) / Sx
	inner := d.Iy * s.cw
	if inner >= 0 {
		if rts2 := math.Sqrt(inner) / s.sx; rts2 >= 0 && !math.IsInf(rts2, 0) {
			s.rts = math.Sqrt(rts2)
			return s
		}
	}
	s.rts = d.Ry
	s.rtsFallback = true
	return s
}

func (s Section) Dimensions() Dimensions { return s.dims }
func (s Section) Name() string           { return s.dims.Name }
func (s Section) Type() string           { return s.dims.Type }
func (s Section) Weight() float64        { return s.dims.Weight }
func (s Section) D() float64             { return s.dims.D }
func (s Section) Bf() float64            { return s.dims.Bf }
func (s Section) Tw() float64            { return s.dims.Tw }
func (s Section) Tf() float64            { return s.dims.Tf }
func (s Section) Ag() float64            { return s.dims.Ag }
func (s Section) Ix() float64            { return s.dims.Ix }
func (s Section) Iy() float64            { return s.dims.Iy }
func (s Section) Rx() float64            { return s.dims.Rx }
func (s Section) Ry() float64            { return s.dims.Ry }
func (s Section) Zx() float64            { return s.dims.Zx }
func (s Section) Zy() float64            { return s.dims.Zy }

// Sx is the elastic section modulus about the strong axis.
func (s Section) Sx() float64 { return s.sx }

// Sy is the elastic section modulus about the weak axis.
func (s Section) Sy() float64 { return s.sy }

// H0 is the distance between flange centroids.
func (s Section) H0() float64 { return s.h0 }

// J is the St. Venant torsional constant.
func (s Section) J() float64 { return s.j }

// Cw is the warping constant.
func (s Section) Cw() float64 { return s.cw }

// Rts is the effective radius of gyration for lateral-torsional buckling.
func (s Section) Rts() float64 { return s.rts }

// RtsFallback reports that rts could not be derived from Iy, Cw and Sx and
// ry was substituted.
func (s Section) RtsFallback() bool { return s.rtsFallback }

type sectionJSON struct {
	Dimensions
	Sx          float64 `json:"Sx"`
	Sy          float64 `json:"Sy"`
	H0          float64 `json:"h0"`
	J           float64 `json:"J"`
	Cw          float64 `json:"Cw"`
	Rts         float64 `json:"rts"`
	RtsFallback bool    `json:"rts_fallback,omitempty"`
}

// MarshalJSON exposes primary and derived properties side by side.
func (s Section) MarshalJSON() ([]byte, error) {
	return json.Marshal(sectionJSON{
		Dimensions:  s.dims,
		Sx:          s.sx,
		Sy:          s.sy,
		H0:          s.h0,
		J:           s.j,
		Cw:          s.cw,
		Rts:         s.rts,
		RtsFallback: s.rtsFallback,
	})
}
