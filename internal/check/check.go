// Package check turns a uniform, unit-friendly check request into a call of
// the member or connection engine. The same request shape is used by the
// command line, job files and the HTTP API.
package check

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bambangtrikodono-PCE/civil-steel-calculator/internal/sni"
)

var (
	// ErrUnknownKind is returned for a check kind that has no engine.
	ErrUnknownKind = errors.New("unknown check kind")

	// ErrProfileRequired is returned when a kind needs a catalog section and none is named.
	ErrProfileRequired = errors.New("profile is required")
)

// Kind names the engine a Check is routed to.
type Kind string

const (
	KindTension     Kind = "tension"
	KindCompression Kind = "compression"
	KindFlexure     Kind = "flexure"
	KindCombined    Kind = "combined"
	KindWeld        Kind = "weld"
	KindBolt        Kind = "bolt"
	KindBasePlate   Kind = "baseplate"
	KindEndPlate    Kind = "endplate"
)

// Kinds lists every supported kind in display order.
var Kinds = []Kind{
	KindTension, KindCompression, KindFlexure, KindCombined,
	KindWeld, KindBolt, KindBasePlate, KindEndPlate,
}

// ParseKind accepts a kind name in any case.
func ParseKind(s string) (Kind, error) {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Kinds {
		if k == known {
			return k, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Check is one capacity check request. Forces are in kN, moments in kN·m,
// lengths in mm and stresses in MPa. Zero values fall back to Defaults or
// to the selected profile.
type Check struct {
	Name    string `yaml:"name" json:"name,omitempty"`
	Kind    Kind   `yaml:"kind" json:"kind"`
	Profile string `yaml:"profile,omitempty" json:"profile,omitempty"`

	// Material
	Fy float64 `yaml:"fy,omitempty" json:"fy,omitempty"`
	Fu float64 `yaml:"fu,omitempty" json:"fu,omitempty"`

	// Tension areas (mm²); Ag defaults to the profile area, Ae to Ag
	Ag float64 `yaml:"ag,omitempty" json:"ag,omitempty"`
	Ae float64 `yaml:"ae,omitempty" json:"ae,omitempty"`

	// Lengths (mm) and factors; per-axis values override K and L
	K  float64 `yaml:"k,omitempty" json:"k,omitempty"`
	L  float64 `yaml:"l,omitempty" json:"l,omitempty"`
	Kx float64 `yaml:"kx,omitempty" json:"kx,omitempty"`
	Lx float64 `yaml:"lx,omitempty" json:"lx,omitempty"`
	Ky float64 `yaml:"ky,omitempty" json:"ky,omitempty"`
	Ly float64 `yaml:"ly,omitempty" json:"ly,omitempty"`
	Lb float64 `yaml:"lb,omitempty" json:"lb,omitempty"`
	Cb float64 `yaml:"cb,omitempty" json:"cb,omitempty"`

	// Demands
	Pu  float64 `yaml:"pu,omitempty" json:"pu,omitempty"`   // kN
	Mux float64 `yaml:"mux,omitempty" json:"mux,omitempty"` // kN·m
	Muy float64 `yaml:"muy,omitempty" json:"muy,omitempty"` // kN·m
	Mu  float64 `yaml:"mu,omitempty" json:"mu,omitempty"`   // kN·m

	// Weld
	WeldType string  `yaml:"weld_type,omitempty" json:"weld_type,omitempty"`
	Fexx     float64 `yaml:"fexx,omitempty" json:"fexx,omitempty"`
	Size     float64 `yaml:"size,omitempty" json:"size,omitempty"`
	Length   float64 `yaml:"length,omitempty" json:"length,omitempty"`

	// Bolts
	Db  float64 `yaml:"db,omitempty" json:"db,omitempty"`
	N   int     `yaml:"n,omitempty" json:"n,omitempty"`
	Fnv float64 `yaml:"fnv,omitempty" json:"fnv,omitempty"`
	Fnt float64 `yaml:"fnt,omitempty" json:"fnt,omitempty"`

	// Plates
	Fc      float64 `yaml:"fc,omitempty" json:"fc,omitempty"`
	B       float64 `yaml:"b,omitempty" json:"b,omitempty"`
	NN      float64 `yaml:"nn,omitempty" json:"nn,omitempty"` // base plate length N
	Tp      float64 `yaml:"tp,omitempty" json:"tp,omitempty"`
	PlateFy float64 `yaml:"plate_fy,omitempty" json:"plate_fy,omitempty"`
}

// Label is the name of the check, or its kind and profile when unnamed.
func (c Check) Label() string {
	if c.Name != "" {
		return c.Name
	}
	if c.Profile != "" {
		return fmt.Sprintf("%s %s", c.Kind, c.Profile)
	}
	return string(c.Kind)
}

// Defaults supplies material values for fields a Check leaves at zero.
type Defaults struct {
	Modulus float64 // MPa
	Fy      float64
	Fu      float64
	Fexx    float64
	Fnv     float64
	Fnt     float64
	PlateFy float64
}

// DefaultSteel is BJ 37 steel with E70 electrodes and A325 bolts.
func DefaultSteel() Defaults {
	return Defaults{
		Modulus: sni.Es,
		Fy:      240,
		Fu:      370,
		Fexx:    490,
		Fnv:     372,
		Fnt:     sni.BoltFntA325,
		PlateFy: sni.PlateFy,
	}
}

func or(v, def float64) float64 {
	if v == 0 {
		return def
	}
	return v
}
