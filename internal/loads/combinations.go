// Package loads factors unfactored load effects with the strength design
// combinations of SNI 1727:2020 Section 2.3.1.
//
// Effects are unit agnostic: an axial force, a shear or a moment may be
// factored as long as every component uses the same unit.
package loads

import (
	"errors"
	"fmt"
	"math"
)

var ErrNoEffects = errors.New("no unfactored load effect given")

// Effects holds unfactored effects from each load type. Wind and earthquake
// are signed; enter the reversed direction as a separate run.
type Effects struct {
	Dead       float64 `json:"dead" yaml:"dead"`             // D
	Live       float64 `json:"live" yaml:"live"`             // L
	Roof       float64 `json:"roof" yaml:"roof"`             // Lr
	Rain       float64 `json:"rain" yaml:"rain"`             // R
	Wind       float64 `json:"wind" yaml:"wind"`             // W
	Earthquake float64 `json:"earthquake" yaml:"earthquake"` // E
}

// IsZero reports whether no effect was given.
func (e Effects) IsZero() bool {
	return e == Effects{}
}

func (e Effects) validate() error {
	if e.IsZero() {
		return ErrNoEffects
	}
	for _, v := range []float64{e.Dead, e.Live, e.Roof, e.Rain, e.Wind, e.Earthquake} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("load effect must be finite, got %v", v)
		}
	}
	return nil
}

// Combination is one load combination. The "or" terms of the code are
// expanded into separate combinations so that each carries plain factors.
type Combination struct {
	ID          string
	Description string
	Factors     Effects
}

// Apply returns the factored effect.
func (c Combination) Apply(e Effects) float64 {
	f := c.Factors
	return f.Dead*e.Dead +
		f.Live*e.Live +
		f.Roof*e.Roof +
		f.Rain*e.Rain +
		f.Wind*e.Wind +
		f.Earthquake*e.Earthquake
}

// Basic are the strength design combinations of SNI 1727:2020 2.3.1.
// Snow does not occur in Indonesia and is omitted.
var Basic = []Combination{
	{ID: "1", Description: "1.4D", Factors: Effects{Dead: 1.4}},
	{ID: "2a", Description: "1.2D + 1.6L + 0.5Lr", Factors: Effects{Dead: 1.2, Live: 1.6, Roof: 0.5}},
	{ID: "2b", Description: "1.2D + 1.6L + 0.5R", Factors: Effects{Dead: 1.2, Live: 1.6, Rain: 0.5}},
	{ID: "3a", Description: "1.2D + 1.6Lr + 1.0L", Factors: Effects{Dead: 1.2, Roof: 1.6, Live: 1.0}},
	{ID: "3b", Description: "1.2D + 1.6Lr + 0.5W", Factors: Effects{Dead: 1.2, Roof: 1.6, Wind: 0.5}},
	{ID: "3c", Description: "1.2D + 1.6R + 1.0L", Factors: Effects{Dead: 1.2, Rain: 1.6, Live: 1.0}},
	{ID: "3d", Description: "1.2D + 1.6R + 0.5W", Factors: Effects{Dead: 1.2, Rain: 1.6, Wind: 0.5}},
	{ID: "4a", Description: "1.2D + 1.0W + 1.0L + 0.5Lr", Factors: Effects{Dead: 1.2, Wind: 1.0, Live: 1.0, Roof: 0.5}},
	{ID: "4b", Description: "1.2D + 1.0W + 1.0L + 0.5R", Factors: Effects{Dead: 1.2, Wind: 1.0, Live: 1.0, Rain: 0.5}},
	{ID: "5", Description: "1.2D + 1.0E + 1.0L", Factors: Effects{Dead: 1.2, Earthquake: 1.0, Live: 1.0}},
	{ID: "6", Description: "0.9D + 1.0W", Factors: Effects{Dead: 0.9, Wind: 1.0}},
	{ID: "7", Description: "0.9D + 1.0E", Factors: Effects{Dead: 0.9, Earthquake: 1.0}},
}

// Gravity are the two combinations that usually govern members without
// lateral load.
var Gravity = []Combination{
	Basic[0],
	{ID: "2", Description: "1.2D + 1.6L", Factors: Effects{Dead: 1.2, Live: 1.6}},
}

// Factored is the outcome of one combination.
type Factored struct {
	Combination Combination
	Value       float64
}

// Envelope is the result of factoring a set of effects with every
// combination in a set.
type Envelope struct {
	Effects Effects
	Values  []Factored
	Max     Factored
	Min     Factored
}

// Governing returns the factored value of largest magnitude, which is the
// design demand for a capacity check.
func (e *Envelope) Governing() Factored {
	if math.Abs(e.Min.Value) > math.Abs(e.Max.Value) {
		return e.Min
	}
	return e.Max
}

// Factor applies every combination to e. The first combination wins a tie
// for Max or Min.
func Factor(e Effects, combinations []Combination) (*Envelope, error) {
	if err := e.validate(); err != nil {
		return nil, err
	}
	if len(combinations) == 0 {
		return nil, errors.New("no load combinations given")
	}

	env := &Envelope{Effects: e, Values: make([]Factored, len(combinations))}
	for i, c := range combinations {
		f := Factored{Combination: c, Value: c.Apply(e)}
		env.Values[i] = f
		if i == 0 || f.Value > env.Max.Value {
			env.Max = f
		}
		if i == 0 || f.Value < env.Min.Value {
			env.Min = f
		}
	}
	return env, nil
}
