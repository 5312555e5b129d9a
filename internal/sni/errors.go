package sni

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidInput is wrapped by every input-domain error returned by the checks.
var ErrInvalidInput = errors.New("invalid input")

// InputError describes a parameter outside its numeric domain.
type InputError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *InputError) Error() string {
	return fmt.Sprintf("%s: %s (got %g)", e.Field, e.Reason, e.Value)
}

func (e *InputError) Unwrap() error {
	return ErrInvalidInput
}

// Validator collects the first domain violation among a list of parameters.
//
//	var v sni.Validator
//	v.Positive("Ag", ag)
//	v.NonNegative("L", l)
//	if err := v.Err(); err != nil { ... }
type Validator struct {
	err error
}

// Positive requires value > 0. NaN fails.
func (v *Validator) Positive(field string, value float64) {
	if v.err == nil && !(value > 0 && !math.IsInf(value, 1)) {
		v.err = &InputError{Field: field, Value: value, Reason: "must be a positive finite number"}
	}
}

// NonNegative requires value ≥ 0. NaN fails.
func (v *Validator) NonNegative(field string, value float64) {
	if v.err == nil && !(value >= 0 && !math.IsInf(value, 1)) {
		v.err = &InputError{Field: field, Value: value, Reason: "must be zero or a positive finite number"}
	}
}

// Finite requires a finite value of any sign.
func (v *Validator) Finite(field string, value float64) {
	if v.err == nil && (math.IsNaN(value) || math.IsInf(value, 0)) {
		v.err = &InputError{Field: field, Value: value, Reason: "must be a finite number"}
	}
}

// Err returns the first violation, or nil.
func (v *Validator) Err() error {
	return v.err
}
