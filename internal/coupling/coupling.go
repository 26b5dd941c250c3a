// Package coupling computes the power coupling coefficient between two
// fibers or waveguides from their mode-field geometry, and the matching
// insertion loss.
package coupling

import (
  "errors"
  "fmt"
  "math"
)

var (
  ErrInvalidInput  = errors.New("coupling: invalid input")
  ErrZeroParameter = fmt.Errorf("%w: zero parameter", ErrInvalidInput)
  ErrInvalidResult = fmt.Errorf("%w: no finite positive coupling coefficient", ErrInvalidInput)
)

// Names lists the parameters in prompt order.
var Names = [6]string{"a", "b", "c", "d", "e", "f"}

// Params holds the six mode-field / geometry parameters.
type Params struct {
  A, B, C, D, E, F float64
}

// FromSlice builds Params from six values in a..f order.
func FromSlice(
  v []float64,
) (
  Params, error,
) {
  if len(v) != len(Names) {
    return Params{}, fmt.Errorf("%w: need %d values, got %d", ErrInvalidInput, len(Names), len(v))
  }
  return Params{v[0], v[1], v[2], v[3], v[4], v[5]}, nil
}

// Values returns the parameters in a..f order.
func (p Params) Values() [6]float64 {
  return [6]float64{p.A, p.B, p.C, p.D, p.E, p.F}
}

// Validate rejects zero, negative and non-finite parameters.
func (p Params) Validate() error {
  for i, v := range p.Values() {
    switch {
    case v == 0:
      return fmt.Errorf("%w: %s", ErrZeroParameter, Names[i])
    case math.IsNaN(v) || math.IsInf(v, 0):
      return fmt.Errorf("%w: %s = %v", ErrInvalidInput, Names[i], v)
    case v < 0:
      return fmt.Errorf("%w: %s = %v is negative", ErrInvalidInput, Names[i], v)
    }
  }
  return nil
}

// Eta returns
//
//  4 (t1 + t2)^2 / (a d (b + c) (e + f) (1/a^2 + 1/d^2))
//
// with t1 = (1/b^2 + 1/e^2)^-1/2 and t2 = (1/c^2 + 1/f^2)^-1/2. The square is
// expanded as t1^2 + t2^2 + 2 t1 t2 so matched guides give exactly 1.
func Eta(
  p Params,
) (
  float64, error,
) {

  if err := p.Validate(); err != nil {
    return 0, err
  }

  b2, c2, e2, f2 := p.B*p.B, p.C*p.C, p.E*p.E, p.F*p.F

  term1sq := b2 * e2 / (b2 + e2)
  term2sq := c2 * f2 / (c2 + f2)
  cross := p.B * p.E * p.C * p.F / math.Sqrt((b2+e2)*(c2+f2))

  eta := 4 * (term1sq + term2sq + 2*cross) /
    (p.A * p.D * (p.B + p.C) * (p.E + p.F) * (1/(p.A*p.A) + 1/(p.D*p.D)))

  if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 {
    return 0, fmt.Errorf("%w: eta = %v", ErrInvalidResult, eta)
  }

  return eta, nil
}

// LossDB converts a coupling coefficient to insertion loss, -10 log10(eta).
func LossDB(
  eta float64,
) (
  float64, error,
) {
  if math.IsNaN(eta) || math.IsInf(eta, 0) || eta <= 0 {
    return 0, fmt.Errorf("%w: eta = %v", ErrInvalidResult, eta)
  }
  loss := -10 * math.Log10(eta)
  if loss == 0 {
    // -0 for a lossless match
    loss = 0
  }
  return loss, nil
}

// Result is one calculation.
type Result struct {
  Params Params
  Eta    float64
  LossDB float64
}

// Compute returns eta and the loss for p.
func Compute(
  p Params,
) (
  Result, error,
) {

  eta, err := Eta(p)
  if err != nil {
    return Result{}, err
  }

  loss, err := LossDB(eta)
  if err != nil {
    return Result{}, err
  }

  return Result{Params: p, Eta: eta, LossDB: loss}, nil
}
