package profile

import (
  "errors"
  "fmt"
  "math"

  "github.com/maorshutman/lm"
  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/gonum/mat"
  "gonum.org/v1/gonum/optimize"
)

// FWHMFactor converts a Gaussian standard deviation to its full width at half
// maximum, 2*sqrt(2 ln 2) rounded the way the lab reports it.
const FWHMFactor = 2.355

// FitIterations caps the Levenberg-Marquardt iterations of FitGaussian.
const FitIterations = 1000

var ErrNoConvergence = errors.New("profile: gaussian fit did not converge")

// Gauss evaluates amp * exp(-(x-mean)^2 / (2 sigma^2)).
func Gauss(
  x, amp, mean, sigma float64,
) (
  float64,
) {
  return amp * math.Exp(-math.Pow(x-mean, 2)/(2*math.Pow(sigma, 2)))
}

// Gaussian is a fitted profile.
type Gaussian struct {
  Amplitude float64
  Mean      float64
  Sigma     float64

  // Covariance of (Amplitude, Mean, Sigma), scaled by the residual variance.
  // Nil when the normal matrix could not be inverted.
  Covariance *mat.Dense

  Status  optimize.Status
  Samples int
}

// At evaluates the fitted curve.
func (g Gaussian) At(x float64) float64 {
  return Gauss(x, g.Amplitude, g.Mean, g.Sigma)
}

// Curve evaluates the fitted curve at every x.
func (g Gaussian) Curve(x []float64) []float64 {
  y := make([]float64, len(x))
  for i, v := range x {
    y[i] = g.At(v)
  }
  return y
}

// FWHM returns FWHMFactor * |Sigma|.
func (g Gaussian) FWHM() float64 {
  return FWHMFactor * math.Abs(g.Sigma)
}

// Bounds returns the half-maximum points Mean -/+ FWHM/2.
func (g Gaussian) Bounds() (float64, float64) {
  half := g.FWHM() / 2
  return g.Mean - half, g.Mean + half
}

// StdErr returns the one-sigma uncertainties of (Amplitude, Mean, Sigma), or
// NaNs without a covariance.
func (g Gaussian) StdErr() [3]float64 {
  var e [3]float64
  for i := range e {
    if g.Covariance == nil {
      e[i] = math.NaN()
      continue
    }
    e[i] = math.Sqrt(g.Covariance.At(i, i))
  }
  return e
}

// Seed returns the initial (amplitude, mean, sigma) guess: the observed
// maximum, its position and a sixth of the position span.
func Seed(
  x, y []float64,
) (
  []float64, error,
) {

  if len(x) != len(y) {
    return nil, fmt.Errorf("%w: %d positions, %d values", ErrLenMismatch, len(x), len(y))
  }

  xs, ys := present(x, y)
  if len(xs) == 0 {
    return nil, ErrEmpty
  }

  i := floats.MaxIdx(ys)
  span := floats.Max(xs) - floats.Min(xs)

  return []float64{ys[i], xs[i], span / 6}, nil
}

// FitGaussian fits Gauss to the (x, y) pairs where both values are present.
func FitGaussian(
  x, y []float64,
) (
  Gaussian, error,
) {

  if len(x) != len(y) {
    return Gaussian{}, fmt.Errorf("%w: %d positions, %d values", ErrLenMismatch, len(x), len(y))
  }

  xs, ys := present(x, y)
  if len(xs) < 3 {
    return Gaussian{}, fmt.Errorf("%w: %d samples, need at least 3", ErrNoConvergence, len(xs))
  }

  initialParams, err := Seed(xs, ys)
  if err != nil {
    return Gaussian{}, err
  }
  if initialParams[2] == 0 {
    return Gaussian{}, fmt.Errorf("%w: all samples share one position", ErrNoConvergence)
  }

  resFunc := func(dst, params []float64) {
    for i := range xs {
      dst[i] = ys[i] - Gauss(xs[i], params[0], params[1], params[2])
    }
  }

  nj := &lm.NumJac{Func: resFunc}

  problem := lm.LMProblem{
    Dim:        3,
    Size:       len(xs),
    Func:       resFunc,
    Jac:        nj.Jac,
    InitParams: initialParams,
    Tau:        1e-6,
    Eps1:       1e-8,
    Eps2:       1e-8,
  }

  settings := &lm.Settings{Iterations: FitIterations, ObjectiveTol: 1e-16}

  result, err := solve(problem, settings)
  if err != nil {
    return Gaussian{}, err
  }

  g := Gaussian{
    Amplitude: result.X[0],
    Mean:      result.X[1],
    Sigma:     result.X[2],
    Status:    result.Status,
    Samples:   len(xs),
  }

  if result.Status == optimize.IterationLimit {
    return g, fmt.Errorf("%w: %d iterations", ErrNoConvergence, FitIterations)
  }
  for _, p := range result.X {
    if math.IsNaN(p) || math.IsInf(p, 0) {
      return g, fmt.Errorf("%w: non-finite parameters %v", ErrNoConvergence, result.X)
    }
  }
  if g.Sigma == 0 {
    return g, fmt.Errorf("%w: zero width", ErrNoConvergence)
  }

  g.Covariance = covariance(nj, resFunc, result.X, len(xs))

  return g, nil
}

// solve runs the optimizer. lm panics on a singular step matrix; that is a
// failed fit, not a crash.
func solve(
  problem lm.LMProblem,
  settings *lm.Settings,
) (
  result *lm.Result, err error,
) {

  defer func() {
    if r := recover(); r != nil {
      result, err = nil, fmt.Errorf("%w: %v", ErrNoConvergence, r)
    }
  }()

  result, err = lm.LM(problem, settings)
  if err != nil {
    return nil, fmt.Errorf("%w: %v", ErrNoConvergence, err)
  }

  return result, nil
}

// covariance returns inv(J^T J) * SSR/(n-p) at params.
func covariance(
  nj *lm.NumJac,
  resFunc func(dst, params []float64),
  params []float64,
  n int,
) (
  *mat.Dense,
) {

  p := len(params)
  if n <= p {
    return nil
  }

  jac := mat.NewDense(n, p, nil)
  nj.Jac(jac, params)

  var jtj, inv mat.Dense
  jtj.Mul(jac.T(), jac)
  if err := inv.Inverse(&jtj); err != nil {
    return nil
  }

  r := make([]float64, n)
  resFunc(r, params)
  inv.Scale(floats.Dot(r, r)/float64(n-p), &inv)

  return &inv
}

// present drops pairs where either value is missing.
func present(
  x, y []float64,
) (
  []float64, []float64,
) {

  xs := make([]float64, 0, len(x))
  ys := make([]float64, 0, len(y))

  for i := range x {
    if math.IsNaN(x[i]) || math.IsNaN(y[i]) {
      continue
    }
    xs = append(xs, x[i])
    ys = append(ys, y[i])
  }

  return xs, ys
}
