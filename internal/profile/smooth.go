package profile

import (
  "errors"
  "fmt"

  "gonum.org/v1/gonum/floats"
  "gonum.org/v1/gonum/mat"
)

// Savitzky-Golay settings used for the displayed profiles.
const (
  SmoothWindow = 51
  SmoothOrder  = 3
)

var (
  ErrBadFilter   = errors.New("profile: window must be odd and longer than the polynomial order")
  ErrShortSeries = errors.New("profile: series shorter than the smoothing window")
)

// Smooth applies a Savitzky-Golay filter. Interior samples use the central
// convolution weights. The first and last window/2 samples are evaluated on
// the polynomial fitted to the first and last full window.
//
// NaNs propagate to every output sample whose window contains them.
func Smooth(
  values []float64,
  window, order int,
) (
  []float64, error,
) {

  if window%2 == 0 || window <= order || order < 0 {
    return nil, fmt.Errorf("%w: window %d, order %d", ErrBadFilter, window, order)
  }
  if len(values) < window {
    return nil, fmt.Errorf("%w: %d < %d", ErrShortSeries, len(values), window)
  }

  half := window / 2
  pinv, err := sgProjection(window, order)
  if err != nil {
    return nil, err
  }

  out := make([]float64, len(values))

  // Central weights are row 0 of the projection: the polynomial's value at
  // offset zero.
  weights := mat.Row(nil, 0, pinv)
  for i := half; i < len(values)-half; i++ {
    out[i] = floats.Dot(weights, values[i-half:i+half+1])
  }

  edge := func(lo int, targets []int) {
    coeffs := mat.NewVecDense(order+1, nil)
    coeffs.MulVec(pinv, mat.NewVecDense(window, values[lo:lo+window]))
    for _, i := range targets {
      out[i] = polyval(coeffs.RawVector().Data, float64(i-lo-half))
    }
  }

  head := make([]int, 0, half)
  tail := make([]int, 0, half)
  for k := 0; k < half; k++ {
    head = append(head, k)
    tail = append(tail, len(values)-half+k)
  }
  edge(0, head)
  edge(len(values)-window, tail)

  return out, nil
}

// sgProjection returns the (order+1) x window least-squares projection that
// maps a window of samples to the coefficients of the fitted polynomial in
// the offset from the window center.
func sgProjection(
  window, order int,
) (
  *mat.Dense, error,
) {

  half := window / 2
  design := mat.NewDense(window, order+1, nil)
  for r := 0; r < window; r++ {
    t := float64(r - half)
    v := 1.
    for c := 0; c <= order; c++ {
      design.Set(r, c, v)
      v *= t
    }
  }

  eye := mat.NewDense(window, window, nil)
  for i := 0; i < window; i++ {
    eye.Set(i, i, 1)
  }

  var pinv mat.Dense
  if err := pinv.Solve(design, eye); err != nil {
    return nil, fmt.Errorf("profile: savitzky-golay design: %w", err)
  }

  return &pinv, nil
}

func polyval(
  coeffs []float64,
  t float64,
) (
  float64,
) {

  v := 0.
  for i := len(coeffs) - 1; i >= 0; i-- {
    v = v*t + coeffs[i]
  }

  return v
}
