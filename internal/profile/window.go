// Package profile measures the width of a sampled beam intensity profile.
//
// Widths are taken two ways: directly, from the samples closest to half the
// peak intensity on each side of the peak, and from a least-squares Gaussian
// fit. Missing samples are NaN and never take part in a search.
package profile

import (
  "errors"
  "fmt"
  "math"
)

// DefaultWindowRadius is the half width, in samples, of the search window
// used when the scan holds more than one peak.
const DefaultWindowRadius = 7500

var (
  ErrEmpty       = errors.New("profile: no intensity samples")
  ErrNoCrossing  = errors.New("profile: no half-maximum crossing")
  ErrLenMismatch = errors.New("profile: position and intensity lengths differ")
)

// Window locates the peak of a profile and the samples closest to half of it.
//
// SearchStart and SearchEnd bound the half-open index range that was searched.
// Start lies in [SearchStart, MaxIndex) and End in (MaxIndex, SearchEnd).
type Window struct {
  MaxIndex    int
  Max         float64
  HalfMax     float64
  SearchStart int
  SearchEnd   int
  Start       int
  End         int
}

// FindWindow searches values for the global maximum and its half-maximum
// crossings. A positive radius restricts the crossing search to that many
// samples either side of the maximum, clamped to the slice.
func FindWindow(
  values []float64,
  radius int,
) (
  Window, error,
) {

  var w Window

  w.MaxIndex = -1
  for i, v := range values {
    if math.IsNaN(v) {
      continue
    }
    if w.MaxIndex < 0 || v > w.Max {
      w.MaxIndex, w.Max = i, v
    }
  }
  if w.MaxIndex < 0 {
    return w, ErrEmpty
  }
  w.HalfMax = w.Max / 2

  w.SearchStart, w.SearchEnd = 0, len(values)
  if radius > 0 {
    w.SearchStart = max(0, w.MaxIndex-radius)
    w.SearchEnd = min(len(values), w.MaxIndex+radius)
  }

  var ok bool
  if w.Start, ok = closest(values, w.SearchStart, w.MaxIndex, w.HalfMax); !ok {
    return w, fmt.Errorf("%w before sample %d", ErrNoCrossing, w.MaxIndex)
  }
  if w.End, ok = closest(values, w.MaxIndex+1, w.SearchEnd, w.HalfMax); !ok {
    return w, fmt.Errorf("%w after sample %d", ErrNoCrossing, w.MaxIndex)
  }

  return w, nil
}

// closest returns the first index in [lo, hi) whose value is nearest target.
func closest(
  values []float64,
  lo, hi int,
  target float64,
) (
  int, bool,
) {

  best, bestDiff := -1, math.Inf(1)

  for i := lo; i < hi; i++ {
    if math.IsNaN(values[i]) {
      continue
    }
    if d := math.Abs(values[i] - target); best < 0 || d < bestDiff {
      best, bestDiff = i, d
    }
  }

  return best, best >= 0
}

// Width is a direct full width at half maximum measurement.
type Width struct {
  Window

  // FWHM is pos[End] - pos[Start]. Positions are not sorted first, so a scan
  // recorded in descending position gives a negative width.
  FWHM float64

  // Left is pos[MaxIndex] - pos[Start], Right is pos[End] - pos[MaxIndex].
  Left, Right float64
}

// Measure finds the half-maximum crossings of values and converts them to a
// width using the matching positions.
func Measure(
  pos, values []float64,
  radius int,
) (
  Width, error,
) {

  if len(pos) != len(values) {
    return Width{}, fmt.Errorf("%w: %d positions, %d values", ErrLenMismatch, len(pos), len(values))
  }

  w, err := FindWindow(values, radius)
  if err != nil {
    return Width{Window: w}, err
  }

  return Width{
    Window: w,
    FWHM:   pos[w.End] - pos[w.Start],
    Left:   pos[w.MaxIndex] - pos[w.Start],
    Right:  pos[w.End] - pos[w.MaxIndex],
  }, nil
}
