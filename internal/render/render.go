// Package render draws analysis figures. Figures carry only series and
// labels; a Renderer decides where they go.
package render

import (
  "errors"
  "math"
)

// Style selects how a series is drawn.
type Style int

const (
  Line Style = iota
  Dashed
  Points
)

// Series is one labelled curve. Pairs with a NaN coordinate are skipped.
type Series struct {
  Name  string
  Style Style
  X, Y  []float64
  Brush int // palette index
}

// Figure is one plot window or saved file set.
type Figure struct {
  Name   string // file stem when saved
  Title  string
  XLabel string
  YLabel string
  Grid   bool
  Series []Series
}

// Renderer shows or stores a figure.
type Renderer interface {
  Render(f Figure) error
}

// Discard drops every figure.
type Discard struct{}

func (Discard) Render(Figure) error { return nil }

// Multi renders to each renderer in turn and joins their errors.
type Multi []Renderer

func (m Multi) Render(f Figure) error {
  var errs []error
  for _, r := range m {
    if err := r.Render(f); err != nil {
      errs = append(errs, err)
    }
  }
  return errors.Join(errs...)
}

// Segment returns the two-point series from (x0, y) to (x1, y).
func Segment(
  name string,
  x0, x1, y float64,
  brush int,
) (
  Series,
) {
  return Series{Name: name, Style: Line, X: []float64{x0, x1}, Y: []float64{y, y}, Brush: brush}
}

// finite returns the pairs of s with both coordinates finite.
func finite(
  s Series,
) (
  []float64, []float64,
) {

  n := min(len(s.X), len(s.Y))
  xs := make([]float64, 0, n)
  ys := make([]float64, 0, n)

  for i := 0; i < n; i++ {
    if bad(s.X[i]) || bad(s.Y[i]) {
      continue
    }
    xs = append(xs, s.X[i])
    ys = append(ys, s.Y[i])
  }

  return xs, ys
}

func bad(v float64) bool {
  return math.IsNaN(v) || math.IsInf(v, 0)
}
