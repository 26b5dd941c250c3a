package render

import (
  "fmt"
  "image/color"
  "strings"

  "github.com/Arafatk/glot"
)

// Gnuplot opens one gnuplot window per figure. With Persist the windows stay
// open after the program exits.
type Gnuplot struct {
  Persist bool
  Debug   bool
}

// gnuplotter is the part of *glot.Plot that Gnuplot drives.
type gnuplotter interface {
  Cmd(format string, a ...interface{}) error
  SetTitle(title string) error
  SetXLabel(label string) error
  SetYLabel(label string) error
  AddPointGroup(name string, style string, data interface{}) error
}

var newGnuplot = func(persist, debug bool) (gnuplotter, error) {
  dimensions := 2
  return glot.NewPlot(dimensions, persist, debug)
}

func (g Gnuplot) Render(f Figure) error {

  plot, err := newGnuplot(g.Persist, g.Debug)
  if err != nil {
    return fmt.Errorf("render: gnuplot %q: %w", f.Name, err)
  }

  if err := drawGnuplot(plot, f); err != nil {
    return fmt.Errorf("render: gnuplot %q: %w", f.Name, err)
  }

  return nil
}

func drawGnuplot(
  plot gnuplotter,
  f Figure,
) (
  error,
) {

  plot.SetTitle(f.Title)
  plot.SetXLabel(f.XLabel)
  plot.SetYLabel(f.YLabel)

  if f.Grid {
    if err := plot.Cmd("set grid"); err != nil {
      return err
    }
  }

  var xs, ys [][]float64
  var drawn []Series
  for _, s := range f.Series {
    x, y := finite(s)
    if len(x) == 0 {
      continue
    }
    xs, ys = append(xs, x), append(ys, y)
    drawn = append(drawn, s)
  }

  // Each plotted group takes the next linetype, so styles are set first.
  for i, s := range drawn {
    if err := plot.Cmd(lineType(i+1, s)); err != nil {
      return err
    }
  }

  for i, key := range gnuplotKeys(drawn) {
    if err := plot.AddPointGroup(key, gnuplotStyle(drawn[i].Style), [][]float64{xs[i], ys[i]}); err != nil {
      return err
    }
  }

  return nil
}

// gnuplotKeys returns a distinct group name per series. glot refuses a
// repeated name, so repeats get trailing spaces and read the same in the key.
func gnuplotKeys(
  series []Series,
) (
  []string,
) {

  keys := make([]string, len(series))
  used := map[string]bool{}

  for i, s := range series {
    key := s.Name
    for used[key] {
      key += " "
    }
    used[key] = true
    keys[i] = key
  }

  return keys
}

func lineType(
  n int,
  s Series,
) (
  string,
) {

  dash := "solid"
  if s.Style == Dashed {
    dash = "2"
  }

  return fmt.Sprintf("set linetype %d lc rgb %q lw 2 dashtype %s", n, hexColor(palette(s.Brush, true)), dash)
}

func hexColor(c color.RGBA) string {
  return strings.ToUpper(fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B))
}

func gnuplotStyle(s Style) string {
  if s == Points {
    return "points"
  }
  return "lines"
}
