package render

import (
  "fmt"
  "image/color"
  "math"
  "os"
  "path/filepath"

  "gonum.org/v1/plot"
  "gonum.org/v1/plot/font"
  "gonum.org/v1/plot/plotter"
  "gonum.org/v1/plot/vg"
  "gonum.org/v1/plot/vg/draw"
)

// Formats written by Files, in order.
var Formats = []string{".png", ".svg", ".pdf"}

// Files saves every figure as PNG, SVG and PDF under Dir.
type Files struct {
  Dir   string
  Slide bool // larger type for presentation slides
}

func (r Files) Render(f Figure) error {

  p, err := r.build(f)
  if err != nil {
    return fmt.Errorf("render: %q: %w", f.Name, err)
  }

  return savePlot(p, f.Name, r.Dir)
}

func (r Files) build(
  f Figure,
) (
  *plot.Plot, error,
) {

  xrange, yrange, ok := bounds(f.Series)

  p := prepPlot(f.Title, f.XLabel, f.YLabel, r.Slide)
  if ok {
    p.X.Min, p.X.Max = xrange[0], xrange[1]
    p.Y.Min, p.Y.Max = yrange[0], yrange[1]
    t, rt, err := enclose(xrange, yrange)
    if err != nil {
      return nil, err
    }
    p.Add(t, rt)
  }
  if f.Grid {
    p.Add(plotter.NewGrid())
  }

  for _, s := range f.Series {
    xs, ys := finite(s)
    if len(xs) == 0 {
      continue
    }
    pts := buildData(xs, ys)

    if s.Style == Points {
      sc, err := plotter.NewScatter(pts)
      if err != nil {
        return nil, err
      }
      sc.GlyphStyle.Color = palette(s.Brush, false)
      sc.GlyphStyle.Radius = vg.Points(2)
      sc.Shape = draw.CircleGlyph{}
      p.Add(sc)
      p.Legend.Add(s.Name, sc)
      continue
    }

    l, err := plotter.NewLine(pts)
    if err != nil {
      return nil, err
    }
    l.LineStyle.Color = palette(s.Brush, true)
    l.LineStyle.Width = vg.Points(3)
    if s.Style == Dashed {
      l.LineStyle.Dashes = []vg.Length{vg.Points(15), vg.Points(5)}
    }
    p.Add(l)
    p.Legend.Add(s.Name, l)
  }

  return p, nil
}

func buildData(
  xs, ys []float64,
) (
  plotter.XYs,
) {

  xy := make(plotter.XYs, len(xs))

  for i := range xy {
    xy[i].X = xs[i]
    xy[i].Y = ys[i]
  }

  return xy
}

// bounds returns the data range of all series, with 5% headroom on Y.
func bounds(
  series []Series,
) (
  [2]float64, [2]float64, bool,
) {

  xr := [2]float64{math.Inf(1), math.Inf(-1)}
  yr := [2]float64{math.Inf(1), math.Inf(-1)}

  for _, s := range series {
    xs, ys := finite(s)
    for i := range xs {
      xr[0], xr[1] = math.Min(xr[0], xs[i]), math.Max(xr[1], xs[i])
      yr[0], yr[1] = math.Min(yr[0], ys[i]), math.Max(yr[1], ys[i])
    }
  }
  if bad(xr[0]) || xr[0] == xr[1] || yr[0] == yr[1] {
    return xr, yr, false
  }

  pad := 0.05 * (yr[1] - yr[0])
  yr[0], yr[1] = yr[0]-pad, yr[1]+pad

  return xr, yr, true
}

func prepPlot(
  title, xlabel, ylabel string,
  slide bool,
) (
  *plot.Plot,
) {

  p := plot.New()
  p.BackgroundColor = color.RGBA{R: 255, G: 255, B: 255, A: 255}
  p.Title.Text = title
  p.Title.TextStyle.Font.Typeface = "liberation"
  p.Title.TextStyle.Font.Variant = "Sans"

  p.X.Label.Text = xlabel
  p.X.Label.TextStyle.Font.Variant = "Sans"
  p.X.LineStyle.Width = vg.Points(1.5)
  p.X.Tick.LineStyle.Width = vg.Points(1.5)
  p.X.Tick.Label.Font.Variant = "Sans"
  p.X.Padding = vg.Points(-8)

  p.Y.Label.Text = ylabel
  p.Y.Label.TextStyle.Font.Variant = "Sans"
  p.Y.LineStyle.Width = vg.Points(1.5)
  p.Y.Tick.LineStyle.Width = vg.Points(1.5)
  p.Y.Tick.Label.Font.Variant = "Sans"
  p.Y.Padding = vg.Points(-6)

  p.Legend.TextStyle.Font.Variant = "Sans"
  p.Legend.Top = true
  p.Legend.XOffs = vg.Points(-25)
  p.Legend.YOffs = vg.Points(-25)
  p.Legend.Padding = vg.Points(10)
  p.Legend.ThumbnailWidth = vg.Points(50)

  if slide {
    p.Title.TextStyle.Font.Size = 80
    p.Title.Padding = font.Length(80)
    p.X.Label.TextStyle.Font.Size = 56
    p.X.Label.Padding = font.Length(40)
    p.X.Tick.Label.Font.Size = 56
    p.Y.Label.TextStyle.Font.Size = 56
    p.Y.Label.Padding = font.Length(40)
    p.Y.Tick.Label.Font.Size = 56
    p.Legend.TextStyle.Font.Size = 56
  } else {
    p.Title.TextStyle.Font.Size = 40
    p.Title.Padding = font.Length(40)
    p.X.Label.TextStyle.Font.Size = 28
    p.X.Label.Padding = font.Length(20)
    p.X.Tick.Label.Font.Size = 28
    p.Y.Label.TextStyle.Font.Size = 28
    p.Y.Label.Padding = font.Length(20)
    p.Y.Tick.Label.Font.Size = 28
    p.Legend.TextStyle.Font.Size = 24
  }

  return p
}

// enclose returns the top and right frame lines.
func enclose(
  xrange, yrange [2]float64,
) (
  *plotter.Line, *plotter.Line, error,
) {

  t := plotter.XYs{{X: xrange[0], Y: yrange[1]}, {X: xrange[1], Y: yrange[1]}}
  r := plotter.XYs{{X: xrange[1], Y: yrange[0]}, {X: xrange[1], Y: yrange[1]}}

  tAxis, err := plotter.NewLine(t)
  if err != nil {
    return nil, nil, err
  }
  tAxis.LineStyle.Width = vg.Points(1.5)

  rAxis, err := plotter.NewLine(r)
  if err != nil {
    return nil, nil, err
  }
  rAxis.LineStyle.Width = vg.Points(1.5)

  return tAxis, rAxis, nil
}

// Brushes used by the beam figures.
const (
  BrushData = iota
  BrushFit
  BrushLeft
  BrushRight
  BrushSmooth
)

func palette(
  brush int,
  dark bool,
) (
  color.RGBA,
) {

  if dark {
    darkColor := []color.RGBA{
      {R: 31, G: 73, B: 181, A: 255},
      {R: 201, G: 44, B: 56, A: 255},
      {R: 46, G: 140, B: 60, A: 255},
      {R: 20, G: 20, B: 20, A: 255},
      {R: 99, G: 124, B: 198, A: 255},
      {R: 194, G: 140, B: 86, A: 255},
    }
    return darkColor[brush%len(darkColor)]
  }

  col := []color.RGBA{
    {R: 122, G: 156, B: 255, A: 255},
    {R: 255, G: 122, B: 180, A: 255},
    {R: 31, G: 211, B: 172, A: 255},
    {R: 91, G: 91, B: 91, A: 255},
    {R: 122, G: 156, B: 255, A: 255},
    {R: 255, G: 182, B: 110, A: 255},
  }
  return col[brush%len(col)]
}

func savePlot(
  p *plot.Plot,
  name, dir string,
) (
  error,
) {

  if err := os.MkdirAll(dir, 0755); err != nil {
    return err
  }

  path := filepath.Join(dir, name)

  for _, ext := range Formats {
    if err := p.Save(15*vg.Inch, 7.5*vg.Inch, path+ext); err != nil {
      return fmt.Errorf("render: save %s: %w", path+ext, err)
    }
  }

  return nil
}
