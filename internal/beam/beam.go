// Package beam runs one beam profile analysis: load a scan export, measure
// both axes, print the widths and hand the figures to a renderer.
package beam

import (
  "fmt"

  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/profile"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/prompt"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/render"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/runlog"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/scan"
)

// NoFileSelected is printed when the file dialog is dismissed.
const NoFileSelected = "No file selected."

// AxisResult holds everything measured on one axis. Each step fails on its
// own; a failed fit leaves the direct width intact.
type AxisResult struct {
  Axis      scan.Axis
  Radius    int
  Pos, Val  []float64
  Width     profile.Width
  WidthErr  error
  Fit       profile.Gaussian
  FitErr    error
  Smoothed  []float64
  SmoothErr error
}

// Report is the outcome of one run.
type Report struct {
  Config Config
  Table  *scan.Table
  X, Y   AxisResult
}

// Analyze measures both axes of t.
func Analyze(
  t *scan.Table,
  cfg Config,
) (
  *Report,
) {
  return &Report{
    Config: cfg,
    Table:  t,
    X:      analyzeAxis(t, scan.X, cfg.RadiusFor(scan.X)),
    Y:      analyzeAxis(t, scan.Y, cfg.RadiusFor(scan.Y)),
  }
}

func analyzeAxis(
  t *scan.Table,
  a scan.Axis,
  radius int,
) (
  AxisResult,
) {

  r := AxisResult{Axis: a, Radius: radius}
  r.Pos, r.Val = t.Axis(a)

  r.Width, r.WidthErr = profile.Measure(r.Pos, r.Val, radius)
  r.Fit, r.FitErr = profile.FitGaussian(r.Pos, r.Val)
  r.Smoothed, r.SmoothErr = profile.Smooth(r.Val, profile.SmoothWindow, profile.SmoothOrder)

  return r
}

// Run loads cfg.Path, analyzes it, prints the results to l and renders the
// figures. Only a load failure is returned; per-axis failures are printed.
func Run(
  cfg Config,
  rd render.Renderer,
  l *runlog.Log,
) (
  *Report, error,
) {

  t, err := scan.Load(cfg.Path)
  if err != nil {
    return nil, err
  }

  rep := Analyze(t, cfg)

  l.Printf("File: %s\n", cfg.Path)
  l.Printf("Sample: %s, %d samples\n", cfg.Guide, t.Len())

  for _, ax := range []*AxisResult{&rep.X, &rep.Y} {
    printAxis(l, cfg.Guide, ax)
    if f, ok := fitFigure(cfg.Guide, ax); ok {
      draw(rd, l, f)
    }
  }

  for _, ax := range []*AxisResult{&rep.X, &rep.Y} {
    if ax.SmoothErr != nil {
      l.Printf("\nNo smoothed %s profile: %v\n", ax.Axis, ax.SmoothErr)
      continue
    }
    draw(rd, l, smoothFigure(cfg.Guide, ax))
  }

  return rep, nil
}

// Start gathers whatever cfg leaves unset and runs the analysis. A
// dismissed file dialog prints NoFileSelected and returns nil, nil.
func Start(
  cfg Config,
  ch Chooser,
  p *prompt.Prompter,
  rd render.Renderer,
  l *runlog.Log,
) (
  *Report, error,
) {

  cfg, chosen, err := Gather(cfg, ch, p)
  if err != nil {
    return nil, err
  }
  if !chosen {
    l.Printf("%s\n", NoFileSelected)
    return nil, nil
  }

  return Run(cfg, rd, l)
}

func printAxis(
  l *runlog.Log,
  g Guide,
  ax *AxisResult,
) {

  first, second := g.Labels(ax.Axis)

  if ax.WidthErr != nil {
    l.Printf("\nCould not measure FWHM %s: %v\n", ax.Axis, ax.WidthErr)
  } else {
    mode := "whole scan"
    if ax.Radius > 0 {
      mode = fmt.Sprintf("±%d samples around the peak", ax.Radius)
    }
    l.Printf("\nFWHM %s: %v (%s)\n", ax.Axis, ax.Width.FWHM, mode)
    l.Printf("Length %s: %v\n", first, ax.Width.Left)
    l.Printf("Length %s: %v\n", second, ax.Width.Right)
  }

  if ax.FitErr != nil {
    l.Printf("\nCould not fit Gaussian to %s: %v\n", ax.Axis, ax.FitErr)
    return
  }

  fwhm := ax.Fit.FWHM()
  lo, hi := ax.Fit.Bounds()
  e := ax.Fit.StdErr()

  l.Printf("\nFWHM %s from Gaussian fit: %.2f\n", ax.Axis, fwhm)
  l.Printf("Length %s: %.2f\n", first, lo-ax.Fit.Mean)
  l.Printf("Length %s: %.2f\n", second, hi-ax.Fit.Mean)
  l.Printf("Amplitude %.4g ± %.2g, mean %.4g ± %.2g, sigma %.4g ± %.2g (%d samples)\n",
    ax.Fit.Amplitude, e[0], ax.Fit.Mean, e[1], ax.Fit.Sigma, e[2], ax.Fit.Samples)
}

// brackets returns the half-maximum segments from the start crossing to the
// peak and from the peak to the end crossing.
func brackets(
  g Guide,
  ax *AxisResult,
  right int,
) (
  []render.Series,
) {

  if ax.WidthErr != nil {
    return nil
  }

  first, second := g.Labels(ax.Axis)
  w := ax.Width

  return []render.Series{
    render.Segment(first, ax.Pos[w.Start], ax.Pos[w.MaxIndex], w.HalfMax, render.BrushLeft),
    render.Segment(second, ax.Pos[w.MaxIndex], ax.Pos[w.End], w.HalfMax, right),
  }
}

// fitFigure overlays the Gaussian fit on the raw data. There is none when
// the fit failed.
func fitFigure(
  g Guide,
  ax *AxisResult,
) (
  render.Figure, bool,
) {

  if ax.FitErr != nil {
    return render.Figure{}, false
  }

  f := render.Figure{
    Name:   fmt.Sprintf("%s Gaussian Fit", ax.Axis),
    XLabel: fmt.Sprintf("Distance [µm] (%s)", ax.Axis),
    YLabel: "Normalized intensity [%]",
    Series: []render.Series{
      {Name: fmt.Sprintf("Original data %s", ax.Axis), Style: render.Line, X: ax.Pos, Y: ax.Val, Brush: render.BrushData},
      {Name: fmt.Sprintf("Gaussian fit %s", ax.Axis), Style: render.Dashed, X: ax.Pos, Y: ax.Fit.Curve(ax.Pos), Brush: render.BrushFit},
    },
  }
  f.Series = append(f.Series, brackets(g, ax, render.BrushRight)...)

  return f, true
}

func smoothFigure(
  g Guide,
  ax *AxisResult,
) (
  render.Figure,
) {

  f := render.Figure{
    Name:   fmt.Sprintf("%s Profile", ax.Axis),
    Title:  fmt.Sprintf("%s profile", ax.Axis),
    XLabel: "Distance [µm]",
    YLabel: "Normalized intensity [%]",
    Grid:   true,
    Series: []render.Series{
      {Name: fmt.Sprintf("Pulse data %s", ax.Axis), Style: render.Line, X: ax.Pos, Y: ax.Smoothed, Brush: render.BrushSmooth},
    },
  }
  f.Series = append(f.Series, brackets(g, ax, render.BrushFit)...)

  return f
}

func draw(
  rd render.Renderer,
  l *runlog.Log,
  f render.Figure,
) {
  if err := rd.Render(f); err != nil {
    l.Printf("Could not draw %s: %v\n", f.Name, err)
  }
}
