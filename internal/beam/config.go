package beam

import (
  "errors"
  "fmt"

  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/profile"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/prompt"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/scan"
)

// Guide is the kind of sample under test. It only changes labels.
type Guide int

const (
  Fiber     Guide = 1
  Waveguide Guide = 2
)

var ErrGuide = errors.New("beam: guide type must be 1 (fiber) or 2 (waveguide)")

func (g Guide) String() string {
  switch g {
  case Fiber:
    return "optical fiber"
  case Waveguide:
    return "waveguide"
  }
  return fmt.Sprintf("Guide(%d)", int(g))
}

// Valid reports whether g is Fiber or Waveguide.
func (g Guide) Valid() bool {
  return g == Fiber || g == Waveguide
}

// Labels returns the names of the start-to-peak and peak-to-end lengths on
// axis a. They match the coupling calculator's parameter names.
func (g Guide) Labels(
  a scan.Axis,
) (
  string, string,
) {

  switch {
  case a == scan.X && g == Waveguide:
    return "d", "d"
  case a == scan.X:
    return "a", "a"
  case g == Waveguide:
    return "e", "f"
  }

  return "b", "c"
}

// Config is everything one analysis run needs.
type Config struct {
  Path   string
  Guide  Guide
  XPeaks int
  YPeaks int
  Radius int // crossing search half width used for axes with several peaks
}

// RadiusFor returns the crossing search radius for axis a, zero meaning the
// whole table. An unset Radius falls back to profile.DefaultWindowRadius.
func (c Config) RadiusFor(a scan.Axis) int {
  peaks := c.XPeaks
  if a == scan.Y {
    peaks = c.YPeaks
  }
  switch {
  case peaks <= 1:
    return 0
  case c.Radius <= 0:
    return profile.DefaultWindowRadius
  }
  return c.Radius
}

// Chooser supplies the path of the export to analyze. An empty path with a
// nil error means the user cancelled.
type Chooser interface {
  Choose() (string, error)
}

// Gather fills what cfg leaves unset: the file from ch, then the guide type
// and X peak count from p. It reports false when no file was chosen.
func Gather(
  cfg Config,
  ch Chooser,
  p *prompt.Prompter,
) (
  Config, bool, error,
) {

  if cfg.Path == "" {
    path, err := ch.Choose()
    if err != nil {
      return cfg, false, fmt.Errorf("choose file: %w", err)
    }
    if path == "" {
      return cfg, false, nil
    }
    cfg.Path = path
  }

  if cfg.Guide == 0 {
    g, err := p.IntRange("Enter 1 for optical fiber or 2 for waveguide: ", int(Fiber), int(Waveguide))
    if err != nil {
      return cfg, true, fmt.Errorf("guide type: %w", err)
    }
    cfg.Guide = Guide(g)
  }
  if !cfg.Guide.Valid() {
    return cfg, true, fmt.Errorf("%w, got %d", ErrGuide, int(cfg.Guide))
  }

  if cfg.XPeaks == 0 {
    n, err := p.IntRange("Enter the number of peaks in the X signal: ", 1, 1<<30)
    if err != nil {
      return cfg, true, fmt.Errorf("X peak count: %w", err)
    }
    cfg.XPeaks = n
  }
  if cfg.YPeaks == 0 {
    cfg.YPeaks = 1
  }

  return cfg, true, nil
}
