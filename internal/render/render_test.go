package render

import (
  "errors"
  "fmt"
  "math"
  "os"
  "path/filepath"
  "strings"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

type failing struct{ err error }

func (f failing) Render(Figure) error { return f.err }

type counting struct{ n *int }

func (c counting) Render(Figure) error { *c.n++; return nil }

func testFigure() Figure {
  nan := math.NaN()
  return Figure{
    Name:   "X Gaussian Fit",
    Title:  "X profile",
    XLabel: "Distance [µm]",
    YLabel: "Normalized intensity [%]",
    Grid:   true,
    Series: []Series{
      {Name: "Data X", Style: Points, X: []float64{0, 1, 2, 3, nan}, Y: []float64{1, 40, 100, 35, 2}, Brush: BrushData},
      {Name: "Gaussian fit X", Style: Dashed, X: []float64{0, 1, 2, 3}, Y: []float64{2, 45, 98, 40}, Brush: BrushFit},
      Segment("a", 1, 2, 50, BrushLeft),
      Segment("a", 2, 3, 50, BrushRight),
      {Name: "empty", X: []float64{nan}, Y: []float64{nan}},
    },
  }
}

func TestMulti(t *testing.T) {
  n := 0
  e1, e2 := errors.New("one"), errors.New("two")

  err := Multi{counting{&n}, failing{e1}, counting{&n}, failing{e2}}.Render(testFigure())
  require.ErrorIs(t, err, e1)
  require.ErrorIs(t, err, e2)
  assert.Equal(t, 2, n)

  require.NoError(t, Multi{Discard{}, counting{&n}}.Render(testFigure()))
  assert.Equal(t, 3, n)
}

func TestSegment(t *testing.T) {
  s := Segment("b", -3, 4, 25, BrushLeft)
  assert.Equal(t, []float64{-3, 4}, s.X)
  assert.Equal(t, []float64{25, 25}, s.Y)
  assert.Equal(t, Line, s.Style)
}

func TestFiniteAndBounds(t *testing.T) {
  xs, ys := finite(Series{X: []float64{1, math.NaN(), 3, 4}, Y: []float64{1, 2, math.Inf(1)}})
  assert.Equal(t, []float64{1}, xs)
  assert.Equal(t, []float64{1}, ys)

  xr, yr, ok := bounds(testFigure().Series)
  require.True(t, ok)
  assert.Equal(t, [2]float64{0, 3}, xr)
  assert.InDelta(t, 1-4.95, yr[0], 1e-9)
  assert.InDelta(t, 100+4.95, yr[1], 1e-9)

  _, _, ok = bounds([]Series{{X: []float64{1}, Y: []float64{1}}})
  assert.False(t, ok)
}

func TestFilesWritesEveryFormat(t *testing.T) {
  dir := filepath.Join(t.TempDir(), "2024-Mar-05", "run")

  require.NoError(t, Files{Dir: dir}.Render(testFigure()))

  for _, ext := range Formats {
    info, err := os.Stat(filepath.Join(dir, "X Gaussian Fit"+ext))
    require.NoError(t, err, ext)
    assert.Positive(t, info.Size(), ext)
  }
}

func TestFilesSlideLayout(t *testing.T) {
  require.NoError(t, Files{Dir: t.TempDir(), Slide: true}.Render(testFigure()))
}

func TestGnuplotStyle(t *testing.T) {
  assert.Equal(t, "lines", gnuplotStyle(Line))
  assert.Equal(t, "lines", gnuplotStyle(Dashed))
  assert.Equal(t, "points", gnuplotStyle(Points))
}

// fakeGnuplot records commands and, like glot, refuses a repeated group name.
type fakeGnuplot struct {
  cmds   []string
  groups []string
  styles []string
}

func (p *fakeGnuplot) Cmd(format string, a ...interface{}) error {
  p.cmds = append(p.cmds, fmt.Sprintf(format, a...))
  return nil
}

func (p *fakeGnuplot) SetTitle(string) error  { return nil }
func (p *fakeGnuplot) SetXLabel(string) error { return nil }
func (p *fakeGnuplot) SetYLabel(string) error { return nil }

func (p *fakeGnuplot) AddPointGroup(name string, style string, data interface{}) error {
  for _, g := range p.groups {
    if g == name {
      return fmt.Errorf("A PointGroup with the name %s  already exists", name)
    }
  }
  p.groups = append(p.groups, name)
  p.styles = append(p.styles, style)
  return nil
}

func TestGnuplotRepeatedLabels(t *testing.T) {
  fake := &fakeGnuplot{}
  open := newGnuplot
  newGnuplot = func(bool, bool) (gnuplotter, error) { return fake, nil }
  t.Cleanup(func() { newGnuplot = open })

  // The X brackets carry the same label on both sides of the peak.
  require.NoError(t, Gnuplot{}.Render(testFigure()))

  require.Len(t, fake.groups, 4)
  assert.Equal(t, "a", fake.groups[2])
  assert.NotEqual(t, fake.groups[2], fake.groups[3])
  assert.Equal(t, "a", strings.TrimSpace(fake.groups[3]))
  assert.Equal(t, []string{"points", "lines", "lines", "lines"}, fake.styles)

  assert.Equal(t, "set grid", fake.cmds[0])
  assert.Contains(t, fake.cmds[1], "set linetype 1 ")
  assert.Contains(t, fake.cmds[2], "set linetype 2 ")
  assert.Contains(t, fake.cmds[2], "dashtype 2")
  assert.Contains(t, fake.cmds[3], "dashtype solid")
  assert.Len(t, fake.cmds, 5)
}

func TestGnuplotKeys(t *testing.T) {
  keys := gnuplotKeys([]Series{{Name: "d"}, {Name: "d"}, {Name: "d"}, {Name: "e"}})
  assert.Equal(t, []string{"d", "d ", "d  ", "e"}, keys)
}

func TestLineType(t *testing.T) {
  assert.Equal(t, `set linetype 3 lc rgb "#C92C38" lw 2 dashtype 2`, lineType(3, Series{Style: Dashed, Brush: BrushFit}))
}
