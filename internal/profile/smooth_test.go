package profile

import (
  "math"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestSmoothKeepsCubics(t *testing.T) {
  values := make([]float64, 200)
  for i := range values {
    x := float64(i)
    values[i] = 0.001*x*x*x - 0.2*x*x + x + 5
  }

  out, err := Smooth(values, SmoothWindow, SmoothOrder)
  require.NoError(t, err)
  require.Len(t, out, len(values))

  for i := range values {
    assert.InDelta(t, values[i], out[i], 1e-6, "sample %d", i)
  }
}

func TestSmoothReducesNoise(t *testing.T) {
  x, clean := gaussianScan(100, 50, 10, 0, 100, 0.1)
  noisy := make([]float64, len(clean))
  for i := range clean {
    noisy[i] = clean[i] + 2*math.Sin(float64(i)*2.9)
  }

  out, err := Smooth(noisy, SmoothWindow, SmoothOrder)
  require.NoError(t, err)

  var before, after float64
  for i := range x {
    before += math.Pow(noisy[i]-clean[i], 2)
    after += math.Pow(out[i]-clean[i], 2)
  }
  assert.Less(t, after, before/10)
}

func TestSmoothWindowEqualsLength(t *testing.T) {
  values := []float64{1, 4, 9, 16, 25}

  out, err := Smooth(values, 5, 2)
  require.NoError(t, err)
  for i := range values {
    assert.InDelta(t, values[i], out[i], 1e-9)
  }
}

func TestSmoothErrors(t *testing.T) {
  _, err := Smooth(make([]float64, 100), 50, 3)
  require.ErrorIs(t, err, ErrBadFilter)

  _, err = Smooth(make([]float64, 100), 3, 3)
  require.ErrorIs(t, err, ErrBadFilter)

  _, err = Smooth(make([]float64, 10), SmoothWindow, SmoothOrder)
  require.ErrorIs(t, err, ErrShortSeries)
}
