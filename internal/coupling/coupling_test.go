package coupling

import (
  "math"
  "testing"

  "github.com/stretchr/testify/assert"
  "github.com/stretchr/testify/require"
)

func TestComputeMatchedGuides(t *testing.T) {
  r, err := Compute(Params{1, 1, 1, 1, 1, 1})
  require.NoError(t, err)
  assert.Equal(t, 1., r.Eta)
  assert.Equal(t, 0., r.LossDB)
  assert.False(t, math.Signbit(r.LossDB))
}

func TestComputeScaledMatch(t *testing.T) {
  // Identical guides of any size couple perfectly.
  r, err := Compute(Params{4.5, 3.2, 3.2, 4.5, 3.2, 3.2})
  require.NoError(t, err)
  assert.InDelta(t, 1, r.Eta, 1e-12)
  assert.InDelta(t, 0, r.LossDB, 1e-9)
}

func TestComputeMismatch(t *testing.T) {
  p := Params{A: 2, B: 3, C: 4, D: 5, E: 6, F: 7}

  term1 := math.Pow(1/9.+1/36., -0.5)
  term2 := math.Pow(1/16.+1/49., -0.5)
  want := 4 * math.Pow(term1+term2, 2) / (2 * 5 * 7 * 13 * (1/4. + 1/25.))

  r, err := Compute(p)
  require.NoError(t, err)
  assert.InDelta(t, want, r.Eta, 1e-12)
  assert.InDelta(t, -10*math.Log10(want), r.LossDB, 1e-12)
  assert.Less(t, r.Eta, 1.)
  assert.Greater(t, r.LossDB, 0.)
  assert.Equal(t, p, r.Params)
}

func TestComputeZeroParameter(t *testing.T) {
  for i, name := range Names {
    v := []float64{1, 1, 1, 1, 1, 1}
    v[i] = 0
    p, err := FromSlice(v)
    require.NoError(t, err)

    r, err := Compute(p)
    require.ErrorIs(t, err, ErrZeroParameter, name)
    require.ErrorIs(t, err, ErrInvalidInput, name)
    assert.Contains(t, err.Error(), ": "+name)
    assert.Zero(t, r.Eta)
  }
}

func TestComputeNonFinite(t *testing.T) {
  _, err := Compute(Params{math.NaN(), 1, 1, 1, 1, 1})
  require.ErrorIs(t, err, ErrInvalidInput)

  _, err = Compute(Params{1, 1, 1, 1, math.Inf(1), 1})
  require.ErrorIs(t, err, ErrInvalidInput)

  _, err = LossDB(-0.5)
  require.ErrorIs(t, err, ErrInvalidResult)
}

func TestComputeNegativeParameter(t *testing.T) {
  // Negative b, c, e and f cancel in pairs and would give a plausible eta.
  _, err := Compute(Params{1, -2, -3, 1, -5, -6})
  require.ErrorIs(t, err, ErrInvalidInput)
  assert.Contains(t, err.Error(), "b = -2 is negative")

  for i, name := range Names {
    v := []float64{1, 1, 1, 1, 1, 1}
    v[i] = -1
    p, err := FromSlice(v)
    require.NoError(t, err)

    r, err := Compute(p)
    require.ErrorIs(t, err, ErrInvalidInput, name)
    assert.NotErrorIs(t, err, ErrZeroParameter, name)
    assert.Zero(t, r.Eta)
  }
}

func TestLossDB(t *testing.T) {
  l, err := LossDB(0.5)
  require.NoError(t, err)
  assert.InDelta(t, 3.0103, l, 1e-4)

  _, err = LossDB(0)
  require.ErrorIs(t, err, ErrInvalidResult)
}

func TestFromSlice(t *testing.T) {
  p, err := FromSlice([]float64{1, 2, 3, 4, 5, 6})
  require.NoError(t, err)
  assert.Equal(t, [6]float64{1, 2, 3, 4, 5, 6}, p.Values())

  _, err = FromSlice([]float64{1, 2})
  require.ErrorIs(t, err, ErrInvalidInput)
}
