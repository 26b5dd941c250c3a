// Package prompt asks for values on an interactive console.
package prompt

import (
  "bufio"
  "errors"
  "fmt"
  "io"
  "strconv"
  "strings"
)

var (
  ErrNotNumeric = errors.New("prompt: not a number")
  ErrOutOfRange = errors.New("prompt: value out of range")
)

// Prompter writes questions to w and reads one answer per line from r.
type Prompter struct {
  r *bufio.Reader
  w io.Writer
}

// New returns a Prompter over r and w.
func New(
  r io.Reader,
  w io.Writer,
) (
  *Prompter,
) {
  return &Prompter{r: bufio.NewReader(r), w: w}
}

// Line prints label and returns the trimmed answer.
func (p *Prompter) Line(
  label string,
) (
  string, error,
) {

  fmt.Fprint(p.w, label)

  line, err := p.r.ReadString('\n')
  if err != nil && !(errors.Is(err, io.EOF) && line != "") {
    if errors.Is(err, io.EOF) {
      return "", io.ErrUnexpectedEOF
    }
    return "", err
  }

  return strings.TrimSpace(line), nil
}

// Float reads a real number. A comma is accepted as decimal separator.
func (p *Prompter) Float(
  label string,
) (
  float64, error,
) {

  s, err := p.Line(label)
  if err != nil {
    return 0, err
  }

  v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
  if err != nil {
    return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
  }

  return v, nil
}

// Int reads an integer.
func (p *Prompter) Int(
  label string,
) (
  int, error,
) {

  s, err := p.Line(label)
  if err != nil {
    return 0, err
  }

  v, err := strconv.Atoi(s)
  if err != nil {
    return 0, fmt.Errorf("%w: %q", ErrNotNumeric, s)
  }

  return v, nil
}

// IntRange reads an integer in [lo, hi].
func (p *Prompter) IntRange(
  label string,
  lo, hi int,
) (
  int, error,
) {

  v, err := p.Int(label)
  if err != nil {
    return 0, err
  }
  if v < lo || v > hi {
    return 0, fmt.Errorf("%w: %d not in [%d, %d]", ErrOutOfRange, v, lo, hi)
  }

  return v, nil
}
