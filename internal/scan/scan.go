// Package scan reads the tab-delimited beam profile export written by the
// scanning slit instrument.
//
// The export is ISO-8859-1 text. The first ten lines are instrument
// metadata, line eleven names the columns and every following line holds one
// sample. Decimals use a comma.
package scan

import (
  "bufio"
  "errors"
  "fmt"
  "io"
  "math"
  "os"
  "strconv"
  "strings"

  "golang.org/x/text/encoding/charmap"
)

// Layout of the export.
const (
  HeaderLines = 10
  ColumnLine  = HeaderLines + 1
)

// Column name prefixes. The export appends a unit, e.g. "Pos X [µm]".
const (
  PosXColumn   = "Pos X"
  ValueXColumn = "X Value"
  PosYColumn   = "Pos Y"
  ValueYColumn = "Y Value"
)

var (
  ErrShortHeader   = errors.New("scan: file ends before the column line")
  ErrMissingColumn = errors.New("scan: required column not found")
)

// Axis selects one of the two scan directions.
type Axis int

const (
  X Axis = iota
  Y
)

func (a Axis) String() string {
  if a == Y {
    return "Y"
  }
  return "X"
}

// Record is one sample row. Missing cells are NaN.
type Record struct {
  PosX, ValueX float64 // µm, %
  PosY, ValueY float64 // µm, %
}

// Table holds the samples in file order.
type Table struct {
  Header  []string
  Columns []string
  Records []Record
}

// Len returns the number of samples.
func (t *Table) Len() int {
  return len(t.Records)
}

// Axis returns the position and intensity columns of one axis.
func (t *Table) Axis(
  a Axis,
) (
  []float64, []float64,
) {

  pos := make([]float64, len(t.Records))
  val := make([]float64, len(t.Records))

  for i, r := range t.Records {
    if a == Y {
      pos[i], val[i] = r.PosY, r.ValueY
    } else {
      pos[i], val[i] = r.PosX, r.ValueX
    }
  }

  return pos, val
}

// Load opens and parses an export file.
func Load(
  path string,
) (
  *Table, error,
) {

  f, err := os.Open(path)
  if err != nil {
    return nil, err
  }
  defer f.Close()

  t, err := Parse(f)
  if err != nil {
    return nil, fmt.Errorf("%s: %w", path, err)
  }

  return t, nil
}

// Parse decodes an ISO-8859-1 export.
func Parse(
  r io.Reader,
) (
  *Table, error,
) {

  sc := bufio.NewScanner(charmap.ISO8859_1.NewDecoder().Reader(r))
  sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

  t := &Table{}
  cols := [4]int{-1, -1, -1, -1}
  line := 0

  for sc.Scan() {
    line++
    text := strings.TrimRight(sc.Text(), "\r\n")

    switch {
    case line <= HeaderLines:
      t.Header = append(t.Header, text)

    case line == ColumnLine:
      for i, name := range strings.Split(text, "\t") {
        name = strings.TrimSpace(name)
        t.Columns = append(t.Columns, name)
        for j, prefix := range []string{PosXColumn, ValueXColumn, PosYColumn, ValueYColumn} {
          if cols[j] < 0 && strings.HasPrefix(name, prefix) {
            cols[j] = i
          }
        }
      }
      for j, prefix := range []string{PosXColumn, ValueXColumn, PosYColumn, ValueYColumn} {
        if cols[j] < 0 {
          return nil, fmt.Errorf("%w: %q", ErrMissingColumn, prefix)
        }
      }

    default:
      if strings.TrimSpace(text) == "" {
        continue
      }
      fields := strings.Split(text, "\t")
      t.Records = append(t.Records, Record{
        PosX:   cell(fields, cols[0]),
        ValueX: cell(fields, cols[1]),
        PosY:   cell(fields, cols[2]),
        ValueY: cell(fields, cols[3]),
      })
    }
  }
  if err := sc.Err(); err != nil {
    return nil, err
  }

  if line < ColumnLine {
    return nil, ErrShortHeader
  }

  return t, nil
}

func cell(
  fields []string,
  i int,
) (
  float64,
) {
  if i >= len(fields) {
    return math.NaN()
  }
  return ParseDecimal(fields[i])
}

// ParseDecimal parses a number written with a comma as decimal separator.
// Anything that does not parse is reported as missing (NaN).
func ParseDecimal(
  s string,
) (
  float64,
) {

  s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")

  v, err := strconv.ParseFloat(s, 64)
  if err != nil {
    return math.NaN()
  }

  return v
}

// IsMissing reports whether v is a missing cell.
func IsMissing(v float64) bool {
  return math.IsNaN(v)
}
