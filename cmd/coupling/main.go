// Command coupling computes the coupling coefficient between two fibers or
// waveguides and the matching coupling loss in dB.
//
// Values not given as flags are asked for in order a..f.
package main

import (
  "errors"
  "flag"
  "fmt"
  "io"
  "math"
  "os"

  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/coupling"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/prompt"
)

func main() {

  preset := flags()

  if err := run(os.Stdin, os.Stdout, preset); err != nil {
    fmt.Println(message(err))
    os.Exit(1)
  }
}

// flags returns the parameters given on the command line, NaN where absent.
func flags() (
  [6]float64,
) {

  var preset [6]float64

  for i, name := range coupling.Names {
    flag.Float64Var(&preset[i], name, math.NaN(), "parameter "+name+"; asked when absent")
  }
  flag.Parse()

  return preset
}

func run(
  in io.Reader,
  out io.Writer,
  preset [6]float64,
) (
  error,
) {

  p := prompt.New(in, out)
  values := make([]float64, 0, len(coupling.Names))

  for i, name := range coupling.Names {
    if !math.IsNaN(preset[i]) {
      values = append(values, preset[i])
      continue
    }
    v, err := p.Float(fmt.Sprintf("Enter the value for %s: ", name))
    if err != nil {
      return err
    }
    values = append(values, v)
  }

  params, err := coupling.FromSlice(values)
  if err != nil {
    return err
  }

  res, err := coupling.Compute(params)
  if err != nil {
    return err
  }

  fmt.Fprintf(out, "The coupling coefficient is: %v\n", res.Eta)
  fmt.Fprintf(out, "The coupling loss is: %v dB\n", res.LossDB)

  return nil
}

func message(
  err error,
) (
  string,
) {

  switch {
  case errors.Is(err, prompt.ErrNotNumeric):
    return "Error: an invalid value was entered."
  case errors.Is(err, coupling.ErrInvalidInput):
    return fmt.Sprintf("Error: invalid input (%v).", err)
  }

  return fmt.Sprintf("Error: %v", err)
}
