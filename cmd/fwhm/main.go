// Command fwhm measures the full width at half maximum of a beam profile
// scan along X and Y, directly and from a Gaussian fit, and plots the
// profiles.
//
//  fwhm                          # file dialog, then prompts
//  fwhm -file scan.txt -type 1 -peaks 2
//  fwhm -file scan.txt -type 2 -peaks 1 -show=false -save plots -note "chip 3"
package main

import (
  "flag"
  "fmt"
  "log"
  "os"
  "time"

  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/beam"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/picker"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/profile"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/prompt"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/render"
  "github.com/HamletTheHamster/Beam-Profiling-in-Go/internal/runlog"
)

func main() {

  cfg, show, slide, save, note := flags()

  logpath := ""
  if save != "" {
    logpath = runlog.Dir(save, note, time.Now())
  }

  var renderers render.Multi
  if show {
    renderers = append(renderers, render.Gnuplot{Persist: true})
  }
  if logpath != "" {
    renderers = append(renderers, render.Files{Dir: logpath, Slide: slide})
  }

  chooser := picker.Dialog{Title: "Select a scan file", Exts: []string{".txt"}}
  logFile := runlog.New(os.Stdout)

  rep, err := beam.Start(cfg, chooser, prompt.New(os.Stdin, os.Stdout), renderers, logFile)
  if err != nil {
    log.Fatalf("fwhm: %v", err)
  }
  if rep == nil {
    return
  }

  if logpath != "" {
    if err := logFile.Write(logpath); err != nil {
      log.Fatalf("fwhm: %v", err)
    }
    fmt.Printf("\nSaved to %s\n", logpath)
  }
}

func flags() (
  beam.Config, bool, bool, string, string,
) {

  var cfg beam.Config
  var guide int
  var show, slide bool
  var save, note string

  flag.StringVar(&cfg.Path, "file", "", "scan export (.txt); a file dialog opens when empty")
  flag.IntVar(&guide, "type", 0, "1 for optical fiber, 2 for waveguide; asked when 0")
  flag.IntVar(&cfg.XPeaks, "peaks", 0, "number of peaks in the X signal; asked when 0")
  flag.IntVar(&cfg.YPeaks, "ypeaks", 1, "number of peaks in the Y signal")
  flag.IntVar(&cfg.Radius, "window", profile.DefaultWindowRadius, "samples searched either side of the peak when a signal has several peaks")
  flag.BoolVar(&show, "show", true, "open a gnuplot window per figure")
  flag.BoolVar(&slide, "slide", false, "format saved figures for slide presentation")
  flag.StringVar(&save, "save", "", "folder to save figures and log.txt under")
  flag.StringVar(&note, "note", "", "note to append to the saved folder name")
  flag.Parse()

  cfg.Guide = beam.Guide(guide)

  if guide != 0 && !cfg.Guide.Valid() {
    fmt.Println("flag.Parse(): -type must be 1 (fiber) or 2 (waveguide).")
    os.Exit(1)
  }

  if cfg.XPeaks < 0 || cfg.YPeaks < 1 {
    fmt.Println("flag.Parse(): peak counts must be at least 1.")
    os.Exit(1)
  }

  if note != "" && save == "" {
    fmt.Println("flag.Parse(): -note needs -save.")
    os.Exit(1)
  }

  return cfg, show, slide, save, note
}
