// Package runlog echoes result lines to the console and keeps them for the
// log.txt written next to saved figures.
package runlog

import (
  "bufio"
  "fmt"
  "io"
  "os"
  "path/filepath"
  "time"
)

// Log collects printed lines.
type Log struct {
  out   io.Writer
  lines []string
}

// New returns a Log echoing to out. A nil out keeps lines silently.
func New(
  out io.Writer,
) (
  *Log,
) {
  if out == nil {
    out = io.Discard
  }
  return &Log{out: out}
}

// Printf formats, prints and records one entry.
func (l *Log) Printf(format string, a ...any) {
  str := fmt.Sprintf(format, a...)
  l.lines = append(l.lines, str)
  fmt.Fprint(l.out, str)
}

// Lines returns the recorded entries.
func (l *Log) Lines() []string {
  return l.lines
}

// Dir returns root/<date>/<time>[: note] for t.
func Dir(
  root, note string,
  t time.Time,
) (
  string,
) {

  dir := filepath.Join(root, t.Format("2006-Jan-02"), t.Format("15:04:05"))
  if note != "" {
    dir += ": " + note
  }

  return dir
}

// Write creates dir if needed and writes every entry to dir/log.txt.
func (l *Log) Write(
  dir string,
) (
  err error,
) {

  if err := os.MkdirAll(dir, 0755); err != nil {
    return err
  }

  txt, err := os.Create(filepath.Join(dir, "log.txt"))
  if err != nil {
    return err
  }
  defer func() {
    if cerr := txt.Close(); err == nil {
      err = cerr
    }
  }()

  w := bufio.NewWriter(txt)
  for _, line := range l.lines {
    if _, err := w.WriteString(line); err != nil {
      return err
    }
  }

  return w.Flush()
}
