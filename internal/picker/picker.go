// Package picker shows a native file-open dialog.
package picker

import (
  "fyne.io/fyne/v2"
  "fyne.io/fyne/v2/app"
  "fyne.io/fyne/v2/dialog"
  "fyne.io/fyne/v2/storage"
  "fyne.io/fyne/v2/widget"
)

const appID = "com.github.hamletthehamster.beamprofile"

// Dialog asks for one file with an extension in Exts.
type Dialog struct {
  Title string
  Exts  []string // e.g. ".txt"
}

// Choose blocks until the user picks a file or dismisses the dialog. A
// dismissed dialog returns "" and a nil error. Fyne runs one event loop per
// process, so Choose may be called once.
func (d Dialog) Choose() (string, error) {

  a := app.NewWithID(appID)
  win := a.NewWindow(d.Title)
  win.SetContent(widget.NewLabel(d.Title))
  win.Resize(fyne.NewSize(900, 600))

  var path string
  var chooseErr error

  fd := dialog.NewFileOpen(func(rc fyne.URIReadCloser, err error) {
    defer a.Quit()
    if err != nil {
      chooseErr = err
      return
    }
    if rc == nil {
      return
    }
    defer rc.Close()
    path = rc.URI().Path()
  }, win)
  fd.SetFilter(storage.NewExtensionFileFilter(d.Exts))
  fd.Resize(fyne.NewSize(880, 580))
  fd.Show()

  win.ShowAndRun()

  return path, chooseErr
}
