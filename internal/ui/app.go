// Package ui is the fyne desktop front-end.
package ui

import (
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/widget"

	"ShapeBoard/internal/config"
	"ShapeBoard/internal/editor"
	"ShapeBoard/internal/export"
)

// Desktop wires one editor to a window.
type Desktop struct {
	cfg      config.Config
	editor   *editor.Editor
	board    *BoardWidget
	exporter *export.Exporter
	window   fyne.Window
	status   *widget.Label
}

// NewDesktop builds the window content inside a.
func NewDesktop(a fyne.App, cfg config.Config) *Desktop {
	d := &Desktop{
		cfg:      cfg,
		editor:   editor.New(cfg),
		exporter: export.NewExporter(cfg.Export.JPEGQuality),
		window:   a.NewWindow("ShapeBoard"),
		status:   widget.NewLabel("Ready"),
	}
	d.board = NewBoardWidget(d.editor)
	d.editor.OnChange = d.board.Refresh

	content := container.NewBorder(NewToolbar(d), d.status, nil, nil, d.board)
	d.window.SetContent(content)
	d.window.Resize(fyne.NewSize(float32(cfg.Canvas.Width), float32(cfg.Canvas.Height)+80))

	undo := &desktop.CustomShortcut{KeyName: fyne.KeyZ, Modifier: fyne.KeyModifierShortcutDefault}
	d.window.Canvas().AddShortcut(undo, func(fyne.Shortcut) { d.Undo() })
	return d
}

// SetStatus may be called from any goroutine.
func (d *Desktop) SetStatus(text string) {
	fyne.Do(func() {
		d.status.SetText(text)
	})
}

func (d *Desktop) Undo() {
	ok, err := d.editor.Undo()
	switch {
	case err != nil:
		log.Printf("[UI] undo: %v", err)
		d.SetStatus("Undo failed")
	case !ok:
		d.SetStatus("Nothing to undo")
	}
}

// RunApp opens the desktop window and blocks until it is closed.
func RunApp(cfg config.Config) {
	d := NewDesktop(app.New(), cfg)
	d.window.ShowAndRun()
	d.exporter.Wait()
}
