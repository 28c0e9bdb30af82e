package ui

import (
	"fmt"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/dialog"

	"ShapeBoard/internal/export"
)

// SaveImage asks for a destination and writes a JPEG of the board at the
// widget's displayed size.
func (d *Desktop) SaveImage() {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			d.SetStatus(fmt.Sprintf("Save failed: %v", err))
			return
		}
		if w == nil {
			return
		}
		d.writeImage(w)
	}, d.window)
	fd.SetFileName(d.cfg.Export.Filename)
	fd.Show()
}

func (d *Desktop) writeImage(w fyne.URIWriteCloser) {
	size := d.board.Size()
	job := d.editor.ExportJob(float64(size.Width), float64(size.Height), w.URI().Name())
	d.SetStatus("Exporting...")
	d.exporter.Submit(job, func(res export.Result) {
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[UI] close %s: %v", res.Filename, err)
			}
		}()
		if res.Err != nil {
			d.SetStatus(fmt.Sprintf("Export failed: %v", res.Err))
			return
		}
		if _, err := w.Write(res.Data); err != nil {
			log.Printf("[UI] write %s: %v", res.Filename, err)
			d.SetStatus("Error writing image")
			return
		}
		d.SetStatus(fmt.Sprintf("Saved %s", res.Filename))
	})
}

// SavePDF writes a vector PDF of the board at the configured canvas size.
func (d *Desktop) SavePDF() {
	fd := dialog.NewFileSave(func(w fyne.URIWriteCloser, err error) {
		if err != nil {
			d.SetStatus(fmt.Sprintf("Export failed: %v", err))
			return
		}
		if w == nil {
			return
		}
		defer func() {
			if err := w.Close(); err != nil {
				log.Printf("[UI] close %s: %v", w.URI().Name(), err)
			}
		}()
		shapes := d.editor.Board().Shapes()
		if err := export.WritePDF(w, shapes, d.cfg.Canvas.Width, d.cfg.Canvas.Height); err != nil {
			log.Printf("[UI] pdf: %v", err)
			d.SetStatus("Error writing PDF")
			return
		}
		d.SetStatus(fmt.Sprintf("Exported %d shapes to %s", len(shapes), w.URI().Name()))
	}, d.window)
	fd.SetFileName(d.cfg.Export.PDFFilename)
	fd.Show()
}
