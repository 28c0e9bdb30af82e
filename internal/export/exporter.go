// Package export turns board content into SVG markup, JPEG snapshots and PDF
// pages.
package export

import (
	"log"
	"math"
	"sync"

	"ShapeBoard/internal/state"
)

// Job is an export request. The markup is captured when the job is built, so
// later board edits do not leak into an in-flight export.
type Job struct {
	SVG      string
	Width    int
	Height   int
	Filename string
}

// Result is delivered once per job.
type Result struct {
	Filename string
	Data     []byte
	Err      error
}

// NewJob captures the shapes as markup for a w x h surface.
func NewJob(shapes []state.Shape, w, h float64, filename string) Job {
	return Job{
		SVG:      MarshalSVG(shapes, w, h),
		Width:    int(math.Round(math.Max(w, 0))),
		Height:   int(math.Round(math.Max(h, 0))),
		Filename: filename,
	}
}

// Exporter rasterizes jobs to JPEG.
type Exporter struct {
	quality int
	wg      sync.WaitGroup
}

func NewExporter(quality int) *Exporter {
	return &Exporter{quality: quality}
}

// Export runs the job and blocks until the image is encoded.
func (e *Exporter) Export(job Job) Result {
	res := Result{Filename: job.Filename}
	img, err := Rasterize(job.SVG, job.Width, job.Height)
	if err != nil {
		res.Err = err
		return res
	}
	res.Data, res.Err = EncodeJPEG(img, e.quality)
	return res
}

// Submit runs the job on its own goroutine and calls done with the result.
// There is no cancellation; done always fires exactly once.
func (e *Exporter) Submit(job Job, done func(Result)) {
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		res := e.Export(job)
		if res.Err != nil {
			log.Printf("[EXPORT] %s failed: %v", job.Filename, res.Err)
		} else {
			log.Printf("[EXPORT] %s ready (%dx%d, %d bytes)", job.Filename, job.Width, job.Height, len(res.Data))
		}
		done(res)
	}()
}

// Wait blocks until every submitted job has delivered its result.
func (e *Exporter) Wait() {
	e.wg.Wait()
}
