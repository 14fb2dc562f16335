package worker

import (
	"fmt"
	"image"
	"time"

	"github.com/BrugadaSyndrome/bslogger"

	"juliaset/julia"
	"juliaset/misc"
	"juliaset/pixel"
	"juliaset/task"
)

// Canvas is what workers draw into.
type Canvas interface {
	Bounds() image.Rectangle
	SetRGB(x, y int, c pixel.RGB)
}

type Worker struct {
	canvas        Canvas
	id            int
	julia         julia.Julia
	logger        bslogger.Logger
	pixelsColored int
	rowsProcessed int
}

func NewWorker(id int, j julia.Julia, canvas Canvas) Worker {
	return Worker{
		canvas: canvas,
		id:     id,
		julia:  j,
		logger: misc.NewLogger(fmt.Sprintf("Worker %d", id)),
	}
}

// PixelsColored is the number of escaped pixels this worker has written.
func (w *Worker) PixelsColored() int {
	return w.pixelsColored
}

func (w *Worker) RowsProcessed() int {
	return w.rowsProcessed
}

// Process evaluates every pixel of the task's rows and writes the escaped
// ones to the canvas. Points that never escape are left untouched.
func (w *Worker) Process(t task.Task) error {
	bounds := w.canvas.Bounds()
	if t.Stride < 1 {
		return fmt.Errorf("worker %d: %s has no stride", w.id, t.String())
	}
	if t.RowCount() > 0 && (t.Start < bounds.Min.Y || t.Start+(t.RowCount()-1)*t.Stride >= bounds.Max.Y) {
		return fmt.Errorf("worker %d: %s is outside the canvas %v", w.id, t.String(), bounds)
	}

	var startTime = time.Now()
	width := bounds.Dx()
	for row := t.Start; row < t.End; row += t.Stride {
		for column := 0; column < width; column++ {
			iterations := w.julia.EscapeTime(w.julia.PixelToComplex(row, column))
			if color, escaped := w.julia.Color(iterations); escaped {
				w.canvas.SetRGB(column, row, color)
				w.pixelsColored++
			}
		}
		w.rowsProcessed++
	}

	w.logger.Debugf("Processed %d rows (%d pixels colored) in %s", w.rowsProcessed, w.pixelsColored, time.Since(startTime))
	return nil
}
