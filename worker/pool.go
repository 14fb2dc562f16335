package worker

import (
	"fmt"
	"image"
	"sync"

	"github.com/BrugadaSyndrome/bslogger"
	"golang.org/x/sync/errgroup"

	"juliaset/julia"
	"juliaset/misc"
	"juliaset/pixel"
	"juliaset/task"
)

// Pool runs one worker per task and joins them.
//
// Every task owns a disjoint set of rows, so workers write straight into the
// canvas without locking. SerializeWrites puts a mutex around each write
// anyway; the output is identical, only slower.
type Pool struct {
	canvas          Canvas
	julia           julia.Julia
	logger          bslogger.Logger
	serializeWrites bool
}

func NewPool(j julia.Julia, canvas Canvas, serializeWrites bool) (*Pool, error) {
	settings := j.Settings()
	if canvas.Bounds() != image.Rect(0, 0, settings.Width, settings.Height) {
		return nil, fmt.Errorf("canvas %v does not match a %dx%d image", canvas.Bounds(), settings.Width, settings.Height)
	}

	pool := &Pool{
		canvas:          canvas,
		julia:           j,
		logger:          misc.NewLogger("Pool"),
		serializeWrites: serializeWrites,
	}
	if serializeWrites {
		pool.canvas = &lockedCanvas{canvas: canvas}
	}
	return pool, nil
}

// Stats are the totals of all workers of one run.
type Stats struct {
	PixelsColored int
	RowsProcessed int
}

// Run starts every worker at once, waits for all of them and returns their
// totals. The first worker error is returned after the join.
func (p *Pool) Run(tasks []task.Task) (Stats, error) {
	workers := make([]Worker, len(tasks))
	var g errgroup.Group

	for i, t := range tasks {
		workers[i] = NewWorker(t.ID, p.julia, p.canvas)
		w := &workers[i]
		p.logger.Infof("Launched worker: %d %s", t.ID, t.String())
		g.Go(func() error {
			return w.Process(t)
		})
	}

	if err := g.Wait(); err != nil {
		return Stats{}, err
	}

	var stats Stats
	for i := range workers {
		stats.PixelsColored += workers[i].PixelsColored()
		stats.RowsProcessed += workers[i].RowsProcessed()
	}
	return stats, nil
}

type lockedCanvas struct {
	mutex  sync.Mutex
	canvas Canvas
}

func (lc *lockedCanvas) Bounds() image.Rectangle {
	return lc.canvas.Bounds()
}

func (lc *lockedCanvas) SetRGB(x, y int, c pixel.RGB) {
	lc.mutex.Lock()
	lc.canvas.SetRGB(x, y, c)
	lc.mutex.Unlock()
}
