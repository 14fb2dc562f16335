// Package julia evaluates the quadratic Julia map z ← z² + c by escape time
// and turns iteration counts into colors.
package julia

import (
	"juliaset/pixel"
)

type Julia struct {
	escapeColor pixel.RGB
	settings    Settings
	tolerance2  float64
}

// NewJulia verifies a copy of settings and returns an evaluator for it.
func NewJulia(settings Settings) (Julia, error) {
	if err := settings.Verify(); err != nil {
		return Julia{}, err
	}

	julia := Julia{
		escapeColor: pixel.Unpack(settings.EscapeColor),
		settings:    settings,
		tolerance2:  settings.Tolerance * settings.Tolerance,
	}

	return julia, nil
}

// Settings returns the verified settings, derived bounds included.
func (j *Julia) Settings() Settings {
	return j.settings
}

// EscapeColor is the color of points that never escape.
func (j *Julia) EscapeColor() pixel.RGB {
	return j.escapeColor
}

// PixelToComplex converts the (row, column) pixel of the image to its point
// on the complex plane. Row 0 is the top of the image, at MaxY.
func (j *Julia) PixelToComplex(row int, column int) (float64, float64) {
	x := j.settings.MinX + float64(column)*j.settings.XRange/float64(j.settings.Width)
	y := j.settings.MaxY - float64(row)*j.settings.YRange/float64(j.settings.Height)
	return x, y
}

// EscapeTime iterates z ← z² + c from z0 = x + yi and returns how many
// iterations ran before |z| exceeded the tolerance, or Precision when it
// never did.
// https://en.wikipedia.org/wiki/Julia_set#Pseudocode
func (j *Julia) EscapeTime(x float64, y float64) int {
	cx, cy := j.settings.C.Real, j.settings.C.Imag
	x1, y1 := x, y
	x2, y2 := x1*x1, y1*y1
	iteration := 0
	for (x2+y2) <= j.tolerance2 && iteration < j.settings.Precision {
		y1 = 2*x1*y1 + cy
		x1 = x2 - y2 + cx
		x2 = x1 * x1
		y2 = y1 * y1
		iteration++
	}
	return iteration
}

// Color maps an escape time to its color. It returns false for points that
// never escaped; those keep the grid's escape color.
func (j *Julia) Color(iterations int) (pixel.RGB, bool) {
	if iterations >= j.settings.Precision {
		return j.escapeColor, false
	}
	distance := float64(iterations) / float64(j.settings.Precision)
	return j.settings.Color.Map(distance), true
}
