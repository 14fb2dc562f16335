package julia

import (
	"fmt"

	"juliaset/misc"
)

// Complex is a point of the complex plane as it appears in settings files.
type Complex struct {
	Real float64 `json:"Real,default=-0.79"`
	Imag float64 `json:"Imag,default=0.15"`
}

func (c Complex) String() string {
	return fmt.Sprintf("(%g%+gi)", c.Real, c.Imag)
}

// Settings are the render and color parameters of one run. They are fixed
// once Verify has filled in the derived plane bounds.
type Settings struct {
	AspectHeight int           `json:"AspectHeight,default=3"`
	AspectWidth  int           `json:"AspectWidth,default=4"`
	C            Complex       `json:"C"`
	CenterX      float64       `json:"CenterX,default=0"`
	CenterY      float64       `json:"CenterY,default=0"`
	Color        ColorSettings `json:"Color"`
	EscapeColor  uint32        `json:"EscapeColor,optional"`
	Height       int           `json:"Height,optional"`
	Precision    int           `json:"Precision,default=200"`
	Tolerance    float64       `json:"Tolerance,default=2"`
	Width        int           `json:"Width,default=3000"`
	XRange       float64       `json:"XRange,default=3"`

	// Recomputed by Verify; loaded values are overwritten.
	YRange float64 `json:"YRange,optional"`
	MinX   float64 `json:"MinX,optional"`
	MaxX   float64 `json:"MaxX,optional"`
	MinY   float64 `json:"MinY,optional"`
	MaxY   float64 `json:"MaxY,optional"`
}

// DefaultSettings renders the first of the classic c = -0.79+0.15i sets at
// 3000x2250 with the power palette.
func DefaultSettings() Settings {
	return Settings{
		AspectHeight: 3,
		AspectWidth:  4,
		C:            Complex{Real: -0.79, Imag: 0.15},
		Color:        DefaultColorSettings(),
		Precision:    200,
		Tolerance:    2,
		Width:        3000,
		XRange:       3,
	}
}

// Verify rejects settings that cannot produce an image and derives the
// height and plane bounds. A zero Height is derived from the aspect ratio.
func (s *Settings) Verify() error {
	if s.AspectWidth <= 0 || s.AspectHeight <= 0 {
		return misc.ConfigurationError("verify settings", "aspect ratio must be positive, got %d:%d", s.AspectWidth, s.AspectHeight)
	}
	if s.Width <= 0 {
		return misc.ConfigurationError("verify settings", "width must be positive, got %d", s.Width)
	}
	if s.Height == 0 {
		s.Height = s.Width * s.AspectHeight / s.AspectWidth
	}
	if s.Height <= 0 {
		return misc.ConfigurationError("verify settings", "height must be positive, got %d", s.Height)
	}
	if s.XRange <= 0 {
		return misc.ConfigurationError("verify settings", "x range must be positive, got %g", s.XRange)
	}
	if s.Precision < 1 {
		return misc.ConfigurationError("verify settings", "precision must be at least 1, got %d", s.Precision)
	}
	if s.Tolerance <= 0 {
		return misc.ConfigurationError("verify settings", "tolerance must be positive, got %g", s.Tolerance)
	}
	if s.EscapeColor > 0xffffff {
		return misc.ConfigurationError("verify settings", "escape color %#x is not a 24-bit RGB value", s.EscapeColor)
	}
	if err := s.Color.Verify(); err != nil {
		return err
	}

	s.YRange = s.XRange * float64(s.AspectHeight) / float64(s.AspectWidth)
	s.MinX = s.CenterX - s.XRange/2
	s.MaxX = s.CenterX + s.XRange/2
	s.MinY = s.CenterY - s.YRange/2
	s.MaxY = s.CenterY + s.YRange/2
	return nil
}

func (s Settings) String() string {
	output := "{Julia "
	output += fmt.Sprintf("Size: %dx%d ", s.Width, s.Height)
	output += fmt.Sprintf("Center: (%g, %g) ", s.CenterX, s.CenterY)
	output += fmt.Sprintf("Range: %gx%g ", s.XRange, s.YRange)
	output += fmt.Sprintf("C: %s ", s.C)
	output += fmt.Sprintf("Precision: %d ", s.Precision)
	output += fmt.Sprintf("Tolerance: %g ", s.Tolerance)
	output += fmt.Sprintf("Color: %s}", s.Color.Policy)
	return output
}
