package julia

import (
	"math"

	"juliaset/misc"
	"juliaset/pixel"
)

const (
	PowerPolicy ColorPolicy = "power"
	LogPolicy   ColorPolicy = "log"
)

// ColorPolicy selects how an escape distance becomes a hue.
type ColorPolicy string

const (
	colorValue          = 0.9
	logSaturation       = 0.8
	powerSaturationSpan = 0.6

	// Keeps the log policy away from log(0) and from dividing by log(1).
	distanceEpsilon = 1e-9
)

// ColorSettings are the palette tunables.
type ColorSettings struct {
	Base     float64     `json:"Base,default=2"`
	Constant float64     `json:"Constant,default=0.5"`
	Exponent float64     `json:"Exponent,default=0.9"`
	Policy   ColorPolicy `json:"Policy,default=power,options=power|log"`
	Scale    float64     `json:"Scale,default=0.1"`
}

func DefaultColorSettings() ColorSettings {
	return ColorSettings{
		Base:     2,
		Constant: 0.5,
		Exponent: 0.9,
		Policy:   PowerPolicy,
		Scale:    0.1,
	}
}

func (cs *ColorSettings) Verify() error {
	switch cs.Policy {
	case PowerPolicy:
		if cs.Scale == 0 {
			return misc.ConfigurationError("verify color settings", "power policy needs a non-zero scale")
		}
		if cs.Exponent < 0 {
			return misc.ConfigurationError("verify color settings", "exponent must not be negative, got %g", cs.Exponent)
		}
	case LogPolicy:
		if cs.Base <= 0 {
			return misc.ConfigurationError("verify color settings", "log policy needs a positive base, got %g", cs.Base)
		}
	default:
		return misc.ConfigurationError("verify color settings", "unknown color policy %q", cs.Policy)
	}
	return nil
}

// Map colors a normalized escape distance in [0, 1) with the selected policy.
func (cs *ColorSettings) Map(distance float64) pixel.RGB {
	if cs.Policy == LogPolicy {
		return LogColor(distance, cs.Base, cs.Constant, cs.Scale)
	}
	return PowerColor(distance, cs.Exponent, cs.Constant, cs.Scale)
}

// PowerColor sweeps the hue with the distance and fades saturation with
// distance^exponent.
func PowerColor(distance float64, exponent float64, constant float64, scale float64) pixel.RGB {
	color := math.Pow(distance, exponent)
	hue := wrapUnit(constant + distance/scale)
	return HSVToRGB(hue*360, 1-powerSaturationSpan*color, colorValue)
}

// LogColor derives the hue in degrees from -log(base)/log(distance). The
// distance is clamped into [ε, 1-ε] first.
func LogColor(distance float64, base float64, constant float64, scale float64) pixel.RGB {
	distance = math.Max(distanceEpsilon, math.Min(1-distanceEpsilon, distance))
	color := -math.Log(base) / math.Log(distance)
	return HSVToRGB(constant+scale*color, logSaturation, colorValue)
}

// HSVToRGB converts hue in degrees and saturation, value in [0, 1].
// https://en.wikipedia.org/wiki/HSL_and_HSV#HSV_to_RGB
func HSVToRGB(h, s, v float64) pixel.RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	if math.IsNaN(h) {
		h = 0
	}
	s = clampUnit(s)
	v = clampUnit(v)

	c := v * s
	x := c * (1 - math.Abs(math.Mod(h/60.0, 2)-1))
	m := v - c

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}

	return pixel.RGB{
		R: channel(r + m),
		G: channel(g + m),
		B: channel(b + m),
	}
}

func channel(f float64) uint8 {
	return uint8(clampUnit(f) * 255)
}

func clampUnit(f float64) float64 {
	if math.IsNaN(f) || f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

func wrapUnit(f float64) float64 {
	f = math.Mod(f, 1)
	if f < 0 {
		f++
	}
	return f
}
