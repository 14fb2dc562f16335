package julia

import (
	"testing"

	"juliaset/pixel"
)

func TestHSVToRGBSectors(t *testing.T) {
	tests := []struct {
		hue  float64
		want pixel.RGB
	}{
		{0, pixel.RGB{R: 255}},
		{60, pixel.RGB{R: 255, G: 255}},
		{120, pixel.RGB{G: 255}},
		{180, pixel.RGB{G: 255, B: 255}},
		{240, pixel.RGB{B: 255}},
		{300, pixel.RGB{R: 255, B: 255}},
		{360, pixel.RGB{R: 255}},
		{-120, pixel.RGB{B: 255}},
		{720 + 120, pixel.RGB{G: 255}},
	}
	for _, test := range tests {
		t.Run(test.want.String(), func(it *testing.T) {
			if c := HSVToRGB(test.hue, 1, 1); c != test.want {
				it.Errorf("hue %g: expected %v, got %v", test.hue, test.want, c)
			}
		})
	}

	if c := HSVToRGB(200, 0, 0.5); c.R != c.G || c.G != c.B || c.R != 127 {
		t.Errorf("zero saturation should be gray 127, got %v", c)
	}
}

func TestPowerColorRange(t *testing.T) {
	cs := DefaultColorSettings()
	for i := 0; i < 1000; i++ {
		d := float64(i) / 1000
		c := cs.Map(d)
		// value is fixed at 0.9, so no channel can exceed 229
		if c.R > 229 || c.G > 229 || c.B > 229 {
			t.Fatalf("distance %g: channel above value ceiling in %v", d, c)
		}
	}
}

func TestPowerColor(t *testing.T) {
	// distance 0: hue 0.5*360 = 180, saturation 1, value 0.9 => cyan at 229
	if c := PowerColor(0, 0.9, 0.5, 0.1); c != (pixel.RGB{G: 229, B: 229}) {
		t.Errorf("expected cyan, got %v", c)
	}
}

func TestLogColorGuards(t *testing.T) {
	cs := ColorSettings{Policy: LogPolicy, Base: 2, Constant: 0.25, Scale: 0.1}
	if err := cs.Verify(); err != nil {
		t.Fatal(err)
	}
	for _, d := range []float64{0, 1e-300, 0.001, 0.5, 0.999999, 1} {
		c := cs.Map(d)
		if c == (pixel.RGB{}) {
			t.Errorf("distance %g: expected a color, got black", d)
		}
		if c.R > 229 || c.G > 229 || c.B > 229 {
			t.Errorf("distance %g: channel above value ceiling in %v", d, c)
		}
	}
}

func TestLogColor(t *testing.T) {
	// -log(2)/log(0.5) = 1, so the hue is 0.5 + 0.1 = 0.6 degrees: red
	cs := DefaultColorSettings()
	cs.Policy = LogPolicy
	want := pixel.RGB{R: 229, G: 47, B: 45}
	if got := cs.Map(0.5); got != want {
		t.Errorf("expected %v, got %v", want, got)
	}
}

func TestLogColorNegativeHue(t *testing.T) {
	// base < 1 makes the log term negative; the hue must still wrap into range
	a := LogColor(0.5, 0.5, 0, 0.3)
	b := LogColor(0.5, 0.5, 360, 0.3)
	if a != b {
		t.Errorf("hue offsets one turn apart should match: %v vs %v", a, b)
	}
}
