package bitmap

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/bmp"

	"juliaset/misc"
	"juliaset/pixel"
)

func patternGrid(width, height int) *pixel.Grid {
	g := pixel.NewGrid(width, height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			g.SetRGB(x, y, pixel.RGB{R: uint8(10 * x), G: uint8(20 * y), B: uint8(x + y + 1)})
		}
	}
	return g
}

func TestHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, patternGrid(4, 2)); err != nil {
		t.Fatal(err)
	}
	b := buf.Bytes()
	if len(b) != 78 {
		t.Fatalf("expected 78 bytes, got %d", len(b))
	}

	le := binary.LittleEndian
	fields := []struct {
		name string
		got  uint32
		want uint32
	}{
		{"file size", le.Uint32(b[2:6]), 78},
		{"reserved", le.Uint32(b[6:10]), 0},
		{"pixel offset", le.Uint32(b[10:14]), 54},
		{"info size", le.Uint32(b[14:18]), 40},
		{"width", le.Uint32(b[18:22]), 4},
		{"height", le.Uint32(b[22:26]), 2},
		{"planes", uint32(le.Uint16(b[26:28])), 1},
		{"bits per pixel", uint32(le.Uint16(b[28:30])), 24},
		{"compression", le.Uint32(b[30:34]), 0},
		{"image size", le.Uint32(b[34:38]), 0},
		{"x resolution", le.Uint32(b[38:42]), 0},
		{"y resolution", le.Uint32(b[42:46]), 0},
		{"colors used", le.Uint32(b[46:50]), 0},
		{"colors important", le.Uint32(b[50:54]), 0},
	}
	if b[0] != 'B' || b[1] != 'M' {
		t.Errorf("expected signature BM, got %q", b[:2])
	}
	for _, f := range fields {
		if f.got != f.want {
			t.Errorf("%s: expected %d, got %d", f.name, f.want, f.got)
		}
	}
}

func TestPixelOrder(t *testing.T) {
	g := pixel.NewGrid(2, 2)
	g.SetRGB(0, 0, pixel.RGB{R: 0x11, G: 0x12, B: 0x13})
	g.SetRGB(1, 0, pixel.RGB{R: 0x21, G: 0x22, B: 0x23})
	g.SetRGB(0, 1, pixel.RGB{R: 0x31, G: 0x32, B: 0x33})
	g.SetRGB(1, 1, pixel.RGB{R: 0x41, G: 0x42, B: 0x43})

	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatal(err)
	}
	want := []byte{
		0x33, 0x32, 0x31, 0x43, 0x42, 0x41, 0, 0, // bottom row first, BGR, 2 padding bytes
		0x13, 0x12, 0x11, 0x23, 0x22, 0x21, 0, 0,
	}
	if got := buf.Bytes()[headerSize:]; !bytes.Equal(got, want) {
		t.Errorf("expected pixel data % x, got % x", want, got)
	}
}

func TestRowPadding(t *testing.T) {
	tests := []struct {
		width   int
		padding int
	}{
		{1, 1},
		{2, 2},
		{3, 3},
		{4, 0},
		{5, 1},
		{100, 0},
	}
	for _, test := range tests {
		if p := RowPadding(test.width); p != test.padding {
			t.Errorf("width %d: expected padding %d, got %d", test.width, test.padding, p)
		}
	}

	g := pixel.NewGrid(1, 3)
	g.Fill(pixel.RGB{R: 0xff, G: 0xff, B: 0xff})
	var buf bytes.Buffer
	if err := Encode(&buf, g); err != nil {
		t.Fatal(err)
	}
	data := buf.Bytes()[headerSize:]
	if len(data) != 3*4 {
		t.Fatalf("expected 12 bytes of pixel data, got %d", len(data))
	}
	for row := 0; row < 3; row++ {
		line := data[row*4 : row*4+4]
		if !bytes.Equal(line, []byte{0xff, 0xff, 0xff, 0}) {
			t.Errorf("row %d: expected one zero padding byte, got % x", row, line)
		}
	}
	if size := binary.LittleEndian.Uint32(buf.Bytes()[2:6]); size != 54+9 {
		t.Errorf("expected size field %d, got %d", 54+9, size)
	}
}

func TestDecode(t *testing.T) {
	for _, size := range [][2]int{{1, 1}, {3, 5}, {4, 2}, {17, 9}} {
		g := patternGrid(size[0], size[1])
		var buf bytes.Buffer
		if err := Encode(&buf, g); err != nil {
			t.Fatal(err)
		}
		img, err := bmp.Decode(&buf)
		if err != nil {
			t.Fatalf("%dx%d: %s", size[0], size[1], err)
		}
		if img.Bounds() != g.Bounds() {
			t.Fatalf("expected bounds %v, got %v", g.Bounds(), img.Bounds())
		}
		for y := 0; y < size[1]; y++ {
			for x := 0; x < size[0]; x++ {
				want := g.RGBAt(x, y)
				got := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
				if got.R != want.R || got.G != want.G || got.B != want.B {
					t.Errorf("%dx%d pixel (%d,%d): expected %v, got %v", size[0], size[1], x, y, want, got)
				}
			}
		}
	}
}

type failingWriter struct {
	n int
}

var errDiskFull = errors.New("disk full")

func (fw *failingWriter) Write(p []byte) (int, error) {
	if fw.n <= 0 {
		return 0, errDiskFull
	}
	fw.n--
	return len(p), nil
}

func TestEncodeErrors(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, pixel.NewGrid(0, 3)); err == nil {
		t.Error("expected an empty image to be rejected")
	}
	for n := 0; n < 4; n++ {
		if err := Encode(&failingWriter{n: n}, patternGrid(3, 3)); !errors.Is(err, errDiskFull) {
			t.Errorf("failing after %d writes: expected %v, got %v", n, errDiskFull, err)
		}
	}
}

func TestWriteFile(t *testing.T) {
	name := filepath.Join(t.TempDir(), "out.bmp")
	if err := WriteFile(name, patternGrid(4, 2)); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(name)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() != 78 {
		t.Errorf("expected 78 bytes on disk, got %d", info.Size())
	}

	missing := filepath.Join(t.TempDir(), "nope", "out.bmp")
	if err := WriteFile(missing, patternGrid(4, 2)); !misc.IsKind(err, misc.IO) {
		t.Errorf("expected IO error, got %v", err)
	}
}
