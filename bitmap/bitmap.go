// Package bitmap writes packed 24-bit pixel grids as uncompressed BMP files.
//
// The layout is the canonical BITMAPFILEHEADER + BITMAPINFOHEADER pair
// followed by bottom-up rows of blue, green, red bytes, each row padded with
// zeros to a multiple of four bytes.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
package bitmap

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
	"math"

	"juliaset/misc"
)

const (
	fileHeaderSize = 14
	infoHeaderSize = 40
	headerSize     = fileHeaderSize + infoHeaderSize
	bitsPerPixel   = 24
	bytesPerPixel  = bitsPerPixel / 8
)

// Image is a grid of 0xRRGGBB pixels that can hand out whole rows.
type Image interface {
	Bounds() image.Rectangle
	Row(y int) []uint32
}

type fileHeader struct {
	Type      [2]byte
	Size      uint32
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32
}

type infoHeader struct {
	Size            uint32
	Width           int32
	Height          int32
	Planes          uint16
	BitCount        uint16
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// FileSize is the value of the header's size field: the headers plus three
// bytes per pixel. Row padding is not counted.
func FileSize(width, height int) int {
	return headerSize + width*height*bytesPerPixel
}

// RowPadding is the number of zero bytes closing each row.
func RowPadding(width int) int {
	return (4 - (width*bytesPerPixel)%4) % 4
}

// Encode writes img as a 24-bit BMP to w.
func Encode(w io.Writer, img Image) error {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("cannot encode an empty %dx%d image", width, height)
	}
	if width > math.MaxInt32 || height > math.MaxInt32 || uint64(FileSize(width, height)) > math.MaxUint32 {
		return fmt.Errorf("%dx%d image is too large for a bitmap", width, height)
	}

	fh := fileHeader{
		Type:    [2]byte{'B', 'M'},
		Size:    uint32(FileSize(width, height)),
		OffBits: headerSize,
	}
	ih := infoHeader{
		Size:     infoHeaderSize,
		Width:    int32(width),
		Height:   int32(height),
		Planes:   1,
		BitCount: bitsPerPixel,
	}
	if err := binary.Write(w, binary.LittleEndian, &fh); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, &ih); err != nil {
		return err
	}

	// Trailing padding bytes stay zero across rows.
	line := make([]byte, width*bytesPerPixel+RowPadding(width))
	for y := bounds.Max.Y - 1; y >= bounds.Min.Y; y-- {
		row := img.Row(y)
		if len(row) != width {
			return fmt.Errorf("row %d has %d pixels, expected %d", y, len(row), width)
		}
		for x, v := range row {
			line[x*3] = byte(v)
			line[x*3+1] = byte(v >> 8)
			line[x*3+2] = byte(v >> 16)
		}
		if _, err := w.Write(line); err != nil {
			return err
		}
	}
	return nil
}

// WriteFile encodes img into the file at path, replacing it.
func WriteFile(path string, img Image) error {
	return misc.WriteFile(path, func(w io.Writer) error {
		return Encode(w, img)
	})
}
