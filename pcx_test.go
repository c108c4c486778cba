package thicket

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/pkg/errors"
)

// pcxBytes assembles a PCX file with bounds (0,0)-(w-1,h-1).
func pcxBytes(bits, planes, encoding uint8, w, h, bytesPerLine uint16, body []byte) []byte {
	hdr := make([]byte, pcxHeaderSize)
	hdr[0] = 10 // ZSoft
	hdr[1] = 5
	hdr[2] = encoding
	hdr[3] = bits
	binary.LittleEndian.PutUint16(hdr[8:], w-1)
	binary.LittleEndian.PutUint16(hdr[10:], h-1)
	hdr[65] = planes
	binary.LittleEndian.PutUint16(hdr[66:], bytesPerLine)
	return append(hdr, body...)
}

// encodePCXLiterals encodes raw bytes, escaping values that would read as
// run markers.
func encodePCXLiterals(raw []byte) []byte {
	var out []byte
	for _, b := range raw {
		if b >= 192 {
			out = append(out, 0xc1)
		}
		out = append(out, b)
	}
	return out
}

func TestDecodePCXInterleavesPlanes(t *testing.T) {
	// One scanline, two pixels: red plane, green plane, blue plane.
	planar := []byte{10, 20, 30, 40, 50, 60}
	img, err := DecodePCX(NewStream(pcxBytes(8, 3, 1, 2, 1, 2, encodePCXLiterals(planar))))
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}
	if img.Width() != 2 || img.Height() != 1 {
		t.Fatalf("size = %dx%d, want 2x1", img.Width(), img.Height())
	}
	want := []byte{
		50, 30, 10, // blue, green, red of pixel 0
		60, 40, 20,
	}
	if !bytes.Equal(img.Data(), want) {
		t.Errorf("data = %v, want %v", img.Data(), want)
	}
}

func TestDecodePCXRuns(t *testing.T) {
	body := []byte{
		0xc4, 200, // red plane: 4 x 200
		1, 2, 3, 4, // green plane literals
		0xc9, 7, // blue plane: run longer than the buffer, clamped
	}
	img, err := DecodePCX(NewStream(pcxBytes(8, 3, 1, 4, 1, 4, body)))
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}
	want := []byte{
		7, 1, 200,
		7, 2, 200,
		7, 3, 200,
		7, 4, 200,
	}
	if !bytes.Equal(img.Data(), want) {
		t.Errorf("data = %v, want %v", img.Data(), want)
	}
}

func TestDecodePCXPaddedScanlines(t *testing.T) {
	// Width 3 with an even 4-byte plane line; padding bytes are skipped.
	planar := []byte{
		1, 2, 3, 0, 4, 5, 6, 0, 7, 8, 9, 0, // row 0
		11, 12, 13, 0, 14, 15, 16, 0, 17, 18, 19, 0, // row 1
	}
	img, err := DecodePCX(NewStream(pcxBytes(8, 3, 1, 3, 2, 4, encodePCXLiterals(planar))))
	if err != nil {
		t.Fatalf("DecodePCX: %v", err)
	}
	want := []byte{
		7, 4, 1, 8, 5, 2, 9, 6, 3,
		17, 14, 11, 18, 15, 12, 19, 16, 13,
	}
	if !bytes.Equal(img.Data(), want) {
		t.Errorf("data = %v, want %v", img.Data(), want)
	}
	if got := len(img.Data()); got != int(img.Width()*img.Height()*3) {
		t.Errorf("data length = %d", got)
	}
}

func TestDecodePCXFormatErrors(t *testing.T) {
	tests := []struct {
		name     string
		bits     uint8
		planes   uint8
		encoding uint8
	}{
		{"depth and encoding both wrong", 8, 1, 0},
		{"8-bit paletted", 8, 1, 1},
		{"uncompressed 24-bit", 8, 3, 0},
		{"4-bit planar", 1, 4, 1},
		{"24-bit single plane", 24, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := pcxBytes(tt.bits, tt.planes, tt.encoding, 2, 1, 2, make([]byte, 6))
			img, err := DecodePCX(NewStream(data))
			if !errors.Is(err, ErrFormat) {
				t.Fatalf("err = %v, want ErrFormat", err)
			}
			if img != nil {
				t.Errorf("img = %v, want nil", img)
			}
		})
	}
}

func TestDecodePCXShortScanline(t *testing.T) {
	data := pcxBytes(8, 3, 1, 4, 1, 2, make([]byte, 6))
	if _, err := DecodePCX(NewStream(data)); !errors.Is(err, ErrFormat) {
		t.Errorf("err = %v, want ErrFormat", err)
	}
}

func TestDecodePCXTruncated(t *testing.T) {
	tests := []struct {
		name string
		data []byte
	}{
		{"short header", make([]byte, 40)},
		{"missing pixel data", pcxBytes(8, 3, 1, 2, 1, 2, []byte{1, 2, 3})},
		{"planes end early", pcxBytes(8, 3, 1, 2, 1, 2, []byte{1, 2, 3, 4})},
		{"run without value", pcxBytes(8, 3, 1, 2, 1, 2, []byte{1, 2, 3, 4, 5, 0xc1})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := DecodePCX(NewStream(tt.data)); !errors.Is(err, ErrIO) {
				t.Errorf("err = %v, want ErrIO", err)
			}
		})
	}
}
