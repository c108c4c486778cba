package main

import (
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/phanxgames/thicket"
)

// loadSource decodes TGA and PCX with thicket's decoders and anything else
// the image package has a registered decoder for.
func loadSource(path string) (*thicket.Image, string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".tga", ".pcx":
		img, err := thicket.Load(path)
		return img, strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), "."), err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("could not open %q: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("could not decode %q: %w", path, err)
	}
	return thicket.FromImage(img), format, nil
}

// parseSize reads WIDTHxHEIGHT.
func parseSize(s string) (width, height uint32, err error) {
	w, h, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("invalid size %q, want WIDTHxHEIGHT", s)
	}
	wv, err := strconv.ParseUint(w, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid width in %q: %w", s, err)
	}
	hv, err := strconv.ParseUint(h, 10, 32)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid height in %q: %w", s, err)
	}
	if wv == 0 || hv == 0 {
		return 0, 0, fmt.Errorf("invalid size %q: dimensions must be positive", s)
	}
	return uint32(wv), uint32(hv), nil
}
