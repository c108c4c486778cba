package thicket

import "github.com/pkg/errors"

// Error taxonomy. Every error returned by a decoder or a surface transform
// wraps exactly one of these; use errors.Is to classify.
var (
	// ErrFormat reports header fields outside the supported subset: wrong
	// colour depth, colour-mapped data, unsupported type or compression.
	ErrFormat = errors.New("thicket: unsupported image format")

	// ErrIO reports a stream that cannot be opened or read in full.
	ErrIO = errors.New("thicket: image stream error")

	// ErrAllocation reports a buffer request that cannot be satisfied.
	// Callers may retry after releasing other surfaces.
	ErrAllocation = errors.New("thicket: cannot allocate image buffer")

	// ErrInvalidSize reports zero or otherwise unusable geometry passed to
	// a resize, tileset or transformation.
	ErrInvalidSize = errors.New("thicket: invalid size")
)

// MaxBufferBytes caps a single pixel buffer. Requests above it fail with
// ErrAllocation instead of exhausting memory on a corrupt header.
var MaxBufferBytes = 256 << 20

// allocBytes returns a zeroed byte buffer of the given length.
func allocBytes(n uint64) ([]byte, error) {
	if n > uint64(MaxBufferBytes) {
		return nil, errors.Wrapf(ErrAllocation, "%d bytes requested, limit %d", n, MaxBufferBytes)
	}
	return make([]byte, n), nil
}

// allocPixels returns a zeroed pixel buffer for a width x height surface.
func allocPixels(width, height uint32) ([]Pixel, error) {
	n := uint64(width) * uint64(height)
	if n*pixelSize > uint64(MaxBufferBytes) {
		return nil, errors.Wrapf(ErrAllocation, "%dx%d surface exceeds %d bytes", width, height, MaxBufferBytes)
	}
	return make([]Pixel, n), nil
}
