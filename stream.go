package thicket

import (
	"bytes"
	"io"
	"io/fs"
	"os"

	"github.com/pkg/errors"
)

// Stream is the byte source decoders read from. Decoders query Len once and
// then read sequentially; no seeking is needed.
type Stream interface {
	io.Reader
	io.Closer
	// Len returns the total length of the stream in bytes.
	Len() int64
}

// fileStream is a Stream over anything with a size, such as *os.File or an
// fs.File.
type fileStream struct {
	io.ReadCloser
	size int64
	name string
}

func (s *fileStream) Len() int64 { return s.size }

// Open opens the named file as a Stream. A missing or unreadable file is an
// ErrIO error.
func Open(name string) (Stream, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "open %s: %v", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "stat %s: %v", name, err)
	}
	return &fileStream{ReadCloser: f, size: info.Size(), name: name}, nil
}

// OpenFS opens the named file from fsys as a Stream. Use it with embed.FS to
// ship art inside the binary.
func OpenFS(fsys fs.FS, name string) (Stream, error) {
	f, err := fsys.Open(name)
	if err != nil {
		return nil, errors.Wrapf(ErrIO, "open %s: %v", name, err)
	}
	info, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, errors.Wrapf(ErrIO, "stat %s: %v", name, err)
	}
	return &fileStream{ReadCloser: f, size: info.Size(), name: name}, nil
}

// byteStream serves an in-memory buffer.
type byteStream struct {
	*bytes.Reader
	size int64
}

func (s *byteStream) Len() int64   { return s.size }
func (s *byteStream) Close() error { return nil }

// NewStream wraps data as a Stream. The slice is not copied.
func NewStream(data []byte) Stream {
	return &byteStream{Reader: bytes.NewReader(data), size: int64(len(data))}
}

// readFull fills buf from s or fails with ErrIO.
func readFull(s Stream, buf []byte, what string) error {
	if _, err := io.ReadFull(s, buf); err != nil {
		return errors.Wrapf(ErrIO, "read %s (%d bytes): %v", what, len(buf), err)
	}
	return nil
}
