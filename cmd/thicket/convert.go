package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/phanxgames/thicket"
	"github.com/phanxgames/thicket/internal/parallel"
)

type ConvertCmd struct {
	Files  []string `arg:"" type:"existingfile" help:"Images to convert"`
	Dest   string   `help:"Destination folder" default:"."`
	Format string   `help:"Output format" enum:"png,bmp,tiff" default:"png"`
	Mirror string   `help:"Flip the image across an axis" enum:"none,horizontal,vertical" default:"none"`
	Resize string   `help:"Resample to WIDTHxHEIGHT with nearest-neighbour sampling" placeholder:"WxH"`

	Width  uint32 `kong:"-"`
	Height uint32 `kong:"-"`
}

func (c *ConvertCmd) Validate(kctx *kong.Context) error {
	if c.Resize != "" {
		w, h, err := parseSize(c.Resize)
		if err != nil {
			return err
		}
		c.Width, c.Height = w, h
	}
	dest, err := filepath.Abs(c.Dest)
	if err != nil {
		return fmt.Errorf("invalid destination %q: %w", c.Dest, err)
	}
	c.Dest = dest
	return nil
}

func (c *ConvertCmd) Run(pool *parallel.Pool) error {
	if err := os.MkdirAll(c.Dest, 0o755); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	for _, name := range c.Files {
		pool.Do(func() error {
			err := c.convert(name)
			if err != nil {
				slog.Error("could not convert image", "file", name, "error", err)
			}
			return err
		})
	}

	processed, errors := pool.Wait()
	slog.Info("stats", "processed", processed, "errors", errors, "total", processed+errors)
	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *ConvertCmd) convert(name string) error {
	img, _, err := loadSource(name)
	if err != nil {
		return err
	}
	var s thicket.Surface
	if err := s.Load(img); err != nil {
		return err
	}

	switch c.Mirror {
	case "horizontal":
		s.Mirror(thicket.MirrorHorizontal)
	case "vertical":
		s.Mirror(thicket.MirrorVertical)
	}
	if c.Width > 0 {
		if err := s.Resize(c.Width, c.Height); err != nil {
			return err
		}
	}

	base := filepath.Base(name)
	out := filepath.Join(c.Dest, base[:len(base)-len(filepath.Ext(base))]+"."+c.Format)
	if err := thicket.SaveFile(out, &s); err != nil {
		return err
	}
	slog.Debug("converted", "from", name, "to", out, "width", s.Width(), "height", s.Height())
	return nil
}
