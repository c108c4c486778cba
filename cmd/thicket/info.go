package main

import (
	"fmt"
	"log/slog"

	"github.com/phanxgames/thicket/internal/parallel"
)

type InfoCmd struct {
	Files []string `arg:"" type:"existingfile" help:"Images to inspect"`
}

func (c *InfoCmd) Run(pool *parallel.Pool) error {
	for _, name := range c.Files {
		pool.Do(func() error {
			logger := slog.Default().With("file", name)
			img, format, err := loadSource(name)
			if err != nil {
				logger.Error("could not read image", "error", err)
				return err
			}
			logger.Info("image", "format", format, "width", img.Width(), "height", img.Height(),
				"bytes", img.Len())
			img.Destroy()
			return nil
		})
	}

	if _, n := pool.Wait(); n > 0 {
		return fmt.Errorf("error reading %d files", n)
	}
	return nil
}
