package thicket

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Screenshot queues a labeled screenshot of the frame. It is written as a
// PNG to ScreenshotDir with a timestamped name once the current update
// function returns. Safe to call from the update function.
func (s *Screen) Screenshot(label string) {
	s.screenshotQueue = append(s.screenshotQueue, label)
}

// flushScreenshots writes every queued screenshot and returns how many were
// written.
func (s *Screen) flushScreenshots() int {
	if len(s.screenshotQueue) == 0 {
		return 0
	}
	defer func() { s.screenshotQueue = s.screenshotQueue[:0] }()

	if err := os.MkdirAll(s.ScreenshotDir, 0o755); err != nil {
		Logger().Warn("screenshot: cannot create directory", "dir", s.ScreenshotDir, "error", err)
		return 0
	}

	img := s.Frame.Image()
	stamp := time.Now().Format("20060102_150405")
	written := 0
	for _, label := range s.screenshotQueue {
		path := filepath.Join(s.ScreenshotDir, fmt.Sprintf("%s_%d_%s.png", stamp, s.ticks, sanitizeLabel(label)))
		if err := writePNG(path, img); err != nil {
			Logger().Warn("screenshot failed", "path", path, "error", err)
			continue
		}
		written++
	}
	return written
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
