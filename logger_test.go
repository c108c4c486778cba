package thicket

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLoggerDefaultsToSilent(t *testing.T) {
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("default logger is enabled")
	}
}

func TestSetLogger(t *testing.T) {
	defer SetLogger(nil)
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	if _, err := DecodeTGA(NewStream(tgaBytes(tgaTypeUncompressed, 0, 24, 1, 1, nil, []byte{0, 0, 0}))); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "format=tga") {
		t.Errorf("log output = %q, want a decode record", buf.String())
	}

	SetLogger(nil)
	if Logger().Enabled(t.Context(), slog.LevelError) {
		t.Error("SetLogger(nil) did not silence logging")
	}
}
