package thicket

import (
	"testing"

	"github.com/pkg/errors"
)

func TestTransformation(t *testing.T) {
	tr, err := NewTransformation(800, 600, 400, 200)
	if err != nil {
		t.Fatalf("NewTransformation: %v", err)
	}
	tests := []struct {
		name string
		fn   func(float32) float32
		in   float32
		want float32
	}{
		{"ScreenX", tr.ScreenX, 100, 200},
		{"ScreenY", tr.ScreenY, 50, 150},
		{"SurfaceX", tr.SurfaceX, 200, 100},
		{"SurfaceY", tr.SurfaceY, 150, 50},
	}
	for _, tt := range tests {
		if got := tt.fn(tt.in); got != tt.want {
			t.Errorf("%s(%g) = %g, want %g", tt.name, tt.in, got, tt.want)
		}
	}
}

func TestTransformationInvalid(t *testing.T) {
	sizes := [][4]float32{
		{0, 600, 400, 200},
		{800, 0, 400, 200},
		{800, 600, 0, 200},
		{800, 600, 400, -1},
	}
	for _, s := range sizes {
		if _, err := NewTransformation(s[0], s[1], s[2], s[3]); !errors.Is(err, ErrInvalidSize) {
			t.Errorf("NewTransformation%v err = %v, want ErrInvalidSize", s, err)
		}
	}
}
