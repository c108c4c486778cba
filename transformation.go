package thicket

import "github.com/pkg/errors"

// Transformation maps coordinates between a screen (window) space and a
// surface (frame) space by scaling each axis.
type Transformation struct {
	screenX, screenY   float32 // surface -> screen
	surfaceX, surfaceY float32 // screen -> surface
}

// NewTransformation derives the scale factors between a screen of
// screenWidth x screenHeight and a surface of surfaceWidth x surfaceHeight.
// Every dimension must be positive.
func NewTransformation(screenWidth, screenHeight, surfaceWidth, surfaceHeight float32) (Transformation, error) {
	if screenWidth <= 0 || screenHeight <= 0 || surfaceWidth <= 0 || surfaceHeight <= 0 {
		return Transformation{}, errors.Wrapf(ErrInvalidSize,
			"thicket: transformation between %gx%g and %gx%g",
			screenWidth, screenHeight, surfaceWidth, surfaceHeight)
	}
	return Transformation{
		screenX:  screenWidth / surfaceWidth,
		screenY:  screenHeight / surfaceHeight,
		surfaceX: surfaceWidth / screenWidth,
		surfaceY: surfaceHeight / screenHeight,
	}, nil
}

// ScreenX converts a surface X coordinate to screen space.
func (t Transformation) ScreenX(surfaceX float32) float32 { return t.screenX * surfaceX }

// ScreenY converts a surface Y coordinate to screen space.
func (t Transformation) ScreenY(surfaceY float32) float32 { return t.screenY * surfaceY }

// SurfaceX converts a screen X coordinate to surface space.
func (t Transformation) SurfaceX(screenX float32) float32 { return t.surfaceX * screenX }

// SurfaceY converts a screen Y coordinate to surface space.
func (t Transformation) SurfaceY(screenY float32) float32 { return t.surfaceY * screenY }
