// Package thicket is a software sprite layer for [Ebitengine] games.
//
// Thicket decodes legacy TGA and PCX art into owned pixel buffers, slices
// those buffers into animation strips and tile grids, and draws them pixel
// by pixel onto any [Target]. The drawing core never touches the GPU; a
// [Frame] collects the output and [Run] presents it through Ebitengine.
//
// # Quick start
//
//	img, err := thicket.Load("hero.tga")
//	if err != nil {
//		log.Fatal(err)
//	}
//	hero := thicket.NewSprite()
//	if err := hero.Load(img, thicket.HorizontalStrip, 4); err != nil {
//		log.Fatal(err)
//	}
//
//	thicket.Run(thicket.RunConfig{Title: "Hero", Width: 320, Height: 240},
//		func(s *thicket.Screen) error {
//			s.Clear()
//			hero.Step()
//			hero.Draw(s)
//			return nil
//		})
//
// # Images and surfaces
//
// [DecodeTGA] and [DecodePCX] read from a [Stream] and return an [*Image]
// whose bytes are stored blue, green, red. [Surface.Load] copies those bytes
// into the surface and destroys the image. Surfaces can be mirrored and
// resized in place; every transform swaps in a fresh buffer.
//
// # Frames, strips and tiles
//
// A [Canvas] adds a 1-based frame counter to a surface. [Sprite] and
// [Background] read the current frame as a cell of a horizontal or vertical
// strip; [Tileset] addresses a rows-by-columns grid instead. The colour of
// the first pixel of the active region is the transparency key for
// transparent sprites.
//
// # Maps, cameras and atlases
//
// A [TileMap] stores Tiled-style GIDs over a [Tileset], with flip bits and
// timed tile animations. A [Camera] follows a sprite or eases toward a
// point and hands its origin to the map through [Camera.Apply]. An [Atlas]
// loads TexturePacker JSON and draws named regions from its pages.
//
// # Headless runs
//
// A [Screen] can be driven without a window: queue input with
// [Screen.InjectClick], [Screen.InjectDrag] or [Screen.InjectKey], or load
// a JSON script with [LoadTestScript]. [Screen.Screenshot] writes the frame
// as PNG into ScreenshotDir after the next update.
//
// # Collision
//
// [Collides] reports a hit when the boxes overlap on either axis. Use
// [Intersects] when both axes must overlap.
//
// # Errors and logging
//
// Decoders return errors wrapping [ErrFormat], [ErrIO] or [ErrAllocation];
// test them with errors.Is. Thicket is silent unless a logger is installed
// with [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package thicket
