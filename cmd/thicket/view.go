package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/thicket"
)

type ViewCmd struct {
	File   string `arg:"" type:"existingfile" help:"Image to preview"`
	Kind   string `help:"Frame layout" enum:"normal,horizontal,vertical" default:"normal"`
	Frames uint32 `help:"Number of frames in the strip" default:"1"`
	Delay  int    `help:"Ticks per frame when animating, 0 to step with the arrow keys" default:"0"`
	Scale  int    `help:"Window scale factor" default:"2"`
}

func backgroundKind(kind string) thicket.BackgroundKind {
	switch kind {
	case "horizontal":
		return thicket.HorizontalBackground
	case "vertical":
		return thicket.VerticalBackground
	default:
		return thicket.NormalBackground
	}
}

func (c *ViewCmd) Run() error {
	img, _, err := loadSource(c.File)
	if err != nil {
		return err
	}
	bg := thicket.NewBackground()
	if err := bg.Load(img, backgroundKind(c.Kind), c.Frames); err != nil {
		return err
	}
	if bg.Width() == 0 || bg.Height() == 0 {
		return fmt.Errorf("%s: %d frames leave an empty %dx%d cell", c.File, bg.Frames(), bg.Width(), bg.Height())
	}

	return thicket.Run(thicket.RunConfig{
		Title:  c.File,
		Width:  int(bg.Width()),
		Height: int(bg.Height()),
		Scale:  c.Scale,
	}, func(screen *thicket.Screen) error {
		return c.tick(screen, bg)
	})
}

func (c *ViewCmd) tick(screen *thicket.Screen, bg *thicket.Background) error {
	in := screen.Input
	switch {
	case in.KeyPressed(ebiten.KeyEscape) || in.KeyPressed(ebiten.KeyQ):
		return thicket.ErrQuit
	case in.KeyPressed(ebiten.KeyArrowRight):
		bg.Step()
	case in.KeyPressed(ebiten.KeyArrowLeft):
		prev := bg.Frame() - 1
		if prev == 0 {
			prev = bg.Frames()
		}
		bg.SetTarget(prev)
	case c.Delay > 0 && screen.Ticks()%uint64(c.Delay) == 0:
		bg.Step()
	}
	bg.Draw(screen)
	return nil
}
