package thicket

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pkg/errors"
)

// ErrQuit ends Run cleanly when returned from the update function.
var ErrQuit = ebiten.Termination

// RunConfig configures the window opened by Run.
type RunConfig struct {
	// Title is the window title.
	Title string
	// Width and Height are the frame size in pixels.
	Width, Height int
	// Scale multiplies the frame size to get the initial window size.
	// Zero means 1.
	Scale int
	// TPS is the number of updates per second. Zero keeps Ebitengine's
	// default of 60.
	TPS int
	// ShowFPS overlays the measured FPS and TPS in the top-left corner.
	ShowFPS bool
	// Debug logs per-tick timing through Logger at debug level.
	Debug bool
	// ScreenshotDir is where Screenshot writes PNG files. Empty means
	// "screenshots".
	ScreenshotDir string
}

// Screen is a Frame presented through Ebitengine. It implements
// ebiten.Game: each tick it snapshots input, runs the update function,
// then uploads the frame.
type Screen struct {
	*Frame
	// Input holds this tick's keyboard and mouse snapshot.
	Input *Input
	// ScreenshotDir is where Screenshot writes PNG files.
	ScreenshotDir string

	update  func(*Screen) error
	poll    func() InputState
	ticks   uint64
	showFPS bool
	debug   bool

	injectQueue     []InputState
	testRunner      *TestRunner
	screenshotQueue []string
}

// NewScreen creates a Screen with a width x height frame. Most programs use
// Run instead.
func NewScreen(width, height uint32, update func(*Screen) error) *Screen {
	return &Screen{
		Frame:         NewFrame(width, height),
		Input:         &Input{},
		ScreenshotDir: "screenshots",
		update:        update,
		poll:          PollInput,
	}
}

// Ticks returns the number of completed updates.
func (s *Screen) Ticks() uint64 { return s.ticks }

// SetDebug enables per-tick timing logs.
func (s *Screen) SetDebug(enabled bool) { s.debug = enabled }

// Update implements ebiten.Game. Scripted and injected input take
// precedence over the real devices.
func (s *Screen) Update() error {
	var stats debugStats
	start := time.Now()

	if s.testRunner != nil {
		s.testRunner.step(s)
	}
	if !s.processInjectedInput() {
		s.Input.Update(s.poll())
	}
	s.ticks++

	var err error
	if s.update != nil {
		updateStart := time.Now()
		err = s.update(s)
		stats.updateTime = time.Since(updateStart)
	}

	flushStart := time.Now()
	stats.screenshots = s.flushScreenshots()
	stats.flushTime = time.Since(flushStart)
	stats.totalTime = time.Since(start)
	s.debugLog(stats)
	return err
}

// Draw implements ebiten.Game by uploading the frame's pixels.
func (s *Screen) Draw(screen *ebiten.Image) {
	screen.WritePixels(s.Pix())
	if s.showFPS {
		drawFPS(screen)
	}
}

// Layout implements ebiten.Game. The logical screen is always the frame
// size; Ebitengine scales it to the window.
func (s *Screen) Layout(_, _ int) (int, int) {
	return int(s.FrameWidth()), int(s.FrameHeight())
}

// Run opens a window and calls update once per tick until it returns an
// error. Returning ErrQuit ends the loop and Run returns nil.
func Run(cfg RunConfig, update func(*Screen) error) error {
	return RunScreen(cfg, nil, update)
}

// RunScreen is Run with a hook to prepare the Screen, for example to attach
// a TestRunner, before the window opens. prepare may be nil.
func RunScreen(cfg RunConfig, prepare func(*Screen), update func(*Screen) error) error {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return errors.Wrapf(ErrInvalidSize, "thicket: run: frame size %dx%d", cfg.Width, cfg.Height)
	}
	scale := cfg.Scale
	if scale <= 0 {
		scale = 1
	}
	ebiten.SetWindowTitle(cfg.Title)
	ebiten.SetWindowSize(cfg.Width*scale, cfg.Height*scale)
	if cfg.TPS > 0 {
		ebiten.SetTPS(cfg.TPS)
	}

	s := NewScreen(uint32(cfg.Width), uint32(cfg.Height), update)
	s.showFPS = cfg.ShowFPS
	s.debug = cfg.Debug
	if cfg.ScreenshotDir != "" {
		s.ScreenshotDir = cfg.ScreenshotDir
	}
	if prepare != nil {
		prepare(s)
	}

	Logger().Info("opening window", "title", cfg.Title, "width", cfg.Width, "height", cfg.Height, "scale", scale)
	return ebiten.RunGame(s)
}
