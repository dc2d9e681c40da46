package app

import (
	"fmt"
	"log/slog"
	"math"

	"cantina/internal/config"
	"cantina/internal/dpi"
	"cantina/internal/frontend"
	"cantina/internal/page"
	"cantina/internal/platform"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyMap = map[ebiten.Key]platform.Key{
	ebiten.KeyArrowUp:    platform.KeyUp,
	ebiten.KeyArrowDown:  platform.KeyDown,
	ebiten.KeyPageUp:     platform.KeyPageUp,
	ebiten.KeyPageDown:   platform.KeyPageDown,
	ebiten.KeyHome:       platform.KeyHome,
	ebiten.KeyEnd:        platform.KeyEnd,
	ebiten.KeyArrowLeft:  platform.KeyLeft,
	ebiten.KeyArrowRight: platform.KeyRight,
	ebiten.KeyTab:        platform.KeyTab,
	ebiten.KeyC:          platform.KeyC,
	ebiten.KeyS:          platform.KeyS,
}

type Options struct {
	Config config.Config
	// Changes delivers reloaded configs. It may be nil.
	Changes <-chan config.Config
	Images  frontend.Images
	Logger  *slog.Logger
}

// App adapts the frontend to ebiten's game loop. Update turns ebiten input
// into platform events; Draw blits the frontend's frame buffer.
type App struct {
	cfg     config.Config
	changes <-chan config.Config
	logger  *slog.Logger
	front   *frontend.Frontend

	canvas *ebiten.Image

	screenW  int
	screenH  int
	mouseX   int
	mouseY   int
	wheelAcc float64
}

func New(opts Options) *App {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	cfg := opts.Config
	return &App{
		cfg:     cfg,
		changes: opts.Changes,
		logger:  logger,
		front: frontend.New(frontend.Options{
			Width:   cfg.Width,
			Height:  cfg.Height,
			DPI:     cfg.DPI(),
			Images:  opts.Images,
			Actions: newSystemActions(),
			Logger:  logger,
		}),
		screenW: cfg.Width,
		screenH: cfg.Height,
	}
}

func (a *App) Run() error {
	defer func() {
		if err := a.front.Close(); err != nil {
			a.logger.Error("Failed to release fonts", slog.String("error", err.Error()))
		}
	}()
	ebiten.SetWindowTitle(page.Title)
	ebiten.SetWindowSize(a.cfg.Width, a.cfg.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowSizeLimits(config.MinWidth, config.MinHeight, -1, -1)
	ebiten.SetTPS(a.cfg.TPS)
	a.logger.Info("Opening window", slog.Int("width", a.cfg.Width), slog.Int("height", a.cfg.Height),
		slog.Int("tps", a.cfg.TPS))
	if err := ebiten.RunGame(a); err != nil {
		return fmt.Errorf("run game loop: %w", err)
	}
	return nil
}

func (a *App) Update() error {
	a.drainConfig()
	for _, ev := range a.pollEvents() {
		a.front.Handle(ev)
	}
	if a.front.Closed() {
		return ebiten.Termination
	}
	return nil
}

func (a *App) Draw(screen *ebiten.Image) {
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	fb, painted := a.front.Render(w, h)
	if a.canvas == nil || a.canvas.Bounds().Dx() != fb.W || a.canvas.Bounds().Dy() != fb.H {
		a.canvas = ebiten.NewImage(fb.W, fb.H)
		painted = true
	}
	if painted {
		a.canvas.WritePixels(fb.Pixels)
	}
	screen.DrawImage(a.canvas, nil)
}

// Layout works in device pixels so the frame buffer maps 1:1 onto the screen.
func (a *App) Layout(outsideWidth, outsideHeight int) (screenWidth, screenHeight int) {
	s := ebiten.Monitor().DeviceScaleFactor()
	a.screenW = max(1, int(math.Ceil(float64(outsideWidth)*s)))
	a.screenH = max(1, int(math.Ceil(float64(outsideHeight)*s)))
	return a.screenW, a.screenH
}

// displayDPI is the pinned density from the config, or the monitor's.
func (a *App) displayDPI() int {
	if d := a.cfg.DPI(); d > 0 {
		return d
	}
	return dpi.FromFactor(ebiten.Monitor().DeviceScaleFactor())
}

func (a *App) drainConfig() {
	for {
		select {
		case cfg := <-a.changes:
			a.cfg = cfg
			ebiten.SetTPS(cfg.TPS)
			a.logger.Info("Applied config reload", slog.Float64("scale", cfg.Scale), slog.Int("tps", cfg.TPS))
		default:
			return
		}
	}
}

func (a *App) pollEvents() []platform.Event {
	var events []platform.Event
	if w, h := a.front.Size(); w != a.screenW || h != a.screenH {
		events = append(events, platform.Event{Type: platform.EventResize, Width: a.screenW, Height: a.screenH})
	}
	if d := a.displayDPI(); d != a.front.State().DPI {
		events = append(events, platform.Event{Type: platform.EventDPIChanged, DPI: d})
	}

	x, y := ebiten.CursorPosition()
	if x != a.mouseX || y != a.mouseY {
		a.mouseX, a.mouseY = x, y
		events = append(events, platform.Event{Type: platform.EventMouseMove, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		events = append(events, platform.Event{Type: platform.EventMouseDown, X: x, Y: y})
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		events = append(events, platform.Event{Type: platform.EventMouseUp, X: x, Y: y})
	}

	// Touchpads report fractions of a notch; whole notches are forwarded.
	_, wheelY := ebiten.Wheel()
	a.wheelAcc += wheelY
	if notches := int(a.wheelAcc); notches != 0 {
		a.wheelAcc -= float64(notches)
		events = append(events, platform.Event{Type: platform.EventMouseWheel, X: x, Y: y, DeltaY: notches})
	}

	var mods platform.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= platform.ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= platform.ModShift
	}
	for ek, pk := range keyMap {
		if repeating(ek) {
			events = append(events, platform.Event{Type: platform.EventKeyDown, Key: pk, Mods: mods})
		}
	}
	return events
}

// repeating reports a fresh press, then auto-repeat after half a second.
func repeating(k ebiten.Key) bool {
	d := inpututil.KeyPressDuration(k)
	if d == 1 {
		return true
	}
	delay := ebiten.TPS() / 2
	return d > delay && (d-delay)%4 == 0
}
