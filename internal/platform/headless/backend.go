// Package headless is a window backend without a display. Events are
// scripted with Push and presented frames are kept for inspection.
package headless

import (
	"image"
	"sync"

	"cantina/internal/platform"
	"cantina/internal/render"
)

type Backend struct{}

func New() *Backend { return &Backend{} }

func (b *Backend) Name() string { return "headless" }

func (b *Backend) CreateWindow(cfg platform.WindowConfig) (platform.Window, error) {
	return b.Open(cfg), nil
}

// Open is CreateWindow returning the concrete window.
func (b *Backend) Open(cfg platform.WindowConfig) *Window {
	d := cfg.DPI
	if d <= 0 {
		d = 96
	}
	return &Window{
		title: cfg.Title,
		w:     max(cfg.WidthPx, cfg.MinWidthPx),
		h:     max(cfg.HeightPx, cfg.MinHeightPx),
		dpi:   d,
	}
}

// Window records everything the application does to it.
type Window struct {
	mu       sync.Mutex
	title    string
	w        int
	h        int
	dpi      int
	queue    []platform.Event
	last     *image.RGBA
	presents int
	closed   bool
}

// Push queues events for the next PollEvents. Resize and DPI events also
// update the reported window metrics.
func (w *Window) Push(events ...platform.Event) {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, ev := range events {
		switch ev.Type {
		case platform.EventResize:
			w.w, w.h = ev.Width, ev.Height
		case platform.EventDPIChanged:
			w.dpi = ev.DPI
		}
		w.queue = append(w.queue, ev)
	}
}

func (w *Window) PollEvents() []platform.Event {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed {
		return []platform.Event{{Type: platform.EventClose}}
	}
	out := w.queue
	w.queue = nil
	return out
}

func (w *Window) SizePx() (int, int) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.w, w.h
}

func (w *Window) DPI() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dpi
}

func (w *Window) SetTitle(title string) {
	w.mu.Lock()
	w.title = title
	w.mu.Unlock()
}

func (w *Window) Title() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.title
}

// Present copies the frame, like a blit to a real window would.
func (w *Window) Present(fb *render.FrameBuffer) error {
	src := fb.Image()
	cp := image.NewRGBA(src.Rect)
	copy(cp.Pix, src.Pix)
	w.mu.Lock()
	w.last = cp
	w.presents++
	w.mu.Unlock()
	return nil
}

// Frame is the last presented frame, or nil.
func (w *Window) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.last
}

func (w *Window) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}

func (w *Window) Close() {
	w.mu.Lock()
	w.closed = true
	w.mu.Unlock()
}
