// Package frontend turns platform events into state changes and state into
// frames. It has no display dependency: the ebiten loop and the headless
// backend drive it the same way.
package frontend

import (
	"fmt"
	"log/slog"
	"path"
	"path/filepath"
	"strings"

	"cantina/internal/page"
	"cantina/internal/platform"
	"cantina/internal/render"
	"cantina/internal/state"
	"cantina/internal/ui"
)

// Images is the asset catalog as the frontend sees it.
type Images interface {
	ui.ImageSource
	PNG(name string) ([]byte, error)
}

// Actions are the side effects that leave the window.
type Actions interface {
	CopyText(text string) error
	CopyImage(png []byte) error
	// SaveImage asks for a destination and writes png there. It returns the
	// chosen path, or "" when the user cancelled.
	SaveImage(suggested string, png []byte) (string, error)
}

type Options struct {
	Width  int
	Height int
	DPI    int
	Theme  *ui.Theme
	Images Images
	// Actions may be nil, which disables copy and export.
	Actions Actions
	Logger  *slog.Logger
}

type Frontend struct {
	state    *state.State
	renderer *ui.Renderer
	images   Images
	actions  Actions
	logger   *slog.Logger

	width  int
	height int
	fb     *render.FrameBuffer

	geometry  ui.Geometry
	published bool
	dirty     bool
	closed    bool
	status    string

	dragging bool
	dragGrab int
}

func New(opts Options) *Frontend {
	theme := ui.DefaultTheme()
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	st := state.New()
	st.SetDPI(opts.DPI)
	return &Frontend{
		state:    st,
		renderer: ui.NewRenderer(theme, opts.Images),
		images:   opts.Images,
		actions:  opts.Actions,
		logger:   logger,
		width:    max(1, opts.Width),
		height:   max(1, opts.Height),
		dirty:    true,
	}
}

func (f *Frontend) State() *state.State { return f.state }
func (f *Frontend) Dirty() bool         { return f.dirty }
func (f *Frontend) Closed() bool        { return f.closed }
func (f *Frontend) Status() string      { return f.status }
func (f *Frontend) Size() (int, int)    { return f.width, f.height }

func (f *Frontend) Close() error {
	f.closed = true
	return f.renderer.Close()
}

func (f *Frontend) input() ui.Input {
	return ui.InputFor(f.state, f.width, f.height)
}

// Geometry returns the rects of the current frame. The published geometry is
// reused only when it was computed for the current size, DPI, section and
// scroll; otherwise it is recomputed and republished.
func (f *Frontend) Geometry() ui.Geometry {
	in := f.input()
	if f.published && f.geometry.Input == in {
		return f.geometry
	}
	g := f.renderer.Layout(in)
	if f.syncScroll(g) {
		g = f.renderer.Layout(f.input())
	}
	f.geometry, f.published = g, true
	return g
}

// syncScroll feeds measured heights to the scroll engine and reports whether
// that moved the position.
func (f *Frontend) syncScroll(g ui.Geometry) bool {
	prev := f.state.Scroll.Pos
	f.state.Scroll.SetBounds(g.ContentHeight, g.ViewportHeight)
	return f.state.Scroll.Pos != prev
}

// Paint draws the current state into fb and publishes its geometry.
func (f *Frontend) Paint(fb *render.FrameBuffer) ui.Geometry {
	f.width, f.height = fb.W, fb.H
	g := f.renderer.Paint(fb, f.state, f.status)
	if f.syncScroll(g) {
		g = f.renderer.Paint(fb, f.state, f.status)
	}
	f.geometry, f.published = g, true
	f.dirty = false
	return g
}

// Render returns the frame buffer for a w x h client area, repainting it if
// anything changed. The bool reports whether a paint happened.
func (f *Frontend) Render(w, h int) (*render.FrameBuffer, bool) {
	w, h = max(1, w), max(1, h)
	if f.fb == nil || f.fb.W != w || f.fb.H != h {
		f.fb = render.NewFrameBuffer(w, h)
		f.dirty = true
	}
	if !f.dirty {
		return f.fb, false
	}
	f.Paint(f.fb)
	return f.fb, true
}

// Pump drains win's queue and presents a frame when one is due. It reports
// false once the window is closed.
func (f *Frontend) Pump(win platform.Window) (bool, error) {
	for _, ev := range win.PollEvents() {
		f.Handle(ev)
	}
	if f.closed {
		return false, nil
	}
	w, h := win.SizePx()
	fb, painted := f.Render(w, h)
	if !painted {
		return true, nil
	}
	if err := win.Present(fb); err != nil {
		return false, fmt.Errorf("present frame: %w", err)
	}
	return true, nil
}

func (f *Frontend) setStatus(s string) {
	if s != f.status {
		f.status = s
		f.dirty = true
	}
}

// exportName is the suggested file name for an exported photo.
func exportName(asset string) string {
	return strings.TrimSuffix(asset, path.Ext(asset)) + ".png"
}

func (f *Frontend) copyText() {
	if f.actions == nil {
		return
	}
	if err := f.actions.CopyText(SectionText(f.state)); err != nil {
		f.logger.Warn("Copy text failed", slog.String("error", err.Error()))
		f.setStatus("Error al copiar: " + err.Error())
		return
	}
	f.setStatus("Texto copiado")
}

func (f *Frontend) copyImage() {
	if f.actions == nil || f.images == nil {
		return
	}
	asset := f.state.SelectedDish().Asset
	data, err := f.images.PNG(asset)
	if err == nil {
		err = f.actions.CopyImage(data)
	}
	if err != nil {
		f.logger.Warn("Copy image failed", slog.String("asset", asset), slog.String("error", err.Error()))
		f.setStatus("Error al copiar: " + err.Error())
		return
	}
	f.setStatus("Imagen copiada")
}

func (f *Frontend) exportImage() {
	if f.actions == nil || f.images == nil {
		return
	}
	asset := f.state.SelectedDish().Asset
	data, err := f.images.PNG(asset)
	if err != nil {
		f.logger.Warn("Export failed", slog.String("asset", asset), slog.String("error", err.Error()))
		f.setStatus("Error al exportar: " + err.Error())
		return
	}
	saved, err := f.actions.SaveImage(exportName(asset), data)
	if err != nil {
		f.logger.Warn("Export failed", slog.String("asset", asset), slog.String("error", err.Error()))
		f.setStatus("Error al exportar: " + err.Error())
		return
	}
	if saved == "" {
		return
	}
	f.logger.Info("Exported photo", slog.String("asset", asset), slog.String("path", saved))
	f.setStatus("Guardado " + filepath.Base(saved))
}

// SectionText is the plain text of what st shows: the section's title and
// lines, or on the menu the selected dish and special.
func SectionText(st *state.State) string {
	if st.Section == page.SectionMenu {
		return fmt.Sprintf("%s: %s\n%s: %s", page.MenuTitle, st.SelectedDish().Name,
			page.SpecialsTitle, st.SelectedSpecial().Name)
	}
	c, ok := page.ContentFor(st.Section)
	if !ok {
		return ""
	}
	return c.Title + "\n\n" + strings.Join(c.Paragraphs, "\n")
}
