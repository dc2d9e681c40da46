package frontend

import (
	"log/slog"

	"cantina/internal/page"
	"cantina/internal/platform"
	"cantina/internal/state"
)

var scrollCommands = map[platform.ScrollAction]state.Command{
	platform.ScrollLineUp:   state.LineUp,
	platform.ScrollLineDown: state.LineDown,
	platform.ScrollPageUp:   state.PageUp,
	platform.ScrollPageDown: state.PageDown,
	platform.ScrollThumb:    state.Thumb,
	platform.ScrollTop:      state.Top,
	platform.ScrollBottom:   state.Bottom,
}

var keyCommands = map[platform.Key]state.Command{
	platform.KeyUp:       state.LineUp,
	platform.KeyDown:     state.LineDown,
	platform.KeyPageUp:   state.PageUp,
	platform.KeyPageDown: state.PageDown,
	platform.KeyHome:     state.Top,
	platform.KeyEnd:      state.Bottom,
}

// Handle applies one event. It reports whether the event changed anything
// that needs a repaint.
func (f *Frontend) Handle(ev platform.Event) bool {
	before := f.dirty
	f.dirty = false
	switch ev.Type {
	case platform.EventClose:
		f.closed = true
	case platform.EventResize:
		f.resize(ev.Width, ev.Height)
	case platform.EventDPIChanged:
		f.setDPI(ev.DPI)
	case platform.EventMouseDown:
		f.press(ev.X, ev.Y)
	case platform.EventMouseMove:
		f.drag(ev.Y)
	case platform.EventMouseUp:
		if f.dragging {
			f.dragging = false
			break
		}
		f.Click(ev.X, ev.Y)
	case platform.EventMouseWheel:
		f.Geometry()
		f.markIf(f.state.Scroll.Wheel(ev.DeltaY, f.state.DPI))
	case platform.EventScroll:
		if cmd, ok := scrollCommands[ev.Scroll]; ok {
			f.scroll(cmd, ev.Value)
		}
	case platform.EventKeyDown:
		f.key(ev)
	}
	changed := f.dirty
	f.dirty = before || changed
	return changed
}

func (f *Frontend) markIf(changed bool) {
	if changed {
		f.dirty = true
	}
}

func (f *Frontend) resize(w, h int) {
	if w <= 0 || h <= 0 || (w == f.width && h == f.height) {
		return
	}
	f.width, f.height = w, h
	f.dirty = true
}

// setDPI rebuilds the fonts for the new density. Section, selection and
// scroll are kept; the next layout clamps the scroll to the new range.
func (f *Frontend) setDPI(d int) {
	if !f.state.SetDPI(d) {
		return
	}
	f.renderer.Fonts().Reset()
	f.logger.Debug("Display density changed", slog.Int("dpi", d))
	f.Geometry()
	f.dirty = true
}

// Click hit-tests a primary button release at device pixel (x, y). Tabs come
// first. Menu rows count only on the menu and only inside the clip rect, so a
// row scrolled out of view cannot be picked.
func (f *Frontend) Click(x, y int) bool {
	g := f.Geometry()
	tabs := page.Tabs()
	for i, r := range g.Tabs {
		if i < len(tabs) && r.Contains(x, y) {
			f.state.SelectSection(tabs[i].Section)
			f.dirty = true
			return true
		}
	}
	if g.Menu == nil || !g.Clip.Contains(x, y) {
		return false
	}
	dishes := page.Dishes()
	for i, r := range g.Menu.DishRows {
		if i < len(dishes) && r.Contains(x, y) {
			f.markIf(f.state.SelectDish(dishes[i].ID))
			return true
		}
	}
	specials := page.Specials()
	for i, r := range g.Menu.SpecialRows {
		if i < len(specials) && r.Contains(x, y) {
			f.markIf(f.state.SelectSpecial(specials[i].ID))
			return true
		}
	}
	return false
}

// press starts a thumb drag, or pages when the track is hit beside the thumb.
func (f *Frontend) press(x, y int) {
	g := f.Geometry()
	if !g.ScrollbarVisible() {
		return
	}
	switch {
	case g.ScrollThumb.Contains(x, y):
		f.dragging = true
		f.dragGrab = y - g.ScrollThumb.Y
	case g.ScrollTrack.Contains(x, y) && y < g.ScrollThumb.Y:
		f.scroll(state.PageUp, 0)
	case g.ScrollTrack.Contains(x, y):
		f.scroll(state.PageDown, 0)
	}
}

func (f *Frontend) drag(y int) {
	if !f.dragging {
		return
	}
	g := f.Geometry()
	f.scroll(state.Thumb, g.ThumbValue(y-f.dragGrab))
}

func (f *Frontend) scroll(cmd state.Command, value int) {
	f.Geometry()
	f.markIf(f.state.Scroll.Do(cmd, value, f.state.DPI))
}

func (f *Frontend) key(ev platform.Event) {
	if cmd, ok := keyCommands[ev.Key]; ok && !ev.Ctrl() {
		f.scroll(cmd, 0)
		return
	}
	switch ev.Key {
	case platform.KeyLeft:
		f.markIf(f.state.CycleSection(-1))
	case platform.KeyRight:
		f.markIf(f.state.CycleSection(1))
	case platform.KeyTab:
		if !ev.Ctrl() {
			return
		}
		delta := 1
		if ev.Shift() {
			delta = -1
		}
		f.markIf(f.state.CycleSection(delta))
	case platform.KeyC:
		if !ev.Ctrl() {
			return
		}
		if ev.Shift() {
			f.copyImage()
			return
		}
		f.copyText()
	case platform.KeyS:
		if ev.Ctrl() {
			f.exportImage()
		}
	}
}
