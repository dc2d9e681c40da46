package frontend

import (
	"errors"
	"fmt"
	"image"
	"log/slog"

	"cantina/internal/page"
	"cantina/internal/platform"
	"cantina/internal/platform/headless"
)

var errUnknownItem = errors.New("unknown menu item")

// SnapshotOptions describe one frame rendered without a display. Zero item
// IDs keep the default selection.
type SnapshotOptions struct {
	Width   int
	Height  int
	DPI     int
	Section page.Section
	Dish    page.ItemID
	Special page.ItemID
	Scroll  int
	Images  Images
	Logger  *slog.Logger
}

// Snapshot renders a single frame through a headless window, exactly as the
// interactive loop would paint it.
func Snapshot(opts SnapshotOptions) (*image.RGBA, error) {
	win := headless.New().Open(platform.WindowConfig{
		Title:    page.Title,
		WidthPx:  opts.Width,
		HeightPx: opts.Height,
		DPI:      opts.DPI,
	})
	defer win.Close()

	w, h := win.SizePx()
	front := New(Options{Width: w, Height: h, DPI: win.DPI(), Images: opts.Images, Logger: opts.Logger})
	defer front.Close()

	st := front.State()
	if opts.Section.Valid() {
		st.SelectSection(opts.Section)
	}
	if opts.Dish != 0 {
		if _, ok := page.DishByID(opts.Dish); !ok {
			return nil, fmt.Errorf("dish %d: %w", opts.Dish, errUnknownItem)
		}
		st.SelectDish(opts.Dish)
	}
	if opts.Special != 0 {
		if _, ok := page.SpecialByID(opts.Special); !ok {
			return nil, fmt.Errorf("special %d: %w", opts.Special, errUnknownItem)
		}
		st.SelectSpecial(opts.Special)
	}
	if opts.Scroll != 0 {
		win.Push(platform.Event{Type: platform.EventScroll, Scroll: platform.ScrollThumb, Value: opts.Scroll})
	}

	if _, err := front.Pump(win); err != nil {
		return nil, err
	}
	frame := win.Frame()
	if frame == nil {
		return nil, errors.New("no frame presented")
	}
	return frame, nil
}
