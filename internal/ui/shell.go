package ui

import (
	"image"
	"image/color"

	"cantina/internal/dpi"
	"cantina/internal/page"
	"cantina/internal/render"
	"cantina/internal/state"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
)

// ImageSource resolves an asset name to a decoded image. A false result
// means the image is missing or unusable and its draw is skipped.
type ImageSource interface {
	Image(name string) (image.Image, bool)
}

type scaledKey struct {
	asset string
	w, h  int
}

// Renderer paints whole frames. It owns the fonts and a cache of photos
// already scaled to their frame size.
type Renderer struct {
	theme  Theme
	fonts  *FontBank
	images ImageSource

	scaled map[scaledKey]*image.RGBA
	used   map[scaledKey]bool
}

func NewRenderer(theme Theme, images ImageSource) *Renderer {
	return &Renderer{
		theme:  theme,
		fonts:  NewFontBank(),
		images: images,
		scaled: map[scaledKey]*image.RGBA{},
		used:   map[scaledKey]bool{},
	}
}

func (r *Renderer) Fonts() *FontBank         { return r.fonts }
func (r *Renderer) Close() error             { return r.fonts.Close() }
func (r *Renderer) Layout(in Input) Geometry { return ComputeLayout(in, r.theme) }

// InputFor is the layout input a frame of st at w x h uses.
func InputFor(st *state.State, w, h int) Input {
	return Input{Width: w, Height: h, DPI: st.DPI, Section: st.Section, Scroll: st.Scroll.Pos}
}

// Paint draws the frame for st back to front and returns the geometry it
// drew with. status, when set, is shown in the header.
func (r *Renderer) Paint(fb *render.FrameBuffer, st *state.State, status string) Geometry {
	g := r.Layout(InputFor(st, fb.W, fb.H))
	d := st.DPI

	fb.Clear(r.theme.AppBackground)
	r.paintHeader(fb, g, d, status)
	r.paintTabBar(fb, g, st.Section, d)

	fb.FillRect(g.Shadow.X, g.Shadow.Y, g.Shadow.W, g.Shadow.H, r.theme.Shadow)
	fb.RoundRect(g.Card.X, g.Card.Y, g.Card.W, g.Card.H, dpi.Scale(r.theme.CardRadiusDp, d)/2, r.theme.Card, r.theme.CardBorder)

	fb.WithClip(g.Clip.Image(), func() {
		if g.Menu != nil {
			r.paintMenu(fb, g, st, d)
			return
		}
		if c, ok := page.ContentFor(st.Section); ok {
			r.paintContent(fb, g, c, d)
		}
	})

	if g.ScrollbarVisible() {
		t, th := g.ScrollTrack, g.ScrollThumb
		fb.RoundRect(t.X, t.Y, t.W, t.H, t.W/2, r.theme.ScrollTrack, r.theme.ScrollTrack)
		fb.RoundRect(th.X, th.Y, th.W, th.H, th.W/2, r.theme.ScrollThumb, r.theme.ScrollThumb)
	}

	r.pruneScaled()
	return g
}

func (r *Renderer) paintHeader(fb *render.FrameBuffer, g Geometry, d int, status string) {
	h := g.Header.H
	for i := 0; i < h; i++ {
		fb.FillRect(g.Header.X, g.Header.Y+i, g.Header.W, 1, headerGradient(i, h))
	}
	s := func(v int) int { return dpi.Scale(v, d) }
	drawTop(fb, r.fonts.Title(d), s(24), g.Header.Y+s(26), page.Title, r.theme.HeaderText)
	drawTop(fb, r.fonts.Text(d), s(26), g.Header.Y+s(66), page.Tagline, r.theme.HeaderSubtext)

	if status != "" {
		small := r.fonts.Small(d)
		tw := measureString(small, status)
		x := g.Header.Right() - s(24) - tw
		drawTop(fb, small, x, g.Header.Bottom()-s(28), status, r.theme.HeaderSubtext)
	}
}

func (r *Renderer) paintTabBar(fb *render.FrameBuffer, g Geometry, active page.Section, d int) {
	bar := g.TabBar
	fb.FillRect(bar.X, bar.Y, bar.W, bar.H, r.theme.TabBar)
	face := r.fonts.Text(d)
	for i, tab := range page.Tabs() {
		if i >= len(g.Tabs) {
			break
		}
		tr := g.Tabs[i]
		if tab.Section == active {
			hl := tr.Inset(dpi.Scale(tabInsetDp, d))
			fb.RoundRect(hl.X, hl.Y, hl.W, hl.H, dpi.Scale(tabRadiusDp, d)/2, r.theme.TabActive, r.theme.TabActiveEdge)
		}
		drawCentered(fb, face, tr, tab.Label, r.theme.TabText)
	}
}

func (r *Renderer) paintContent(fb *render.FrameBuffer, g Geometry, c page.Content, d int) {
	x, y, w := g.Body.X, g.Body.Y, g.Body.W
	drawTop(fb, r.fonts.Title(d), x, y, c.Title, r.theme.Heading)
	y += dpi.Scale(c.TitleGap, d)

	face := r.fonts.Text(d)
	lineH := face.Metrics().Height.Ceil()
	for _, p := range c.Paragraphs {
		py := y
		for _, line := range wrapText(face, p, w) {
			drawTop(fb, face, x, py, line, r.theme.Body)
			py += lineH
		}
		if c.Step > 0 {
			y += dpi.Scale(c.Step, d)
		} else {
			y = py
		}
	}
}

func (r *Renderer) paintMenu(fb *render.FrameBuffer, g Geometry, st *state.State, d int) {
	m := g.Menu
	title := r.fonts.Title(d)
	drawTop(fb, title, g.Body.X, m.TitleY, page.MenuTitle, r.theme.Heading)
	r.paintRows(fb, m.DishRows, page.Dishes(), st.Dish, d)
	r.paintFrame(fb, m.DishFrame, m.DishImage, st.SelectedDish().Asset, d)

	drawTop(fb, title, g.Body.X, m.SpecialsTitle, page.SpecialsTitle, r.theme.Heading)
	r.paintRows(fb, m.SpecialRows, page.Specials(), st.Special, d)
	r.paintFrame(fb, m.SpecialFrame, m.SpecialImage, st.SelectedSpecial().Asset, d)
}

func (r *Renderer) paintRows(fb *render.FrameBuffer, rows []Rect, items []page.Item, selected page.ItemID, d int) {
	face := r.fonts.Text(d)
	radius := dpi.Scale(rowRadiusDp, d) / 2
	for i, row := range rows {
		if i >= len(items) {
			break
		}
		bg := r.theme.Row
		if items[i].ID == selected {
			bg = r.theme.RowSelected
		}
		fb.RoundRect(row.X, row.Y, row.W, row.H, radius, bg, r.theme.RowBorder)
		// A quarter of the row height approximates vertical centering.
		drawTop(fb, face, row.X+dpi.Scale(rowTextInsetDp, d), row.Y+row.H/4, items[i].Name, r.theme.RowText)
	}
}

func (r *Renderer) paintFrame(fb *render.FrameBuffer, frame, inner Rect, asset string, d int) {
	fb.RoundRect(frame.X, frame.Y, frame.W, frame.H, dpi.Scale(frameRadiusDp, d)/2, r.theme.Card, r.theme.CardBorder)
	if r.images == nil {
		return
	}
	src, ok := r.images.Image(asset)
	if !ok || src == nil {
		return
	}
	b := src.Bounds()
	fit := Fit(inner, b.Dx(), b.Dy())
	if fit.Empty() {
		return
	}
	fb.DrawImage(r.scaledImage(asset, src, fit.W, fit.H), fit.X, fit.Y)
}

// scaledImage returns src resampled to w x h, reusing the previous frame's
// result when the size is unchanged.
func (r *Renderer) scaledImage(asset string, src image.Image, w, h int) *image.RGBA {
	key := scaledKey{asset: asset, w: w, h: h}
	r.used[key] = true
	if img, ok := r.scaled[key]; ok {
		return img
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.CatmullRom.Scale(img, img.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	r.scaled[key] = img
	return img
}

// pruneScaled drops scaled photos the last frame did not draw.
func (r *Renderer) pruneScaled() {
	for k := range r.scaled {
		if !r.used[k] {
			delete(r.scaled, k)
		}
	}
	clear(r.used)
}

// drawTop draws s with the top of its line box at y.
func drawTop(fb *render.FrameBuffer, face font.Face, x, y int, s string, c color.RGBA) {
	fb.DrawText(face, x, y+face.Metrics().Ascent.Ceil(), s, c)
}

func drawCentered(fb *render.FrameBuffer, face font.Face, r Rect, s string, c color.RGBA) {
	tw := measureString(face, s)
	ascent := face.Metrics().Ascent.Round()
	descent := face.Metrics().Descent.Round()
	x := r.X + (r.W-tw)/2
	baseline := r.Y + (r.H+ascent+descent)/2 - descent
	fb.DrawText(face, x, baseline, s, c)
}
