package ui

import (
	"image"

	"cantina/internal/dpi"
	"cantina/internal/page"
)

// Logical metrics of the content card and the menu page.
const (
	contentTopGapDp   = 20
	cardInsetDp       = 4
	cardPadDp         = 20
	clipInsetDp       = 8
	shadowOffsetDp    = 3
	tabInsetDp        = 8
	tabRadiusDp       = 12
	rowWidthDp        = 300
	rowHeightDp       = 36
	rowGapDp          = 12
	rowRadiusDp       = 8
	rowTextInsetDp    = 12
	titleGapDp        = 44
	imageWidthDp      = 400
	dishImageHeightDp = 300
	specImageHeightDp = 280
	imageInsetDp      = 14
	frameRadiusDp     = 12
	specialsGapDp     = 36
	bottomMarginDp    = 20
	contentExtraDp    = 10
	scrollTrackDp     = 8
	scrollTrackEdgeDp = 16
	scrollThumbMinDp  = 24
)

type Rect struct {
	X, Y, W, H int
}

func (r Rect) Contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

func (r Rect) Right() int  { return r.X + r.W }
func (r Rect) Bottom() int { return r.Y + r.H }

func (r Rect) Empty() bool { return r.W <= 0 || r.H <= 0 }

// Center is the integer centroid.
func (r Rect) Center() (int, int) { return r.X + r.W/2, r.Y + r.H/2 }

// Inset shrinks the rect by d on every side. Negative d grows it.
func (r Rect) Inset(d int) Rect {
	return Rect{X: r.X + d, Y: r.Y + d, W: r.W - 2*d, H: r.H - 2*d}
}

func (r Rect) Offset(dx, dy int) Rect {
	return Rect{X: r.X + dx, Y: r.Y + dy, W: r.W, H: r.H}
}

func (r Rect) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.W, r.Y+r.H)
}

// Input is everything the geometry depends on.
type Input struct {
	Width   int
	Height  int
	DPI     int
	Section page.Section
	Scroll  int
}

type Geometry struct {
	Input Input

	Header Rect
	TabBar Rect
	Tabs   []Rect

	// Content is the area below the tab bar; Card is the rounded panel inside
	// it and Body the card minus its padding.
	Content Rect
	Card    Rect
	Shadow  Rect
	Body    Rect
	Clip    Rect

	Menu *MenuGeometry

	// ViewportHeight and ContentHeight feed the scroll engine. Outside the
	// menu the content is exactly one viewport tall.
	ViewportHeight int
	ContentHeight  int

	ScrollTrack Rect
	ScrollThumb Rect
}

// MenuGeometry holds the scrolled (device space) rects of the menu page.
type MenuGeometry struct {
	TitleY        int
	DishRows      []Rect
	DishFrame     Rect
	DishImage     Rect
	SpecialsTitle int
	SpecialRows   []Rect
	SpecialFrame  Rect
	SpecialImage  Rect
}

// ScrollbarVisible reports whether the menu overflows its card.
func (g Geometry) ScrollbarVisible() bool {
	return !g.ScrollThumb.Empty()
}

// MaxScroll is the largest valid scroll offset for this geometry.
func (g Geometry) MaxScroll() int {
	return max(0, g.ContentHeight-g.ViewportHeight)
}

// ComputeLayout derives every rect of a frame. It is pure: equal inputs give
// equal geometry.
func ComputeLayout(in Input, theme Theme) Geometry {
	s := func(v int) int { return dpi.Scale(v, in.DPI) }
	w, h := max(0, in.Width), max(0, in.Height)

	g := Geometry{Input: in}
	g.Header = Rect{X: 0, Y: 0, W: w, H: s(theme.HeaderHeightDp)}
	g.TabBar = Rect{X: 0, Y: g.Header.Bottom(), W: w, H: s(theme.TabBarHeightDp)}
	g.Tabs = TabRects(g.TabBar, len(page.Tabs()))

	margin := s(theme.PageMarginDp)
	top := g.TabBar.Bottom() + s(contentTopGapDp)
	g.Content = Rect{X: margin, Y: top, W: w - 2*margin, H: h - margin - top}
	g.Card = g.Content.Inset(s(cardInsetDp))
	g.Shadow = g.Card.Offset(s(shadowOffsetDp), s(shadowOffsetDp))
	g.Body = g.Card.Inset(s(cardPadDp))
	g.Clip = g.Card.Inset(s(clipInsetDp))

	g.ViewportHeight = max(0, g.Card.H)
	g.ContentHeight = g.ViewportHeight

	if in.Section == page.SectionMenu {
		g.Menu, g.ContentHeight = menuLayout(g.Card, in.Scroll, s)
		g.ScrollTrack, g.ScrollThumb = scrollbar(g, in.Scroll, s)
	}
	return g
}

// TabRects splits bar into n side by side tabs. Tab i spans
// [W*i/n, W*(i+1)/n), so the tabs tile the bar with no gaps or overlaps and
// the last one ends at the bar's right edge.
func TabRects(bar Rect, n int) []Rect {
	if n <= 0 {
		return nil
	}
	out := make([]Rect, 0, n)
	for i := 0; i < n; i++ {
		left := bar.X + bar.W*i/n
		right := bar.X + bar.W*(i+1)/n
		out = append(out, Rect{X: left, Y: bar.Y, W: right - left, H: bar.H})
	}
	return out
}

func menuLayout(card Rect, scroll int, s func(int) int) (*MenuGeometry, int) {
	pad := s(cardPadDp)
	x := card.X + pad
	y := card.Y + pad
	off := -scroll
	rowW, rowH, gap := s(rowWidthDp), s(rowHeightDp), s(rowGapDp)

	m := &MenuGeometry{TitleY: y + off}

	// Y values below are logical (unscrolled); off is applied per rect.
	frameX := card.Right() - pad - s(imageWidthDp)
	frameW := s(imageWidthDp)
	dishFrameBottom := card.Y + pad + s(dishImageHeightDp)
	m.DishFrame = Rect{X: frameX, Y: card.Y + pad + off, W: frameW, H: s(dishImageHeightDp)}
	m.DishImage = m.DishFrame.Inset(s(imageInsetDp))

	yBtn := y + s(titleGapDp)
	for range page.Dishes() {
		m.DishRows = append(m.DishRows, Rect{X: x, Y: yBtn + off, W: rowW, H: rowH})
		yBtn += rowH + gap
	}

	specTitle := max(yBtn, dishFrameBottom) + s(specialsGapDp)
	m.SpecialsTitle = specTitle + off
	specFrameBottom := specTitle + s(specImageHeightDp)
	m.SpecialFrame = Rect{X: frameX, Y: specTitle + off, W: frameW, H: s(specImageHeightDp)}
	m.SpecialImage = m.SpecialFrame.Inset(s(imageInsetDp))

	yBtn = specTitle + s(titleGapDp)
	for range page.Specials() {
		m.SpecialRows = append(m.SpecialRows, Rect{X: x, Y: yBtn + off, W: rowW, H: rowH})
		yBtn += rowH + gap
	}

	bottom := max(yBtn, specFrameBottom) + s(bottomMarginDp)
	return m, bottom - card.Y + s(contentExtraDp)
}

func scrollbar(g Geometry, scroll int, s func(int) int) (Rect, Rect) {
	maxScroll := g.MaxScroll()
	if maxScroll <= 0 || g.ContentHeight <= 0 {
		return Rect{}, Rect{}
	}
	track := Rect{
		X: g.Card.Right() - s(scrollTrackEdgeDp),
		Y: g.Clip.Y,
		W: s(scrollTrackDp),
		H: g.Clip.H,
	}
	if track.Empty() {
		return Rect{}, Rect{}
	}
	thumbH := max(s(scrollThumbMinDp), track.H*g.ViewportHeight/g.ContentHeight)
	thumbH = min(thumbH, track.H)
	pos := min(max(0, scroll), maxScroll)
	thumbY := track.Y + (track.H-thumbH)*pos/maxScroll
	return track, Rect{X: track.X, Y: thumbY, W: track.W, H: thumbH}
}

// ThumbValue converts a thumb top edge (device y) into a scroll position.
func (g Geometry) ThumbValue(thumbTop int) int {
	travel := g.ScrollTrack.H - g.ScrollThumb.H
	maxScroll := g.MaxScroll()
	if travel <= 0 || maxScroll <= 0 {
		return 0
	}
	v := ((thumbTop-g.ScrollTrack.Y)*maxScroll + travel/2) / travel
	return min(max(0, v), maxScroll)
}

// Fit scales a srcW x srcH image into dest, preserving the aspect ratio and
// centering it. The result never exceeds dest.
func Fit(dest Rect, srcW, srcH int) Rect {
	if dest.Empty() || srcW <= 0 || srcH <= 0 {
		return Rect{}
	}
	sx := float64(dest.W) / float64(srcW)
	sy := float64(dest.H) / float64(srcH)
	k := min(sx, sy)
	w := min(int(float64(srcW)*k), dest.W)
	h := min(int(float64(srcH)*k), dest.H)
	return Rect{X: dest.X + (dest.W-w)/2, Y: dest.Y + (dest.H-h)/2, W: w, H: h}
}
