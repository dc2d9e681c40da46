package ui

import (
	"testing"

	"cantina/internal/page"

	"github.com/stretchr/testify/require"
)

func menuInput(w, h, d, scroll int) Input {
	return Input{Width: w, Height: h, DPI: d, Section: page.SectionMenu, Scroll: scroll}
}

func TestTabsTileTheBar(t *testing.T) {
	for _, w := range []int{1, 4, 5, 99, 640, 1100, 1333, 2561} {
		for _, n := range []int{1, 3, 5, 7} {
			bar := Rect{X: 3, Y: 10, W: w, H: 48}
			tabs := TabRects(bar, n)
			require.Len(t, tabs, n)
			require.Equal(t, bar.X, tabs[0].X)
			require.Equal(t, bar.Right(), tabs[n-1].Right())
			total := 0
			for i, tr := range tabs {
				require.GreaterOrEqual(t, tr.W, 0)
				require.Equal(t, bar.Y, tr.Y)
				require.Equal(t, bar.H, tr.H)
				if i > 0 {
					require.Equal(t, tabs[i-1].Right(), tr.X, "gap or overlap at tab %d (w=%d n=%d)", i, w, n)
				}
				total += tr.W
			}
			require.Equal(t, w, total)
		}
	}
	require.Nil(t, TabRects(Rect{W: 10}, 0))
}

func TestComputeLayoutIsDeterministic(t *testing.T) {
	theme := DefaultTheme()
	for _, d := range []int{96, 120, 144, 192} {
		for _, s := range []page.Section{page.SectionHome, page.SectionMenu, page.SectionContact} {
			in := Input{Width: 1100, Height: 720, DPI: d, Section: s, Scroll: 40}
			require.Equal(t, ComputeLayout(in, theme), ComputeLayout(in, theme))
		}
	}
}

func TestLayoutScalesWithDPI(t *testing.T) {
	theme := DefaultTheme()
	g := ComputeLayout(Input{Width: 1100, Height: 720, DPI: 96}, theme)
	require.Equal(t, Rect{X: 0, Y: 0, W: 1100, H: 140}, g.Header)
	require.Equal(t, Rect{X: 0, Y: 140, W: 1100, H: 48}, g.TabBar)
	require.Equal(t, Rect{X: 24, Y: 208, W: 1052, H: 488}, g.Content)
	require.Equal(t, Rect{X: 28, Y: 212, W: 1044, H: 480}, g.Card)
	require.Nil(t, g.Menu)
	require.Equal(t, g.ViewportHeight, g.ContentHeight)
	require.False(t, g.ScrollbarVisible())

	g = ComputeLayout(Input{Width: 1650, Height: 1080, DPI: 144}, theme)
	require.Equal(t, 210, g.Header.H)
	require.Equal(t, 72, g.TabBar.H)
	require.Equal(t, 36, g.Content.X)
}

func TestMenuLayoutAtDefaultSize(t *testing.T) {
	g := ComputeLayout(menuInput(1100, 720, 96, 0), DefaultTheme())
	m := g.Menu
	require.NotNil(t, m)
	require.Len(t, m.DishRows, len(page.Dishes()))
	require.Len(t, m.SpecialRows, len(page.Specials()))

	// card.Y 212, pad 20, title gap 44
	require.Equal(t, 232, m.TitleY)
	require.Equal(t, Rect{X: 48, Y: 276, W: 300, H: 36}, m.DishRows[0])
	require.Equal(t, Rect{X: 48, Y: 372, W: 300, H: 36}, m.DishRows[2])
	require.Equal(t, Rect{X: 652, Y: 232, W: 400, H: 300}, m.DishFrame)
	require.Equal(t, m.DishFrame.Inset(14), m.DishImage)

	// rows end at 276+5*48 = 516, frame ends at 532: specials title at 568
	require.Equal(t, 568, m.SpecialsTitle)
	require.Equal(t, 612, m.SpecialRows[0].Y)
	require.Equal(t, Rect{X: 652, Y: 568, W: 400, H: 280}, m.SpecialFrame)

	// rows end at 612+4*48 = 804, frame at 848: bottom 868, content 868-212+10
	require.Equal(t, 666, g.ContentHeight)
	require.Equal(t, 480, g.ViewportHeight)
	require.Equal(t, 186, g.MaxScroll())
	require.True(t, g.ScrollbarVisible())
}

func TestMenuScrollOffsetsEveryRect(t *testing.T) {
	theme := DefaultTheme()
	base := ComputeLayout(menuInput(1100, 720, 120, 0), theme)
	scrolled := ComputeLayout(menuInput(1100, 720, 120, 75), theme)
	require.Equal(t, base.ContentHeight, scrolled.ContentHeight)
	require.Equal(t, base.Menu.TitleY-75, scrolled.Menu.TitleY)
	require.Equal(t, base.Menu.SpecialsTitle-75, scrolled.Menu.SpecialsTitle)
	for i := range base.Menu.DishRows {
		require.Equal(t, base.Menu.DishRows[i].Offset(0, -75), scrolled.Menu.DishRows[i])
	}
	for i := range base.Menu.SpecialRows {
		require.Equal(t, base.Menu.SpecialRows[i].Offset(0, -75), scrolled.Menu.SpecialRows[i])
	}
	require.Equal(t, base.Menu.DishFrame.Offset(0, -75), scrolled.Menu.DishFrame)
	require.Equal(t, base.Menu.SpecialImage.Offset(0, -75), scrolled.Menu.SpecialImage)
}

func TestNoScrollbarWhenMenuFits(t *testing.T) {
	g := ComputeLayout(menuInput(1100, 1400, 96, 0), DefaultTheme())
	require.Equal(t, 0, g.MaxScroll())
	require.False(t, g.ScrollbarVisible())
}

func TestScrollbarThumbTracksPosition(t *testing.T) {
	theme := DefaultTheme()
	top := ComputeLayout(menuInput(1100, 720, 96, 0), theme)
	bottom := ComputeLayout(menuInput(1100, 720, 96, top.MaxScroll()), theme)
	require.Equal(t, top.ScrollTrack.Y, top.ScrollThumb.Y)
	require.Equal(t, bottom.ScrollTrack.Bottom(), bottom.ScrollThumb.Bottom())
	require.Equal(t, 0, top.ThumbValue(top.ScrollTrack.Y))
	require.Equal(t, top.MaxScroll(), top.ThumbValue(top.ScrollTrack.Bottom()))
	require.Equal(t, 0, top.ThumbValue(-500))

	for _, pos := range []int{0, 17, 93, 150, 186} {
		g := ComputeLayout(menuInput(1100, 720, 96, pos), theme)
		require.InDelta(t, pos, g.ThumbValue(g.ScrollThumb.Y), 2)
		require.GreaterOrEqual(t, g.ScrollThumb.Y, g.ScrollTrack.Y)
		require.LessOrEqual(t, g.ScrollThumb.Bottom(), g.ScrollTrack.Bottom())
	}
}

func TestFitKeepsAspectInsideDestination(t *testing.T) {
	for _, tc := range []struct {
		dest       Rect
		srcW, srcH int
	}{
		{Rect{10, 20, 372, 272}, 320, 240},
		{Rect{0, 0, 372, 252}, 160, 120},
		{Rect{0, 0, 100, 400}, 640, 480},
		{Rect{5, 5, 37, 11}, 3, 7},
		{Rect{0, 0, 1000, 10}, 10, 1000},
	} {
		got := Fit(tc.dest, tc.srcW, tc.srcH)
		require.LessOrEqual(t, got.W, tc.dest.W)
		require.LessOrEqual(t, got.H, tc.dest.H)
		require.GreaterOrEqual(t, got.X, tc.dest.X)
		require.GreaterOrEqual(t, got.Y, tc.dest.Y)
		require.LessOrEqual(t, got.Right(), tc.dest.Right())
		require.LessOrEqual(t, got.Bottom(), tc.dest.Bottom())
		// one side fills the destination
		require.True(t, got.W >= tc.dest.W-1 || got.H >= tc.dest.H-1)
		// aspect ratio within one pixel of rounding
		require.InDelta(t, float64(tc.srcW)/float64(tc.srcH)*float64(got.H), float64(got.W), float64(tc.srcW)/float64(tc.srcH)+1)
	}
	require.True(t, Fit(Rect{W: 10, H: 10}, 0, 5).Empty())
	require.True(t, Fit(Rect{W: 0, H: 10}, 5, 5).Empty())
}

func TestFitCenters(t *testing.T) {
	got := Fit(Rect{X: 0, Y: 0, W: 400, H: 300}, 100, 100)
	require.Equal(t, Rect{X: 50, Y: 0, W: 300, H: 300}, got)
}

func TestRectHelpers(t *testing.T) {
	r := Rect{X: 10, Y: 10, W: 10, H: 10}
	require.True(t, r.Contains(10, 10))
	require.True(t, r.Contains(19, 19))
	require.False(t, r.Contains(20, 19))
	require.False(t, r.Contains(9, 15))
	cx, cy := r.Center()
	require.Equal(t, 15, cx)
	require.Equal(t, 15, cy)
	require.Equal(t, Rect{X: 12, Y: 12, W: 6, H: 6}, r.Inset(2))
	require.Equal(t, 20, r.Image().Max.X)
}
