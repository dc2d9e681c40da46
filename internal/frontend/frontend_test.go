package frontend

import (
	"errors"
	"image/color"
	"io"
	"log/slog"
	"testing"
	"testing/fstest"

	"cantina/internal/assets"
	"cantina/internal/page"
	"cantina/internal/platform"
	"cantina/internal/platform/headless"
	"cantina/internal/render"

	"github.com/stretchr/testify/require"
)

type fakeActions struct {
	text    string
	png     []byte
	saved   string
	path    string
	saveErr error
}

func (a *fakeActions) CopyText(text string) error {
	a.text = text
	return nil
}

func (a *fakeActions) CopyImage(png []byte) error {
	a.png = png
	return nil
}

func (a *fakeActions) SaveImage(suggested string, png []byte) (string, error) {
	if a.saveErr != nil {
		return "", a.saveErr
	}
	a.saved = suggested
	a.png = png
	return a.path, nil
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newFrontend(t *testing.T, images Images, actions Actions) *Frontend {
	t.Helper()
	f := New(Options{Width: 1100, Height: 720, DPI: 96, Images: images, Actions: actions, Logger: quietLogger()})
	t.Cleanup(func() { _ = f.Close() })
	return f
}

func click(f *Frontend, x, y int) bool {
	f.Handle(platform.Event{Type: platform.EventMouseDown, X: x, Y: y})
	return f.Handle(platform.Event{Type: platform.EventMouseUp, X: x, Y: y})
}

func openMenu(t *testing.T, f *Frontend) {
	t.Helper()
	x, y := f.Geometry().Tabs[1].Center()
	require.True(t, click(f, x, y))
	require.Equal(t, page.SectionMenu, f.State().Section)
	f.Render(1100, 720)
}

func TestStartsOnHomeWithFirstItems(t *testing.T) {
	f := newFrontend(t, nil, nil)
	st := f.State()
	require.Equal(t, page.SectionHome, st.Section)
	require.Equal(t, page.DishRanas, st.Dish)
	require.Equal(t, page.SpecialQuinotos, st.Special)
	require.Equal(t, 0, st.Scroll.Pos)
	require.True(t, f.Dirty())
	require.Nil(t, f.Geometry().Menu)
}

func TestMenuTabClickThenWheelThenDish(t *testing.T) {
	f := newFrontend(t, assets.Default(quietLogger()), nil)
	f.Render(1100, 720)
	require.False(t, f.Dirty())

	openMenu(t, f)
	st := f.State()
	require.Equal(t, 0, st.Scroll.Pos)
	require.Equal(t, 186, st.Scroll.Max)

	// one notch toward the user scrolls down
	require.True(t, f.Handle(platform.Event{Type: platform.EventMouseWheel, DeltaY: -1}))
	require.Equal(t, 60, st.Scroll.Pos)
	require.True(t, f.Handle(platform.Event{Type: platform.EventMouseWheel, DeltaY: 5}))
	require.Equal(t, 0, st.Scroll.Pos)
	require.False(t, f.Handle(platform.Event{Type: platform.EventMouseWheel, DeltaY: 1}))

	x, y := f.Geometry().Menu.DishRows[2].Center()
	require.Equal(t, 198, x)
	require.Equal(t, 390, y)
	require.True(t, click(f, x, y))
	require.Equal(t, page.DishRabas, st.Dish)
	require.Equal(t, page.SpecialQuinotos, st.Special)

	x, y = f.Geometry().Menu.SpecialRows[1].Center()
	click(f, x, y)
	require.Equal(t, page.SpecialMondongo, st.Special)
	require.Equal(t, page.DishRabas, st.Dish)
}

func TestWheelIgnoredOutsideMenu(t *testing.T) {
	f := newFrontend(t, nil, nil)
	f.Render(1100, 720)
	require.False(t, f.Handle(platform.Event{Type: platform.EventMouseWheel, DeltaY: -3}))
	require.Equal(t, 0, f.State().Scroll.Pos)
	require.False(t, f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnd}))
}

func TestTabClickResetsScroll(t *testing.T) {
	f := newFrontend(t, nil, nil)
	openMenu(t, f)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnd})
	require.Equal(t, 186, f.State().Scroll.Pos)

	// clicking the active tab again still resets
	x, y := f.Geometry().Tabs[1].Center()
	require.True(t, click(f, x, y))
	require.Equal(t, 0, f.State().Scroll.Pos)

	x, y = f.Geometry().Tabs[3].Center()
	click(f, x, y)
	require.Equal(t, page.SectionHours, f.State().Section)
	require.False(t, f.State().Scroll.Active)
}

func TestRowsOutsideClipCannotBePicked(t *testing.T) {
	f := newFrontend(t, nil, nil)
	openMenu(t, f)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnd})
	g := f.Geometry()
	row := g.Menu.DishRows[0]
	require.Less(t, row.Bottom(), g.Clip.Y)

	x, y := row.Center()
	require.False(t, f.Click(x, y))
	require.Equal(t, page.DishRanas, f.State().Dish)
}

func TestRowsIgnoredOffMenu(t *testing.T) {
	f := newFrontend(t, nil, nil)
	require.False(t, f.Click(198, 390))
	require.Equal(t, page.DishRanas, f.State().Dish)
}

func TestDPIChangeKeepsStateAndRebuildsFonts(t *testing.T) {
	f := newFrontend(t, nil, nil)
	openMenu(t, f)
	x, y := f.Geometry().Menu.DishRows[3].Center()
	click(f, x, y)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnd})
	require.Equal(t, 186, f.State().Scroll.Pos)
	require.Positive(t, f.renderer.Fonts().Len())

	require.True(t, f.Handle(platform.Event{Type: platform.EventDPIChanged, DPI: 144}))
	st := f.State()
	require.Equal(t, 144, st.DPI)
	require.Equal(t, page.SectionMenu, st.Section)
	require.Equal(t, page.DishMerluza, st.Dish)
	require.Equal(t, 0, f.renderer.Fonts().Len())
	require.LessOrEqual(t, st.Scroll.Pos, st.Scroll.Max)
	require.Equal(t, 186, st.Scroll.Pos)

	g := f.Geometry()
	require.Equal(t, 210, g.Header.H)
	require.Equal(t, 144, g.Input.DPI)

	require.False(t, f.Handle(platform.Event{Type: platform.EventDPIChanged, DPI: 144}))
}

func TestDPIChangeClampsScroll(t *testing.T) {
	f := New(Options{Width: 1100, Height: 720, DPI: 192, Logger: quietLogger()})
	defer f.Close()
	openMenu(t, f)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyEnd})
	high := f.State().Scroll.Pos
	require.Positive(t, high)

	f.Handle(platform.Event{Type: platform.EventDPIChanged, DPI: 96})
	require.Equal(t, 186, f.State().Scroll.Max)
	require.Equal(t, 186, f.State().Scroll.Pos)
}

func TestStaleGeometryIsRecomputed(t *testing.T) {
	f := newFrontend(t, nil, nil)
	f.Render(1100, 720)
	// at 1100 wide x=500 is the third tab
	require.True(t, f.Handle(platform.Event{Type: platform.EventResize, Width: 2200, Height: 720}))
	require.True(t, f.Click(500, 164))
	// at 2200 wide it is the second
	require.Equal(t, page.SectionMenu, f.State().Section)
	require.Equal(t, 2200, f.Geometry().Input.Width)
}

func TestThumbDragAndTrackPaging(t *testing.T) {
	f := newFrontend(t, nil, nil)
	openMenu(t, f)
	g := f.Geometry()
	require.True(t, g.ScrollbarVisible())
	require.Equal(t, 220, g.ScrollThumb.Y)

	f.Handle(platform.Event{Type: platform.EventMouseDown, X: 1060, Y: 300})
	require.True(t, f.Handle(platform.Event{Type: platform.EventMouseMove, X: 1060, Y: 400}))
	require.Equal(t, 143, f.State().Scroll.Pos)
	// release ends the drag without a click
	require.False(t, f.Handle(platform.Event{Type: platform.EventMouseUp, X: 1060, Y: 400}))
	require.False(t, f.Handle(platform.Event{Type: platform.EventMouseMove, X: 1060, Y: 200}))
	require.Equal(t, 143, f.State().Scroll.Pos)

	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyHome})
	require.Equal(t, 0, f.State().Scroll.Pos)
	f.Handle(platform.Event{Type: platform.EventMouseDown, X: 1060, Y: 600})
	require.Equal(t, 186, f.State().Scroll.Pos)
	f.Handle(platform.Event{Type: platform.EventMouseUp, X: 1060, Y: 600})
	g = f.Geometry()
	f.Handle(platform.Event{Type: platform.EventMouseDown, X: 1060, Y: g.ScrollTrack.Y + 1})
	require.Equal(t, 0, f.State().Scroll.Pos)
}

func TestScrollbarCommands(t *testing.T) {
	f := newFrontend(t, nil, nil)
	openMenu(t, f)
	st := f.State()
	f.Handle(platform.Event{Type: platform.EventScroll, Scroll: platform.ScrollLineDown})
	require.Equal(t, 30, st.Scroll.Pos)
	f.Handle(platform.Event{Type: platform.EventScroll, Scroll: platform.ScrollThumb, Value: 100})
	require.Equal(t, 100, st.Scroll.Pos)
	f.Handle(platform.Event{Type: platform.EventScroll, Scroll: platform.ScrollThumb, Value: 9999})
	require.Equal(t, 186, st.Scroll.Pos)
	f.Handle(platform.Event{Type: platform.EventScroll, Scroll: platform.ScrollPageUp})
	require.Equal(t, 0, st.Scroll.Pos)
}

func TestKeysCycleSections(t *testing.T) {
	f := newFrontend(t, nil, nil)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyLeft})
	require.Equal(t, page.SectionContact, f.State().Section)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyTab, Mods: platform.ModCtrl})
	require.Equal(t, page.SectionHome, f.State().Section)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyRight})
	require.Equal(t, page.SectionMenu, f.State().Section)
	require.False(t, f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyTab}))
	require.Equal(t, page.SectionMenu, f.State().Section)
}

func TestCopyAndExportActions(t *testing.T) {
	act := &fakeActions{path: "/tmp/out/ranas.png"}
	f := newFrontend(t, assets.Default(quietLogger()), act)

	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyC, Mods: platform.ModCtrl})
	require.Equal(t, SectionText(f.State()), act.text)
	require.Contains(t, act.text, "Bienvenido")
	require.Equal(t, "Texto copiado", f.Status())

	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyC, Mods: platform.ModCtrl | platform.ModShift})
	require.NotEmpty(t, act.png)
	require.Equal(t, "Imagen copiada", f.Status())

	act.png = nil
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyS, Mods: platform.ModCtrl})
	require.Equal(t, "ranas.png", act.saved)
	require.NotEmpty(t, act.png)
	require.Equal(t, "Guardado ranas.png", f.Status())

	act.path = ""
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyRight})
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyC, Mods: platform.ModCtrl})
	require.Equal(t, "Nuestra Carta: Ranas a la provenzal\nNuestras Especialidades: Quinotos al Rhum con Helado de Americana", act.text)

	act.saveErr = errors.New("no display")
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyS, Mods: platform.ModCtrl})
	require.Contains(t, f.Status(), "no display")
}

func TestExportOfMissingPhotoReportsError(t *testing.T) {
	act := &fakeActions{path: "x.png"}
	f := newFrontend(t, assets.New(fstest.MapFS{}, nil, quietLogger()), act)
	f.Handle(platform.Event{Type: platform.EventKeyDown, Key: platform.KeyS, Mods: platform.ModCtrl})
	require.Empty(t, act.saved)
	require.Contains(t, f.Status(), "asset not found")
}

func TestMissingImageIsSkipped(t *testing.T) {
	f := newFrontend(t, assets.New(fstest.MapFS{}, nil, quietLogger()), nil)
	openMenu(t, f)
	fb, painted := f.Render(1100, 720)
	require.False(t, painted)
	cx, cy := f.Geometry().Menu.DishImage.Center()
	require.Equal(t, color.RGBA{255, 255, 255, 255}, fb.Image().RGBAAt(cx, cy))
}

func TestHeaderStartsWithGradientColour(t *testing.T) {
	f := newFrontend(t, nil, nil)
	fb := render.NewFrameBuffer(1100, 720)
	f.Paint(fb)
	require.Equal(t, color.RGBA{245, 220, 120, 255}, fb.Image().RGBAAt(0, 0))
}

func TestPumpPresentsOnlyWhenDirty(t *testing.T) {
	win, err := headless.New().CreateWindow(platform.WindowConfig{WidthPx: 1100, HeightPx: 720})
	require.NoError(t, err)
	hw := win.(*headless.Window)
	f := newFrontend(t, nil, nil)

	ok, err := f.Pump(hw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, hw.Presents())

	ok, err = f.Pump(hw)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, 1, hw.Presents())

	x, y := f.Geometry().Tabs[4].Center()
	hw.Push(platform.Event{Type: platform.EventMouseUp, X: x, Y: y})
	_, err = f.Pump(hw)
	require.NoError(t, err)
	require.Equal(t, 2, hw.Presents())
	require.Equal(t, page.SectionContact, f.State().Section)
	require.Equal(t, color.RGBA{245, 220, 120, 255}, hw.Frame().RGBAAt(0, 0))

	hw.Close()
	ok, err = f.Pump(hw)
	require.NoError(t, err)
	require.False(t, ok)
}
