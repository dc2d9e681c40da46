package platform

import "cantina/internal/render"

type WindowConfig struct {
	Title       string
	WidthPx     int
	HeightPx    int
	MinWidthPx  int
	MinHeightPx int
	// DPI pins the display density. Zero asks the backend.
	DPI int
}

type EventType int

const (
	EventUnknown EventType = iota
	EventClose
	EventResize
	EventDPIChanged
	EventKeyDown
	EventMouseMove
	EventMouseDown
	EventMouseUp
	EventMouseWheel
	EventScroll
)

type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyPageUp
	KeyPageDown
	KeyHome
	KeyEnd
	KeyLeft
	KeyRight
	KeyTab
	KeyC
	KeyS
)

type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
)

// ScrollAction mirrors the commands a native vertical scrollbar sends.
type ScrollAction int

const (
	ScrollLineUp ScrollAction = iota
	ScrollLineDown
	ScrollPageUp
	ScrollPageDown
	ScrollThumb
	ScrollTop
	ScrollBottom
)

// Event is one entry of the serialized input queue. Coordinates are device
// pixels relative to the client area.
type Event struct {
	Type   EventType
	Width  int
	Height int
	DPI    int
	X      int
	Y      int
	// DeltaY counts wheel notches; positive rolls away from the user.
	DeltaY int
	Key    Key
	Mods   Modifiers
	Scroll ScrollAction
	// Value is the absolute position of a ScrollThumb action.
	Value int
}

func (e Event) Ctrl() bool  { return e.Mods&ModCtrl != 0 }
func (e Event) Shift() bool { return e.Mods&ModShift != 0 }

type Platform interface {
	Name() string
	CreateWindow(cfg WindowConfig) (Window, error)
}

type Window interface {
	PollEvents() []Event
	SizePx() (int, int)
	DPI() int
	Present(fb *render.FrameBuffer) error
	SetTitle(title string)
	Close()
}
