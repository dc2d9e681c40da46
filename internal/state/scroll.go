package state

import "cantina/internal/dpi"

// Logical step sizes.
const (
	LineStep   = 30
	WheelStep  = 60
	PageMargin = 40
)

type Command int

const (
	LineUp Command = iota
	LineDown
	PageUp
	PageDown
	Thumb
	Top
	Bottom
)

// Scroll is the vertical offset of the Menu section. All values are device
// pixels. While inactive the position and range are pinned to zero.
type Scroll struct {
	Pos      int
	Max      int
	Viewport int
	Content  int
	Active   bool
}

// Enable moves between the disabled and active states. Either transition
// resets the position.
func (s *Scroll) Enable(on bool) {
	s.Active = on
	s.Pos = 0
	if !on {
		s.Max = 0
	}
}

// SetBounds records the measured heights and clamps the position.
func (s *Scroll) SetBounds(content, viewport int) {
	s.Content = max(0, content)
	s.Viewport = max(0, viewport)
	if !s.Active {
		s.Pos = 0
		s.Max = 0
		return
	}
	s.Max = max(0, s.Content-s.Viewport)
	s.clamp()
}

// Visible reports whether a scrollbar should be shown.
func (s *Scroll) Visible() bool {
	return s.Active && s.Content > s.Viewport
}

// Do applies a scrollbar command. value is only read for Thumb. It reports
// whether the position moved.
func (s *Scroll) Do(cmd Command, value, scaleDPI int) bool {
	if !s.Active {
		return false
	}
	pos := s.Pos
	switch cmd {
	case LineUp:
		pos -= dpi.Scale(LineStep, scaleDPI)
	case LineDown:
		pos += dpi.Scale(LineStep, scaleDPI)
	case PageUp:
		pos -= s.page(scaleDPI)
	case PageDown:
		pos += s.page(scaleDPI)
	case Thumb:
		pos = value
	case Top:
		pos = 0
	case Bottom:
		pos = s.Max
	}
	return s.set(pos)
}

// Wheel moves one WheelStep per notch. Positive notches scroll up, as a wheel
// rolled away from the user does.
func (s *Scroll) Wheel(notches, scaleDPI int) bool {
	if !s.Active || s.Max <= 0 || notches == 0 {
		return false
	}
	return s.set(s.Pos - notches*dpi.Scale(WheelStep, scaleDPI))
}

func (s *Scroll) page(scaleDPI int) int {
	return max(1, s.Viewport-dpi.Scale(PageMargin, scaleDPI))
}

func (s *Scroll) set(pos int) bool {
	prev := s.Pos
	s.Pos = pos
	s.clamp()
	return s.Pos != prev
}

func (s *Scroll) clamp() {
	if s.Pos > s.Max {
		s.Pos = s.Max
	}
	if s.Pos < 0 {
		s.Pos = 0
	}
}
