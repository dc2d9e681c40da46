// Package state is the single application-state value shared by layout,
// painting and input handling.
package state

import "cantina/internal/page"

type State struct {
	Section page.Section
	Dish    page.ItemID
	Special page.ItemID
	Scroll  Scroll

	// DPI is the current display density. 96 is 100%.
	DPI int
}

func New() *State {
	s := &State{Section: page.SectionHome, DPI: 96}
	s.Normalize()
	return s
}

// Normalize restores the invariants: a valid section, one selected dish and
// one selected special, and a scroll state that matches the section.
func (s *State) Normalize() {
	if !s.Section.Valid() {
		s.Section = page.SectionHome
	}
	if _, ok := page.DishByID(s.Dish); !ok {
		s.Dish = page.Dishes()[0].ID
	}
	if _, ok := page.SpecialByID(s.Special); !ok {
		s.Special = page.Specials()[0].ID
	}
	if s.DPI <= 0 {
		s.DPI = 96
	}
	if active := s.Section == page.SectionMenu; active != s.Scroll.Active {
		s.Scroll.Enable(active)
	}
}

// SelectSection activates a section and resets the scroll position, even
// when the section was already active. It reports whether anything changed.
func (s *State) SelectSection(sec page.Section) bool {
	if !sec.Valid() {
		return false
	}
	changed := s.Section != sec || s.Scroll.Pos != 0
	s.Section = sec
	s.Scroll.Enable(sec == page.SectionMenu)
	return changed
}

func (s *State) SelectDish(id page.ItemID) bool {
	if _, ok := page.DishByID(id); !ok || s.Dish == id {
		return false
	}
	s.Dish = id
	return true
}

func (s *State) SelectSpecial(id page.ItemID) bool {
	if _, ok := page.SpecialByID(id); !ok || s.Special == id {
		return false
	}
	s.Special = id
	return true
}

func (s *State) SelectedDish() page.Item {
	it, _ := page.DishByID(s.Dish)
	return it
}

func (s *State) SelectedSpecial() page.Item {
	it, _ := page.SpecialByID(s.Special)
	return it
}

// SetDPI records a new display density. Layout-dependent values such as the
// scroll range are refreshed by the next paint.
func (s *State) SetDPI(v int) bool {
	if v <= 0 || v == s.DPI {
		return false
	}
	s.DPI = v
	return true
}

// CycleSection moves delta tabs along the tab bar, wrapping at both ends.
func (s *State) CycleSection(delta int) bool {
	n := len(page.Tabs())
	next := ((int(s.Section)+delta)%n + n) % n
	return s.SelectSection(page.Tabs()[next].Section)
}
