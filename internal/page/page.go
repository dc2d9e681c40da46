// Package page holds the brochure's static content: the sections shown as
// tabs, the dish and special tables, and the text of each page.
package page

import (
	"fmt"
	"strings"
)

const (
	Title   = "Cantina Chichilo"
	Tagline = "Una familia para servirlo desde 1956"
)

type Section int

const (
	SectionHome Section = iota
	SectionMenu
	SectionHistory
	SectionHours
	SectionContact
)

var sectionNames = [...]string{"home", "menu", "history", "hours", "contact"}

func (s Section) String() string {
	if s < 0 || int(s) >= len(sectionNames) {
		return fmt.Sprintf("section(%d)", int(s))
	}
	return sectionNames[s]
}

func (s Section) Valid() bool {
	return s >= SectionHome && s <= SectionContact
}

// SectionFromString accepts the English name or the tab label, case-insensitively.
func SectionFromString(name string) (Section, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for i, n := range sectionNames {
		if n == name || strings.ToLower(tabs[i].Label) == name {
			return Section(i), nil
		}
	}
	return SectionHome, fmt.Errorf("unknown section %q", name)
}

type Tab struct {
	Section Section
	Label   string
}

var tabs = []Tab{
	{SectionHome, "Inicio"},
	{SectionMenu, "Carta"},
	{SectionHistory, "Historia"},
	{SectionHours, "Horarios"},
	{SectionContact, "Contacto"},
}

// Tabs returns the tab bar entries in display order.
func Tabs() []Tab { return tabs }

type ItemID int

// Item is a selectable dish or special. Asset names an embedded image.
type Item struct {
	ID    ItemID
	Name  string
	Asset string
}

const (
	DishRanas ItemID = iota + 1
	DishCaracoles
	DishRabas
	DishMerluza
	DishGambas
)

const (
	SpecialQuinotos ItemID = iota + 1
	SpecialMondongo
	SpecialRinones
	SpecialCalamarettis
)

var dishes = []Item{
	{DishRanas, "Ranas a la provenzal", "ranas.png"},
	{DishCaracoles, "Caracoles a la Bordaleza", "caracoles.png"},
	{DishRabas, "Rabas a la Calabria", "rabas.png"},
	{DishMerluza, "Merluza al ajillo", "merluza.png"},
	{DishGambas, "Gambas al Ajillo", "gambas.png"},
}

var specials = []Item{
	{SpecialQuinotos, "Quinotos al Rhum con Helado de Americana", "quinotos.bmp"},
	{SpecialMondongo, "Mondongo a la Italiana", "mondongo.bmp"},
	{SpecialRinones, "Riñones al Vino Blanco", "rinones.bmp"},
	{SpecialCalamarettis, "Calamarettis a la Escarpetta", "calamarettis.bmp"},
}

func Dishes() []Item   { return dishes }
func Specials() []Item { return specials }

func DishByID(id ItemID) (Item, bool)    { return lookup(dishes, id) }
func SpecialByID(id ItemID) (Item, bool) { return lookup(specials, id) }

func lookup(items []Item, id ItemID) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}

// Assets lists every image name referenced by the tables.
func Assets() []string {
	out := make([]string, 0, len(dishes)+len(specials))
	for _, it := range dishes {
		out = append(out, it.Asset)
	}
	for _, it := range specials {
		out = append(out, it.Asset)
	}
	return out
}
