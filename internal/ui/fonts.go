package ui

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// Point sizes of the three faces the window uses.
const (
	TitlePt = 24
	TextPt  = 11
	SmallPt = 9
)

type fontKey struct {
	size int
	bold bool
}

// FontBank owns every font face. Faces are created on first use for the
// current DPI and closed when the DPI changes or the bank is closed.
type FontBank struct {
	regular *opentype.Font
	bold    *opentype.Font
	dpi     int
	cache   map[fontKey]font.Face
}

func NewFontBank() *FontBank {
	bank := &FontBank{cache: map[fontKey]font.Face{}, dpi: 96}
	reg, err := opentype.Parse(goregular.TTF)
	if err != nil {
		return bank
	}
	bol, err := opentype.Parse(gobold.TTF)
	if err != nil {
		return bank
	}
	bank.regular = reg
	bank.bold = bol
	return bank
}

// Face returns a cached face of size points at dpi. A DPI different from the
// cached one releases every face first.
func (b *FontBank) Face(size int, bold bool, dpi int) font.Face {
	if dpi <= 0 {
		dpi = 96
	}
	if dpi != b.dpi {
		b.Reset()
		b.dpi = dpi
	}
	key := fontKey{size: size, bold: bold}
	if f, ok := b.cache[key]; ok {
		return f
	}
	base := b.regular
	if bold {
		base = b.bold
	}
	if base == nil {
		return basicfont.Face7x13
	}
	opts := &opentype.FaceOptions{Size: float64(size), DPI: float64(dpi), Hinting: font.HintingFull}
	face, err := opentype.NewFace(base, opts)
	if err != nil {
		return basicfont.Face7x13
	}
	b.cache[key] = face
	return face
}

func (b *FontBank) Title(dpi int) font.Face { return b.Face(TitlePt, true, dpi) }
func (b *FontBank) Text(dpi int) font.Face  { return b.Face(TextPt, false, dpi) }
func (b *FontBank) Small(dpi int) font.Face { return b.Face(SmallPt, false, dpi) }

// Reset closes every cached face.
func (b *FontBank) Reset() {
	for k, f := range b.cache {
		_ = f.Close()
		delete(b.cache, k)
	}
}

// Close releases the faces at shutdown.
func (b *FontBank) Close() error {
	b.Reset()
	return nil
}

// Len is the number of live faces.
func (b *FontBank) Len() int { return len(b.cache) }

// measureString returns the advance width of s in whole pixels.
func measureString(face font.Face, s string) int {
	if face == nil || s == "" {
		return 0
	}
	adv := font.MeasureString(face, s)
	px := (int(adv) + 32) >> 6
	if px < 0 {
		px = 0
	}
	return px
}

// wrapText breaks s into lines no wider than width, splitting on spaces. A
// single word wider than width gets a line of its own.
func wrapText(face font.Face, s string, width int) []string {
	words := strings.Fields(s)
	if len(words) == 0 {
		return nil
	}
	var lines []string
	line := words[0]
	for _, w := range words[1:] {
		candidate := line + " " + w
		if measureString(face, candidate) <= width {
			line = candidate
			continue
		}
		lines = append(lines, line)
		line = w
	}
	return append(lines, line)
}
