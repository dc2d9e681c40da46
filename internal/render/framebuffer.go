package render

import (
	"image"
	"image/color"
	"math"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
)

// FrameBuffer is the off-screen surface a frame is painted into before it is
// copied to the window in one operation.
type FrameBuffer struct {
	W      int
	H      int
	Pixels []uint8 // RGBA

	img  *image.RGBA
	clip image.Rectangle
}

func NewFrameBuffer(w, h int) *FrameBuffer {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	return &FrameBuffer{W: w, H: h, Pixels: img.Pix, img: img, clip: img.Rect}
}

// Image exposes the buffer as an image sharing the same pixels.
func (fb *FrameBuffer) Image() *image.RGBA { return fb.img }

// WithClip restricts drawing to r while fn runs. The previous clip is
// restored on return, including when fn panics.
func (fb *FrameBuffer) WithClip(r image.Rectangle, fn func()) {
	prev := fb.clip
	fb.clip = prev.Intersect(r)
	defer func() { fb.clip = prev }()
	fn()
}

// target is the clipped view every primitive draws through.
func (fb *FrameBuffer) target() *image.RGBA {
	return fb.img.SubImage(fb.clip).(*image.RGBA)
}

func (fb *FrameBuffer) Clear(c color.RGBA) {
	for i := 0; i < len(fb.Pixels); i += 4 {
		fb.Pixels[i+0] = c.R
		fb.Pixels[i+1] = c.G
		fb.Pixels[i+2] = c.B
		fb.Pixels[i+3] = c.A
	}
}

func (fb *FrameBuffer) FillRect(x, y, w, h int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(fb.clip)
	if r.Empty() {
		return
	}
	for row := r.Min.Y; row < r.Max.Y; row++ {
		off := (row*fb.W + r.Min.X) * 4
		for col := 0; col < r.Dx(); col++ {
			idx := off + col*4
			fb.Pixels[idx+0] = c.R
			fb.Pixels[idx+1] = c.G
			fb.Pixels[idx+2] = c.B
			fb.Pixels[idx+3] = c.A
		}
	}
}

// RoundRect fills a rounded rectangle with a one pixel border. radius is the
// corner radius in device pixels.
func (fb *FrameBuffer) RoundRect(x, y, w, h, radius int, fill, border color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	fb.fillRound(x, y, w, h, radius, border)
	fb.fillRound(x+1, y+1, w-2, h-2, radius-1, fill)
}

func (fb *FrameBuffer) fillRound(x, y, w, h, radius int, c color.RGBA) {
	if w <= 0 || h <= 0 {
		return
	}
	radius = min(max(0, radius), w/2, h/2)
	for dy := 0; dy < h; dy++ {
		inset := 0
		switch {
		case dy < radius:
			inset = cornerInset(radius, radius-dy)
		case dy >= h-radius:
			inset = cornerInset(radius, dy-(h-radius)+1)
		}
		fb.FillRect(x+inset, y+dy, w-2*inset, 1, c)
	}
}

// cornerInset is how far a corner of radius r pulls in the scanline whose
// centre is d-0.5 rows from the corner circle's centre (d in 1..r).
func cornerInset(r, d int) int {
	fy := float64(d) - 0.5
	rr := float64(r)
	return r - int(math.Round(math.Sqrt(math.Max(0, rr*rr-fy*fy))))
}

// DrawImage copies src with its top-left corner at (x, y).
func (fb *FrameBuffer) DrawImage(src image.Image, x, y int) {
	if src == nil {
		return
	}
	b := src.Bounds()
	dst := image.Rect(x, y, x+b.Dx(), y+b.Dy())
	xdraw.Draw(fb.target(), dst, src, b.Min, xdraw.Over)
}

// DrawText draws s with its baseline at y.
func (fb *FrameBuffer) DrawText(face font.Face, x, y int, s string, c color.RGBA) {
	if face == nil || s == "" {
		return
	}
	d := font.Drawer{
		Dst:  fb.target(),
		Src:  image.NewUniform(c),
		Face: face,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}

// At reads back one pixel. Out of range reads return the zero colour.
func (fb *FrameBuffer) At(x, y int) color.RGBA {
	if x < 0 || y < 0 || x >= fb.W || y >= fb.H {
		return color.RGBA{}
	}
	return fb.img.RGBAAt(x, y)
}
