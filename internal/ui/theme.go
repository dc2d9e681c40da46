package ui

import "image/color"

type Theme struct {
	AppBackground  color.RGBA
	HeaderText     color.RGBA
	HeaderSubtext  color.RGBA
	TabBar         color.RGBA
	TabActive      color.RGBA
	TabActiveEdge  color.RGBA
	TabText        color.RGBA
	Card           color.RGBA
	CardBorder     color.RGBA
	Shadow         color.RGBA
	Heading        color.RGBA
	Body           color.RGBA
	Row            color.RGBA
	RowSelected    color.RGBA
	RowBorder      color.RGBA
	RowText        color.RGBA
	ScrollTrack    color.RGBA
	ScrollThumb    color.RGBA
	HeaderHeightDp int
	TabBarHeightDp int
	PageMarginDp   int
	CardRadiusDp   int
}

func DefaultTheme() Theme {
	return Theme{
		AppBackground:  color.RGBA{252, 250, 247, 0xFF},
		HeaderText:     color.RGBA{40, 40, 40, 0xFF},
		HeaderSubtext:  color.RGBA{60, 60, 60, 0xFF},
		TabBar:         color.RGBA{250, 246, 240, 0xFF},
		TabActive:      color.RGBA{255, 255, 255, 0xFF},
		TabActiveEdge:  color.RGBA{230, 180, 120, 0xFF},
		TabText:        color.RGBA{60, 50, 40, 0xFF},
		Card:           color.RGBA{255, 255, 255, 0xFF},
		CardBorder:     color.RGBA{235, 215, 190, 0xFF},
		Shadow:         color.RGBA{230, 230, 230, 0xFF},
		Heading:        color.RGBA{30, 30, 30, 0xFF},
		Body:           color.RGBA{40, 40, 40, 0xFF},
		Row:            color.RGBA{255, 255, 255, 0xFF},
		RowSelected:    color.RGBA{255, 245, 230, 0xFF},
		RowBorder:      color.RGBA{210, 190, 160, 0xFF},
		RowText:        color.RGBA{30, 30, 30, 0xFF},
		ScrollTrack:    color.RGBA{241, 234, 224, 0xFF},
		ScrollThumb:    color.RGBA{205, 170, 128, 0xFF},
		HeaderHeightDp: 140,
		TabBarHeightDp: 48,
		PageMarginDp:   24,
		CardRadiusDp:   16,
	}
}

// headerGradient is the colour of row i of an h pixel tall header band.
func headerGradient(i, h int) color.RGBA {
	g := 220 - (i*120)/max(1, h)
	return color.RGBA{245, uint8(g), 120, 0xFF}
}
