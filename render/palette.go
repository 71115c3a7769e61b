package render

import "image/color"

// Station palette. Everything on screen is built from these.
var (
	Background = color.RGBA{10, 10, 26, 255}
	GridLine   = color.RGBA{24, 28, 56, 255}
	GridAlert  = color.RGBA{56, 20, 28, 255}

	Cyan    = color.RGBA{0, 255, 238, 255}
	Magenta = color.RGBA{255, 0, 170, 255}
	Yellow  = color.RGBA{255, 230, 60, 255}
	Green   = color.RGBA{60, 255, 120, 255}
	Red     = color.RGBA{255, 70, 70, 255}
	Blue    = color.RGBA{70, 120, 255, 255}
	Orange  = color.RGBA{255, 150, 40, 255}
	White   = color.RGBA{235, 235, 245, 255}
	Dim     = color.RGBA{120, 130, 160, 255}
)

// WithAlpha returns c with its alpha (and premultiplied channels) scaled.
func WithAlpha(c color.RGBA, a uint8) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(uint16(v) * uint16(a) / 255)
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), a}
}
