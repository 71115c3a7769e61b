// Package render holds the shared drawing vocabulary: the palette, the
// bitmap face, and the glow/grid/CRT primitives every surface is built from.
package render

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/hvail/terminal-echo/common"
)

// Face is the UI face used for every on-screen string.
var Face = text.NewGoXFace(basicfont.Face7x13)

// GlowRect fills r and strokes a halo around it so shapes read as lit
// against the dark background.
func GlowRect(dst *ebiten.Image, r common.Rect, clr color.RGBA) {
	x, y := float32(r.X), float32(r.Y)
	w, h := float32(r.Width), float32(r.Height)
	halo := WithAlpha(clr, 60)
	vector.DrawFilledRect(dst, x-3, y-3, w+6, h+6, halo, false)
	vector.DrawFilledRect(dst, x, y, w, h, clr, false)
	vector.StrokeRect(dst, x, y, w, h, 1, White, false)
}

// GlowCircle fills a circle with a soft outer halo.
func GlowCircle(dst *ebiten.Image, cx, cy, radius float64, clr color.RGBA) {
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius)+3, WithAlpha(clr, 60), false)
	vector.DrawFilledCircle(dst, float32(cx), float32(cy), float32(radius), clr, false)
}

// Text draws s with its anchor at (x, y) and a dark offset shadow.
func Text(dst *ebiten.Image, s string, x, y float64, clr color.Color, align text.Align) {
	shadow := &text.DrawOptions{}
	shadow.PrimaryAlign = align
	shadow.GeoM.Translate(x+1, y+1)
	shadow.ColorScale.ScaleWithColor(color.RGBA{0, 0, 0, 200})
	text.Draw(dst, s, Face, shadow)

	op := &text.DrawOptions{}
	op.PrimaryAlign = align
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(dst, s, Face, op)
}

// Grid draws the floor grid, scrolled by offset so motion reads even when
// nothing else moves.
func Grid(dst *ebiten.Image, offset float64, clr color.RGBA) {
	const cell = 40
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	shift := float32(math.Mod(offset, cell))
	for x := -shift; x < w+cell; x += cell {
		vector.StrokeLine(dst, x, 0, x, h, 1, clr, false)
	}
	for y := -shift; y < h+cell; y += cell {
		vector.StrokeLine(dst, 0, y, w, y, 1, clr, false)
	}
}

// CRTOverlay lays scanlines and a vignette over the finished frame.
func CRTOverlay(dst *ebiten.Image) {
	w := float32(dst.Bounds().Dx())
	h := float32(dst.Bounds().Dy())
	scan := color.RGBA{0, 0, 0, 40}
	for y := float32(0); y < h; y += 4 {
		vector.DrawFilledRect(dst, 0, y, w, 1, scan, false)
	}
	edge := color.RGBA{0, 0, 0, 90}
	vector.DrawFilledRect(dst, 0, 0, w, 8, edge, false)
	vector.DrawFilledRect(dst, 0, h-8, w, 8, edge, false)
	vector.DrawFilledRect(dst, 0, 0, 8, h, edge, false)
	vector.DrawFilledRect(dst, w-8, 0, 8, h, edge, false)
}
