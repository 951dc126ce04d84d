package fab

import (
	"image"
	"image/draw"

	"github.com/hajimehoshi/ebiten/v2"
	xvector "golang.org/x/image/vector"
)

// plusBarRatio is the bar thickness of the plus glyph relative to its size.
const plusBarRatio = 2.0 / 14.0

// NewPlusIcon rasterizes a "+" glyph of sizePx square pixels in color c.
// The glyph fills the square; the button scales it into its image size.
func NewPlusIcon(sizePx int, c Color) *ebiten.Image {
	if sizePx < 1 {
		sizePx = 1
	}
	return ebiten.NewImageFromImage(plusGlyph(sizePx, c))
}

// plusGlyph returns the glyph as an RGBA image.
func plusGlyph(sizePx int, c Color) *image.RGBA {
	s := float32(sizePx)
	bar := s * plusBarRatio
	if bar < 1 {
		bar = 1
	}
	lo := (s - bar) / 2
	hi := lo + bar

	z := xvector.NewRasterizer(sizePx, sizePx)
	// A single outline for both bars; the nonzero rule fills the overlap
	// once.
	z.MoveTo(lo, 0)
	z.LineTo(hi, 0)
	z.LineTo(hi, lo)
	z.LineTo(s, lo)
	z.LineTo(s, hi)
	z.LineTo(hi, hi)
	z.LineTo(hi, s)
	z.LineTo(lo, s)
	z.LineTo(lo, hi)
	z.LineTo(0, hi)
	z.LineTo(0, lo)
	z.LineTo(lo, lo)
	z.ClosePath()

	dst := image.NewRGBA(image.Rect(0, 0, sizePx, sizePx))
	z.DrawOp = draw.Over
	z.Draw(dst, dst.Bounds(), image.NewUniform(c.toRGBA()), image.Point{})
	return dst
}
