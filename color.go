package fab

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/pkg/errors"
)

// ColorFromARGB unpacks a 0xAARRGGBB integer into a Color.
func ColorFromARGB(argb uint32) Color {
	return Color{
		R: float64(argb>>16&0xff) / 255,
		G: float64(argb>>8&0xff) / 255,
		B: float64(argb&0xff) / 255,
		A: float64(argb>>24&0xff) / 255,
	}
}

// ARGB packs the color into a 0xAARRGGBB integer.
func (c Color) ARGB() uint32 {
	return uint32(channel8(c.A))<<24 |
		uint32(channel8(c.R))<<16 |
		uint32(channel8(c.G))<<8 |
		uint32(channel8(c.B))
}

// String formats the color as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%08X", c.ARGB())
}

// ParseColor parses "#RRGGBB" or "#AARRGGBB". Six-digit colors are opaque.
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, errors.Errorf("fab: unknown color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, errors.Wrapf(err, "fab: unknown color %q", s)
	}
	if len(hex) == 6 {
		v |= 0xff000000
	}
	return ColorFromARGB(uint32(v)), nil
}

// MustParseColor is like ParseColor but panics on malformed input. Intended
// for package-level defaults.
func MustParseColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// ModifyExposure scales the HSV value of the color by factor, keeping hue,
// saturation and alpha.
func (c Color) ModifyExposure(factor float64) Color {
	h, s, v := colorful.Color{R: clamp01(c.R), G: clamp01(c.G), B: clamp01(c.B)}.Hsv()
	out := colorful.Hsv(h, s, clamp01(v*factor))
	return Color{R: out.R, G: out.G, B: out.B, A: c.A}
}

// toRGBA converts a Color to a color.RGBA (premultiplied).
func (c Color) toRGBA() colorRGBA {
	return colorRGBA{
		R: uint8(clamp01(c.R*c.A) * 255),
		G: uint8(clamp01(c.G*c.A) * 255),
		B: uint8(clamp01(c.B*c.A) * 255),
		A: uint8(clamp01(c.A) * 255),
	}
}

// colorRGBA implements the color.Color interface for image.Fill and vector.
type colorRGBA struct {
	R, G, B, A uint8
}

func (c colorRGBA) RGBA() (r, g, b, a uint32) {
	r = uint32(c.R) * 0x101
	g = uint32(c.G) * 0x101
	b = uint32(c.B) * 0x101
	a = uint32(c.A) * 0x101
	return
}

func channel8(v float64) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
