package fab

import (
	"image"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// --- Render texture pool ---

// renderTexturePool manages reusable offscreen ebiten.Images keyed by
// power-of-two dimensions. Clip layers and masks are acquired from it for the
// span of one Save/Restore pair.
type renderTexturePool struct {
	buckets map[uint64][]*ebiten.Image
	live    int
}

// poolKey packs power-of-two width and height into a single uint64.
func poolKey(w, h int) uint64 {
	return uint64(w)<<32 | uint64(h)
}

// Acquire returns a cleared offscreen image with at least (w, h) pixels.
// Dimensions are rounded up to the next power of two.
func (p *renderTexturePool) Acquire(w, h int) *ebiten.Image {
	pw := nextPowerOfTwo(w)
	ph := nextPowerOfTwo(h)
	key := poolKey(pw, ph)
	p.live++

	if p.buckets != nil {
		if stack := p.buckets[key]; len(stack) > 0 {
			img := stack[len(stack)-1]
			p.buckets[key] = stack[:len(stack)-1]
			img.Clear()
			return img
		}
	}

	return ebiten.NewImageWithOptions(
		image.Rect(0, 0, pw, ph),
		&ebiten.NewImageOptions{Unmanaged: true},
	)
}

// Release returns an image to the pool. It is cleared on the next Acquire.
func (p *renderTexturePool) Release(img *ebiten.Image) {
	if img == nil {
		return
	}
	b := img.Bounds()
	key := poolKey(b.Dx(), b.Dy())

	if p.buckets == nil {
		p.buckets = make(map[uint64][]*ebiten.Image)
	}
	p.buckets[key] = append(p.buckets[key], img)
	p.live--
}

// Live returns the number of acquired images not yet released.
func (p *renderTexturePool) Live() int { return p.live }

// nextPowerOfTwo returns the smallest power of two >= n (minimum 1).
func nextPowerOfTwo(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << int(math.Ceil(math.Log2(float64(n))))
}

// --- Shadow discs ---

// shadowKey identifies a disc by radius and blur in half-pixel steps. The
// responsive shadow moves in 0.5px steps, so every frame maps to its own
// disc.
type shadowKey struct {
	radius, blur int
}

func makeShadowKey(radius, blur float64) shadowKey {
	return shadowKey{radius: int(math.Round(radius * 2)), blur: int(math.Round(blur * 2))}
}

// shadowCache keeps one white disc per (radius, blur). Discs are tinted with
// the shadow color at draw time.
type shadowCache struct {
	discs map[shadowKey]*ebiten.Image
}

func (c *shadowCache) get(radius, blur float64) *ebiten.Image {
	key := makeShadowKey(radius, blur)
	if img, ok := c.discs[key]; ok {
		return img
	}
	if c.discs == nil {
		c.discs = make(map[shadowKey]*ebiten.Image)
	}
	img := ebiten.NewImage(shadowDiscSize(radius, blur), shadowDiscSize(radius, blur))
	img.WritePixels(generateShadowDisc(radius, blur))
	c.discs[key] = img
	return img
}

// Len returns the number of cached discs.
func (c *shadowCache) Len() int { return len(c.discs) }

func shadowDiscSize(radius, blur float64) int {
	size := int(math.Ceil((radius + blur) * 2))
	if size < 1 {
		size = 1
	}
	return size
}

// generateShadowDisc returns premultiplied white RGBA pixels of a disc of the
// given radius whose edge fades out over [radius-blur, radius+blur].
func generateShadowDisc(radius, blur float64) []byte {
	size := shadowDiscSize(radius, blur)
	pix := make([]byte, size*size*4)
	c := radius + blur
	inner := radius - blur
	outer := radius + blur
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			dx := float64(x) + 0.5 - c
			dy := float64(y) + 0.5 - c
			dist := math.Sqrt(dx*dx + dy*dy)

			var alpha float64
			switch {
			case dist <= inner:
				alpha = 1
			case dist >= outer:
				alpha = 0
			default:
				// smoothstep: 1 at the inner edge, 0 at the outer edge
				t := (outer - dist) / (outer - inner)
				alpha = t * t * (3 - 2*t)
			}

			a := uint8(alpha * 255)
			off := (y*size + x) * 4
			pix[off+0] = a
			pix[off+1] = a
			pix[off+2] = a
			pix[off+3] = a
		}
	}
	return pix
}
