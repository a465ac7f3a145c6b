package component

import (
	"image"

	"github.com/milk9111/shifty/common"
)

// Mask is a per-pixel solidity bitmap aligned with a collider's box.
type Mask struct {
	W, H int
	bits []bool
}

// NewMaskFromImage marks every pixel whose alpha is above zero as solid.
func NewMaskFromImage(img image.Image) *Mask {
	if img == nil {
		return nil
	}
	b := img.Bounds()
	m := &Mask{W: b.Dx(), H: b.Dy(), bits: make([]bool, b.Dx()*b.Dy())}
	for y := 0; y < m.H; y++ {
		for x := 0; x < m.W; x++ {
			_, _, _, a := img.At(b.Min.X+x, b.Min.Y+y).RGBA()
			m.bits[y*m.W+x] = a > 0
		}
	}
	return m
}

// NewSolidMask returns a fully solid w x h mask.
func NewSolidMask(w, h int) *Mask {
	m := &Mask{W: w, H: h, bits: make([]bool, w*h)}
	for i := range m.bits {
		m.bits[i] = true
	}
	return m
}

// Solid reports whether the pixel at (x, y) is set.
func (m *Mask) Solid(x, y int) bool {
	if m == nil {
		return true
	}
	if x < 0 || y < 0 || x >= m.W || y >= m.H {
		return false
	}
	return m.bits[y*m.W+x]
}

// Set marks a single pixel.
func (m *Mask) Set(x, y int, solid bool) {
	if m == nil || x < 0 || y < 0 || x >= m.W || y >= m.H {
		return
	}
	m.bits[y*m.W+x] = solid
}

// MasksOverlap tests two placed masks for a shared solid pixel. A nil mask
// counts as fully solid over its rect.
func MasksOverlap(a *Mask, ra common.Rect, b *Mask, rb common.Rect) bool {
	area := ra.Intersection(rb)
	if area.Empty() {
		return false
	}
	if a == nil && b == nil {
		return true
	}
	for y := int(area.Y); y < int(area.Bottom()+0.5); y++ {
		for x := int(area.X); x < int(area.Right()+0.5); x++ {
			if a.Solid(x-int(ra.X), y-int(ra.Y)) && b.Solid(x-int(rb.X), y-int(rb.Y)) {
				return true
			}
		}
	}
	return false
}
