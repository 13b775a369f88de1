package pixel

import (
	"image"
	"image/color"
)

// PageHeight is the number of pixel rows in one page byte.
const PageHeight = 8

// PageImage is a 1-bit per pixel image laid out like SSD1xxx display RAM: one byte
// per column per page of 8 rows, least significant bit at the top.
type PageImage struct {
	// Rect is the image bounding box.
	Rect image.Rectangle

	// Pix holds page 0 columns first, then page 1 and so on.
	Pix []byte

	// Stride is the number of bytes in one page.
	Stride int
}

// NewPageImage returns a blank w by h image. The height is rounded up to whole
// pages in Pix.
func NewPageImage(w, h int) *PageImage {
	pages := (h + PageHeight - 1) / PageHeight
	return &PageImage{
		Rect:   image.Rect(0, 0, w, h),
		Pix:    make([]byte, pages*w),
		Stride: w,
	}
}

func (p *PageImage) Bounds() image.Rectangle {
	return p.Rect
}

func (p *PageImage) ColorModel() color.Model {
	return MonoModel
}

// Pages is the number of pages in Pix.
func (p *PageImage) Pages() int {
	if p.Stride == 0 {
		return 0
	}
	return len(p.Pix) / p.Stride
}

// Page returns the column bytes of page n.
func (p *PageImage) Page(n int) []byte {
	return p.Pix[n*p.Stride : (n+1)*p.Stride]
}

// ByteAt returns the column byte at (col, page), 0 when out of range.
func (p *PageImage) ByteAt(col, page int) byte {
	if col < 0 || col >= p.Stride || page < 0 || page >= p.Pages() {
		return 0
	}
	return p.Pix[page*p.Stride+col]
}

// SetByte stores a column byte at (col, page), ignoring out of range writes.
func (p *PageImage) SetByte(col, page int, b byte) {
	if col < 0 || col >= p.Stride || page < 0 || page >= p.Pages() {
		return
	}
	p.Pix[page*p.Stride+col] = b
}

func (p *PageImage) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return color.Transparent
	}
	return Mono{On: p.bit(x, y)}
}

func (p *PageImage) bit(x, y int) bool {
	return p.Pix[y/PageHeight*p.Stride+x]&(1<<uint(y%PageHeight)) != 0
}

// Lit reports whether the pixel at (x, y) is on.
func (p *PageImage) Lit(x, y int) bool {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return false
	}
	return p.bit(x, y)
}

func (p *PageImage) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(p.Rect) {
		return
	}

	var (
		pos = y/PageHeight*p.Stride + x
		bit = byte(1) << uint(y%PageHeight)
	)
	if monoModel(c).(Mono).On {
		p.Pix[pos] |= bit
	} else {
		p.Pix[pos] &^= bit
	}
}

// Fill the image with a single color.
func (p *PageImage) Fill(c color.Color) {
	var value byte
	if monoModel(c).(Mono).On {
		value = 0xff
	}
	for i := range p.Pix {
		p.Pix[i] = value
	}
}

// Clear turns all pixels off.
func (p *PageImage) Clear() {
	for i := range p.Pix {
		p.Pix[i] = 0x00
	}
}
