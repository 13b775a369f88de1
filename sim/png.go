package sim

import (
	"image"
	"image/png"
	"io"

	"golang.org/x/image/draw"
)

// WritePNG encodes the viewer image as PNG, each panel pixel scaled to a
// scale x scale block.
func (p *Panel) WritePNG(w io.Writer, scale int) error {
	if scale < 1 {
		scale = 1
	}
	src := p.Image()
	dst := image.NewGray(image.Rect(0, 0, src.Rect.Dx()*scale, src.Rect.Dy()*scale))
	draw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return png.Encode(w, dst)
}
