package display

import (
	"github.com/golang/glog"

	"github.com/BeatGlow/statuspanel/font"
)

// DrawText writes text on page y starting at column x. The window is exactly as
// wide as the glyphs sent, so the controller never wraps into the next page.
// Nothing is clipped; keep x+6*len(text) on the panel.
func (d *SSD1306) DrawText(text []font.Index, x, y int) {
	if len(text) == 0 {
		return
	}

	x2 := x + font.Width*len(text) - 1
	if glog.V(2) {
		glog.Infof("display: text %q at (%d,%d)-(%d,%d)", runString(text), x, y, x2, y)
	}
	d.SetWindow(byte(x), byte(x2), byte(y), byte(y))

	for _, i := range text {
		glyph, ok := font.Lookup(i)
		if !ok {
			glog.V(1).Infof("display: glyph index %d out of range, drawing blank", i)
			glyph, _ = font.Lookup(font.Space)
		}
		for _, column := range glyph {
			d.w.Send(column, Data)
		}
	}
}

func runString(text []font.Index) string {
	b := make([]byte, 0, len(text))
	for _, i := range text {
		if s := i.String(); len(s) == 1 {
			b = append(b, s[0])
		} else {
			b = append(b, '?')
		}
	}
	return string(b)
}
