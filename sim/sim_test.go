package sim

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/statuspanel/display"
	"github.com/BeatGlow/statuspanel/font"
	"github.com/BeatGlow/statuspanel/pixel"
)

func TestInitialize(t *testing.T) {
	p := New(nil)
	p.RAM().Fill(pixel.On)
	display.NewSSD1306(p, nil).Initialize()

	assert.True(t, p.On())
	assert.True(t, p.ChargePump())
	assert.Equal(t, byte(0xCF), p.Contrast())
	assert.Equal(t, byte(Horizontal), p.Mode())
	assert.Equal(t, display.Window{X1: 0, X2: 127, Y1: 0, Y2: 7}, p.Window())
	for _, b := range p.RAM().Pix {
		require.Zero(t, b)
	}
	col, page := p.Cursor()
	assert.Zero(t, col)
	assert.Zero(t, page)
}

func TestHorizontalWrap(t *testing.T) {
	p := New(nil)
	d := display.NewSSD1306(p, nil)
	d.Initialize()

	d.SetWindow(10, 11, 2, 3)
	for _, b := range []byte{1, 2, 3, 4, 5} {
		p.Send(b, display.Data)
	}
	ram := p.RAM()
	assert.Equal(t, byte(5), ram.ByteAt(10, 2)) // wrapped back to the window origin
	assert.Equal(t, byte(2), ram.ByteAt(11, 2))
	assert.Equal(t, byte(3), ram.ByteAt(10, 3))
	assert.Equal(t, byte(4), ram.ByteAt(11, 3))
}

func TestVerticalAndPageMode(t *testing.T) {
	p := New(nil)
	d := display.NewSSD1306(p, nil)
	d.SetWindow(0, 1, 0, 1)
	p.Send(0x20, display.Command)
	p.Send(Vertical, display.Command)
	for _, b := range []byte{1, 2, 3} {
		p.Send(b, display.Data)
	}
	assert.Equal(t, byte(1), p.RAM().ByteAt(0, 0))
	assert.Equal(t, byte(2), p.RAM().ByteAt(0, 1))
	assert.Equal(t, byte(3), p.RAM().ByteAt(1, 0))

	p.Send(0x20, display.Command)
	p.Send(PageMode, display.Command)
	for _, c := range []byte{0xB5, 0x04, 0x12} {
		p.Send(c, display.Command)
	}
	p.Send(0xAA, display.Data)
	assert.Equal(t, byte(0xAA), p.RAM().ByteAt(0x24, 5))
}

func TestDrawText(t *testing.T) {
	p := New(&Opts{Rotated: true})
	d := display.NewSSD1306(p, nil)
	d.Initialize()
	d.DrawText(font.MustEncode("1"), 0, 7)

	glyph := font.Table[1]
	for col, b := range glyph {
		assert.Equal(t, b, p.RAM().ByteAt(col, 7))
	}

	// remapped segments on a panel mounted upside down: columns read left to
	// right, bit 7 at the top
	img := p.Image()
	for y := 0; y <= 6; y++ {
		assert.True(t, img.Lit(3, y), "stem at y=%d", y)
	}
	assert.False(t, img.Lit(3, 7))
	assert.True(t, img.Lit(2, 1))
	assert.True(t, img.Lit(2, 6))
	assert.False(t, img.Lit(2, 0))
	assert.False(t, img.Lit(0, 3))
}

func TestImageStates(t *testing.T) {
	p := New(nil)
	d := display.NewSSD1306(p, nil)
	d.SetWindow(0, 0, 0, 0)
	p.Send(0x01, display.Data)

	assert.False(t, p.Image().Lit(0, 0), "display is off")

	d.Show(true)
	assert.True(t, p.Image().Lit(0, 0))
	assert.False(t, p.Image().Lit(0, 1))

	d.Invert(true)
	assert.True(t, p.Inverted())
	assert.False(t, p.Image().Lit(0, 0))
	assert.True(t, p.Image().Lit(0, 1))
}

func TestWritePNG(t *testing.T) {
	p := New(nil)
	d := display.NewSSD1306(p, nil)
	d.Initialize()
	d.DrawText(font.MustEncode("8"), 0, 0)

	var buf bytes.Buffer
	require.NoError(t, p.WritePNG(&buf, 4))

	img, err := png.Decode(&buf)
	require.NoError(t, err)
	assert.Equal(t, 512, img.Bounds().Dx())
	assert.Equal(t, 256, img.Bounds().Dy())
}
