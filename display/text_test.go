package display_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/statuspanel/display"
	. "github.com/BeatGlow/statuspanel/displaytest"
	"github.com/BeatGlow/statuspanel/font"
)

func TestDrawTextGlyphs(t *testing.T) {
	for i := range font.Table {
		t.Run(font.Index(i).String(), func(t *testing.T) {
			rec := new(Recorder)
			d := display.NewSSD1306(rec, nil)
			d.DrawText([]font.Index{font.Index(i)}, 55, 4)

			glyph := font.Table[i]
			assert.Equal(t, Concat(
				Cmd(0x21, 55, 60, 0x22, 4, 4),
				Data(glyph[:]...),
			), rec.Ops)
		})
	}
}

func TestDrawTextWindowMatchesBytes(t *testing.T) {
	for _, s := range []string{"1", "42", "CPU:   %", "IU4 LIMITED EDITION"} {
		t.Run(s, func(t *testing.T) {
			rec := new(Recorder)
			d := display.NewSSD1306(rec, nil)
			d.DrawText(font.MustEncode(s), 3, 6)

			w := d.Window()
			assert.Equal(t, byte(3), w.X1)
			assert.Equal(t, byte(3+6*len(s)-1), w.X2)
			assert.Equal(t, w.Y1, w.Y2)
			assert.Len(t, rec.DataBytes(), w.Size())
			assert.Len(t, rec.DataBytes(), 6*len(s))
		})
	}
}

func TestDrawTextOrder(t *testing.T) {
	rec := new(Recorder)
	d := display.NewSSD1306(rec, nil)
	d.DrawText([]font.Index{2, font.Dot, 3, 4}, 55, 2)

	var want []byte
	for _, i := range []font.Index{2, font.Dot, 3, 4} {
		want = append(want, font.Table[i][:]...)
	}
	assert.Equal(t, want, rec.DataBytes())
	assert.Equal(t, Cmd(0x21, 55, 78, 0x22, 2, 2), rec.Ops[:6])
}

func TestDrawTextOutOfRange(t *testing.T) {
	rec := new(Recorder)
	d := display.NewSSD1306(rec, nil)
	d.DrawText([]font.Index{1, 200}, 0, 0)

	require.Len(t, rec.DataBytes(), 12)
	assert.Equal(t, make([]byte, 6), rec.DataBytes()[6:], fmt.Sprint(rec))
}

func TestDrawTextEmpty(t *testing.T) {
	rec := new(Recorder)
	display.NewSSD1306(rec, nil).DrawText(nil, 10, 1)
	assert.Empty(t, rec.Ops)
}
