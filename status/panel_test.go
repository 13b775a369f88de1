package status

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BeatGlow/statuspanel/display"
	"github.com/BeatGlow/statuspanel/displaytest"
	"github.com/BeatGlow/statuspanel/font"
	"github.com/BeatGlow/statuspanel/metrics"
)

func textOps(x, y int, text []font.Index) []displaytest.Op {
	var glyphs []byte
	for _, i := range text {
		glyphs = append(glyphs, font.Table[i][:]...)
	}
	return displaytest.Concat(
		displaytest.Cmd(0x21, byte(x), byte(x+6*len(text)-1), 0x22, byte(y), byte(y)),
		displaytest.Data(glyphs...),
	)
}

func TestGoldenTrace(t *testing.T) {
	var (
		rec = new(displaytest.Recorder)
		d   = display.NewSSD1306(rec, nil)
		p   = New(d, nil)
	)
	d.Initialize()
	p.DrawTemplate()
	p.Update(metrics.Sample{CPU: 42, RAM: 7, Network: 3.05})

	want := displaytest.Concat(
		displaytest.Cmd(
			0xAE, 0xD5, 0x80, 0x8D, 0x14, 0x20, 0x00, 0xA1, 0xC0,
			0xDA, 0x12, 0x81, 0xCF, 0xD9, 0xF1, 0xDB, 0x40, 0xA4, 0xAF,
		),
		displaytest.Cmd(0x21, 0, 127, 0x22, 0, 7),
		displaytest.Data(make([]byte, 1024)...),
		textOps(3, 6, font.MustEncode("IU4 LIMITED EDITION")),
		textOps(25, 4, font.MustEncode("CPU:   %")),
		textOps(25, 3, font.MustEncode("RAM:   %")),
		textOps(25, 2, font.MustEncode("NET:  .  MBIT")),
		textOps(3, 0, font.MustEncode("BY PAVEL GOLUBEV")),
		textOps(55, 4, []font.Index{4, 2}),
		textOps(55, 3, []font.Index{0, 7}),
		textOps(55, 2, []font.Index{3, font.Dot, 0, 5}),
	)
	require.Len(t, rec.Ops, len(want))
	assert.Equal(t, want, rec.Ops)
}

func TestUpdateOnlyTouchesFields(t *testing.T) {
	var (
		rec = new(displaytest.Recorder)
		p   = New(display.NewSSD1306(rec, nil), nil)
	)
	p.Update(metrics.Sample{CPU: 99, RAM: 0, Network: 12.34})

	want := displaytest.Concat(
		textOps(55, 4, []font.Index{9, 9}),
		textOps(55, 3, []font.Index{0, 0}),
		textOps(55, 2, []font.Index{2, font.Dot, 3, 4}),
	)
	assert.Equal(t, want, rec.Ops)
}

func TestFieldsFitTemplate(t *testing.T) {
	fields := []struct {
		field Text
		label Text
		width int
	}{
		{CPUField, Template[1], 2},
		{RAMField, Template[2], 2},
		{NetworkField, Template[3], 4},
	}
	for _, f := range fields {
		assert.Equal(t, f.label.Y, f.field.Y)
		start := (f.field.X - f.label.X) / font.Width
		require.Zero(t, (f.field.X-f.label.X)%font.Width)
		require.LessOrEqual(t, start+f.width, len(f.label.Text))
		for _, i := range f.label.Text[start : start+f.width] {
			assert.Contains(t, []font.Index{font.Space, font.Dot}, i)
		}
	}
	for _, l := range Template {
		assert.LessOrEqual(t, l.X+font.Width*len(l.Text), 128)
	}
}

type drawCall struct {
	x, y int
	text []font.Index
}

type fakeDisplay struct {
	calls []drawCall
}

func (d *fakeDisplay) DrawText(text []font.Index, x, y int) {
	d.calls = append(d.calls, drawCall{x, y, text})
}

func TestRefresh(t *testing.T) {
	d := new(fakeDisplay)
	p := New(d, metrics.SourceFunc(func(context.Context) (metrics.Sample, error) {
		return metrics.Sample{CPU: 5}, nil
	}))
	require.NoError(t, p.Refresh(context.Background()))
	require.Len(t, d.calls, 3)
	assert.Equal(t, []font.Index{0, 5}, d.calls[0].text)

	p.Err = func() error { return errors.New("bus") }
	assert.EqualError(t, p.Refresh(context.Background()), "bus")

	d.calls = nil
	p = New(d, metrics.SourceFunc(func(context.Context) (metrics.Sample, error) {
		return metrics.Sample{}, metrics.ErrNoSample
	}))
	assert.ErrorIs(t, p.Refresh(context.Background()), metrics.ErrNoSample)
	assert.Empty(t, d.calls)
}

func TestRun(t *testing.T) {
	var (
		ctx, cancel = context.WithCancel(context.Background())
		d           = new(fakeDisplay)
		fetches     int
	)
	defer cancel()

	p := New(d, metrics.SourceFunc(func(context.Context) (metrics.Sample, error) {
		fetches++
		if fetches == 1 {
			return metrics.Sample{}, errors.New("not yet")
		}
		if fetches == 3 {
			cancel()
		}
		return metrics.Sample{CPU: uint8(fetches)}, nil
	}))

	err := p.Run(ctx, time.Millisecond)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 3, fetches)
	// template, then two successful updates
	assert.Len(t, d.calls, len(Template)+2*3)
	assert.Equal(t, Template[0].Text, d.calls[0].text)
}
