// Package status composes the status panel: a static template drawn once and
// three numeric fields refreshed from a metrics source.
package status

import (
	"context"
	"time"

	"github.com/golang/glog"

	"github.com/BeatGlow/statuspanel/font"
	"github.com/BeatGlow/statuspanel/metrics"
)

// DefaultInterval is the time between two refreshes.
const DefaultInterval = 10 * time.Second

// Text is a run of glyphs at a fixed position, x in columns and y in pages.
type Text struct {
	X, Y int
	Text []font.Index
}

// Template is the static part of the panel.
var Template = []Text{
	{X: 3, Y: 6, Text: font.MustEncode("IU4 LIMITED EDITION")},
	{X: 25, Y: 4, Text: font.MustEncode("CPU:   %")},
	{X: 25, Y: 3, Text: font.MustEncode("RAM:   %")},
	{X: 25, Y: 2, Text: font.MustEncode("NET:  .  MBIT")},
	{X: 3, Y: 0, Text: font.MustEncode("BY PAVEL GOLUBEV")},
}

// Field positions; each lands on the blanks left for it in the template.
var (
	CPUField     = Text{X: 55, Y: 4}
	RAMField     = Text{X: 55, Y: 3}
	NetworkField = Text{X: 55, Y: 2}
)

// Display is the part of the controller driver the panel draws with.
type Display interface {
	DrawText(text []font.Index, x, y int)
}

// Panel draws the status screen.
type Panel struct {
	d   Display
	src metrics.Source

	// Err, if set, is checked after every refresh for bus errors.
	Err func() error
}

// New returns a Panel drawing on d with values from src.
func New(d Display, src metrics.Source) *Panel {
	return &Panel{d: d, src: src}
}

func (p *Panel) draw(t Text, text []font.Index) {
	p.d.DrawText(text, t.X, t.Y)
}

// DrawTemplate draws the labels that never change.
func (p *Panel) DrawTemplate() {
	for _, t := range Template {
		p.draw(t, t.Text)
	}
}

// Update redraws the numeric fields only.
func (p *Panel) Update(s metrics.Sample) {
	p.draw(CPUField, PercentDigits(s.CPU))
	p.draw(RAMField, PercentDigits(s.RAM))
	p.draw(NetworkField, NetworkDigits(s.Network))
}

// Refresh fetches one sample and updates the fields. On error the panel keeps the
// previous values.
func (p *Panel) Refresh(ctx context.Context) error {
	s, err := p.src.Fetch(ctx)
	if err != nil {
		return err
	}
	glog.V(1).Infof("status: %s", s)
	p.Update(s)
	if p.Err != nil {
		return p.Err()
	}
	return nil
}

// Run draws the template and then refreshes the fields every interval until ctx is
// done. Failed refreshes are logged and retried on the next tick.
func (p *Panel) Run(ctx context.Context, interval time.Duration) error {
	if interval <= 0 {
		interval = DefaultInterval
	}

	p.DrawTemplate()

	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				return ctx.Err()
			}
			if err := p.Refresh(ctx); err != nil {
				if ctx.Err() != nil {
					return ctx.Err()
				}
				glog.Warningf("status: refresh: %v", err)
			}
		}
	}
}
