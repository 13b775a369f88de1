// Command panel-preview renders the status panel through the controller emulator
// into a PNG file.
package main

import (
	"flag"
	"os"

	"github.com/golang/glog"

	"github.com/BeatGlow/statuspanel/display"
	"github.com/BeatGlow/statuspanel/metrics"
	"github.com/BeatGlow/statuspanel/sim"
	"github.com/BeatGlow/statuspanel/status"
)

func main() {
	outFlag := flag.String("o", "panel.png", "Output PNG file")
	scaleFlag := flag.Int("scale", 4, "Pixel scale")
	rotatedFlag := flag.Bool("rotated", true, "Panel is mounted upside down")
	cpuFlag := flag.Uint("cpu", 42, "CPU percentage")
	ramFlag := flag.Uint("ram", 7, "RAM percentage")
	netFlag := flag.Float64("net", 3.05, "Network Mbit/s")
	flag.Parse()
	defer glog.Flush()

	var (
		panel = sim.New(&sim.Opts{Rotated: *rotatedFlag})
		d     = display.NewSSD1306(panel, nil)
		p     = status.New(d, nil)
	)
	d.Initialize()
	p.DrawTemplate()
	p.Update(metrics.Sample{
		CPU:     uint8(*cpuFlag),
		RAM:     uint8(*ramFlag),
		Network: *netFlag,
	})

	f, err := os.Create(*outFlag)
	if err != nil {
		glog.Exitf("fatal: %v", err)
	}
	if err = panel.WritePNG(f, *scaleFlag); err != nil {
		_ = f.Close()
		glog.Exitf("fatal: %v", err)
	}
	if err = f.Close(); err != nil {
		glog.Exitf("fatal: %v", err)
	}
	glog.Infof("wrote %s", *outFlag)
}
