package display

import (
	"fmt"

	"github.com/golang/glog"
)

const (
	ssd1306Width = 128
	ssd1306Pages = 8
)

// Config is the controller configuration. The zero value of a field means "use the
// DefaultConfig value", except for the booleans.
type Config struct {
	// ClockDiv is the display clock divide ratio / oscillator frequency.
	ClockDiv byte

	// ComPins is the COM pins hardware configuration, 0x12 for 128x64 panels.
	ComPins byte

	// Contrast level.
	Contrast byte

	// Precharge period.
	Precharge byte

	// Deselect is the VCOMH deselect level.
	Deselect byte

	// NoSegmentRemap maps column 0 to SEG0, mirroring the panel horizontally.
	NoSegmentRemap bool

	// ComScanDec scans from COM[N-1] to COM0, mirroring the panel vertically.
	ComScanDec bool
}

// DefaultConfig is the configuration the status panel hardware was tuned with.
var DefaultConfig = Config{
	ClockDiv:  0x80,
	ComPins:   0x12,
	Contrast:  0xCF,
	Precharge: 0xF1,
	Deselect:  0x40,
}

// SSD1306 drives a 128x64 SSD1306 controller in horizontal addressing mode.
type SSD1306 struct {
	w      Writer
	config Config
	window Window
}

// NewSSD1306 returns a driver writing to w. Nothing is sent until Initialize.
func NewSSD1306(w Writer, config *Config) *SSD1306 {
	d := &SSD1306{
		w:      w,
		config: DefaultConfig,
	}
	if config != nil {
		d.config = *config
		if d.config.ClockDiv == 0 {
			d.config.ClockDiv = DefaultConfig.ClockDiv
		}
		if d.config.ComPins == 0 {
			d.config.ComPins = DefaultConfig.ComPins
		}
		if d.config.Contrast == 0 {
			d.config.Contrast = DefaultConfig.Contrast
		}
		if d.config.Precharge == 0 {
			d.config.Precharge = DefaultConfig.Precharge
		}
		if d.config.Deselect == 0 {
			d.config.Deselect = DefaultConfig.Deselect
		}
	}
	return d
}

func (d *SSD1306) String() string {
	return fmt.Sprintf("SSD1306 OLED %dx%d", ssd1306Width, ssd1306Pages*8)
}

func (d *SSD1306) command(command byte, args ...byte) {
	d.w.Send(command, Command)
	for _, arg := range args {
		d.w.Send(arg, Command)
	}
}

func (d *SSD1306) commands(commands ...[]byte) {
	for _, command := range commands {
		d.command(command[0], command[1:]...)
	}
}

// Initialize powers the controller up and clears the whole display RAM.
func (d *SSD1306) Initialize() {
	var (
		remap byte = setSegmentRemap | 0x01
		scan  byte = setComScanInc
	)
	if d.config.NoSegmentRemap {
		remap = setSegmentRemap
	}
	if d.config.ComScanDec {
		scan = setComScanDec
	}

	glog.V(1).Infof("display: init %s", d)
	d.commands(
		[]byte{setDisplayOff},
		[]byte{setDisplayClockDiv, d.config.ClockDiv},
		[]byte{setChargePump, chargePumpEnable},
		[]byte{setMemoryMode, horizontalAddressing},
		[]byte{remap},
		[]byte{scan},
		[]byte{setComPins, d.config.ComPins},
		[]byte{setContrast, d.config.Contrast},
		[]byte{setPrecharge, d.config.Precharge},
		[]byte{setVComDetect, d.config.Deselect},
		[]byte{setDisplayAllOnResume},
		[]byte{setDisplayOn},
	)
	d.Clear()
}

// Clear zeroes the whole display RAM.
func (d *SSD1306) Clear() {
	d.SetWindow(0, ssd1306Width-1, 0, ssd1306Pages-1)
	for i := 0; i < ssd1306Width*ssd1306Pages; i++ {
		d.w.Send(0x00, Data)
	}
}

// SetWindow sets the addressing window that bounds the following data bytes.
// Coordinates are sent as is, without range checks.
func (d *SSD1306) SetWindow(x1, x2, y1, y2 byte) {
	d.command(setColumnAddr, x1, x2)
	d.command(setPageAddr, y1, y2)
	d.window = Window{X1: x1, X2: x2, Y1: y1, Y2: y2}
}

// Window returns the last addressing window set.
func (d *SSD1306) Window() Window {
	return d.window
}

// Show toggles the display on or off.
func (d *SSD1306) Show(show bool) {
	if show {
		d.command(setDisplayOn)
	} else {
		d.command(setDisplayOff)
	}
}

// SetContrast adjusts the contrast level.
func (d *SSD1306) SetContrast(level uint8) {
	d.command(setContrast, level)
	d.config.Contrast = level
}

// Invert toggles inverted display mode.
func (d *SSD1306) Invert(invert bool) {
	if invert {
		d.command(setInvertDisplay)
	} else {
		d.command(setNormalDisplay)
	}
}
