// Package sim emulates an SSD1306 controller so the panel can be developed and
// tested without hardware.
//
// A Panel accepts the same byte stream the serial transport would put on the
// wire, decodes the commands it understands and keeps a copy of the display RAM.
package sim

import (
	"fmt"

	"github.com/golang/glog"

	"github.com/BeatGlow/statuspanel/display"
	"github.com/BeatGlow/statuspanel/pixel"
)

const (
	width  = 128
	height = 64
	pages  = height / pixel.PageHeight
)

// Addressing modes.
const (
	Horizontal = 0x00
	Vertical   = 0x01
	PageMode   = 0x02
)

// argc is the number of argument bytes following an opcode.
var argc = map[byte]int{
	0x20: 1, // memory mode
	0x21: 2, // column address
	0x22: 2, // page address
	0x26: 6, // horizontal scroll
	0x27: 6,
	0x29: 5, // vertical and horizontal scroll
	0x2A: 5,
	0x81: 1, // contrast
	0x8D: 1, // charge pump
	0xA3: 2, // vertical scroll area
	0xA8: 1, // multiplex ratio
	0xD3: 1, // display offset
	0xD5: 1, // clock divider
	0xD9: 1, // precharge
	0xDA: 1, // COM pins
	0xDB: 1, // VCOMH deselect
}

// Opts are the emulator options.
type Opts struct {
	// Rotated renders the panel as mounted upside down.
	Rotated bool
}

// Panel is an emulated SSD1306. It implements display.Writer.
type Panel struct {
	ram     *pixel.PageImage
	rotated bool

	window    display.Window
	col, page int
	mode      byte

	on         bool
	inverted   bool
	remap      bool
	scanDec    bool
	chargePump bool
	contrast   byte

	cmd  byte
	args []byte
	want int
}

// New returns a powered off panel with a blank RAM.
func New(opts *Opts) *Panel {
	if opts == nil {
		opts = new(Opts)
	}
	return &Panel{
		ram:      pixel.NewPageImage(width, height),
		rotated:  opts.Rotated,
		window:   display.Window{X2: width - 1, Y2: pages - 1},
		mode:     PageMode,
		contrast: 0x7F,
	}
}

func (p *Panel) String() string {
	return fmt.Sprintf("emulated SSD1306 %dx%d", width, height)
}

// Send implements display.Writer.
func (p *Panel) Send(value byte, kind display.WordType) {
	if kind == display.Data {
		if p.want > 0 {
			glog.Warningf("sim: data byte %#02x while command %#02x expects %d more arguments", value, p.cmd, p.want)
			p.want = 0
		}
		p.data(value)
		return
	}

	if p.want > 0 {
		p.args = append(p.args, value)
		if p.want--; p.want == 0 {
			p.exec(p.cmd, p.args)
		}
		return
	}
	p.cmd, p.args = value, p.args[:0]
	if p.want = argc[value]; p.want == 0 {
		p.exec(value, nil)
	}
}

func (p *Panel) exec(cmd byte, args []byte) {
	switch {
	case cmd == 0x20:
		p.mode = args[0] & 0x03
	case cmd == 0x21:
		p.window.X1, p.window.X2 = args[0]&0x7F, args[1]&0x7F
		p.col = int(p.window.X1)
	case cmd == 0x22:
		p.window.Y1, p.window.Y2 = args[0]&0x07, args[1]&0x07
		p.page = int(p.window.Y1)
	case cmd == 0x81:
		p.contrast = args[0]
	case cmd == 0x8D:
		p.chargePump = args[0]&0x04 != 0
	case cmd == 0xA0, cmd == 0xA1:
		p.remap = cmd&0x01 != 0
	case cmd == 0xA6, cmd == 0xA7:
		p.inverted = cmd&0x01 != 0
	case cmd == 0xAE, cmd == 0xAF:
		p.on = cmd&0x01 != 0
	case cmd == 0xC0:
		p.scanDec = false
	case cmd == 0xC8:
		p.scanDec = true
	case cmd >= 0xB0 && cmd <= 0xB7:
		p.page = int(cmd & 0x07)
	case cmd <= 0x0F:
		p.col = p.col&0xF0 | int(cmd)
	case cmd >= 0x10 && cmd <= 0x1F:
		p.col = p.col&0x0F | int(cmd&0x0F)<<4
	default:
		glog.V(2).Infof("sim: ignoring command %#02x %x", cmd, args)
	}
}

func (p *Panel) data(value byte) {
	p.ram.SetByte(p.col, p.page, value)

	w := p.window
	switch p.mode {
	case Horizontal:
		if p.col++; p.col > int(w.X2) {
			p.col = int(w.X1)
			if p.page++; p.page > int(w.Y2) {
				p.page = int(w.Y1)
			}
		}
	case Vertical:
		if p.page++; p.page > int(w.Y2) {
			p.page = int(w.Y1)
			if p.col++; p.col > int(w.X2) {
				p.col = int(w.X1)
			}
		}
	default:
		if p.col++; p.col >= width {
			p.col = 0
		}
	}
}

// On reports whether the display is switched on.
func (p *Panel) On() bool {
	return p.on
}

// ChargePump reports whether the charge pump is enabled.
func (p *Panel) ChargePump() bool {
	return p.chargePump
}

// Contrast returns the contrast level.
func (p *Panel) Contrast() byte {
	return p.contrast
}

// Inverted reports whether inverted display mode is active.
func (p *Panel) Inverted() bool {
	return p.inverted
}

// Mode returns the memory addressing mode.
func (p *Panel) Mode() byte {
	return p.mode
}

// Window returns the addressing window.
func (p *Panel) Window() display.Window {
	return p.window
}

// Cursor returns the RAM position the next data byte goes to.
func (p *Panel) Cursor() (col, page int) {
	return p.col, p.page
}

// RAM returns the display RAM. It aliases the panel state.
func (p *Panel) RAM() *pixel.PageImage {
	return p.ram
}

// Image renders what a viewer sees: segment remap, COM scan direction, rotation,
// inversion and the display on/off state applied.
func (p *Panel) Image() *pixel.PageImage {
	out := pixel.NewPageImage(width, height)
	if !p.on {
		return out
	}
	for com := 0; com < height; com++ {
		for seg := 0; seg < width; seg++ {
			col, row := seg, com
			if p.remap {
				col = width - 1 - seg
			}
			if p.scanDec {
				row = height - 1 - com
			}
			if p.ram.Lit(col, row) == p.inverted {
				continue
			}
			x, y := seg, com
			if p.rotated {
				x, y = width-1-x, height-1-y
			}
			out.Set(x, y, pixel.On)
		}
	}
	return out
}
