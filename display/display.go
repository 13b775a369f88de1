// Package display drives an SSD1306 dot-matrix panel over a serial bus.
//
// The package is layered leaf first: a pin-level [Bus], a byte level [Transport]
// that brackets each byte with the data/command and chip select lines, the
// [SSD1306] controller driver that owns the addressing window, and a text
// renderer on top of it that streams glyphs from package font.
//
// Writes are fire-and-forget. Buses talking to real hardware remember the first
// error they hit and report it from Err.
package display

import (
	"errors"
	"fmt"
)

// Errors
var (
	ErrDCPin    = errors.New("display: data/command (DC) GPIO pin is invalid")
	ErrSPISpeed = errors.New("display: invalid SPI speed")
)

// WordType tells the controller how to interpret a byte.
type WordType uint8

// Word types.
const (
	Command WordType = iota // DC low
	Data                    // DC high
)

func (t WordType) String() string {
	switch t {
	case Command:
		return "command"
	case Data:
		return "data"
	default:
		return fmt.Sprintf("WordType(%d)", uint8(t))
	}
}

// Writer sends one byte of the given type to the controller.
type Writer interface {
	Send(value byte, kind WordType)
}

// Window is the controller addressing window: columns X1-X2, pages Y1-Y2.
type Window struct {
	X1, X2 byte
	Y1, Y2 byte
}

func (w Window) String() string {
	return fmt.Sprintf("cols %d-%d pages %d-%d", w.X1, w.X2, w.Y1, w.Y2)
}

// Size is the number of bytes the window holds.
func (w Window) Size() int {
	return (int(w.X2) - int(w.X1) + 1) * (int(w.Y2) - int(w.Y1) + 1)
}
