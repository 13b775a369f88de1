// Package font holds the fixed 6x8 bitmap font used by the status panel.
//
// Every glyph is six column bytes, one per display column, with bit 7 at the top
// of the 8-pixel page. The alphabet is deliberately small: digits, upper case
// letters and a handful of symbols.
package font

import (
	"errors"
	"fmt"
)

// Width is the number of columns (bytes) in every glyph.
const Width = 6

// Index selects a row in the glyph table.
type Index uint8

// Symbol indices; digits are 0-9 and letters start at letterBase.
const (
	Dot     Index = 36
	Colon   Index = 37
	Space   Index = 38
	Percent Index = 39

	letterBase Index = 10
	size             = 41
)

// ErrUnsupported is returned for characters outside the panel alphabet.
var ErrUnsupported = errors.New("font: unsupported character")

// Glyph is one character as column bitmaps.
type Glyph [Width]byte

// Table maps every Index to its glyph. Row 40 is blank.
var Table = [size]Glyph{
	{0x00, 0x7C, 0x8A, 0x92, 0xA2, 0x7C}, // 0
	{0x00, 0x00, 0x42, 0xFE, 0x02, 0x00}, // 1
	{0x00, 0x46, 0x8A, 0x92, 0x92, 0x62}, // 2
	{0x00, 0x44, 0x92, 0x92, 0x92, 0x6C}, // 3
	{0x00, 0x18, 0x28, 0x48, 0xFE, 0x08}, // 4
	{0x00, 0xF4, 0x92, 0x92, 0x92, 0x8C}, // 5
	{0x00, 0x3C, 0x52, 0x92, 0x92, 0x0C}, // 6
	{0x00, 0x80, 0x8E, 0x90, 0xA0, 0xC0}, // 7
	{0x00, 0x6C, 0x92, 0x92, 0x92, 0x6C}, // 8
	{0x00, 0x60, 0x92, 0x92, 0x94, 0x78}, // 9
	{0x00, 0x7E, 0x88, 0x88, 0x88, 0x7E}, // A
	{0x00, 0xFE, 0x92, 0x92, 0x92, 0x6C}, // B
	{0x00, 0x7C, 0x82, 0x82, 0x82, 0x44}, // C
	{0x00, 0xFE, 0x82, 0x82, 0x82, 0x7C}, // D
	{0x00, 0xFE, 0x92, 0x92, 0x92, 0x82}, // E
	{0x00, 0xFE, 0x90, 0x90, 0x90, 0x80}, // F
	{0x00, 0x7C, 0x82, 0x92, 0x92, 0x5E}, // G
	{0x00, 0xFE, 0x10, 0x10, 0x10, 0xFE}, // H
	{0x00, 0x00, 0x82, 0xFE, 0x82, 0x00}, // I
	{0x00, 0x0C, 0x02, 0x02, 0x02, 0xFC}, // J
	{0x00, 0xFE, 0x10, 0x28, 0x44, 0x82}, // K
	{0x00, 0xFE, 0x02, 0x02, 0x02, 0x02}, // L
	{0x00, 0xFE, 0x40, 0x20, 0x40, 0xFE}, // M
	{0x00, 0xFE, 0x40, 0x20, 0x10, 0xFE}, // N
	{0x00, 0x7C, 0x82, 0x82, 0x82, 0x7C}, // O
	{0x00, 0xFE, 0x90, 0x90, 0x90, 0x60}, // P
	{0x00, 0x7C, 0x82, 0x8A, 0x84, 0x7A}, // Q
	{0x00, 0xFE, 0x90, 0x90, 0x98, 0x66}, // R
	{0x00, 0x64, 0x92, 0x92, 0x92, 0x4C}, // S
	{0x00, 0x80, 0x80, 0xFE, 0x80, 0x80}, // T
	{0x00, 0xFC, 0x02, 0x02, 0x02, 0xFC}, // U
	{0x00, 0xF8, 0x04, 0x02, 0x04, 0xF8}, // V
	{0x00, 0xFC, 0x02, 0x3C, 0x02, 0xFC}, // W
	{0x00, 0xC6, 0x28, 0x10, 0x28, 0xC6}, // X
	{0x00, 0xE0, 0x10, 0x0E, 0x10, 0xE0}, // Y
	{0x00, 0x8E, 0x92, 0xA2, 0xC2, 0x00}, // Z
	{0x00, 0x00, 0x06, 0x06, 0x00, 0x00}, // .
	{0x00, 0x00, 0x36, 0x36, 0x00, 0x00}, // :
	{0x00, 0x00, 0x00, 0x00, 0x00, 0x00}, // space
	{0x00, 0xC6, 0xC8, 0x10, 0x26, 0xC6}, // %
	{},
}

// Valid reports whether i addresses a row in the table.
func (i Index) Valid() bool {
	return int(i) < size
}

func (i Index) String() string {
	switch {
	case i < letterBase:
		return string(rune('0' + i))
	case i < Dot:
		return string(rune('A' + i - letterBase))
	case i == Dot:
		return "."
	case i == Colon:
		return ":"
	case i == Space:
		return " "
	case i == Percent:
		return "%"
	case i.Valid():
		return "<blank>"
	default:
		return fmt.Sprintf("Index(%d)", uint8(i))
	}
}

// Lookup returns the glyph for i, or false if i is out of range.
func Lookup(i Index) (Glyph, bool) {
	if !i.Valid() {
		return Glyph{}, false
	}
	return Table[i], true
}

// Digit returns the index of decimal digit n. Values above 9 are not checked and
// land in the letter range, exactly like the panel firmware.
func Digit(n int) Index {
	return Index(n)
}

// Letter returns the index of the upper case letter r.
func Letter(r rune) Index {
	return letterBase + Index(r-'A')
}

// Encode maps a character to its table index.
func Encode(r rune) (Index, error) {
	switch {
	case r >= '0' && r <= '9':
		return Digit(int(r - '0')), nil
	case r >= 'A' && r <= 'Z':
		return Letter(r), nil
	case r == '.':
		return Dot, nil
	case r == ':':
		return Colon, nil
	case r == ' ':
		return Space, nil
	case r == '%':
		return Percent, nil
	default:
		return 0, fmt.Errorf("%w %q", ErrUnsupported, r)
	}
}

// EncodeString maps every character of s.
func EncodeString(s string) ([]Index, error) {
	text := make([]Index, 0, len(s))
	for _, r := range s {
		i, err := Encode(r)
		if err != nil {
			return nil, err
		}
		text = append(text, i)
	}
	return text, nil
}

// MustEncode is like EncodeString but panics on unsupported characters. It is meant
// for compile-time labels.
func MustEncode(s string) []Index {
	text, err := EncodeString(s)
	if err != nil {
		panic(err)
	}
	return text
}
