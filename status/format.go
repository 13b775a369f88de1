package status

import "github.com/BeatGlow/statuspanel/font"

// PercentDigits returns the two digit rendering of v. Values above 99 are not
// checked: 100 renders as the letter A followed by 0.
func PercentDigits(v uint8) []font.Index {
	return []font.Index{font.Digit(int(v / 10)), font.Digit(int(v % 10))}
}

// NetworkDigits renders v as ones digit, dot, tenths and hundredths. Every digit
// is truncated on its own from v, v*10 and v*100, there is no rounding and no
// carry between positions.
func NetworkDigits(v float64) []font.Index {
	return []font.Index{
		font.Digit(int(v) % 10),
		font.Dot,
		font.Digit(int(v*10) % 10),
		font.Digit(int(v*100) % 10),
	}
}
