// Package format renders canonical colors into the string form of any
// supported representation.
package format

import (
	"fmt"
	"strings"
)

// Format identifies one of the supported color representations. The
// enumeration is closed: the parser's grammar selection and the
// renderer's dispatch both switch exhaustively over it.
type Format int

const (
	Hex Format = iota
	RGB
	HSL
	HSV
)

// String returns the lowercase format name.
func (f Format) String() string {
	switch f {
	case Hex:
		return "hex"
	case RGB:
		return "rgb"
	case HSL:
		return "hsl"
	case HSV:
		return "hsv"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// Formats returns every supported format in detection order.
func Formats() []Format {
	return []Format{Hex, RGB, HSL, HSV}
}

// ParseFormat converts a case-insensitive format name to a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(s) {
	case "hex":
		return Hex, nil
	case "rgb":
		return RGB, nil
	case "hsl":
		return HSL, nil
	case "hsv":
		return HSV, nil
	default:
		return 0, fmt.Errorf("unknown color format: %q (want hex, rgb, hsl or hsv)", s)
	}
}
