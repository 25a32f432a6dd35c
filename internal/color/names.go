package color

import (
	"sort"
	"strings"
)

// named is the CSS named-color subset the parser recognizes.
var named = map[string]Color{
	"black":     FromBytes(0x00, 0x00, 0x00),
	"white":     FromBytes(0xff, 0xff, 0xff),
	"red":       FromBytes(0xff, 0x00, 0x00),
	"green":     FromBytes(0x00, 0x80, 0x00),
	"blue":      FromBytes(0x00, 0x00, 0xff),
	"yellow":    FromBytes(0xff, 0xff, 0x00),
	"cyan":      FromBytes(0x00, 0xff, 0xff),
	"magenta":   FromBytes(0xff, 0x00, 0xff),
	"silver":    FromBytes(0xc0, 0xc0, 0xc0),
	"gray":      FromBytes(0x80, 0x80, 0x80),
	"maroon":    FromBytes(0x80, 0x00, 0x00),
	"olive":     FromBytes(0x80, 0x80, 0x00),
	"lime":      FromBytes(0x00, 0xff, 0x00),
	"aqua":      FromBytes(0x00, 0xff, 0xff),
	"teal":      FromBytes(0x00, 0x80, 0x80),
	"navy":      FromBytes(0x00, 0x00, 0x80),
	"fuchsia":   FromBytes(0xff, 0x00, 0xff),
	"purple":    FromBytes(0x80, 0x00, 0x80),
	"orange":    FromBytes(0xff, 0xa5, 0x00),
	"pink":      FromBytes(0xff, 0xc0, 0xcb),
	"brown":     FromBytes(0xa5, 0x2a, 0x2a),
	"gold":      FromBytes(0xff, 0xd7, 0x00),
	"indigo":    FromBytes(0x4b, 0x00, 0x82),
	"violet":    FromBytes(0xee, 0x82, 0xee),
	"crimson":   FromBytes(0xdc, 0x14, 0x3c),
	"khaki":     FromBytes(0xf0, 0xe6, 0x8c),
	"salmon":    FromBytes(0xfa, 0x80, 0x72),
	"coral":     FromBytes(0xff, 0x7f, 0x50),
	"turquoise": FromBytes(0x40, 0xe0, 0xd0),
	"plum":      FromBytes(0xdd, 0xa0, 0xdd),
	"tan":       FromBytes(0xd2, 0xb4, 0x8c),
}

// Named looks up a CSS named color, case-insensitively.
func Named(name string) (Color, bool) {
	c, ok := named[strings.ToLower(name)]
	return c, ok
}

// Names returns the recognized color names in sorted order.
func Names() []string {
	names := make([]string, 0, len(named))
	for name := range named {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
