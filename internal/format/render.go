package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/bukzor/bukzor-color/internal/color"
)

// AlphaPolicy controls when the alpha channel appears in output.
type AlphaPolicy string

const (
	// AlphaAuto includes alpha only when the color is not fully opaque.
	AlphaAuto AlphaPolicy = "auto"
	// AlphaAlways includes alpha even for opaque colors.
	AlphaAlways AlphaPolicy = "always"
	// AlphaNever omits alpha regardless of the color's opacity.
	AlphaNever AlphaPolicy = "never"
)

// ParseAlphaPolicy converts a case-insensitive policy name.
func ParseAlphaPolicy(s string) (AlphaPolicy, error) {
	switch strings.ToLower(s) {
	case "auto":
		return AlphaAuto, nil
	case "always":
		return AlphaAlways, nil
	case "never":
		return AlphaNever, nil
	default:
		return "", fmt.Errorf("unknown alpha policy: %q (want auto, always or never)", s)
	}
}

// Options configures rendering. The zero value is not useful; start
// from DefaultOptions.
type Options struct {
	// Lowercase selects the case of hex digits.
	Lowercase bool
	// IncludeAlpha decides when the alpha channel is emitted.
	IncludeAlpha AlphaPolicy
	// PercentPrecision is the number of decimal places for HSL/HSV
	// saturation, lightness and value percentages.
	PercentPrecision int
}

// DefaultOptions returns the conventional web defaults: lowercase hex,
// alpha only when translucent, whole-number percentages.
func DefaultOptions() Options {
	return Options{
		Lowercase:        true,
		IncludeAlpha:     AlphaAuto,
		PercentPrecision: 0,
	}
}

// Render serializes a canonical color in the target format. The Format
// enumeration is closed, so an unknown target is a caller-contract
// violation and panics.
func Render(c color.Color, target Format, opts Options) string {
	switch target {
	case Hex:
		return renderHex(c, opts)
	case RGB:
		return renderRGB(c, opts)
	case HSL:
		return renderHSL(c, opts)
	case HSV:
		return renderHSV(c, opts)
	default:
		panic(fmt.Sprintf("format: unknown target %d", int(target)))
	}
}

// withAlpha applies the alpha policy to a concrete color.
func (o Options) withAlpha(c color.Color) bool {
	switch o.IncludeAlpha {
	case AlphaAlways:
		return true
	case AlphaNever:
		return false
	default:
		return !c.Opaque()
	}
}

// renderHex emits #rrggbb, or #rrggbbaa when alpha is included.
// Shorthand forms are an input-only convenience and never emitted.
func renderHex(c color.Color, opts Options) string {
	r, g, b := c.Bytes()
	verb := "#%02x%02x%02x"
	if !opts.Lowercase {
		verb = "#%02X%02X%02X"
	}
	s := fmt.Sprintf(verb, r, g, b)
	if opts.withAlpha(c) {
		a := uint8(math.RoundToEven(c.A * 255))
		verb = "%02x"
		if !opts.Lowercase {
			verb = "%02X"
		}
		s += fmt.Sprintf(verb, a)
	}
	return s
}

// renderRGB emits rgb(r, g, b) or rgba(r, g, b, a) with integer
// channels rounded half to even.
func renderRGB(c color.Color, opts Options) string {
	r, g, b := c.Bytes()
	if opts.withAlpha(c) {
		return fmt.Sprintf("rgba(%d, %d, %d, %s)", r, g, b, formatAlpha(c.A))
	}
	return fmt.Sprintf("rgb(%d, %d, %d)", r, g, b)
}

// renderHSL emits hsl(h, s%, l%) or hsla(h, s%, l%, a).
func renderHSL(c color.Color, opts Options) string {
	hsl := c.ToHSL()
	h := roundHue(hsl.H)
	s := formatPercent(hsl.S, opts.PercentPrecision)
	l := formatPercent(hsl.L, opts.PercentPrecision)
	if opts.withAlpha(c) {
		return fmt.Sprintf("hsla(%d, %s%%, %s%%, %s)", h, s, l, formatAlpha(c.A))
	}
	return fmt.Sprintf("hsl(%d, %s%%, %s%%)", h, s, l)
}

// renderHSV emits hsv(h, s%, v%) or hsva(h, s%, v%, a).
func renderHSV(c color.Color, opts Options) string {
	hsv := c.ToHSV()
	h := roundHue(hsv.H)
	s := formatPercent(hsv.S, opts.PercentPrecision)
	v := formatPercent(hsv.V, opts.PercentPrecision)
	if opts.withAlpha(c) {
		return fmt.Sprintf("hsva(%d, %s%%, %s%%, %s)", h, s, v, formatAlpha(c.A))
	}
	return fmt.Sprintf("hsv(%d, %s%%, %s%%)", h, s, v)
}

// roundHue rounds a hue to the nearest integer degree in [0, 359].
func roundHue(h float64) int {
	return int(math.Round(h)) % 360
}

// formatPercent renders a percentage at the requested precision.
func formatPercent(v float64, precision int) string {
	if precision < 0 {
		precision = 0
	}
	return strconv.FormatFloat(v, 'f', precision, 64)
}

// formatAlpha renders an alpha value with up to three decimal places,
// trailing zeros trimmed.
func formatAlpha(a float64) string {
	s := strconv.FormatFloat(a, 'f', 3, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	return s
}
