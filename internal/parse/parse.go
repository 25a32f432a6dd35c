// Package parse reads color strings of known or unknown format into
// the canonical color model.
//
// Auto-detection tries grammars in a fixed priority order (hex, rgb,
// hsl, hsv, then named colors) and commits to the first structural
// match: once a string looks like a grammar, that grammar's errors are
// final and no later grammar is attempted. Malformed values are always
// rejected rather than clamped; clamping internal rounding drift is
// the renderer's concern.
package parse

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bukzor/bukzor-color/internal/color"
	"github.com/bukzor/bukzor-color/internal/format"
)

// Parse auto-detects the format of input and returns its canonical
// color. Failures are reported as a *ParseError.
func Parse(input string) (color.Color, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return color.Color{}, &ParseError{Kind: KindEmptyInput, Input: input}
	}

	switch {
	case looksHex(s):
		return parseHex(s)
	case looksFunc(s, "rgb"):
		return parseRGB(s)
	case looksFunc(s, "hsl"):
		return parseHSL(s)
	case looksFunc(s, "hsv"):
		return parseHSV(s)
	}

	if c, ok := color.Named(s); ok {
		return c, nil
	}

	return color.Color{}, &ParseError{Kind: KindUnrecognizedFormat, Input: s}
}

// ParseAs parses input against a single expected format, skipping
// auto-detection. The Format enumeration is closed; an unknown hint is
// a caller-contract violation and panics.
func ParseAs(input string, f format.Format) (color.Color, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return color.Color{}, &ParseError{Kind: KindEmptyInput, Input: input}
	}

	switch f {
	case format.Hex:
		return parseHex(s)
	case format.RGB:
		return parseRGB(s)
	case format.HSL:
		return parseHSL(s)
	case format.HSV:
		return parseHSV(s)
	default:
		panic(fmt.Sprintf("parse: unknown format hint %d", int(f)))
	}
}

// looksHex reports a structural hex match: a leading # always commits
// to the hex grammar, a bare string only when it is entirely hex
// digits of a valid length.
func looksHex(s string) bool {
	if strings.HasPrefix(s, "#") {
		return true
	}
	switch len(s) {
	case 3, 4, 6, 8:
		return isHexDigits(s)
	}
	return false
}

func isHexDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if hexValue(s[i]) < 0 {
			return false
		}
	}
	return true
}

func hexValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'f':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// parseHex parses 3, 4, 6 or 8 hex digits with an optional leading #.
// Shorthand digits are duplicated: f0a means ff00aa.
func parseHex(s string) (color.Color, error) {
	body := strings.TrimPrefix(s, "#")

	switch len(body) {
	case 3, 4:
		var expanded strings.Builder
		for i := 0; i < len(body); i++ {
			expanded.WriteByte(body[i])
			expanded.WriteByte(body[i])
		}
		body = expanded.String()
	case 6, 8:
	default:
		return color.Color{}, &ParseError{
			Kind:    KindIncompleteGrammar,
			Input:   s,
			Grammar: "hex",
			Detail:  fmt.Sprintf("want 3, 4, 6 or 8 hex digits, got %d", len(body)),
		}
	}

	if !isHexDigits(body) {
		return color.Color{}, &ParseError{
			Kind:    KindMalformedNumber,
			Input:   s,
			Grammar: "hex",
			Detail:  fmt.Sprintf("%q contains non-hex digits", strings.TrimPrefix(s, "#")),
		}
	}

	byteAt := func(i int) uint8 {
		return uint8(hexValue(body[i])<<4 | hexValue(body[i+1]))
	}
	c := color.FromBytes(byteAt(0), byteAt(2), byteAt(4))
	if len(body) == 8 {
		c = c.WithAlpha(float64(byteAt(6)) / 255)
	}
	return c, nil
}

// looksFunc reports a structural match for functional notation such as
// rgb(...) or rgba(...).
func looksFunc(s, name string) bool {
	return strings.HasPrefix(s, name+"(") || strings.HasPrefix(s, name+"a(")
}

// splitFunc splits functional notation into its comma-separated
// arguments, validating the closing parenthesis and arity. The -a form
// requires exactly one extra argument.
func splitFunc(s, name string) ([]string, bool, error) {
	alpha := strings.HasPrefix(s, name+"a(")
	prefix := name + "("
	if alpha {
		prefix = name + "a("
	}
	if !strings.HasPrefix(s, prefix) {
		return nil, false, &ParseError{
			Kind:    KindIncompleteGrammar,
			Input:   s,
			Grammar: name,
			Detail:  fmt.Sprintf("expected %s(...) notation", name),
		}
	}

	body, closed := strings.CutSuffix(strings.TrimPrefix(s, prefix), ")")
	if !closed {
		return nil, false, &ParseError{
			Kind:    KindIncompleteGrammar,
			Input:   s,
			Grammar: name,
			Detail:  "missing closing parenthesis",
		}
	}

	args := strings.Split(body, ",")
	for i := range args {
		args[i] = strings.TrimSpace(args[i])
	}

	want := 3
	if alpha {
		want = 4
	}
	if len(args) != want {
		return nil, false, &ParseError{
			Kind:    KindIncompleteGrammar,
			Input:   s,
			Grammar: name,
			Detail:  fmt.Sprintf("want %d arguments, got %d", want, len(args)),
		}
	}
	return args, alpha, nil
}

// parseRGB parses rgb(r, g, b) / rgba(r, g, b, a). Channels are
// integers 0-255 or percentages, independently per channel.
func parseRGB(s string) (color.Color, error) {
	args, alpha, err := splitFunc(s, "rgb")
	if err != nil {
		return color.Color{}, err
	}

	var ch [3]float64
	for i := 0; i < 3; i++ {
		ch[i], err = parseRGBChannel(s, args[i])
		if err != nil {
			return color.Color{}, err
		}
	}

	c := color.New(ch[0]/255, ch[1]/255, ch[2]/255)
	if alpha {
		a, err := parseAlpha(s, "rgb", args[3])
		if err != nil {
			return color.Color{}, err
		}
		c = c.WithAlpha(a)
	}
	return c, nil
}

// parseRGBChannel parses one RGB channel as an integer 0-255 or a
// percentage 0%-100%, returning the value on the 0-255 scale.
func parseRGBChannel(input, tok string) (float64, error) {
	if pct, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, &ParseError{
				Kind:    KindMalformedNumber,
				Input:   input,
				Grammar: "rgb",
				Detail:  fmt.Sprintf("bad percentage %q", tok),
			}
		}
		if v < 0 || v > 100 {
			return 0, &ParseError{
				Kind:    KindOutOfRange,
				Input:   input,
				Grammar: "rgb",
				Detail:  fmt.Sprintf("channel %s outside [0%%, 100%%]", tok),
			}
		}
		return v / 100 * 255, nil
	}

	n, err := strconv.Atoi(tok)
	if err != nil {
		return 0, &ParseError{
			Kind:    KindMalformedNumber,
			Input:   input,
			Grammar: "rgb",
			Detail:  fmt.Sprintf("bad integer %q", tok),
		}
	}
	if n < 0 || n > 255 {
		return 0, &ParseError{
			Kind:    KindOutOfRange,
			Input:   input,
			Grammar: "rgb",
			Detail:  fmt.Sprintf("channel %d outside [0, 255]", n),
		}
	}
	return float64(n), nil
}

// parseAlpha parses an alpha argument as a real 0-1 or a percentage.
func parseAlpha(input, grammar, tok string) (float64, error) {
	if pct, ok := strings.CutSuffix(tok, "%"); ok {
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, &ParseError{
				Kind:    KindMalformedNumber,
				Input:   input,
				Grammar: grammar,
				Detail:  fmt.Sprintf("bad alpha percentage %q", tok),
			}
		}
		if v < 0 || v > 100 {
			return 0, &ParseError{
				Kind:    KindOutOfRange,
				Input:   input,
				Grammar: grammar,
				Detail:  fmt.Sprintf("alpha %s outside [0%%, 100%%]", tok),
			}
		}
		return v / 100, nil
	}

	v, err := strconv.ParseFloat(tok, 64)
	if err != nil {
		return 0, &ParseError{
			Kind:    KindMalformedNumber,
			Input:   input,
			Grammar: grammar,
			Detail:  fmt.Sprintf("bad alpha %q", tok),
		}
	}
	if v < 0 || v > 1 {
		return 0, &ParseError{
			Kind:    KindOutOfRange,
			Input:   input,
			Grammar: grammar,
			Detail:  fmt.Sprintf("alpha %s outside [0, 1]", tok),
		}
	}
	return v, nil
}

// parseHueTriple parses the shared hsl/hsv argument shape: a real hue
// in degrees (normalized modulo 360) and two required percentages.
func parseHueTriple(s, name string) (h, p1, p2, a float64, hasAlpha bool, err error) {
	args, alpha, err := splitFunc(s, name)
	if err != nil {
		return 0, 0, 0, 0, false, err
	}

	h, err = strconv.ParseFloat(args[0], 64)
	if err != nil {
		return 0, 0, 0, 0, false, &ParseError{
			Kind:    KindMalformedNumber,
			Input:   s,
			Grammar: name,
			Detail:  fmt.Sprintf("bad hue %q", args[0]),
		}
	}
	h = color.NormalizeHue(h)

	names := [2]string{"saturation", ""}
	if name == "hsl" {
		names[1] = "lightness"
	} else {
		names[1] = "value"
	}
	var pcts [2]float64
	for i := 0; i < 2; i++ {
		tok := args[i+1]
		pct, ok := strings.CutSuffix(tok, "%")
		if !ok {
			return 0, 0, 0, 0, false, &ParseError{
				Kind:    KindMalformedNumber,
				Input:   s,
				Grammar: name,
				Detail:  fmt.Sprintf("%s %q must be a percentage", names[i], tok),
			}
		}
		v, err := strconv.ParseFloat(pct, 64)
		if err != nil {
			return 0, 0, 0, 0, false, &ParseError{
				Kind:    KindMalformedNumber,
				Input:   s,
				Grammar: name,
				Detail:  fmt.Sprintf("bad %s %q", names[i], tok),
			}
		}
		if v < 0 || v > 100 {
			return 0, 0, 0, 0, false, &ParseError{
				Kind:    KindOutOfRange,
				Input:   s,
				Grammar: name,
				Detail:  fmt.Sprintf("%s %s outside [0%%, 100%%]", names[i], tok),
			}
		}
		pcts[i] = v
	}

	if alpha {
		a, err = parseAlpha(s, name, args[3])
		if err != nil {
			return 0, 0, 0, 0, false, err
		}
	}
	return h, pcts[0], pcts[1], a, alpha, nil
}

// parseHSL parses hsl(h, s%, l%) / hsla(h, s%, l%, a).
func parseHSL(s string) (color.Color, error) {
	h, sat, light, a, hasAlpha, err := parseHueTriple(s, "hsl")
	if err != nil {
		return color.Color{}, err
	}
	c := color.FromHSL(h, sat, light)
	if hasAlpha {
		c = c.WithAlpha(a)
	}
	return c, nil
}

// parseHSV parses hsv(h, s%, v%) / hsva(h, s%, v%, a).
func parseHSV(s string) (color.Color, error) {
	h, sat, val, a, hasAlpha, err := parseHueTriple(s, "hsv")
	if err != nil {
		return color.Color{}, err
	}
	c := color.FromHSV(h, sat, val)
	if hasAlpha {
		c = c.WithAlpha(a)
	}
	return c, nil
}
