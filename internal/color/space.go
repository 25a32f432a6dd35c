package color

import "math"

// HSL holds a hue in degrees [0, 360) and saturation/lightness
// percentages in [0, 100].
type HSL struct {
	H, S, L float64
}

// HSV holds a hue in degrees [0, 360) and saturation/value percentages
// in [0, 100].
type HSV struct {
	H, S, V float64
}

// NormalizeHue wraps a degree value into [0, 360).
func NormalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	return h
}

// FromHSL converts HSL values (h in degrees, s and l as percentages
// 0-100) to a canonical color using the hue-to-RGB sector algorithm.
// The result is quantized to the nearest 1/255.
func FromHSL(h, s, l float64) Color {
	hn := NormalizeHue(h) / 360
	sn := s / 100
	ln := l / 100

	if sn == 0 {
		// Achromatic: every channel is the lightness.
		return New(ln, ln, ln).Quantize()
	}

	var q float64
	if ln < 0.5 {
		q = ln * (1 + sn)
	} else {
		q = ln + sn - ln*sn
	}
	p := 2*ln - q

	return New(
		hueToRGB(p, q, hn+1.0/3),
		hueToRGB(p, q, hn),
		hueToRGB(p, q, hn-1.0/3),
	).Quantize()
}

func hueToRGB(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}

// FromHSV converts HSV values (h in degrees, s and v as percentages
// 0-100) to a canonical color using the six-sector algorithm. The
// result is quantized to the nearest 1/255.
func FromHSV(h, s, v float64) Color {
	hn := NormalizeHue(h) / 360
	sn := s / 100
	vn := v / 100

	if sn == 0 {
		return New(vn, vn, vn).Quantize()
	}

	sector := hn * 6
	i := int(sector) % 6
	f := sector - math.Floor(sector)

	p := vn * (1 - sn)
	q := vn * (1 - sn*f)
	t := vn * (1 - sn*(1-f))

	var r, g, b float64
	switch i {
	case 0:
		r, g, b = vn, t, p
	case 1:
		r, g, b = q, vn, p
	case 2:
		r, g, b = p, vn, t
	case 3:
		r, g, b = p, q, vn
	case 4:
		r, g, b = t, p, vn
	default: // i == 5
		r, g, b = vn, p, q
	}
	return New(r, g, b).Quantize()
}

// ToHSL converts the color to HSL using the max/min-channel algorithm.
// Achromatic colors report hue 0 and saturation 0.
func (c Color) ToHSL() HSL {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	diff := max - min

	l := (max + min) / 2
	if diff == 0 {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	var s float64
	if l < 0.5 {
		s = diff / (max + min)
	} else {
		s = diff / (2 - max - min)
	}

	return HSL{H: c.hue(max, diff), S: s * 100, L: l * 100}
}

// ToHSV converts the color to HSV using the max/min-channel algorithm.
// Achromatic colors report hue 0 and saturation 0.
func (c Color) ToHSV() HSV {
	max := math.Max(c.R, math.Max(c.G, c.B))
	min := math.Min(c.R, math.Min(c.G, c.B))
	diff := max - min

	if max == 0 || diff == 0 {
		return HSV{H: 0, S: 0, V: max * 100}
	}

	return HSV{H: c.hue(max, diff), S: diff / max * 100, V: max * 100}
}

// hue computes the shared hue angle in degrees for HSL/HSV extraction.
func (c Color) hue(max, diff float64) float64 {
	var h float64
	switch max {
	case c.R:
		h = (c.G - c.B) / diff
		if c.G < c.B {
			h += 6
		}
	case c.G:
		h = (c.B-c.R)/diff + 2
	default:
		h = (c.R-c.G)/diff + 4
	}
	return h * 60
}
