package color

import (
	"fmt"
	"math"
	"strings"
)

// WCAG 2.1 relative luminance coefficients (ITU-R BT.709).
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

// Luminance returns the WCAG 2.1 relative luminance of the color,
// in [0, 1]. Channels are linearized before weighting.
func (c Color) Luminance() float64 {
	return lumR*linearize(c.R) + lumG*linearize(c.G) + lumB*linearize(c.B)
}

// linearize undoes the sRGB transfer function for one channel.
func linearize(ch float64) float64 {
	if ch <= 0.03928 {
		return ch / 12.92
	}
	return math.Pow((ch+0.055)/1.055, 2.4)
}

// ContrastRatio returns the WCAG contrast ratio between c and other,
// in [1, 21]. The lighter color always ends up in the numerator.
func (c Color) ContrastRatio(other Color) float64 {
	l1 := c.Luminance()
	l2 := other.Luminance()
	if l1 < l2 {
		l1, l2 = l2, l1
	}
	return (l1 + 0.05) / (l2 + 0.05)
}

// Level identifies a WCAG conformance level.
type Level string

const (
	LevelA        Level = "A"
	LevelAA       Level = "AA"
	LevelAAA      Level = "AAA"
	LevelAALarge  Level = "AA-large"
	LevelAAALarge Level = "AAA-large"
)

// ParseLevel converts a case-insensitive level name to a Level.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(s) {
	case "a":
		return LevelA, nil
	case "aa":
		return LevelAA, nil
	case "aaa":
		return LevelAAA, nil
	case "aa-large":
		return LevelAALarge, nil
	case "aaa-large":
		return LevelAAALarge, nil
	default:
		return "", fmt.Errorf("unknown WCAG level: %q", s)
	}
}

// MinRatio returns the minimum contrast ratio the level requires.
// Level A places no contrast requirement on text.
func (l Level) MinRatio() float64 {
	switch l {
	case LevelAA, LevelAAALarge:
		return 4.5
	case LevelAAA:
		return 7
	case LevelAALarge:
		return 3
	default:
		return 1
	}
}

// ContrastResult holds the contrast ratio computed for a color pair.
type ContrastResult struct {
	Foreground Color
	Background Color
	Ratio      float64
}

// Contrast computes the WCAG contrast ratio between a foreground and a
// background color.
func Contrast(fg, bg Color) ContrastResult {
	return ContrastResult{Foreground: fg, Background: bg, Ratio: fg.ContrastRatio(bg)}
}

// Meets reports whether the pair satisfies the given WCAG level.
func (r ContrastResult) Meets(l Level) bool {
	return r.Ratio >= l.MinRatio()
}

// Summary reports pass/fail for every level that carries a contrast
// requirement.
func (r ContrastResult) Summary() map[Level]bool {
	return map[Level]bool{
		LevelAA:       r.Meets(LevelAA),
		LevelAAA:      r.Meets(LevelAAA),
		LevelAALarge:  r.Meets(LevelAALarge),
		LevelAAALarge: r.Meets(LevelAAALarge),
	}
}

// AdjustTarget selects which color AdjustContrast is allowed to move.
type AdjustTarget string

const (
	AdjustForeground AdjustTarget = "fg"
	AdjustBackground AdjustTarget = "bg"
	AdjustAuto       AdjustTarget = "auto"
)

// ParseAdjustTarget converts a string to an AdjustTarget.
func ParseAdjustTarget(s string) (AdjustTarget, error) {
	switch strings.ToLower(s) {
	case "fg":
		return AdjustForeground, nil
	case "bg":
		return AdjustBackground, nil
	case "auto":
		return AdjustAuto, nil
	default:
		return "", fmt.Errorf("unknown adjust target: %q (want fg, bg or auto)", s)
	}
}

// AdjustContrast moves one color's HSL lightness until the pair meets
// the target ratio, keeping hue and saturation fixed. With AdjustAuto
// it adjusts whichever color needs the smaller luminance change. When
// the target is unreachable within the sRGB gamut the closest
// achievable pair is returned; callers should check the result's Meets.
func AdjustContrast(fg, bg Color, target float64, adjust AdjustTarget) (Color, Color, ContrastResult) {
	current := Contrast(fg, bg)
	if current.Ratio >= target {
		return fg, bg, current
	}

	switch adjust {
	case AdjustBackground:
		newBG := adjustForContrast(bg, fg, target)
		return fg, newBG, Contrast(fg, newBG)
	case AdjustAuto:
		newFG := adjustForContrast(fg, bg, target)
		newBG := adjustForContrast(bg, fg, target)
		fgResult := Contrast(newFG, bg)
		bgResult := Contrast(fg, newBG)
		fgChange := math.Abs(fg.Luminance() - newFG.Luminance())
		bgChange := math.Abs(bg.Luminance() - newBG.Luminance())
		switch {
		case fgResult.Ratio >= target && bgResult.Ratio >= target:
			if fgChange <= bgChange {
				return newFG, bg, fgResult
			}
			return fg, newBG, bgResult
		case fgResult.Ratio >= target:
			return newFG, bg, fgResult
		case bgResult.Ratio >= target:
			return fg, newBG, bgResult
		case fgResult.Ratio >= bgResult.Ratio:
			return newFG, bg, fgResult
		default:
			return fg, newBG, bgResult
		}
	default: // AdjustForeground
		newFG := adjustForContrast(fg, bg, target)
		return newFG, bg, Contrast(newFG, bg)
	}
}

// adjustForContrast finds a lightness for c that contrasts with fixed
// at the target ratio. Both the lighter-than and darker-than solutions
// of the ratio equation are tried; the better one wins.
func adjustForContrast(c, fixed Color, target float64) Color {
	hsl := c.ToHSL()
	fixedLum := fixed.Luminance()

	// ratio = (L_hi + 0.05) / (L_lo + 0.05), solved for each side.
	lighter := target*(fixedLum+0.05) - 0.05
	darker := (fixedLum+0.05)/target - 0.05

	best := c
	bestRatio := c.ContrastRatio(fixed)
	for _, want := range []float64{lighter, darker} {
		l := findLightness(hsl.H, hsl.S, clamp01(want))
		// The canonical model quantizes to 1/255, so the bisection
		// result can land one step shy of the target; check the
		// adjacent lightness steps too.
		for _, dl := range []float64{-0.4, 0, 0.4} {
			candidate := FromHSL(hsl.H, hsl.S, math.Max(0, math.Min(100, l+dl)))
			ratio := candidate.ContrastRatio(fixed)
			if betterRatio(ratio, bestRatio, target) {
				best, bestRatio = candidate, ratio
			}
		}
	}
	return best
}

// betterRatio prefers ratios that meet the target, and among those the
// least extreme one; below target, closer to target is better.
func betterRatio(ratio, best, target float64) bool {
	if ratio >= target && best >= target {
		return ratio < best
	}
	if ratio >= target {
		return true
	}
	if best >= target {
		return false
	}
	return ratio > best
}

// findLightness bisects HSL lightness for the value whose luminance is
// closest to want. Luminance is monotone in lightness for fixed hue
// and saturation, so plain bisection converges.
func findLightness(h, s, want float64) float64 {
	lo, hi := 0.0, 100.0
	for i := 0; i < 48; i++ {
		mid := (lo + hi) / 2
		if FromHSL(h, s, mid).Luminance() < want {
			lo = mid
		} else {
			hi = mid
		}
	}
	return (lo + hi) / 2
}
