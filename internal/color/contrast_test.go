package color

import (
	"math"
	"testing"
)

func TestLuminanceKnownValues(t *testing.T) {
	tests := []struct {
		name    string
		r, g, b uint8
		want    float64
	}{
		{"black", 0, 0, 0, 0},
		{"white", 255, 255, 255, 1},
		{"red", 255, 0, 0, 0.2126},
		{"lime", 0, 255, 0, 0.7152},
		{"blue", 0, 0, 255, 0.0722},
	}
	for _, tt := range tests {
		got := FromBytes(tt.r, tt.g, tt.b).Luminance()
		if math.Abs(got-tt.want) > 0.0005 {
			t.Errorf("%s: Luminance() = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestContrastRatio(t *testing.T) {
	white := FromBytes(255, 255, 255)
	black := FromBytes(0, 0, 0)

	if got := white.ContrastRatio(black); math.Abs(got-21) > 0.01 {
		t.Errorf("white vs black = %v, want 21", got)
	}
	// Symmetric: the lighter color goes in the numerator either way.
	if ab, ba := white.ContrastRatio(black), black.ContrastRatio(white); ab != ba {
		t.Errorf("ratio not symmetric: %v vs %v", ab, ba)
	}
	if got := white.ContrastRatio(white); got != 1 {
		t.Errorf("white vs white = %v, want 1", got)
	}

	// #777777 on white is the classic near-miss for AA.
	gray := FromBytes(0x77, 0x77, 0x77)
	if got := gray.ContrastRatio(white); math.Abs(got-4.48) > 0.02 {
		t.Errorf("#777777 vs white = %v, want ≈4.48", got)
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"AA", LevelAA},
		{"aa", LevelAA},
		{"AAA", LevelAAA},
		{"aa-large", LevelAALarge},
		{"AAA-Large", LevelAAALarge},
		{"a", LevelA},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		if err != nil {
			t.Fatalf("ParseLevel(%q): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if _, err := ParseLevel("AAAA"); err == nil {
		t.Error("ParseLevel(AAAA) should fail")
	}
}

func TestLevelMinRatio(t *testing.T) {
	tests := []struct {
		level Level
		want  float64
	}{
		{LevelA, 1},
		{LevelAA, 4.5},
		{LevelAAA, 7},
		{LevelAALarge, 3},
		{LevelAAALarge, 4.5},
	}
	for _, tt := range tests {
		if got := tt.level.MinRatio(); got != tt.want {
			t.Errorf("%s.MinRatio() = %v, want %v", tt.level, got, tt.want)
		}
	}
}

func TestContrastMeets(t *testing.T) {
	white := FromBytes(255, 255, 255)
	gray := FromBytes(0x77, 0x77, 0x77)

	result := Contrast(gray, white)
	if result.Meets(LevelAA) {
		t.Errorf("#777777 on white (%.3f:1) should fail AA", result.Ratio)
	}
	if !result.Meets(LevelAALarge) {
		t.Errorf("#777777 on white (%.3f:1) should pass AA-large", result.Ratio)
	}

	summary := Contrast(FromBytes(0, 0, 0), white).Summary()
	for level, ok := range summary {
		if !ok {
			t.Errorf("black on white should pass %s", level)
		}
	}
}

func TestAdjustContrastAlreadyMeets(t *testing.T) {
	black := FromBytes(0, 0, 0)
	white := FromBytes(255, 255, 255)

	fg, bg, result := AdjustContrast(black, white, LevelAA.MinRatio(), AdjustForeground)
	if fg != black || bg != white {
		t.Error("pair already meeting the target must come back unchanged")
	}
	if math.Abs(result.Ratio-21) > 0.01 {
		t.Errorf("ratio = %v, want 21", result.Ratio)
	}
}

func TestAdjustContrastForeground(t *testing.T) {
	gray := FromBytes(0x77, 0x77, 0x77)
	white := FromBytes(255, 255, 255)

	fg, bg, result := AdjustContrast(gray, white, LevelAA.MinRatio(), AdjustForeground)
	if bg != white {
		t.Error("background must stay fixed when adjusting fg")
	}
	if !result.Meets(LevelAA) {
		t.Errorf("adjusted ratio = %.3f, want >= 4.5", result.Ratio)
	}
	// Adjustment moves lightness only; an achromatic color stays gray.
	if hsl := fg.ToHSL(); hsl.S != 0 {
		t.Errorf("adjusted gray gained saturation: %v", hsl.S)
	}
}

func TestAdjustContrastAuto(t *testing.T) {
	fg := FromBytes(0x88, 0x88, 0x88)
	bg := FromBytes(0xaa, 0xaa, 0xaa)

	_, _, result := AdjustContrast(fg, bg, LevelAALarge.MinRatio(), AdjustAuto)
	if !result.Meets(LevelAALarge) {
		t.Errorf("adjusted ratio = %.3f, want >= 3", result.Ratio)
	}
}

func TestParseAdjustTarget(t *testing.T) {
	for in, want := range map[string]AdjustTarget{"fg": AdjustForeground, "BG": AdjustBackground, "auto": AdjustAuto} {
		got, err := ParseAdjustTarget(in)
		if err != nil {
			t.Fatalf("ParseAdjustTarget(%q): %v", in, err)
		}
		if got != want {
			t.Errorf("ParseAdjustTarget(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseAdjustTarget("both"); err == nil {
		t.Error("ParseAdjustTarget(both) should fail")
	}
}
