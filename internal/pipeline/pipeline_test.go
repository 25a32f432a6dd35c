package pipeline

import (
	"errors"
	"math"
	"testing"

	"github.com/bukzor/bukzor-color/internal/format"
	"github.com/bukzor/bukzor-color/internal/parse"
)

func run(t *testing.T, input string, opts Options) string {
	t.Helper()
	res, err := Run(input, opts)
	if err != nil {
		t.Fatalf("Run(%q): %v", input, err)
	}
	return res.Output
}

func TestRunConversions(t *testing.T) {
	tests := []struct {
		in   string
		to   format.Format
		want string
	}{
		{"#ff0000", format.RGB, "rgb(255, 0, 0)"},
		{"hsl(120, 100%, 50%)", format.Hex, "#00ff00"},
		{"rgb(255, 165, 0)", format.HSL, "hsl(39, 100%, 50%)"},
		{"hsv(0, 0%, 50%)", format.Hex, "#808080"},
		{"red", format.Hex, "#ff0000"},
		{"#ff0000", format.Hex, "#ff0000"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			opts := Options{To: tt.to, Render: format.DefaultOptions()}
			if got := run(t, tt.in, opts); got != tt.want {
				t.Errorf("Run(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestRunAlphaCarriesAcross(t *testing.T) {
	render := format.DefaultOptions()
	render.IncludeAlpha = format.AlphaAlways
	opts := Options{To: format.HSV, Render: render}
	if got := run(t, "rgba(0, 0, 0, 0.5)", opts); got != "hsva(0, 0%, 0%, 0.5)" {
		t.Errorf("Run = %q, want hsva(0, 0%%, 0%%, 0.5)", got)
	}
}

// Converting a color to its own format and back through the parser is
// stable after the first pass.
func TestRunIdempotent(t *testing.T) {
	inputs := []string{"#8a2be2", "rgb(112, 153, 194)", "hsl(210, 40%, 60%)", "hsv(39, 100%, 50%)"}
	targets := []format.Format{format.Hex, format.RGB, format.HSL, format.HSV}

	for _, in := range inputs {
		for _, to := range targets {
			opts := Options{To: to, Render: format.DefaultOptions()}
			first := run(t, in, opts)
			second := run(t, first, opts)
			if first != second {
				t.Errorf("Run(%q -> %s) not stable: %q then %q", in, to, first, second)
			}
		}
	}
}

// Rendering a canonical color in any format and parsing the result
// back lands within one 1/255 step of the original on every channel.
func TestRunRoundTripColor(t *testing.T) {
	inputs := []string{
		"red",
		"#8a2be2",
		"#336699",
		"rgb(112, 153, 194)",
		"hsl(39, 100%, 25%)",
		"rgba(16, 32, 64, 0.5)",
	}
	targets := []format.Format{format.Hex, format.RGB, format.HSL, format.HSV}

	for _, in := range inputs {
		for _, to := range targets {
			opts := Options{To: to, Render: format.DefaultOptions()}
			first, err := Run(in, opts)
			if err != nil {
				t.Fatalf("Run(%q): %v", in, err)
			}
			back, err := Run(first.Output, opts)
			if err != nil {
				t.Fatalf("Run(%q -> %s) reparse %q: %v", in, to, first.Output, err)
			}

			r1, g1, b1 := first.Color.Bytes()
			r2, g2, b2 := back.Color.Bytes()
			if diffU8(r1, r2) > 1 || diffU8(g1, g2) > 1 || diffU8(b1, b2) > 1 {
				t.Errorf("Run(%q -> %s) via %q: (%d, %d, %d) became (%d, %d, %d)",
					in, to, first.Output, r1, g1, b1, r2, g2, b2)
			}
			if math.Abs(first.Color.A-back.Color.A) > 1.0/255 {
				t.Errorf("Run(%q -> %s) via %q: alpha %v became %v",
					in, to, first.Output, first.Color.A, back.Color.A)
			}
		}
	}
}

func diffU8(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRunWithHint(t *testing.T) {
	from := format.Hex
	opts := Options{From: &from, To: format.RGB, Render: format.DefaultOptions()}
	if got := run(t, "00ff00", opts); got != "rgb(0, 255, 0)" {
		t.Errorf("Run = %q, want rgb(0, 255, 0)", got)
	}

	if _, err := Run("rgb(0, 0, 0)", opts); err == nil {
		t.Error("rgb input with a hex hint should fail")
	}
}

func TestRunErrorUnwraps(t *testing.T) {
	_, err := Run("", Options{To: format.Hex, Render: format.DefaultOptions()})
	var perr *parse.ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Run error %v does not unwrap to *ParseError", err)
	}
	if perr.Kind != parse.KindEmptyInput {
		t.Errorf("kind = %s, want empty input", perr.Kind)
	}
}
