// Package pipeline wires the parser and the renderer into the single
// conversion operation the CLI consumes.
package pipeline

import (
	"fmt"

	"github.com/bukzor/bukzor-color/internal/color"
	"github.com/bukzor/bukzor-color/internal/format"
	"github.com/bukzor/bukzor-color/internal/parse"
)

// Options controls a conversion run.
type Options struct {
	From   *format.Format // optional parse hint; nil auto-detects
	To     format.Format  // target representation
	Render format.Options // rendering configuration
}

// Result holds the output of a conversion.
type Result struct {
	Output string      // rendered color string
	Color  color.Color // the canonical color the input parsed to
}

// Run executes the full conversion: parse → canonical color → render.
func Run(input string, opts Options) (*Result, error) {
	var c color.Color
	var err error
	if opts.From != nil {
		c, err = parse.ParseAs(input, *opts.From)
	} else {
		c, err = parse.Parse(input)
	}
	if err != nil {
		return nil, fmt.Errorf("parse: %w", err)
	}

	return &Result{
		Output: format.Render(c, opts.To, opts.Render),
		Color:  c,
	}, nil
}
