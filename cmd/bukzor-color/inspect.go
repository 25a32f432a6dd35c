package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/bukzor/bukzor-color/internal/color"
	"github.com/bukzor/bukzor-color/internal/format"
	"github.com/bukzor/bukzor-color/internal/parse"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect [color]",
	Short: "Show every representation of a color",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	c, err := parse.Parse(args[0])
	if err != nil {
		return err
	}

	opts := format.DefaultOptions()
	hex := format.Render(c, format.Hex, opts)

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		out, err := json.MarshalIndent(map[string]any{
			"input":     args[0],
			"hex":       hex,
			"rgb":       format.Render(c, format.RGB, opts),
			"hsl":       format.Render(c, format.HSL, opts),
			"hsv":       format.Render(c, format.HSV, opts),
			"alpha":     c.A,
			"luminance": c.Luminance(),
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	// The swatch uses the composited color so translucent inputs
	// preview the way they would over a white page.
	swatchHex := format.Render(c.Over(color.FromBytes(255, 255, 255)), format.Hex, opts)
	swatch := lipgloss.NewStyle().
		Background(lipgloss.Color(swatchHex)).
		Render("        ")

	fmt.Fprintf(cmd.OutOrStdout(), "%s  %s\n", swatch, args[0])
	fmt.Fprintf(cmd.OutOrStdout(), "Hex:       %s\n", hex)
	fmt.Fprintf(cmd.OutOrStdout(), "RGB:       %s\n", format.Render(c, format.RGB, opts))
	fmt.Fprintf(cmd.OutOrStdout(), "HSL:       %s\n", format.Render(c, format.HSL, opts))
	fmt.Fprintf(cmd.OutOrStdout(), "HSV:       %s\n", format.Render(c, format.HSV, opts))
	fmt.Fprintf(cmd.OutOrStdout(), "Alpha:     %.3g\n", c.A)
	fmt.Fprintf(cmd.OutOrStdout(), "Luminance: %.4f\n", c.Luminance())
	return nil
}
