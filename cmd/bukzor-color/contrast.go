package main

import (
	"encoding/json"
	"fmt"

	fatih "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/bukzor/bukzor-color/internal/color"
	"github.com/bukzor/bukzor-color/internal/format"
	"github.com/bukzor/bukzor-color/internal/parse"
)

var contrastCmd = &cobra.Command{
	Use:   "contrast [foreground] [background]",
	Short: "Calculate the WCAG contrast ratio between two colors",
	Args:  cobra.ExactArgs(2),
	RunE:  runContrast,
}

func init() {
	contrastCmd.Flags().String("level", "AA", "WCAG level to check (A, AA, AAA, AA-large, AAA-large)")
	contrastCmd.Flags().String("adjust", "", "Adjust a color to meet the level (fg, bg, auto)")
	contrastCmd.Flags().Bool("json", false, "Output as JSON")
	rootCmd.AddCommand(contrastCmd)
}

func runContrast(cmd *cobra.Command, args []string) error {
	fg, err := parse.Parse(args[0])
	if err != nil {
		return fmt.Errorf("foreground: %w", err)
	}
	bg, err := parse.Parse(args[1])
	if err != nil {
		return fmt.Errorf("background: %w", err)
	}

	levelName, _ := cmd.Flags().GetString("level")
	level, err := color.ParseLevel(levelName)
	if err != nil {
		return err
	}

	result := color.Contrast(fg, bg)

	var adjusted *color.ContrastResult
	if adjustName, _ := cmd.Flags().GetString("adjust"); adjustName != "" {
		adjust, err := color.ParseAdjustTarget(adjustName)
		if err != nil {
			return err
		}
		_, _, res := color.AdjustContrast(fg, bg, level.MinRatio(), adjust)
		adjusted = &res
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printContrastJSON(cmd, result, adjusted)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Contrast ratio: %.2f:1\n", result.Ratio)
	for _, l := range []color.Level{color.LevelAALarge, color.LevelAA, color.LevelAAALarge, color.LevelAAA} {
		fmt.Fprintf(cmd.OutOrStdout(), "  %-10s %s\n", l, passFail(result.Meets(l)))
	}

	if adjusted != nil {
		opts := format.DefaultOptions()
		fmt.Fprintf(cmd.OutOrStdout(), "Adjusted for %s (%.1f:1):\n", level, level.MinRatio())
		fmt.Fprintf(cmd.OutOrStdout(), "  Foreground: %s\n", format.Render(adjusted.Foreground, format.Hex, opts))
		fmt.Fprintf(cmd.OutOrStdout(), "  Background: %s\n", format.Render(adjusted.Background, format.Hex, opts))
		fmt.Fprintf(cmd.OutOrStdout(), "  Ratio:      %.2f:1 (%s)\n", adjusted.Ratio, passFail(adjusted.Meets(level)))
	}
	return nil
}

func passFail(ok bool) string {
	if ok {
		return fatih.GreenString("pass")
	}
	return fatih.RedString("fail")
}

func printContrastJSON(cmd *cobra.Command, result color.ContrastResult, adjusted *color.ContrastResult) error {
	opts := format.DefaultOptions()

	levels := make(map[string]bool)
	for l, ok := range result.Summary() {
		levels[string(l)] = ok
	}

	payload := map[string]any{
		"foreground": format.Render(result.Foreground, format.Hex, opts),
		"background": format.Render(result.Background, format.Hex, opts),
		"ratio":      result.Ratio,
		"levels":     levels,
	}
	if adjusted != nil {
		payload["adjusted"] = map[string]any{
			"foreground": format.Render(adjusted.Foreground, format.Hex, opts),
			"background": format.Render(adjusted.Background, format.Hex, opts),
			"ratio":      adjusted.Ratio,
		}
	}

	out, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(out))
	return nil
}
