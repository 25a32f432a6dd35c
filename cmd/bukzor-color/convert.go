package main

import (
	"encoding/json"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/bukzor/bukzor-color/internal/config"
	"github.com/bukzor/bukzor-color/internal/format"
	"github.com/bukzor/bukzor-color/internal/pipeline"
)

var convertCmd = &cobra.Command{
	Use:   "convert [color]",
	Short: "Convert a color between formats",
	Args:  cobra.ExactArgs(1),
	RunE:  runConvert,
}

func init() {
	convertCmd.Flags().String("to", "hex", "Output format (hex, rgb, hsl, hsv)")
	convertCmd.Flags().String("from", "", "Input format hint (default: auto-detect)")
	convertCmd.Flags().Bool("json", false, "Output as JSON")
	convertCmd.Flags().Bool("upper", false, "Uppercase hex digits")
	convertCmd.Flags().String("alpha", "auto", "Alpha channel policy (auto, always, never)")
	convertCmd.Flags().Int("precision", 0, "Decimal places for HSL/HSV percentages")
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	input := args[0]

	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	opts := cfg.Options()
	if cmd.Flags().Changed("upper") {
		upper, _ := cmd.Flags().GetBool("upper")
		opts.Lowercase = !upper
	}
	if cmd.Flags().Changed("alpha") {
		policy, _ := cmd.Flags().GetString("alpha")
		opts.IncludeAlpha, err = format.ParseAlphaPolicy(policy)
		if err != nil {
			return err
		}
	}
	if cmd.Flags().Changed("precision") {
		opts.PercentPrecision, _ = cmd.Flags().GetInt("precision")
	}

	to := cfg.Target("hex")
	if cmd.Flags().Changed("to") {
		to, _ = cmd.Flags().GetString("to")
	}
	target, err := format.ParseFormat(to)
	if err != nil {
		return err
	}

	var hint *format.Format
	if from, _ := cmd.Flags().GetString("from"); from != "" {
		f, err := format.ParseFormat(from)
		if err != nil {
			return err
		}
		hint = &f
	}

	log.Debug("converting", "input", input, "to", target, "options", fmt.Sprintf("%+v", opts))

	result, err := pipeline.Run(input, pipeline.Options{
		From:   hint,
		To:     target,
		Render: opts,
	})
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		out, err := json.MarshalIndent(struct {
			Input        string `json:"input"`
			OutputFormat string `json:"output_format"`
			Result       string `json:"result"`
		}{
			Input:        input,
			OutputFormat: target.String(),
			Result:       result.Output,
		}, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(out))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.Output)
	return nil
}
