package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show effective configuration",
	Long:  "Shows the configuration after merging defaults, the YAML config file, GLYPHGEN_* environment variables, and flags.",
	RunE:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	color := resolveColor(flagColor, flagNoColor)
	bold, reset := "", ""
	if color {
		bold, reset = colorBold, colorReset
	}

	fmt.Printf("%s⚡ glyphgen config%s\n", bold, reset)
	fmt.Printf("  Input:    %s\n", cfg.Input)
	fmt.Printf("  Output:   %s\n", cfg.Output)
	fmt.Printf("  Class:    %s\n", cfg.ClassName)
	fmt.Printf("  Family:   %s\n", cfg.FontFamily)
	fmt.Printf("  Helpers:  %v\n", cfg.Helpers)
	return nil
}

func init() {
	addConfigFlags(configCmd)
}
