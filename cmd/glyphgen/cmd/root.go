package cmd

import (
	"github.com/spf13/cobra"

	"github.com/corey/glyphgen/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "glyphgen",
	Short: "glyphgen — icon font constant generator",
	Long:  "Reads an icon-font glyph manifest (JSON) and generates a Dart source file of IconData constants for a Flutter icon widget.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		app.SetupLogging(flagVerbose)
	},
}

var (
	flagVerbose bool
	flagColor   string
	flagNoColor bool

	flagConfigPath string
	flagInput      string
	flagOutput     string
	flagClass      string
	flagFamily     string
	flagHelpers    bool
)

// addConfigFlags registers the configuration override flags shared by
// generate, inspect, and config.
func addConfigFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&flagConfigPath, "config", "", "YAML config file (default "+app.ConfigFile+" if present)")
	f.StringVarP(&flagInput, "input", "i", "", "Manifest JSON path")
	f.StringVarP(&flagOutput, "output", "o", "", "Generated Dart file path")
	f.StringVar(&flagClass, "class", "", "Container class name")
	f.StringVar(&flagFamily, "family", "", "Font family name")
	f.BoolVar(&flagHelpers, "helpers", false, "Emit the all-icons list and byName lookup")
}

// resolveConfig merges defaults, config file, environment, and any
// explicitly set flags — flags win.
func resolveConfig(cmd *cobra.Command) (app.Config, error) {
	cfg, err := app.LoadConfig(flagConfigPath)
	if err != nil {
		return cfg, err
	}
	f := cmd.Flags()
	if f.Changed("input") {
		cfg.Input = flagInput
	}
	if f.Changed("output") {
		cfg.Output = flagOutput
	}
	if f.Changed("class") {
		cfg.ClassName = flagClass
	}
	if f.Changed("family") {
		cfg.FontFamily = flagFamily
	}
	if f.Changed("helpers") {
		cfg.Helpers = flagHelpers
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Verbose logging")
	pf.StringVar(&flagColor, "color", "auto", "Color output: auto, always, never")
	pf.BoolVar(&flagNoColor, "no-color", false, "Suppress color output")

	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(inspectCmd)
	rootCmd.AddCommand(configCmd)
}
