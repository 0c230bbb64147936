package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/glyphgen/internal/app"
)

var flagDryRun bool

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the Dart icon constants file",
	Long:  "Parses the glyph manifest and writes the generated Dart source. Parent directories are created; an existing output file is overwritten.",
	RunE:  runGenerate,
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	if flagDryRun {
		res, err := app.Render(cfg)
		if err != nil {
			return err
		}
		if res.MissingInput {
			return fmt.Errorf("manifest not found: %s", cfg.Input)
		}
		if res.Empty {
			return nil
		}
		fmt.Print(res.Source)
		return nil
	}

	res, err := app.Run(cfg)
	if err != nil {
		return err
	}
	if res.MissingInput {
		return fmt.Errorf("manifest not found: %s", cfg.Input)
	}
	if res.Empty {
		// Warned already; an empty manifest is not a CLI failure.
		return nil
	}

	fmt.Print(formatGenerated(res, resolveColor(flagColor, flagNoColor)))
	return nil
}

func init() {
	addConfigFlags(generateCmd)
	generateCmd.Flags().BoolVar(&flagDryRun, "dry-run", false, "Print the generated source to stdout, write nothing")
}
