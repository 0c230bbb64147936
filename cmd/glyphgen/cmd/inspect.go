package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/corey/glyphgen/internal/app"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Show the resolved identifier table",
	Long:  "Parses the glyph manifest and prints identifier, code point, and original label per icon. Writes nothing.",
	RunE:  runInspect,
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

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

	fmt.Print(formatIconTable(res.Icons, resolveColor(flagColor, flagNoColor)))
	return nil
}

func init() {
	addConfigFlags(inspectCmd)
}
