package cli

import (
	"github.com/spf13/cobra"

	"deckflow/pkg/pipeline"
)

// renderCommand creates the render command: draw the flow diagrams of a
// deck spec JSON file without generating anything.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{output: "."}

	cmd := &cobra.Command{
		Use:   "render <spec.json>",
		Short: "Render the flow diagrams of a deck spec file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			return c.runGenerate(cmd.Context(), pipeline.Options{
				SpecFile: args[0],
				Theme:    opts.theme,
				Formats:  opts.formats,
				Width:    opts.width,
				Height:   opts.height,
				Refresh:  opts.refresh,
			}, &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme preset (see 'deckflow themes')")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, dot-svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().IntVar(&opts.width, "width", 0, "diagram viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "diagram viewport height in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")

	return cmd
}
