package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"deckflow/pkg/pipeline"
)

// generateOpts holds the command-line flags for the generate command.
type generateOpts struct {
	slides  int
	theme   string
	formats []string
	output  string
	width   int
	height  int
	noCache bool
	refresh bool
}

// generateCommand creates the generate command: topic in, normalized deck
// plus rendered diagram artifacts out.
func (c *CLI) generateCommand() *cobra.Command {
	var formatsStr string
	opts := generateOpts{
		slides: pipeline.DefaultSlideCount,
		output: ".",
	}

	cmd := &cobra.Command{
		Use:   "generate <topic>",
		Short: "Generate a deck for a topic and render its flow diagrams",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			topic := strings.Join(args, " ")
			return c.runGenerate(cmd.Context(), pipeline.Options{
				Topic:      topic,
				SlideCount: opts.slides,
				Theme:      opts.theme,
				Formats:    opts.formats,
				Width:      opts.width,
				Height:     opts.height,
				Refresh:    opts.refresh,
			}, &opts)
		},
	}

	cmd.Flags().IntVarP(&opts.slides, "slides", "n", opts.slides, "number of slides (3-15)")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "theme preset (see 'deckflow themes')")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, dot-svg, json (comma-separated)")
	cmd.Flags().StringVarP(&opts.output, "output", "o", opts.output, "output directory")
	cmd.Flags().IntVar(&opts.width, "width", 0, "diagram viewport width in pixels")
	cmd.Flags().IntVar(&opts.height, "height", 0, "diagram viewport height in pixels")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "bypass cached results")

	return cmd
}

func (c *CLI) runGenerate(ctx context.Context, pipeOpts pipeline.Options, opts *generateOpts) error {
	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()
	ctx = withLogger(ctx, c.Logger)
	pipeOpts.Logger = c.Logger

	spinner := newSpinnerWithContext(ctx, "Generating deck...")
	spinner.Start()
	result, err := executePipeline(ctx, runner, pipeOpts)
	spinner.Stop()
	if err != nil {
		return err
	}

	printSuccess("Generated %q", result.Spec.Title)
	printStats(result.Stats.SlideCount, result.Stats.FlowCount, result.CacheInfo.SpecHit && result.CacheInfo.RenderHit)
	if result.Synthetic {
		printWarning("source output was unusable; rendered the fallback deck")
	}
	if result.Stats.DroppedEdges > 0 {
		printWarning("dropped %d diagram edge(s) with unknown endpoints", result.Stats.DroppedEdges)
	}

	paths, err := writeArtifacts(opts.output, result)
	if err != nil {
		return err
	}
	for _, p := range paths {
		printFile(p)
	}
	return nil
}

// executePipeline runs the pipeline, logging the elapsed time on success.
// The logger comes from the context so callers decide verbosity once.
func executePipeline(ctx context.Context, runner *pipeline.Runner, opts pipeline.Options) (*pipeline.Result, error) {
	prog := newProgress(loggerFromContext(ctx))
	result, err := runner.Execute(ctx, opts)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Rendered %d artifact(s)", len(result.Artifacts)))
	return result, nil
}

// writeArtifacts writes all artifacts to dir, prefixed with a slug of the
// deck title plus a short run id so repeated runs do not clobber each other.
func writeArtifacts(dir string, result *pipeline.Result) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	base := slugify(result.Spec.Title)
	if base == "" {
		base = "deck"
	}
	base += "-" + uuid.NewString()[:8]

	paths := make([]string, 0, len(result.Artifacts))
	for name, data := range result.Artifacts {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s", base, name))
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

// slugify lowercases a title and collapses anything non-alphanumeric into
// single hyphens.
func slugify(s string) string {
	var b strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		default:
			if !lastHyphen {
				b.WriteByte('-')
				lastHyphen = true
			}
		}
	}
	return strings.Trim(b.String(), "-")
}
