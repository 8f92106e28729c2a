package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"deckflow/pkg/spec"
)

// normalizeCommand creates the normalize command: repair a deck spec file
// and print or write the normalized JSON.
func (c *CLI) normalizeCommand() *cobra.Command {
	var (
		slides int
		output string
		topic  string
	)

	cmd := &cobra.Command{
		Use:   "normalize <spec.json>",
		Short: "Repair a deck spec into a structurally valid one",
		Long: `Normalize reads a deck spec JSON file, repairs it (slide count, intro and
summary roles, bullet lists, flow diagram), and emits the normalized spec.
Unrepairable input is replaced by the fallback deck.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}

			raw, err := spec.Decode(data)
			if err != nil {
				c.Logger.Warn("spec file unreadable, emitting fallback deck", "err", err)
				raw = nil
			}

			n := slides
			if n == 0 {
				if raw != nil {
					n = len(raw.Slides)
				}
			}
			if topic == "" && raw != nil {
				topic = raw.Title
			}

			deck, synthetic := spec.Normalize(raw, topic, n)
			if synthetic {
				printWarning("input was unrepairable; emitting the fallback deck")
			}

			out, err := spec.Marshal(&deck)
			if err != nil {
				return err
			}
			if output == "" {
				fmt.Println(string(out))
				return nil
			}
			if err := os.WriteFile(output, out, 0o644); err != nil {
				return err
			}
			printSuccess("Normalized %d slides", len(deck.Slides))
			printFile(output)
			return nil
		},
	}

	cmd.Flags().IntVarP(&slides, "slides", "n", 0, "force slide count (default: keep input count)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: stdout)")
	cmd.Flags().StringVar(&topic, "topic", "", "topic used for the fallback deck")

	return cmd
}
