package cli

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"deckflow/pkg/theme"
)

// themesCommand creates the themes command: list presets, load extra ones
// from a TOML file, or pick one interactively.
func (c *CLI) themesCommand() *cobra.Command {
	var (
		pick    bool
		presets string
	)

	cmd := &cobra.Command{
		Use:   "themes",
		Short: "List available theme presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			if presets != "" {
				n, err := theme.LoadFile(presets)
				if err != nil {
					return err
				}
				printInfo("Loaded %d theme(s) from %s", n, presets)
			}

			if pick {
				return runThemePicker()
			}

			for _, name := range theme.Names() {
				printTheme(theme.Get(name))
				printNewline()
			}
			return nil
		},
	}

	cmd.Flags().BoolVarP(&pick, "pick", "p", false, "pick a theme interactively")
	cmd.Flags().StringVar(&presets, "presets", "", "load additional themes from a TOML file")

	return cmd
}

// printTheme prints one theme line with color swatches.
func printTheme(t theme.Theme) {
	swatch := func(hex string) string {
		return lipgloss.NewStyle().Background(lipgloss.Color(hex)).Render("  ")
	}
	line := StyleHighlight.Render(t.Name)
	if t.Name == theme.DefaultName {
		line += StyleDim.Render(" (default)")
	}
	fmt.Println(line)
	fmt.Println("  " +
		swatch(t.Background.Hex()) + swatch(t.Accent.Hex()) +
		swatch(t.DiagramNodeFill.Hex()) + swatch(t.DiagramNodeLine.Hex()) +
		"  " + StyleDim.Render(t.FontTitle+" / "+t.FontBody))
}

// themePickerModel is the bubbletea model for interactive theme selection.
type themePickerModel struct {
	names  []string
	cursor int
	chosen string
}

func (m themePickerModel) Init() tea.Cmd { return nil }

func (m themePickerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
			}
		case "down", "j":
			if m.cursor < len(m.names)-1 {
				m.cursor++
			}
		case "enter":
			m.chosen = m.names[m.cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m themePickerModel) View() string {
	s := StyleTitle.Render("Pick a theme") + "\n\n"
	for i, name := range m.names {
		cursor := "  "
		line := name
		if i == m.cursor {
			cursor = StyleHighlight.Render("> ")
			line = StyleHighlight.Render(name)
		}
		s += cursor + line + "\n"
	}
	s += "\n" + StyleDim.Render("enter: select · q: quit") + "\n"
	return s
}

func runThemePicker() error {
	m := themePickerModel{names: theme.Names()}
	final, err := tea.NewProgram(m).Run()
	if err != nil {
		return err
	}
	picked, _ := final.(themePickerModel)
	if picked.chosen == "" {
		return nil
	}
	printTheme(theme.Get(picked.chosen))
	printNextStep("Use it", fmt.Sprintf("deckflow generate \"My Topic\" --theme %q", picked.chosen))
	return nil
}
