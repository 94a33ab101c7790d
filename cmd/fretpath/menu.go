package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/polynizer/fretpath/voicing"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Choose a song, a chord count and the algorithms interactively",
	Args:  cobra.NoArgs,
	RunE:  menuExecution,
}

func init() {
	menuCmd.Flags().String("format", "text", "output format (text|json)")
}

// errMenuAborted is returned when the user leaves the menu without a choice.
var errMenuAborted = errors.New("menu aborted")

func menuExecution(cmd *cobra.Command, _ []string) error {
	format, err := readFormat(cmd)
	if err != nil {
		return err
	}
	a, err := newApp(cmd)
	if err != nil {
		return err
	}
	counts, err := a.cfg.Solver.Counts()
	if err != nil {
		return err
	}
	names := make([]string, len(a.cfg.Songs))
	for i, s := range a.cfg.Songs {
		names[i] = s.Name
	}
	if len(names) == 0 {
		return errors.New("no songs configured")
	}

	prog := tea.NewProgram(newMenuModel(names, counts),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(cmd.ErrOrStderr()),
	)
	final, err := prog.Run()
	if err != nil {
		return err
	}
	m := final.(*menuModel)
	if !m.done {
		return errMenuAborted
	}

	algos := []voicing.Algorithm{voicing.AlgoDynamic, voicing.AlgoExhaustive}
	if m.greedy {
		algos = append(algos, voicing.AlgoGreedy)
	}
	return a.run(cmd.Context(), runRequest{
		song:   m.songs[m.song],
		count:  m.counts[m.count],
		algos:  algos,
		format: format,
		verify: true,
	})
}

// menuStage is the question currently shown.
type menuStage int

const (
	stageSong menuStage = iota
	stageCount
	stageGreedy
)

type menuKeys struct {
	up     key.Binding
	down   key.Binding
	choose key.Binding
	yes    key.Binding
	no     key.Binding
	back   key.Binding
	quit   key.Binding
}

func newMenuKeys() menuKeys {
	return menuKeys{
		up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		choose: key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "choose")),
		yes:    key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "yes")),
		no:     key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "no")),
		back:   key.NewBinding(key.WithKeys("esc", "backspace"), key.WithHelp("esc", "back")),
		quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// menuModel walks song → chord count → greedy y/n.
type menuModel struct {
	keys   menuKeys
	songs  []string
	counts []int
	stage  menuStage
	cursor int

	song   int
	count  int
	greedy bool
	done   bool
}

func newMenuModel(songs []string, counts []int) *menuModel {
	return &menuModel{keys: newMenuKeys(), songs: songs, counts: counts}
}

func (m *menuModel) Init() tea.Cmd { return nil }

func (m *menuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.quit):
		return m, tea.Quit
	case key.Matches(kmsg, m.keys.back):
		if m.stage > stageSong {
			m.stage--
			m.cursor = m.selected()
		}
		return m, nil
	}

	if m.stage == stageGreedy {
		switch {
		case key.Matches(kmsg, m.keys.yes):
			return m.finish(true)
		case key.Matches(kmsg, m.keys.no):
			return m.finish(false)
		}
		return m, nil
	}

	switch {
	case key.Matches(kmsg, m.keys.up):
		if m.cursor > 0 {
			m.cursor--
		}
	case key.Matches(kmsg, m.keys.down):
		if m.cursor < m.options()-1 {
			m.cursor++
		}
	case key.Matches(kmsg, m.keys.choose):
		if m.stage == stageSong {
			m.song = m.cursor
		} else {
			m.count = m.cursor
		}
		m.stage++
		m.cursor = m.selected()
	}
	return m, nil
}

func (m *menuModel) finish(greedy bool) (tea.Model, tea.Cmd) {
	m.greedy = greedy
	m.done = true
	return m, tea.Quit
}

// options returns the number of entries of the current list.
func (m *menuModel) options() int {
	if m.stage == stageSong {
		return len(m.songs)
	}
	return len(m.counts)
}

// selected returns the remembered choice of the current stage.
func (m *menuModel) selected() int {
	switch m.stage {
	case stageSong:
		return m.song
	case stageCount:
		return m.count
	default:
		return 0
	}
}

var (
	menuTitle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	menuCursor = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	menuHelp   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

func (m *menuModel) View() string {
	if m.done {
		return ""
	}
	var b strings.Builder

	switch m.stage {
	case stageSong:
		b.WriteString(menuTitle.Render("Select a song"))
		b.WriteString("\n\n")
		for i, s := range m.songs {
			m.writeItem(&b, i, fmt.Sprintf("%d. %s", i+1, s))
		}
	case stageCount:
		b.WriteString(menuTitle.Render("Number of chords for " + m.songs[m.song]))
		b.WriteString("\n\n")
		for i, n := range m.counts {
			label := fmt.Sprintf("%d chords", n)
			if n == 0 {
				label = "all chords"
			}
			m.writeItem(&b, i, label)
		}
	case stageGreedy:
		b.WriteString(menuTitle.Render("Run the greedy algorithm too? (y/n)"))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(menuHelp.Render(m.help()))
	b.WriteString("\n")
	return b.String()
}

func (m *menuModel) writeItem(b *strings.Builder, i int, label string) {
	if i == m.cursor {
		b.WriteString(menuCursor.Render("> " + label))
	} else {
		b.WriteString("  " + label)
	}
	b.WriteString("\n")
}

func (m *menuModel) help() string {
	var bs []key.Binding
	if m.stage == stageGreedy {
		bs = []key.Binding{m.keys.yes, m.keys.no, m.keys.back, m.keys.quit}
	} else {
		bs = []key.Binding{m.keys.up, m.keys.down, m.keys.choose, m.keys.back, m.keys.quit}
	}
	parts := make([]string, len(bs))
	for i, kb := range bs {
		h := kb.Help()
		parts[i] = h.Key + " " + h.Desc
	}
	return strings.Join(parts, " • ")
}
