// Package tui is an interactive line ranker built on Bubble Tea.
package tui

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/lox/showdown/internal/render"
	"github.com/lox/showdown/internal/showdown"
)

// DealCommand is the input that asks for a random line instead of ranking text.
const DealCommand = "deal"

var (
	promptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// Model is the Bubble Tea model for interactive ranking.
type Model struct {
	logger *log.Logger
	parse  showdown.ParseFunc
	dealer *showdown.Dealer
	styles render.Styles

	history viewport.Model
	input   textinput.Model

	entries []string
	results []showdown.Result

	quitting bool
}

// NewModel creates the model. dealer may be nil to disable the deal command.
func NewModel(logger *log.Logger, parse showdown.ParseFunc, dealer *showdown.Dealer) *Model {
	vp := viewport.New(80, 10)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Hands separated by | (e.g. 2C 3C 6C 9C AC|KD AS 2C 6D QS), or \"deal\""
	ti.Focus()
	ti.CharLimit = 1024
	ti.Width = 80
	ti.PromptStyle = promptStyle
	ti.Prompt = "> "

	return &Model{
		logger:  logger.WithPrefix("tui"),
		parse:   parse,
		dealer:  dealer,
		styles:  render.NewStyles(lipgloss.DefaultRenderer()),
		history: vp,
		input:   ti,
	}
}

// Init initializes the TUI model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the TUI
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.history.Width = msg.Width
		m.history.Height = max(msg.Height-3, 1)
		m.input.Width = max(msg.Width-4, 10)
		m.refresh()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Quit
		case "enter":
			m.Submit(m.input.Value())
			m.input.SetValue("")
			return m, nil
		case "pgup", "pgdown":
			var cmd tea.Cmd
			m.history, cmd = m.history.Update(msg)
			return m, cmd
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// Submit ranks one line of input and appends it to the history.
func (m *Model) Submit(line string) {
	line = strings.TrimSpace(line)
	if line == "" {
		return
	}
	if line == DealCommand {
		if m.dealer == nil {
			m.addEntry(m.styles.Error.Render("dealing is disabled"))
			return
		}
		dealt, err := m.dealer.Line(1 + len(m.results)%4)
		if err != nil {
			m.addEntry(m.styles.Error.Render(err.Error()))
			return
		}
		line = dealt
	}

	res := showdown.Evaluate(line, m.parse)
	res.Number = len(m.results) + 1
	m.results = append(m.results, res)
	if res.Err != nil {
		m.logger.Debug("Rejected line", "line", res.Number, "error", res.Err)
	}
	m.addEntry(m.styles.Result(res))
}

// Results returns everything ranked so far.
func (m *Model) Results() []showdown.Result {
	return m.results
}

func (m *Model) addEntry(entry string) {
	m.entries = append(m.entries, entry)
	m.refresh()
}

func (m *Model) refresh() {
	m.history.SetContent(strings.Join(m.entries, "\n"))
	if m.history.Height > 0 && m.history.Width > 0 {
		m.history.GotoBottom()
	}
}

// View renders the TUI
func (m *Model) View() string {
	if m.quitting {
		return ""
	}
	help := helpStyle.Render(fmt.Sprintf("%d ranked · enter to rank · pgup/pgdown to scroll · esc to quit", len(m.results)))
	return m.history.View() + "\n" + m.input.View() + "\n" + help
}

// Run starts the program and blocks until the user quits or ctx ends.
func Run(ctx context.Context, m *Model) error {
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := p.Run()
	if err != nil && errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
