package render

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/lox/showdown/internal/showdown"
	"github.com/lox/showdown/poker"
)

// ColorMode controls colour output for the styled format.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a colour mode name.
func ParseColorMode(s string) (ColorMode, error) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, nil
	default:
		return "", fmt.Errorf("unknown color mode %q (want auto, always or never)", s)
	}
}

// Styles holds the lipgloss styles shared by the styled writer and the TUI.
type Styles struct {
	LineNo   lipgloss.Style
	Winner   lipgloss.Style
	Loser    lipgloss.Style
	RedSuit  lipgloss.Style
	Category lipgloss.Style
	Error    lipgloss.Style
	Divider  lipgloss.Style
}

// NewStyles builds styles bound to a renderer.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		LineNo:   r.NewStyle().Foreground(lipgloss.Color("8")).Width(5).Align(lipgloss.Right),
		Winner:   r.NewStyle().Bold(true).Foreground(lipgloss.Color("10")),
		Loser:    r.NewStyle().Faint(true),
		RedSuit:  r.NewStyle().Foreground(lipgloss.Color("9")),
		Category: r.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Error:    r.NewStyle().Foreground(lipgloss.Color("9")),
		Divider:  r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

// Hand renders a hand with suit glyphs; red suits are coloured when the hand
// is not dimmed.
func (s Styles) Hand(h poker.Hand, won bool) string {
	cards := h.Cards()
	parts := make([]string, len(cards))
	for i, c := range cards {
		suit := c.Suit.Symbol()
		if won && c.Suit.IsRed() {
			suit = s.RedSuit.Render(suit)
		}
		parts[i] = c.Rank.String() + suit
	}
	text := strings.Join(parts, " ")
	if won {
		return s.Winner.Render(text)
	}
	return s.Loser.Render(text)
}

// Result renders one ranked line without a trailing newline.
func (s Styles) Result(res showdown.Result) string {
	var lineNo string
	if res.Number > 0 {
		lineNo = s.LineNo.Render(fmt.Sprintf("%d", res.Number))
	}
	if res.Err != nil {
		return joinNonEmpty("  ", lineNo, res.Input, s.Error.Render(res.Err.Error()))
	}

	won := make(map[int]bool, len(res.Winners))
	for _, i := range res.Winners {
		won[i] = true
	}
	hands := make([]string, len(res.Hands))
	for i, h := range res.Hands {
		hands[i] = s.Hand(h, won[i])
	}
	label := res.Category.String()
	if res.IsTie() {
		label += fmt.Sprintf(" (%d-way tie)", len(res.Winners))
	}
	return joinNonEmpty("  ",
		lineNo,
		strings.Join(hands, s.Divider.Render(" | ")),
		s.Category.Render(label),
	)
}

// StyledWriter writes colourised results for terminals.
type StyledWriter struct {
	w      io.Writer
	styles Styles
}

// NewStyledWriter creates a styled writer. ColorAuto detects the terminal
// profile of w; the other modes force a profile.
func NewStyledWriter(w io.Writer, mode ColorMode) *StyledWriter {
	var opts []termenv.OutputOption
	switch mode {
	case ColorAlways:
		opts = append(opts, termenv.WithProfile(termenv.ANSI256))
	case ColorNever:
		opts = append(opts, termenv.WithProfile(termenv.Ascii))
	}
	return &StyledWriter{w: w, styles: NewStyles(lipgloss.NewRenderer(w, opts...))}
}

func (s *StyledWriter) Write(res showdown.Result) error {
	_, err := io.WriteString(s.w, s.styles.Result(res)+"\n")
	return err
}
