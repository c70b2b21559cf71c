package board

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/idilsaglam/todoboard/internal/todo"
	"github.com/idilsaglam/todoboard/internal/ui"
)

// ------- Lip Gloss styles, one set per theme -------
type styles struct {
	glyphs ui.Theme

	title    lipgloss.Style
	success  lipgloss.Style
	pending  lipgloss.Style
	progress lipgloss.Style
	accent   lipgloss.Style
	muted    lipgloss.Style
	err      lipgloss.Style
	selected lipgloss.Style
	done     lipgloss.Style
	help     lipgloss.Style
	option   lipgloss.Style
	chosen   lipgloss.Style
	pane     lipgloss.Style
	inputBar lipgloss.Style
}

func newStyles(theme string) styles {
	glyphs := ui.ThemeNamed(theme)
	border := lipgloss.Color("8")
	s := styles{
		glyphs:   glyphs,
		title:    lipgloss.NewStyle().Bold(true),
		success:  lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		pending:  lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		progress: lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		accent:   lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		muted:    lipgloss.NewStyle().Faint(true),
		err:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		selected: lipgloss.NewStyle().Bold(true).Reverse(true),
		done:     lipgloss.NewStyle().Faint(true).Strikethrough(true),
		help:     lipgloss.NewStyle().Faint(true),
		option:   lipgloss.NewStyle().Padding(0, 1),
		chosen:   lipgloss.NewStyle().Padding(0, 1).Bold(true).Reverse(true),
	}
	switch glyphs.Name {
	case "neon":
		border = lipgloss.Color("13")
		s.title = s.title.Foreground(lipgloss.Color("13"))
		s.accent = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.progress = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
		s.pending = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	case "mono":
		plain := lipgloss.NewStyle()
		s.success, s.pending, s.progress, s.accent = plain, plain, plain, plain
		s.err = plain.Bold(true)
		border = lipgloss.Color("")
	}
	s.pane = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	s.inputBar = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(border).Padding(0, 1)
	return s
}

func (s styles) status(st todo.Status) lipgloss.Style {
	switch st {
	case todo.StatusInProgress:
		return s.progress
	case todo.StatusCompleted:
		return s.success
	default:
		return s.pending
	}
}

// itemText styles text by the item's status; completed items are struck through.
func (s styles) itemText(it todo.Item) string {
	if it.Done() {
		return s.done.Render(it.Text)
	}
	return it.Text
}
