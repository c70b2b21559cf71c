package ui

import (
	"strings"

	"github.com/idilsaglam/todoboard/internal/todo"
)

// Theme bundles palette + symbols + box borders.
type Theme struct {
	Name                                       string
	Title, Muted, Accent, Success, Error       string
	Pending, Progress, Done                    string
	BoxUnchecked, BoxProgress, BoxChecked      string
	CornerTL, CornerTR, CornerBL, CornerBR     string
	H, V                                       string
	SymDone, SymCross, SymPending, SymProgress string
}

// ThemeNames lists the built-in themes.
func ThemeNames() []string { return []string{"classic", "neon", "mono"} }

// ThemeNamed returns a built-in theme; unknown names fall back to classic.
func ThemeNamed(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: "\033[95m", // bright magenta
			Muted: fgGray, Accent: "\033[96m",
			Success: fgGreen, Error: fgRed, Pending: "\033[93m",
			Progress: "\033[96m", Done: fgGray + strike,
			BoxUnchecked: "◻", BoxProgress: "◩", BoxChecked: "◼",
			CornerTL: "╭", CornerTR: "╮", CornerBL: "╰", CornerBR: "╯",
			H: "─", V: "│",
			SymDone: "✔", SymCross: "✖", SymPending: "•", SymProgress: "»",
		}
	case "mono":
		return Theme{
			Name:         "mono",
			BoxUnchecked: "[ ]", BoxProgress: "[~]", BoxChecked: "[x]",
			CornerTL: "+", CornerTR: "+", CornerBL: "+", CornerBR: "+",
			H: "-", V: "|",
			SymDone: "x", SymCross: "!", SymPending: "-", SymProgress: ">",
		}
	default:
		return Theme{
			Name:  "classic",
			Title: bold, Muted: fgGray, Accent: fgBlue,
			Success: fgGreen, Error: fgRed, Pending: fgYellow,
			Progress: fgBlue, Done: dim + strike,
			BoxUnchecked: "☐", BoxProgress: "◐", BoxChecked: "☑",
			CornerTL: "┌", CornerTR: "┐", CornerBL: "└", CornerBR: "┘",
			H: "─", V: "│",
			SymDone: "✔", SymCross: "✖", SymPending: "•", SymProgress: "»",
		}
	}
}

// Box returns the checkbox glyph for a status.
func (t Theme) Box(s todo.Status) string {
	switch s {
	case todo.StatusInProgress:
		return t.BoxProgress
	case todo.StatusCompleted:
		return t.BoxChecked
	default:
		return t.BoxUnchecked
	}
}

// StatusColor returns the palette entry used for a status badge.
func (t Theme) StatusColor(s todo.Status) string {
	switch s {
	case todo.StatusInProgress:
		return t.Progress
	case todo.StatusCompleted:
		return t.Success
	default:
		return t.Pending
	}
}
