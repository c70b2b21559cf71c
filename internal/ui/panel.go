package ui

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/idilsaglam/todoboard/internal/todo"
)

var ansiRegexp = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func stripANSI(s string) string { return ansiRegexp.ReplaceAllString(s, "") }

func visibleWidth(s string) int { return runewidth.StringWidth(stripANSI(s)) }

// maxTextWidth bounds item text in panels.
const maxTextWidth = 80

// ProgressBar renders a Unicode progress bar with percentage.
func ProgressBar(done, total, width int) string {
	if total <= 0 {
		total = 1
	}
	if width < 5 {
		width = 5
	}
	filled := int(float64(done) / float64(total) * float64(width))
	if filled > width {
		filled = width
	}
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	pct := int(float64(done) / float64(total) * 100)
	return fmt.Sprintf("%s %3d%%", bar, pct)
}

// Panel draws a framed box using the current theme.
func (r *Renderer) Panel(lines []string) {
	t := r.theme
	maxw := 0
	for _, ln := range lines {
		if w := visibleWidth(ln); w > maxw {
			maxw = w
		}
	}
	pad := func(s string) string {
		if vis := visibleWidth(s); vis < maxw {
			s += strings.Repeat(" ", maxw-vis)
		}
		return s
	}
	fmt.Fprintln(r.w, t.CornerTL+strings.Repeat(t.H, maxw+2)+t.CornerTR)
	for _, ln := range lines {
		fmt.Fprintln(r.w, t.V+" "+pad(ln)+" "+t.V)
	}
	fmt.Fprintln(r.w, t.CornerBL+strings.Repeat(t.H, maxw+2)+t.CornerBR)
}

// Header is the title line with live per-status counts.
func (r *Renderer) Header(title string, c todo.Counts) string {
	t := r.theme
	return fmt.Sprintf("%s  %s %d  %s %d  %s %d  %s %d",
		r.C(t.Title, title),
		r.C(t.Pending, t.SymPending), c.NotStarted,
		r.C(t.Progress, t.SymProgress), c.InProgress,
		r.C(t.Success, t.SymDone), c.Completed,
		r.C(t.Accent, "Total"), c.Total(),
	)
}

// StatusBadge renders a status label in its colour.
func (r *Renderer) StatusBadge(s todo.Status) string {
	return r.C(r.theme.StatusColor(s), "["+s.String()+"]")
}

// ItemLine renders one numbered item. Completed items use the done style.
func (r *Renderer) ItemLine(n int, it todo.Item) string {
	t := r.theme
	text := runewidth.Truncate(it.Text, maxTextWidth, "...")
	if it.Done() {
		text = r.C(t.Done, text)
	}
	return fmt.Sprintf("%s %s %s %s",
		r.C(dim, fmt.Sprintf("%2d.", n)),
		r.C(t.StatusColor(it.Status), t.Box(it.Status)),
		text,
		r.StatusBadge(it.Status))
}

// ItemLines numbers items from 1.
func (r *Renderer) ItemLines(items []todo.Item) []string {
	if len(items) == 0 {
		return []string{r.C(r.theme.Muted, "no items")}
	}
	out := make([]string, 0, len(items))
	for i, it := range items {
		out = append(out, r.ItemLine(i+1, it))
	}
	return out
}

// GroupLines renders items under one heading per status.
func (r *Renderer) GroupLines(items []todo.Item) []string {
	var lines []string
	for i, st := range todo.Statuses() {
		if i > 0 {
			lines = append(lines, "")
		}
		lines = append(lines, r.C(r.theme.Accent, st.String()))
		group := todo.Apply(items, todo.FilterFor(st))
		if len(group) == 0 {
			lines = append(lines, r.C(r.theme.Muted, "(none)"))
			continue
		}
		lines = append(lines, r.ItemLines(group)...)
	}
	return lines
}
