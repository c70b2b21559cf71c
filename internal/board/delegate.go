package board

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/todoboard/internal/todo"
)

type listItem struct {
	todo.Item
}

func (i listItem) FilterValue() string { return i.Text }

func toListItems(items []todo.Item) []list.Item {
	out := make([]list.Item, 0, len(items))
	for _, it := range items {
		out = append(out, listItem{Item: it})
	}
	return out
}

// itemDelegate renders one item per line: cursor, box, text and status badge.
type itemDelegate struct {
	styles styles
	sess   *Session
}

func (d itemDelegate) Height() int                               { return 1 }
func (d itemDelegate) Spacing() int                              { return 0 }
func (d itemDelegate) Update(msg tea.Msg, m *list.Model) tea.Cmd { return nil }

func (d itemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	it, ok := item.(listItem)
	if !ok {
		return
	}
	st := d.styles
	box := st.status(it.Status).Render(st.glyphs.Box(it.Status))

	// The badge doubles as the item's status selector.
	badge := st.status(it.Status).Render("[" + it.Status.String() + "]")
	prefix := "  "
	if index == m.Index() {
		prefix = st.selected.Render("> ")
		badge = st.status(it.Status).Render("‹ " + it.Status.String() + " ›")
	}

	text := st.itemText(it.Item)
	if id, editing := d.sess.Editing(); editing && id == it.ID {
		text = st.accent.Render("✎ ") + st.muted.Render(it.Text)
	}
	fmt.Fprintf(w, "%s%s %s %s", prefix, box, text, badge)
}
