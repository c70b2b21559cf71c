// Package board is the interactive todo board: the full list with its
// controls on the left, the status-filtered read-only list on the right.
package board

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoboard/internal/config"
	"github.com/idilsaglam/todoboard/internal/todo"
	"github.com/idilsaglam/todoboard/internal/ui"
)

const (
	defaultWidth  = 80
	defaultHeight = 24
	// header, progress bar and a blank line above the list
	headerLines = 3
	// input bar content plus its border
	inputBarLines = 4
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
)

// Options tune the board.
type Options struct {
	Theme       string
	Keys        config.KeyConfig
	CharLimit   int
	Placeholder string
	Logger      *log.Logger
}

// Model implements tea.Model for the board.
type Model struct {
	sess   *Session
	list   list.Model
	input  textinput.Model
	keys   keyMap
	styles styles
	logger *log.Logger

	mode     mode
	width    int
	height   int
	quitting bool
}

// New builds a board over store.
func New(store *todo.Store, opts Options) Model {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.CharLimit <= 0 {
		opts.CharLimit = config.DefaultCharLimit
	}
	if opts.Placeholder == "" {
		opts.Placeholder = config.DefaultPlaceholder
	}
	kc := opts.Keys
	if len(kc.Quit) == 0 {
		kc = config.Default().Keys
	}

	sess := NewSession(store)
	st := newStyles(opts.Theme)
	keys := newKeyMap(kc)

	l := list.New(toListItems(sess.Items()), itemDelegate{styles: st, sess: sess}, 0, 0)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetShowPagination(true)
	l.SetShowHelp(true)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	l.Styles.HelpStyle = st.help
	l.Styles.PaginationStyle = st.help
	l.SetStatusBarItemName("todo", "todos")
	// Single letters are board actions; keep paging on arrows and pgup/pgdown.
	l.KeyMap.NextPage = key.NewBinding(key.WithKeys("right", "pgdown"), key.WithHelp("→/pgdn", "next page"))
	l.KeyMap.PrevPage = key.NewBinding(key.WithKeys("left", "pgup"), key.WithHelp("←/pgup", "prev page"))
	l.AdditionalShortHelpKeys = keys.listHelp
	l.AdditionalFullHelpKeys = keys.fullHelp

	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = opts.CharLimit

	m := Model{
		sess:   sess,
		list:   l,
		input:  ti,
		keys:   keys,
		styles: st,
		logger: opts.Logger,
	}
	m.resize(defaultWidth, defaultHeight)
	return m
}

// Run starts the board in the alternate screen and returns the final model.
// Cancelling ctx stops the program with tea.ErrProgramKilled; the model
// returned alongside still holds the session.
func Run(ctx context.Context, m Model, opts ...tea.ProgramOption) (Model, error) {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}, opts...)
	final, err := tea.NewProgram(m, opts...).Run()
	if fm, ok := final.(Model); ok {
		m = fm
	}
	return m, err
}

// Session exposes the board's transient state.
func (m Model) Session() *Session { return m.sess }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m.quit()
		}
		switch m.mode {
		case modeAdd:
			return m.updateAdd(msg)
		case modeEdit:
			return m.updateEdit(msg)
		}
		return m.updateList(msg)
	}

	if m.mode != modeList {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateAdd(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.sess.SetDraft(m.input.Value())
		it, err := m.sess.Add()
		if err != nil {
			m.logger.Debug("add rejected", "err", err)
			return m, nil
		}
		m.logger.Info("todo added", "id", it.ID)
		m.leaveInput()
		cmd := m.sync()
		m.list.Select(m.sess.Store().Len() - 1)
		return m, cmd
	case key.Matches(msg, m.keys.Cancel):
		m.sess.SetDraft("")
		m.sess.ClearError()
		m.leaveInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateEdit(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Submit):
		m.sess.SetEditDraft(m.input.Value())
		id, _ := m.sess.Editing()
		if err := m.sess.CommitEdit(); err != nil {
			m.logger.Debug("edit rejected", "id", id, "err", err)
			return m, nil
		}
		m.logger.Info("todo updated", "id", id)
		m.leaveInput()
		return m, m.sync()
	case key.Matches(msg, m.keys.Cancel):
		m.sess.CancelEdit()
		m.leaveInput()
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.sess.SetEditDraft(m.input.Value())
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m.quit()

	case key.Matches(msg, m.keys.Add):
		m.mode = modeAdd
		m.input.SetValue(m.sess.Draft())
		m.input.CursorEnd()
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.NextFilter):
		m.sess.CycleFilter(1)
		return m, nil
	case key.Matches(msg, m.keys.PrevFilter):
		m.sess.CycleFilter(-1)
		return m, nil
	}

	it, ok := m.selected()
	if !ok {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, m.keys.Edit):
		if m.sess.BeginEdit(it.ID) {
			m.mode = modeEdit
			m.input.SetValue(m.sess.EditDraft())
			m.input.CursorEnd()
			return m, tea.Batch(m.input.Focus(), m.sync())
		}
		return m, nil

	case key.Matches(msg, m.keys.Delete):
		if m.sess.Delete(it.ID) {
			m.logger.Info("todo deleted", "id", it.ID)
		}
		return m, m.sync()

	case key.Matches(msg, m.keys.NextStatus):
		return m.setStatus(it, it.Status.Next(1))
	case key.Matches(msg, m.keys.PrevStatus):
		return m.setStatus(it, it.Status.Next(-1))
	case key.Matches(msg, m.keys.SetStatus):
		n := int(msg.String()[0] - '1')
		return m.setStatus(it, todo.Statuses()[n])

	case key.Matches(msg, m.keys.Toggle):
		m.sess.ToggleComplete(it.ID)
		return m, m.sync()
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) setStatus(it todo.Item, st todo.Status) (tea.Model, tea.Cmd) {
	if m.sess.SetStatus(it.ID, st) {
		m.logger.Info("status changed", "id", it.ID, "from", it.Status, "to", st)
	}
	return m, m.sync()
}

func (m Model) quit() (tea.Model, tea.Cmd) {
	m.quitting = true
	return m, tea.Quit
}

func (m Model) selected() (todo.Item, bool) {
	li, ok := m.list.SelectedItem().(listItem)
	if !ok {
		return todo.Item{}, false
	}
	return li.Item, true
}

// sync copies the store into the list, keeping the cursor in range.
func (m *Model) sync() tea.Cmd {
	items := m.sess.Items()
	cmd := m.list.SetItems(toListItems(items))
	if n := len(items); n > 0 && m.list.Index() >= n {
		m.list.Select(n - 1)
	}
	return cmd
}

func (m *Model) leaveInput() {
	m.mode = modeList
	m.input.SetValue("")
	m.input.Blur()
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	leftW, _ := m.paneWidths()
	listH := h - 2 - headerLines - inputBarLines
	if listH < 3 {
		listH = 3
	}
	m.list.SetSize(leftW-4, listH)
	m.input.Width = leftW - 10
}

func (m Model) paneWidths() (left, right int) {
	left = m.width * 3 / 5
	return left, m.width - left
}

func (m Model) View() string {
	if m.quitting {
		return ""
	}
	leftW, rightW := m.paneWidths()
	left := m.styles.pane.Width(leftW - 2).Render(m.listView(leftW - 4))
	right := m.styles.pane.Width(rightW - 2).Render(m.filterView(rightW-4, m.height-2))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) listView(width int) string {
	st := m.styles
	c := m.sess.Store().Counts()
	header := fmt.Sprintf("%s   %s %d  %s %d  %s %d  %s %d",
		st.title.Render("Todos"),
		st.pending.Render(st.glyphs.SymPending), c.NotStarted,
		st.progress.Render(st.glyphs.SymProgress), c.InProgress,
		st.success.Render(st.glyphs.SymDone), c.Completed,
		st.accent.Render("Total"), c.Total(),
	)
	barW := width - 6
	if barW > 28 {
		barW = 28
	}
	progress := st.muted.Render(ui.ProgressBar(c.Completed, c.Total(), barW))

	return strings.Join([]string{header, progress, "", m.list.View(), m.inputView()}, "\n")
}

func (m Model) inputView() string {
	st := m.styles
	var title string
	switch m.mode {
	case modeAdd:
		title = "Add todo"
	case modeEdit:
		title = "Edit todo"
	default:
		title = st.muted.Render("Add todo (" + m.keys.Add.Help().Key + ")")
	}
	if m.sess.ShowError() {
		title += " · " + st.err.Render(m.sess.ErrorText())
	}
	return st.inputBar.Render(title + "\n" + m.input.View())
}

func (m Model) filterView(width, height int) string {
	st := m.styles
	current := m.sess.Filter()

	opts := make([]string, 0, 4)
	for _, f := range todo.FilterOptions() {
		if f == current {
			opts = append(opts, st.chosen.Render(f.Label()))
			continue
		}
		opts = append(opts, st.option.Render(f.Label()))
	}
	selector := lipgloss.NewStyle().Width(width).Render(strings.Join(opts, ""))

	lines := []string{
		st.title.Render("Filter") + "  " + st.help.Render(m.keys.NextFilter.Help().Key+" to change"),
		selector,
		"",
	}

	items := m.sess.Filtered()
	if len(items) == 0 {
		return strings.Join(append(lines, st.muted.Render("No todos.")), "\n")
	}

	avail := height - lipgloss.Height(strings.Join(lines, "\n"))
	shown := items
	if avail > 0 && len(items) > avail {
		shown = items[:avail-1]
	}
	for _, it := range shown {
		box := st.status(it.Status).Render(st.glyphs.Box(it.Status))
		lines = append(lines, box+" "+st.itemText(it))
	}
	if len(shown) < len(items) {
		lines = append(lines, st.muted.Render(fmt.Sprintf("+%d more", len(items)-len(shown))))
	}
	return strings.Join(lines, "\n")
}
