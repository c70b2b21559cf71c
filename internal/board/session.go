package board

import (
	"github.com/idilsaglam/todoboard/internal/todo"
)

// Session is the board's transient state for one run: the add draft, the
// item being edited, the validation flag and the filter selection. It owns
// no items; every mutation goes through the store.
type Session struct {
	store *todo.Store

	draft     string
	editing   bool
	editingID todo.ID
	editDraft string
	showError bool
	filter    todo.Filter
}

// NewSession wraps store. The filter starts at "All Todos".
func NewSession(store *todo.Store) *Session {
	return &Session{store: store}
}

func (s *Session) Store() *todo.Store { return s.store }

func (s *Session) Draft() string        { return s.draft }
func (s *Session) SetDraft(text string) { s.draft = text }

// Add validates the draft and appends it. On ErrEmptyText nothing changes
// except the error flag.
func (s *Session) Add() (todo.Item, error) {
	text, err := todo.NormalizeText(s.draft)
	if err != nil {
		s.showError = true
		return todo.Item{}, err
	}
	it := s.store.Add(text)
	s.draft = ""
	s.showError = false
	return it, nil
}

// BeginEdit puts id into edit mode, seeding the edit draft with its text.
func (s *Session) BeginEdit(id todo.ID) bool {
	it, ok := s.store.Get(id)
	if !ok {
		return false
	}
	s.editing = true
	s.editingID = id
	s.editDraft = it.Text
	s.showError = false
	return true
}

// Editing returns the id in edit mode, if any.
func (s *Session) Editing() (todo.ID, bool) { return s.editingID, s.editing }

func (s *Session) EditDraft() string        { return s.editDraft }
func (s *Session) SetEditDraft(text string) { s.editDraft = text }

// CommitEdit applies the edit draft with the same rule as Add: blank text is
// rejected, the error flag is raised and edit mode stays on.
func (s *Session) CommitEdit() error {
	if !s.editing {
		return nil
	}
	text, err := todo.NormalizeText(s.editDraft)
	if err != nil {
		s.showError = true
		return err
	}
	s.store.UpdateText(s.editingID, text)
	s.CancelEdit()
	return nil
}

// CancelEdit leaves edit mode without touching the store.
func (s *Session) CancelEdit() {
	s.editing = false
	s.editingID = 0
	s.editDraft = ""
	s.showError = false
}

// Delete removes id. Deleting the item under edit also ends the edit.
func (s *Session) Delete(id todo.ID) bool {
	if s.editing && s.editingID == id {
		s.CancelEdit()
	}
	return s.store.Delete(id)
}

func (s *Session) SetStatus(id todo.ID, st todo.Status) bool {
	return s.store.UpdateStatus(id, st)
}

func (s *Session) ToggleComplete(id todo.ID) bool {
	return s.store.ToggleComplete(id)
}

func (s *Session) ShowError() bool { return s.showError }

// ClearError hides the validation message.
func (s *Session) ClearError() { s.showError = false }

// ErrorText is the message shown while ShowError is true.
func (s *Session) ErrorText() string {
	if !s.showError {
		return ""
	}
	return todo.EmptyTextMessage
}

func (s *Session) Filter() todo.Filter     { return s.filter }
func (s *Session) SetFilter(f todo.Filter) { s.filter = f }

// CycleFilter moves the filter selection by delta, wrapping.
func (s *Session) CycleFilter(delta int) { s.filter = s.filter.Next(delta) }

// Items is the full collection.
func (s *Session) Items() []todo.Item { return s.store.Items() }

// Filtered is the read-only view for the current filter.
func (s *Session) Filtered() []todo.Item { return s.store.Filter(s.filter) }
