package board

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/idilsaglam/todoboard/internal/todo"
)

func texts(items []todo.Item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.Text)
	}
	return out
}

func TestSessionAdd(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("Buy milk")

	it, err := s.Add()
	if err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.Draft() != "" || s.ShowError() {
		t.Errorf("after add: draft %q, showError %v", s.Draft(), s.ShowError())
	}
	want := []todo.Item{{ID: it.ID, Text: "Buy milk", Status: todo.StatusNotStarted}}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}
}

func TestSessionAddBlankSetsError(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("   ")

	_, err := s.Add()
	if !errors.Is(err, todo.ErrEmptyText) {
		t.Fatalf("Add: got %v, want ErrEmptyText", err)
	}
	if !s.ShowError() || s.ErrorText() != "Please enter a value" {
		t.Errorf("error flag %v text %q", s.ShowError(), s.ErrorText())
	}
	if s.Store().Len() != 0 || s.Store().Revision() != 0 {
		t.Errorf("store mutated: len %d revision %d", s.Store().Len(), s.Store().Revision())
	}

	// a successful add clears the flag
	s.SetDraft("ok")
	if _, err := s.Add(); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if s.ShowError() {
		t.Error("error flag still set after valid add")
	}
}

func TestSessionEdit(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("first")
	it, _ := s.Add()
	s.SetStatus(it.ID, todo.StatusInProgress)

	if !s.BeginEdit(it.ID) {
		t.Fatal("BeginEdit reported no match")
	}
	if id, ok := s.Editing(); !ok || id != it.ID {
		t.Fatalf("Editing: got %d,%v", id, ok)
	}
	if s.EditDraft() != "first" {
		t.Errorf("EditDraft seeded with %q", s.EditDraft())
	}

	s.SetEditDraft("  second ")
	if err := s.CommitEdit(); err != nil {
		t.Fatalf("CommitEdit: %v", err)
	}
	if _, ok := s.Editing(); ok {
		t.Error("still editing after commit")
	}
	got, _ := s.Store().Get(it.ID)
	want := todo.Item{ID: it.ID, Text: "second", Status: todo.StatusInProgress}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("item (-want +got):\n%s", diff)
	}
}

func TestSessionEditBlankUsesSameError(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("keep me")
	it, _ := s.Add()

	s.BeginEdit(it.ID)
	s.SetEditDraft(" ")
	if err := s.CommitEdit(); !errors.Is(err, todo.ErrEmptyText) {
		t.Fatalf("CommitEdit: got %v, want ErrEmptyText", err)
	}
	if !s.ShowError() {
		t.Error("blank edit should raise the error flag")
	}
	if _, ok := s.Editing(); !ok {
		t.Error("blank edit should stay in edit mode")
	}
	got, _ := s.Store().Get(it.ID)
	if got.Text != "keep me" {
		t.Errorf("Text: got %q", got.Text)
	}

	s.CancelEdit()
	if s.ShowError() {
		t.Error("cancel should clear the error flag")
	}
}

func TestSessionBeginEditMissing(t *testing.T) {
	s := NewSession(todo.New())
	if s.BeginEdit(5) {
		t.Error("BeginEdit on missing id reported a match")
	}
	if err := s.CommitEdit(); err != nil {
		t.Errorf("CommitEdit outside edit mode: %v", err)
	}
}

func TestSessionDeleteEndsEdit(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("A")
	a, _ := s.Add()
	s.SetDraft("B")
	b, _ := s.Add()

	s.BeginEdit(a.ID)
	if !s.Delete(a.ID) {
		t.Fatal("Delete reported no match")
	}
	if _, ok := s.Editing(); ok {
		t.Error("edit should end when its item is deleted")
	}
	if diff := cmp.Diff([]string{"B"}, texts(s.Items())); diff != "" {
		t.Errorf("items (-want +got):\n%s", diff)
	}

	s.BeginEdit(b.ID)
	s.Delete(999)
	if _, ok := s.Editing(); !ok {
		t.Error("deleting another id should not end the edit")
	}
}

func TestSessionStatusSelectorDrivesDone(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("ship")
	it, _ := s.Add()

	s.SetStatus(it.ID, todo.StatusCompleted)
	got, _ := s.Store().Get(it.ID)
	if !got.Done() {
		t.Error("Completed via selector should read as done")
	}
}

func TestSessionFilter(t *testing.T) {
	s := NewSession(todo.New())
	for _, txt := range []string{"A", "B", "C"} {
		s.SetDraft(txt)
		s.Add()
	}
	items := s.Items()
	s.SetStatus(items[0].ID, todo.StatusInProgress)
	s.SetStatus(items[2].ID, todo.StatusInProgress)

	if !s.Filter().All() {
		t.Fatal("filter should start at All Todos")
	}
	if diff := cmp.Diff(s.Items(), s.Filtered()); diff != "" {
		t.Errorf("unfiltered view (-want +got):\n%s", diff)
	}

	s.SetFilter(todo.FilterFor(todo.StatusInProgress))
	if diff := cmp.Diff([]string{"A", "C"}, texts(s.Filtered())); diff != "" {
		t.Errorf("In Progress (-want +got):\n%s", diff)
	}

	s.CycleFilter(1)
	if s.Filter().Status != todo.StatusCompleted {
		t.Errorf("CycleFilter(1): got %q", s.Filter().Label())
	}
	s.CycleFilter(1)
	if !s.Filter().All() {
		t.Errorf("CycleFilter wraps to All: got %q", s.Filter().Label())
	}
}

func TestEndToEndFilterScenario(t *testing.T) {
	s := NewSession(todo.New())
	s.SetDraft("A")
	a, _ := s.Add()
	s.SetDraft("B")
	s.Add()

	s.SetStatus(a.ID, todo.StatusCompleted)
	s.SetFilter(todo.FilterFor(todo.StatusCompleted))

	if diff := cmp.Diff([]string{"A"}, texts(s.Filtered())); diff != "" {
		t.Errorf("filtered (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"A", "B"}, texts(s.Items())); diff != "" {
		t.Errorf("full list (-want +got):\n%s", diff)
	}
}
