package todo

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/google/go-cmp/cmp"
)

func TestAddCreatesNotStartedItem(t *testing.T) {
	s := New()
	it := s.Add("Buy milk")

	items := s.Items()
	if len(items) != 1 {
		t.Fatalf("Items: got %d, want 1", len(items))
	}
	want := Item{ID: it.ID, Text: "Buy milk", Status: StatusNotStarted}
	if diff := cmp.Diff(want, items[0]); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}
	if items[0].Done() {
		t.Error("new item should not be done")
	}
}

func TestAddTrimsText(t *testing.T) {
	s := New()
	it := s.Add("  walk the dog \t")
	if it.Text != "walk the dog" {
		t.Errorf("Text: got %q", it.Text)
	}
}

func TestIDsAreDistinct(t *testing.T) {
	s := New()
	seen := map[ID]bool{}
	for i := 0; i < 500; i++ {
		it := s.Add("task")
		if seen[it.ID] {
			t.Fatalf("duplicate id %d after %d adds", it.ID, i)
		}
		seen[it.ID] = true
		if i%3 == 0 {
			s.Delete(it.ID)
		}
	}
	// deleted ids are not handed out again
	next := s.Add("after deletes")
	if seen[next.ID] {
		t.Errorf("id %d reused", next.ID)
	}
}

func TestDeletePreservesOrder(t *testing.T) {
	s := New()
	a := s.Add("A")
	b := s.Add("B")
	c := s.Add("C")

	if !s.Delete(b.ID) {
		t.Fatal("Delete(b) reported no match")
	}
	want := []Item{a, c}
	if diff := cmp.Diff(want, s.Items()); diff != "" {
		t.Errorf("after delete (-want +got):\n%s", diff)
	}
}

func TestDeleteAbsentIsNoop(t *testing.T) {
	s := New()
	s.Add("A")
	s.Add("B")
	before := s.Items()
	rev := s.Revision()

	if s.Delete(999) {
		t.Error("Delete(999) reported a match")
	}
	if diff := cmp.Diff(before, s.Items()); diff != "" {
		t.Errorf("collection changed (-before +after):\n%s", diff)
	}
	if s.Revision() != rev {
		t.Errorf("Revision: got %d, want %d", s.Revision(), rev)
	}
}

func TestUpdateTextTouchesOnlyText(t *testing.T) {
	s := New()
	it := s.Add("draft")
	s.UpdateStatus(it.ID, StatusInProgress)

	if !s.UpdateText(it.ID, "  final ") {
		t.Fatal("UpdateText reported no match")
	}
	got, _ := s.Get(it.ID)
	want := Item{ID: it.ID, Text: "final", Status: StatusInProgress}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}
}

func TestUpdateTextIgnoresBlankAndMissing(t *testing.T) {
	s := New()
	it := s.Add("keep")
	rev := s.Revision()

	if s.UpdateText(it.ID, "   ") {
		t.Error("blank text should be ignored")
	}
	if s.UpdateText(42, "x") {
		t.Error("missing id should be ignored")
	}
	got, _ := s.Get(it.ID)
	if got.Text != "keep" {
		t.Errorf("Text: got %q, want keep", got.Text)
	}
	if s.Revision() != rev {
		t.Errorf("Revision moved from %d to %d", rev, s.Revision())
	}
}

func TestUpdateStatusDrivesDone(t *testing.T) {
	s := New()
	it := s.Add("ship")

	if !s.UpdateStatus(it.ID, StatusCompleted) {
		t.Fatal("UpdateStatus reported no match")
	}
	got, _ := s.Get(it.ID)
	if got.Status != StatusCompleted || !got.Done() {
		t.Errorf("got status %q done=%v, want Completed done=true", got.Status, got.Done())
	}
	if got.Text != "ship" {
		t.Errorf("Text changed to %q", got.Text)
	}

	if s.UpdateStatus(it.ID, Status("Blocked")) {
		t.Error("unknown status should be ignored")
	}
}

func TestToggleComplete(t *testing.T) {
	s := New()
	it := s.Add("toggle me")

	s.ToggleComplete(it.ID)
	got, _ := s.Get(it.ID)
	if got.Status != StatusCompleted {
		t.Fatalf("first toggle: got %q, want Completed", got.Status)
	}
	s.ToggleComplete(it.ID)
	got, _ = s.Get(it.ID)
	if got.Status != StatusInProgress {
		t.Fatalf("second toggle: got %q, want In Progress", got.Status)
	}
	if s.ToggleComplete(1234) {
		t.Error("toggle of missing id reported a match")
	}
}

func TestItemsSnapshotIsStable(t *testing.T) {
	s := New()
	a := s.Add("A")
	snap := s.Items()

	s.UpdateText(a.ID, "changed")
	s.Add("B")

	if len(snap) != 1 || snap[0].Text != "A" {
		t.Errorf("snapshot mutated: %+v", snap)
	}
}

func TestFilter(t *testing.T) {
	s := New()
	a := s.Add("A")
	b := s.Add("B")
	c := s.Add("C")
	d := s.Add("D")
	s.UpdateStatus(a.ID, StatusInProgress)
	s.UpdateStatus(c.ID, StatusInProgress)
	s.UpdateStatus(d.ID, StatusCompleted)

	a, _ = s.Get(a.ID)
	c, _ = s.Get(c.ID)

	if diff := cmp.Diff([]Item{a, c}, s.Filter(FilterFor(StatusInProgress))); diff != "" {
		t.Errorf("In Progress filter (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(s.Items(), s.Filter(Filter{})); diff != "" {
		t.Errorf("zero filter (-want +got):\n%s", diff)
	}
	if got := s.Filter(FilterFor(StatusNotStarted)); len(got) != 1 || got[0].ID != b.ID {
		t.Errorf("Not Started filter: got %+v", got)
	}
}

func TestCounts(t *testing.T) {
	s := New()
	a := s.Add("A")
	s.Add("B")
	c := s.Add("C")
	s.UpdateStatus(a.ID, StatusCompleted)
	s.UpdateStatus(c.ID, StatusInProgress)

	want := Counts{NotStarted: 1, InProgress: 1, Completed: 1}
	if diff := cmp.Diff(want, s.Counts()); diff != "" {
		t.Errorf("Counts (-want +got):\n%s", diff)
	}
	if s.Counts().Total() != s.Len() {
		t.Errorf("Total %d != Len %d", s.Counts().Total(), s.Len())
	}
}

func TestMutationsAreLogged(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})
	s := New(WithLogger(logger))

	it := s.Add("logged")
	s.Delete(it.ID)

	out := buf.String()
	for _, want := range []string{"op=add", "op=delete", "revision=2"} {
		if !strings.Contains(out, want) {
			t.Errorf("log output missing %q:\n%s", want, out)
		}
	}
}
