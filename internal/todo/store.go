// Package todo holds the todo collection and the mutations applied to it.
package todo

import (
	"io"
	"slices"
	"strings"

	"github.com/charmbracelet/log"
)

// Store owns an ordered collection of items.
//
// Every mutation derives a new slice instead of editing the current one, so a
// slice returned by Items is never changed behind the caller's back.
// A Store is not safe for concurrent use.
type Store struct {
	items    []Item
	nextID   ID
	revision uint64
	logger   *log.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for mutation events.
func WithLogger(l *log.Logger) Option {
	return func(s *Store) {
		if l != nil {
			s.logger = l
		}
	}
}

// New returns an empty store.
func New(opts ...Option) *Store {
	s := &Store{
		nextID: 1,
		logger: log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Counts tallies items per status.
type Counts struct {
	NotStarted int
	InProgress int
	Completed  int
}

func (c Counts) Total() int { return c.NotStarted + c.InProgress + c.Completed }

// Add appends a new Not Started item with the trimmed text.
// Callers validate text with NormalizeText first.
func (s *Store) Add(text string) Item {
	it := Item{
		ID:     s.nextID,
		Text:   strings.TrimSpace(text),
		Status: StatusNotStarted,
	}
	s.nextID++

	next := make([]Item, len(s.items), len(s.items)+1)
	copy(next, s.items)
	s.commit(append(next, it), "add", it.ID)
	return it
}

// Delete removes the item with id. It reports false when no item matched.
func (s *Store) Delete(id ID) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := make([]Item, 0, len(s.items)-1)
	next = append(next, s.items[:i]...)
	next = append(next, s.items[i+1:]...)
	s.commit(next, "delete", id)
	return true
}

// UpdateText replaces the text of id. Blank text is ignored.
func (s *Store) UpdateText(id ID, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	return s.update(id, "update_text", func(it *Item) { it.Text = text })
}

// UpdateStatus replaces the status of id. Unknown statuses are ignored.
func (s *Store) UpdateStatus(id ID, st Status) bool {
	if !st.Valid() {
		return false
	}
	return s.update(id, "update_status", func(it *Item) { it.Status = st })
}

// ToggleComplete flips an item between Completed and In Progress.
func (s *Store) ToggleComplete(id ID) bool {
	return s.update(id, "toggle", func(it *Item) {
		if it.Done() {
			it.Status = StatusInProgress
		} else {
			it.Status = StatusCompleted
		}
	})
}

// Items returns a copy of the collection in insertion order.
func (s *Store) Items() []Item { return slices.Clone(s.items) }

// Get looks up an item by id.
func (s *Store) Get(id ID) (Item, bool) {
	if i := s.index(id); i >= 0 {
		return s.items[i], true
	}
	return Item{}, false
}

func (s *Store) Len() int { return len(s.items) }

// Revision increases by one for every applied mutation.
func (s *Store) Revision() uint64 { return s.revision }

// Filter returns the items matching f in their original order.
func (s *Store) Filter(f Filter) []Item { return Apply(s.Items(), f) }

func (s *Store) Counts() Counts {
	var c Counts
	for _, it := range s.items {
		switch it.Status {
		case StatusNotStarted:
			c.NotStarted++
		case StatusInProgress:
			c.InProgress++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}

func (s *Store) index(id ID) int {
	return slices.IndexFunc(s.items, func(it Item) bool { return it.ID == id })
}

func (s *Store) update(id ID, op string, fn func(*Item)) bool {
	i := s.index(id)
	if i < 0 {
		return false
	}
	next := slices.Clone(s.items)
	fn(&next[i])
	s.commit(next, op, id)
	return true
}

func (s *Store) commit(next []Item, op string, id ID) {
	s.items = next
	s.revision++
	s.logger.Debug("todo mutation", "op", op, "id", id, "revision", s.revision, "len", len(next))
}
