package todo

import (
	"errors"
	"fmt"
	"strings"
)

// Status is the progress label of an item.
type Status string

const (
	StatusNotStarted Status = "Not Started"
	StatusInProgress Status = "In Progress"
	StatusCompleted  Status = "Completed"
)

// ErrUnknownStatus is returned when a status label cannot be parsed.
var ErrUnknownStatus = errors.New("unknown status")

// Statuses lists the selectable statuses in display order.
func Statuses() []Status {
	return []Status{StatusNotStarted, StatusInProgress, StatusCompleted}
}

// Valid reports whether s is one of the three known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusNotStarted, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

func (s Status) String() string { return string(s) }

// Next returns the status after s, wrapping around. delta may be negative.
func (s Status) Next(delta int) Status {
	all := Statuses()
	i := 0
	for j, st := range all {
		if st == s {
			i = j
			break
		}
	}
	n := len(all)
	return all[((i+delta)%n+n)%n]
}

// ParseStatus accepts the display label and its kebab, snake and compact
// spellings, case-insensitively.
func ParseStatus(s string) (Status, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	key = strings.NewReplacer("-", "", "_", "", " ", "").Replace(key)
	switch key {
	case "notstarted", "todo":
		return StatusNotStarted, nil
	case "inprogress", "doing":
		return StatusInProgress, nil
	case "completed", "done":
		return StatusCompleted, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

func (s Status) MarshalText() ([]byte, error) {
	if !s.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrUnknownStatus, string(s))
	}
	return []byte(s), nil
}

func (s *Status) UnmarshalText(b []byte) error {
	st, err := ParseStatus(string(b))
	if err != nil {
		return err
	}
	*s = st
	return nil
}
