package todo

import (
	"errors"
	"strings"
)

// ID identifies an item within a Store. IDs start at 1 and are never reused.
type ID uint64

// Item is the domain model for a todo entry.
// Completion is derived from Status; there is no separate flag.
type Item struct {
	ID     ID     `json:"id" yaml:"id"`
	Text   string `json:"text" yaml:"text"`
	Status Status `json:"status" yaml:"status"`
}

// Done reports whether the item is completed.
func (it Item) Done() bool { return it.Status == StatusCompleted }

// EmptyTextMessage is the user-facing message for ErrEmptyText.
const EmptyTextMessage = "Please enter a value"

// ErrEmptyText is returned by NormalizeText for blank input.
var ErrEmptyText = errors.New("empty text")

// NormalizeText trims s and rejects it when nothing is left.
// Every path that sets item text goes through here.
func NormalizeText(s string) (string, error) {
	t := strings.TrimSpace(s)
	if t == "" {
		return "", ErrEmptyText
	}
	return t, nil
}
