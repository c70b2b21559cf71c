package todo

import "strings"

// AllLabel is the label of the zero Filter.
const AllLabel = "All Todos"

// Filter restricts a collection to one status. The zero value matches everything.
type Filter struct {
	Status Status
}

// FilterFor returns a filter matching s.
func FilterFor(s Status) Filter { return Filter{Status: s} }

// FilterOptions lists the selectable filters in display order, "All Todos" first.
func FilterOptions() []Filter {
	out := []Filter{{}}
	for _, s := range Statuses() {
		out = append(out, Filter{Status: s})
	}
	return out
}

// All reports whether f is the empty selection.
func (f Filter) All() bool { return f.Status == "" }

func (f Filter) Match(it Item) bool {
	return f.All() || it.Status == f.Status
}

func (f Filter) Label() string {
	if f.All() {
		return AllLabel
	}
	return f.Status.String()
}

// Next returns the filter delta positions away in FilterOptions, wrapping.
func (f Filter) Next(delta int) Filter {
	opts := FilterOptions()
	i := 0
	for j, o := range opts {
		if o == f {
			i = j
			break
		}
	}
	n := len(opts)
	return opts[((i+delta)%n+n)%n]
}

// ParseFilter accepts "all", "" or anything ParseStatus accepts.
func ParseFilter(s string) (Filter, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all", strings.ToLower(AllLabel):
		return Filter{}, nil
	}
	st, err := ParseStatus(s)
	if err != nil {
		return Filter{}, err
	}
	return Filter{Status: st}, nil
}

// Apply returns the items matching f in their original order.
// The zero filter returns items unchanged.
func Apply(items []Item, f Filter) []Item {
	if f.All() {
		return items
	}
	out := make([]Item, 0, len(items))
	for _, it := range items {
		if f.Match(it) {
			out = append(out, it)
		}
	}
	return out
}
