package replay

import (
	"fmt"

	"github.com/idilsaglam/todoboard/internal/ui"
)

// Render prints the full list and the filtered list as two panels. With
// group set the full list is grouped by status.
func (res Result) Render(r *ui.Renderer, group bool) {
	t := r.Theme()

	full := []string{
		r.Header("Todos", res.Counts),
		r.C(t.Muted, ui.ProgressBar(res.Counts.Completed, res.Counts.Total(), 20)),
		"",
	}
	if group {
		full = append(full, r.GroupLines(res.Items)...)
	} else {
		full = append(full, r.ItemLines(res.Items)...)
	}
	r.Panel(full)

	filtered := []string{
		r.C(t.Title, "Filter: ") + res.Filter.Label(),
		r.C(t.Muted, fmt.Sprintf("%d of %d", len(res.Filtered), len(res.Items))),
		"",
	}
	filtered = append(filtered, r.ItemLines(res.Filtered)...)
	r.Panel(filtered)
}
