package replay

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/idilsaglam/todoboard/internal/board"
	"github.com/idilsaglam/todoboard/internal/todo"
)

// Result is the session state after a script ran.
type Result struct {
	Steps    int
	Rejected int
	Items    []todo.Item
	Filter   todo.Filter
	Filtered []todo.Item
	Counts   todo.Counts
}

// RunOption configures Run.
type RunOption func(*runner)

// WithLogger logs each step at debug level.
func WithLogger(l *log.Logger) RunOption {
	return func(r *runner) { r.logger = l }
}

type runner struct {
	sess     *board.Session
	logger   *log.Logger
	rejected int
}

// Run applies every step to sess in order and stops at the first failing
// step. Rejected input (blank add or edit text) is not a failure; it raises
// the session's error flag the same way the board does, and a later
// expect_error step can assert on it.
func (s *Script) Run(sess *board.Session, opts ...RunOption) (Result, error) {
	r := &runner{sess: sess, logger: log.New(io.Discard)}
	for _, o := range opts {
		o(r)
	}
	for i, st := range s.Steps {
		if err := r.apply(st); err != nil {
			return r.result(i), &StepError{Step: i + 1, Line: st.line, Op: st.Op(), Err: err}
		}
		r.logger.Debug("replay step", "step", i+1, "op", st.Op(), "error", sess.ShowError())
	}
	return r.result(len(s.Steps)), nil
}

func (r *runner) result(steps int) Result {
	return Result{
		Steps:    steps,
		Rejected: r.rejected,
		Items:    r.sess.Items(),
		Filter:   r.sess.Filter(),
		Filtered: r.sess.Filtered(),
		Counts:   r.sess.Store().Counts(),
	}
}

func (r *runner) apply(st Step) error {
	sess := r.sess
	switch {
	case st.Add != nil:
		sess.SetDraft(*st.Add)
		if _, err := sess.Add(); err != nil {
			r.rejected++
		}

	case st.Edit != nil:
		it, err := r.at(st.Edit.Item)
		if err != nil {
			return err
		}
		sess.BeginEdit(it.ID)
		sess.SetEditDraft(st.Edit.Text)
		// On rejection the session stays in edit mode, as the board does;
		// the next edit step starts over.
		if err := sess.CommitEdit(); err != nil {
			r.rejected++
		}

	case st.Delete != nil:
		it, err := r.at(*st.Delete)
		if err != nil {
			return err
		}
		sess.Delete(it.ID)

	case st.Status != nil:
		it, err := r.at(st.Status.Item)
		if err != nil {
			return err
		}
		to, err := todo.ParseStatus(st.Status.To)
		if err != nil {
			return err
		}
		sess.SetStatus(it.ID, to)

	case st.Toggle != nil:
		it, err := r.at(*st.Toggle)
		if err != nil {
			return err
		}
		sess.ToggleComplete(it.ID)

	case st.Filter != nil:
		f, err := todo.ParseFilter(*st.Filter)
		if err != nil {
			return err
		}
		sess.SetFilter(f)

	case st.ExpectError != nil:
		if want, got := *st.ExpectError, sess.ShowError(); want != got {
			return fmt.Errorf("%w: error shown is %v, want %v", ErrExpectation, got, want)
		}
	}
	return nil
}

// at resolves a 1-based position in the full list.
func (r *runner) at(pos int) (todo.Item, error) {
	items := r.sess.Items()
	if pos < 1 || pos > len(items) {
		return todo.Item{}, fmt.Errorf("%w: %d (have %d)", ErrOutOfRange, pos, len(items))
	}
	return items[pos-1], nil
}
