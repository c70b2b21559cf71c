// Package replay drives a board session from a YAML script of user actions,
// without a terminal.
//
//	steps:
//	  - add: Buy milk
//	  - add: "   "
//	  - expect_error: true
//	  - status: {item: 1, to: completed}
//	  - filter: completed
package replay

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	ErrEmptyScript = errors.New("script has no steps")
	ErrInvalidStep = errors.New("step must name exactly one action")
	ErrOutOfRange  = errors.New("item position out of range")
	ErrExpectation = errors.New("expectation failed")
)

// Script is a parsed replay file.
type Script struct {
	Name  string
	Steps []Step
}

// Step is one user action. Exactly one field is set.
type Step struct {
	Add         *string     `yaml:"add"`
	Edit        *EditStep   `yaml:"edit"`
	Delete      *int        `yaml:"delete"`
	Status      *StatusStep `yaml:"status"`
	Toggle      *int        `yaml:"toggle"`
	Filter      *string     `yaml:"filter"`
	ExpectError *bool       `yaml:"expect_error"`

	line int
}

// EditStep replaces the text of the item at a 1-based position.
type EditStep struct {
	Item int    `yaml:"item"`
	Text string `yaml:"text"`
}

// StatusStep picks a status for the item at a 1-based position.
type StatusStep struct {
	Item int    `yaml:"item"`
	To   string `yaml:"to"`
}

// Op names the step's action.
func (s Step) Op() string {
	switch {
	case s.Add != nil:
		return "add"
	case s.Edit != nil:
		return "edit"
	case s.Delete != nil:
		return "delete"
	case s.Status != nil:
		return "status"
	case s.Toggle != nil:
		return "toggle"
	case s.Filter != nil:
		return "filter"
	case s.ExpectError != nil:
		return "expect_error"
	}
	return ""
}

func (s Step) actions() int {
	n := 0
	for _, set := range []bool{
		s.Add != nil, s.Edit != nil, s.Delete != nil, s.Status != nil,
		s.Toggle != nil, s.Filter != nil, s.ExpectError != nil,
	} {
		if set {
			n++
		}
	}
	return n
}

// Line is the step's line in the source file, or 0 when unknown.
func (s Step) Line() int { return s.line }

// StepError reports a failing step. Step is 1-based.
type StepError struct {
	Step int
	Line int
	Op   string
	Err  error
}

func (e *StepError) Error() string {
	where := fmt.Sprintf("step %d", e.Step)
	if e.Line > 0 {
		where += fmt.Sprintf(" (line %d)", e.Line)
	}
	if e.Op != "" {
		where += " " + e.Op
	}
	return where + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error { return e.Err }

type rawScript struct {
	Steps []yaml.Node `yaml:"steps"`
}

// Parse reads a script. Unknown keys are rejected.
func Parse(r io.Reader) (*Script, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var raw rawScript
	if err := dec.Decode(&raw); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyScript
		}
		return nil, fmt.Errorf("parse script: %w", err)
	}
	if len(raw.Steps) == 0 {
		return nil, ErrEmptyScript
	}

	s := &Script{Steps: make([]Step, 0, len(raw.Steps))}
	for i, node := range raw.Steps {
		var st Step
		if err := decodeStrict(&node, &st); err != nil {
			return nil, &StepError{Step: i + 1, Line: node.Line, Err: err}
		}
		st.line = node.Line
		if st.actions() != 1 {
			return nil, &StepError{Step: i + 1, Line: node.Line, Err: ErrInvalidStep}
		}
		s.Steps = append(s.Steps, st)
	}
	return s, nil
}

// decodeStrict decodes a node with unknown keys rejected. yaml.Node.Decode
// does not honour KnownFields, so the node is re-encoded first.
func decodeStrict(node *yaml.Node, v any) error {
	b, err := yaml.Marshal(node)
	if err != nil {
		return err
	}
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// Load parses the script at path.
func Load(path string) (*Script, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open script: %w", err)
	}
	defer f.Close()
	s, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.Name = path
	return s, nil
}
