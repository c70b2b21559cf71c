package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/mattn/go-isatty"
)

const (
	reset  = "\033[0m"
	bold   = "\033[1m"
	dim    = "\033[2m"
	strike = "\033[9m"

	fgGray   = "\033[90m"
	fgGreen  = "\033[32m"
	fgYellow = "\033[33m"
	fgBlue   = "\033[34m"
	fgRed    = "\033[31m"
)

// ColorMode decides whether escapes are emitted.
type ColorMode int

const (
	ColorAuto ColorMode = iota
	ColorAlways
	ColorNever
)

// Renderer writes themed output to a writer.
type Renderer struct {
	w     io.Writer
	errW  io.Writer
	theme Theme
	color bool
}

// NewRenderer builds a renderer for w. In ColorAuto mode colour is used only
// when w is a terminal and NO_COLOR is unset. The mono theme never colours.
func NewRenderer(w io.Writer, theme string, mode ColorMode) *Renderer {
	t := ThemeNamed(theme)
	color := false
	switch mode {
	case ColorAlways:
		color = true
	case ColorAuto:
		color = isTTY(w) && os.Getenv("NO_COLOR") == ""
	}
	if t.Name == "mono" {
		color = false
	}
	return &Renderer{w: w, errW: os.Stderr, theme: t, color: color}
}

func (r *Renderer) Theme() Theme { return r.theme }

// C wraps s in the given escape sequence when colour is on.
func (r *Renderer) C(color, s string) string {
	if !r.color || color == "" {
		return s
	}
	return color + s + reset
}

func (r *Renderer) OK(msg string) {
	fmt.Fprintln(r.w, r.C(r.theme.Success, r.theme.SymDone+" "+msg))
}

// SetErrWriter redirects Fail, which writes to stderr by default.
func (r *Renderer) SetErrWriter(w io.Writer) { r.errW = w }

// Fail writes to stderr regardless of the renderer's writer.
func (r *Renderer) Fail(msg string) {
	fmt.Fprintln(r.errW, r.C(r.theme.Error, r.theme.SymCross+" "+msg))
}

func isTTY(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
