package tui

import (
	"fmt"
	"io"
)

// Progress prints one-line status updates for a long-running step.
type Progress struct {
	out  io.Writer
	mode Mode
}

func NewProgress(out io.Writer, mode Mode) *Progress {
	return &Progress{out: out, mode: mode}
}

func (p *Progress) Start(message string) {
	if p.mode == ModePlain {
		fmt.Fprintln(p.out, message)
		return
	}
	fmt.Fprintf(p.out, "%s %s\n", SymbolPending, message)
}

func (p *Progress) Success(message string) {
	p.finish(SymbolCheck, SuccessStyle.Render, message)
}

func (p *Progress) Fail(message string) {
	p.finish(SymbolCross, ErrorStyle.Render, message)
}

func (p *Progress) finish(symbol string, render func(...string) string, message string) {
	line := symbol + " " + message
	if p.mode == ModeStyled {
		line = render(line)
	}
	fmt.Fprintln(p.out, line)
}
