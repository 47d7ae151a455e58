// Package demo runs a fixed sequence of console examples.
package demo

import (
	"fmt"
	"io"

	"github.com/saint0x/letsflow/pkg/log"
)

// Separator is written between consecutive examples.
const Separator = "\n--- Next Example ---\n\n"

// Example is one labeled demonstration.
type Example struct {
	Title string
	Run   func(w io.Writer) error
}

// Program is an ordered list of examples written to one stream.
type Program struct {
	Name     string
	Examples []Example
	Logger   *log.Logger
}

// Run writes every example to w in order, separated by Separator.
// It stops at the first write error.
func (p *Program) Run(w io.Writer) error {
	for i, ex := range p.Examples {
		if i > 0 {
			if _, err := io.WriteString(w, Separator); err != nil {
				return fmt.Errorf("%s: separator before %q: %w", p.Name, ex.Title, err)
			}
		}
		if p.Logger != nil {
			p.Logger.Debug("%s: example %d/%d: %s", p.Name, i+1, len(p.Examples), ex.Title)
		}
		if err := ex.Run(w); err != nil {
			return fmt.Errorf("%s: %s: %w", p.Name, ex.Title, err)
		}
	}
	return nil
}

// Writer remembers the first write error and drops everything after it.
type Writer struct {
	w   io.Writer
	err error
}

// NewWriter wraps w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

func (pw *Writer) Print(a ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprint(pw.w, a...)
}

func (pw *Writer) Println(a ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintln(pw.w, a...)
}

func (pw *Writer) Printf(format string, a ...interface{}) {
	if pw.err != nil {
		return
	}
	_, pw.err = fmt.Fprintf(pw.w, format, a...)
}

// Err returns the first write error, if any.
func (pw *Writer) Err() error {
	return pw.err
}
