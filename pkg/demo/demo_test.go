package demo

import (
	"bytes"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saint0x/letsflow/pkg/log"
)

var errFull = errors.New("disk full")

// failingWriter accepts limit bytes, then fails
type failingWriter struct {
	limit int
	buf   bytes.Buffer
}

func (f *failingWriter) Write(p []byte) (int, error) {
	if f.buf.Len()+len(p) > f.limit {
		return 0, errFull
	}
	return f.buf.Write(p)
}

func line(s string) Example {
	return Example{Title: s, Run: func(w io.Writer) error {
		pw := NewWriter(w)
		pw.Println(s)
		return pw.Err()
	}}
}

func TestRunSeparators(t *testing.T) {
	var logs bytes.Buffer
	p := &Program{
		Name:     "test",
		Examples: []Example{line("a"), line("b"), line("c")},
		Logger:   log.NewWriter(&logs, true),
	}

	var out bytes.Buffer
	require.NoError(t, p.Run(&out))
	assert.Equal(t, "a\n"+Separator+"b\n"+Separator+"c\n", out.String())
	assert.Contains(t, logs.String(), "test: example 3/3: c")
}

func TestRunSingleAndEmpty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, (&Program{Examples: []Example{line("only")}}).Run(&out))
	assert.Equal(t, "only\n", out.String())

	out.Reset()
	require.NoError(t, (&Program{}).Run(&out))
	assert.Empty(t, out.String())
}

func TestRunStopsOnWriteError(t *testing.T) {
	calls := 0
	counting := Example{Title: "counted", Run: func(w io.Writer) error {
		calls++
		return nil
	}}
	p := &Program{Name: "broken", Examples: []Example{line("first"), line("second"), counting}}

	fw := &failingWriter{limit: len("first\n") + 3}
	err := p.Run(fw)
	require.Error(t, err)
	assert.ErrorIs(t, err, errFull)
	assert.Equal(t, 0, calls)
	assert.Equal(t, "first\n", fw.buf.String())
}

func TestWriterIsSticky(t *testing.T) {
	fw := &failingWriter{limit: 2}
	pw := NewWriter(fw)
	pw.Print("ok")
	pw.Printf("%s", "fails")
	pw.Println("dropped")
	assert.ErrorIs(t, pw.Err(), errFull)
	assert.Equal(t, "ok", fw.buf.String())
}
