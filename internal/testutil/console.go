//go:build !windows
// +build !windows

// Package testutil drives interactive survey prompts from tests through a
// pseudo terminal.
package testutil

import (
	"testing"
	"time"

	"github.com/AlecAivazis/survey/v2/terminal"
	expect "github.com/Netflix/go-expect"
	pseudotty "github.com/creack/pty"
	"github.com/hinshun/vt10x"
)

const (
	expectTimeout    = 5 * time.Second
	procedureTimeout = 10 * time.Second
)

// ExpectConsole is the side of the virtual terminal a test script uses
type ExpectConsole interface {
	ExpectString(string)
	ExpectEOF()
	SendLine(string)
	Send(string)
}

type console struct {
	c *expect.Console
	t *testing.T
}

// ExpectString waits for s. A miss is logged, not fatal: the prompt under
// test reports the real failure once input runs out.
func (w *console) ExpectString(s string) {
	w.t.Helper()
	if _, err := w.c.ExpectString(s); err != nil {
		w.t.Logf("ExpectString(%q) error: %v", s, err)
	}
}

func (w *console) ExpectEOF() {
	w.t.Helper()
	if _, err := w.c.ExpectEOF(); err != nil {
		w.t.Logf("ExpectEOF error: %v", err)
	}
}

func (w *console) SendLine(s string) {
	w.t.Helper()
	if _, err := w.c.SendLine(s); err != nil {
		w.t.Fatalf("SendLine(%q) error: %v", s, err)
	}
}

func (w *console) Send(s string) {
	w.t.Helper()
	if _, err := w.c.Send(s); err != nil {
		w.t.Fatalf("Send(%q) error: %v", s, err)
	}
}

// RunPromptTest runs test against a vt10x terminal while procedure types
// into it, and returns the error test returned.
func RunPromptTest(t *testing.T, procedure func(ExpectConsole), test func(terminal.Stdio) error) error {
	t.Helper()

	ptm, pts, err := pseudotty.Open()
	if err != nil {
		t.Fatalf("failed to open pseudotty: %v", err)
	}

	term := vt10x.New(vt10x.WithWriter(pts))

	c, err := expect.NewConsole(
		expect.WithStdin(ptm),
		expect.WithStdout(term),
		expect.WithCloser(ptm, pts),
		expect.WithDefaultTimeout(expectTimeout),
	)
	if err != nil {
		t.Fatalf("failed to create console: %v", err)
	}
	defer c.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		procedure(&console{c: c, t: t})
	}()

	testErr := test(terminal.Stdio{In: c.Tty(), Out: c.Tty(), Err: c.Tty()})

	// Closing the tty lets the procedure see EOF
	c.Tty().Close()

	select {
	case <-done:
	case <-time.After(procedureTimeout):
		t.Fatal("test timed out waiting for procedure")
	}

	return testErr
}
