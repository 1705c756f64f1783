package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/KilimcininKorOglu/ostat/internal/btree"
)

// newTestShell builds a shell over a fresh tree writing into buf.
func newTestShell(t *testing.T, degree int) (*shell, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true

	tree, err := btree.New(degree)
	if err != nil {
		t.Fatal(err)
	}
	buf := &bytes.Buffer{}
	return &shell{tree: tree, out: buf}, buf
}

func TestShellInsertSelectRank(t *testing.T) {
	sh, buf := newTestShell(t, 2)

	for _, line := range []string{"insert 30", "insert 10", "insert 20"} {
		if quit := sh.dispatch(line); quit {
			t.Fatalf("%q ended the session", line)
		}
	}

	buf.Reset()
	sh.dispatch("select 2")
	if got := strings.TrimSpace(buf.String()); got != "20" {
		t.Errorf("select 2 printed %q, want \"20\"", got)
	}

	buf.Reset()
	sh.dispatch("rank 30")
	if got := strings.TrimSpace(buf.String()); got != "3" {
		t.Errorf("rank 30 printed %q, want \"3\"", got)
	}

	buf.Reset()
	sh.dispatch("search 10")
	if got := strings.TrimSpace(buf.String()); got != "true" {
		t.Errorf("search 10 printed %q, want \"true\"", got)
	}
}

func TestShellRangeAndPrimes(t *testing.T) {
	sh, buf := newTestShell(t, 2)
	for _, k := range []string{"2", "3", "4", "5", "6", "7"} {
		sh.dispatch("insert " + k)
	}

	buf.Reset()
	sh.dispatch("range 3 6")
	if got := strings.TrimSpace(buf.String()); got != "3 4 5 6" {
		t.Errorf("range 3 6 printed %q", got)
	}

	buf.Reset()
	sh.dispatch("primes 2 7")
	if got := strings.TrimSpace(buf.String()); got != "2 3 5 7" {
		t.Errorf("primes 2 7 printed %q", got)
	}

	buf.Reset()
	sh.dispatch("range 10 20")
	if got := strings.TrimSpace(buf.String()); got != "none" {
		t.Errorf("empty range printed %q, want \"none\"", got)
	}
}

func TestShellDeleteAndSize(t *testing.T) {
	sh, buf := newTestShell(t, 2)
	sh.dispatch("insert 1")
	sh.dispatch("insert 2")
	sh.dispatch("delete 1")

	buf.Reset()
	sh.dispatch("size")
	if got := strings.TrimSpace(buf.String()); got != "1" {
		t.Errorf("size printed %q, want \"1\"", got)
	}
}

func TestShellExit(t *testing.T) {
	sh, _ := newTestShell(t, 2)
	if !sh.dispatch("exit") {
		t.Error("exit should end the session")
	}
	if !sh.dispatch("quit") {
		t.Error("quit should end the session")
	}
	if sh.dispatch("size") {
		t.Error("size should not end the session")
	}
}

func TestShellBadInput(t *testing.T) {
	sh, buf := newTestShell(t, 2)

	sh.dispatch("insert nope")
	if !strings.Contains(buf.String(), "not a valid key") {
		t.Errorf("bad key printed %q", buf.String())
	}

	buf.Reset()
	sh.dispatch("frobnicate")
	if !strings.Contains(buf.String(), "unknown command") {
		t.Errorf("unknown command printed %q", buf.String())
	}

	buf.Reset()
	sh.dispatch("insert 0")
	if !strings.Contains(buf.String(), "positive") {
		t.Errorf("insert 0 printed %q", buf.String())
	}
}
