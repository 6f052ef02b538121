package screen

import (
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vtparse/vtparse/internal/vtparse"
)

func render(s *Screen, input string) {
	p := vtparse.NewParser(s, 0)
	p.ParseFragment([]byte(input))
}

func TestPrintAndNewlineAdvanceCursor(t *testing.T) {
	s := New(10, 3, nil)
	render(s, "hi\nyo")

	want := "hi\nyo\n"
	if got := s.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestCursorPositioningCSI_H(t *testing.T) {
	s := New(10, 3, nil)
	render(s, "\x1b[2;3Hx")

	want := "\n  x\n"
	if got := s.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestEraseDisplayModeTwoClearsEverything(t *testing.T) {
	s := New(5, 2, nil)
	render(s, "abcde\x1b[2J")

	if got := s.Text(); got != "\n" {
		t.Fatalf("Text() = %q, want blank grid", got)
	}
}

func TestEraseLineFromCursor(t *testing.T) {
	s := New(5, 1, nil)
	render(s, "abcde\x1b[1;3H\x1b[K")

	want := "ab"
	if got := s.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestOSCSetsTitle(t *testing.T) {
	s := New(5, 1, nil)
	render(s, "\x1b]0;my title\x07")

	if got := s.Title(); got != "my title" {
		t.Fatalf("Title() = %q, want %q", got, "my title")
	}
}

func TestDCSPassthroughDoesNotPanic(t *testing.T) {
	s := New(5, 1, nil)
	render(s, "\x1bP1$qm\x1b\\ok")

	want := "ok"
	if got := s.Text(); got != want {
		t.Fatalf("Text() = %q, want %q", got, want)
	}
}

func TestResizeRebuildsTextGrid(t *testing.T) {
	s := New(3, 2, nil)
	render(s, "ab")
	s.Resize(2, 2)

	if got := s.Text(); got != "\n" {
		t.Fatalf("Text() after Resize = %q, want blank grid", got)
	}
}

// TestPrintTextWidthMatchesANSIStringWidth cross-checks the cell width the
// fast path advances the cursor by against charmbracelet/x/ansi's own
// measurement, so a wide-rune regression in either the parser's fast path
// or the screen's cursor advance shows up here.
func TestPrintTextWidthMatchesANSIStringWidth(t *testing.T) {
	const text = "a中b"
	s := New(20, 1, nil)
	render(s, text)

	x, _ := s.CursorPosition()
	want := ansi.StringWidth(text)
	if x != want {
		t.Fatalf("cursor advanced %d cells, want %d (ansi.StringWidth)", x, want)
	}
}
