package layer

import (
	"testing"

	"github.com/shimomut/ttk/event"
	"github.com/shimomut/ttk/grid"
)

type fakeRenderer struct {
	cells       map[[2]int]rune
	caretRow    int
	caretCol    int
	caretCalls  int
}

func newFakeRenderer() *fakeRenderer {
	return &fakeRenderer{cells: make(map[[2]int]rune)}
}

func (f *fakeRenderer) PutChar(row, col int, ch rune, pair uint16, attrs grid.Attr) {
	f.cells[[2]int{row, col}] = ch
}
func (f *fakeRenderer) FillRect(row, col, h, w int, pair uint16) {}
func (f *fakeRenderer) SetCaretPosition(row, col int) {
	f.caretRow, f.caretCol = row, col
	f.caretCalls++
}

func TestTextWidgetInsertAndCaret(t *testing.T) {
	w := NewTextWidget(Rect{Row: 2, Col: 3, H: 1, W: 20}, 0)
	w.Focus()

	w.HandleEvent(event.CharEvent{Char: 'h'})
	w.HandleEvent(event.CharEvent{Char: 'i'})
	if w.Text() != "hi" {
		t.Fatalf("Text() = %q, want %q", w.Text(), "hi")
	}

	r := newFakeRenderer()
	w.Draw(r)
	// Caret restoration (spec §8 property 9): after edits and a
	// draw (the widget's own refresh path), the caret rests at the
	// widget's origin plus the cursor's column offset.
	if r.caretRow != 2 || r.caretCol != 3+2 {
		t.Fatalf("caret = (%d,%d), want (2,5)", r.caretRow, r.caretCol)
	}
	if r.cells[[2]int{2, 3}] != 'h' || r.cells[[2]int{2, 4}] != 'i' {
		t.Fatalf("cells not drawn correctly: %+v", r.cells)
	}
}

func TestTextWidgetBlurSkipsCaretRequest(t *testing.T) {
	w := NewTextWidget(Rect{Row: 0, Col: 0, H: 1, W: 10}, 0)
	w.HandleEvent(event.CharEvent{Char: 'x'})
	r := newFakeRenderer()
	w.Draw(r)
	if r.caretCalls != 0 {
		t.Fatalf("unfocused widget must not request the caret, got %d calls", r.caretCalls)
	}
}

func TestTextWidgetNavigationAndEditing(t *testing.T) {
	w := NewTextWidget(Rect{Row: 0, Col: 0, H: 1, W: 10}, 0)
	for _, ch := range "abc" {
		w.HandleEvent(event.CharEvent{Char: ch})
	}
	// cursor now at end ("abc|")
	w.HandleEvent(event.KeyEvent{Key: event.Of(event.KeyLeft)})
	w.HandleEvent(event.KeyEvent{Key: event.Of(event.KeyBackspace)})
	if w.Text() != "ac" {
		t.Fatalf("Text() = %q, want %q", w.Text(), "ac")
	}

	w.HandleEvent(event.KeyEvent{Key: event.Of(event.KeyHome)})
	w.HandleEvent(event.KeyEvent{Key: event.Of(event.KeyDelete)})
	if w.Text() != "c" {
		t.Fatalf("Text() = %q, want %q", w.Text(), "c")
	}

	w.HandleEvent(event.KeyEvent{Key: event.Of(event.KeyEnd)})
	w.HandleEvent(event.CharEvent{Char: 'd'})
	if w.Text() != "cd" {
		t.Fatalf("Text() = %q, want %q", w.Text(), "cd")
	}
}

// TestTextWidgetWideGlyphCursorOffset exercises the wide-character cursor
// advance decision recorded in DESIGN.md: each CharEvent advances the
// cursor by one rune, but the caret's screen column advances by the
// glyph's display width.
func TestTextWidgetWideGlyphCursorOffset(t *testing.T) {
	w := NewTextWidget(Rect{Row: 0, Col: 0, H: 1, W: 10}, 0)
	w.Focus()
	w.HandleEvent(event.CharEvent{Char: 'あ'}) // East Asian wide, width 2
	w.HandleEvent(event.CharEvent{Char: 'x'})  // width 1

	r := newFakeRenderer()
	w.Draw(r)
	if r.caretCol != 3 {
		t.Fatalf("caretCol = %d, want 3 (2 + 1)", r.caretCol)
	}
}

func TestTextWidgetNotConsumedForUnknownEvent(t *testing.T) {
	w := NewTextWidget(Rect{Row: 0, Col: 0, H: 1, W: 10}, 0)
	if w.HandleEvent(event.SystemEvent{Kind: event.SystemResize}) {
		t.Fatalf("TextWidget should not consume SystemEvent")
	}
}
