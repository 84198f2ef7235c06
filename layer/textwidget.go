package layer

import (
	"github.com/mattn/go-runewidth"
	"github.com/shimomut/ttk/event"
)

// TextWidget is the documented single-line text-editing layer pattern from
// spec §4.5: a layer is free to implement this contract itself, but TTK
// also ships one concrete implementation (used by the core's own tests)
// since no particular widget is mandated by the spec.
type TextWidget struct {
	bounds Rect
	buf    []rune
	cursor int // index into buf, not a column
	pair   uint16
	dirty  bool
	focused bool
}

// NewTextWidget creates an empty single-line text widget occupying bounds,
// drawn with the given color pair.
func NewTextWidget(bounds Rect, pair uint16) *TextWidget {
	return &TextWidget{bounds: bounds, pair: pair, dirty: true}
}

func (w *TextWidget) Bounds() Rect { return w.bounds }
func (w *TextWidget) Dirty() bool  { return w.dirty }

// Text returns the widget's current content.
func (w *TextWidget) Text() string { return string(w.buf) }

// Focus marks the widget focused, which per spec §4.5 requires the
// application to re-issue set_caret_position — Draw does this the next
// time it runs.
func (w *TextWidget) Focus() {
	w.focused = true
	w.dirty = true
}

// Blur clears focus without clearing content.
func (w *TextWidget) Blur() {
	w.focused = false
}

// HandleEvent implements the text-widget contract: KeyEvents navigate and
// edit, CharEvents insert at the cursor regardless of glyph width.
func (w *TextWidget) HandleEvent(ev event.Event) bool {
	switch e := ev.(type) {
	case event.KeyEvent:
		return w.handleKey(e)
	case event.CharEvent:
		w.insert(e.Char)
		return true
	default:
		return false
	}
}

func (w *TextWidget) handleKey(e event.KeyEvent) bool {
	if e.Key.Kind != event.KindSpecial {
		return false
	}
	switch e.Key.Special {
	case event.KeyLeft:
		if w.cursor > 0 {
			w.cursor--
			w.dirty = true
		}
	case event.KeyRight:
		if w.cursor < len(w.buf) {
			w.cursor++
			w.dirty = true
		}
	case event.KeyHome:
		w.cursor = 0
		w.dirty = true
	case event.KeyEnd:
		w.cursor = len(w.buf)
		w.dirty = true
	case event.KeyBackspace:
		if w.cursor > 0 {
			w.buf = append(w.buf[:w.cursor-1], w.buf[w.cursor:]...)
			w.cursor--
			w.dirty = true
		}
	case event.KeyDelete:
		if w.cursor < len(w.buf) {
			w.buf = append(w.buf[:w.cursor], w.buf[w.cursor+1:]...)
			w.dirty = true
		}
	default:
		return false
	}
	return true
}

func (w *TextWidget) insert(ch rune) {
	w.buf = append(w.buf, 0)
	copy(w.buf[w.cursor+1:], w.buf[w.cursor:])
	w.buf[w.cursor] = ch
	w.cursor++
	w.dirty = true
}

// cursorOffset returns the column offset of the cursor within the
// widget, accounting for wide glyphs (each occupies two grid cells at
// render time, per spec §4.5).
func (w *TextWidget) cursorOffset() int {
	offset := 0
	for _, r := range w.buf[:w.cursor] {
		offset += runewidth.RuneWidth(r)
	}
	return offset
}

// Draw paints the buffer starting at the widget's top-left cell and, if
// focused, requests the caret at the cursor's column (spec §4.5: "On each
// change and on gaining focus, call renderer.set_caret_position").
func (w *TextWidget) Draw(r Renderer) {
	col := w.bounds.Col
	for _, ch := range w.buf {
		if col >= w.bounds.Col+w.bounds.W {
			break
		}
		r.PutChar(w.bounds.Row, col, ch, w.pair, 0)
		col += runewidth.RuneWidth(ch)
	}
	if w.focused {
		r.SetCaretPosition(w.bounds.Row, w.bounds.Col+w.cursorOffset())
	}
	w.dirty = false
}
