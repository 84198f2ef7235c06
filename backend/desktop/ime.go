package desktop

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/exp/textinput"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/shimomut/ttk/event"
)

// compositionBG/FG are the "distinct visual style (e.g., highlighted
// background and underline)" spec §4.6 asks for.
var (
	compositionBG = color.RGBA{R: 60, G: 90, B: 140, A: 255}
	compositionFG = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// imeSession tracks one OS text-input composition, started at the caret
// cell and ended when the field loses focus or the composition commits.
// The functional Start(x, y) API textinput exposes hands back a channel
// of incremental States plus an end func — this session wraps that
// channel the way spec §4.6 wants the surface to look
// (has_marked_text/marked_range/set_marked_text/unmark_text/insert_text),
// rather than exposing ebiten's own shape to the rest of TTK.
type imeSession struct {
	states chan textinput.State
	end    func()

	marked            []rune
	markedSelStart    int
	markedSelEnd      int
	caretRow, caretCol int
}

// startIME begins a composition session at the given caret cell,
// resolving its pixel position through the same grid->window transform
// Phase 4 drawing uses. Refresh calls it whenever a caret position is set
// inside the grid and no session is active. Must be called without r.mu
// held.
func (r *Renderer) startIME(row, col int) {
	if !textinput.IsAvailable() {
		return
	}
	r.endIME()
	x, y := r.caretPixel(row, col)
	states, end := textinput.Start(x, y)

	r.mu.Lock()
	r.ime = &imeSession{states: states, end: end, caretRow: row, caretCol: col}
	r.mu.Unlock()
}

// endIME cancels any in-progress composition without committing it,
// matching unmark_text's "clears composition state" contract. Must be
// called without r.mu held.
func (r *Renderer) endIME() {
	r.mu.Lock()
	session := r.ime
	r.ime = nil
	r.mu.Unlock()

	if session != nil && session.end != nil {
		session.end()
	}
}

// repositionIME keeps an active session's candidate-window anchor
// following the caret as set_caret_position moves it, without
// restarting composition (spec §4.6 first_rect_for_character_range must
// track the caret cell across refreshes).
func (r *Renderer) repositionIME(row, col int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ime == nil {
		return
	}
	r.ime.caretRow, r.ime.caretCol = row, col
}

// pollIME drains pending textinput.State values without blocking,
// called once per Update tick, and translates marked/commit transitions
// into the SetMarkedText/UnmarkText/InsertText contract (spec §4.6). It
// must be called without r.mu held, since it calls endIME/setMarkedText.
func (r *Renderer) pollIME() {
	r.mu.Lock()
	session := r.ime
	r.mu.Unlock()
	if session == nil {
		return
	}
	for {
		select {
		case st, ok := <-session.states:
			if !ok {
				r.mu.Lock()
				if r.ime == session {
					r.ime = nil
				}
				r.mu.Unlock()
				return
			}
			if st.Error != nil {
				r.log.Warnf("desktop: text-input session error: %v", st.Error)
				r.endIME()
				return
			}
			if st.Committed {
				r.insertText(st.Text)
				r.unmarkText()
			} else {
				r.setMarkedText(st.Text, st.CompositionSelectionStartInBytes, st.CompositionSelectionEndInBytes)
			}
		default:
			return
		}
	}
}

// hasMarkedText reports whether a composition is currently in progress
// (spec §4.6 has_marked_text).
func (r *Renderer) hasMarkedText() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.ime != nil && len(r.ime.marked) > 0
}

// markedRange returns the composition buffer's extent, in runes, or
// (0, 0, false) when nothing is being composed (spec §4.6 marked_range).
func (r *Renderer) markedRange() (start, end int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ime == nil || len(r.ime.marked) == 0 {
		return 0, 0, false
	}
	return 0, len(r.ime.marked), true
}

// selectedRange returns the in-progress selection within the
// composition buffer (spec §4.6 selected_range).
func (r *Renderer) selectedRange() (start, end int, ok bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ime == nil {
		return 0, 0, false
	}
	return r.ime.markedSelStart, r.ime.markedSelEnd, true
}

// setMarkedText stores the OS's in-progress composition text and marks
// the whole grid dirty; Draw overlays the composition at the caret cell
// (spec §4.6: "No CharEvents are emitted during composition").
func (r *Renderer) setMarkedText(text string, selStart, selEnd int) {
	r.mu.Lock()
	if r.ime == nil {
		r.mu.Unlock()
		return
	}
	r.ime.marked = []rune(text)
	r.ime.markedSelStart, r.ime.markedSelEnd = selStart, selEnd
	if r.grd != nil {
		r.grd.MarkAllDirty()
	}
	r.mu.Unlock()
}

// unmarkText clears composition state (spec §4.6 unmark_text).
func (r *Renderer) unmarkText() {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ime == nil {
		return
	}
	r.ime.marked = nil
	r.ime.markedSelStart, r.ime.markedSelEnd = 0, 0
}

// insertText emits one CharEvent per Unicode scalar of s, skipping
// control code points (below 0x20, and 0x7F). It does not touch
// composition state; on commit, pollIME calls unmarkText right after it.
func (r *Renderer) insertText(s string) {
	ts := r.elapsed()
	for _, ch := range s {
		if ch < 0x20 || ch == 0x7F {
			continue
		}
		r.deliver(event.CharEvent{Char: ch, Timestamp: ts})
	}
}

// firstRectForCharacterRange returns the rectangle of the caret cell in
// window pixel coordinates (the grid->window transform only; it is not
// translated to screen coordinates). With no font face or no active
// session it returns a zero rectangle.
func (r *Renderer) firstRectForCharacterRange() image.Rectangle {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.face == nil || r.ime == nil {
		return image.Rectangle{}
	}
	x, y := r.caretPixelLocked(r.ime.caretRow, r.ime.caretCol)
	return image.Rect(x, y, x+r.cellW, y+r.cellH)
}

// attributedSubstringForProposedRange returns a minimal string carrying
// the backend's own font, so the OS renders composition glyphs in the
// same metrics as the grid (spec §4.6).
func (r *Renderer) attributedSubstringForProposedRange() (string, *text.GoTextFace) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.ime == nil {
		return "", r.face
	}
	return string(r.ime.marked), r.face
}

func (r *Renderer) caretPixel(row, col int) (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.caretPixelLocked(row, col)
}

func (r *Renderer) caretPixelLocked(row, col int) (int, int) {
	return col * r.cellW, row * r.cellH
}

// drawIMEOverlay paints the in-progress composition text at the caret
// cell with a distinct visual style (highlighted background, underline)
// on top of the last painted frame, without touching the grid itself
// (spec §4.6: "overlaid at the caret position ... No CharEvents are
// emitted during composition"). Called from Draw, on ebiten's own
// goroutine; takes r.mu itself rather than requiring the caller to hold it.
func (r *Renderer) drawIMEOverlay(screen *ebiten.Image) {
	r.mu.Lock()
	if r.ime == nil || len(r.ime.marked) == 0 || r.face == nil {
		r.mu.Unlock()
		return
	}
	marked := string(r.ime.marked)
	x, y := r.caretPixelLocked(r.ime.caretRow, r.ime.caretCol)
	w := r.cellW * len([]rune(marked))
	cellH := r.cellH
	face := r.face
	r.mu.Unlock()

	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(cellH), compositionBG, false)
	vector.DrawFilledRect(screen, float32(x), float32(y+cellH-2), float32(w), 1, compositionFG, false)

	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(compositionFG)
	text.Draw(screen, marked, face, op)
}
