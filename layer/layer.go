// Package layer implements the UI-layer stack: an ordered set of layers in
// which only the topmost receives input, with rectangle-based hit-testing
// and a caret-position contract the renderer restores on every refresh.
package layer

import (
	"github.com/shimomut/ttk/event"
	"github.com/shimomut/ttk/grid"
)

// Rect is a layer's rectangle in grid cell coordinates.
type Rect struct {
	Row, Col, H, W int
}

// Contains reports whether (row, col) falls inside r — the is_point_inside
// hit-testing helper from spec §4.5.
func (r Rect) Contains(row, col int) bool {
	return row >= r.Row && row < r.Row+r.H && col >= r.Col && col < r.Col+r.W
}

// Renderer is the minimal surface a Layer needs to draw itself: put a
// glyph, fill a background, and request the caret. It is satisfied by any
// backend's Renderer (see the root ttk package) — kept narrow here so
// layer does not import backend packages.
type Renderer interface {
	PutChar(row, col int, ch rune, pair uint16, attrs grid.Attr)
	FillRect(row, col, h, w int, pair uint16)
	SetCaretPosition(row, col int)
}

// Layer is a UI component occupying a rectangle in the grid, responsible
// for drawing itself and handling input when it is the topmost layer on
// the stack (spec §3, §4.5).
type Layer interface {
	// Bounds returns the layer's current rectangle.
	Bounds() Rect
	// HandleEvent offers ev to the layer. It returns true if the layer
	// consumed the event. Only ever called when this layer is top of
	// stack.
	HandleEvent(ev event.Event) bool
	// Draw paints the layer's content through r. Called bottom-up on
	// refresh whenever the layer reports itself dirty; redraw discipline
	// (tracking what changed) is the layer's own responsibility, not the
	// stack's.
	Draw(r Renderer)
	// Dirty reports whether Draw needs to run again before the next
	// refresh.
	Dirty() bool
}

// LayerID identifies a pushed layer for contains_point lookups.
type LayerID int

// Stack is the ordered layer stack. The zero value is an empty, usable
// stack.
type Stack struct {
	layers []Layer
	ids    []LayerID
	nextID LayerID
}

// Push adds a layer to the top of the stack and returns its id. Pushing
// never emits an event by itself — per spec §4.5, the application is
// responsible for issuing a synthetic redraw after a focus change.
func (s *Stack) Push(l Layer) LayerID {
	s.nextID++
	id := s.nextID
	s.layers = append(s.layers, l)
	s.ids = append(s.ids, id)
	return id
}

// Pop removes the top layer, if any, and returns it.
func (s *Stack) Pop() (Layer, bool) {
	if len(s.layers) == 0 {
		return nil, false
	}
	n := len(s.layers) - 1
	l := s.layers[n]
	s.layers = s.layers[:n]
	s.ids = s.ids[:n]
	return l, true
}

// Top returns the topmost layer without removing it.
func (s *Stack) Top() (Layer, bool) {
	if len(s.layers) == 0 {
		return nil, false
	}
	return s.layers[len(s.layers)-1], true
}

// Len reports how many layers are on the stack.
func (s *Stack) Len() int { return len(s.layers) }

// ContainsPoint reports the topmost layer (by stack order, not z-order
// within a single layer) whose bounds contain (row, col), scanning from
// the top down — spec §4.5's contains_point.
func (s *Stack) ContainsPoint(row, col int) (LayerID, bool) {
	for i := len(s.layers) - 1; i >= 0; i-- {
		if s.layers[i].Bounds().Contains(row, col) {
			return s.ids[i], true
		}
	}
	return 0, false
}

// Dispatch offers ev to the top layer only and returns whether it was
// consumed. An empty stack consumes nothing. This is the strict
// top-of-stack-only routing spec §3/§4.5 mandates — there is no fallback
// to lower layers when the top layer reports not-consumed (spec §4.4:
// "not-consumed" is reserved for the terminal backend's char-translation
// decision, not for re-offering the event further down the stack).
func (s *Stack) Dispatch(ev event.Event) bool {
	top, ok := s.Top()
	if !ok {
		return false
	}
	return top.HandleEvent(ev)
}

// DrawAll paints every layer bottom-up, skipping layers that report
// themselves clean (spec §4.5: "layers track their own dirty bit").
func (s *Stack) DrawAll(r Renderer) {
	for _, l := range s.layers {
		if l.Dirty() {
			l.Draw(r)
		}
	}
}
