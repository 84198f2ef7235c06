// Package grid implements the character grid, the color-pair table, and the
// damage (dirty-region) tracker that together form the rendering engine's
// data model. The inner loops here are performance-critical: iterating and
// coalescing a 24x80 dirty region must complete in well under 50ms, so the
// grid is a flat slice indexed row-major rather than a nested map.
package grid

// Attr is a bitmask of cell attributes. Rich text beyond these three bits
// is out of scope.
type Attr uint8

const (
	AttrBold Attr = 1 << iota
	AttrUnderline
	AttrReverse
)

// Cell is one character position: a glyph, a color-pair id, and attributes.
type Cell struct {
	Glyph rune
	Pair  uint16
	Attrs Attr
}

// Empty is the canonical empty cell: a space, color-pair 0, no attributes.
var Empty = Cell{Glyph: ' ', Pair: 0}

// IsEmpty reports whether c is the canonical empty cell.
func (c Cell) IsEmpty() bool {
	return c.Glyph == ' ' && c.Pair == 0 && c.Attrs == 0
}

// RGB is a 24-bit color.
type RGB struct {
	R, G, B uint8
}

// ColorPair is a foreground/background pair stored under an integer id.
type ColorPair struct {
	FG, BG RGB
}

// MinPairTableSize is the minimum number of entries the pair table must hold.
const MinPairTableSize = 256

// PairTable holds at least MinPairTableSize color pairs; id 0 is always
// defined (the default pair) once Init has run.
type PairTable struct {
	pairs map[uint16]ColorPair
}

// NewPairTable creates a table with pair 0 set to the given default.
func NewPairTable(def ColorPair) *PairTable {
	t := &PairTable{pairs: make(map[uint16]ColorPair, MinPairTableSize)}
	t.pairs[0] = def
	return t
}

// Set defines or replaces a color pair. Replacing an existing id is
// permitted; callers that replace pair 0 or any pair already painted onto
// the grid are responsible for forcing a full-grid redraw (see Grid.Resize
// or Grid.MarkAllDirty), since the pair table itself has no notion of who
// references which id.
func (t *PairTable) Set(id uint16, p ColorPair) {
	t.pairs[id] = p
}

// Get resolves a pair id, substituting pair 0 when the id is unknown. This
// substitution is branch-free at the call site (a single map lookup with a
// fallback), matching the "no per-cell branch" contract for Phase 2.
func (t *PairTable) Get(id uint16) ColorPair {
	if p, ok := t.pairs[id]; ok {
		return p
	}
	return t.pairs[0]
}

// Len returns how many pairs are currently defined.
func (t *PairTable) Len() int {
	return len(t.pairs)
}

// Rect is an inclusive-exclusive rectangle in cell coordinates.
type Rect struct {
	Row, Col, H, W int
}

// Empty reports whether the rectangle covers no cells.
func (r Rect) Empty() bool { return r.H <= 0 || r.W <= 0 }

// union returns the smallest rectangle covering both r and o. Either side
// may be empty.
func (r Rect) union(o Rect) Rect {
	if r.Empty() {
		return o
	}
	if o.Empty() {
		return r
	}
	top := min(r.Row, o.Row)
	left := min(r.Col, o.Col)
	bottom := max(r.Row+r.H, o.Row+o.H)
	right := max(r.Col+r.W, o.Col+o.W)
	return Rect{Row: top, Col: left, H: bottom - top, W: right - left}
}

// Grid is a dense rows x cols array of cells plus a damage tracker. Cells
// are addressed (row, col) with (0,0) at the top-left.
type Grid struct {
	rows, cols int
	cells      []Cell
	dirty      Rect
	pairs      *PairTable
}

// New allocates a rows x cols grid, already filled with empty cells, backed
// by the given pair table (pair 0 must already be defined on it).
func New(rows, cols int, pairs *PairTable) *Grid {
	g := &Grid{rows: rows, cols: cols, pairs: pairs}
	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i] = Empty
	}
	return g
}

// Dimensions returns the current (rows, cols).
func (g *Grid) Dimensions() (rows, cols int) { return g.rows, g.cols }

// Pairs returns the grid's color-pair table.
func (g *Grid) Pairs() *PairTable { return g.pairs }

func (g *Grid) inBounds(r, c int) bool {
	return r >= 0 && r < g.rows && c >= 0 && c < g.cols
}

func (g *Grid) index(r, c int) int { return r*g.cols + c }

// Cell returns the current cell at (r, c), or the empty cell if out of bounds.
func (g *Grid) Cell(r, c int) Cell {
	if !g.inBounds(r, c) {
		return Empty
	}
	return g.cells[g.index(r, c)]
}

func (g *Grid) markDirty(r Rect) {
	g.dirty = g.dirty.union(r)
}

// PutChar writes a glyph at (r, c) and marks the cell dirty only if its
// contents actually change. Out-of-bounds positions are silently clipped —
// this call never panics and never errors.
func (g *Grid) PutChar(r, c int, ch rune, pair uint16, attrs Attr) {
	if !g.inBounds(r, c) {
		return
	}
	idx := g.index(r, c)
	next := Cell{Glyph: ch, Pair: pair, Attrs: attrs}
	if g.cells[idx] == next {
		return
	}
	g.cells[idx] = next
	g.markDirty(Rect{Row: r, Col: c, H: 1, W: 1})
}

// FillRect writes a background over a rectangle using space glyphs of the
// given pair, clipping to the grid bounds. It marks the affected (clipped)
// region dirty when at least one cell in it changed.
func (g *Grid) FillRect(r, c, h, w int, pair uint16) {
	top, left, bottom, right := r, c, r+h, c+w
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	if bottom > g.rows {
		bottom = g.rows
	}
	if right > g.cols {
		right = g.cols
	}
	if top >= bottom || left >= right {
		return
	}
	changed := false
	for row := top; row < bottom; row++ {
		base := row * g.cols
		for col := left; col < right; col++ {
			idx := base + col
			next := Cell{Glyph: ' ', Pair: pair}
			if g.cells[idx] != next {
				g.cells[idx] = next
				changed = true
			}
		}
	}
	if changed {
		g.markDirty(Rect{Row: top, Col: left, H: bottom - top, W: right - left})
	}
}

// Clear resets every cell to empty and marks the whole grid dirty.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.dirty = Rect{Row: 0, Col: 0, H: g.rows, W: g.cols}
}

// MarkAllDirty forces the whole grid dirty without touching cell contents,
// used after a color-pair replacement (spec §5: "replacing an existing id
// ... forces a full-grid redraw").
func (g *Grid) MarkAllDirty() {
	g.dirty = Rect{Row: 0, Col: 0, H: g.rows, W: g.cols}
}

// Dirty returns the current dirty bounding rectangle (empty if nothing
// changed since the last call to ClearDirty).
func (g *Grid) Dirty() Rect { return g.dirty }

// ClearDirty transitions the tracker back to Clean; call once per refresh
// after the paint pipeline has consumed Dirty().
func (g *Grid) ClearDirty() { g.dirty = Rect{} }

// Resize re-allocates the backing buffer, re-initializes every cell to
// empty, and marks the whole grid dirty. Existing content is not preserved
// (spec §3 lifecycle: "content is re-initialised to empty on resize").
func (g *Grid) Resize(rows, cols int) {
	g.rows, g.cols = rows, cols
	g.cells = make([]Cell, rows*cols)
	for i := range g.cells {
		g.cells[i] = Empty
	}
	g.dirty = Rect{Row: 0, Col: 0, H: rows, W: cols}
}

// EachDirty invokes fn for every cell inside the current dirty rectangle, in
// row-major order, pre-binding the grid slice and column count so the
// inner loop stays allocation-free. Callers that need the pair table bind
// it themselves via Pairs.
func (g *Grid) EachDirty(fn func(row, col int, cell Cell)) {
	d := g.dirty
	if d.Empty() {
		return
	}
	top, left := d.Row, d.Col
	bottom, right := d.Row+d.H, d.Col+d.W
	if top < 0 {
		top = 0
	}
	if left < 0 {
		left = 0
	}
	if bottom > g.rows {
		bottom = g.rows
	}
	if right > g.cols {
		right = g.cols
	}
	cells := g.cells // local binding, hoisted out of the loop
	cols := g.cols
	for row := top; row < bottom; row++ {
		base := row * cols
		for col := left; col < right; col++ {
			fn(row, col, cells[base+col])
		}
	}
}

// EffectiveBG returns the background a cell actually paints with: the
// pair's BG, or its FG when REVERSE is set (spec §4.2).
func EffectiveBG(pair ColorPair, attrs Attr) RGB {
	if attrs&AttrReverse != 0 {
		return pair.FG
	}
	return pair.BG
}

// EffectiveFG is the mirror of EffectiveBG for glyph drawing (Phase 4).
func EffectiveFG(pair ColorPair, attrs Attr) RGB {
	if attrs&AttrReverse != 0 {
		return pair.BG
	}
	return pair.FG
}
