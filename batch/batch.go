// Package batch coalesces adjacent same-background cells within a row into
// filled rectangles, so the backend issues one draw call per run of color
// instead of one per cell. It is purely accumulative: it never issues a
// draw call itself (see grid.Grid.EachDirty for the iteration that feeds it).
package batch

import "github.com/shimomut/ttk/grid"

// Rect is a batched background rectangle in pixel space, tagged with the
// background color it was coalesced under.
type Rect struct {
	X, Y, W, H int
	BG         grid.RGB
}

// Batcher accumulates one in-progress rectangle per row. Adjacent cells in
// the same row with the same effective background extend it; a differing
// cell closes the current rectangle and starts a new one. Rectangles never
// span rows — callers must call FinishRow at each row boundary.
type Batcher struct {
	cellW, cellH int
	open         bool
	cur          Rect
	out          []Rect
}

// New creates a batcher for a grid whose cells are cellW x cellH pixels.
func New(cellW, cellH int) *Batcher {
	return &Batcher{cellW: cellW, cellH: cellH}
}

// AddCell offers one cell's background to the batcher. x, y are pixel
// coordinates of the cell's top-left corner.
func (b *Batcher) AddCell(x, y int, bg grid.RGB) {
	if b.open && bg == b.cur.BG && x == b.cur.X+b.cur.W {
		b.cur.W += b.cellW
		return
	}
	b.emit()
	b.cur = Rect{X: x, Y: y, W: b.cellW, H: b.cellH, BG: bg}
	b.open = true
}

// FinishRow closes any rectangle left open at a row boundary. It must be
// called after the last cell of each row has been offered via AddCell.
func (b *Batcher) FinishRow() {
	b.emit()
}

func (b *Batcher) emit() {
	if b.open {
		b.out = append(b.out, b.cur)
		b.open = false
	}
}

// Drain returns every rectangle produced so far and resets the batcher for
// reuse on the next paint.
func (b *Batcher) Drain() []Rect {
	b.emit()
	out := b.out
	b.out = nil
	return out
}

// BackgroundPass runs the full batching algorithm (Phase 2/3 of the render
// pipeline) over every cell in the grid's current dirty rectangle, using
// the pair table to resolve each cell's effective background, and returns
// the resulting rectangle stream. Unknown pair ids resolve to pair 0 via
// grid.PairTable.Get, in constant time, with no per-cell branch beyond the
// map lookup itself.
func BackgroundPass(g *grid.Grid, cellW, cellH int) []Rect {
	d := g.Dirty()
	if d.Empty() {
		return nil
	}

	b := New(cellW, cellH)
	pairs := g.Pairs() // hoisted local, resolved once
	started := false
	lastRow := 0
	g.EachDirty(func(row, col int, cell grid.Cell) {
		if started && row != lastRow {
			b.FinishRow()
		}
		lastRow = row
		started = true

		pair := pairs.Get(cell.Pair)
		bg := grid.EffectiveBG(pair, cell.Attrs)
		x := col * cellW
		y := row * cellH
		b.AddCell(x, y, bg)
	})
	b.FinishRow()
	return b.Drain()
}
