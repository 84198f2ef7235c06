package desktop

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/mattn/go-runewidth"

	"github.com/shimomut/ttk/batch"
	"github.com/shimomut/ttk/grid"
	"github.com/shimomut/ttk/internal/ttklog"
)

// surface is the minimal 2D draw target the paint pipeline needs. It is
// satisfied by *ebitenSurface in production and by a recording fake in
// tests, so phases 2-4 of the render pipeline (spec §4.2) are unit
// testable without a real graphics driver — ebiten.Image requires an
// initialized graphics context that a plain `go test` process doesn't
// have.
type surface interface {
	DrawFilledRect(x, y, w, h int, bg color.RGBA)
	DrawGlyph(x, y int, ch rune, fg color.RGBA, bold, underline bool)
}

// paint runs phases 1-4 of the render pipeline (spec §4.2) against surf:
// damage computation (phase 1, already done by the caller via
// grid.Grid.Dirty), background batching and draw (phases 2-3, via
// batch.BackgroundPass), and glyph draw (phase 4). Phase 5 (caret) is
// handled separately by the Renderer since it isn't a surface concern.
func paint(g *grid.Grid, cellW, cellH int, surf surface, log *ttklog.Logger) {
	for _, rect := range batch.BackgroundPass(g, cellW, cellH) {
		surf.DrawFilledRect(rect.X, rect.Y, rect.W, rect.H, rgbToColor(rect.BG))
	}

	pairs := g.Pairs() // hoisted local, matching grid.Grid.EachDirty's own discipline
	_, cols := g.Dimensions()
	skipRight := make(map[[2]int]bool) // cells to skip: the right half of a wide glyph drawn at its left cell

	g.EachDirty(func(row, col int, cell grid.Cell) {
		if cell.Glyph == ' ' && cell.Attrs == 0 {
			return
		}
		if skipRight[[2]int{row, col}] {
			return
		}
		pair := pairs.Get(cell.Pair)
		fg := rgbToColor(grid.EffectiveFG(pair, cell.Attrs))
		x, y := col*cellW, row*cellH
		surf.DrawGlyph(x, y, cell.Glyph, fg, cell.Attrs&grid.AttrBold != 0, cell.Attrs&grid.AttrUnderline != 0)

		// Wide glyphs (East-Asian width 2) occupy two cells and must be
		// drawn only at their left cell (spec §4.2 Phase 4); mark the
		// right neighbor so a stale or re-dirtied right cell never
		// double-draws it.
		if runewidth.RuneWidth(cell.Glyph) == 2 && col+1 < cols {
			skipRight[[2]int{row, col + 1}] = true
		}
	})
}

// ebitenSurface adapts an *ebiten.Image + text/v2 font face to the
// surface interface, grounded on
// other_examples/b8336135_jamesread-TheDarkStation__pkg-game-renderer-ebiten-types.go.go's
// use of vector.DrawFilledRect-style primitives plus cached text/v2
// faces for its tile/UI text.
type ebitenSurface struct {
	image *ebiten.Image
	face  *text.GoTextFace
	cellW, cellH int
}

func newEbitenSurface(w, h int, face *text.GoTextFace, cellW, cellH int) *ebitenSurface {
	return &ebitenSurface{
		image: ebiten.NewImage(w, h),
		face:  face,
		cellW: cellW,
		cellH: cellH,
	}
}

func (s *ebitenSurface) DrawFilledRect(x, y, w, h int, bg color.RGBA) {
	vector.DrawFilledRect(s.image, float32(x), float32(y), float32(w), float32(h), bg, false)
}

func (s *ebitenSurface) DrawGlyph(x, y int, ch rune, fg color.RGBA, bold, underline bool) {
	op := &text.DrawOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	op.ColorScale.ScaleWithColor(fg)
	face := s.face
	text.Draw(s.image, string(ch), face, op)
	if bold {
		// No bold face is loaded (spec §1 non-goal: rich text beyond
		// {bold, underline, reverse} as attribute bits, not font
		// variants) — a faux-bold second pass one pixel right is the
		// cheapest approximation that still reads as "bold" at small
		// cell sizes.
		op2 := &text.DrawOptions{}
		op2.GeoM.Translate(float64(x+1), float64(y))
		op2.ColorScale.ScaleWithColor(fg)
		text.Draw(s.image, string(ch), face, op2)
	}
	if underline {
		uy := y + s.cellH - 2
		vector.DrawFilledRect(s.image, float32(x), float32(uy), float32(s.cellW), 1, fg, false)
	}
}

func (s *ebitenSurface) clear(bg color.RGBA) {
	s.image.Fill(bg)
}
