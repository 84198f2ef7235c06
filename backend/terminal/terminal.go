// Package terminal implements the tcell-backed Renderer (spec §4.2-§4.4,
// "Terminal backend — 18%"). It drives a real tty through tcell for
// screen writes, raw-mode key/mouse decode, and color; the grid/batch/
// event packages remain backend-agnostic and are exercised here rather
// than reimplemented. Grounded on cansyan-co/ui/ui.go's tcell usage for
// the live screen path, and cansyan-co/ui/terminal.go (the teacher's own
// parallel hand-rolled raw-terminal implementation, otherwise dead code
// in that tree) for the UTF-8/OSC-52/mouse details tcell itself doesn't
// expose a byte-level view of.
package terminal

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"

	"github.com/shimomut/ttk"
	"github.com/shimomut/ttk/batch"
	"github.com/shimomut/ttk/event"
	"github.com/shimomut/ttk/grid"
	"github.com/shimomut/ttk/internal/ttklog"
)

// Renderer is the terminal backend's implementation of ttk.Renderer.
type Renderer struct {
	screen tcell.Screen
	grid   *grid.Grid
	pairs  *grid.PairTable

	mu       sync.Mutex
	caretRow int
	caretCol int
	caretSet bool

	cb   *ttk.Callback
	quit chan struct{}

	chanOnce    sync.Once
	tcellEvents chan tcell.Event
	lastButtons tcell.ButtonMask

	accum event.Accumulator
	log   *ttklog.Logger
	menu  *event.Menu

	lastMouseTS int64 // monotonically increasing synthetic timestamp (ms)
}

var _ ttk.Renderer = (*Renderer)(nil)

// New constructs a terminal Renderer over an already-created tcell
// screen (a real tcell.NewScreen() in production, or
// tcell.NewSimulationScreen in tests). The caller owns screen.Init/Fini.
func New(screen tcell.Screen, log *ttklog.Logger) *Renderer {
	return &Renderer{screen: screen, log: log, quit: make(chan struct{})}
}

// Init allocates the grid over the screen's current size and reports
// this backend's capabilities (spec §4.1).
func (r *Renderer) Init(rows, cols int, pairs *grid.PairTable) ttk.Capabilities {
	r.pairs = pairs
	r.grid = grid.New(rows, cols, pairs)
	return r.Capabilities()
}

// Dimensions returns the grid's current size.
func (r *Renderer) Dimensions() (rows, cols int) { return r.grid.Dimensions() }

// Capabilities reports what this backend supports (spec §4.1). A
// terminal has no hover/move tracking beyond what ?1002h reports, no
// clipboard read path, and no native menu bar — applications render
// their own menu row as grid content and drive it off MenuEvent, which
// this backend never emits on its own (menu activation here is purely
// an application concern).
func (r *Renderer) Capabilities() ttk.Capabilities {
	return ttk.Capabilities{
		MouseKinds: []event.MouseKind{
			event.MouseDown, event.MouseUp, event.MouseMove,
			event.MouseDrag, event.MouseWheel,
		},
		Clipboard: true, // set-only; ClipboardGet returns the neutral empty value
		MenuBar:   false,
		Image:     false,
	}
}

// SetMenuBar records the application's menu tree. The terminal backend
// has no native menu surface, so this is purely bookkeeping: it exists
// so applications written against both backends compile unchanged, and
// so a future key-binding dispatcher could resolve shortcuts against it.
func (r *Renderer) SetMenuBar(menu *event.Menu) {
	r.menu = menu
}

// PutChar writes a glyph, delegating entirely to grid.Grid's clipping and
// damage-tracking rules.
func (r *Renderer) PutChar(row, col int, ch rune, pair uint16, attrs grid.Attr) {
	r.grid.PutChar(row, col, ch, pair, attrs)
}

// FillRect writes a background rectangle, clipped by the grid.
func (r *Renderer) FillRect(row, col, h, w int, pair uint16) {
	r.grid.FillRect(row, col, h, w, pair)
}

// Clear resets the whole grid to empty.
func (r *Renderer) Clear() { r.grid.Clear() }

// SetCaretPosition records where the caret should rest on the next
// refresh (spec §4.1 Phase 5).
func (r *Renderer) SetCaretPosition(row, col int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caretRow, r.caretCol, r.caretSet = row, col, true
}

// Refresh runs the five-phase paint pipeline (spec §4.2): damage
// computation, background batching, background draw, glyph draw, caret.
// It is idempotent when nothing is dirty.
func (r *Renderer) Refresh() error {
	d := r.grid.Dirty()
	if !d.Empty() {
		// Phase 2/3: the terminal grid is already cell-granular, so the
		// batcher runs with a 1x1 "pixel" per cell — still the same
		// algorithm and the same batch.Rect type the desktop backend uses.
		rects := batch.BackgroundPass(r.grid, 1, 1)
		for _, rect := range rects {
			style := tcell.StyleDefault.Background(rgbToTcell(rect.BG))
			for x := rect.X; x < rect.X+rect.W; x++ {
				if err := r.safeSetContent(x, rect.Y, ' ', style); err != nil {
					r.log.Warnf("draw background cell (%d,%d) failed: %v", rect.Y, x, err)
				}
			}
		}

		// Phase 4: glyphs.
		pairs := r.grid.Pairs()
		r.grid.EachDirty(func(row, col int, cell grid.Cell) {
			if cell.Glyph == ' ' && cell.Attrs == 0 {
				return
			}
			pair := pairs.Get(cell.Pair)
			style := tcell.StyleDefault.
				Foreground(rgbToTcell(grid.EffectiveFG(pair, cell.Attrs))).
				Background(rgbToTcell(grid.EffectiveBG(pair, cell.Attrs))).
				Bold(cell.Attrs&grid.AttrBold != 0).
				Underline(cell.Attrs&grid.AttrUnderline != 0)
			if err := r.safeSetContent(col, row, cell.Glyph, style); err != nil {
				r.log.Warnf("draw glyph (%d,%d) failed: %v", row, col, err)
			}
		})

		r.screen.Show()
		r.grid.ClearDirty()
	}

	// Phase 5: caret, reapplied every refresh regardless of dirty state.
	r.mu.Lock()
	row, col, set := r.caretRow, r.caretCol, r.caretSet
	r.mu.Unlock()
	rows, cols := r.grid.Dimensions()
	if set && row >= 0 && row < rows && col >= 0 && col < cols {
		r.screen.ShowCursor(col, row)
	} else {
		r.screen.HideCursor()
	}
	return nil
}

func (r *Renderer) safeSetContent(x, y int, ch rune, style tcell.Style) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = fmt.Errorf("panic in SetContent: %v", p)
		}
	}()
	r.screen.SetContent(x, y, ch, nil, style)
	return nil
}

func rgbToTcell(c grid.RGB) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

// Shutdown tears down the backend.
func (r *Renderer) Shutdown() {
	r.screen.Fini()
}

// Stop signals RunEventLoop to return.
func (r *Renderer) Stop() {
	select {
	case <-r.quit:
	default:
		close(r.quit)
	}
}
