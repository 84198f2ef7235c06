// Package desktop implements the ebiten-backed Renderer (SPEC_FULL.md
// §4.3, "Desktop backend — 22%"). It draws the character grid into an
// offscreen ebiten.Image every Refresh, and blits that image to the
// window once per engine frame from Draw — the same two-phase split
// etcell_screen.go uses for its own tcell-over-ebiten Screen (Show()
// rasterizes into the cell grid's cached glyphs; the actual present
// happens on ebiten's own schedule). Window creation, the OS event
// pump, and font metrics are grounded on
// other_examples/b8336135_jamesread-TheDarkStation__pkg-game-renderer-ebiten-types.go.go
// (EbitenRenderer: tile size, viewport, text/v2 font sources/faces,
// ebiten.Game-shaped renderer).
//
// Unlike backend/terminal, where the same goroutine always drives both
// the tty writes and the tcell event channel, ebiten insists on owning
// its own goroutine for Update/Draw. In polling mode that goroutine runs
// alongside whichever goroutine the application calls PutChar/Refresh
// from, so, unlike the grid/dirty-tracker/layer-stack single-threaded
// model in spec §5, this backend does take a mutex around its grid and
// session state rather than assuming exclusive single-thread access.
package desktop

import (
	"image/color"
	"sync"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"

	"github.com/shimomut/ttk"
	"github.com/shimomut/ttk/event"
	"github.com/shimomut/ttk/grid"
	"github.com/shimomut/ttk/internal/ttklog"
)

// Renderer is the desktop backend's implementation of ttk.Renderer. It
// also implements ebiten.Game, since ebiten.RunGame is how spec
// §4.1's run_event_loop is realized on this backend (spec §9: "OS event
// loop" maps onto Update/Draw/Layout rather than a loop ttk itself owns).
type Renderer struct {
	cfg ttk.Config

	grd   *grid.Grid
	pairs *grid.PairTable

	cellW, cellH     int
	windowW, windowH int

	face    *text.GoTextFace
	surface *ebitenSurface
	menu    *event.Menu
	log     *ttklog.Logger

	// mu guards everything above plus cb and ime below: Update runs on
	// ebiten's own goroutine (directly when RunEventLoop owns it, or from
	// the background goroutine ensureRunning starts for polling mode),
	// while PutChar/FillRect/Clear/Refresh/SetCaretPosition/
	// SetEventCallback are called from the application's goroutine. No
	// method holds mu across a call into another mu-locking method —
	// Refresh in particular releases it before touching the IME session.
	mu                 sync.Mutex
	caretRow, caretCol int
	caretSet           bool

	cb      *ttk.Callback
	events  chan event.Event
	runOnce sync.Once
	quit    chan struct{}

	input inputState
	ime   *imeSession
}

var _ ttk.Renderer = (*Renderer)(nil)
var _ ebiten.Game = (*Renderer)(nil)

// New constructs a desktop Renderer. The font face is resolved lazily in
// Init, once the cell size (hence the point size it must render at) is
// known.
func New(cfg ttk.Config, log *ttklog.Logger) *Renderer {
	return &Renderer{
		cfg:    cfg,
		log:    log,
		events: make(chan event.Event, 256),
		quit:   make(chan struct{}),
	}
}

// Init allocates the grid, sizes the window to rows*cols cells, and
// reports this backend's capabilities (spec §4.1).
func (r *Renderer) Init(rows, cols int, pairs *grid.PairTable) ttk.Capabilities {
	r.pairs = pairs
	r.grd = grid.New(rows, cols, pairs)

	r.cellW, r.cellH = r.cfg.CellWidthPx, r.cfg.CellHeightPx
	if r.cellW <= 0 {
		r.cellW = 9
	}
	if r.cellH <= 0 {
		r.cellH = 18
	}
	r.windowW, r.windowH = cols*r.cellW, rows*r.cellH

	r.face = loadFace(r.cfg.FontFamily, float64(r.cellH)*0.8)
	r.surface = newEbitenSurface(r.windowW, r.windowH, r.face, r.cellW, r.cellH)

	ebiten.SetWindowSize(r.windowW, r.windowH)
	ebiten.SetWindowTitle("ttk")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	return r.Capabilities()
}

// Dimensions returns the grid's current size.
func (r *Renderer) Dimensions() (rows, cols int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.grd.Dimensions()
}

// Capabilities reports what this backend supports (spec §4.1). Unlike
// the terminal backend, the desktop backend owns real pixel input: it
// can report hover/move and double-click, and a real OS clipboard. It
// has no native menu-bar API in ebiten, so MenuBar is false — a genuine
// capability gap (SPEC_FULL.md §4.3), not a dropped dependency.
func (r *Renderer) Capabilities() ttk.Capabilities {
	return ttk.Capabilities{
		MouseKinds: []event.MouseKind{
			event.MouseDown, event.MouseUp, event.MouseDoubleClick,
			event.MouseMove, event.MouseDrag, event.MouseWheel,
		},
		Clipboard: true,
		MenuBar:   false,
		Image:     false,
	}
}

// SetMenuBar records the application's menu tree. ebiten has no native
// OS menu surface (SPEC_FULL.md §4.3), so, like the terminal backend,
// this is bookkeeping only: set_menu_bar's "otherwise no-op" rule (spec
// §4.1) applies here for a different reason than on a tty — the gap is
// the toolkit, not the medium.
func (r *Renderer) SetMenuBar(menu *event.Menu) { r.menu = menu }

// PutChar writes a glyph, delegating to grid.Grid's clipping and damage
// tracking. Locked against pollResize's concurrent grid.Resize, which
// runs on ebiten's own goroutine rather than the caller's.
func (r *Renderer) PutChar(row, col int, ch rune, pair uint16, attrs grid.Attr) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grd.PutChar(row, col, ch, pair, attrs)
}

// FillRect writes a background rectangle, clipped by the grid.
func (r *Renderer) FillRect(row, col, h, w int, pair uint16) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grd.FillRect(row, col, h, w, pair)
}

// Clear resets the whole grid to empty.
func (r *Renderer) Clear() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.grd.Clear()
}

// SetCaretPosition records where the caret should rest on the next
// refresh (spec §4.1 Phase 5). On the desktop backend the caret is
// realized through the text-input protocol's candidate-window
// positioning (see ime.go), not an OS text cursor primitive.
func (r *Renderer) SetCaretPosition(row, col int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caretRow, r.caretCol, r.caretSet = row, col, true
}

// Refresh runs the five-phase paint pipeline (spec §4.2) into the
// offscreen surface; Draw blits that surface to the window on ebiten's
// own schedule. It is idempotent when nothing is dirty, matching the
// terminal backend's contract.
//
// mu is released before touching the IME session: startIME and
// repositionIME take mu themselves to read caretPixel/face, and mu is
// not reentrant, so Refresh must not still be holding it when it calls
// into them.
func (r *Renderer) Refresh() error {
	r.mu.Lock()
	d := r.grd.Dirty()
	if !d.Empty() {
		paint(r.grd, r.cellW, r.cellH, r.surface, r.log)
		r.grd.ClearDirty()
	}
	rows, cols := r.grd.Dimensions()
	row, col, set := r.caretRow, r.caretCol, r.caretSet
	hasSession := r.ime != nil
	r.mu.Unlock()

	// Phase 5: caret, reapplied every refresh regardless of dirty state.
	if set && row >= 0 && row < rows && col >= 0 && col < cols {
		if hasSession {
			r.repositionIME(row, col)
		} else {
			r.startIME(row, col)
		}
	}
	return nil
}

// Shutdown tears down the backend's OS resources.
func (r *Renderer) Shutdown() { r.endIME() }

// Stop signals the ebiten run loop (RunEventLoop) and any blocked
// PollEvent call to return.
func (r *Renderer) Stop() {
	select {
	case <-r.quit:
	default:
		close(r.quit)
	}
}

// Layout reports the window's fixed pixel size (proportional fonts are
// out of scope, spec §1, so the window never needs a different layout
// per outside size).
func (r *Renderer) Layout(outsideWidth, outsideHeight int) (int, int) {
	return r.windowW, r.windowH
}

// Draw blits the offscreen surface Refresh last painted, then overlays
// any in-progress IME composition at the caret cell (spec §4.6: "overlaid
// at the caret position with a distinct visual style").
func (r *Renderer) Draw(screen *ebiten.Image) {
	r.mu.Lock()
	surf := r.surface
	r.mu.Unlock()
	if surf == nil {
		return
	}
	screen.DrawImage(surf.image, nil)
	r.drawIMEOverlay(screen)
}

func rgbToColor(c grid.RGB) color.RGBA {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
}
