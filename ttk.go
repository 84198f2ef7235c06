// Package ttk is the public entry point of the toolkit: the Renderer
// trait every backend implements, the capability set a backend
// advertises, and the plain-record Config consumed at construction.
package ttk

import (
	"github.com/shimomut/ttk/event"
	"github.com/shimomut/ttk/grid"
)

// Capabilities is the neutral-value capability set a backend advertises
// (spec §4.1: "capabilities() — returns set indicating: mouse kinds
// supported, clipboard supported, menu-bar supported, image (always
// none)").
type Capabilities struct {
	MouseKinds []event.MouseKind
	Clipboard  bool
	MenuBar    bool
	Image      bool // always false; reserved API shape only, per spec §1 non-goals
}

// SupportsMouseKind reports whether k is in the advertised set.
func (c Capabilities) SupportsMouseKind(k event.MouseKind) bool {
	for _, got := range c.MouseKinds {
		if got == k {
			return true
		}
	}
	return false
}

// Callback is the set of handlers an application installs to run in
// callback mode (spec §4.4). Each handler returns whether it consumed
// the event; a nil handler is treated as "not consumed".
type Callback struct {
	OnKeyEvent    func(event.KeyEvent) bool
	OnCharEvent   func(event.CharEvent) bool
	OnMouseEvent  func(event.MouseEvent) bool
	OnSystemEvent func(event.SystemEvent) bool
	OnMenuEvent   func(event.MenuEvent) bool
}

// Renderer is the public trait from spec §4.1 — the complete surface an
// application needs to reproduce the file-manager use case. Both
// backend/terminal and backend/desktop implement it.
type Renderer interface {
	Init(rows, cols int, pairs *grid.PairTable) Capabilities
	Dimensions() (rows, cols int)

	PutChar(r, c int, ch rune, pair uint16, attrs grid.Attr)
	FillRect(r, c, h, w int, pair uint16)
	Clear()
	Refresh() error

	SetCaretPosition(r, c int)

	SetEventCallback(cb *Callback)
	PollEvent(timeoutMs int) (event.Event, bool)
	RunEventLoop() error
	Stop()

	Capabilities() Capabilities

	ClipboardGet() string
	ClipboardSet(text string) bool
	SetMenuBar(menu *event.Menu)

	Shutdown()
}

// Config is the plain-record configuration the core consumes (spec §6).
// There is no file parsing or environment lookup here — reading actual
// config files is a file-manager-application concern, out of scope (per
// spec.md §1 and this expansion's Non-goals).
type Config struct {
	// Rendering
	CellWidthPx   int
	CellHeightPx  int
	FontFamily    string
	ColorPairs    map[uint16]grid.ColorPair
	MaxColorPairs int

	// Logging
	LogPaneEnabled          bool
	StreamOutputEnabled     *bool
	RemoteMonitoringEnabled bool
	RemotePort              *uint16
	DefaultLevel            string
	MaxLogMessages          int

	// Input
	KeyboardLayout event.Layout
}

// DefaultConfig returns a zero-value-safe Config producing sane defaults
// (spec §4.1 "a zero-value Config must produce sane defaults").
func DefaultConfig() Config {
	return Config{
		CellWidthPx:    9,
		CellHeightPx:   18,
		FontFamily:     "monospace",
		MaxColorPairs:  grid.MinPairTableSize,
		DefaultLevel:   "info",
		MaxLogMessages: 500,
		KeyboardLayout: event.ANSI,
	}
}

// WithDefaults fills in zero fields of cfg from DefaultConfig, so callers
// can pass a partially-populated Config (or the zero value) and still get
// a usable one.
func (cfg Config) WithDefaults() Config {
	def := DefaultConfig()
	if cfg.CellWidthPx == 0 {
		cfg.CellWidthPx = def.CellWidthPx
	}
	if cfg.CellHeightPx == 0 {
		cfg.CellHeightPx = def.CellHeightPx
	}
	if cfg.FontFamily == "" {
		cfg.FontFamily = def.FontFamily
	}
	if cfg.MaxColorPairs == 0 {
		cfg.MaxColorPairs = def.MaxColorPairs
	}
	if cfg.DefaultLevel == "" {
		cfg.DefaultLevel = def.DefaultLevel
	}
	if cfg.MaxLogMessages == 0 {
		cfg.MaxLogMessages = def.MaxLogMessages
	}
	if cfg.KeyboardLayout == "" {
		cfg.KeyboardLayout = def.KeyboardLayout
	}
	return cfg
}
