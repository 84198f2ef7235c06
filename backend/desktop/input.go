package desktop

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/shimomut/ttk"
	"github.com/shimomut/ttk/event"
)

// doubleClickWindow is the maximum gap between two button-downs at
// the same cell that counts as a double click, mirroring the
// fixed threshold most desktop toolkits use rather than reading an OS
// setting this pack has no example of querying.
const doubleClickWindow = 400 * time.Millisecond

// inputState tracks the previous tick's pointer/keyboard state so Update
// can derive edge-triggered events (down/up/drag transitions, double
// clicks) the way inpututil's JustPressed helpers do for a single frame,
// extended across frames for the double-click gesture.
type inputState struct {
	started time.Time

	lastButtonDown   map[ebiten.MouseButton]time.Time
	lastButtonCell   map[ebiten.MouseButton][2]int
	buttonWasDown    map[ebiten.MouseButton]bool

	lastWindowW, lastWindowH int
	lastCursorX, lastCursorY int
	focused bool
	closed  bool
}

func newInputState() inputState {
	return inputState{
		started:        time.Now(),
		lastButtonDown: make(map[ebiten.MouseButton]time.Time),
		lastButtonCell: make(map[ebiten.MouseButton][2]int),
		buttonWasDown:  make(map[ebiten.MouseButton]bool),
		focused:        true,
	}
}

func (r *Renderer) elapsed() time.Duration {
	return time.Since(r.input.started)
}

// SetEventCallback switches between callback-driven and polling mode
// (spec §4.1/§4.4). Passing nil returns to polling mode.
func (r *Renderer) SetEventCallback(cb *ttk.Callback) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.cb = cb
}

// PollEvent is the polling-mode entry point: it returns the next
// translated event or (nil, false) if timeoutMs elapses first. Unlike
// the terminal backend (which can drive tcell's channel from any
// goroutine), ebiten requires its run loop to own the calling thread, so
// the first PollEvent or RunEventLoop call starts it; PollEvent then
// simply reads off the same internal queue Update() feeds every engine
// tick (spec §4.4 polling mode: "the backend may buffer events
// internally").
func (r *Renderer) PollEvent(timeoutMs int) (event.Event, bool) {
	r.ensureRunning()
	if timeoutMs < 0 {
		select {
		case ev := <-r.events:
			return ev, true
		case <-r.quit:
			return nil, false
		}
	}
	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case ev := <-r.events:
		return ev, true
	case <-timer.C:
		return nil, false
	case <-r.quit:
		return nil, false
	}
}

// RunEventLoop drives callback-mode delivery until Stop is called (spec
// §4.1). It runs ebiten's own game loop on the calling goroutine, which
// must be the program's main goroutine (an ebiten/GLFW requirement, not
// a TTK one).
func (r *Renderer) RunEventLoop() error {
	r.mu.Lock()
	r.input = newInputState()
	r.mu.Unlock()
	err := ebiten.RunGame(r)
	if err == ebiten.Termination {
		return nil
	}
	return err
}

// ensureRunning starts ebiten's game loop exactly once, in a background
// goroutine, the first time polling-mode access needs ebiten's Update
// tick to actually fire. This is the one place this backend deviates
// from "ebiten owns the main goroutine" — acceptable for polling mode
// specifically because, unlike RunEventLoop, the caller here has no
// other thread driving the window.
func (r *Renderer) ensureRunning() {
	r.runOnce.Do(func() {
		r.mu.Lock()
		r.input = newInputState()
		r.mu.Unlock()
		go func() {
			if err := ebiten.RunGame(r); err != nil && err != ebiten.Termination {
				r.log.Errorf("desktop: ebiten run loop exited: %v", err)
			}
		}()
	})
}

// Update is ebiten.Game's per-tick hook: it is where this backend reads
// OS input state and translates it into TTK events, then either
// dispatches them through the installed Callback or queues them for
// PollEvent (spec §4.4's two mutually exclusive delivery modes).
func (r *Renderer) Update() error {
	select {
	case <-r.quit:
		return ebiten.Termination
	default:
	}

	r.pollIME()

	for _, ev := range r.pollKeys() {
		r.deliver(ev)
	}
	for _, ev := range r.pollMouse() {
		r.deliver(ev)
	}
	if ev, ok := r.pollResize(); ok {
		r.deliver(ev)
	}
	if ebiten.IsWindowBeingClosed() {
		r.deliver(event.SystemEvent{Kind: event.SystemClose})
	}
	return nil
}

func (r *Renderer) deliver(ev event.Event) {
	r.mu.Lock()
	cb := r.cb
	r.mu.Unlock()

	if cb == nil {
		select {
		case r.events <- ev:
		default:
			r.log.Warnf("desktop: event queue full, dropping %T", ev)
		}
		return
	}

	consumed := r.dispatchCallback(cb, ev)
	if !consumed {
		if ke, ok := ev.(event.KeyEvent); ok && ke.Char != nil && !ke.Mods.IsCommand() && cb.OnCharEvent != nil {
			r.dispatchCallback(cb, event.CharEvent{Char: *ke.Char, Timestamp: ke.Timestamp})
		}
	}
}

// dispatchCallback invokes the matching handler inside a fault barrier
// (spec §4.1, §7 "Handler fault"): a panicking handler is logged and the
// loop continues with the next event.
func (r *Renderer) dispatchCallback(cb *ttk.Callback, ev event.Event) (consumed bool) {
	defer func() {
		if p := recover(); p != nil {
			r.log.Warnf("event handler panic recovered: %v", p)
			consumed = false
		}
	}()
	switch e := ev.(type) {
	case event.KeyEvent:
		return cb.OnKeyEvent != nil && cb.OnKeyEvent(e)
	case event.CharEvent:
		return cb.OnCharEvent != nil && cb.OnCharEvent(e)
	case event.MouseEvent:
		return cb.OnMouseEvent != nil && cb.OnMouseEvent(e)
	case event.SystemEvent:
		return cb.OnSystemEvent != nil && cb.OnSystemEvent(e)
	case event.MenuEvent:
		return cb.OnMenuEvent != nil && cb.OnMenuEvent(e)
	}
	return false
}

func (r *Renderer) pollResize() (event.Event, bool) {
	w, h := ebiten.WindowSize()
	if w == r.input.lastWindowW && h == r.input.lastWindowH {
		return nil, false
	}
	r.input.lastWindowW, r.input.lastWindowH = w, h
	r.mu.Lock()
	cellW, cellH := r.cellW, r.cellH
	r.mu.Unlock()
	if cellW == 0 || cellH == 0 {
		return nil, false
	}
	cols, rows := w/cellW, h/cellH
	r.mu.Lock()
	r.grd.Resize(rows, cols)
	r.mu.Unlock()
	return event.SystemEvent{Kind: event.SystemResize, Rows: rows, Cols: cols}, true
}

func (r *Renderer) pollKeys() []event.Event {
	var out []event.Event
	mods := currentModifiers()
	for _, k := range inpututil.AppendJustPressedKeys(nil) {
		ts := r.elapsed()
		if special, ok := specialKeys[k]; ok {
			out = append(out, event.KeyEvent{Key: event.Of(special), Mods: mods, Timestamp: ts})
			continue
		}
		phys, hasPhys := physicalKeys[k]
		ke := event.KeyEvent{Mods: mods, Timestamp: ts}
		if hasPhys {
			ke.Physical = phys
		}
		if r, ok := runeForKey[k]; ok {
			cp := r
			if mods&event.ModShift != 0 {
				cp = shiftedRune(r)
			}
			ke.Key = event.OfRune(cp)
			if ch, translatable := event.Translate(ke.Key, mods); translatable {
				ke.Char = &ch
			}
		} else {
			ke.Key = event.KeyCode{} // no printable mapping; Physical still identifies the key
		}
		out = append(out, ke)
	}
	return out
}

func currentModifiers() event.Modifiers {
	var m event.Modifiers
	if ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		m |= event.ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		m |= event.ModControl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		m |= event.ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		m |= event.ModCommand
	}
	return m
}

func (r *Renderer) pollMouse() []event.Event {
	var out []event.Event
	r.mu.Lock()
	cellW, cellH := r.cellW, r.cellH
	r.mu.Unlock()
	if cellW == 0 || cellH == 0 {
		return nil
	}
	x, y := ebiten.CursorPosition()
	mods := currentModifiers()
	ts := r.elapsed()

	for _, btn := range []ebiten.MouseButton{ebiten.MouseButtonLeft, ebiten.MouseButtonMiddle, ebiten.MouseButtonRight} {
		down := ebiten.IsMouseButtonPressed(btn)
		was := r.input.buttonWasDown[btn]
		cellKey := [2]int{x / cellW, y / cellH}
		switch {
		case down && !was:
			kind := event.MouseDown
			if last, ok := r.input.lastButtonDown[btn]; ok {
				if ts-last <= doubleClickWindow && r.input.lastButtonCell[btn] == cellKey {
					kind = event.MouseDoubleClick
				}
			}
			r.input.lastButtonDown[btn] = ts
			r.input.lastButtonCell[btn] = cellKey
			out = append(out, event.NewMouseEvent(kind, x, y, cellW, cellH, translateButton(btn), mods, ts))
		case down && was:
			out = append(out, event.NewMouseEvent(event.MouseDrag, x, y, cellW, cellH, translateButton(btn), mods, ts))
		case !down && was:
			out = append(out, event.NewMouseEvent(event.MouseUp, x, y, cellW, cellH, translateButton(btn), mods, ts))
		}
		r.input.buttonWasDown[btn] = down
	}

	if !r.anyButtonDown() && (x != r.input.lastCursorX || y != r.input.lastCursorY) {
		out = append(out, event.NewMouseEvent(event.MouseMove, x, y, cellW, cellH, event.MouseNone, mods, ts))
	}
	r.input.lastCursorX, r.input.lastCursorY = x, y

	if wx, wy := ebiten.Wheel(); wx != 0 || wy != 0 {
		me := event.NewMouseEvent(event.MouseWheel, x, y, cellW, cellH, event.MouseNone, mods, ts)
		me.WheelDX, me.WheelDY = wx, wy
		out = append(out, me)
	}

	return out
}

func (r *Renderer) anyButtonDown() bool {
	for _, down := range r.input.buttonWasDown {
		if down {
			return true
		}
	}
	return false
}

func translateButton(b ebiten.MouseButton) event.MouseButton {
	switch b {
	case ebiten.MouseButtonLeft:
		return event.MouseLeft
	case ebiten.MouseButtonMiddle:
		return event.MouseMiddle
	case ebiten.MouseButtonRight:
		return event.MouseRight
	default:
		return event.MouseNone
	}
}
