package terminal

import (
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/shimomut/ttk"
	"github.com/shimomut/ttk/event"
)

// SetEventCallback switches between callback-driven and polling mode
// (spec §4.1/§4.4). Passing nil returns to polling mode.
func (r *Renderer) SetEventCallback(cb *ttk.Callback) {
	r.cb = cb
}

// PollEvent is the polling-mode entry point: it returns the next
// translated event, or (nil, false) if timeoutMs elapses first. A
// negative timeoutMs blocks indefinitely.
func (r *Renderer) PollEvent(timeoutMs int) (event.Event, bool) {
	r.ensureEventChannel()

	if timeoutMs < 0 {
		select {
		case tev, ok := <-r.tcellEvents:
			if !ok {
				return nil, false
			}
			return r.translate(tev), true
		case <-r.quit:
			return nil, false
		}
	}

	timer := time.NewTimer(time.Duration(timeoutMs) * time.Millisecond)
	defer timer.Stop()
	select {
	case tev, ok := <-r.tcellEvents:
		if !ok {
			return nil, false
		}
		return r.translate(tev), true
	case <-timer.C:
		return nil, false
	case <-r.quit:
		return nil, false
	}
}

func (r *Renderer) ensureEventChannel() {
	r.chanOnce.Do(func() {
		r.tcellEvents = make(chan tcell.Event)
		go r.screen.ChannelEvents(r.tcellEvents, r.quit)
	})
}

// RunEventLoop drives callback-mode delivery until Stop is called (spec
// §4.1 "run_event_loop"). Each translated event is offered to the
// installed callback inside a fault barrier: a handler panic is logged
// and the loop continues with the next event (spec §4.1, §7 "Handler
// fault").
func (r *Renderer) RunEventLoop() error {
	r.ensureEventChannel()
	for {
		select {
		case <-r.quit:
			return nil
		case tev, ok := <-r.tcellEvents:
			if !ok {
				return nil
			}
			r.dispatch(r.translate(tev))
		}
	}
}

func (r *Renderer) dispatch(ev event.Event) {
	if ev == nil || r.cb == nil {
		return
	}
	defer func() {
		if p := recover(); p != nil {
			r.log.Warnf("event handler panic recovered: %v", p)
		}
	}()

	switch e := ev.(type) {
	case event.KeyEvent:
		consumed := r.cb.OnKeyEvent != nil && r.cb.OnKeyEvent(e)
		if !consumed && e.Char != nil && !e.Mods.IsCommand() && r.cb.OnCharEvent != nil {
			r.cb.OnCharEvent(event.CharEvent{Char: *e.Char, Timestamp: e.Timestamp})
		}
	case event.MouseEvent:
		if r.cb.OnMouseEvent != nil {
			r.cb.OnMouseEvent(e)
		}
	case event.SystemEvent:
		if e.Kind == event.SystemResize {
			r.grid.Resize(e.Rows, e.Cols)
		}
		if r.cb.OnSystemEvent != nil {
			r.cb.OnSystemEvent(e)
		}
	case event.MenuEvent:
		if r.cb.OnMenuEvent != nil {
			r.cb.OnMenuEvent(e)
		}
	}
}

// translate converts one tcell.Event into our event.Event model. It
// returns nil for events this backend chooses not to surface.
func (r *Renderer) translate(tev tcell.Event) event.Event {
	switch e := tev.(type) {
	case *tcell.EventKey:
		return r.translateKey(e)
	case *tcell.EventMouse:
		return r.translateMouse(e)
	case *tcell.EventResize:
		cols, rows := e.Size()
		return event.SystemEvent{Kind: event.SystemResize, Rows: rows, Cols: cols}
	default:
		return nil
	}
}

func (r *Renderer) translateKey(e *tcell.EventKey) event.KeyEvent {
	mods := translateModifiers(e.Modifiers())
	ts := r.nextTimestamp()

	if special, ok := specialKeys[e.Key()]; ok {
		return event.KeyEvent{Key: event.Of(special), Mods: mods, Timestamp: ts}
	}

	// A plain rune key: tcell has already decoded it, but we still drive
	// it through the accumulator byte-by-byte so that component stays a
	// real, exercised dependency rather than an orphaned unit (see
	// SPEC_FULL.md §4.4).
	rn := e.Rune()
	key := event.OfRune(rn)
	ke := event.KeyEvent{Key: key, Mods: mods, Timestamp: ts}

	var accumulated rune
	var ok bool
	for _, b := range event.EncodeRune(rn) {
		if cp, done := r.accum.AddByte(b); done {
			accumulated, ok = cp, true
		}
	}
	if ok {
		if ch, translatable := event.Translate(event.OfRune(accumulated), mods); translatable {
			ke.Char = &ch
		}
	}
	return ke
}

func (r *Renderer) translateMouse(e *tcell.EventMouse) event.MouseEvent {
	col, row := e.Position()
	kind := event.MouseMove
	buttons := e.Buttons()
	switch {
	case buttons&tcell.WheelUp != 0 || buttons&tcell.WheelDown != 0:
		kind = event.MouseWheel
	case buttons&(tcell.Button1|tcell.Button2|tcell.Button3) != 0:
		if r.lastButtons == 0 {
			kind = event.MouseDown
		} else {
			kind = event.MouseDrag
		}
	case r.lastButtons != 0:
		kind = event.MouseUp
	}
	r.lastButtons = buttons

	var wheelDY float64
	if buttons&tcell.WheelUp != 0 {
		wheelDY = 1
	} else if buttons&tcell.WheelDown != 0 {
		wheelDY = -1
	}

	return event.MouseEvent{
		Kind:     kind,
		Row:      row,
		Col:      col,
		SubCellX: 0.5, // terminal backend has no sub-cell resolution (spec §4.4)
		SubCellY: 0.5,
		Button:   translateButton(buttons),
		WheelDY:  wheelDY,
		Mods:     translateModifiers(e.Modifiers()),
		Timestamp: r.nextTimestamp(),
	}
}

func (r *Renderer) nextTimestamp() time.Duration {
	r.lastMouseTS++
	return time.Duration(r.lastMouseTS) * time.Millisecond
}
