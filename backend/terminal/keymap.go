package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/shimomut/ttk/event"
)

// specialKeys maps tcell's named keys to our stable SpecialKey values
// (spec §3/§8 property 10).
var specialKeys = map[tcell.Key]event.SpecialKey{
	tcell.KeyUp:        event.KeyUp,
	tcell.KeyDown:      event.KeyDown,
	tcell.KeyLeft:      event.KeyLeft,
	tcell.KeyRight:     event.KeyRight,
	tcell.KeyF1:        event.KeyF1,
	tcell.KeyF2:        event.KeyF2,
	tcell.KeyF3:        event.KeyF3,
	tcell.KeyF4:        event.KeyF4,
	tcell.KeyF5:        event.KeyF5,
	tcell.KeyF6:        event.KeyF6,
	tcell.KeyF7:        event.KeyF7,
	tcell.KeyF8:        event.KeyF8,
	tcell.KeyF9:        event.KeyF9,
	tcell.KeyF10:       event.KeyF10,
	tcell.KeyF11:       event.KeyF11,
	tcell.KeyF12:       event.KeyF12,
	tcell.KeyInsert:    event.KeyInsert,
	tcell.KeyDelete:    event.KeyDelete,
	tcell.KeyHome:      event.KeyHome,
	tcell.KeyEnd:       event.KeyEnd,
	tcell.KeyPgUp:      event.KeyPageUp,
	tcell.KeyPgDn:      event.KeyPageDown,
	tcell.KeyEnter:     event.KeyEnter,
	tcell.KeyEscape:    event.KeyEscape,
	tcell.KeyBackspace:  event.KeyBackspace,
	tcell.KeyBackspace2: event.KeyBackspace,
	tcell.KeyTab:       event.KeyTab,
}

func translateModifiers(m tcell.ModMask) event.Modifiers {
	var mods event.Modifiers
	if m&tcell.ModShift != 0 {
		mods |= event.ModShift
	}
	if m&tcell.ModCtrl != 0 {
		mods |= event.ModControl
	}
	if m&tcell.ModAlt != 0 {
		mods |= event.ModAlt
	}
	if m&tcell.ModMeta != 0 {
		mods |= event.ModCommand
	}
	return mods
}

func translateButton(b tcell.ButtonMask) event.MouseButton {
	switch {
	case b&tcell.Button1 != 0:
		return event.MouseLeft
	case b&tcell.Button2 != 0:
		return event.MouseMiddle
	case b&tcell.Button3 != 0:
		return event.MouseRight
	default:
		return event.MouseNone
	}
}
