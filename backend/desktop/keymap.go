package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/shimomut/ttk/event"
)

// specialKeys maps ebiten's named keys to our stable SpecialKey values
// (spec §3/§8 property 10), mirroring backend/terminal/keymap.go's tcell
// table for the same constants.
var specialKeys = map[ebiten.Key]event.SpecialKey{
	ebiten.KeyArrowUp:    event.KeyUp,
	ebiten.KeyArrowDown:  event.KeyDown,
	ebiten.KeyArrowLeft:  event.KeyLeft,
	ebiten.KeyArrowRight: event.KeyRight,
	ebiten.KeyF1:         event.KeyF1,
	ebiten.KeyF2:         event.KeyF2,
	ebiten.KeyF3:         event.KeyF3,
	ebiten.KeyF4:         event.KeyF4,
	ebiten.KeyF5:         event.KeyF5,
	ebiten.KeyF6:         event.KeyF6,
	ebiten.KeyF7:         event.KeyF7,
	ebiten.KeyF8:         event.KeyF8,
	ebiten.KeyF9:         event.KeyF9,
	ebiten.KeyF10:        event.KeyF10,
	ebiten.KeyF11:        event.KeyF11,
	ebiten.KeyF12:        event.KeyF12,
	ebiten.KeyInsert:     event.KeyInsert,
	ebiten.KeyDelete:     event.KeyDelete,
	ebiten.KeyHome:       event.KeyHome,
	ebiten.KeyEnd:        event.KeyEnd,
	ebiten.KeyPageUp:     event.KeyPageUp,
	ebiten.KeyPageDown:   event.KeyPageDown,
	ebiten.KeyEnter:      event.KeyEnter,
	ebiten.KeyEscape:     event.KeyEscape,
	ebiten.KeyBackspace:  event.KeyBackspace,
	ebiten.KeyTab:        event.KeyTab,
}

// physicalKeys maps ebiten's layout-independent key identities to our
// PhysicalKey enumeration for the ANSI layout (spec §3: "a distinct
// enumeration holds physical-key identities ... disjoint from both ASCII
// and SpecialKey values"). Other layout tags are accepted (spec §6) but
// behave as ANSI. backend/terminal reports no PhysicalKey at all.
var physicalKeys = map[ebiten.Key]event.PhysicalKey{
	ebiten.KeyA: event.PhysA, ebiten.KeyB: event.PhysB, ebiten.KeyC: event.PhysC,
	ebiten.KeyD: event.PhysD, ebiten.KeyE: event.PhysE, ebiten.KeyF: event.PhysF,
	ebiten.KeyG: event.PhysG, ebiten.KeyH: event.PhysH, ebiten.KeyI: event.PhysI,
	ebiten.KeyJ: event.PhysJ, ebiten.KeyK: event.PhysK, ebiten.KeyL: event.PhysL,
	ebiten.KeyM: event.PhysM, ebiten.KeyN: event.PhysN, ebiten.KeyO: event.PhysO,
	ebiten.KeyP: event.PhysP, ebiten.KeyQ: event.PhysQ, ebiten.KeyR: event.PhysR,
	ebiten.KeyS: event.PhysS, ebiten.KeyT: event.PhysT, ebiten.KeyU: event.PhysU,
	ebiten.KeyV: event.PhysV, ebiten.KeyW: event.PhysW, ebiten.KeyX: event.PhysX,
	ebiten.KeyY: event.PhysY, ebiten.KeyZ: event.PhysZ,
	ebiten.KeyDigit0: event.Phys0, ebiten.KeyDigit1: event.Phys1, ebiten.KeyDigit2: event.Phys2,
	ebiten.KeyDigit3: event.Phys3, ebiten.KeyDigit4: event.Phys4, ebiten.KeyDigit5: event.Phys5,
	ebiten.KeyDigit6: event.Phys6, ebiten.KeyDigit7: event.Phys7, ebiten.KeyDigit8: event.Phys8,
	ebiten.KeyDigit9: event.Phys9,
	ebiten.KeyMinus:        event.PhysMinus,
	ebiten.KeyEqual:        event.PhysEqual,
	ebiten.KeyBracketLeft:  event.PhysLeftBracket,
	ebiten.KeyBracketRight: event.PhysRightBracket,
	ebiten.KeyBackslash:    event.PhysBackslash,
	ebiten.KeySemicolon:    event.PhysSemicolon,
	ebiten.KeyQuote:        event.PhysQuote,
	ebiten.KeyComma:        event.PhysComma,
	ebiten.KeyPeriod:       event.PhysPeriod,
	ebiten.KeySlash:        event.PhysSlash,
	ebiten.KeyBackquote:    event.PhysGrave,
}

// runeForKey gives the unshifted ASCII glyph each physical key produces
// on the ANSI layout, the input event.Translate needs to decide whether
// a key is printable. ebiten.AppendInputChars is the officially
// recommended source of already-shifted text, but TTK keeps key-to-char
// translation backend-agnostic in the event package (spec §4.4), so this
// table feeds that shared logic instead of bypassing it for the desktop
// backend only.
var runeForKey = map[ebiten.Key]rune{
	ebiten.KeyA: 'a', ebiten.KeyB: 'b', ebiten.KeyC: 'c', ebiten.KeyD: 'd',
	ebiten.KeyE: 'e', ebiten.KeyF: 'f', ebiten.KeyG: 'g', ebiten.KeyH: 'h',
	ebiten.KeyI: 'i', ebiten.KeyJ: 'j', ebiten.KeyK: 'k', ebiten.KeyL: 'l',
	ebiten.KeyM: 'm', ebiten.KeyN: 'n', ebiten.KeyO: 'o', ebiten.KeyP: 'p',
	ebiten.KeyQ: 'q', ebiten.KeyR: 'r', ebiten.KeyS: 's', ebiten.KeyT: 't',
	ebiten.KeyU: 'u', ebiten.KeyV: 'v', ebiten.KeyW: 'w', ebiten.KeyX: 'x',
	ebiten.KeyY: 'y', ebiten.KeyZ: 'z',
	ebiten.KeyDigit0: '0', ebiten.KeyDigit1: '1', ebiten.KeyDigit2: '2',
	ebiten.KeyDigit3: '3', ebiten.KeyDigit4: '4', ebiten.KeyDigit5: '5',
	ebiten.KeyDigit6: '6', ebiten.KeyDigit7: '7', ebiten.KeyDigit8: '8',
	ebiten.KeyDigit9: '9',
	ebiten.KeySpace:        ' ',
	ebiten.KeyMinus:        '-',
	ebiten.KeyEqual:        '=',
	ebiten.KeyBracketLeft:  '[',
	ebiten.KeyBracketRight: ']',
	ebiten.KeyBackslash:    '\\',
	ebiten.KeySemicolon:    ';',
	ebiten.KeyQuote:        '\'',
	ebiten.KeyComma:        ',',
	ebiten.KeyPeriod:       '.',
	ebiten.KeySlash:        '/',
	ebiten.KeyBackquote:    '`',
}

var shiftedDigit = map[rune]rune{
	'1': '!', '2': '@', '3': '#', '4': '$', '5': '%',
	'6': '^', '7': '&', '8': '*', '9': '(', '0': ')',
}

var shiftedSymbol = map[rune]rune{
	'-': '_', '=': '+', '[': '{', ']': '}', '\\': '|',
	';': ':', '\'': '"', ',': '<', '.': '>', '/': '?', '`': '~',
}

// shiftedRune applies SHIFT the way the ANSI layout does: letters
// uppercase, digits and the eleven named symbols map to their shifted
// glyph.
func shiftedRune(r rune) rune {
	if r >= 'a' && r <= 'z' {
		return r - ('a' - 'A')
	}
	if s, ok := shiftedDigit[r]; ok {
		return s
	}
	if s, ok := shiftedSymbol[r]; ok {
		return s
	}
	return r
}
