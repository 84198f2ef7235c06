package event

import "unicode"

// Translate implements the key-to-character translation contract from spec
// §4.4: a KeyCode carrying a printable code point (Unicode category L, N,
// P, S, or Zs) translates to a CharEvent-worthy rune, preserving the case
// tcell/ebiten already applied for SHIFT — but never while any command
// modifier (CONTROL, ALT, or COMMAND) is held (spec §8 property 7). Shift
// alone never suppresses translation.
func Translate(key KeyCode, mods Modifiers) (rune, bool) {
	if mods.IsCommand() {
		return 0, false
	}
	if key.Kind != KindCodePoint {
		return 0, false
	}
	r := key.CodePoint
	if !isPrintableCategory(r) {
		return 0, false
	}
	return r, true
}

// isPrintableCategory reports whether r belongs to Unicode category L, N,
// P, S, or Zs — excluding every C (control) category, per spec §4.4.
func isPrintableCategory(r rune) bool {
	if unicode.IsControl(r) {
		return false
	}
	switch {
	case unicode.IsLetter(r):
		return true
	case unicode.IsNumber(r):
		return true
	case unicode.IsPunct(r):
		return true
	case unicode.IsSymbol(r):
		return true
	case unicode.Is(unicode.Zs, r):
		return true
	default:
		return false
	}
}
