// Package event defines the unified event model (key, char, mouse, system,
// menu), the key-code and modifier tables, the UTF-8 byte accumulator used
// by the terminal backend, and the key-to-character translation shared by
// both backends.
package event

// SpecialKey enumerates the non-printable keys both backends recognize.
// Values are stable across releases (spec §8 property 10) — never
// renumber an existing constant; append new ones at the end of their block.
type SpecialKey int

const (
	KeyUp       SpecialKey = 1000
	KeyDown     SpecialKey = 1001
	KeyLeft     SpecialKey = 1002
	KeyRight    SpecialKey = 1003
	KeyF1       SpecialKey = 1100
	KeyF2       SpecialKey = 1101
	KeyF3       SpecialKey = 1102
	KeyF4       SpecialKey = 1103
	KeyF5       SpecialKey = 1104
	KeyF6       SpecialKey = 1105
	KeyF7       SpecialKey = 1106
	KeyF8       SpecialKey = 1107
	KeyF9       SpecialKey = 1108
	KeyF10      SpecialKey = 1109
	KeyF11      SpecialKey = 1110
	KeyF12      SpecialKey = 1111
	KeyInsert   SpecialKey = 1200
	KeyDelete   SpecialKey = 1201
	KeyHome     SpecialKey = 1202
	KeyEnd      SpecialKey = 1203
	KeyPageUp   SpecialKey = 1204
	KeyPageDown SpecialKey = 1205
	KeyEnter    SpecialKey = 10
	KeyEscape   SpecialKey = 27
	KeyBackspace SpecialKey = 127
	KeyTab      SpecialKey = 9
)

// PhysicalKey identifies a physical key independent of any particular
// keyboard layout's glyph mapping — letters, digits, and eleven named
// symbols for the ANSI layout. Values start at a base disjoint from both
// ASCII (0-127) and every SpecialKey constant above (all >= 9, max 1205),
// so PhysicalKey, ASCII, and SpecialKey values never collide.
type PhysicalKey int

const physicalKeyBase PhysicalKey = 2000

const (
	PhysA PhysicalKey = physicalKeyBase + iota
	PhysB
	PhysC
	PhysD
	PhysE
	PhysF
	PhysG
	PhysH
	PhysI
	PhysJ
	PhysK
	PhysL
	PhysM
	PhysN
	PhysO
	PhysP
	PhysQ
	PhysR
	PhysS
	PhysT
	PhysU
	PhysV
	PhysW
	PhysX
	PhysY
	PhysZ
	Phys0
	Phys1
	Phys2
	Phys3
	Phys4
	Phys5
	Phys6
	Phys7
	Phys8
	Phys9
	// Eleven named symbols, ANSI layout.
	PhysMinus
	PhysEqual
	PhysLeftBracket
	PhysRightBracket
	PhysBackslash
	PhysSemicolon
	PhysQuote
	PhysComma
	PhysPeriod
	PhysSlash
	PhysGrave
)

// Layout selects which physical-to-glyph mapping a backend uses to decide
// PhysicalKey identities. Only "ANSI" is implemented; other tags are
// reserved by spec §6 and are accepted but behave as ANSI.
type Layout string

// ANSI is the default, and currently only implemented, keyboard layout.
const ANSI Layout = "ANSI"

// KeyKind tags which alternative of KeyCode is populated.
type KeyKind int

const (
	KindSpecial KeyKind = iota
	KindCodePoint
)

// KeyCode is the sum type `{Special(SpecialKey), CodePoint(u32)}` from
// spec §3. Exactly one of Special/CodePoint is meaningful, selected by Kind.
type KeyCode struct {
	Kind      KeyKind
	Special   SpecialKey
	CodePoint rune
}

// Of constructs a KeyCode carrying a SpecialKey.
func Of(k SpecialKey) KeyCode { return KeyCode{Kind: KindSpecial, Special: k} }

// OfRune constructs a KeyCode carrying a literal code point (used for
// plain ASCII/Unicode letter and digit keys that have no SpecialKey).
func OfRune(r rune) KeyCode { return KeyCode{Kind: KindCodePoint, CodePoint: r} }

// Modifiers is a bitmask of SHIFT, CONTROL, ALT, COMMAND.
type Modifiers uint8

const (
	ModShift Modifiers = 1 << iota
	ModControl
	ModAlt
	ModCommand
)

// IsCommand reports whether any of CONTROL, ALT, or COMMAND is set — the
// "command modifier" grouping from spec §3 (Shift alone never counts).
func (m Modifiers) IsCommand() bool {
	return m&(ModControl|ModAlt|ModCommand) != 0
}
