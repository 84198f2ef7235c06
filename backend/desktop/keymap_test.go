package desktop

import "testing"

func TestSpecialKeysAndPhysicalKeysAreDisjointMappingDomains(t *testing.T) {
	for k := range specialKeys {
		if _, ok := physicalKeys[k]; ok {
			t.Errorf("ebiten key %v is mapped in both specialKeys and physicalKeys", k)
		}
	}
}

// TestPhysicalKeysCoversEveryRuneForKeyEntry checks that every letter,
// digit, or symbol key that produces a rune also carries a PhysicalKey
// identity, except Space, which has no PhysicalKey slot (spec §3's
// physical-key set names only letters, digits, and the eleven ANSI
// symbols).
func TestPhysicalKeysCoversEveryRuneForKeyEntry(t *testing.T) {
	for k, r := range runeForKey {
		if r == ' ' {
			continue
		}
		if _, ok := physicalKeys[k]; !ok {
			t.Errorf("ebiten key %v produces rune %q but has no PhysicalKey mapping", k, r)
		}
	}
}

func TestShiftedRuneLetters(t *testing.T) {
	for lower := 'a'; lower <= 'z'; lower++ {
		got := shiftedRune(lower)
		want := lower - ('a' - 'A')
		if got != want {
			t.Errorf("shiftedRune(%q) = %q, want %q", lower, got, want)
		}
	}
}

func TestShiftedRuneDigitsAndSymbols(t *testing.T) {
	cases := map[rune]rune{
		'1': '!', '0': ')', '-': '_', '=': '+',
		'[': '{', ']': '}', '\\': '|', ';': ':',
		'\'': '"', ',': '<', '.': '>', '/': '?', '`': '~',
	}
	for in, want := range cases {
		if got := shiftedRune(in); got != want {
			t.Errorf("shiftedRune(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestShiftedRunePassesThroughUnmappedRunes(t *testing.T) {
	if got := shiftedRune('!'); got != '!' {
		t.Errorf("shiftedRune('!') = %q, want '!' unchanged", got)
	}
}
