package event

import "testing"

// TestSpecialKeyValuesAreStable pins the exact integer values spec §8
// property 10 requires — these must never change once released.
func TestSpecialKeyValuesAreStable(t *testing.T) {
	want := map[SpecialKey]int{
		KeyUp:        1000,
		KeyDown:      1001,
		KeyLeft:      1002,
		KeyRight:     1003,
		KeyF1:        1100,
		KeyF2:        1101,
		KeyF3:        1102,
		KeyF4:        1103,
		KeyF5:        1104,
		KeyF6:        1105,
		KeyF7:        1106,
		KeyF8:        1107,
		KeyF9:        1108,
		KeyF10:       1109,
		KeyF11:       1110,
		KeyF12:       1111,
		KeyInsert:    1200,
		KeyDelete:    1201,
		KeyHome:      1202,
		KeyEnd:       1203,
		KeyPageUp:    1204,
		KeyPageDown:  1205,
		KeyEnter:     10,
		KeyEscape:    27,
		KeyBackspace: 127,
		KeyTab:       9,
	}
	for k, v := range want {
		if int(k) != v {
			t.Fatalf("SpecialKey constant = %d, want %d", int(k), v)
		}
	}
}

func TestPhysicalKeyDisjointFromASCIIAndSpecialKey(t *testing.T) {
	physical := []PhysicalKey{
		PhysA, PhysZ, Phys0, Phys9, PhysMinus, PhysEqual, PhysLeftBracket,
		PhysRightBracket, PhysBackslash, PhysSemicolon, PhysQuote, PhysComma,
		PhysPeriod, PhysSlash, PhysGrave,
	}
	for _, p := range physical {
		if p >= 0 && p <= 127 {
			t.Fatalf("PhysicalKey %d collides with ASCII range", p)
		}
		if int(p) >= 9 && int(p) <= 1205 {
			t.Fatalf("PhysicalKey %d collides with SpecialKey range", p)
		}
	}
}

func TestModifiersIsCommand(t *testing.T) {
	cases := []struct {
		mods Modifiers
		want bool
	}{
		{0, false},
		{ModShift, false},
		{ModControl, true},
		{ModAlt, true},
		{ModCommand, true},
		{ModShift | ModControl, true},
	}
	for _, c := range cases {
		if got := c.mods.IsCommand(); got != c.want {
			t.Fatalf("Modifiers(%b).IsCommand() = %v, want %v", c.mods, got, c.want)
		}
	}
}

func TestKeyCodeConstructors(t *testing.T) {
	k := Of(KeyEscape)
	if k.Kind != KindSpecial || k.Special != KeyEscape {
		t.Fatalf("Of(KeyEscape) = %+v", k)
	}
	r := OfRune('a')
	if r.Kind != KindCodePoint || r.CodePoint != 'a' {
		t.Fatalf("OfRune('a') = %+v", r)
	}
}
