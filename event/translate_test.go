package event

import (
	"math/rand"
	"testing"
)

// TestTranslateSuppressedUnderCommandModifier is spec §8 property 7: no
// CharEvent-worthy translation is ever produced while CONTROL, ALT, or
// COMMAND is held, even for an otherwise-printable code point.
func TestTranslateSuppressedUnderCommandModifier(t *testing.T) {
	commandMods := []Modifiers{ModControl, ModAlt, ModCommand, ModControl | ModShift}
	for _, mods := range commandMods {
		if _, ok := Translate(OfRune('a'), mods); ok {
			t.Fatalf("Translate under mods=%b should suppress, did not", mods)
		}
	}
}

// TestScenarioS2CommandKeyNotTranslated is spec §8 scenario S2: Ctrl+C
// produces no CharEvent.
func TestScenarioS2CommandKeyNotTranslated(t *testing.T) {
	if _, ok := Translate(OfRune('c'), ModControl); ok {
		t.Fatalf("Ctrl+C must not translate to a CharEvent")
	}
}

func TestTranslateAllowsShiftAlone(t *testing.T) {
	r, ok := Translate(OfRune('A'), ModShift)
	if !ok || r != 'A' {
		t.Fatalf("Translate(shift+'A') = (%v, %v), want ('A', true)", r, ok)
	}
}

func TestTranslateRejectsSpecialKeys(t *testing.T) {
	if _, ok := Translate(Of(KeyEnter), 0); ok {
		t.Fatalf("a SpecialKey must never translate to a char")
	}
}

func TestTranslateRejectsControlCodePoints(t *testing.T) {
	if _, ok := Translate(OfRune(0x01), 0); ok {
		t.Fatalf("a control code point must never translate to a char")
	}
}

func TestTranslatePrintableCategoryRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	printable := []rune{'a', 'Z', '0', '9', ' ', '.', '+', '€', 'あ'}
	for i := 0; i < 100; i++ {
		r := printable[rng.Intn(len(printable))]
		got, ok := Translate(OfRune(r), 0)
		if !ok || got != r {
			t.Fatalf("iter %d: Translate(%q) = (%q, %v), want (%q, true)", i, r, got, ok, r)
		}
	}
}
