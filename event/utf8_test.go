package event

import (
	"math/rand"
	"testing"
	"unicode"
	"unicode/utf8"
)

// TestAccumulatorRoundTripsValidRunes is spec §8 property 5 (UTF-8
// completeness): every byte of a validly-encoded rune fed through the
// accumulator yields exactly that rune back, across 1, 2, 3, and 4-byte
// encodings.
func TestAccumulatorRoundTripsValidRunes(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	for i := 0; i < 500; i++ {
		var r rune
		for {
			r = rune(rng.Intn(0x110000))
			if r >= 0xD800 && r <= 0xDFFF {
				continue // surrogate, not a valid rune to encode
			}
			break
		}
		buf := make([]byte, utf8.UTFMax)
		n := utf8.EncodeRune(buf, r)

		var a Accumulator
		var got rune
		emitted := false
		for _, b := range buf[:n] {
			if cp, ok := a.AddByte(b); ok {
				got, emitted = cp, true
			}
		}
		if !emitted || got != r {
			t.Fatalf("iter %d: round-trip of %U failed: got %U, emitted=%v", i, r, got, emitted)
		}
	}
}

// TestAccumulatorRoundTripsViaEncodeRune checks EncodeRune/AddByte agree
// with each other for the ASCII-adjacent and multi-byte ranges used by the
// terminal backend's re-feed path.
func TestAccumulatorRoundTripsViaEncodeRune(t *testing.T) {
	for _, r := range []rune{'a', 'Z', '0', 'あ', '€', 0x1F600} {
		var a Accumulator
		var got rune
		for _, b := range EncodeRune(r) {
			if cp, ok := a.AddByte(b); ok {
				got = cp
			}
		}
		if got != r {
			t.Fatalf("EncodeRune/AddByte round trip of %U got %U", r, got)
		}
	}
}

// TestScenarioS1JapaneseInput is spec §8 scenario S1: feeding the raw bytes
// E3 81 82 produces a single CharEvent-worthy rune 'あ'.
func TestScenarioS1JapaneseInput(t *testing.T) {
	var a Accumulator
	bytes := []byte{0xE3, 0x81, 0x82}
	var got rune
	emitted := false
	for _, b := range bytes {
		if cp, ok := a.AddByte(b); ok {
			got, emitted = cp, true
		}
	}
	if !emitted || got != 'あ' {
		t.Fatalf("got %U emitted=%v, want 'あ'", got, emitted)
	}
}

// TestAccumulatorRobustness is spec §8 property 6 (UTF-8 robustness):
// arbitrary byte streams, including truncated and malformed sequences,
// never panic and only ever emit valid runes.
func TestAccumulatorRobustness(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	var a Accumulator
	for i := 0; i < 5000; i++ {
		b := byte(rng.Intn(256))
		cp, ok := a.AddByte(b)
		if ok {
			if cp > unicode.MaxRune || (cp >= 0xD800 && cp <= 0xDFFF) {
				t.Fatalf("iter %d: emitted invalid code point %U", i, cp)
			}
		}
	}
}

func TestAccumulatorRejectsOverlongEncoding(t *testing.T) {
	// C0 80 is the classic overlong encoding of NUL.
	var a Accumulator
	emitted := false
	for _, b := range []byte{0xC0, 0x80} {
		if _, ok := a.AddByte(b); ok {
			emitted = true
		}
	}
	if emitted {
		t.Fatalf("overlong encoding should never emit a code point")
	}
}

func TestAccumulatorRejectsSurrogates(t *testing.T) {
	// ED A0 80 encodes U+D800, a lone high surrogate.
	var a Accumulator
	emitted := false
	for _, b := range []byte{0xED, 0xA0, 0x80} {
		if _, ok := a.AddByte(b); ok {
			emitted = true
		}
	}
	if emitted {
		t.Fatalf("surrogate code point should never emit")
	}
}

func TestAccumulatorRecoversFromBrokenContinuation(t *testing.T) {
	var a Accumulator
	// Start a 3-byte sequence, then feed an ASCII byte instead of a
	// continuation byte: the broken sequence is abandoned and the ASCII
	// byte is classified fresh.
	if _, ok := a.AddByte(0xE0); ok {
		t.Fatalf("lead byte should never emit immediately")
	}
	cp, ok := a.AddByte('A')
	if !ok || cp != 'A' {
		t.Fatalf("got (%v, %v), want ('A', true)", cp, ok)
	}
}
