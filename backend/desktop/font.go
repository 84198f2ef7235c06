package desktop

import (
	"bytes"

	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/gofont/gomono"
)

// loadFace resolves the configured font family to a fixed-size text/v2
// face, grounded on
// other_examples/b8336135_jamesread-TheDarkStation__pkg-game-renderer-ebiten-types.go.go's
// own cached GoTextFace construction from a GoTextFaceSource. Proportional
// fonts are out of scope (spec §1); TTK only ever measures and renders at
// one fixed size per cell, so no per-rune width table is needed beyond
// go-runewidth's East-Asian wide-glyph detection (used in paint.go).
//
// family is accepted for API completeness (spec §6 Config.FontFamily) but
// not resolved against installed system fonts — bundling an embedded
// monospace face keeps the backend's output reproducible across machines
// without a font-discovery dependency the example pack doesn't carry.
func loadFace(family string, sizePx float64) *text.GoTextFace {
	src, err := text.NewGoTextFaceSource(bytes.NewReader(gomono.TTF))
	if err != nil {
		panic("desktop: failed to parse bundled font: " + err.Error())
	}
	return &text.GoTextFace{
		Source: src,
		Size:   sizePx,
	}
}
