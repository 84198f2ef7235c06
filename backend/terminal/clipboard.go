package terminal

import (
	"encoding/base64"
	"fmt"
	"os"
)

// ClipboardSet writes text to the system clipboard via the OSC 52
// escape sequence, adapted from cansyan-co/ui/terminal.go's
// Screen.SetClipboard (that version wrote the text unescaped; OSC 52
// requires base64, so this version encodes it). tcell's Screen
// interface doesn't expose a raw tty writer, so — like the teacher's
// own hand-rolled terminal did — this writes straight to stdout.
func (r *Renderer) ClipboardSet(text string) bool {
	encoded := base64.StdEncoding.EncodeToString([]byte(text))
	_, err := fmt.Fprintf(os.Stdout, "\033]52;c;%s\007", encoded)
	return err == nil
}

// ClipboardGet always returns the neutral empty value: a terminal
// cannot read the system clipboard back over a tty without a
// round-trip OSC 52 query most terminal emulators don't answer, so this
// backend doesn't pretend to support it (spec §4.1 "neutral value on
// unsupported operations").
func (r *Renderer) ClipboardGet() string {
	return ""
}
