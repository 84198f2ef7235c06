package desktop

import "golang.design/x/clipboard"

// clipboardReady tracks whether clipboard.Init succeeded. clipboard.Init
// opens a connection to the OS clipboard service (X11/Wayland on Linux,
// NSPasteboard on macOS, the Win32 clipboard on Windows) and can fail in
// headless environments; ClipboardGet/ClipboardSet degrade to the
// neutral value rather than panicking when that happens, matching spec
// §4.1's "neutral value on unsupported operations" rule.
var clipboardReady = clipboard.Init() == nil

// ClipboardSet writes text to the real OS clipboard via
// golang.design/x/clipboard, the desktop-facing counterpart to the
// terminal backend's OSC 52 escape sequence.
func (r *Renderer) ClipboardSet(text string) bool {
	if !clipboardReady {
		return false
	}
	clipboard.Write(clipboard.FmtText, []byte(text))
	return true
}

// ClipboardGet reads the current OS clipboard contents as text. Unlike
// the terminal backend, the desktop backend has a real synchronous read
// path, so this need not return the neutral empty value except when the
// clipboard service itself is unavailable.
func (r *Renderer) ClipboardGet() string {
	if !clipboardReady {
		return ""
	}
	return string(clipboard.Read(clipboard.FmtText))
}
