package ttklog

import (
	"bufio"
	"io"
	"os"
)

// StreamCapture redirects the process's stdout/stderr into a Ring,
// tagging every captured line SourceStream=true (see record.go). This is
// optional (Config.StreamOutputEnabled) — when nil a Config leaves
// stdout/stderr alone.
type StreamCapture struct {
	stdoutW       *os.File
	stderrW       *os.File
	restoreStdout func()
	restoreStderr func()
}

// NewStreamCapture redirects os.Stdout and os.Stderr through pipes whose
// read ends are scanned line-by-line into ring, each line pushed as a
// distinct LogRecord. Call Close to restore the original streams.
func NewStreamCapture(ring *Ring) (*StreamCapture, error) {
	sc := &StreamCapture{}

	stdoutR, stdoutW, err := os.Pipe()
	if err != nil {
		return nil, err
	}
	origStdout := os.Stdout
	os.Stdout = stdoutW
	sc.stdoutW = stdoutW
	sc.restoreStdout = func() { os.Stdout = origStdout }
	go pump(stdoutR, ring, "stdout")

	stderrR, stderrW, err := os.Pipe()
	if err != nil {
		stdoutW.Close()
		sc.restoreStdout()
		return nil, err
	}
	origStderr := os.Stderr
	os.Stderr = stderrW
	sc.stderrW = stderrW
	sc.restoreStderr = func() { os.Stderr = origStderr }
	go pump(stderrR, ring, "stderr")

	return sc, nil
}

func pump(r io.Reader, ring *Ring, source string) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		ring.Capture(source, scanner.Text())
	}
}

// Close restores the original stdout/stderr and closes the pipe write
// ends, which lets their pump goroutines exit.
func (sc *StreamCapture) Close() {
	if sc.restoreStdout != nil {
		sc.restoreStdout()
	}
	if sc.restoreStderr != nil {
		sc.restoreStderr()
	}
	if sc.stdoutW != nil {
		sc.stdoutW.Close()
	}
	if sc.stderrW != nil {
		sc.stderrW.Close()
	}
}
