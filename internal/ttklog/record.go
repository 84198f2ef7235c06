package ttklog

import "github.com/sirupsen/logrus"

// LogRecord is the record the ring buffer stores (the TCP broadcast
// encodes its own wireRecord instead). SourceStream distinguishes a record
// captured from the process's own stdout/stderr (StreamCapture, via
// Ring.Capture) from a normal logger call — the
// grounding source used a side-channel bool on a generic message type;
// here it is promoted to an explicit, named field (spec §9 redesign:
// "module-global mutable logger" family of notes call for making this
// kind of implicit state explicit).
type LogRecord struct {
	Timestamp    string
	Source       string
	Level        logrus.Level
	Message      string
	SourceStream bool
}
