package ttklog

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/sirupsen/logrus"
)

// wireRecord is the exact newline-delimited JSON shape spec §6 mandates
// for the logging TCP protocol.
type wireRecord struct {
	Timestamp string `json:"timestamp"`
	Source    string `json:"source"`
	Level     string `json:"level"`
	Message   string `json:"message"`
}

// TCPBroadcast is the optional remote-monitoring sink (spec §6's
// "Logging TCP protocol"): it accepts connections on one port and
// broadcasts every log record as newline-delimited JSON to all of them.
// Clients are read-only; a write failure to one client silently drops
// that client without affecting the others (spec §7: "Logging sink
// failure ... isolate: sink is removed from the broadcast set").
type TCPBroadcast struct {
	mu       sync.Mutex
	clients  map[net.Conn]bool
	listener net.Listener
}

// NewTCPBroadcast starts listening on addr (e.g. ":4170") and returns a
// hook that broadcasts to every client accepted so far. Accept runs on
// its own goroutine per spec §5's "permitted background work": a
// logging subsystem may spawn one TCP-accept thread and per-client
// writer threads.
func NewTCPBroadcast(addr string) (*TCPBroadcast, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, err
	}
	b := &TCPBroadcast{clients: make(map[net.Conn]bool), listener: ln}
	go b.acceptLoop()
	return b, nil
}

func (b *TCPBroadcast) acceptLoop() {
	for {
		conn, err := b.listener.Accept()
		if err != nil {
			return
		}
		b.mu.Lock()
		b.clients[conn] = true
		b.mu.Unlock()
	}
}

// Levels implements logrus.Hook — every level is broadcast.
func (b *TCPBroadcast) Levels() []logrus.Level { return logrus.AllLevels }

// Fire implements logrus.Hook.
func (b *TCPBroadcast) Fire(entry *logrus.Entry) error {
	source, _ := entry.Data["subsystem"].(string)
	payload, err := json.Marshal(wireRecord{
		Timestamp: entry.Time.Format("15:04:05"),
		Source:    source,
		Level:     entry.Level.String(),
		Message:   entry.Message,
	})
	if err != nil {
		return err
	}
	payload = append(payload, '\n')

	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		if _, err := conn.Write(payload); err != nil {
			conn.Close()
			delete(b.clients, conn)
		}
	}
	return nil
}

// Close stops accepting new clients and closes every connected one.
func (b *TCPBroadcast) Close() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	for conn := range b.clients {
		conn.Close()
		delete(b.clients, conn)
	}
	return b.listener.Close()
}
