// Package eventlog appends session events to an NDJSON file, one JSON
// object per line. Emission is best-effort: a broken log never interferes
// with the session that produces it.
package eventlog

import (
	"bufio"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Event is one session event record.
type Event struct {
	Timestamp time.Time `json:"ts"`
	Session   string    `json:"session"`
	Event     string    `json:"event"`
	Project   string    `json:"project,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Logger appends events to a single NDJSON file.
type Logger struct {
	path    string
	session string
	mu      sync.Mutex
}

// New returns a Logger writing to path under the given session id. The
// parent directory is created eagerly so Emit stays write-only.
func New(path, session string) *Logger {
	_ = os.MkdirAll(filepath.Dir(path), 0o755)
	return &Logger{path: path, session: strings.TrimSpace(session)}
}

// Emit appends one event. Empty event names are dropped; marshal and write
// failures are swallowed.
func (l *Logger) Emit(event, project, detail string) {
	if l == nil || strings.TrimSpace(event) == "" {
		return
	}
	rec := Event{
		Timestamp: time.Now().UTC(),
		Session:   l.session,
		Event:     event,
		Project:   project,
		Detail:    detail,
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	data = append(data, '\n')
	f, err := os.OpenFile(l.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()
	_, _ = f.Write(data)
}

// NewSessionID returns a random hex session identifier.
func NewSessionID() string {
	buf := make([]byte, 8)
	if _, err := rand.Read(buf); err == nil {
		return hex.EncodeToString(buf)
	}
	return fmt.Sprintf("%x", time.Now().UnixNano())
}

// Read parses every well-formed event in the log at path. Malformed lines
// are skipped; a missing file yields an empty slice.
func Read(path string) ([]Event, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	defer f.Close()

	var events []Event
	sc := bufio.NewScanner(f)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		var ev Event
		if err := json.Unmarshal([]byte(line), &ev); err != nil {
			continue
		}
		events = append(events, ev)
	}
	if err := sc.Err(); err != nil {
		return events, err
	}
	return events, nil
}
