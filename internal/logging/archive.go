package logging

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Event is one structured entry in the integrity journal: a save, load,
// repair, or import outcome together with the warnings it produced.
type Event struct {
	Sequence      uint64            `json:"seq"`
	Timestamp     time.Time         `json:"ts"`
	Level         string            `json:"level"`
	Message       string            `json:"msg"`
	Component     string            `json:"component,omitempty"`
	Project       string            `json:"project,omitempty"`
	Operation     string            `json:"operation,omitempty"`
	CorrelationID string            `json:"correlation_id,omitempty"`
	Fields        map[string]string `json:"fields,omitempty"`
	Warnings      []string          `json:"warnings,omitempty"`
}

// EventArchive persists integrity events as JSON lines so commands can replay
// what happened to a project across runs. Unlike the log file, entries here
// are curated: one per operation, with its warning list attached.
type EventArchive struct {
	path    string
	mu      sync.Mutex
	file    *os.File
	enc     *json.Encoder
	lastSeq uint64
}

// NewEventArchive opens (or creates) an on-disk journal in append mode. The
// path argument may be empty to disable archiving, in which case nil is
// returned without error.
func NewEventArchive(path string) (*EventArchive, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return nil, nil
	}
	if err := ensureLogDir(trimmed); err != nil {
		return nil, fmt.Errorf("ensure journal dir: %w", err)
	}

	a := &EventArchive{path: trimmed}
	if err := a.scanLastSequence(); err != nil {
		return nil, err
	}
	return a, nil
}

// Append assigns the event a sequence number and timestamp (when unset) and
// writes it to the journal. Failures are swallowed; recording history must
// never take an operation down.
func (a *EventArchive) Append(evt Event) uint64 {
	if a == nil {
		return 0
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	if err := a.ensureWriter(); err != nil {
		return a.lastSeq
	}
	a.lastSeq++
	evt.Sequence = a.lastSeq
	if evt.Timestamp.IsZero() {
		evt.Timestamp = time.Now().UTC()
	}
	_ = a.enc.Encode(evt)
	return evt.Sequence
}

// ReadSince returns events newer than the provided sequence along with the
// highest sequence observed in the journal. Limit bounds the number of events
// returned (0 means unlimited).
func (a *EventArchive) ReadSince(since uint64, limit int) ([]Event, uint64, error) {
	if a == nil || strings.TrimSpace(a.path) == "" {
		return nil, since, nil
	}
	file, err := os.Open(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, since, nil
		}
		return nil, since, fmt.Errorf("open journal %s: %w", a.path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	capHint := limit
	if capHint <= 0 || capHint > 512 {
		capHint = 512
	}
	result := make([]Event, 0, capHint)
	highest := since
	for {
		var evt Event
		if err := decoder.Decode(&evt); err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return result, highest, fmt.Errorf("decode journal %s: %w", a.path, err)
		}
		if evt.Sequence > highest {
			highest = evt.Sequence
		}
		if evt.Sequence <= since {
			continue
		}
		result = append(result, evt)
		if limit > 0 && len(result) >= limit {
			break
		}
	}
	return result, highest, nil
}

// Tail returns up to limit of the most recent events, oldest first.
func (a *EventArchive) Tail(limit int) ([]Event, error) {
	if a == nil || limit <= 0 {
		return nil, nil
	}
	events, _, err := a.ReadSince(0, 0)
	if err != nil {
		return nil, err
	}
	if len(events) > limit {
		events = events[len(events)-limit:]
	}
	return events, nil
}

// Close releases the journal file handle.
func (a *EventArchive) Close() error {
	if a == nil {
		return nil
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	var err error
	if a.file != nil {
		err = a.file.Close()
	}
	a.file = nil
	a.enc = nil
	return err
}

// Path returns the on-disk location backing the journal.
func (a *EventArchive) Path() string {
	if a == nil {
		return ""
	}
	return a.path
}

func (a *EventArchive) ensureWriter() error {
	if a.file != nil && a.enc != nil {
		return nil
	}
	file, err := os.OpenFile(a.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	a.file = file
	a.enc = json.NewEncoder(file)
	return nil
}

// scanLastSequence picks up numbering where the previous run left off.
func (a *EventArchive) scanLastSequence() error {
	file, err := os.Open(a.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("open journal %s: %w", a.path, err)
	}
	defer file.Close()

	decoder := json.NewDecoder(file)
	for {
		var evt Event
		if err := decoder.Decode(&evt); err != nil {
			// A torn final line from a crashed run should not block the journal.
			break
		}
		if evt.Sequence > a.lastSeq {
			a.lastSeq = evt.Sequence
		}
	}
	return nil
}
