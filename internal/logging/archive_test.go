package logging

import (
	"path/filepath"
	"testing"
)

func TestEventArchiveAppendAndTail(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	archive, err := NewEventArchive(path)
	if err != nil {
		t.Fatalf("NewEventArchive: %v", err)
	}
	defer archive.Close()

	for _, msg := range []string{"loaded", "imported", "saved"} {
		archive.Append(Event{Level: "info", Message: msg, Operation: "test"})
	}

	events, err := archive.Tail(2)
	if err != nil {
		t.Fatalf("Tail: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Tail returned %d events, want 2", len(events))
	}
	if events[0].Message != "imported" || events[1].Message != "saved" {
		t.Errorf("Tail = %q, %q; want imported, saved", events[0].Message, events[1].Message)
	}
	if events[1].Sequence != 3 {
		t.Errorf("last sequence = %d, want 3", events[1].Sequence)
	}
	if events[1].Timestamp.IsZero() {
		t.Error("timestamp was not stamped on append")
	}
}

func TestEventArchiveSequenceSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")

	first, err := NewEventArchive(path)
	if err != nil {
		t.Fatalf("NewEventArchive: %v", err)
	}
	first.Append(Event{Message: "one"})
	first.Append(Event{Message: "two"})
	if err := first.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	second, err := NewEventArchive(path)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer second.Close()

	if seq := second.Append(Event{Message: "three"}); seq != 3 {
		t.Errorf("sequence after reopen = %d, want 3", seq)
	}
}

func TestEventArchiveReadSince(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	archive, err := NewEventArchive(path)
	if err != nil {
		t.Fatalf("NewEventArchive: %v", err)
	}
	defer archive.Close()

	for _, msg := range []string{"a", "b", "c", "d"} {
		archive.Append(Event{Message: msg})
	}

	events, highest, err := archive.ReadSince(2, 0)
	if err != nil {
		t.Fatalf("ReadSince: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("ReadSince returned %d events, want 2", len(events))
	}
	if events[0].Message != "c" {
		t.Errorf("first event = %q, want c", events[0].Message)
	}
	if highest != 4 {
		t.Errorf("highest = %d, want 4", highest)
	}
}

func TestEventArchiveDisabled(t *testing.T) {
	archive, err := NewEventArchive("  ")
	if err != nil {
		t.Fatalf("NewEventArchive: %v", err)
	}
	if archive != nil {
		t.Fatal("expected nil archive for blank path")
	}

	// All operations on the nil archive are no-ops.
	if seq := archive.Append(Event{Message: "dropped"}); seq != 0 {
		t.Errorf("Append on nil archive = %d, want 0", seq)
	}
	if events, err := archive.Tail(5); err != nil || events != nil {
		t.Errorf("Tail on nil archive = %v, %v", events, err)
	}
	if err := archive.Close(); err != nil {
		t.Errorf("Close on nil archive: %v", err)
	}
}
