package logbook

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kantorei/riser/internal/grid"
)

func TestTailReturnsRecentLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "session.log")
	book, err := Open(path)
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Note("entry-%d", i)
	}
	lines := book.Tail(3)
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestTailOnMissingFile(t *testing.T) {
	dir := t.TempDir()
	book, err := Open(filepath.Join(dir, "never-written.log"))
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	if lines := book.Tail(10); lines != nil {
		t.Fatalf("expected nil tail before first append, got %v", lines)
	}
}

func TestNilLogbookIsSafe(t *testing.T) {
	var book *Logbook
	book.SessionOpened(4)
	book.ChartRebuilt(4, 2, grid.PolicyAuto)
	book.SettingsApplied(4, 2, grid.PolicyAuto)
	book.Swapped(grid.Address{}, grid.Address{Row: 1})
	book.Rejected("swap", errors.New("no chart"))
	book.Note("ignored")
	book.Append(KindNote, "ignored")
	if got := book.Tail(5); got != nil {
		t.Fatalf("nil logbook tail = %v, want nil", got)
	}
	if got := book.Path(); got != "" {
		t.Fatalf("nil logbook path = %q, want empty", got)
	}
}

func TestEntriesCarryKindTags(t *testing.T) {
	dir := t.TempDir()
	book, err := Open(filepath.Join(dir, "session.log"))
	if err != nil {
		t.Fatalf("open logbook: %v", err)
	}
	book.SessionOpened(8)
	book.ChartRebuilt(8, 3, grid.PolicyCondition1)
	book.SettingsApplied(6, 2, grid.PolicyAuto)
	book.Swapped(grid.Address{Row: 0, Col: 1}, grid.Address{Row: 1, Col: 2})
	book.Rejected("swap", errors.New("slot address out of range"))
	book.Note("Returned to main menu")

	lines := book.Tail(10)
	if len(lines) != 6 {
		t.Fatalf("len(lines) = %d, want 6", len(lines))
	}
	wants := []struct {
		kind     string
		fragment string
	}{
		{"SESSION", "opened with 8 singers configured"},
		{"CHART", "rebuilt: 8 singers across 3 rows, policy condition1"},
		{"CHART", "settings applied: 6 singers, 2 rows, policy auto"},
		{"SWAP", "(0,1) and (1,2) exchanged"},
		{"REJECT", "swap: slot address out of range"},
		{"NOTE", "Returned to main menu"},
	}
	for idx, want := range wants {
		if !strings.Contains(lines[idx], want.kind) {
			t.Fatalf("line %d = %q, missing kind %s", idx, lines[idx], want.kind)
		}
		if !strings.Contains(lines[idx], want.fragment) {
			t.Fatalf("line %d = %q, missing %q", idx, lines[idx], want.fragment)
		}
	}
}
