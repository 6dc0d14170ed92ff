// Package logbook journals one seating session to a plain text file.
// Chart rebuilds, swaps, and refusals each land as a single tagged
// line, and the TUI tails the same file for its session panel.
package logbook

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/kantorei/riser/internal/grid"
)

// Kind tags an entry with the session event it records.
type Kind string

const (
	KindSession Kind = "SESSION"
	KindChart   Kind = "CHART"
	KindSwap    Kind = "SWAP"
	KindReject  Kind = "REJECT"
	KindNote    Kind = "NOTE"
)

// Logbook appends tagged entries to a session journal file. A nil
// *Logbook swallows every call, so callers never guard their logging.
type Logbook struct {
	path string
	mu   sync.Mutex
}

// Open prepares a journal at the given path. The file itself is only
// created on the first Append.
func Open(path string) (*Logbook, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}
	return &Logbook{path: path}, nil
}

// Path returns the file backing this journal.
func (l *Logbook) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Append writes one tagged line. A nil receiver is a no-op, and write
// errors are dropped.
func (l *Logbook) Append(kind Kind, message string) {
	if l == nil {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	line := fmt.Sprintf("%s %-7s %s\n",
		time.Now().UTC().Format("2006-01-02 15:04:05"),
		string(kind),
		strings.TrimSpace(message),
	)
	file, err := os.OpenFile(l.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return
	}
	defer file.Close()
	_, _ = file.WriteString(line)
}

// Tail returns up to maxLines of the most recent journal lines.
func (l *Logbook) Tail(maxLines int) []string {
	if l == nil || maxLines <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	file, err := os.Open(l.path)
	if err != nil {
		return nil
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if len(lines) == 0 {
		return nil
	}
	if len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines
}

// SessionOpened marks the start of a planning session.
func (l *Logbook) SessionOpened(singers int) {
	l.Append(KindSession, fmt.Sprintf("opened with %d singers configured", singers))
}

// ChartRebuilt records a fresh arrangement dealt from current settings.
func (l *Logbook) ChartRebuilt(singers, rows int, policy grid.Policy) {
	l.Append(KindChart, fmt.Sprintf("rebuilt: %d singers across %d rows, policy %s",
		singers, rows, policy))
}

// SettingsApplied records a settings change that produced a new chart.
func (l *Logbook) SettingsApplied(singers, rows int, policy grid.Policy) {
	l.Append(KindChart, fmt.Sprintf("settings applied: %d singers, %d rows, policy %s",
		singers, rows, policy))
}

// Swapped records a committed exchange between two slots.
func (l *Logbook) Swapped(from, to grid.Address) {
	l.Append(KindSwap, fmt.Sprintf("%s and %s exchanged", from, to))
}

// Rejected records a refusal and its reason, tagged with the action
// that was refused.
func (l *Logbook) Rejected(action string, err error) {
	l.Append(KindReject, fmt.Sprintf("%s: %v", action, err))
}

// Note records anything else worth keeping, menu movement included.
func (l *Logbook) Note(format string, args ...any) {
	l.Append(KindNote, fmt.Sprintf(format, args...))
}
