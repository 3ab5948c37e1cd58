package ledger

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Ledger is a durable set of symbols that have already triggered an email
// alert. It is backed by a plain text file, one symbol per line, loaded once
// at startup and appended to incrementally.
type Ledger struct {
	mu       sync.Mutex
	entries  map[string]struct{}
	filePath string
}

// New creates a Ledger, loading existing entries from disk. A missing file is
// equivalent to an empty ledger.
func New(filePath string) (*Ledger, error) {
	l := &Ledger{
		entries:  make(map[string]struct{}),
		filePath: filePath,
	}
	if dir := filepath.Dir(filePath); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("create ledger dir: %w", err)
		}
	}
	data, err := os.ReadFile(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return l, nil
		}
		return nil, fmt.Errorf("read ledger: %w", err)
	}
	for _, line := range strings.Split(string(data), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			l.entries[s] = struct{}{}
		}
	}
	return l, nil
}

// Contains reports whether the symbol has already been recorded.
func (l *Ledger) Contains(symbol string) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.entries[symbol]
	return ok
}

// Record appends the symbol to the ledger file and the in-memory set.
// Recording an already-present symbol is a no-op.
func (l *Ledger) Record(symbol string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.entries[symbol]; ok {
		return nil
	}
	f, err := os.OpenFile(l.filePath, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("open ledger: %w", err)
	}
	defer f.Close()
	if _, err := fmt.Fprintf(f, "%s\n", symbol); err != nil {
		return fmt.Errorf("append ledger: %w", err)
	}
	l.entries[symbol] = struct{}{}
	return nil
}

// Reset deletes the ledger file and clears all recorded entries.
func (l *Ledger) Reset() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := os.Remove(l.filePath); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("remove ledger: %w", err)
	}
	l.entries = make(map[string]struct{})
	return nil
}

// Len returns the number of recorded symbols.
func (l *Ledger) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
