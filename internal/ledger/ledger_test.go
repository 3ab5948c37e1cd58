package ledger

import (
	"os"
	"path/filepath"
	"testing"
)

func tempLedger(t *testing.T) (*Ledger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "emailed_stocks.txt")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	return l, path
}

func TestLedger_MissingFileIsEmpty(t *testing.T) {
	l, _ := tempLedger(t)
	if l.Len() != 0 {
		t.Errorf("expected empty ledger, got %d entries", l.Len())
	}
	if l.Contains("RELIANCE") {
		t.Error("empty ledger must not contain anything")
	}
}

func TestLedger_CreatesParentDirectory(t *testing.T) {
	// The default path lives under data/, which may not exist yet.
	path := filepath.Join(t.TempDir(), "data", "emailed_stocks.txt")
	l, err := New(path)
	if err != nil {
		t.Fatalf("new ledger: %v", err)
	}
	if err := l.Record("RELIANCE"); err != nil {
		t.Fatalf("record into fresh dir: %v", err)
	}
	if !l.Contains("RELIANCE") {
		t.Error("expected RELIANCE after record")
	}

	reloaded, err := New(path)
	if err != nil {
		t.Fatalf("reload ledger: %v", err)
	}
	if !reloaded.Contains("RELIANCE") {
		t.Error("expected entry to survive reload")
	}
}

func TestLedger_RecordAndContains(t *testing.T) {
	l, _ := tempLedger(t)

	if err := l.Record("RELIANCE"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if !l.Contains("RELIANCE") {
		t.Error("expected RELIANCE after record")
	}

	// Duplicate record is harmless.
	if err := l.Record("RELIANCE"); err != nil {
		t.Fatalf("duplicate record: %v", err)
	}
	if !l.Contains("RELIANCE") {
		t.Error("expected RELIANCE after duplicate record")
	}
	if l.Len() != 1 {
		t.Errorf("expected 1 entry, got %d", l.Len())
	}
}

func TestLedger_PersistsAcrossInstances(t *testing.T) {
	l, path := tempLedger(t)
	for _, s := range []string{"RELIANCE", "TCS"} {
		if err := l.Record(s); err != nil {
			t.Fatalf("record %s: %v", s, err)
		}
	}

	reloaded, err := New(path)
	if err != nil {
		t.Fatalf("reload ledger: %v", err)
	}
	if !reloaded.Contains("RELIANCE") || !reloaded.Contains("TCS") {
		t.Error("expected entries to survive reload")
	}
	if reloaded.Len() != 2 {
		t.Errorf("expected 2 entries after reload, got %d", reloaded.Len())
	}
}

func TestLedger_FileFormat(t *testing.T) {
	l, path := tempLedger(t)
	if err := l.Record("INFY"); err != nil {
		t.Fatalf("record: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read ledger file: %v", err)
	}
	if string(data) != "INFY\n" {
		t.Errorf("expected one symbol per line, got %q", string(data))
	}
}

func TestLedger_ResetClearsHistory(t *testing.T) {
	l, path := tempLedger(t)
	if err := l.Record("RELIANCE"); err != nil {
		t.Fatalf("record: %v", err)
	}
	if err := l.Reset(); err != nil {
		t.Fatalf("reset: %v", err)
	}
	if l.Contains("RELIANCE") {
		t.Error("expected no entries after reset")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Error("expected ledger file removed after reset")
	}

	// Reset on an already-empty ledger is fine.
	if err := l.Reset(); err != nil {
		t.Fatalf("second reset: %v", err)
	}
}
