package engine

import (
	"testing"

	"github.com/dylhunn/dragontoothmg"
)

func TestTransTableResizeAndProbe(t *testing.T) {
	var tt TransTable
	tt.Resize(1)
	if tt.SizeMB() != 1 {
		t.Fatalf("expected 1 MB table, got %d", tt.SizeMB())
	}

	hash := uint64(0xDEADBEEFCAFE)
	if _, found := tt.Probe(hash); found {
		t.Fatalf("probe hit on a fresh table")
	}

	move := dragontoothmg.Move(0x1234)
	tt.Store(hash, 5, move, 42, ExactFlag)
	entry, found := tt.Probe(hash)
	if !found {
		t.Fatalf("stored entry not found")
	}
	if entry.Move != move || entry.Score != 42 || entry.Depth != 5 || entry.Flag != ExactFlag {
		t.Errorf("entry mismatch: %+v", entry)
	}
}

func TestTransTableClear(t *testing.T) {
	var tt TransTable
	tt.Resize(1)
	tt.Store(77, 3, dragontoothmg.Move(9), 10, BetaFlag)
	tt.Clear()
	if _, found := tt.Probe(77); found {
		t.Fatalf("entry survived Clear")
	}
	if tt.SizeMB() != 1 {
		t.Errorf("Clear must keep the allocation, got %d MB", tt.SizeMB())
	}
}

func TestTransTableResizeDropsEntries(t *testing.T) {
	var tt TransTable
	tt.Resize(1)
	tt.Store(99, 2, dragontoothmg.Move(5), -7, AlphaFlag)
	tt.Resize(2)
	if _, found := tt.Probe(99); found {
		t.Fatalf("entry survived Resize")
	}
}

func TestTransTableZeroSized(t *testing.T) {
	var tt TransTable
	// Before the Hash handler ever runs, stores and probes are no-ops.
	tt.Store(1, 1, 0, 0, ExactFlag)
	if _, found := tt.Probe(1); found {
		t.Fatalf("probe hit on an unallocated table")
	}
}
