package processlist

import (
	"testing"

	"github.com/lazyvibe/proxyrun/internal/proc"
)

func records(names ...string) []proc.Record {
	result := make([]proc.Record, len(names))
	for i, name := range names {
		result[i] = proc.Record{PID: "1", Name: name}
	}
	return result
}

func TestSelectAndSelectedRecord(t *testing.T) {
	m := New()
	m.SetRecords(records("a", "b", "c"))

	if got := m.SelectedRecord(); got != nil {
		t.Fatalf("initial selection: got=%+v, want=nil", got)
	}

	m.HandleKey("down")
	m.Select()

	rec := m.SelectedRecord()
	if rec == nil || rec.Name != "b" {
		t.Fatalf("selected: got=%+v, want name=b", rec)
	}
	if m.SelectedIndex() != 1 {
		t.Fatalf("SelectedIndex: got=%d, want=1", m.SelectedIndex())
	}
}

func TestRefreshInvalidatesOutOfRangeSelection(t *testing.T) {
	m := New()
	m.SetRecords(records("a", "b", "c"))
	m.HandleKey("down")
	m.HandleKey("down")
	m.Select()
	if m.SelectedIndex() != 2 {
		t.Fatalf("SelectedIndex: got=%d, want=2", m.SelectedIndex())
	}

	// Shrinking snapshot must clear the selection, not panic or keep a
	// stale index.
	m.SetRecords(records("x"))
	if m.SelectedIndex() != NoSelection {
		t.Fatalf("SelectedIndex after shrink: got=%d, want=NoSelection", m.SelectedIndex())
	}
	if m.SelectedRecord() != nil {
		t.Fatal("SelectedRecord after shrink: got non-nil, want=nil")
	}
}

func TestRefreshKeepsInRangeSelection(t *testing.T) {
	m := New()
	m.SetRecords(records("a", "b", "c"))
	m.Select()

	m.SetRecords(records("x", "y"))
	// Index 0 is still in range; the selection survives positionally.
	rec := m.SelectedRecord()
	if rec == nil || rec.Name != "x" {
		t.Fatalf("selected: got=%+v, want name=x", rec)
	}
}

func TestRefreshToEmptyList(t *testing.T) {
	m := New()
	m.SetRecords(records("a"))
	m.Select()

	m.SetRecords(nil)
	if m.SelectedRecord() != nil {
		t.Fatal("SelectedRecord: got non-nil, want=nil")
	}
	m.HandleKey("down") // must not panic on empty list
	m.Select()
	if m.SelectedRecord() != nil {
		t.Fatal("Select on empty list must not select anything")
	}
}
