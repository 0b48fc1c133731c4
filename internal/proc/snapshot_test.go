package proc

import (
	"errors"
	"testing"
)

// fakeEnumerator implements Enumerator for testing.
type fakeEnumerator struct {
	records []Record
	err     error
}

func (f fakeEnumerator) Processes() ([]Record, error) {
	return f.records, f.err
}

func TestSnapshotSortsByName(t *testing.T) {
	e := fakeEnumerator{records: []Record{
		{PID: "30", Name: "zsh"},
		{PID: "10", Name: "bash"},
		{PID: "20", Name: "nginx"},
	}}

	got := Snapshot(e)
	want := []string{"bash", "nginx", "zsh"}
	if len(got) != len(want) {
		t.Fatalf("len=%d, want=%d", len(got), len(want))
	}
	for i, name := range want {
		if got[i].Name != name {
			t.Errorf("records[%d].Name: got=%q, want=%q", i, got[i].Name, name)
		}
	}
}

func TestSnapshotStableForEqualNames(t *testing.T) {
	e := fakeEnumerator{records: []Record{
		{PID: "3", Name: "worker"},
		{PID: "1", Name: "worker"},
		{PID: "2", Name: "app"},
	}}

	got := Snapshot(e)
	// "worker" entries must keep enumeration order: pid 3 before pid 1.
	if got[0].Name != "app" || got[1].PID != "3" || got[2].PID != "1" {
		t.Fatalf("unexpected order: %+v", got)
	}
}

func TestSnapshotEnumerationFailure(t *testing.T) {
	e := fakeEnumerator{err: errors.New("permission denied")}
	if got := Snapshot(e); len(got) != 0 {
		t.Fatalf("len=%d, want=0", len(got))
	}
}

func TestDisplayText(t *testing.T) {
	tests := []struct {
		record Record
		want   string
	}{
		{Record{PID: "42", Name: "nginx", Exe: "/usr/sbin/nginx"}, "nginx (42) - /usr/sbin/nginx"},
		{Record{PID: "7", Name: "kworker"}, "kworker (7)"},
	}
	for _, tt := range tests {
		if got := tt.record.DisplayText(); got != tt.want {
			t.Errorf("DisplayText: got=%q, want=%q", got, tt.want)
		}
	}
}
