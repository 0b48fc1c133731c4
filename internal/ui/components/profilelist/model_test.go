package profilelist

import (
	"testing"

	"github.com/lazyvibe/proxyrun/internal/model"
)

func profiles(names ...string) []model.Profile {
	result := make([]model.Profile, len(names))
	for i, name := range names {
		result[i] = model.NewProfile(name, "127.0.0.1", "7890", model.ProtocolHTTP)
	}
	return result
}

func TestSelectedIndexEmptyList(t *testing.T) {
	m := New()
	if got := m.SelectedIndex(); got != NoSelection {
		t.Fatalf("SelectedIndex: got=%d, want=NoSelection", got)
	}
	if m.SelectedProfile() != nil {
		t.Fatal("SelectedProfile: got non-nil, want=nil")
	}
}

func TestCursorClampsAfterShrink(t *testing.T) {
	m := New()
	m.SetProfiles(profiles("a", "b", "c"))
	m.HandleKey("end")
	if got := m.SelectedIndex(); got != 2 {
		t.Fatalf("SelectedIndex: got=%d, want=2", got)
	}

	m.SetProfiles(profiles("a"))
	if got := m.SelectedIndex(); got != 0 {
		t.Fatalf("SelectedIndex after shrink: got=%d, want=0", got)
	}
}

func TestClearSelection(t *testing.T) {
	m := New()
	m.SetProfiles(profiles("a", "b"))
	m.HandleKey("down")
	m.ClearSelection()
	if got := m.SelectedIndex(); got != 0 {
		t.Fatalf("SelectedIndex: got=%d, want=0", got)
	}
}
