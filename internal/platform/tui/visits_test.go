package tui

import (
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/starlinks/internal/storage"
)

func openVisitStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.Open(filepath.Join(t.TempDir(), "visits.db"))
	if err != nil {
		t.Fatalf("storage.Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestVisitsModelEmpty(t *testing.T) {
	m := NewVisitsModel(openVisitStore(t), 20, 100, 30)

	if m.Rows() != 0 {
		t.Errorf("Rows() = %d, expected 0", m.Rows())
	}
	if !strings.Contains(m.View(), "No links visited yet") {
		t.Error("empty view missing placeholder")
	}
}

func TestVisitsModelToggle(t *testing.T) {
	store := openVisitStore(t)
	store.RecordVisit("github", "https://github.com", "", "terminal")
	store.RecordVisit("github", "https://github.com", "", "terminal")
	store.RecordVisit("blog", "https://dev.to", "", "ssh")

	m := NewVisitsModel(store, 20, 100, 30)
	if m.Mode() != ViewRecent || m.Rows() != 3 {
		t.Fatalf("recent view has %d rows, expected 3", m.Rows())
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(VisitsModel)
	if m.Mode() != ViewByTag {
		t.Fatal("tab did not switch to the per-tag view")
	}
	if m.Rows() != 2 {
		t.Errorf("per-tag view has %d rows, expected 2", m.Rows())
	}
	if !strings.Contains(m.View(), "by tag") {
		t.Error("title does not reflect the per-tag view")
	}
}

func TestVisitsModelNilStore(t *testing.T) {
	m := NewVisitsModel(nil, 20, 80, 24)
	if m.Rows() != 0 {
		t.Errorf("Rows() = %d with no store, expected 0", m.Rows())
	}
}

func TestVisitsModelQuit(t *testing.T) {
	m := NewVisitsModel(nil, 20, 80, 24)

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Error("quit returned no command")
	}
	if next.(VisitsModel).View() != "" {
		t.Error("View() not empty after quit")
	}
}
