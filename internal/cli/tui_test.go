package cli

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/JosepEscobar/github-profile-explorer-sub000/pkg/github"
)

func tuiFixtures() []github.Repository {
	lang := "Go"
	return []github.Repository{
		{Name: "alpha", Language: &lang, StargazersCount: 10},
		{Name: "beta", Fork: true},
		{Name: "gamma", Language: &lang},
	}
}

func keyMsg(key string) tea.KeyMsg {
	if len(key) == 1 {
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
	}
	switch key {
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	}
	return tea.KeyMsg{}
}

func TestRepoListNavigation(t *testing.T) {
	m := NewRepoListModel(tuiFixtures())

	next, _ := m.Update(keyMsg("down"))
	m = next.(RepoListModel)
	if m.Cursor != 1 {
		t.Errorf("Cursor = %d, want 1", m.Cursor)
	}

	next, _ = m.Update(keyMsg("up"))
	m = next.(RepoListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0", m.Cursor)
	}

	// Never moves past the ends.
	next, _ = m.Update(keyMsg("up"))
	m = next.(RepoListModel)
	if m.Cursor != 0 {
		t.Errorf("Cursor = %d, want 0 at top", m.Cursor)
	}
}

func TestRepoListSelection(t *testing.T) {
	m := NewRepoListModel(tuiFixtures())

	next, _ := m.Update(keyMsg("down"))
	m = next.(RepoListModel)
	next, cmd := m.Update(keyMsg("enter"))
	m = next.(RepoListModel)

	if m.Selected == nil || m.Selected.Name != "beta" {
		t.Fatalf("Selected = %+v, want beta", m.Selected)
	}
	if cmd == nil {
		t.Error("enter should quit the program")
	}
}

func TestRepoListView(t *testing.T) {
	m := NewRepoListModel(tuiFixtures())

	view := m.View()
	for _, want := range []string{"alpha", "beta", "gamma", "Select Repository"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestFormatRelativeTime(t *testing.T) {
	now := time.Now()
	tests := []struct {
		name string
		t    time.Time
		want string
	}{
		{"minutes", now.Add(-30 * time.Minute), "30m ago"},
		{"hours", now.Add(-5 * time.Hour), "5h ago"},
		{"days", now.Add(-3 * 24 * time.Hour), "3d ago"},
		{"zero time", time.Time{}, "—"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := formatRelativeTime(tt.t); got != tt.want {
				t.Errorf("formatRelativeTime = %q, want %q", got, tt.want)
			}
		})
	}
}
