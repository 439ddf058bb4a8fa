// Package grouplist is the read-only group browser.
package grouplist

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/api"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

const requestTimeout = 10 * time.Second

type loadedMsg struct {
	groups []words.Group
	counts map[string]int
	err    error
}

// GroupListScreen lists the word groups with their word counts.
type GroupListScreen struct {
	client *api.Client
	log    *zap.Logger

	groups  []words.Group
	counts  map[string]int
	cursor  int
	loading bool
	notice  string
}

var _ screen.Screen = (*GroupListScreen)(nil)

// New creates the group browser.
func New(client *api.Client, log *zap.Logger) *GroupListScreen {
	return &GroupListScreen{client: client, log: log, loading: true}
}

func (s *GroupListScreen) Init() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		groups, err := s.client.Groups(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		ws, err := s.client.Words(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		counts := make(map[string]int, len(groups))
		for _, w := range ws {
			counts[w.GroupID]++
		}
		return loadedMsg{groups: groups, counts: counts}
	}
}

func (s *GroupListScreen) Title() string {
	return "Groups"
}

func (s *GroupListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.err != nil {
			s.notice = "Could not load groups: " + msg.err.Error()
			return s, nil
		}
		s.groups = msg.groups
		s.counts = msg.counts
		return s, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			if s.cursor > 0 {
				s.cursor--
			}
		case "down", "j":
			if s.cursor < len(s.groups)-1 {
				s.cursor++
			}
		}
	}
	return s, nil
}

func (s *GroupListScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading groups..."))
	}
	if s.notice != "" {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render(s.notice))
	}
	if len(s.groups) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No groups yet."))
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("%d groups", len(s.groups))))
	b.WriteString("\n")

	for i, g := range s.groups {
		line := fmt.Sprintf("%-32s %d words", g.Name, s.counts[g.ID])
		if i == s.cursor {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
