// Package wordlist is the word browser: status edits and deletion over
// the full word list.
package wordlist

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
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

const requestTimeout = 10 * time.Second

type loadedMsg struct {
	words []words.Word
	err   error
}

type changedMsg struct {
	err error
}

// statusCycle is the order the status key walks through.
var statusCycle = []words.Status{words.StatusUnknown, words.StatusLearning, words.StatusKnown}

// WordListScreen lists every word with its status.
type WordListScreen struct {
	client *api.Client
	log    *zap.Logger

	words   []words.Word
	cursor  int
	offset  int
	loading bool
	notice  string

	confirmDelete bool
}

var _ screen.Screen = (*WordListScreen)(nil)
var _ screen.KeyHintProvider = (*WordListScreen)(nil)

// New creates the word browser.
func New(client *api.Client, log *zap.Logger) *WordListScreen {
	return &WordListScreen{client: client, log: log, loading: true}
}

func (s *WordListScreen) Init() tea.Cmd {
	return s.load()
}

func (s *WordListScreen) load() tea.Cmd {
	s.loading = true
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		ws, err := s.client.Words(ctx)
		return loadedMsg{words: ws, err: err}
	}
}

func (s *WordListScreen) Title() string {
	return "Words"
}

func (s *WordListScreen) KeyHints() []layout.KeyHint {
	if s.confirmDelete {
		return []layout.KeyHint{
			{Key: "Y", Description: "Delete"},
			{Key: "N", Description: "Keep"},
		}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Move"},
		{Key: "S", Description: "Cycle status"},
		{Key: "D", Description: "Delete"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *WordListScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.err != nil {
			s.notice = "Could not load words: " + msg.err.Error()
			return s, nil
		}
		s.words = msg.words
		if s.cursor >= len(s.words) {
			s.cursor = max(len(s.words)-1, 0)
		}
		return s, nil

	case changedMsg:
		if msg.err != nil {
			s.notice = "Update failed: " + msg.err.Error()
			return s, nil
		}
		return s, s.load()

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *WordListScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	if s.confirmDelete {
		switch msg.String() {
		case "y":
			s.confirmDelete = false
			return s, s.deleteCurrent()
		default:
			s.confirmDelete = false
		}
		return s, nil
	}

	switch msg.String() {
	case "up", "k":
		if s.cursor > 0 {
			s.cursor--
		}
	case "down", "j":
		if s.cursor < len(s.words)-1 {
			s.cursor++
		}
	case "s":
		return s, s.cycleStatus()
	case "d":
		if len(s.words) > 0 {
			s.confirmDelete = true
		}
	}
	return s, nil
}

func (s *WordListScreen) cycleStatus() tea.Cmd {
	if len(s.words) == 0 {
		return nil
	}
	w := s.words[s.cursor]
	next := statusCycle[0]
	for i, st := range statusCycle {
		if st == w.Status {
			next = statusCycle[(i+1)%len(statusCycle)]
			break
		}
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return changedMsg{err: s.client.UpdateWordStatus(ctx, w.ID, next)}
	}
}

func (s *WordListScreen) deleteCurrent() tea.Cmd {
	if len(s.words) == 0 {
		return nil
	}
	w := s.words[s.cursor]
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), requestTimeout)
		defer cancel()
		return changedMsg{err: s.client.DeleteWord(ctx, w.ID)}
	}
}

func (s *WordListScreen) View(width, height int) string {
	if s.loading {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("Loading words..."))
	}
	if len(s.words) == 0 {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
			theme.Hint.Render("No words yet."))
	}

	visible := max(height-4, 1)
	if s.cursor < s.offset {
		s.offset = s.cursor
	}
	if s.cursor >= s.offset+visible {
		s.offset = s.cursor - visible + 1
	}

	var b strings.Builder
	b.WriteString(theme.Subtitle.Width(width).Render(fmt.Sprintf("%d words", len(s.words))))
	b.WriteString("\n")

	end := min(s.offset+visible, len(s.words))
	for i := s.offset; i < end; i++ {
		w := s.words[i]
		line := fmt.Sprintf("%-24s %-24s %s", clip(w.Text, 24), clip(w.Translation, 24), w.Status)
		if i == s.cursor {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.confirmDelete {
		w := s.words[s.cursor]
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render(fmt.Sprintf("Delete %q? y/n", w.Text)))
	} else if s.notice != "" {
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return b.String()
}

func clip(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
