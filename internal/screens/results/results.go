// Package results shows the finished session: score, streak, the wrong
// answers, and the retry and mark-known actions.
package results

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

const reportTimeout = 10 * time.Second

// Rebuild constructs a fresh game screen over the given pool. The game
// screens provide it so retry loops do not need the setup screen.
type Rebuild func(pool []words.Word) (screen.Screen, error)

type reportedMsg struct{}

type markedMsg struct{ updated int }

// ResultsScreen is the session results view.
type ResultsScreen struct {
	sess     *game.Session
	pool     []words.Word
	rebuild  Rebuild
	reporter *game.Reporter
	log      *zap.Logger

	wrongIDs []string
	byID     map[string]words.Word
	cursor   int
	selected map[string]bool
	notice   string
}

var _ screen.Screen = (*ResultsScreen)(nil)
var _ screen.KeyHintProvider = (*ResultsScreen)(nil)

// New creates the results screen for a finished session.
func New(sess *game.Session, pool []words.Word, rebuild Rebuild, reporter *game.Reporter, log *zap.Logger) *ResultsScreen {
	byID := make(map[string]words.Word, len(pool))
	for _, w := range pool {
		byID[w.ID] = w
	}
	return &ResultsScreen{
		sess:     sess,
		pool:     pool,
		rebuild:  rebuild,
		reporter: reporter,
		log:      log,
		wrongIDs: sess.WrongWordIDs(),
		byID:     byID,
		selected: make(map[string]bool),
	}
}

// Init submits the session's stats batch. TakeReport guards against
// double submission, so revisiting the screen is harmless.
func (r *ResultsScreen) Init() tea.Cmd {
	records, ok := r.sess.TakeReport()
	if !ok {
		return nil
	}
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		r.reporter.Report(ctx, r.sess.Game, records)
		return reportedMsg{}
	}
}

func (r *ResultsScreen) Title() string {
	return r.sess.Game.Title() + " — Results"
}

func (r *ResultsScreen) KeyHints() []layout.KeyHint {
	hints := []layout.KeyHint{
		{Key: "R", Description: "Retry all"},
		{Key: "W", Description: "Retry wrong"},
	}
	if len(r.wrongIDs) > 0 {
		hints = append(hints,
			layout.KeyHint{Key: "Space", Description: "Select"},
			layout.KeyHint{Key: "M", Description: "Mark known"},
		)
	}
	return append(hints, layout.KeyHint{Key: "Esc", Description: "Settings"})
}

func (r *ResultsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case reportedMsg:
		return r, nil

	case markedMsg:
		if msg.updated > 0 {
			r.notice = fmt.Sprintf("Marked %d word(s) as known.", msg.updated)
		} else {
			r.notice = "Could not update word status."
		}
		return r, nil

	case tea.KeyMsg:
		return r.handleKey(msg)
	}
	return r, nil
}

func (r *ResultsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "k":
		if r.cursor > 0 {
			r.cursor--
		}
	case "down", "j":
		if r.cursor < len(r.wrongIDs)-1 {
			r.cursor++
		}
	case "space", " ":
		if r.cursor < len(r.wrongIDs) {
			id := r.wrongIDs[r.cursor]
			r.selected[id] = !r.selected[id]
		}
	case "r":
		return r.retry(r.pool)
	case "w":
		return r.retryWrong()
	case "m":
		return r.markKnown()
	case "enter":
		return r, func() tea.Msg { return router.PopScreenMsg{} }
	}
	return r, nil
}

// retry replaces this screen with a fresh session over the given pool.
func (r *ResultsScreen) retry(pool []words.Word) (screen.Screen, tea.Cmd) {
	next, err := r.rebuild(pool)
	if err != nil {
		r.notice = "Could not restart: " + err.Error()
		return r, nil
	}
	return r, func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

// retryWrong narrows the pool to the words answered incorrectly. With a
// clean sheet it surfaces the no-op instead of starting an empty session.
func (r *ResultsScreen) retryWrong() (screen.Screen, tea.Cmd) {
	if len(r.wrongIDs) == 0 {
		r.notice = game.ErrNothingToRetry.Error()
		return r, nil
	}
	wrong := make(map[string]bool, len(r.wrongIDs))
	for _, id := range r.wrongIDs {
		wrong[id] = true
	}
	var pool []words.Word
	for _, w := range r.pool {
		if wrong[w.ID] {
			pool = append(pool, w)
		}
	}
	return r.retry(pool)
}

func (r *ResultsScreen) markKnown() (screen.Screen, tea.Cmd) {
	var ids []string
	for _, id := range r.wrongIDs {
		if r.selected[id] {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		r.notice = "Select words with Space first."
		return r, nil
	}
	return r, func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), reportTimeout)
		defer cancel()
		return markedMsg{updated: r.reporter.MarkKnown(ctx, ids)}
	}
}

func (r *ResultsScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString(theme.Title.Width(width).Render("Session complete!"))
	b.WriteString("\n\n")

	score := r.sess.Score
	accuracy := 0.0
	if r.sess.Items > 0 {
		accuracy = float64(score.Correct) / float64(r.sess.Items)
	}
	statsLine := fmt.Sprintf("Words: %d        Correct: %d        Accuracy: %.0f%%        Best streak: %d",
		r.sess.Items, score.Correct, accuracy*100, score.BestStreak)
	b.WriteString(lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Foreground(theme.Text).Render(statsLine))
	b.WriteString("\n\n")

	if len(r.wrongIDs) == 0 {
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("No mistakes — well done!"))
	} else {
		b.WriteString(theme.Subtitle.Width(width).Render("Missed words"))
		b.WriteString("\n")
		for i, id := range r.wrongIDs {
			w := r.byID[id]
			check := "[ ]"
			if r.selected[id] {
				check = "[x]"
			}
			line := fmt.Sprintf("%s %s — %s", check, w.Text, w.Translation)
			if i == r.cursor {
				line = theme.Selected.Render("▸ " + line)
			} else {
				line = theme.Unselected.Render("  " + line)
			}
			b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
			b.WriteString("\n")
		}
	}

	if r.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(r.notice))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
