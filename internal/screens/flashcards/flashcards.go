// Package flashcards is the flashcard deck screen. Cards flip on demand
// and are marked by key or by a horizontal mouse drag.
package flashcards

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	cardsgame "github.com/abhisek/wordgym/internal/game/flashcards"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/screens/results"
	"github.com/abhisek/wordgym/internal/ui/components"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

// FlashcardsScreen runs one flashcard session.
type FlashcardsScreen struct {
	sess     *game.Session
	cards    []cardsgame.Card
	pool     []words.Word
	reporter *game.Reporter
	log      *zap.Logger

	flipped bool

	dragging   bool
	dragX      int
	dragY      int
	lastMarked string
}

var _ screen.Screen = (*FlashcardsScreen)(nil)
var _ screen.KeyHintProvider = (*FlashcardsScreen)(nil)

// New builds the deck and starts a session over it.
func New(settings game.Settings, pool []words.Word, reporter *game.Reporter, log *zap.Logger) (*FlashcardsScreen, error) {
	cards := cardsgame.Build(pool, settings, game.NewRand())
	sess, err := game.NewSession(game.TypeFlashcards, settings, len(cards))
	if err != nil {
		return nil, err
	}
	return &FlashcardsScreen{
		sess:     sess,
		cards:    cards,
		pool:     pool,
		reporter: reporter,
		log:      log,
	}, nil
}

func (s *FlashcardsScreen) Init() tea.Cmd {
	return nil
}

func (s *FlashcardsScreen) Title() string {
	return game.TypeFlashcards.Title()
}

func (s *FlashcardsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Space", Description: "Flip"},
		{Key: "K", Description: "Known"},
		{Key: "U", Description: "Unknown"},
		{Key: "S", Description: "Skip"},
	}
}

func (s *FlashcardsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return s.handleKey(msg)
	case tea.MouseClickMsg:
		s.dragging = true
		s.dragX = msg.X
		s.dragY = msg.Y
		return s, nil
	case tea.MouseReleaseMsg:
		if !s.dragging {
			return s, nil
		}
		s.dragging = false
		dx, dy := msg.X-s.dragX, msg.Y-s.dragY
		if outcome, ok := cardsgame.ClassifySwipe(dx, dy, cardsgame.SwipeThreshold); ok {
			return s.mark(outcome)
		}
		s.flipped = !s.flipped
		return s, nil
	}
	return s, nil
}

func (s *FlashcardsScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "space", " ", "enter", "f":
		s.flipped = !s.flipped
	case "k", "right":
		return s.mark(game.OutcomeCorrect)
	case "u", "left":
		return s.mark(game.OutcomeWrong)
	case "s", "down":
		return s.mark(game.OutcomeSkipped)
	}
	return s, nil
}

func (s *FlashcardsScreen) mark(o game.Outcome) (screen.Screen, tea.Cmd) {
	if s.sess.Done() {
		return s, nil
	}
	card := s.cards[s.sess.Index]
	if err := s.sess.RecordOutcome(card.Word.ID, o); err != nil {
		s.log.Warn("record outcome failed", zap.Error(err))
		return s, nil
	}
	switch o {
	case game.OutcomeCorrect:
		s.lastMarked = "known"
	case game.OutcomeWrong:
		s.lastMarked = "unknown"
	default:
		s.lastMarked = "skipped"
	}
	s.flipped = false
	if s.sess.Done() {
		return s, s.finish()
	}
	return s, nil
}

func (s *FlashcardsScreen) finish() tea.Cmd {
	settings := s.sess.Settings
	rebuild := func(pool []words.Word) (screen.Screen, error) {
		return New(settings, pool, s.reporter, s.log)
	}
	next := results.New(s.sess, s.pool, rebuild, s.reporter, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *FlashcardsScreen) View(width, height int) string {
	var b strings.Builder

	// After the last mark the index points past the deck for one frame.
	index := min(s.sess.Index, len(s.cards)-1)
	card := s.cards[index]

	progress := components.NewProgressBar(
		fmt.Sprintf("Card %d/%d", index+1, len(s.cards)),
		float64(len(s.sess.Records))/float64(len(s.cards)),
		false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	front, back := card.Word.Text, card.Word.Translation
	if card.Front == cardsgame.SideTarget {
		front, back = back, front
	}
	face := front
	hint := "flip for the answer"
	if s.flipped {
		face = back
		hint = "mark it: known, unknown or skip"
	}

	body := theme.Title.Render(face)
	if !s.flipped && card.Front == cardsgame.SideSource && card.Word.Transcription != "" {
		body += "\n" + theme.Hint.Render("["+card.Word.Transcription+"]")
	}
	body += "\n\n" + theme.Hint.Render(hint)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Width(min(width-8, 44)).Align(lipgloss.Center).Render(body)))

	if s.lastMarked != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render("last card: " + s.lastMarked))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
