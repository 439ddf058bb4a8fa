// Package choice is the multiple-choice game screen.
package choice

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	choicegame "github.com/abhisek/wordgym/internal/game/choice"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/screens/results"
	"github.com/abhisek/wordgym/internal/ui/components"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

// ChoiceScreen runs one multiple-choice session.
type ChoiceScreen struct {
	sess      *game.Session
	questions []choicegame.Question
	pool      []words.Word
	reporter  *game.Reporter
	log       *zap.Logger

	options  components.OptionList
	feedback bool
}

var _ screen.Screen = (*ChoiceScreen)(nil)
var _ screen.KeyHintProvider = (*ChoiceScreen)(nil)

// New builds the question set and starts a session over it.
func New(settings game.Settings, pool []words.Word, reporter *game.Reporter, log *zap.Logger) (*ChoiceScreen, error) {
	questions := choicegame.Build(pool, settings, game.NewRand())
	sess, err := game.NewSession(game.TypeChoice, settings, len(questions))
	if err != nil {
		return nil, err
	}
	s := &ChoiceScreen{
		sess:      sess,
		questions: questions,
		pool:      pool,
		reporter:  reporter,
		log:       log,
	}
	s.loadQuestion()
	return s, nil
}

func (s *ChoiceScreen) loadQuestion() {
	q := s.questions[s.sess.Index]
	s.options = components.NewOptionList(q.Word.Text, q.Options, q.CorrectIndex)
	s.feedback = false
}

func (s *ChoiceScreen) Init() tea.Cmd {
	return nil
}

func (s *ChoiceScreen) Title() string {
	return game.TypeChoice.Title()
}

func (s *ChoiceScreen) KeyHints() []layout.KeyHint {
	if s.feedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Option"},
		{Key: "Enter", Description: "Answer"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *ChoiceScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); !ok {
		return s, nil
	}

	if s.feedback {
		if s.sess.Done() {
			return s, s.finish()
		}
		s.loadQuestion()
		return s, nil
	}

	var submitted bool
	s.options, submitted = s.options.Update(msg)
	if !submitted {
		return s, nil
	}

	q := &s.questions[s.sess.Index]
	correct := q.Choose(s.options.ChosenIndex)
	if err := s.sess.RecordAnswer(q.Word.ID, correct); err != nil {
		s.log.Warn("record answer failed", zap.Error(err))
	}
	s.feedback = true
	return s, nil
}

func (s *ChoiceScreen) finish() tea.Cmd {
	settings := s.sess.Settings
	rebuild := func(pool []words.Word) (screen.Screen, error) {
		return New(settings, pool, s.reporter, s.log)
	}
	next := results.New(s.sess, s.pool, rebuild, s.reporter, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *ChoiceScreen) View(width, height int) string {
	var b strings.Builder

	index := s.sess.Index
	if s.feedback || index >= len(s.questions) {
		// During feedback Index already points past the answered question.
		index = len(s.sess.Records) - 1
	}
	q := s.questions[index]

	progress := components.NewProgressBar(
		fmt.Sprintf("Question %d/%d", index+1, len(s.questions)),
		float64(len(s.sess.Records))/float64(len(s.questions)),
		false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	card := s.options.View()
	if q.Word.Transcription != "" {
		card = theme.Hint.Render("["+q.Word.Transcription+"]") + "\n\n" + card
	}
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card)))
	b.WriteString("\n")

	if s.feedback {
		if s.sess.Records[len(s.sess.Records)-1].Correct() {
			b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
		} else {
			b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
				Render("Wrong — " + q.Word.Text + " means " + q.Options[q.CorrectIndex]))
		}
	} else {
		streak := s.sess.Score.Streak
		if streak >= 3 {
			b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).
				Render(fmt.Sprintf("streak: %d", streak)))
		}
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
