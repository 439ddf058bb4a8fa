// Package buildword is the letter-assembly game screen.
package buildword

import (
	"fmt"
	"strings"
	"unicode"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	buildgame "github.com/abhisek/wordgym/internal/game/buildword"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/screens/results"
	"github.com/abhisek/wordgym/internal/ui/components"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

// BuildWordScreen runs one build-word session.
type BuildWordScreen struct {
	sess     *game.Session
	puzzles  []buildgame.Puzzle
	pool     []words.Word
	reporter *game.Reporter
	log      *zap.Logger

	cursor   int // button cursor
	feedback bool
	correct  bool
	notice   string
}

var _ screen.Screen = (*BuildWordScreen)(nil)
var _ screen.KeyHintProvider = (*BuildWordScreen)(nil)

// New builds the puzzle set and starts a session over it.
func New(settings game.Settings, pool []words.Word, reporter *game.Reporter, log *zap.Logger) (*BuildWordScreen, error) {
	puzzles := buildgame.Build(pool, settings, game.NewRand())
	sess, err := game.NewSession(game.TypeBuildWord, settings, len(puzzles))
	if err != nil {
		return nil, err
	}
	return &BuildWordScreen{
		sess:     sess,
		puzzles:  puzzles,
		pool:     pool,
		reporter: reporter,
		log:      log,
	}, nil
}

func (s *BuildWordScreen) Init() tea.Cmd {
	return nil
}

func (s *BuildWordScreen) Title() string {
	return game.TypeBuildWord.Title()
}

func (s *BuildWordScreen) KeyHints() []layout.KeyHint {
	if s.feedback {
		return []layout.KeyHint{{Key: "any key", Description: "Continue"}}
	}
	return []layout.KeyHint{
		{Key: "a-z", Description: "Place letter"},
		{Key: "←→/Space", Description: "Pick button"},
		{Key: "Backspace", Description: "Undo"},
		{Key: "Enter", Description: "Check"},
	}
}

func (s *BuildWordScreen) puzzle() *buildgame.Puzzle {
	i := s.sess.Index
	if s.feedback || i >= len(s.puzzles) {
		i = len(s.sess.Records) - 1
	}
	return &s.puzzles[i]
}

func (s *BuildWordScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	if s.feedback {
		if s.sess.Done() {
			return s, s.finish()
		}
		s.feedback = false
		s.cursor = 0
		return s, nil
	}

	p := &s.puzzles[s.sess.Index]
	s.notice = ""

	switch key.String() {
	case "left", "h":
		if s.cursor > 0 {
			s.cursor--
		}
	case "right", "l":
		if s.cursor < len(p.Buttons)-1 {
			s.cursor++
		}
	case "space", " ":
		p.Press(s.cursor)
	case "backspace":
		s.clearLast(p)
	case "enter":
		return s.check(p)
	default:
		s.pressByRune(p, key)
	}
	return s, nil
}

// pressByRune consumes the first unused button carrying the typed letter.
func (s *BuildWordScreen) pressByRune(p *buildgame.Puzzle, key tea.KeyMsg) {
	text := key.String()
	runes := []rune(text)
	if len(runes) != 1 {
		return
	}
	r := unicode.ToLower(runes[0])
	for i := range p.Buttons {
		if !p.Buttons[i].Used && p.Buttons[i].Rune == r {
			p.Press(i)
			return
		}
	}
}

func (s *BuildWordScreen) clearLast(p *buildgame.Puzzle) {
	for i := len(p.Slots) - 1; i >= 0; i-- {
		if p.Slots[i].Kind == buildgame.SlotLetter && p.Slots[i].Filled {
			p.Clear(i)
			return
		}
	}
}

func (s *BuildWordScreen) check(p *buildgame.Puzzle) (screen.Screen, tea.Cmd) {
	correct, err := p.Check()
	if err != nil {
		s.notice = "Fill every letter first."
		return s, nil
	}
	if err := s.sess.RecordAnswer(p.Word.ID, correct); err != nil {
		s.log.Warn("record answer failed", zap.Error(err))
	}
	s.feedback = true
	s.correct = correct
	return s, nil
}

func (s *BuildWordScreen) finish() tea.Cmd {
	settings := s.sess.Settings
	rebuild := func(pool []words.Word) (screen.Screen, error) {
		return New(settings, pool, s.reporter, s.log)
	}
	next := results.New(s.sess, s.pool, rebuild, s.reporter, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *BuildWordScreen) View(width, height int) string {
	var b strings.Builder

	p := s.puzzle()
	answered := len(s.sess.Records)
	shown := s.sess.Index
	if s.feedback {
		shown = answered - 1
	}

	progress := components.NewProgressBar(
		fmt.Sprintf("Word %d/%d", shown+1, len(s.puzzles)),
		float64(answered)/float64(len(s.puzzles)),
		false, min(width-8, 60))
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, progress.View()))
	b.WriteString("\n\n")

	prompt := theme.Body.Render(p.Word.Translation)
	card := prompt + "\n\n" + renderSlots(p) + "\n\n" + s.renderButtons(p)
	b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, theme.Card.Render(card)))
	b.WriteString("\n")

	switch {
	case s.feedback && s.correct:
		b.WriteString(theme.Correct.Width(width).Align(lipgloss.Center).Render("Correct!"))
	case s.feedback:
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).
			Render("Wrong — it was " + p.Word.Text))
	case s.notice != "":
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func renderSlots(p *buildgame.Puzzle) string {
	var parts []string
	for _, slot := range p.Slots {
		switch {
		case slot.Kind == buildgame.SlotFixed:
			parts = append(parts, string(slot.Target))
		case slot.Filled:
			parts = append(parts, theme.Selected.Render(string(slot.Rune)))
		default:
			parts = append(parts, theme.Unselected.Render("_"))
		}
	}
	return strings.Join(parts, " ")
}

func (s *BuildWordScreen) renderButtons(p *buildgame.Puzzle) string {
	var parts []string
	for i, btn := range p.Buttons {
		label := " " + string(btn.Rune) + " "
		switch {
		case btn.Used:
			parts = append(parts, theme.Hint.Render("   "))
		case i == s.cursor && !s.feedback:
			parts = append(parts, theme.Selected.Render(label))
		default:
			parts = append(parts, theme.Unselected.Render(label))
		}
	}
	return strings.Join(parts, " ")
}
