// Package pairs is the screen for the two pair-matching games. The same
// board drives both: matching pairs shows plain tiles, column pairs adds
// labeled language columns.
package pairs

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	pairsgame "github.com/abhisek/wordgym/internal/game/pairs"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/screens/results"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

const (
	sideLeft = iota
	sideRight
)

// PairsScreen runs one pairs or columns session.
type PairsScreen struct {
	gameType game.Type
	sess     *game.Session
	board    *pairsgame.Board
	pool     []words.Word
	reporter *game.Reporter
	log      *zap.Logger

	side        int
	cursorLeft  int
	cursorRight int
	notice      string
}

var _ screen.Screen = (*PairsScreen)(nil)
var _ screen.KeyHintProvider = (*PairsScreen)(nil)

// New builds the board and starts a session over it.
func New(t game.Type, settings game.Settings, pool []words.Word, reporter *game.Reporter, log *zap.Logger) (*PairsScreen, error) {
	board := pairsgame.Build(pool, settings, game.NewRand())
	sess, err := game.NewSession(t, settings, len(board.Items))
	if err != nil {
		return nil, err
	}
	return &PairsScreen{
		gameType: t,
		sess:     sess,
		board:    board,
		pool:     pool,
		reporter: reporter,
		log:      log,
	}, nil
}

func (s *PairsScreen) Init() tea.Cmd {
	return nil
}

func (s *PairsScreen) Title() string {
	return s.gameType.Title()
}

func (s *PairsScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "←→", Description: "Column"},
		{Key: "↑↓", Description: "Move"},
		{Key: "Enter", Description: "Select"},
		{Key: "Esc", Description: "Quit"},
	}
}

func (s *PairsScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return s, nil
	}

	switch key.String() {
	case "left", "h":
		s.side = sideLeft
	case "right", "l":
		s.side = sideRight
	case "tab":
		s.side = 1 - s.side
	case "up", "k":
		s.move(-1)
	case "down", "j":
		s.move(1)
	case "enter", "space", " ":
		return s.selectCursor()
	}
	return s, nil
}

func (s *PairsScreen) move(delta int) {
	cursor := &s.cursorLeft
	if s.side == sideRight {
		cursor = &s.cursorRight
	}
	next := *cursor + delta
	if next >= 0 && next < len(s.board.Items) {
		*cursor = next
	}
}

func (s *PairsScreen) selectCursor() (screen.Screen, tea.Cmd) {
	s.notice = ""
	var commit *pairsgame.Commit
	if s.side == sideLeft {
		commit = s.board.SelectLeft(s.cursorLeft)
	} else {
		commit = s.board.SelectRight(s.cursorRight)
	}
	if commit == nil {
		return s, nil
	}

	if commit.Record {
		w := s.board.Word(*commit)
		if err := s.sess.RecordAnswer(w.ID, commit.Correct); err != nil {
			s.log.Warn("record answer failed", zap.Error(err))
		}
	} else if !commit.Matched {
		s.notice = "Not a pair, try again."
	}

	if s.board.Solved() && s.sess.Done() {
		return s, s.finish()
	}
	return s, nil
}

func (s *PairsScreen) finish() tea.Cmd {
	t := s.gameType
	settings := s.sess.Settings
	rebuild := func(pool []words.Word) (screen.Screen, error) {
		return New(t, settings, pool, s.reporter, s.log)
	}
	next := results.New(s.sess, s.pool, rebuild, s.reporter, s.log)
	return func() tea.Msg { return router.ReplaceScreenMsg{Screen: next} }
}

func (s *PairsScreen) View(width, height int) string {
	colWidth := min((width-10)/2, 32)

	left := s.renderColumn(s.board.Left, sideLeft, colWidth)
	right := s.renderColumn(s.board.Right, sideRight, colWidth)

	if s.gameType == game.TypeColumns {
		left = theme.Subtitle.Width(colWidth).Align(lipgloss.Center).Render("English") + "\n" + left
		right = theme.Subtitle.Width(colWidth).Align(lipgloss.Center).Render("Translation") + "\n" + right
	}

	columns := lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
	body := lipgloss.PlaceHorizontal(width, lipgloss.Center, columns)

	if s.notice != "" {
		body += "\n\n" + theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.notice)
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, body)
}

func (s *PairsScreen) renderColumn(order []int, side, colWidth int) string {
	cursor := s.cursorLeft
	pending := s.board.PendingLeft()
	matched := s.board.MatchedLeft
	if side == sideRight {
		cursor = s.cursorRight
		pending = s.board.PendingRight()
		matched = s.board.MatchedRight
	}

	var b strings.Builder
	for pos, item := range order {
		text := s.board.Items[item].Text
		if side == sideRight {
			text = s.board.Items[item].Translation
		}

		style := theme.Unselected
		switch {
		case matched(pos):
			style = theme.Correct
		case pos == pending:
			style = theme.Selected
		case s.side == side && pos == cursor:
			style = theme.Selected
		}

		marker := "  "
		if s.side == side && pos == cursor {
			marker = "▸ "
		}
		b.WriteString(style.MaxWidth(colWidth).Render(marker + text))
		b.WriteString("\n")
	}
	return b.String()
}
