// Package listen is the hands-free narration screen. It owns a playback
// scheduler and forwards its goroutine callbacks as Bubble Tea messages.
package listen

import (
	"fmt"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/game"
	listengame "github.com/abhisek/wordgym/internal/game/listen"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/speech"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

const (
	pauseStep = 250 * time.Millisecond
	minPause  = 250 * time.Millisecond
	maxPause  = 10 * time.Second
)

type advanceMsg struct{ index int }

type doneMsg struct{ stopped bool }

// ListenScreen narrates the playlist. There is no answer recording; the
// session is over when the player leaves.
type ListenScreen struct {
	playlist  []words.Word
	cfg       listengame.Config
	scheduler *listengame.Scheduler
	log       *zap.Logger

	events  chan tea.Msg
	index   int
	playing bool
	notice  string
}

var _ screen.Screen = (*ListenScreen)(nil)
var _ screen.KeyHintProvider = (*ListenScreen)(nil)

// New builds the playlist and a stopped scheduler over it.
func New(settings game.Settings, pool []words.Word, speaker speech.Speaker, log *zap.Logger) (*ListenScreen, error) {
	playlist := listengame.Build(pool, settings, game.NewRand())
	if len(playlist) == 0 {
		return nil, game.ErrInsufficientPool
	}
	cfg := listengame.ConfigFromSettings(settings)
	return &ListenScreen{
		playlist:  playlist,
		cfg:       cfg,
		scheduler: listengame.NewScheduler(speaker, cfg, log),
		log:       log,
		events:    make(chan tea.Msg, 2*len(playlist)+2),
	}, nil
}

func (s *ListenScreen) Init() tea.Cmd {
	return s.play()
}

func (s *ListenScreen) Title() string {
	return game.TypeListen.Title()
}

func (s *ListenScreen) KeyHints() []layout.KeyHint {
	toggle := layout.KeyHint{Key: "Space", Description: "Play"}
	if s.playing {
		toggle.Description = "Pause"
	}
	return []layout.KeyHint{
		toggle,
		{Key: "←→", Description: "Seek"},
		{Key: "+/-", Description: "Pause length"},
		{Key: "Esc", Description: "Quit"},
	}
}

// Close stops the narration goroutine. The app calls it before popping
// the screen.
func (s *ListenScreen) Close() {
	s.scheduler.Stop()
}

func (s *ListenScreen) waitEvent() tea.Cmd {
	return func() tea.Msg { return <-s.events }
}

func (s *ListenScreen) play() tea.Cmd {
	s.playing = true
	s.notice = ""
	s.scheduler.Start(s.playlist, s.index, listengame.Events{
		Advance: func(i int) { s.events <- advanceMsg{index: i} },
		Done:    func(stopped bool) { s.events <- doneMsg{stopped: stopped} },
	})
	return s.waitEvent()
}

func (s *ListenScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case advanceMsg:
		s.index = msg.index
		return s, s.waitEvent()

	case doneMsg:
		s.playing = false
		if !msg.stopped {
			s.index = 0
			s.notice = "Playlist finished."
		}
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	return s, nil
}

func (s *ListenScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "space", " ", "p":
		if s.playing {
			s.scheduler.Stop()
			return s, nil
		}
		return s, s.play()

	case "left", "h":
		s.seek(-1)
	case "right", "l":
		s.seek(1)

	case "+", "=":
		s.adjustPause(pauseStep)
	case "-":
		s.adjustPause(-pauseStep)
	}
	return s, nil
}

// seek moves the position while paused. Narration restarts from the new
// position on the next play.
func (s *ListenScreen) seek(delta int) {
	if s.playing {
		return
	}
	next := s.index + delta
	if next >= 0 && next < len(s.playlist) {
		s.index = next
	}
}

func (s *ListenScreen) adjustPause(delta time.Duration) {
	next := s.cfg.BasePause + delta
	if next < minPause {
		next = minPause
	}
	if next > maxPause {
		next = maxPause
	}
	s.cfg.BasePause = next
	s.scheduler.Reconfigure(s.cfg)
	s.notice = fmt.Sprintf("pause: %.2gs", next.Seconds())
}

func (s *ListenScreen) View(width, height int) string {
	var b strings.Builder

	state := "paused"
	if s.playing {
		state = "playing"
	}
	b.WriteString(theme.Subtitle.Width(width).Render(
		fmt.Sprintf("%s  ·  %d/%d", state, s.index+1, len(s.playlist))))
	b.WriteString("\n\n")

	// A window of the playlist around the current word.
	const window = 7
	start := s.index - window/2
	if start > len(s.playlist)-window {
		start = len(s.playlist) - window
	}
	if start < 0 {
		start = 0
	}
	end := min(start+window, len(s.playlist))

	for i := start; i < end; i++ {
		w := s.playlist[i]
		line := fmt.Sprintf("%s — %s", w.Text, w.Translation)
		if i == s.index {
			line = theme.Selected.Render("▸ " + line)
		} else {
			line = theme.Unselected.Render("  " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.notice != "" {
		b.WriteString("\n")
		b.WriteString(theme.Hint.Width(width).Align(lipgloss.Center).Render(s.notice))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}
