// Package setup is the per-game settings form: group and status
// filters, item count, ordering and the game-specific options. Starting
// the session filters the pool and hands off to the game screen.
package setup

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/api"
	"github.com/abhisek/wordgym/internal/config"
	"github.com/abhisek/wordgym/internal/game"
	buildwordgame "github.com/abhisek/wordgym/internal/game/buildword"
	choicegame "github.com/abhisek/wordgym/internal/game/choice"
	flashcardsgame "github.com/abhisek/wordgym/internal/game/flashcards"
	listengame "github.com/abhisek/wordgym/internal/game/listen"
	pairsgame "github.com/abhisek/wordgym/internal/game/pairs"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	buildwordscr "github.com/abhisek/wordgym/internal/screens/buildword"
	choicescr "github.com/abhisek/wordgym/internal/screens/choice"
	flashcardsscr "github.com/abhisek/wordgym/internal/screens/flashcards"
	listenscr "github.com/abhisek/wordgym/internal/screens/listen"
	pairsscr "github.com/abhisek/wordgym/internal/screens/pairs"
	"github.com/abhisek/wordgym/internal/speech"
	"github.com/abhisek/wordgym/internal/ui/components"
	"github.com/abhisek/wordgym/internal/ui/layout"
	"github.com/abhisek/wordgym/internal/ui/theme"
	"github.com/abhisek/wordgym/internal/words"
)

// targetVoices are the target-language narration choices offered for
// listen-and-repeat. Empty means no target voice.
var targetVoices = []string{"", "ru", "de", "es", "fr", "it"}

type fieldKind int

const (
	fieldGroup fieldKind = iota
	fieldStatus
	fieldCount
	fieldOrder
	fieldFallback
	fieldPrefill
	fieldSides
	fieldVoice
	fieldNoVoice
	fieldStart
)

type field struct {
	kind  fieldKind
	label string
}

// loadedMsg delivers the word and group collections.
type loadedMsg struct {
	words  []words.Word
	groups []words.Group
	err    error
}

// SetupScreen is the settings form for one game type.
type SetupScreen struct {
	gameType game.Type
	cfg      *config.Config
	client   *api.Client
	reporter *game.Reporter
	speaker  speech.Speaker
	log      *zap.Logger

	settings game.Settings
	fields   []field
	cursor   int

	countInput components.TextInput
	groups     []words.Group
	groupIdx   int // 0 = all groups
	statusIdx  int
	voiceIdx   int

	all     []words.Word
	loading bool
	errMsg  string
}

var _ screen.Screen = (*SetupScreen)(nil)
var _ screen.KeyHintProvider = (*SetupScreen)(nil)

var statusChoices = []words.Status{words.StatusAll, words.StatusUnknown, words.StatusLearning, words.StatusKnown}

// New creates the setup screen for a game with its default settings.
func New(t game.Type, cfg *config.Config, client *api.Client, reporter *game.Reporter, speaker speech.Speaker, log *zap.Logger) *SetupScreen {
	settings := game.DefaultSettings(t)
	settings.BasePause = cfg.BasePause

	fields := []field{
		{fieldGroup, "Group"},
		{fieldStatus, "Status"},
		{fieldCount, "Words"},
		{fieldOrder, "Order"},
	}
	switch t {
	case game.TypeChoice:
		fields = append(fields, field{fieldFallback, "Pad small groups"})
	case game.TypeBuildWord:
		fields = append(fields,
			field{fieldFallback, "Pad small groups"},
			field{fieldPrefill, "Prefill first letter"})
	case game.TypeFlashcards:
		fields = append(fields, field{fieldSides, "Card sides"})
	case game.TypeListen:
		fields = append(fields,
			field{fieldVoice, "Target voice"},
			field{fieldNoVoice, "Without voice"})
	}
	fields = append(fields, field{fieldStart, "Start"})

	return &SetupScreen{
		gameType:   t,
		cfg:        cfg,
		client:     client,
		reporter:   reporter,
		speaker:    speaker,
		log:        log,
		settings:   settings,
		fields:     fields,
		countInput: components.NewTextInput(fmt.Sprintf("%d", settings.Count), true, 3),
		loading:    true,
	}
}

func (s *SetupScreen) Init() tea.Cmd {
	return tea.Batch(s.load(), s.countInput.Init())
}

func (s *SetupScreen) Title() string {
	return s.gameType.Title()
}

func (s *SetupScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Field"},
		{Key: "←→", Description: "Change"},
		{Key: "Enter", Description: "Start"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *SetupScreen) load() tea.Cmd {
	return func() tea.Msg {
		ctx := context.Background()
		all, err := s.client.Words(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		groups, err := s.client.Groups(ctx)
		if err != nil {
			return loadedMsg{err: err}
		}
		return loadedMsg{words: all, groups: groups}
	}
}

func (s *SetupScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case loadedMsg:
		s.loading = false
		if msg.err != nil {
			s.errMsg = msg.err.Error()
			s.log.Warn("setup load failed", zap.Error(msg.err))
			return s, nil
		}
		s.all = msg.words
		s.groups = msg.groups
		return s, nil

	case tea.KeyMsg:
		return s.handleKey(msg)
	}

	if s.current().kind == fieldCount {
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) current() field {
	return s.fields[s.cursor]
}

func (s *SetupScreen) handleKey(msg tea.KeyMsg) (screen.Screen, tea.Cmd) {
	switch msg.String() {
	case "up", "shift+tab":
		if s.cursor > 0 {
			s.cursor--
		}
		return s, nil
	case "down", "tab":
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
		return s, nil
	case "left":
		s.cycle(-1)
		return s, nil
	case "right":
		s.cycle(1)
		return s, nil
	case "enter":
		if s.current().kind == fieldStart {
			return s.start()
		}
		if s.cursor < len(s.fields)-1 {
			s.cursor++
		}
		return s, nil
	}

	if s.current().kind == fieldCount {
		var cmd tea.Cmd
		s.countInput, cmd = s.countInput.Update(msg)
		return s, cmd
	}
	return s, nil
}

func (s *SetupScreen) cycle(dir int) {
	switch s.current().kind {
	case fieldGroup:
		n := len(s.groups) + 1
		s.groupIdx = (s.groupIdx + dir + n) % n
		if s.groupIdx == 0 {
			s.settings.GroupID = game.GroupAll
		} else {
			s.settings.GroupID = s.groups[s.groupIdx-1].ID
		}
	case fieldStatus:
		n := len(statusChoices)
		s.statusIdx = (s.statusIdx + dir + n) % n
		s.settings.Status = statusChoices[s.statusIdx]
	case fieldOrder:
		s.settings.Shuffle = !s.settings.Shuffle
	case fieldFallback:
		switch {
		case dir > 0 && s.settings.MinPoolFallback == 0:
			s.settings.MinPoolFallback = game.DefaultMinPoolFallback
		case dir < 0 && s.settings.MinPoolFallback != 0:
			s.settings.MinPoolFallback = 0
		}
	case fieldPrefill:
		s.settings.PrefillFirst = !s.settings.PrefillFirst
	case fieldSides:
		s.settings.RandomSides = !s.settings.RandomSides
	case fieldVoice:
		n := len(targetVoices)
		s.voiceIdx = (s.voiceIdx + dir + n) % n
		s.settings.TargetVoice = targetVoices[s.voiceIdx]
	case fieldNoVoice:
		s.settings.SkipIfNoVoice = !s.settings.SkipIfNoVoice
	}
}

// start resolves the count, filters the pool and hands off to the game
// screen. An empty pool surfaces the insufficient-pool message inline.
func (s *SetupScreen) start() (screen.Screen, tea.Cmd) {
	if s.loading || s.all == nil {
		return s, nil
	}

	if v := strings.TrimSpace(s.countInput.Value()); v == "" {
		s.settings.Count = game.CountAll
	} else if n, err := s.countInput.NumericValue(); err == nil && n > 0 {
		s.settings.Count = n
	} else {
		s.errMsg = "word count must be a positive number"
		return s, nil
	}

	next, err := s.buildScreen()
	if err != nil {
		if errors.Is(err, game.ErrInsufficientPool) {
			s.errMsg = "Not enough words for this game — add words or relax the filters."
			return s, nil
		}
		s.errMsg = err.Error()
		return s, nil
	}

	s.errMsg = ""
	return s, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
}

func (s *SetupScreen) buildScreen() (screen.Screen, error) {
	switch s.gameType {
	case game.TypeChoice:
		pool := game.FilterPool(s.all, s.settings, choicegame.Need)
		return choicescr.New(s.settings, pool, s.reporter, s.log)
	case game.TypeBuildWord:
		pool := game.FilterPool(s.all, s.settings, buildwordgame.Need)
		return buildwordscr.New(s.settings, pool, s.reporter, s.log)
	case game.TypePairs, game.TypeColumns:
		pool := game.FilterPool(s.all, s.settings, pairsgame.Need)
		return pairsscr.New(s.gameType, s.settings, pool, s.reporter, s.log)
	case game.TypeFlashcards:
		pool := game.FilterPool(s.all, s.settings, flashcardsgame.Need)
		return flashcardsscr.New(s.settings, pool, s.reporter, s.log)
	case game.TypeListen:
		pool := game.FilterPool(s.all, s.settings, listengame.Need)
		return listenscr.New(s.settings, pool, s.speaker, s.log)
	}
	return nil, fmt.Errorf("unknown game type %q", s.gameType)
}

func (s *SetupScreen) View(width, height int) string {
	if s.loading {
		return layout.Center(theme.Hint.Render("Loading words..."), width, height)
	}

	var b strings.Builder
	b.WriteString(theme.Title.Width(width).Render(s.gameType.Title()))
	b.WriteString("\n\n")

	for i, f := range s.fields {
		label := f.label
		value := s.fieldValue(f)

		var line string
		if f.kind == fieldStart {
			line = "[ " + label + " ]"
		} else {
			line = fmt.Sprintf("%-22s %s", label, value)
		}

		if i == s.cursor {
			line = theme.Selected.Render("  ▸ " + line)
		} else {
			line = theme.Unselected.Render("    " + line)
		}
		b.WriteString(lipgloss.PlaceHorizontal(width, lipgloss.Center, line))
		b.WriteString("\n")
	}

	if s.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(theme.Incorrect.Width(width).Align(lipgloss.Center).Render(s.errMsg))
	}

	return lipgloss.PlaceVertical(height, lipgloss.Center, b.String())
}

func (s *SetupScreen) fieldValue(f field) string {
	switch f.kind {
	case fieldGroup:
		if s.groupIdx == 0 {
			return "all groups"
		}
		return s.groups[s.groupIdx-1].Name
	case fieldStatus:
		if s.settings.Status == words.StatusAll {
			return "any status"
		}
		return string(s.settings.Status)
	case fieldCount:
		return s.countInput.View() + theme.Hint.Render("  (empty = all)")
	case fieldOrder:
		if s.settings.Shuffle {
			return "shuffled"
		}
		return "as listed"
	case fieldFallback:
		if s.settings.MinPoolFallback == 0 {
			return "off"
		}
		return fmt.Sprintf("under %d words", s.settings.MinPoolFallback)
	case fieldPrefill:
		return onOff(s.settings.PrefillFirst)
	case fieldSides:
		if s.settings.RandomSides {
			return "random"
		}
		return "word first"
	case fieldVoice:
		if s.settings.TargetVoice == "" {
			return "none"
		}
		return s.settings.TargetVoice
	case fieldNoVoice:
		if s.settings.SkipIfNoVoice {
			return "skip translation"
		}
		return "reuse source voice"
	}
	return ""
}

func onOff(v bool) string {
	if v {
		return "on"
	}
	return "off"
}
