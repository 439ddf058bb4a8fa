package home

import (
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"go.uber.org/zap"

	"github.com/abhisek/wordgym/internal/api"
	"github.com/abhisek/wordgym/internal/config"
	"github.com/abhisek/wordgym/internal/game"
	"github.com/abhisek/wordgym/internal/router"
	"github.com/abhisek/wordgym/internal/screen"
	"github.com/abhisek/wordgym/internal/screens/grouplist"
	"github.com/abhisek/wordgym/internal/screens/setup"
	"github.com/abhisek/wordgym/internal/screens/wordlist"
	"github.com/abhisek/wordgym/internal/speech"
	"github.com/abhisek/wordgym/internal/ui/components"
	"github.com/abhisek/wordgym/internal/ui/theme"
)

// HomeScreen is the main menu: the six practice games plus the word and
// group browsers.
type HomeScreen struct {
	menu components.Menu
}

var _ screen.Screen = (*HomeScreen)(nil)

// New creates the home screen.
func New(cfg *config.Config, client *api.Client, reporter *game.Reporter, speaker speech.Speaker, log *zap.Logger) *HomeScreen {
	gameItem := func(t game.Type, hint string) components.MenuItem {
		return components.MenuItem{
			Label: strings.ToUpper(t.Title()),
			Hint:  hint,
			Action: func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{
						Screen: setup.New(t, cfg, client, reporter, speaker, log),
					}
				}
			},
		}
	}

	items := []components.MenuItem{
		gameItem(game.TypeChoice, "pick the right translation"),
		gameItem(game.TypeBuildWord, "assemble words from letters"),
		gameItem(game.TypePairs, "match words with translations"),
		gameItem(game.TypeColumns, "pair up two columns"),
		gameItem(game.TypeFlashcards, "flip and mark cards"),
		gameItem(game.TypeListen, "hands-free narration"),
		{Label: "WORDS", Hint: "browse and edit your words", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: wordlist.New(client, log)}
			}
		}},
		{Label: "GROUPS", Hint: "browse your groups", Action: func() tea.Cmd {
			return func() tea.Msg {
				return router.PushScreenMsg{Screen: grouplist.New(client, log)}
			}
		}},
		{Label: "EXIT", Action: func() tea.Cmd {
			return tea.Quit
		}},
	}

	return &HomeScreen{menu: components.NewMenu(items)}
}

func (h *HomeScreen) Init() tea.Cmd {
	return nil
}

func (h *HomeScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	var cmd tea.Cmd
	h.menu, cmd = h.menu.Update(msg)
	return h, cmd
}

func (h *HomeScreen) View(width, height int) string {
	title := theme.Title.Width(width).Render("WordGym")
	subtitle := theme.Subtitle.Width(width).Render("vocabulary practice")

	menu := lipgloss.PlaceHorizontal(width, lipgloss.Center, h.menu.View())

	content := title + "\n" + subtitle + "\n\n" + menu
	return lipgloss.PlaceVertical(height, lipgloss.Center, content)
}

func (h *HomeScreen) Title() string {
	return "Home"
}
