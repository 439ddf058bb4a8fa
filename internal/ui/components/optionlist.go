package components

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/wordgym/internal/ui/theme"
)

// OptionList is a multiple-choice option selector. After submission it
// reveals the correct option and the player's choice.
type OptionList struct {
	Prompt       string
	Options      []string
	CorrectIndex int
	Selected     int
	Submitted    bool
	ChosenIndex  int
}

// NewOptionList creates an option list for one question.
func NewOptionList(prompt string, options []string, correctIndex int) OptionList {
	return OptionList{
		Prompt:       prompt,
		Options:      options,
		CorrectIndex: correctIndex,
		ChosenIndex:  -1,
	}
}

// Update handles keyboard navigation and selection. The first Enter
// locks the list.
func (o OptionList) Update(msg tea.Msg) (OptionList, bool) {
	if o.Submitted {
		return o, false
	}

	kmsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return o, false
	}

	switch kmsg.String() {
	case "up", "k":
		if o.Selected > 0 {
			o.Selected--
		}
	case "down", "j":
		if o.Selected < len(o.Options)-1 {
			o.Selected++
		}
	case "enter":
		o.Submitted = true
		o.ChosenIndex = o.Selected
		return o, true
	}

	return o, false
}

// View renders the option list.
func (o OptionList) View() string {
	s := lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render(o.Prompt) + "\n\n"

	for i, opt := range o.Options {
		prefix := "  "
		if i == o.Selected && !o.Submitted {
			prefix = "▸ "
		}
		line := fmt.Sprintf("%s%d)  %s", prefix, i+1, opt)

		if o.Submitted {
			switch {
			case i == o.CorrectIndex:
				s += theme.Correct.Render(line) + "\n"
			case i == o.ChosenIndex:
				s += theme.Incorrect.Render(line) + "\n"
			default:
				s += lipgloss.NewStyle().Foreground(theme.TextDim).Render(line) + "\n"
			}
		} else {
			if i == o.Selected {
				s += theme.Selected.Render(line) + "\n"
			} else {
				s += theme.Unselected.Render(line) + "\n"
			}
		}
	}

	return s
}

// IsCorrect returns true if the player chose the correct option.
func (o OptionList) IsCorrect() bool {
	return o.Submitted && o.ChosenIndex == o.CorrectIndex
}
