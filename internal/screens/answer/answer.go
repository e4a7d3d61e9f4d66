package answer

import (
	"context"
	"errors"
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/keyquiz/keyquiz/internal/docs"
	"github.com/keyquiz/keyquiz/internal/router"
	"github.com/keyquiz/keyquiz/internal/screen"
	"github.com/keyquiz/keyquiz/internal/ui/components"
	"github.com/keyquiz/keyquiz/internal/ui/layout"
	"github.com/keyquiz/keyquiz/internal/ui/theme"
)

// problemDigits is the length of a round*100+number problem id.
const problemDigits = 4

type answerLoadedMsg struct {
	Problem int
	Answer  *docs.ProblemAnswer
	Err     error
}

// AnswerScreen looks up the official answer and commentary for an exam
// problem.
type AnswerScreen struct {
	source docs.AnswerSource
	input  components.TextInput

	// modal state
	open    bool
	problem int
	answer  *docs.ProblemAnswer
	errMsg  string
}

var _ screen.Screen = (*AnswerScreen)(nil)
var _ screen.KeyHintProvider = (*AnswerScreen)(nil)
var _ screen.BackInterceptor = (*AnswerScreen)(nil)

// New creates an AnswerScreen backed by source.
func New(source docs.AnswerSource) *AnswerScreen {
	return &AnswerScreen{
		source: source,
		input:  components.NewTextInput("e.g. 6012", true, problemDigits),
	}
}

func (a *AnswerScreen) Init() tea.Cmd {
	return a.input.Init()
}

func (a *AnswerScreen) Title() string {
	return "Answer Lookup"
}

// InterceptBack keeps Esc on this screen while the modal is open.
func (a *AnswerScreen) InterceptBack() bool {
	return a.open
}

func (a *AnswerScreen) KeyHints() []layout.KeyHint {
	if a.open {
		return []layout.KeyHint{{Key: "Esc", Description: "Close"}}
	}
	return []layout.KeyHint{
		{Key: "0-9", Description: "Problem id"},
		{Key: "Enter", Description: "Look up"},
		{Key: "Esc", Description: "Back"},
	}
}

func (a *AnswerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case answerLoadedMsg:
		// A result for a closed or replaced modal is dropped.
		if !a.open || msg.Problem != a.problem {
			return a, nil
		}
		switch {
		case errors.Is(msg.Err, docs.ErrNotFound):
			a.errMsg = fmt.Sprintf("No answer found for problem %d.", msg.Problem)
		case msg.Err != nil:
			a.errMsg = msg.Err.Error()
		default:
			a.answer = msg.Answer
		}
		return a, nil

	case tea.KeyPressMsg:
		switch msg.String() {
		case "esc":
			if a.open {
				a.closeModal()
				return a, nil
			}
			return a, func() tea.Msg { return router.PopScreenMsg{} }
		case "enter":
			if a.open {
				return a, nil
			}
			return a, a.lookup()
		}
		if a.open {
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

func (a *AnswerScreen) lookup() tea.Cmd {
	problem, err := a.input.NumericValue()
	valid := err == nil && problem > 100
	a.input.Submit(valid)
	if !valid {
		return nil
	}

	a.open = true
	a.problem = problem
	a.answer = nil
	a.errMsg = ""

	src := a.source
	return func() tea.Msg {
		if src == nil {
			return answerLoadedMsg{Problem: problem, Err: docs.ErrNotFound}
		}
		ans, err := src.FetchAnswer(context.Background(), problem)
		return answerLoadedMsg{Problem: problem, Answer: ans, Err: err}
	}
}

func (a *AnswerScreen) closeModal() {
	a.open = false
	a.answer = nil
	a.errMsg = ""
}

func (a *AnswerScreen) View(width, height int) string {
	cw := components.ContentWidth(width)

	if a.open {
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, a.renderModal(cw))
	}

	prompt := lipgloss.JoinVertical(lipgloss.Center,
		theme.Subtitle.Render("Korean History Proficiency Test"),
		"",
		theme.Body.Render("Enter the problem id (round × 100 + number)"),
		"",
		a.input.View(),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, components.Card(prompt, cw))
}

func (a *AnswerScreen) renderModal(cw int) string {
	var b strings.Builder
	b.WriteString(theme.Title.Render(fmt.Sprintf("Round %d · Problem %d", a.problem/100, a.problem%100)))
	b.WriteString("\n\n")

	body := lipgloss.NewStyle().Width(cw - 8).Foreground(theme.Text)
	heading := lipgloss.NewStyle().
		Foreground(theme.Secondary).
		Bold(true).
		Border(lipgloss.NormalBorder(), false, false, true, false).
		BorderForeground(theme.Border)

	switch {
	case a.errMsg != "":
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Render(a.errMsg))
	case a.answer == nil:
		b.WriteString(theme.Hint.Render("Loading..."))
	default:
		b.WriteString(theme.Body.Render("Answer: "))
		b.WriteString(lipgloss.NewStyle().Foreground(theme.Error).Bold(true).
			Render(fmt.Sprintf("%d", a.answer.Answer)))
		b.WriteString("\n\n")
		b.WriteString(heading.Render("Commentary"))
		b.WriteString("\n")
		b.WriteString(body.Render(a.answer.Commentary))
		b.WriteString("\n\n")
		b.WriteString(heading.Render("Wrong choices"))
		b.WriteString("\n")
		b.WriteString(body.Render(a.answer.WrongCommentary))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Highlight).
		Width(cw).
		Padding(1, 2).
		Render(b.String())
}
