package prompt

import (
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/wut/internal/ui/styles"
)

// ConfirmResult holds the answer to a confirmation prompt.
// Enter without an answer counts as "no".
type ConfirmResult struct {
	Confirmed bool
	Cancelled bool
}

type answer int

const (
	unanswered answer = iota
	answerYes
	answerNo
	answerCancel
)

// answers maps key strings to the answer they give.
var answers = map[string]answer{
	"y":      answerYes,
	"n":      answerNo,
	"enter":  answerNo,
	"q":      answerCancel,
	"esc":    answerCancel,
	"ctrl+c": answerCancel,
}

type confirmModel struct {
	prompt string
	answer answer
}

func (m confirmModel) Init() tea.Cmd {
	return nil
}

func (m confirmModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyPressMsg)
	if !ok {
		return m, nil
	}
	a, ok := answers[strings.ToLower(key.String())]
	if !ok {
		return m, nil
	}
	m.answer = a
	return m, tea.Quit
}

func (m confirmModel) View() tea.View {
	return tea.NewView(m.frame())
}

func (m confirmModel) frame() string {
	if m.answer != unanswered {
		return ""
	}
	return m.prompt + " " + styles.MutedStyle.Render("[y/N]") + " "
}

func (m confirmModel) result() ConfirmResult {
	return ConfirmResult{
		Confirmed: m.answer == answerYes,
		Cancelled: m.answer == answerCancel,
	}
}

// Confirm asks a yes/no question on stderr.
func Confirm(prompt string) (ConfirmResult, error) {
	final, err := run(confirmModel{prompt: prompt})
	if err != nil {
		return ConfirmResult{}, err
	}
	return final.(confirmModel).result(), nil
}
