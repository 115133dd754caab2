package prompt

import (
	"strings"

	"charm.land/bubbles/v2/textinput"
	tea "charm.land/bubbletea/v2"

	"github.com/raphi011/wut/internal/ui/styles"
)

// TextOptions configures a TextInput prompt.
type TextOptions struct {
	Placeholder string
	// Required keeps the prompt open until a non-blank value is entered.
	Required bool
}

// TextInputResult holds the entered value with surrounding whitespace trimmed.
type TextInputResult struct {
	Value     string
	Cancelled bool
}

type textInputModel struct {
	input     textinput.Model
	label     string
	required  bool
	missing   bool // enter was pressed on a blank required value
	done      bool
	cancelled bool
}

func newTextInputModel(label string, opts TextOptions) textInputModel {
	ti := textinput.New()
	ti.Placeholder = opts.Placeholder
	ti.CharLimit = 1024
	ti.SetWidth(60)
	ti.Focus()

	return textInputModel{input: ti, label: label, required: opts.Required}
}

func (m textInputModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m textInputModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyPressMsg); ok {
		switch key.String() {
		case "enter":
			if m.required && m.value() == "" {
				m.missing = true
				return m, nil
			}
			m.done = true
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.cancelled = true
			m.done = true
			return m, tea.Quit
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.value() != "" {
		m.missing = false
	}
	return m, cmd
}

func (m textInputModel) View() tea.View {
	return tea.NewView(m.frame())
}

func (m textInputModel) frame() string {
	if m.done {
		return ""
	}
	var b strings.Builder
	b.WriteString(styles.PrimaryStyle.Render(m.label))
	if m.missing {
		b.WriteString(" " + styles.ErrorStyle.Render("(required)"))
	}
	b.WriteString("\n" + m.input.View() + "\n")
	return b.String()
}

func (m textInputModel) value() string {
	return strings.TrimSpace(m.input.Value())
}

// TextInput asks for a single line of text on stderr.
func TextInput(label string, opts TextOptions) (TextInputResult, error) {
	final, err := run(newTextInputModel(label, opts))
	if err != nil {
		return TextInputResult{}, err
	}
	m := final.(textInputModel)
	if m.cancelled {
		return TextInputResult{Cancelled: true}, nil
	}
	return TextInputResult{Value: m.value()}, nil
}
