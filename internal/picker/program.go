package picker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	tea "charm.land/bubbletea/v2"
	"github.com/charmbracelet/colorprofile"
	"github.com/mattn/go-isatty"
	"github.com/raphi011/wut/internal/log"
	"github.com/raphi011/wut/internal/store"
)

// ErrTerminal is returned when the terminal cannot be put into or out of raw mode.
var ErrTerminal = errors.New("terminal")

// Options configures Run.
type Options struct {
	// WorkDir is carried into a confirmed Outcome.
	WorkDir string

	// Input and Output default to stdin and stdout.
	Input  io.Reader
	Output io.Writer

	Height          int
	ShowDescription bool
}

// model hosts a State in a bubbletea program.
type model struct {
	state  *State
	render RenderOptions
}

func newModel(cmds []store.Command, opts Options) *model {
	return &model{
		state: NewState(cmds),
		render: RenderOptions{
			Height:          opts.Height,
			ShowDescription: opts.ShowDescription,
		},
	}
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.render.Width = msg.Width
		return m, nil
	case tea.KeyPressMsg:
		m.state.Handle(KeyFromMsg(msg))
	case tea.PasteMsg:
		m.state.Handle(Key{Kind: KeyChar, Text: printable(msg.Content)})
	}

	if m.state.Status() != Typing {
		return m, tea.Quit
	}
	return m, nil
}

func (m *model) View() tea.View {
	return tea.NewView(m.frame())
}

// frame is the picker text, empty once the user has finished.
func (m *model) frame() string {
	if m.state.Status() != Typing {
		return ""
	}
	return Render(m.state, m.render)
}

// Run lets the user pick one of cmds interactively.
//
// With no candidates it returns an OutcomeEmpty outcome without touching
// the terminal. Cancelling (esc, ctrl+c, SIGINT, or ctx being done) is an
// OutcomeCancelled outcome, not an error.
func Run(ctx context.Context, cmds []store.Command, opts Options) (Outcome, error) {
	if len(cmds) == 0 {
		return Outcome{Kind: OutcomeEmpty}, nil
	}

	in, out := opts.Input, opts.Output
	if in == nil {
		in = os.Stdin
	}
	if out == nil {
		out = os.Stdout
	}
	if f, ok := in.(*os.File); ok && !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return Outcome{}, fmt.Errorf("%w: %s is not a terminal", ErrTerminal, f.Name())
	}

	l := log.FromContext(ctx)
	l.Debug("starting picker", "candidates", len(cmds), "height", opts.Height)

	m := newModel(cmds, opts)
	p := tea.NewProgram(m,
		tea.WithContext(ctx),
		tea.WithInput(in),
		tea.WithOutput(out),
		tea.WithColorProfile(colorprofile.Detect(out, os.Environ())),
	)
	if _, err := p.Run(); err != nil {
		switch {
		case errors.Is(err, tea.ErrInterrupted), errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil:
			l.Debug("picker interrupted", "err", err)
			return Outcome{Kind: OutcomeCancelled}, nil
		default:
			return Outcome{}, fmt.Errorf("%w: %w", ErrTerminal, err)
		}
	}

	return m.outcome(opts.WorkDir), nil
}

func (m *model) outcome(workDir string) Outcome {
	if m.state.Status() == Confirmed {
		if sel, ok := m.state.Selected(); ok {
			return Outcome{Kind: OutcomeConfirmed, Command: sel.Command, WorkDir: workDir}
		}
	}
	return Outcome{Kind: OutcomeCancelled}
}
