package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/bnema/todo/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// taskResult is what a server round trip hands back to the command.
type taskResult struct {
	tasks   []domain.Task
	message string
}

type taskCallDoneMsg struct {
	result taskResult
	err    error
}

// progressModel spins on stderr while one call to the task server runs.
type progressModel struct {
	spinner spinner.Model
	label   string
	call    tea.Cmd
	result  taskResult
	err     error
	done    bool
}

func newProgressModel(label string, call tea.Cmd) progressModel {
	return progressModel{
		spinner: spinner.New(
			spinner.WithSpinner(spinner.MiniDot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		label: label,
		call:  call,
	}
}

func (m progressModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.call)
}

func (m progressModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case taskCallDoneMsg:
		m.done = true
		m.result = msg.result
		m.err = msg.err
		return m, tea.Quit
	case spinner.TickMsg:
		if m.done {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m progressModel) View() string {
	if m.done {
		return ""
	}
	return m.spinner.View() + " " + m.label
}

func runWithProgress(ctx context.Context, output io.Writer, label string, call func(context.Context) (taskResult, error)) (taskResult, error) {
	p := tea.NewProgram(
		newProgressModel(label, func() tea.Msg {
			result, err := call(ctx)
			return taskCallDoneMsg{result: result, err: err}
		}),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	final, err := p.Run()
	if err != nil {
		return taskResult{}, err
	}

	m, ok := final.(progressModel)
	if !ok {
		return taskResult{}, fmt.Errorf("unexpected final progress model type %T", final)
	}

	return m.result, m.err
}
