// ============================================================================
// helper - Utility CLI and Libraries
// ============================================================================
//
// Package:     prompt
// Description: Interactive yes/no confirmation for mutating commands
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package prompt

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	herror "github.com/msto63/helper/foundation/core/error"
)

// ErrAborted is returned when the user cancels the prompt
var ErrAborted = errors.New("confirmation aborted")

// Options configures Confirm
type Options struct {
	// Default is the answer taken on enter
	Default bool

	// Input and Output default to stdin and stdout
	Input  io.Reader
	Output io.Writer
}

// Styles
var (
	questionStyle = lipgloss.NewStyle().Bold(true)
	yesStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#10B981")).Bold(true)
	noStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6B7280"))
)

type keyMap struct {
	Yes    key.Binding
	No     key.Binding
	Accept key.Binding
	Abort  key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Yes, k.No, k.Accept, k.Abort}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var keys = keyMap{
	Yes:    key.NewBinding(key.WithKeys("y", "Y"), key.WithHelp("y", "yes")),
	No:     key.NewBinding(key.WithKeys("n", "N"), key.WithHelp("n", "no")),
	Accept: key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "default")),
	Abort:  key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "abort")),
}

// Model is the bubbletea model behind Confirm
type Model struct {
	question string
	def      bool
	help     help.Model

	done    bool
	answer  bool
	aborted bool
}

// NewModel creates a confirmation model
func NewModel(question string, def bool) Model {
	return Model{question: question, def: def, help: help.New()}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || m.done {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.Yes):
		m.answer = true
	case key.Matches(keyMsg, keys.No):
		m.answer = false
	case key.Matches(keyMsg, keys.Accept):
		m.answer = m.def
	case key.Matches(keyMsg, keys.Abort):
		m.aborted = true
	default:
		return m, nil
	}
	m.done = true
	return m, tea.Quit
}

// View implements tea.Model
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(questionStyle.Render(m.question))
	b.WriteString(" ")

	if m.done {
		switch {
		case m.aborted:
			b.WriteString(mutedStyle.Render("aborted"))
		case m.answer:
			b.WriteString(yesStyle.Render("yes"))
		default:
			b.WriteString(noStyle.Render("no"))
		}
		b.WriteString("\n")
		return b.String()
	}

	if m.def {
		b.WriteString(mutedStyle.Render("[Y/n]"))
	} else {
		b.WriteString(mutedStyle.Render("[y/N]"))
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(keys))
	return b.String()
}

// Answer returns the chosen answer and whether the prompt was aborted
func (m Model) Answer() (answer, aborted bool) {
	return m.answer, m.aborted || !m.done
}

// Confirm asks question and waits for a yes/no answer
func Confirm(ctx context.Context, question string, opts Options) (bool, error) {
	input := opts.Input
	if input == nil {
		input = os.Stdin
	}
	output := opts.Output
	if output == nil {
		output = os.Stdout
	}

	p := tea.NewProgram(NewModel(question, opts.Default),
		tea.WithContext(ctx),
		tea.WithInput(input),
		tea.WithOutput(output),
	)
	final, err := p.Run()
	if err != nil {
		if ctx.Err() != nil {
			return false, herror.Wrap(errors.Join(ErrAborted, ctx.Err()), "confirmation aborted").
				WithCode(herror.CodeAborted).
				WithOperation("prompt.Confirm")
		}
		return false, herror.Wrap(err, "confirmation prompt failed").
			WithCode(herror.CodeInternal).
			WithOperation("prompt.Confirm")
	}

	answer, aborted := final.(Model).Answer()
	if aborted {
		return false, herror.Wrap(ErrAborted, "confirmation aborted").
			WithCode(herror.CodeAborted).
			WithOperation("prompt.Confirm")
	}
	return answer, nil
}
