package prompt

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func press(m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	next, cmd := m.Update(msg)
	return next.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModelAnswers(t *testing.T) {
	tests := []struct {
		name        string
		def         bool
		msg         tea.KeyMsg
		wantAnswer  bool
		wantAborted bool
	}{
		{"yes", false, runes("y"), true, false},
		{"upper yes", false, runes("Y"), true, false},
		{"no", true, runes("n"), false, false},
		{"enter takes default yes", true, tea.KeyMsg{Type: tea.KeyEnter}, true, false},
		{"enter takes default no", false, tea.KeyMsg{Type: tea.KeyEnter}, false, false},
		{"esc aborts", true, tea.KeyMsg{Type: tea.KeyEsc}, false, true},
		{"ctrl+c aborts", true, tea.KeyMsg{Type: tea.KeyCtrlC}, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, cmd := press(NewModel("Power off BAR1234?", tt.def), tt.msg)
			if cmd == nil {
				t.Fatal("Update() should quit after an answer")
			}
			answer, aborted := m.Answer()
			if answer != tt.wantAnswer || aborted != tt.wantAborted {
				t.Errorf("Answer() = %v, %v; want %v, %v", answer, aborted, tt.wantAnswer, tt.wantAborted)
			}
		})
	}
}

func TestModelIgnoresOtherKeys(t *testing.T) {
	m, cmd := press(NewModel("Open VPN?", false), runes("x"))
	if cmd != nil {
		t.Error("Update() should not quit on an unbound key")
	}
	if _, aborted := m.Answer(); !aborted {
		t.Error("an unanswered prompt should report aborted")
	}

	m, _ = press(m, runes("y"))
	m, _ = press(m, runes("n"))
	if answer, _ := m.Answer(); !answer {
		t.Error("keys after the answer should be ignored")
	}
}

func TestModelView(t *testing.T) {
	m := NewModel("Close VPN?", true)
	if view := m.View(); !strings.Contains(view, "Close VPN?") || !strings.Contains(view, "[Y/n]") {
		t.Errorf("View() = %q", view)
	}
	if view := NewModel("Close VPN?", false).View(); !strings.Contains(view, "[y/N]") {
		t.Errorf("View() = %q", view)
	}

	m, _ = press(m, runes("n"))
	if view := m.View(); !strings.Contains(view, "no") || strings.Contains(view, "[Y/n]") {
		t.Errorf("answered View() = %q", view)
	}
}
