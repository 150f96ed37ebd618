package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func menuKey(m MenuModel, msg tea.KeyMsg) MenuModel {
	next, _ := m.Update(msg)
	return next.(MenuModel)
}

func TestMenuNavigation(t *testing.T) {
	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"enter plays", []tea.KeyMsg{{Type: tea.KeyEnter}}, MenuPlay},
		{"down then enter shows scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuScores},
		{"cursor stops at the last item", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, MenuQuit},
		{"up at the top stays", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, MenuPlay},
		{"tab jumps to scores", []tea.KeyMsg{{Type: tea.KeyTab}}, MenuScores},
		{"q quits", []tea.KeyMsg{{Type: tea.KeyRunes, Runes: []rune{'q'}}}, MenuQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := NewMenuModel(0, 80, 24)
			for _, k := range tt.keys {
				m = menuKey(m, k)
			}
			if m.Choice() != tt.want {
				t.Errorf("Choice() = %v, expected %v", m.Choice(), tt.want)
			}
		})
	}
}

func TestMenuViewShowsHighScore(t *testing.T) {
	m := NewMenuModel(17, 80, 24)
	view := m.View()

	if !strings.Contains(view, "High: 17") {
		t.Error("menu should show the high score")
	}
	if !strings.Contains(view, "> Play") {
		t.Error("cursor should start on Play")
	}
}
