package ui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"devhub/internal/habit"
)

// GoalModal edits the habit goal.
type GoalModal struct {
	input textinput.Model
	err   string
}

var _ View = (*GoalModal)(nil)

// NewGoalModal creates a goal editor prefilled with current.
func NewGoalModal(current int) *GoalModal {
	ti := textinput.New()
	ti.Placeholder = strconv.Itoa(habit.DefaultGoal)
	ti.CharLimit = 6
	ti.Width = 12
	ti.SetValue(strconv.Itoa(current))
	ti.Focus()
	return &GoalModal{input: ti}
}

// Init implements View.
func (m *GoalModal) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements View.
func (m *GoalModal) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "esc":
			return m, func() tea.Msg { return DismissModalMsg{} }
		case "enter":
			goal, err := strconv.Atoi(strings.TrimSpace(m.input.Value()))
			if err != nil || goal < 1 {
				m.err = "Enter a whole number of at least 1"
				return m, nil
			}
			return m, func() tea.Msg { return SetGoalMsg{Goal: goal} }
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	m.err = ""
	return m, cmd
}

// Value returns the raw input.
func (m *GoalModal) Value() string { return m.input.Value() }

// View implements View.
func (m *GoalModal) View() string {
	content := Styles.Title.Render("Daily goal") + "\n\n"
	content += m.input.View() + "\n"
	if m.err != "" {
		content += Styles.Error.Render(m.err) + "\n"
	}
	content += "\n" + Styles.Hint.Render("Enter: save  Esc: cancel")
	return Styles.Box.Render(content)
}
