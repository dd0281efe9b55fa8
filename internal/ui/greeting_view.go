package ui

import (
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devhub/internal/greeting"
	"devhub/internal/habit"
	"devhub/internal/tasks"
	"devhub/internal/ui/textutil"
)

// GreetingView is the banner: salutation, clock and quick stats.
type GreetingView struct {
	Name  string
	Now   time.Time
	Tasks *tasks.Store
	Habit *habit.Tracker
	width int
}

var _ View = (*GreetingView)(nil)

// NewGreetingView creates the banner. The stats read store and tracker on
// every render.
func NewGreetingView(name string, now time.Time, store *tasks.Store, tracker *habit.Tracker) *GreetingView {
	return &GreetingView{Name: name, Now: now, Tasks: store, Habit: tracker}
}

// Init implements View.
func (g *GreetingView) Init() tea.Cmd { return nil }

// Update implements View.
func (g *GreetingView) Update(msg tea.Msg) (View, tea.Cmd) {
	if t, ok := msg.(tickMsg); ok {
		g.Now = time.Time(t)
	}
	return g, nil
}

// SetWidth implements Resizable.
func (g *GreetingView) SetWidth(w int) { g.width = w }

// Stat is one quick stat of the banner.
type Stat struct {
	Label string
	Value string
}

// Stats returns open tasks, habit streak and percent of tasks done.
func (g *GreetingView) Stats() []Stat {
	open, done, streak := 0, 0.0, 0
	if g.Tasks != nil {
		open = g.Tasks.Len() - g.Tasks.CompletedCount()
		done = g.Tasks.Progress()
	}
	if g.Habit != nil {
		streak = g.Habit.Streak
	}
	return []Stat{
		{Label: "Open tasks", Value: strconv.Itoa(open)},
		{Label: "Streak", Value: strconv.Itoa(streak)},
		{Label: "Done", Value: textutil.Percent(done, 0)},
	}
}

// View implements View.
func (g *GreetingView) View() string {
	left := strings.Join([]string{
		Styles.Title.Render(greeting.Salutation(g.Now) + ", " + g.Name + "!"),
		Styles.Muted.Render("Welcome back to your dashboard"),
		"",
		Styles.Strong.Render(greeting.FormatClock(g.Now)) + "  " + Styles.Muted.Render(greeting.FormatDate(g.Now)),
	}, "\n")

	stats := g.Stats()
	cells := make([]string, len(stats))
	for i, s := range stats {
		cells[i] = lipgloss.JoinVertical(lipgloss.Center,
			Styles.Stat.Render(s.Value),
			Styles.Muted.Render(s.Label),
		)
		cells[i] = Styles.Badge.Render(cells[i])
	}
	right := lipgloss.JoinHorizontal(lipgloss.Top, cells...)

	gap := g.width - textutil.Width(left) - textutil.Width(right)
	if gap < 2 {
		return left + "\n\n" + right
	}
	return lipgloss.JoinHorizontal(lipgloss.Center, left, strings.Repeat(" ", gap), right)
}
