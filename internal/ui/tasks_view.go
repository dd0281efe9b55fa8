package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"devhub/internal/tasks"
	"devhub/internal/ui/searchlist"
	"devhub/internal/ui/textutil"
)

const tasksEmptyMessage = "No tasks found. Add some tasks to get started!"

// TasksView manages the task list: add, toggle, delete, filter.
type TasksView struct {
	Store    *tasks.Store
	list     *searchlist.Model[tasks.Task]
	input    textinput.Model
	adding   bool
	priority tasks.Priority // for the next added task
	category tasks.Category
	filter   tasks.Filter
	bar      progress.Model
	err      error
	width    int
	logger   *log.Logger
}

var (
	_ View      = (*TasksView)(nil)
	_ Focusable = (*TasksView)(nil)
	_ Editor    = (*TasksView)(nil)
	_ Resizable = (*TasksView)(nil)
)

// NewTasksView renders store through a non-searchable list keyed by task ID.
func NewTasksView(store *tasks.Store, logger *log.Logger, opts ...searchlist.Option) (*TasksView, error) {
	ti := textinput.New()
	ti.Placeholder = "What needs to be done?"
	ti.CharLimit = 120
	ti.Width = 32

	v := &TasksView{
		Store:    store,
		input:    ti,
		priority: tasks.PriorityMedium,
		category: tasks.CategoryWork,
		filter:   tasks.FilterAll,
		bar:      progress.New(progress.WithSolidFill(ColorSuccess), progress.WithoutPercentage(), progress.WithWidth(30)),
		logger:   orDiscard(logger),
	}
	list, err := searchlist.New(searchlist.Config[tasks.Task]{
		Items:        store.Filtered(tasks.FilterAll),
		RenderItem:   v.renderTask,
		KeyExtractor: func(t tasks.Task, _ int) string { return t.ID },
		Title:        "Tasks",
		EmptyMessage: tasksEmptyMessage,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("tasks list: %w", err)
	}
	v.list = list
	return v, nil
}

// badgeWidth leaves room for the check mark and both badges.
const badgeWidth = 24

func (v *TasksView) renderTask(t tasks.Task, _ int) string {
	text := t.Title
	if v.width > badgeWidth {
		text = textutil.Truncate(text, v.width-badgeWidth)
	}
	check, title := "○", Styles.Normal.Render(text)
	if t.Completed {
		check, title = Styles.Success.Render("✓"), Styles.Done.Render(text)
	}
	return check + " " + title + " " +
		Styles.Badge.Foreground(priorityColor(t.Priority)).Render(string(t.Priority)) +
		Styles.Badge.Foreground(categoryColor(t.Category)).Render(string(t.Category))
}

// Init implements View.
func (v *TasksView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *TasksView) Update(msg tea.Msg) (View, tea.Cmd) {
	k, ok := msg.(tea.KeyMsg)
	if !ok {
		if v.adding {
			var cmd tea.Cmd
			v.input, cmd = v.input.Update(msg)
			return v, cmd
		}
		return v, nil
	}

	if v.adding {
		return v, v.updateAdding(k)
	}

	switch k.String() {
	case "a":
		v.adding = true
		v.err = nil
		v.input.Reset()
		return v, v.input.Focus()
	case "p":
		v.priority = tasks.Next(tasks.Priorities, v.priority)
	case "c":
		v.category = tasks.Next(tasks.Categories, v.category)
	case "f":
		v.filter = tasks.Next(tasks.Filters, v.filter)
		v.refresh()
	case "x", "enter":
		if t, ok := v.list.Selected(); ok {
			v.setErr(v.Store.Toggle(t.ID))
			v.refresh()
		}
	case "d":
		if t, ok := v.list.Selected(); ok {
			v.setErr(v.Store.Delete(t.ID))
			v.logger.Debug("task deleted", "id", t.ID)
			v.refresh()
		}
	default:
		var cmd tea.Cmd
		v.list, cmd = v.list.Update(k)
		return v, cmd
	}
	return v, nil
}

func (v *TasksView) updateAdding(k tea.KeyMsg) tea.Cmd {
	switch k.String() {
	case "esc":
		v.stopAdding()
		return nil
	case "enter":
		t, err := v.Store.Add(v.input.Value(), v.priority, v.category)
		if err != nil {
			v.err = err
			return nil
		}
		v.logger.Debug("task added", "id", t.ID, "priority", t.Priority, "category", t.Category)
		v.stopAdding()
		v.refresh()
		return nil
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(k)
	return cmd
}

func (v *TasksView) stopAdding() {
	v.adding = false
	v.err = nil
	v.input.Blur()
	v.input.Reset()
}

func (v *TasksView) setErr(err error) {
	v.err = err
	if err != nil {
		v.logger.Warn("task update failed", "err", err)
	}
}

// refresh reloads the visible tasks from the store.
func (v *TasksView) refresh() {
	v.list.SetItems(v.Store.Filtered(v.filter))
}

// Filter returns the active completion filter.
func (v *TasksView) Filter() tasks.Filter { return v.filter }

// NewTaskDefaults returns the priority and category used by the next add.
func (v *TasksView) NewTaskDefaults() (tasks.Priority, tasks.Category) {
	return v.priority, v.category
}

// Keys returns the IDs of the visible tasks.
func (v *TasksView) Keys() []string { return v.list.Keys() }

// Editing implements Editor.
func (v *TasksView) Editing() bool { return v.adding }

// Focus implements Focusable.
func (v *TasksView) Focus() { v.list.Focus() }

// Blur implements Focusable.
func (v *TasksView) Blur() {
	v.list.Blur()
	if v.adding {
		v.stopAdding()
	}
}

// SetWidth implements Resizable.
func (v *TasksView) SetWidth(w int) {
	v.width = w
	v.list.SetWidth(w)
	v.bar.Width = max(w-8, 10)
	v.input.Width = max(w-4, 10)
}

// View implements View.
func (v *TasksView) View() string {
	var b strings.Builder
	b.WriteString(v.list.View())
	b.WriteString("\n\n")

	done, total := v.Store.CompletedCount(), v.Store.Len()
	b.WriteString(Styles.Muted.Render(fmt.Sprintf("%d/%d completed", done, total)))
	b.WriteString("\n")
	b.WriteString(v.bar.ViewAs(v.Store.Progress()/100) + " " + textutil.Percent(v.Store.Progress(), 0))
	b.WriteString("\n")

	filters := make([]string, len(tasks.Filters))
	for i, f := range tasks.Filters {
		if f == v.filter {
			filters[i] = Styles.Stat.Render(string(f))
		} else {
			filters[i] = Styles.Muted.Render(string(f))
		}
	}
	b.WriteString(Styles.Muted.Render("filter ") + strings.Join(filters, Styles.Muted.Render(" | ")))
	b.WriteString("\n")
	b.WriteString(Styles.Muted.Render("new ") +
		lipgloss.NewStyle().Foreground(priorityColor(v.priority)).Render(string(v.priority)) + " " +
		lipgloss.NewStyle().Foreground(categoryColor(v.category)).Render(string(v.category)))

	if v.adding {
		b.WriteString("\n")
		b.WriteString(v.input.View())
	}
	if v.err != nil {
		b.WriteString("\n")
		b.WriteString(Styles.Error.Render(v.err.Error()))
	}
	return b.String()
}
