package ui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"go.opentelemetry.io/otel/trace"

	"devhub/internal/catalog"
	"devhub/internal/habit"
	"devhub/internal/tasks"
	"devhub/internal/ui/searchlist"
)

// Panel IDs.
const (
	PanelGreeting = "greeting"
	PanelHabit    = "habit"
	PanelTasks    = "tasks"
	PanelContacts = "contacts"
	PanelSnacks   = "snacks"
	PanelSkills   = "skills"
)

const defaultWidth = 100

// Options configures NewAppModel. Zero values fall back to defaults.
type Options struct {
	Name      string
	Tick      time.Duration
	Goal      int
	Fuzzy     bool // fuzzy search in the skills list
	Catalog   *catalog.Catalog
	Logger    *log.Logger
	Tracer    trace.Tracer // nil uses the global provider
	Now       func() time.Time
	Clipboard func(string) error
}

// AppModel is the root model: a grid of panels, focus, leader keys and
// overlays.
type AppModel struct {
	Panels     map[string]*Panel
	Layout     Layout
	Focus      *FocusManager
	KeyHandler *KeyHandler
	Overlays   OverlayStack
	Habit      *habit.Tracker
	Tasks      *tasks.Store
	Status     string
	statusErr  bool

	tick          time.Duration
	now           func() time.Time
	width, height int
	logger        *log.Logger
}

// Ensure AppModel can be used as tea.Model via adapter.
var _ tea.Model = (*appModelAdapter)(nil)

// appModelAdapter wraps AppModel to implement tea.Model.
type appModelAdapter struct {
	*AppModel
}

// NewAppModel creates the root application model.
func NewAppModel(opts Options) (*AppModel, error) {
	if opts.Name == "" {
		opts.Name = "Developer"
	}
	if opts.Tick <= 0 {
		opts.Tick = time.Second
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	cat := opts.Catalog
	if cat == nil {
		var err error
		if cat, err = catalog.Default(); err != nil {
			return nil, err
		}
	}
	logger := orDiscard(opts.Logger)

	listOpts := []searchlist.Option{
		searchlist.WithLogger(logger),
		searchlist.WithStyles(ListStyles()),
	}
	if opts.Tracer != nil {
		listOpts = append(listOpts, searchlist.WithTracer(opts.Tracer))
	}

	tracker := habit.New(opts.Goal, opts.Now)
	store := tasks.NewStore(cat.Tasks, opts.Now)

	tasksView, err := NewTasksView(store, logger, listOpts...)
	if err != nil {
		return nil, err
	}
	contactsView, err := NewContactsView(cat.Contacts, opts.Clipboard, listOpts...)
	if err != nil {
		return nil, err
	}
	snacks, err := NewSnacksList(cat.Fruits, listOpts...)
	if err != nil {
		return nil, err
	}
	skills, err := NewSkillsList(cat.Skills, opts.Fuzzy, listOpts...)
	if err != nil {
		return nil, err
	}

	panels := []*Panel{
		{ID: PanelGreeting, Title: "Greeting", View: NewGreetingView(opts.Name, opts.Now(), store, tracker)},
		{ID: PanelHabit, Title: "Habit", Key: "h", View: NewHabitView(tracker, logger)},
		{ID: PanelTasks, Title: "Tasks", Key: "t", View: tasksView},
		{ID: PanelContacts, Title: "Contacts", Key: "c", View: contactsView},
		{ID: PanelSnacks, Title: "Snacks", Key: "s", View: snacks},
		{ID: PanelSkills, Title: "Skills", Key: "k", View: skills},
	}
	a := &AppModel{
		Panels: make(map[string]*Panel, len(panels)),
		Layout: NewGridLayout(
			[]string{PanelGreeting},
			[]string{PanelHabit, PanelTasks},
			[]string{PanelContacts, PanelSnacks, PanelSkills},
		),
		Habit:  tracker,
		Tasks:  store,
		tick:   opts.Tick,
		now:    opts.Now,
		logger: logger,
	}
	for _, p := range panels {
		a.Panels[p.ID] = p
	}

	var order []string
	for _, id := range a.Layout.FocusOrder() {
		if _, ok := a.Panels[id].View.(Focusable); ok {
			order = append(order, id)
		}
	}
	a.Focus = NewFocusManager(order)
	a.Focus.OnChange = a.focusChanged
	if f, ok := a.focusedView().(Focusable); ok {
		f.Focus()
	}
	a.KeyHandler = NewKeyHandler(a.newRegistry(panels))
	return a, nil
}

// newRegistry binds the global keys, the leader menu and panel-scoped actions.
func (a *AppModel) newRegistry(panels []*Panel) *KeybindRegistry {
	reg := NewKeybindRegistry()
	reg.BindWithDesc("q", tea.Quit, "Quit")
	reg.BindWithDesc("ctrl+c", tea.Quit, "Quit")
	reg.BindWithDesc("SPC q", tea.Quit, "Quit")
	reg.BindWithDesc("tab", func() tea.Msg { return FocusNextMsg{} }, "Next panel")
	reg.BindWithDesc("shift+tab", func() tea.Msg { return FocusPrevMsg{} }, "Previous panel")
	reg.BindWithDesc("?", func() tea.Msg { return ShowHelpMsg{} }, "Help")
	reg.BindWithDesc("SPC ?", func() tea.Msg { return ShowHelpMsg{} }, "Help")

	reg.Submenu("SPC f", "Focus")
	for _, p := range panels {
		if p.Key == "" {
			continue
		}
		id := p.ID
		reg.BindWithDesc("SPC f "+p.Key, func() tea.Msg { return FocusPanelMsg{ID: id} }, p.Title)
	}
	reg.BindScoped("SPC e", func() tea.Msg { return ShowGoalEditorMsg{} }, "Edit goal", PanelHabit)
	return reg
}

// AsTeaModel returns a tea.Model adapter for use with tea.NewProgram.
func (a *AppModel) AsTeaModel() tea.Model {
	return &appModelAdapter{AppModel: a}
}

// Init implements tea.Model.
func (a *appModelAdapter) Init() tea.Cmd {
	cmds := []tea.Cmd{a.tickCmd()}
	for _, id := range a.Layout.FocusOrder() {
		cmds = append(cmds, a.Panels[id].View.Init())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (a *appModelAdapter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width, a.height = msg.Width, msg.Height
		cmd, _ := a.Overlays.UpdateTop(msg)
		return a, cmd
	case tickMsg:
		a.Panels[PanelGreeting].View.Update(msg)
		return a, a.tickCmd()
	case tea.KeyMsg:
		return a, a.handleKey(msg)
	case FocusPanelMsg:
		a.Focus.SetFocus(msg.ID)
		return a, nil
	case FocusNextMsg:
		a.Focus.Next()
		return a, nil
	case FocusPrevMsg:
		a.Focus.Prev()
		return a, nil
	case ShowHelpMsg:
		if top, ok := a.Overlays.Peek(); ok {
			if _, open := top.View.(*HelpOverlay); open {
				return a, nil
			}
		}
		a.Overlays.Push(Overlay{View: NewHelpOverlay(a.KeyHandler.Registry), Dismiss: "?"})
		return a, nil
	case ShowGoalEditorMsg:
		modal := NewGoalModal(a.Habit.Goal)
		a.Overlays.Push(Overlay{View: modal, Dismiss: "esc"})
		return a, modal.Init()
	case SetGoalMsg:
		a.Overlays.Pop()
		if err := a.Habit.SetGoal(msg.Goal); err != nil {
			a.setStatus(err.Error(), true)
			return a, nil
		}
		a.logger.Info("habit goal changed", "goal", msg.Goal)
		a.setStatus(fmt.Sprintf("Goal set to %d", msg.Goal), false)
		return a, nil
	case DismissModalMsg:
		a.Overlays.Pop()
		return a, nil
	case EmailCopiedMsg:
		if msg.Err != nil {
			a.logger.Warn("copy email failed", "err", msg.Err)
			a.setStatus("Copy failed: "+msg.Err.Error(), true)
		} else {
			a.setStatus("Copied "+msg.Email, false)
		}
		return a, nil
	case StatusMsg:
		a.setStatus(msg.Text, msg.Err)
		return a, nil
	}

	// Other messages (e.g. cursor blink) go to the top overlay, else the focused panel.
	if cmd, ok := a.Overlays.UpdateTop(msg); ok {
		return a, cmd
	}
	return a, a.updateFocused(msg)
}

func (a *AppModel) handleKey(msg tea.KeyMsg) tea.Cmd {
	s := msg.String()
	if s == "ctrl+c" {
		return tea.Quit
	}
	a.Status = ""

	if top, ok := a.Overlays.Peek(); ok {
		if top.IsDismissKey(s) {
			a.Overlays.Pop()
			return nil
		}
		cmd, _ := a.Overlays.UpdateTop(msg)
		return cmd
	}

	if !isEditing(a.focusedView()) {
		if consumed, cmd := a.KeyHandler.Handle(msg, a.Focus.Current); consumed {
			return cmd
		}
	}
	return a.updateFocused(msg)
}

func (a *AppModel) updateFocused(msg tea.Msg) tea.Cmd {
	p, ok := a.Panels[a.Focus.Current]
	if !ok {
		return nil
	}
	v, cmd := p.View.Update(msg)
	p.View = v
	return cmd
}

func (a *AppModel) focusedView() View {
	if p, ok := a.Panels[a.Focus.Current]; ok {
		return p.View
	}
	return nil
}

func (a *AppModel) focusChanged(from, to string) {
	if p, ok := a.Panels[from]; ok {
		if f, ok := p.View.(Focusable); ok {
			f.Blur()
		}
	}
	if p, ok := a.Panels[to]; ok {
		if f, ok := p.View.(Focusable); ok {
			f.Focus()
		}
	}
	a.logger.Debug("focus changed", "from", from, "to", to)
}

func (a *AppModel) setStatus(text string, isErr bool) {
	a.Status = text
	a.statusErr = isErr
}

func (a *AppModel) tickCmd() tea.Cmd {
	return tea.Tick(a.tick, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// View implements tea.Model.
func (a *appModelAdapter) View() string {
	width := a.width
	if width <= 0 {
		width = defaultWidth
	}

	var rows []string
	for _, row := range a.Layout.Rows() {
		widths := ColumnWidths(width, len(row))
		cells := make([]string, len(row))
		for i, id := range row {
			cells[i] = a.Panels[id].Render(widths[i], id == a.Focus.Current)
		}
		rows = append(rows, joinRow(cells))
	}
	rows = append(rows, a.footer())

	return a.Overlays.Render(strings.Join(rows, "\n"), a.width, a.height)
}

func (a *AppModel) footer() string {
	if a.KeyHandler.LeaderWaiting {
		return RenderKeybindHelp(a.KeyHandler, a.Focus.Current)
	}
	hint := Styles.Hint.Render("tab focus  SPC menu  ? help  q quit")
	if a.Status == "" {
		return hint
	}
	style := Styles.Success
	if a.statusErr {
		style = Styles.Error
	}
	return style.Render(a.Status) + "  " + hint
}
