package ui

import (
	"fmt"
	"strings"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"devhub/internal/contacts"
	"devhub/internal/ui/searchlist"
	"devhub/internal/ui/textutil"
)

// ContactsView is the searchable contact directory with flip cards.
type ContactsView struct {
	list    *searchlist.Model[contacts.Contact]
	flipped map[int]bool
	copy    func(string) error
	width   int
}

var (
	_ View      = (*ContactsView)(nil)
	_ Focusable = (*ContactsView)(nil)
	_ Editor    = (*ContactsView)(nil)
	_ Resizable = (*ContactsView)(nil)
)

// NewContactsView creates the directory. copyFn defaults to the system
// clipboard.
func NewContactsView(list []contacts.Contact, copyFn func(string) error, opts ...searchlist.Option) (*ContactsView, error) {
	v := &ContactsView{flipped: make(map[int]bool), copy: copyFn}
	if v.copy == nil {
		v.copy = clipboard.WriteAll
	}
	l, err := searchlist.New(searchlist.Config[contacts.Contact]{
		Items:             list,
		RenderItem:        v.renderContact,
		KeyExtractor:      func(c contacts.Contact, _ int) string { return fmt.Sprint(c.ID) },
		Title:             "Contacts",
		EmptyMessage:      "No contacts found.",
		Searchable:        true,
		SearchPlaceholder: "Search contacts...",
		SearchFilter:      contacts.Matches,
	}, opts...)
	if err != nil {
		return nil, fmt.Errorf("contacts list: %w", err)
	}
	v.list = l
	return v, nil
}

func (v *ContactsView) renderContact(c contacts.Contact, _ int) string {
	dot := lipgloss.NewStyle().Foreground(statusColor(c.Status)).Render("●")
	avatar := Styles.Stat.Render("(" + c.Initials() + ")")
	front := avatar + " " + Styles.Strong.Render(c.Name) + " " + dot + " " + Styles.Muted.Render(string(c.Status))
	if !v.flipped[c.ID] {
		return front
	}
	lines := []string{front, Styles.Normal.Render("  ✉ " + v.fit(c.Email))}
	if c.Phone != "" {
		lines = append(lines, Styles.Normal.Render("  ☎ "+c.Phone))
	}
	if c.Role != "" {
		lines = append(lines, Styles.Muted.Render("  "+c.Role))
	}
	return strings.Join(lines, "\n")
}

// Init implements View.
func (v *ContactsView) Init() tea.Cmd { return nil }

// Update implements View.
func (v *ContactsView) Update(msg tea.Msg) (View, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok && !v.list.Editing() {
		switch k.String() {
		case "enter":
			if c, ok := v.list.Selected(); ok {
				v.flipped[c.ID] = !v.flipped[c.ID]
			}
			return v, nil
		case "y":
			if c, ok := v.list.Selected(); ok {
				return v, v.copyEmail(c.Email)
			}
			return v, nil
		}
	}
	var cmd tea.Cmd
	v.list, cmd = v.list.Update(msg)
	return v, cmd
}

func (v *ContactsView) copyEmail(email string) tea.Cmd {
	copyFn := v.copy
	return func() tea.Msg {
		return EmailCopiedMsg{Email: email, Err: copyFn(email)}
	}
}

// Flipped reports whether the card of the contact with id shows details.
func (v *ContactsView) Flipped(id int) bool { return v.flipped[id] }

// List exposes the underlying searchable list.
func (v *ContactsView) List() *searchlist.Model[contacts.Contact] { return v.list }

// Editing implements Editor.
func (v *ContactsView) Editing() bool { return v.list.Editing() }

// Focus implements Focusable.
func (v *ContactsView) Focus() { v.list.Focus() }

// Blur implements Focusable.
func (v *ContactsView) Blur() { v.list.Blur() }

// SetWidth implements Resizable.
func (v *ContactsView) SetWidth(w int) {
	v.width = w
	v.list.SetWidth(w)
}

// fit truncates detail text to the card width.
func (v *ContactsView) fit(s string) string {
	if v.width <= 6 {
		return s
	}
	return textutil.Truncate(s, v.width-6)
}

// View implements View.
func (v *ContactsView) View() string {
	online := contacts.OnlineCount(v.list.Items())
	status := lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Render(fmt.Sprintf("%d online", online))
	return status + "\n" + v.list.View()
}
